package identifiers

import "testing"

func TestPathRoundTrip(t *testing.T) {
	p := NewPath("clients", "07-tendermint-ab12", "clientState")
	got := ParsePath(p.String())
	if !got.Equal(p) {
		t.Fatalf("round trip mismatch: got %q want %q", got.String(), p.String())
	}
}

func TestApplyPrefix(t *testing.T) {
	p := ConnectionPath("connection-ab12")
	prefixed := p.ApplyPrefix(IBCStorePrefix)
	if prefixed.String() != "ibc/connections/connection-ab12" {
		t.Fatalf("unexpected prefixed path: %q", prefixed.String())
	}
	if prefixed.KeyAt(1) != p.String() {
		t.Fatalf("KeyAt(1) = %q, want %q", prefixed.KeyAt(1), p.String())
	}
}

func TestStandardPaths(t *testing.T) {
	if got := ClientTypePath("07-tendermint-ab12").String(); got != "clients/07-tendermint-ab12/clientType" {
		t.Fatalf("unexpected client type path: %q", got)
	}
	if got := ConsensusStatePath("07-tendermint-ab12", 1, 100).String(); got != "clients/07-tendermint-ab12/consensusStates/1-100" {
		t.Fatalf("unexpected consensus state path: %q", got)
	}
	if got := ChannelEndPath("transfer", "channel-ab12").String(); got != "channelEnds/ports/transfer/channels/channel-ab12" {
		t.Fatalf("unexpected channel end path: %q", got)
	}
	if got := PacketCommitmentPath("transfer", "channel-ab12", 7).String(); got != "commitments/ports/transfer/channels/channel-ab12/sequences/7" {
		t.Fatalf("unexpected packet commitment path: %q", got)
	}
	if got := DenomTracePath("transfer", "channel-ab12", "uatom").String(); got != "transfer/channel-ab12/uatom" {
		t.Fatalf("unexpected denom trace path: %q", got)
	}
}
