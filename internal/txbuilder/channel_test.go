package txbuilder

import (
	"context"
	"testing"

	"github.com/soloibc/solo-machine/internal/pb"
)

func TestBuildChannelOpenInit(t *testing.T) {
	b, signer := newTestBuilder()
	msg, err := b.BuildChannelOpenInit("connection-0")
	if err != nil {
		t.Fatalf("BuildChannelOpenInit: %v", err)
	}
	if msg.PortId != b.PortID {
		t.Fatalf("msg.PortId = %s, want %s", msg.PortId, b.PortID)
	}
	if msg.Channel.Ordering != pb.OrderUnordered {
		t.Fatalf("ordering = %v, want Unordered", msg.Channel.Ordering)
	}
	if msg.Channel.Version != ics20Version {
		t.Fatalf("version = %s, want %s", msg.Channel.Version, ics20Version)
	}
	if len(msg.Channel.ConnectionHops) != 1 || msg.Channel.ConnectionHops[0] != "connection-0" {
		t.Fatalf("unexpected connection hops: %+v", msg.Channel.ConnectionHops)
	}
	if msg.Signer != signer.address {
		t.Fatalf("msg.Signer = %s, want %s", msg.Signer, signer.address)
	}
}

func TestNewLocalChannelIsTryOpen(t *testing.T) {
	channel := NewLocalChannel("connection-0", "transfer", "channel-9")
	if channel.State != pb.ChannelStateTryOpen {
		t.Fatalf("state = %v, want TryOpen", channel.State)
	}
	if channel.Counterparty.ChannelId != "channel-9" {
		t.Fatalf("counterparty channel id = %s, want channel-9", channel.Counterparty.ChannelId)
	}
}

func TestBuildChannelOpenAckProvesLocalChannel(t *testing.T) {
	b, _ := newTestBuilder()
	local := NewLocalChannel("connection-0", "transfer", "channel-9")
	msg, err := b.BuildChannelOpenAck(
		context.Background(),
		"channel-0", "channel-9",
		6, 6000,
		local,
		&pb.Height{RevisionNumber: 0, RevisionHeight: 20},
	)
	if err != nil {
		t.Fatalf("BuildChannelOpenAck: %v", err)
	}
	if msg.ChannelId != "channel-0" || msg.CounterpartyChannelId != "channel-9" {
		t.Fatalf("unexpected channel ids: %+v", msg)
	}
	if msg.CounterpartyVersion != ics20Version {
		t.Fatalf("counterparty version = %s, want %s", msg.CounterpartyVersion, ics20Version)
	}
	if len(msg.ProofTry) == 0 {
		t.Fatalf("expected a non-empty proof_try")
	}
}

func TestConfirmLocalChannelTransitionsToOpen(t *testing.T) {
	channel := NewLocalChannel("connection-0", "transfer", "channel-9")
	confirmed := ConfirmLocalChannel(channel)
	if confirmed.State != pb.ChannelStateOpen {
		t.Fatalf("state = %v, want Open", confirmed.State)
	}
	if channel.State != pb.ChannelStateTryOpen {
		t.Fatalf("ConfirmLocalChannel mutated its input")
	}
}
