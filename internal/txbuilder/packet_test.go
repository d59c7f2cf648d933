package txbuilder

import (
	"context"
	"encoding/hex"
	"testing"

	"github.com/soloibc/solo-machine/internal/pb"
)

func TestPacketCommitmentFixture(t *testing.T) {
	want, err := hex.DecodeString("a8f1f185b39b51085791ae2f32dc6bee5ffd8dbd521fefdb70ca109bf8cdb2c2")
	if err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}
	got := PacketCommitment(0, &pb.Height{RevisionNumber: 0, RevisionHeight: 100}, []byte("hello"))
	if hex.EncodeToString(got) != hex.EncodeToString(want) {
		t.Fatalf("PacketCommitment = %x, want %x", got, want)
	}
}

func TestPacketCommitmentDiffersOnTimeout(t *testing.T) {
	height := &pb.Height{RevisionNumber: 0, RevisionHeight: 100}
	a := PacketCommitment(0, height, []byte("hello"))
	b := PacketCommitment(1, height, []byte("hello"))
	if hex.EncodeToString(a) == hex.EncodeToString(b) {
		t.Fatalf("commitments with different timeout timestamps collided")
	}
}

func TestPacketAcknowledgementDigest(t *testing.T) {
	ack := []byte(`{"result":"AQ=="}`)
	got := PacketAcknowledgementDigest(ack)
	if len(got) != 32 {
		t.Fatalf("digest length = %d, want 32", len(got))
	}
	again := PacketAcknowledgementDigest(ack)
	if hex.EncodeToString(got) != hex.EncodeToString(again) {
		t.Fatalf("digest not deterministic")
	}
}

func TestBuildAcknowledgementBodyIsLiteralArray(t *testing.T) {
	b, _ := newTestBuilder()
	packet := &pb.Packet{
		DestinationPort:    "transfer",
		DestinationChannel: "channel-0",
		Sequence:           1,
	}
	msg, err := b.BuildAcknowledgement(context.Background(), 1, 1000, packet, &pb.Height{RevisionHeight: 100})
	if err != nil {
		t.Fatalf("BuildAcknowledgement: %v", err)
	}
	want := `{"result":[1]}`
	if string(msg.Acknowledgement) != want {
		t.Fatalf("acknowledgement body = %s, want %s", msg.Acknowledgement, want)
	}
}

func TestBuildTokenTransferPacketData(t *testing.T) {
	raw, err := BuildTokenTransferPacketData("uatom", "100", "solo1sender", "cosmos1receiver", "")
	if err != nil {
		t.Fatalf("BuildTokenTransferPacketData: %v", err)
	}
	want := `{"denom":"uatom","amount":"100","sender":"solo1sender","receiver":"cosmos1receiver"}`
	if string(raw) != want {
		t.Fatalf("packet data = %s, want %s", raw, want)
	}
}
