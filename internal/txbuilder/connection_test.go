package txbuilder

import (
	"context"
	"testing"

	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/identifiers"
	"github.com/soloibc/solo-machine/internal/pb"
)

func TestBuildConnectionOpenInit(t *testing.T) {
	b, signer := newTestBuilder()
	msg, err := b.BuildConnectionOpenInit("07-tendermint-0", "06-solomachine-0")
	if err != nil {
		t.Fatalf("BuildConnectionOpenInit: %v", err)
	}
	if msg.ClientId != "07-tendermint-0" {
		t.Fatalf("msg.ClientId = %s, want 07-tendermint-0", msg.ClientId)
	}
	if msg.Counterparty.ClientId != "06-solomachine-0" {
		t.Fatalf("counterparty client id = %s, want 06-solomachine-0", msg.Counterparty.ClientId)
	}
	if string(msg.Counterparty.Prefix.KeyPrefix) != identifiers.IBCStorePrefix {
		t.Fatalf("counterparty prefix = %s, want %s", msg.Counterparty.Prefix.KeyPrefix, identifiers.IBCStorePrefix)
	}
	if msg.Signer != signer.address {
		t.Fatalf("msg.Signer = %s, want %s", msg.Signer, signer.address)
	}
}

func TestNewLocalConnectionEndIsTryOpen(t *testing.T) {
	end := NewLocalConnectionEnd("07-tendermint-0", "06-solomachine-0", "connection-7")
	if end.State != pb.ConnectionStateTryOpen {
		t.Fatalf("state = %v, want TryOpen", end.State)
	}
	if end.Counterparty.ConnectionId != "connection-7" {
		t.Fatalf("counterparty connection id = %s, want connection-7", end.Counterparty.ConnectionId)
	}
	if len(end.Versions) != 1 || end.Versions[0].Identifier != "1" {
		t.Fatalf("unexpected versions: %+v", end.Versions)
	}
}

func TestBuildConnectionOpenAckProvesLocalEnd(t *testing.T) {
	b, _ := newTestBuilder()
	localEnd := NewLocalConnectionEnd("07-tendermint-0", "06-solomachine-0", "connection-7")
	clientStateAny := &pb.Any{TypeUrl: codec.TypeURLSoloMachineClientState, Value: []byte("client-state")}
	msg, err := b.BuildConnectionOpenAck(
		context.Background(),
		"connection-0", "connection-7",
		5, 5000,
		localEnd,
		clientStateAny,
		&pb.Height{RevisionNumber: 0, RevisionHeight: 12},
	)
	if err != nil {
		t.Fatalf("BuildConnectionOpenAck: %v", err)
	}
	if msg.ConnectionId != "connection-0" || msg.CounterpartyConnectionId != "connection-7" {
		t.Fatalf("unexpected connection ids: %+v", msg)
	}
	if len(msg.ProofTry) == 0 {
		t.Fatalf("expected a non-empty proof_try")
	}
	if msg.ClientState != clientStateAny {
		t.Fatalf("client state not passed through")
	}
}

func TestConfirmLocalConnectionEndTransitionsToOpen(t *testing.T) {
	end := NewLocalConnectionEnd("07-tendermint-0", "06-solomachine-0", "connection-7")
	confirmed := ConfirmLocalConnectionEnd(end)
	if confirmed.State != pb.ConnectionStateOpen {
		t.Fatalf("state = %v, want Open", confirmed.State)
	}
	if end.State != pb.ConnectionStateTryOpen {
		t.Fatalf("ConfirmLocalConnectionEnd mutated its input")
	}
}
