package txbuilder

import (
	"context"
	"testing"

	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/cryptokeys"
	"github.com/soloibc/solo-machine/internal/pb"
)

func TestAssembleTxSignsOverBodyAndAuthInfo(t *testing.T) {
	b, signer := newTestBuilder()
	msgAny := &pb.Any{TypeUrl: codec.TypeURLMsgTransfer, Value: []byte("transfer-msg")}

	tx, err := b.AssembleTx(context.Background(), "testnet-1", 42, 7, []*pb.Any{msgAny}, "memo")
	if err != nil {
		t.Fatalf("AssembleTx: %v", err)
	}
	if len(tx.Signatures) != 1 {
		t.Fatalf("signatures = %d, want 1", len(tx.Signatures))
	}
	if signer.lastKind != cryptokeys.SignMessageSignDoc {
		t.Fatalf("signer invoked with kind %d, want SignMessageSignDoc", signer.lastKind)
	}
	if len(tx.BodyBytes) == 0 || len(tx.AuthInfoBytes) == 0 {
		t.Fatalf("expected non-empty body and auth info bytes")
	}

	var body pb.TxBody
	if err := codec.Unmarshal(tx.BodyBytes, &body); err != nil {
		t.Fatalf("unmarshaling body bytes: %v", err)
	}
	if len(body.Messages) != 1 || body.Messages[0].TypeUrl != codec.TypeURLMsgTransfer {
		t.Fatalf("unexpected body messages: %+v", body.Messages)
	}
	if body.Memo != "memo" {
		t.Fatalf("body memo = %s, want memo", body.Memo)
	}

	var authInfo pb.AuthInfo
	if err := codec.Unmarshal(tx.AuthInfoBytes, &authInfo); err != nil {
		t.Fatalf("unmarshaling auth info bytes: %v", err)
	}
	if len(authInfo.SignerInfos) != 1 || authInfo.SignerInfos[0].Sequence != 7 {
		t.Fatalf("unexpected signer infos: %+v", authInfo.SignerInfos)
	}
	if authInfo.Fee.GasLimit != b.FeeGasLimit {
		t.Fatalf("fee gas limit = %d, want %d", authInfo.Fee.GasLimit, b.FeeGasLimit)
	}
}

func TestAssembleTxPropagatesSignerError(t *testing.T) {
	b, signer := newTestBuilder()
	signer.signErr = context.DeadlineExceeded
	msgAny := &pb.Any{TypeUrl: codec.TypeURLMsgTransfer, Value: []byte("transfer-msg")}
	if _, err := b.AssembleTx(context.Background(), "testnet-1", 1, 1, []*pb.Any{msgAny}, ""); err == nil {
		t.Fatalf("expected an error when the signer fails")
	}
}
