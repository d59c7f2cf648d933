package chainservice

import (
	"context"
	"math/big"
	"testing"

	"github.com/soloibc/solo-machine/internal/config"
)

type fakeStatusClient struct {
	info StatusInfo
	err  error
}

func (f *fakeStatusClient) Status(ctx context.Context, rpcAddr string) (StatusInfo, error) {
	return f.info, f.err
}

type fakeBalanceClient struct {
	balance *big.Int
	err     error
}

func (f *fakeBalanceClient) QueryBalance(ctx context.Context, grpcAddr, address, denom string) (*big.Int, error) {
	return f.balance, f.err
}

type statusErr struct{}

func (e *statusErr) Error() string { return "status unavailable" }

func TestChainConfigRowRoundTripsTrustedHash(t *testing.T) {
	cfg := config.ChainConfig{
		GRPCAddr:        "localhost:9090",
		RPCAddr:         "localhost:26657",
		FeeAmount:       "5000",
		FeeDenom:        "stake",
		FeeGasLimit:     200000,
		TrustLevelNum:   1,
		TrustLevelDenom: 3,
		Diversifier:     "solo-machine",
		PortID:          "transfer",
		TrustedHeight:   100,
	}
	cfg.TrustedHash[0] = 0xab
	cfg.TrustedHash[31] = 0xcd

	row := chainConfigRow(cfg)
	if row.TrustedHash != "AB000000000000000000000000000000000000000000000000000000000000CD" {
		t.Fatalf("unexpected trusted hash encoding: %s", row.TrustedHash)
	}
	if row.GRPCAddr != cfg.GRPCAddr || row.PortID != cfg.PortID || row.TrustedHeight != cfg.TrustedHeight {
		t.Fatalf("chainConfigRow dropped fields: %+v", row)
	}
}

func TestAddRejectsEmptyChainID(t *testing.T) {
	s := New(nil, nil, &fakeStatusClient{info: StatusInfo{ChainID: "", NodeID: "node-0"}}, nil)
	_, err := s.Add(context.Background(), config.ChainConfig{RPCAddr: "localhost:26657"})
	if err == nil {
		t.Fatal("expected Add to reject an empty chain id from status")
	}
}

func TestAddPropagatesStatusError(t *testing.T) {
	s := New(nil, nil, &fakeStatusClient{err: &statusErr{}}, nil)
	_, err := s.Add(context.Background(), config.ChainConfig{RPCAddr: "localhost:26657"})
	if err == nil {
		t.Fatal("expected Add to propagate the status error")
	}
}
