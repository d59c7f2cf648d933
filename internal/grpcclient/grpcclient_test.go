package grpcclient

import (
	"testing"

	"github.com/soloibc/solo-machine/internal/pb"
)

func TestGogoprotoCodecRoundTrips(t *testing.T) {
	c := gogoprotoCodec{}
	if c.Name() != codecName {
		t.Fatalf("Name() = %q, want %q", c.Name(), codecName)
	}

	req := &pb.QueryBalanceRequest{Address: "cosmos1abc", Denom: "uatom"}
	data, err := c.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got := &pb.QueryBalanceRequest{}
	if err := c.Unmarshal(data, got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Address != req.Address || got.Denom != req.Denom {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, req)
	}
}

func TestGogoprotoCodecRejectsNonProtoMessages(t *testing.T) {
	c := gogoprotoCodec{}
	if _, err := c.Marshal("not a proto message"); err == nil {
		t.Fatal("expected Marshal to reject a non-ProtoMessage value")
	}
	if err := c.Unmarshal([]byte{}, "not a proto message"); err == nil {
		t.Fatal("expected Unmarshal to reject a non-ProtoMessage value")
	}
}

func TestQueryBalanceResponseBalanceIsNilWhenUnset(t *testing.T) {
	resp := &pb.QueryBalanceResponse{}
	if resp.GetBalance() != nil {
		t.Fatal("expected nil balance on a zero-value response")
	}
}
