package bank

import (
	"context"
	"math/big"
	"testing"

	"github.com/soloibc/solo-machine/internal/ibcerrors"
	"github.com/soloibc/solo-machine/internal/store"
)

func TestIsAddition(t *testing.T) {
	cases := map[string]bool{
		"mint":    true,
		"receive": true,
		"burn":    false,
		"send":    false,
	}
	for kind, want := range cases {
		if got := isAddition(kind); got != want {
			t.Errorf("isAddition(%q) = %v, want %v", kind, got, want)
		}
	}
}

func TestAddTokensRejectsSubtractiveKind(t *testing.T) {
	s := &Service{}
	err := s.AddTokens(context.Background(), nil, "addr", "uatom", big.NewInt(10), store.AccountOperationType{Kind: "burn"})
	if err == nil {
		t.Fatal("expected AddTokens to reject a subtractive operation kind")
	}
}

func TestRemoveTokensRejectsAdditiveKind(t *testing.T) {
	s := &Service{}
	err := s.RemoveTokens(context.Background(), nil, "addr", "uatom", big.NewInt(10), store.AccountOperationType{Kind: "mint"})
	if err == nil {
		t.Fatal("expected RemoveTokens to reject an additive operation kind")
	}
}

func TestRemoveTokensRejectsReceiveKind(t *testing.T) {
	s := &Service{}
	err := s.RemoveTokens(context.Background(), nil, "addr", "uatom", big.NewInt(10), store.AccountOperationType{Kind: "receive"})
	if err == nil {
		t.Fatal("expected RemoveTokens to reject a receive operation kind")
	}
	if ibcerrors.Is(err, ibcerrors.ErrInvariantViolation) {
		t.Fatal("this is an input-validation mistake by the caller, not an invariant violation")
	}
}
