// Package bank implements §4.6's bank service: balance-changing
// operations enforcing the add/remove naming convention, and
// mint/burn as their own committed transactions emitting events.
package bank

import (
	"context"
	"fmt"
	"math/big"

	"github.com/soloibc/solo-machine/internal/eventbus"
	"github.com/soloibc/solo-machine/internal/store"
)

// Service wraps an AccountRepository with the operation-kind naming
// §4.6 requires and the event emission mint/burn need.
type Service struct {
	client   *store.Client
	accounts *store.AccountRepository
	events   *eventbus.Bus
}

// New constructs a bank Service.
func New(client *store.Client, accounts *store.AccountRepository, events *eventbus.Bus) *Service {
	return &Service{client: client, accounts: accounts, events: events}
}

// AddTokens credits address/denom by amount under opType, requiring
// opType to be an additive kind (mint or receive). tx may be nil to run
// standalone, or a transaction the caller is composing a larger
// operation (e.g. ibc's ReceiveFromChain) within.
func (s *Service) AddTokens(ctx context.Context, tx *store.Tx, address, denom string, amount *big.Int, opType store.AccountOperationType) error {
	if !isAddition(opType.Kind) {
		return fmt.Errorf("bank: AddTokens requires an additive operation kind, got %q", opType.Kind)
	}
	return s.accounts.Credit(ctx, tx, address, denom, amount, opType)
}

// RemoveTokens debits address/denom by amount under opType, requiring
// opType to be a subtractive kind (burn or send).
func (s *Service) RemoveTokens(ctx context.Context, tx *store.Tx, address, denom string, amount *big.Int, opType store.AccountOperationType) error {
	if isAddition(opType.Kind) {
		return fmt.Errorf("bank: RemoveTokens requires a subtractive operation kind, got %q", opType.Kind)
	}
	return s.accounts.Debit(ctx, tx, address, denom, amount, opType)
}

func isAddition(kind string) bool {
	return kind == "mint" || kind == "receive"
}

// Mint credits signer's account in its own committed transaction and
// emits TokensMinted.
func (s *Service) Mint(ctx context.Context, signer, denom string, amount *big.Int) error {
	err := s.client.WithTx(ctx, func(tx *store.Tx) error {
		return s.AddTokens(ctx, tx, signer, denom, amount, store.AccountOperationType{Kind: "mint"})
	})
	if err != nil {
		return fmt.Errorf("minting %s %s to %s: %w", amount, denom, signer, err)
	}
	return s.events.Emit(ctx, eventbus.Event{
		Kind: eventbus.KindTokensMinted,
		Data: map[string]any{"address": signer, "denom": denom, "amount": amount.String()},
	})
}

// Burn debits signer's account in its own committed transaction and
// emits TokensBurnt.
func (s *Service) Burn(ctx context.Context, signer, denom string, amount *big.Int) error {
	err := s.client.WithTx(ctx, func(tx *store.Tx) error {
		return s.RemoveTokens(ctx, tx, signer, denom, amount, store.AccountOperationType{Kind: "burn"})
	})
	if err != nil {
		return fmt.Errorf("burning %s %s from %s: %w", amount, denom, signer, err)
	}
	return s.events.Emit(ctx, eventbus.Event{
		Kind: eventbus.KindTokensBurnt,
		Data: map[string]any{"address": signer, "denom": denom, "amount": amount.String()},
	})
}

// Balance returns address's current balance for denom, "0" if the
// account has never been credited (§7's "absent account treated as
// zero" recovery).
func (s *Service) Balance(ctx context.Context, address, denom string) (*big.Int, error) {
	return s.accounts.Balance(ctx, nil, address, denom)
}

// History returns address's operations on denom, newest first.
func (s *Service) History(ctx context.Context, address, denom string, limit, offset int) ([]store.AccountOperation, error) {
	return s.accounts.History(ctx, nil, address, denom, limit, offset)
}
