package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/big"
)

// AccountRepository persists per-(address,denom) balances and their
// append-only operation ledger. Every mutation goes through Credit or
// Debit so the balance invariant (never negative) is enforced at the
// single point of truth.
type AccountRepository struct {
	client *Client
}

// NewAccountRepository constructs an AccountRepository over client.
func NewAccountRepository(client *Client) *AccountRepository {
	return &AccountRepository{client: client}
}

func (r *AccountRepository) q(tx *Tx) querier {
	if tx != nil {
		return tx.Tx()
	}
	return r.client.db
}

// Balance returns the current balance for (address, denom), or "0" if
// no row exists yet.
func (r *AccountRepository) Balance(ctx context.Context, tx *Tx, address, denom string) (*big.Int, error) {
	var raw string
	err := r.q(tx).QueryRowContext(ctx, `
		SELECT balance::text FROM accounts WHERE address = $1 AND denom = $2`, address, denom).Scan(&raw)
	if err == sql.ErrNoRows {
		return big.NewInt(0), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading balance for %s/%s: %w", address, denom, err)
	}
	balance, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("parsing balance %q for %s/%s", raw, address, denom)
	}
	return balance, nil
}

// Credit increases an account's balance and appends a ledger entry.
// Used for mint and receive operations.
func (r *AccountRepository) Credit(ctx context.Context, tx *Tx, address, denom string, amount *big.Int, opType AccountOperationType) error {
	if amount.Sign() < 0 {
		return fmt.Errorf("credit amount must be non-negative, got %s", amount)
	}
	if err := r.upsertBalance(ctx, tx, address, denom, amount); err != nil {
		return err
	}
	return r.appendOperation(ctx, tx, address, denom, amount, opType)
}

// Debit decreases an account's balance and appends a ledger entry,
// failing with ErrInsufficientBalance if the result would go negative.
// Used for burn and send operations.
func (r *AccountRepository) Debit(ctx context.Context, tx *Tx, address, denom string, amount *big.Int, opType AccountOperationType) error {
	if amount.Sign() < 0 {
		return fmt.Errorf("debit amount must be non-negative, got %s", amount)
	}
	balance, err := r.Balance(ctx, tx, address, denom)
	if err != nil {
		return err
	}
	if balance.Cmp(amount) < 0 {
		return fmt.Errorf("%w: %s/%s has %s, needs %s", ErrInsufficientBalance, address, denom, balance, amount)
	}

	negative := new(big.Int).Neg(amount)
	if err := r.upsertBalance(ctx, tx, address, denom, negative); err != nil {
		return err
	}
	return r.appendOperation(ctx, tx, address, denom, negative, opType)
}

func (r *AccountRepository) upsertBalance(ctx context.Context, tx *Tx, address, denom string, delta *big.Int) error {
	_, err := r.q(tx).ExecContext(ctx, `
		INSERT INTO accounts (address, denom, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (address, denom) DO UPDATE
		SET balance = accounts.balance + EXCLUDED.balance, updated_at = now()`,
		address, denom, delta.String())
	if err != nil {
		return fmt.Errorf("updating balance for %s/%s: %w", address, denom, err)
	}
	return nil
}

func (r *AccountRepository) appendOperation(ctx context.Context, tx *Tx, address, denom string, signedAmount *big.Int, opType AccountOperationType) error {
	opTypeJSON, err := json.Marshal(opType)
	if err != nil {
		return fmt.Errorf("marshaling operation type: %w", err)
	}
	_, err = r.q(tx).ExecContext(ctx, `
		INSERT INTO account_operations (address, denom, amount, operation_type)
		VALUES ($1, $2, $3, $4)`, address, denom, signedAmount.String(), opTypeJSON)
	if err != nil {
		return fmt.Errorf("appending account operation for %s/%s: %w", address, denom, err)
	}
	return nil
}

// History returns an account's operations newest-first, limit/offset
// paginated per §4.6.
func (r *AccountRepository) History(ctx context.Context, tx *Tx, address, denom string, limit, offset int) ([]AccountOperation, error) {
	rows, err := r.q(tx).QueryContext(ctx, `
		SELECT id, address, denom, amount, operation_type, created_at
		FROM account_operations
		WHERE address = $1 AND denom = $2
		ORDER BY id DESC
		LIMIT $3 OFFSET $4`, address, denom, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying history for %s/%s: %w", address, denom, err)
	}
	defer rows.Close()

	var ops []AccountOperation
	for rows.Next() {
		var op AccountOperation
		var opTypeJSON []byte
		if err := rows.Scan(&op.ID, &op.Address, &op.Denom, &op.Amount, &opTypeJSON, &op.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning account operation: %w", err)
		}
		if err := json.Unmarshal(opTypeJSON, &op.OperationType); err != nil {
			return nil, fmt.Errorf("unmarshaling operation type: %w", err)
		}
		ops = append(ops, op)
	}
	return ops, rows.Err()
}
