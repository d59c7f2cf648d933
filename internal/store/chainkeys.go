package store

import (
	"context"
	"fmt"
)

// ChainKeyRepository records the public keys a chain has ever signed
// with, hex-upper encoded per §6's persisted-layout note.
type ChainKeyRepository struct {
	client *Client
}

// NewChainKeyRepository constructs a ChainKeyRepository over client.
func NewChainKeyRepository(client *Client) *ChainKeyRepository {
	return &ChainKeyRepository{client: client}
}

func (r *ChainKeyRepository) q(tx *Tx) querier {
	if tx != nil {
		return tx.Tx()
	}
	return r.client.db
}

// Insert records a new public key for chainID.
func (r *ChainKeyRepository) Insert(ctx context.Context, tx *Tx, chainID, publicKeyHexUpper string) error {
	_, err := r.q(tx).ExecContext(ctx, `
		INSERT INTO chain_keys (chain_id, public_key) VALUES ($1, $2)`, chainID, publicKeyHexUpper)
	if err != nil {
		return fmt.Errorf("inserting chain key for %s: %w", chainID, err)
	}
	return nil
}

// List returns every public key ever recorded for chainID, oldest
// first.
func (r *ChainKeyRepository) List(ctx context.Context, tx *Tx, chainID string) ([]ChainKey, error) {
	rows, err := r.q(tx).QueryContext(ctx, `
		SELECT id, chain_id, public_key, created_at
		FROM chain_keys WHERE chain_id = $1 ORDER BY id ASC`, chainID)
	if err != nil {
		return nil, fmt.Errorf("listing chain keys for %s: %w", chainID, err)
	}
	defer rows.Close()

	var keys []ChainKey
	for rows.Next() {
		var k ChainKey
		if err := rows.Scan(&k.ID, &k.ChainID, &k.PublicKey, &k.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning chain key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
