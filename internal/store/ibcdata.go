package store

import (
	"context"
	"database/sql"
	"fmt"
)

// IBCDataRepository is the path -> protobuf-bytes store backing client
// states, consensus states, connection ends, and channels (§4.7).
// Lifecycle per §3: insert on first handshake step, update in place as
// a state transitions, never delete.
type IBCDataRepository struct {
	client *Client
}

// NewIBCDataRepository constructs an IBCDataRepository over client.
func NewIBCDataRepository(client *Client) *IBCDataRepository {
	return &IBCDataRepository{client: client}
}

func (r *IBCDataRepository) q(tx *Tx) querier {
	if tx != nil {
		return tx.Tx()
	}
	return r.client.db
}

// Put inserts a new path or overwrites an existing one in place.
func (r *IBCDataRepository) Put(ctx context.Context, tx *Tx, path string, data []byte) error {
	_, err := r.q(tx).ExecContext(ctx, `
		INSERT INTO ibc_data (path, data)
		VALUES ($1, $2)
		ON CONFLICT (path) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		path, data)
	if err != nil {
		return fmt.Errorf("writing ibc_data at %s: %w", path, err)
	}
	return nil
}

// Get reads the raw bytes stored at path.
func (r *IBCDataRepository) Get(ctx context.Context, tx *Tx, path string) ([]byte, error) {
	var data []byte
	err := r.q(tx).QueryRowContext(ctx, `SELECT data FROM ibc_data WHERE path = $1`, path).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrIBCPathNotFound
		}
		return nil, fmt.Errorf("reading ibc_data at %s: %w", path, err)
	}
	return data, nil
}

// Has reports whether path has a stored value.
func (r *IBCDataRepository) Has(ctx context.Context, tx *Tx, path string) (bool, error) {
	_, err := r.Get(ctx, tx, path)
	if err == nil {
		return true, nil
	}
	if IsNotFound(err) {
		return false, nil
	}
	return false, err
}
