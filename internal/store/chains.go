package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// ChainRepository persists chain rows and their monotonic counters.
type ChainRepository struct {
	client *Client
}

// NewChainRepository constructs a ChainRepository over client.
func NewChainRepository(client *Client) *ChainRepository {
	return &ChainRepository{client: client}
}

// querier is satisfied by both *sql.DB and *sql.Tx, letting repository
// methods run either standalone or inside Client.WithTx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *ChainRepository) q(tx *Tx) querier {
	if tx != nil {
		return tx.Tx()
	}
	return r.client.db
}

// Insert creates a new chain row.
func (r *ChainRepository) Insert(ctx context.Context, tx *Tx, chain *Chain) error {
	configJSON, err := json.Marshal(chain.Config)
	if err != nil {
		return fmt.Errorf("marshaling chain config: %w", err)
	}
	_, err = r.q(tx).ExecContext(ctx, `
		INSERT INTO chains (id, node_id, config, consensus_timestamp, sequence, packet_sequence)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		chain.ID, chain.NodeID, configJSON, chain.ConsensusTimestamp, chain.Sequence, chain.PacketSequence)
	if err != nil {
		return fmt.Errorf("inserting chain %s: %w", chain.ID, err)
	}
	return nil
}

// Get loads a chain by id.
func (r *ChainRepository) Get(ctx context.Context, tx *Tx, id string) (*Chain, error) {
	row := r.q(tx).QueryRowContext(ctx, `
		SELECT id, node_id, config, consensus_timestamp, sequence, packet_sequence,
		       connection_details, created_at, updated_at
		FROM chains WHERE id = $1`, id)
	return scanChain(row)
}

func scanChain(row *sql.Row) (*Chain, error) {
	var c Chain
	var configJSON []byte
	var connectionDetailsJSON []byte
	if err := row.Scan(&c.ID, &c.NodeID, &configJSON, &c.ConsensusTimestamp, &c.Sequence,
		&c.PacketSequence, &connectionDetailsJSON, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrChainNotFound
		}
		return nil, fmt.Errorf("scanning chain row: %w", err)
	}
	if err := json.Unmarshal(configJSON, &c.Config); err != nil {
		return nil, fmt.Errorf("unmarshaling chain config: %w", err)
	}
	if len(connectionDetailsJSON) > 0 {
		var details ConnectionDetails
		if err := json.Unmarshal(connectionDetailsJSON, &details); err != nil {
			return nil, fmt.Errorf("unmarshaling connection details: %w", err)
		}
		c.ConnectionDetails = &details
	}
	return &c, nil
}

// IncrementSequence bumps the solo-machine signing counter by one and
// returns the pre-increment value consumed by the caller's proof. Must
// be called within the same transaction as any state mutation the proof
// guards, and before the RPC broadcast that consumes it (§5).
func (r *ChainRepository) IncrementSequence(ctx context.Context, tx *Tx, chainID string) (uint64, error) {
	var consumed uint64
	row := r.q(tx).QueryRowContext(ctx, `
		UPDATE chains SET sequence = sequence + 1, updated_at = now()
		WHERE id = $1
		RETURNING sequence - 1`, chainID)
	if err := row.Scan(&consumed); err != nil {
		if err == sql.ErrNoRows {
			return 0, ErrChainNotFound
		}
		return 0, fmt.Errorf("incrementing sequence for chain %s: %w", chainID, err)
	}
	return consumed, nil
}

// IncrementPacketSequence bumps the ICS-04 outbound packet counter by
// one and returns the pre-increment value.
func (r *ChainRepository) IncrementPacketSequence(ctx context.Context, tx *Tx, chainID string) (uint64, error) {
	var consumed uint64
	row := r.q(tx).QueryRowContext(ctx, `
		UPDATE chains SET packet_sequence = packet_sequence + 1, updated_at = now()
		WHERE id = $1
		RETURNING packet_sequence - 1`, chainID)
	if err := row.Scan(&consumed); err != nil {
		if err == sql.ErrNoRows {
			return 0, ErrChainNotFound
		}
		return 0, fmt.Errorf("incrementing packet sequence for chain %s: %w", chainID, err)
	}
	return consumed, nil
}

// SetConsensusTimestamp updates the chain's consensus_timestamp, used
// when a header rotation also advances the solo machine's clock.
func (r *ChainRepository) SetConsensusTimestamp(ctx context.Context, tx *Tx, chainID string, ts uint64) error {
	res, err := r.q(tx).ExecContext(ctx, `
		UPDATE chains SET consensus_timestamp = $2, updated_at = now() WHERE id = $1`, chainID, ts)
	if err != nil {
		return fmt.Errorf("updating consensus timestamp for chain %s: %w", chainID, err)
	}
	return requireRowsAffected(res, ErrChainNotFound)
}

// SetConnectionDetails persists the six connection identifiers once a
// handshake completes.
func (r *ChainRepository) SetConnectionDetails(ctx context.Context, tx *Tx, chainID string, details ConnectionDetails) error {
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("marshaling connection details: %w", err)
	}
	res, err := r.q(tx).ExecContext(ctx, `
		UPDATE chains SET connection_details = $2, updated_at = now() WHERE id = $1`, chainID, detailsJSON)
	if err != nil {
		return fmt.Errorf("setting connection details for chain %s: %w", chainID, err)
	}
	return requireRowsAffected(res, ErrChainNotFound)
}

func requireRowsAffected(res sql.Result, notFoundErr error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if n == 0 {
		return notFoundErr
	}
	return nil
}
