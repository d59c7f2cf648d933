package ibc

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/ibcerrors"
	"github.com/soloibc/solo-machine/internal/pb"
	"github.com/soloibc/solo-machine/internal/rpcclient"
	"github.com/soloibc/solo-machine/internal/store"
	"github.com/soloibc/solo-machine/internal/txbuilder"
)

// broadcastOne wraps msg in its Any envelope, assembles a one-message
// transaction against the signer's current account number/sequence,
// and broadcasts it, blocking until deliver_tx resolves.
func (s *Service) broadcastOne(ctx context.Context, chain *store.Chain, typeURL string, msg codec.ProtoMessage, memo string) (*rpcclient.BroadcastResult, error) {
	any, err := txbuilder.ToAny(typeURL, msg)
	if err != nil {
		return nil, err
	}

	signerAddr, err := s.builder.Signer.ToAccountAddress()
	if err != nil {
		return nil, fmt.Errorf("%w: deriving signer address: %v", ibcerrors.ErrInvariantViolation, err)
	}
	account, err := s.query.QueryAccount(ctx, signerAddr)
	if err != nil {
		return nil, err
	}

	raw, err := s.builder.AssembleTx(ctx, chain.ID, account.AccountNumber, account.Sequence, []*pb.Any{any}, memo)
	if err != nil {
		return nil, err
	}
	return s.broadcaster.BroadcastTxCommit(ctx, raw)
}

// decodeHexHash decodes a hex-upper 32-byte hash as persisted in
// ChainConfigRow.TrustedHash, tolerating the empty string (no trusted
// hash was configured at registration).
func decodeHexHash(s string) ([32]byte, error) {
	var out [32]byte
	if s == "" {
		return out, nil
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return out, err
	}
	if len(raw) != 32 {
		return out, fmt.Errorf("expected 32 bytes, got %d", len(raw))
	}
	copy(out[:], raw)
	return out, nil
}

// durationFromNanos converts a ChainConfigRow's nanosecond-integer
// duration fields back to time.Duration.
func durationFromNanos(ns int64) time.Duration {
	return time.Duration(ns)
}
