package ibc

import (
	"context"
	"fmt"

	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/cryptokeys"
	"github.com/soloibc/solo-machine/internal/eventbus"
	"github.com/soloibc/solo-machine/internal/ibcerrors"
	"github.com/soloibc/solo-machine/internal/store"
)

// UpdateSigner rotates the solo machine's signing key: it broadcasts
// msg_update_solo_machine_client carrying newSigner's public key,
// signed under the current signer (the header proof attests to the
// rotation, per §4.3's `new_pub_key?` parameter), and only once that
// lands does it swap the builder over to newSigner for every
// subsequent operation against chainID's counterparty and any other
// chain sharing this process's builder.
func (s *Service) UpdateSigner(ctx context.Context, chainID string, newSigner cryptokeys.Signer, memo string) error {
	return s.dbClient.WithTx(ctx, func(tx *store.Tx) error {
		chain, err := s.chains.Get(ctx, tx, chainID)
		if err != nil {
			return err
		}
		if !chain.ConnectionDetails.Valid() {
			return fmt.Errorf("%w: chain %s has no established connection", ibcerrors.ErrNotFound, chainID)
		}

		newPublicKey, err := newSigner.ToPublicKey()
		if err != nil {
			return fmt.Errorf("%w: deriving new signer public key: %v", ibcerrors.ErrInvariantViolation, err)
		}

		sequence, err := s.chains.IncrementSequence(ctx, tx, chain.ID)
		if err != nil {
			return err
		}
		timestamp := chain.ConsensusTimestamp

		msg, err := s.builder.BuildUpdateSoloMachineClient(ctx, chain.ConnectionDetails.SoloMachineClientID, sequence, timestamp, newPublicKey, s.builder.Diversifier)
		if err != nil {
			return err
		}
		if _, err := s.broadcastOne(ctx, chain, codec.TypeURLMsgUpdateClient, msg, memo); err != nil {
			return err
		}

		s.builder.Signer = newSigner
		if err := s.recordSignerKey(ctx, tx, chain.ID); err != nil {
			return err
		}
		if err := s.advanceConsensusTimestamp(ctx, tx, chain); err != nil {
			return err
		}

		return s.events.Emit(ctx, eventbus.Event{
			Kind:    eventbus.KindSignerUpdated,
			ChainID: chainID,
			Data:    map[string]any{},
		})
	})
}
