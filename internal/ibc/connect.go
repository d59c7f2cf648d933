package ibc

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/config"
	"github.com/soloibc/solo-machine/internal/eventbus"
	"github.com/soloibc/solo-machine/internal/ibcerrors"
	"github.com/soloibc/solo-machine/internal/identifiers"
	"github.com/soloibc/solo-machine/internal/lightclient"
	"github.com/soloibc/solo-machine/internal/pb"
	"github.com/soloibc/solo-machine/internal/store"
	"github.com/soloibc/solo-machine/internal/txbuilder"
)

// Connect drives the full client/connection/channel handshake against
// chainID's counterparty chain inside a single database transaction:
// either every step lands and ConnectionDetails is persisted, or none
// of it is, per §4.4.
func (s *Service) Connect(ctx context.Context, chainID, memo string) error {
	return s.dbClient.WithTx(ctx, func(tx *store.Tx) error {
		chain, err := s.chains.Get(ctx, tx, chainID)
		if err != nil {
			return err
		}
		if chain.ConnectionDetails.Valid() {
			return fmt.Errorf("%w: chain %s already completed the connect handshake", ibcerrors.ErrInvariantViolation, chainID)
		}
		cfg := chainConfigFromRow(chain.Config)

		genesis, err := s.fetchTrustedGenesis(ctx, cfg)
		if err != nil {
			return err
		}

		soloMachineClientID, soloMachineClientStateAny, err := s.createSoloMachineClient(ctx, tx, chain, memo)
		if err != nil {
			return err
		}

		tendermintClientID, err := s.createTendermintClient(ctx, tx, chain, cfg, genesis)
		if err != nil {
			return err
		}

		tendermintConnectionID, err := s.initConnectionOnChain(ctx, chain, soloMachineClientID, tendermintClientID, memo)
		if err != nil {
			return err
		}

		soloMachineConnectionID, localConnectionEnd, err := s.tryConnectionLocally(ctx, tx, chain, tendermintClientID, soloMachineClientID, tendermintConnectionID)
		if err != nil {
			return err
		}

		if err := s.ackConnectionOnChain(ctx, tx, chain, tendermintConnectionID, soloMachineConnectionID, localConnectionEnd, soloMachineClientStateAny, memo); err != nil {
			return err
		}

		if err := s.confirmConnectionLocally(ctx, tx, chain, soloMachineConnectionID, localConnectionEnd); err != nil {
			return err
		}

		tendermintChannelID, err := s.initChannelOnChain(ctx, chain, tendermintConnectionID, memo)
		if err != nil {
			return err
		}

		soloMachineChannelID, localChannel, err := s.tryChannelLocally(ctx, tx, chain, soloMachineConnectionID, tendermintChannelID)
		if err != nil {
			return err
		}

		if err := s.ackChannelOnChain(ctx, tx, chain, tendermintChannelID, soloMachineChannelID, localChannel, memo); err != nil {
			return err
		}

		if err := s.confirmChannelLocally(ctx, tx, chain, soloMachineChannelID, localChannel); err != nil {
			return err
		}

		details := store.ConnectionDetails{
			SoloMachineClientID:     soloMachineClientID,
			TendermintClientID:      tendermintClientID,
			SoloMachineConnectionID: soloMachineConnectionID,
			TendermintConnectionID:  tendermintConnectionID,
			SoloMachineChannelID:    soloMachineChannelID,
			TendermintChannelID:     tendermintChannelID,
		}
		if err := s.chains.SetConnectionDetails(ctx, tx, chainID, details); err != nil {
			return err
		}
		return s.events.Emit(ctx, eventbus.Event{
			Kind:    eventbus.KindConnectionEstablished,
			ChainID: chainID,
			Data: map[string]any{
				"solo_machine_client_id":     details.SoloMachineClientID,
				"tendermint_client_id":       details.TendermintClientID,
				"solo_machine_connection_id": details.SoloMachineConnectionID,
				"tendermint_connection_id":   details.TendermintConnectionID,
				"solo_machine_channel_id":    details.SoloMachineChannelID,
				"tendermint_channel_id":      details.TendermintChannelID,
			},
		})
	})
}

// fetchTrustedGenesis anchors step 2 of the handshake: it reads the
// genesis light block at cfg.TrustedHeight (or the chain's current
// height, when no trusted height was pinned at registration) and, when
// a trusted hash was configured, checks it against the block actually
// returned before any client state is derived from it.
func (s *Service) fetchTrustedGenesis(ctx context.Context, cfg config.ChainConfig) (lightclient.LightBlock, error) {
	height := int64(cfg.TrustedHeight)
	if height == 0 {
		latest, err := s.lightBlocks.LatestHeight(ctx)
		if err != nil {
			return lightclient.LightBlock{}, err
		}
		height = latest
	}

	genesis, err := s.lightBlocks.LightBlock(ctx, height)
	if err != nil {
		return lightclient.LightBlock{}, err
	}

	var zero [32]byte
	if cfg.TrustedHash != zero {
		if genesis.SignedHeader == nil || !bytes.Equal(genesis.SignedHeader.Commit.BlockID.Hash, cfg.TrustedHash[:]) {
			return lightclient.LightBlock{}, fmt.Errorf("%w: block at height %d does not match the configured trusted hash",
				ibcerrors.ErrLightClientFailure, height)
		}
	}
	return genesis, nil
}

// createSoloMachineClient is step 3: broadcast msg_create_solo_machine_client
// and extract the on-chain client id it was assigned, returning also the
// client state Any that was broadcast, needed verbatim by the later ack
// step's proof.
func (s *Service) createSoloMachineClient(ctx context.Context, tx *store.Tx, chain *store.Chain, memo string) (string, *pb.Any, error) {
	sequence, err := s.chains.IncrementSequence(ctx, tx, chain.ID)
	if err != nil {
		return "", nil, err
	}
	timestamp := chain.ConsensusTimestamp

	msg, err := s.builder.BuildCreateSoloMachineClient(ctx, sequence, timestamp)
	if err != nil {
		return "", nil, err
	}
	result, err := s.broadcastOne(ctx, chain, codec.TypeURLMsgCreateClient, msg, memo)
	if err != nil {
		return "", nil, err
	}

	clientID, err := findAttribute(result.Events, "create_client", "client_id")
	if err != nil {
		return "", nil, err
	}
	if err := s.recordSignerKey(ctx, tx, chain.ID); err != nil {
		return "", nil, err
	}
	if err := s.events.Emit(ctx, eventbus.Event{
		Kind:    eventbus.KindCreatedSoloMachineClient,
		ChainID: chain.ID,
		Data:    map[string]any{"client_id": clientID},
	}); err != nil {
		return "", nil, err
	}
	return clientID, msg.ClientState, nil
}

// createTendermintClient is step 4: derive the Tendermint client and
// consensus state from the trusted genesis block and persist both
// locally under a freshly generated 07-tendermint-XXXX id.
func (s *Service) createTendermintClient(ctx context.Context, tx *store.Tx, chain *store.Chain, cfg config.ChainConfig, genesis lightclient.LightBlock) (string, error) {
	unbondingPeriod, err := s.query.QueryUnbondingPeriod(ctx)
	if err != nil {
		return "", err
	}

	msg, err := s.builder.BuildCreateTendermintClient(chain.ID, cfg, genesis, unbondingPeriod)
	if err != nil {
		return "", err
	}

	clientID, err := identifiers.Generate(identifiers.PrefixSoloMachineClient)
	if err != nil {
		return "", fmt.Errorf("%w: generating tendermint client id: %v", ibcerrors.ErrInvariantViolation, err)
	}

	if err := s.ibcData.Put(ctx, tx, identifiers.ClientStatePath(clientID).String(), msg.ClientState.Value); err != nil {
		return "", err
	}

	clientState := &pb.TendermintClientState{}
	if err := codec.FromAny(msg.ClientState, codec.TypeURLTendermintClientState, clientState); err != nil {
		return "", err
	}
	consensusPath := identifiers.ConsensusStatePath(
		clientID,
		clientState.GetLatestHeight().GetRevisionNumber(),
		clientState.GetLatestHeight().GetRevisionHeight(),
	)
	if err := s.ibcData.Put(ctx, tx, consensusPath.String(), msg.ConsensusState.Value); err != nil {
		return "", err
	}

	if err := s.events.Emit(ctx, eventbus.Event{
		Kind:    eventbus.KindCreatedTendermintClient,
		ChainID: chain.ID,
		Data:    map[string]any{"client_id": clientID},
	}); err != nil {
		return "", err
	}
	return clientID, nil
}

// initConnectionOnChain is step 5: broadcast msg_connection_open_init
// against the client the chain assigned to the solo machine in step 3.
func (s *Service) initConnectionOnChain(ctx context.Context, chain *store.Chain, soloMachineClientID, tendermintClientID, memo string) (string, error) {
	msg, err := s.builder.BuildConnectionOpenInit(soloMachineClientID, tendermintClientID)
	if err != nil {
		return "", err
	}
	result, err := s.broadcastOne(ctx, chain, codec.TypeURLMsgConnectionOpenInit, msg, memo)
	if err != nil {
		return "", err
	}
	connectionID, err := findAttribute(result.Events, "connection_open_init", "connection_id")
	if err != nil {
		return "", err
	}
	if err := s.events.Emit(ctx, eventbus.Event{
		Kind:    eventbus.KindInitializedConnectionOnTendermint,
		ChainID: chain.ID,
		Data:    map[string]any{"connection_id": connectionID},
	}); err != nil {
		return "", err
	}
	return connectionID, nil
}

// tryConnectionLocally is step 6: the solo machine's own mirror of the
// TryOpen connection end, keyed by a freshly generated connection-XXXX
// id, never broadcast anywhere.
func (s *Service) tryConnectionLocally(ctx context.Context, tx *store.Tx, chain *store.Chain, tendermintClientID, soloMachineClientID, tendermintConnectionID string) (string, *pb.ConnectionEnd, error) {
	connectionID, err := identifiers.Generate(identifiers.PrefixConnection)
	if err != nil {
		return "", nil, fmt.Errorf("%w: generating connection id: %v", ibcerrors.ErrInvariantViolation, err)
	}
	connectionEnd := txbuilder.NewLocalConnectionEnd(tendermintClientID, soloMachineClientID, tendermintConnectionID)

	raw, err := codec.Marshal(connectionEnd)
	if err != nil {
		return "", nil, err
	}
	if err := s.ibcData.Put(ctx, tx, identifiers.ConnectionPath(connectionID).String(), raw); err != nil {
		return "", nil, err
	}

	if err := s.events.Emit(ctx, eventbus.Event{
		Kind:    eventbus.KindInitializedConnectionOnSoloMachine,
		ChainID: chain.ID,
		Data:    map[string]any{"connection_id": connectionID},
	}); err != nil {
		return "", nil, err
	}
	return connectionID, connectionEnd, nil
}

// ackConnectionOnChain is step 7: broadcast msg_connection_open_ack
// proving the locally stored TryOpen connection end at
// proof_height={0, chain.sequence} before the sequence bump.
func (s *Service) ackConnectionOnChain(
	ctx context.Context, tx *store.Tx, chain *store.Chain,
	tendermintConnectionID, soloMachineConnectionID string,
	localConnectionEnd *pb.ConnectionEnd, clientStateAny *pb.Any, memo string,
) error {
	sequence, err := s.chains.IncrementSequence(ctx, tx, chain.ID)
	if err != nil {
		return err
	}
	timestamp := chain.ConsensusTimestamp
	proofHeight := &pb.Height{RevisionNumber: 0, RevisionHeight: sequence}

	msg, err := s.builder.BuildConnectionOpenAck(ctx, tendermintConnectionID, soloMachineConnectionID, sequence, timestamp, localConnectionEnd, clientStateAny, proofHeight)
	if err != nil {
		return err
	}
	if _, err := s.broadcastOne(ctx, chain, codec.TypeURLMsgConnectionOpenAck, msg, memo); err != nil {
		return err
	}
	return s.events.Emit(ctx, eventbus.Event{
		Kind:    eventbus.KindConfirmedConnectionOnTendermint,
		ChainID: chain.ID,
		Data:    map[string]any{"connection_id": tendermintConnectionID},
	})
}

// confirmConnectionLocally is step 8: flip the locally stored
// connection end to Open; connection_open_confirm never reaches chain.
func (s *Service) confirmConnectionLocally(ctx context.Context, tx *store.Tx, chain *store.Chain, soloMachineConnectionID string, localConnectionEnd *pb.ConnectionEnd) error {
	confirmed := txbuilder.ConfirmLocalConnectionEnd(localConnectionEnd)
	raw, err := codec.Marshal(confirmed)
	if err != nil {
		return err
	}
	if err := s.ibcData.Put(ctx, tx, identifiers.ConnectionPath(soloMachineConnectionID).String(), raw); err != nil {
		return err
	}
	return s.events.Emit(ctx, eventbus.Event{
		Kind:    eventbus.KindConfirmedConnectionOnSoloMachine,
		ChainID: chain.ID,
		Data:    map[string]any{"connection_id": soloMachineConnectionID},
	})
}

// initChannelOnChain is step 9: broadcast msg_channel_open_init over
// the connection the chain assigned in step 5.
func (s *Service) initChannelOnChain(ctx context.Context, chain *store.Chain, tendermintConnectionID, memo string) (string, error) {
	msg, err := s.builder.BuildChannelOpenInit(tendermintConnectionID)
	if err != nil {
		return "", err
	}
	result, err := s.broadcastOne(ctx, chain, codec.TypeURLMsgChannelOpenInit, msg, memo)
	if err != nil {
		return "", err
	}
	channelID, err := findAttribute(result.Events, "channel_open_init", "channel_id")
	if err != nil {
		return "", err
	}
	if err := s.events.Emit(ctx, eventbus.Event{
		Kind:    eventbus.KindInitializedChannelOnTendermint,
		ChainID: chain.ID,
		Data:    map[string]any{"channel_id": channelID},
	}); err != nil {
		return "", err
	}
	return channelID, nil
}

// tryChannelLocally is step 10: the solo machine's own mirror of the
// TryOpen channel, hung off the local connection id from step 6.
func (s *Service) tryChannelLocally(ctx context.Context, tx *store.Tx, chain *store.Chain, soloMachineConnectionID, tendermintChannelID string) (string, *pb.Channel, error) {
	channelID, err := identifiers.Generate(identifiers.PrefixChannel)
	if err != nil {
		return "", nil, fmt.Errorf("%w: generating channel id: %v", ibcerrors.ErrInvariantViolation, err)
	}
	channel := txbuilder.NewLocalChannel(soloMachineConnectionID, s.builder.PortID, tendermintChannelID)

	raw, err := codec.Marshal(channel)
	if err != nil {
		return "", nil, err
	}
	if err := s.ibcData.Put(ctx, tx, identifiers.ChannelEndPath(s.builder.PortID, channelID).String(), raw); err != nil {
		return "", nil, err
	}
	if err := s.events.Emit(ctx, eventbus.Event{
		Kind:    eventbus.KindInitializedChannelOnSoloMachine,
		ChainID: chain.ID,
		Data:    map[string]any{"channel_id": channelID},
	}); err != nil {
		return "", nil, err
	}
	return channelID, channel, nil
}

// ackChannelOnChain is step 11: broadcast msg_channel_open_ack proving
// the locally stored TryOpen channel, bumping sequence for the proof.
func (s *Service) ackChannelOnChain(ctx context.Context, tx *store.Tx, chain *store.Chain, tendermintChannelID, soloMachineChannelID string, localChannel *pb.Channel, memo string) error {
	sequence, err := s.chains.IncrementSequence(ctx, tx, chain.ID)
	if err != nil {
		return err
	}
	timestamp := chain.ConsensusTimestamp
	proofHeight := &pb.Height{RevisionNumber: 0, RevisionHeight: sequence}

	msg, err := s.builder.BuildChannelOpenAck(ctx, tendermintChannelID, soloMachineChannelID, sequence, timestamp, localChannel, proofHeight)
	if err != nil {
		return err
	}
	if _, err := s.broadcastOne(ctx, chain, codec.TypeURLMsgChannelOpenAck, msg, memo); err != nil {
		return err
	}
	return s.events.Emit(ctx, eventbus.Event{
		Kind:    eventbus.KindConfirmedChannelOnTendermint,
		ChainID: chain.ID,
		Data:    map[string]any{"channel_id": tendermintChannelID},
	})
}

// confirmChannelLocally is step 12: flip the locally stored channel to
// Open; channel_open_confirm never reaches chain.
func (s *Service) confirmChannelLocally(ctx context.Context, tx *store.Tx, chain *store.Chain, soloMachineChannelID string, localChannel *pb.Channel) error {
	confirmed := txbuilder.ConfirmLocalChannel(localChannel)
	raw, err := codec.Marshal(confirmed)
	if err != nil {
		return err
	}
	if err := s.ibcData.Put(ctx, tx, identifiers.ChannelEndPath(s.builder.PortID, soloMachineChannelID).String(), raw); err != nil {
		return err
	}
	return s.events.Emit(ctx, eventbus.Event{
		Kind:    eventbus.KindConfirmedChannelOnSoloMachine,
		ChainID: chain.ID,
		Data:    map[string]any{"channel_id": soloMachineChannelID},
	})
}

// chainConfigFromRow reconstructs the config.ChainConfig a chain row
// was registered with, for the txbuilder calls that need the original
// registration-time settings rather than the persisted row's
// JSON-friendly shape (durations as nanosecond integers, the trusted
// hash as hex).
func chainConfigFromRow(row store.ChainConfigRow) config.ChainConfig {
	var hash [32]byte
	if decoded, err := decodeHexHash(row.TrustedHash); err == nil {
		hash = decoded
	}
	return config.ChainConfig{
		GRPCAddr:        row.GRPCAddr,
		RPCAddr:         row.RPCAddr,
		FeeAmount:       row.FeeAmount,
		FeeDenom:        row.FeeDenom,
		FeeGasLimit:     row.FeeGasLimit,
		TrustLevelNum:   row.TrustLevelNum,
		TrustLevelDenom: row.TrustLevelDenom,
		TrustingPeriod:  durationFromNanos(row.TrustingPeriod),
		MaxClockDrift:   durationFromNanos(row.MaxClockDrift),
		RPCTimeout:      durationFromNanos(row.RPCTimeout),
		Diversifier:     row.Diversifier,
		PortID:          row.PortID,
		TrustedHeight:   row.TrustedHeight,
		TrustedHash:     hash,
	}
}

// recordSignerKey appends the signer's current public key to chainID's
// key history, hex-upper per §6's persisted-layout note; called
// whenever a step broadcasts a message carrying that key (client
// creation here, a client update in refreshSoloMachineClient).
func (s *Service) recordSignerKey(ctx context.Context, tx *store.Tx, chainID string) error {
	publicKey, err := s.builder.Signer.ToPublicKey()
	if err != nil {
		return fmt.Errorf("%w: deriving signer public key: %v", ibcerrors.ErrInvariantViolation, err)
	}
	return s.chainKeys.Insert(ctx, tx, chainID, strings.ToUpper(hex.EncodeToString(publicKey.KeyBytes())))
}
