// Package ibc drives the solo machine's IBC state machine: the connect
// handshake (§4.4) that establishes a client/connection/channel triple
// against a counterparty Tendermint chain, and the packet lifecycle
// (§4.5) that moves tokens across an established channel in either
// direction. It composes internal/txbuilder for message and proof
// construction, internal/store for the connect flow's persisted state,
// internal/bank for the ledger side of a transfer, and internal/eventbus
// to report progress, the same layering the teacher's validator uses to
// separate proof construction from its own persistence and broadcast.
package ibc

import (
	"context"
	"fmt"
	"time"

	"github.com/soloibc/solo-machine/internal/bank"
	"github.com/soloibc/solo-machine/internal/eventbus"
	"github.com/soloibc/solo-machine/internal/ibcerrors"
	"github.com/soloibc/solo-machine/internal/lightclient"
	"github.com/soloibc/solo-machine/internal/pb"
	"github.com/soloibc/solo-machine/internal/rpcclient"
	"github.com/soloibc/solo-machine/internal/store"
	"github.com/soloibc/solo-machine/internal/txbuilder"
)

// Broadcaster submits an assembled transaction to the counterparty chain
// and waits for both check_tx and deliver_tx to resolve. Implemented by
// internal/rpcclient.Client.
type Broadcaster interface {
	BroadcastTxCommit(ctx context.Context, tx *pb.TxRaw) (*rpcclient.BroadcastResult, error)
}

// LightBlockSource supplies the signed headers and validator sets the
// connect flow needs to stand up a Tendermint light client. Implemented
// by internal/rpcclient.Client.
type LightBlockSource interface {
	LatestHeight(ctx context.Context) (int64, error)
	LightBlock(ctx context.Context, height int64) (lightclient.LightBlock, error)
}

// ChainQueryClient reads the account and staking state the connect and
// packet flows need from the counterparty chain over gRPC. Implemented
// by internal/grpcclient.Client.
type ChainQueryClient interface {
	QueryAccount(ctx context.Context, address string) (*pb.BaseAccount, error)
	QueryUnbondingPeriod(ctx context.Context) (int64, error)
}

// Service drives the connect handshake and packet lifecycle for one
// signer against any number of registered chains.
type Service struct {
	builder     *txbuilder.Builder
	broadcaster Broadcaster
	lightBlocks LightBlockSource
	query       ChainQueryClient

	dbClient  *store.Client
	chains    *store.ChainRepository
	ibcData   *store.IBCDataRepository
	chainKeys *store.ChainKeyRepository
	bank      *bank.Service
	events    *eventbus.Bus
}

// New constructs a Service.
func New(
	builder *txbuilder.Builder,
	broadcaster Broadcaster,
	lightBlocks LightBlockSource,
	query ChainQueryClient,
	dbClient *store.Client,
	chains *store.ChainRepository,
	ibcData *store.IBCDataRepository,
	chainKeys *store.ChainKeyRepository,
	bankService *bank.Service,
	events *eventbus.Bus,
) *Service {
	return &Service{
		builder:     builder,
		broadcaster: broadcaster,
		lightBlocks: lightBlocks,
		query:       query,
		dbClient:    dbClient,
		chains:      chains,
		ibcData:     ibcData,
		chainKeys:   chainKeys,
		bank:        bankService,
		events:      events,
	}
}

// advanceConsensusTimestamp persists a fresh consensus_timestamp after a
// msg_update_solo_machine_client broadcast, so the proof after the next
// one stamps a newer timestamp instead of reusing the value frozen at
// registration (Add) or the last rotation.
func (s *Service) advanceConsensusTimestamp(ctx context.Context, tx *store.Tx, chain *store.Chain) error {
	ts := uint64(time.Now().Unix())
	if err := s.chains.SetConsensusTimestamp(ctx, tx, chain.ID, ts); err != nil {
		return err
	}
	chain.ConsensusTimestamp = ts
	return nil
}

// findAttribute returns key's value from the first event of kind
// eventType that carries it, per §7's "missing event attribute" protocol-mismatch
// failure mode.
func findAttribute(events []rpcclient.Event, eventType, key string) (string, error) {
	for _, event := range events {
		if event.Type != eventType {
			continue
		}
		if value, ok := event.Attribute(key); ok {
			return value, nil
		}
	}
	return "", fmt.Errorf("%w: no %s event carried attribute %q", ibcerrors.ErrProtocolMismatch, eventType, key)
}
