// Package chainservice implements §4.7's chain service: registering a
// solo machine's counterparty chain, deriving the local IBC denom for a
// registered chain, and reading on-chain balances.
package chainservice

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/soloibc/solo-machine/internal/config"
	"github.com/soloibc/solo-machine/internal/eventbus"
	"github.com/soloibc/solo-machine/internal/store"
	"github.com/soloibc/solo-machine/internal/txbuilder"
)

// StatusInfo is the subset of a Tendermint status response add() needs:
// the chain's id and its node's id.
type StatusInfo struct {
	ChainID string
	NodeID  string
}

// StatusClient is the outbound RPC dependency add() uses to learn a
// chain's identity before it is registered. Implemented by
// internal/rpcclient against a live node; satisfied by a fake in tests.
type StatusClient interface {
	Status(ctx context.Context, rpcAddr string) (StatusInfo, error)
}

// BalanceClient is the outbound gRPC dependency balance() uses to read
// an account's on-chain balance via cosmos.bank.v1beta1.Query/Balance.
// Implemented by internal/grpcclient against a live node.
type BalanceClient interface {
	QueryBalance(ctx context.Context, grpcAddr, address, denom string) (*big.Int, error)
}

// Service registers and queries the chains a solo machine talks to.
type Service struct {
	chains  *store.ChainRepository
	events  *eventbus.Bus
	status  StatusClient
	balance BalanceClient
}

// New constructs a chain Service.
func New(chains *store.ChainRepository, events *eventbus.Bus, status StatusClient, balance BalanceClient) *Service {
	return &Service{chains: chains, events: events, status: status, balance: balance}
}

// Add connects to cfg.RPCAddr, reads status to learn the chain and node
// ids, and persists a new chain row with sequence and packet_sequence
// starting at zero, per §4.7.
func (s *Service) Add(ctx context.Context, cfg config.ChainConfig) (*store.Chain, error) {
	info, err := s.status.Status(ctx, cfg.RPCAddr)
	if err != nil {
		return nil, fmt.Errorf("reading status from %s: %w", cfg.RPCAddr, err)
	}
	if info.ChainID == "" {
		return nil, fmt.Errorf("chain at %s reported an empty chain id", cfg.RPCAddr)
	}

	chain := &store.Chain{
		ID:     info.ChainID,
		NodeID: info.NodeID,
		Config: chainConfigRow(cfg),
		// Every solo-machine proof signs over this value (§4.3), so it
		// must be live wall-clock time at registration, not zero.
		ConsensusTimestamp: uint64(time.Now().Unix()),
		Sequence:           0,
		PacketSequence:     0,
	}
	if err := s.chains.Insert(ctx, nil, chain); err != nil {
		return nil, fmt.Errorf("registering chain %s: %w", info.ChainID, err)
	}

	if err := s.events.Emit(ctx, eventbus.Event{
		Kind:    eventbus.KindChainAdded,
		ChainID: chain.ID,
		Data:    map[string]any{"node_id": chain.NodeID, "rpc_addr": cfg.RPCAddr, "grpc_addr": cfg.GRPCAddr},
	}); err != nil {
		return nil, err
	}
	return chain, nil
}

// Get loads a registered chain by id.
func (s *Service) Get(ctx context.Context, chainID string) (*store.Chain, error) {
	return s.chains.Get(ctx, nil, chainID)
}

// GetIBCDenom derives the local IBC denom a token receives once it
// crosses from chainID into this solo machine, requiring chainID to
// have completed the connect handshake (its channel id is known).
func (s *Service) GetIBCDenom(ctx context.Context, chainID, denom string) (string, error) {
	chain, err := s.chains.Get(ctx, nil, chainID)
	if err != nil {
		return "", err
	}
	if !chain.ConnectionDetails.Valid() {
		return "", fmt.Errorf("chain %s has not completed the connect handshake yet", chainID)
	}
	return txbuilder.IBCDenom(chain.Config.PortID, chain.ConnectionDetails.SoloMachineChannelID, denom), nil
}

// Balance reads signer's on-chain balance of denom on chainID via
// gRPC, per §4.7.
func (s *Service) Balance(ctx context.Context, signer, chainID, denom string) (*big.Int, error) {
	chain, err := s.chains.Get(ctx, nil, chainID)
	if err != nil {
		return nil, err
	}
	return s.balance.QueryBalance(ctx, chain.Config.GRPCAddr, signer, denom)
}

func chainConfigRow(cfg config.ChainConfig) store.ChainConfigRow {
	return store.ChainConfigRow{
		GRPCAddr:        cfg.GRPCAddr,
		RPCAddr:         cfg.RPCAddr,
		FeeAmount:       cfg.FeeAmount,
		FeeDenom:        cfg.FeeDenom,
		FeeGasLimit:     cfg.FeeGasLimit,
		TrustLevelNum:   cfg.TrustLevelNum,
		TrustLevelDenom: cfg.TrustLevelDenom,
		TrustingPeriod:  int64(cfg.TrustingPeriod),
		MaxClockDrift:   int64(cfg.MaxClockDrift),
		RPCTimeout:      int64(cfg.RPCTimeout),
		Diversifier:     cfg.Diversifier,
		PortID:          cfg.PortID,
		TrustedHeight:   cfg.TrustedHeight,
		TrustedHash:     fmt.Sprintf("%X", cfg.TrustedHash[:]),
	}
}
