package main

import (
	"context"
	"fmt"
	"time"

	"github.com/soloibc/solo-machine/internal/chainservice"
	"github.com/soloibc/solo-machine/internal/config"
	"github.com/soloibc/solo-machine/internal/grpcclient"
	"github.com/soloibc/solo-machine/internal/rpcclient"
)

func runChain(ctx context.Context, a *app, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: solo-machine chain <add|get|get-ibc-denom|balance|get-public-keys> [flags]")
	}
	switch args[0] {
	case "add":
		return chainAdd(ctx, a, args[1:])
	case "get":
		return chainGet(ctx, a, args[1:])
	case "get-ibc-denom":
		return chainGetIBCDenom(ctx, a, args[1:])
	case "balance":
		return chainBalance(ctx, a, args[1:])
	case "get-public-keys":
		return chainGetPublicKeys(ctx, a, args[1:])
	default:
		return fmt.Errorf("unknown chain command %q", args[0])
	}
}

func chainAdd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("chain add")
	def := a.chainDefaults
	rpcAddr := fs.String("rpc-addr", def.RPCAddr, "counterparty node's Tendermint RPC address (SOLO_RPC_ADDR)")
	grpcAddr := fs.String("grpc-addr", def.GRPCAddr, "counterparty node's gRPC address (SOLO_GRPC_ADDR_REMOTE)")
	feeAmount := fs.String("fee-amount", def.FeeAmount, "fee amount paid on every broadcast")
	feeDenom := fs.String("fee-denom", def.FeeDenom, "fee denom paid on every broadcast")
	feeGasLimit := fs.Uint64("fee-gas-limit", def.FeeGasLimit, "gas limit set on every broadcast")
	trustLevelNum := fs.Uint64("trust-level-num", def.TrustLevelNum, "Tendermint light client trust level numerator")
	trustLevelDenom := fs.Uint64("trust-level-denom", def.TrustLevelDenom, "Tendermint light client trust level denominator")
	trustingPeriod := fs.Duration("trusting-period", def.TrustingPeriod, "Tendermint light client trusting period")
	maxClockDrift := fs.Duration("max-clock-drift", def.MaxClockDrift, "Tendermint light client max clock drift")
	rpcTimeout := fs.Duration("rpc-timeout", def.RPCTimeout, "timeout applied to outbound RPC calls")
	diversifier := fs.String("diversifier", def.Diversifier, "solo machine proof diversifier")
	portID := fs.String("port-id", def.PortID, "IBC port id to open a channel on")
	trustedHeight := fs.Uint64("trusted-height", def.TrustedHeight, "trusted genesis height for the Tendermint client (0 fetches latest)")
	trustedHash := fs.String("trusted-hash", "", "trusted genesis header hash, hex-encoded (SOLO_TRUSTED_HASH); when set, connect checks the fetched block against it")
	memo := fs.String("memo", def.Memo, "memo (not stored with the chain; each ibc command takes its own --memo)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.ChainConfig{
		GRPCAddr:        *grpcAddr,
		RPCAddr:         *rpcAddr,
		FeeAmount:       *feeAmount,
		FeeDenom:        *feeDenom,
		FeeGasLimit:     *feeGasLimit,
		TrustLevelNum:   *trustLevelNum,
		TrustLevelDenom: *trustLevelDenom,
		TrustingPeriod:  *trustingPeriod,
		MaxClockDrift:   *maxClockDrift,
		RPCTimeout:      *rpcTimeout,
		Diversifier:     *diversifier,
		PortID:          *portID,
		TrustedHeight:   *trustedHeight,
		TrustedHash:     def.TrustedHash,
		Memo:            *memo,
	}
	if *trustedHash != "" {
		hash, err := decodeHexHash(*trustedHash)
		if err != nil {
			return fmt.Errorf("parsing -trusted-hash: %w", err)
		}
		cfg.TrustedHash = hash
	}
	if cfg.RPCAddr == "" {
		return fmt.Errorf("-rpc-addr is required")
	}
	if cfg.GRPCAddr == "" {
		return fmt.Errorf("-grpc-addr is required")
	}

	rpc, err := rpcclient.New(cfg.RPCAddr)
	if err != nil {
		return err
	}
	grpc, err := grpcclient.New(cfg.GRPCAddr)
	if err != nil {
		return err
	}
	defer grpc.Close()

	svc := chainservice.New(a.repos.Chains, a.events, rpc, grpc)
	chain, err := svc.Add(ctx, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("registered chain %s (node %s)\n", chain.ID, chain.NodeID)
	return nil
}

func chainGet(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("chain get")
	chainID := fs.String("chain-id", "", "registered chain id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *chainID == "" {
		return fmt.Errorf("-chain-id is required")
	}

	chain, err := a.repos.Chains.Get(ctx, nil, *chainID)
	if err != nil {
		return err
	}
	fmt.Printf("chain_id:        %s\n", chain.ID)
	fmt.Printf("node_id:         %s\n", chain.NodeID)
	fmt.Printf("sequence:        %d\n", chain.Sequence)
	fmt.Printf("packet_sequence: %d\n", chain.PacketSequence)
	fmt.Printf("rpc_addr:        %s\n", chain.Config.RPCAddr)
	fmt.Printf("grpc_addr:       %s\n", chain.Config.GRPCAddr)
	fmt.Printf("connected:       %t\n", chain.ConnectionDetails.Valid())
	if chain.ConnectionDetails.Valid() {
		fmt.Printf("solo_machine_client_id:      %s\n", chain.ConnectionDetails.SoloMachineClientID)
		fmt.Printf("tendermint_client_id:        %s\n", chain.ConnectionDetails.TendermintClientID)
		fmt.Printf("solo_machine_connection_id:  %s\n", chain.ConnectionDetails.SoloMachineConnectionID)
		fmt.Printf("tendermint_connection_id:    %s\n", chain.ConnectionDetails.TendermintConnectionID)
		fmt.Printf("solo_machine_channel_id:     %s\n", chain.ConnectionDetails.SoloMachineChannelID)
		fmt.Printf("tendermint_channel_id:       %s\n", chain.ConnectionDetails.TendermintChannelID)
	}
	return nil
}

func chainGetIBCDenom(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("chain get-ibc-denom")
	chainID := fs.String("chain-id", "", "registered chain id")
	denom := fs.String("denom", "", "base denom on the counterparty chain")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *chainID == "" || *denom == "" {
		return fmt.Errorf("-chain-id and -denom are required")
	}

	svc := chainservice.New(a.repos.Chains, a.events, nil, nil)
	ibcDenom, err := svc.GetIBCDenom(ctx, *chainID, *denom)
	if err != nil {
		return err
	}
	fmt.Println(ibcDenom)
	return nil
}

func chainBalance(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("chain balance")
	chainID := fs.String("chain-id", "", "registered chain id")
	address := fs.String("address", "", "address to query (defaults to this signer's own address)")
	denom := fs.String("denom", "", "denom to query")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *chainID == "" || *denom == "" {
		return fmt.Errorf("-chain-id and -denom are required")
	}

	signerAddr, err := resolveAddress(a, *address)
	if err != nil {
		return err
	}

	chain, err := a.repos.Chains.Get(ctx, nil, *chainID)
	if err != nil {
		return err
	}
	grpc, err := grpcclient.New(chain.Config.GRPCAddr)
	if err != nil {
		return err
	}
	defer grpc.Close()

	svc := chainservice.New(a.repos.Chains, a.events, nil, grpc)
	balance, err := svc.Balance(ctx, signerAddr, *chainID, *denom)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", balance.String(), *denom)
	return nil
}

func chainGetPublicKeys(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("chain get-public-keys")
	chainID := fs.String("chain-id", "", "registered chain id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *chainID == "" {
		return fmt.Errorf("-chain-id is required")
	}

	keys, err := a.repos.ChainKeys.List(ctx, nil, *chainID)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Println("no keys recorded")
		return nil
	}
	for _, key := range keys {
		fmt.Printf("%s  %s\n", key.CreatedAt.Format(time.RFC3339), key.PublicKey)
	}
	return nil
}

func resolveAddress(a *app, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	return a.signer.ToAccountAddress()
}
