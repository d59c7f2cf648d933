package main

import (
	"context"
	"fmt"

	"github.com/soloibc/solo-machine/internal/grpcclient"
	"github.com/soloibc/solo-machine/internal/ibc"
	"github.com/soloibc/solo-machine/internal/rpcclient"
	"github.com/soloibc/solo-machine/internal/signerapi"
)

func runIBC(ctx context.Context, a *app, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: solo-machine ibc <connect|send|receive|update-signer> [flags]")
	}
	switch args[0] {
	case "connect":
		return ibcConnect(ctx, a, args[1:])
	case "send":
		return ibcSend(ctx, a, args[1:])
	case "receive":
		return ibcReceive(ctx, a, args[1:])
	case "update-signer":
		return ibcUpdateSigner(ctx, a, args[1:])
	default:
		return fmt.Errorf("unknown ibc command %q", args[0])
	}
}

// newIBCService dials fresh RPC and gRPC clients against chainID's
// registered addresses and wires them, together with the process's
// shared builder/bank/events, into an ibc.Service scoped to this one
// invocation.
func newIBCService(ctx context.Context, a *app, chainID string) (*ibc.Service, func(), error) {
	chain, err := a.repos.Chains.Get(ctx, nil, chainID)
	if err != nil {
		return nil, nil, err
	}

	rpc, err := rpcclient.New(chain.Config.RPCAddr)
	if err != nil {
		return nil, nil, err
	}
	grpc, err := grpcclient.New(chain.Config.GRPCAddr)
	if err != nil {
		return nil, nil, err
	}
	closer := func() { grpc.Close() }

	svc := ibc.New(a.builder, rpc, rpc, grpc, a.db, a.repos.Chains, a.repos.IBCData, a.repos.ChainKeys, a.bank, a.events)
	return svc, closer, nil
}

func ibcConnect(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("ibc connect")
	chainID := fs.String("chain-id", "", "registered chain id")
	memo := fs.String("memo", "", "memo recorded on handshake messages")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *chainID == "" {
		return fmt.Errorf("-chain-id is required")
	}

	svc, closer, err := newIBCService(ctx, a, *chainID)
	if err != nil {
		return err
	}
	defer closer()

	if err := svc.Connect(ctx, *chainID, *memo); err != nil {
		return err
	}
	fmt.Printf("connected to %s\n", *chainID)
	return nil
}

func ibcSend(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("ibc send")
	chainID := fs.String("chain-id", "", "registered chain id")
	amountStr := fs.String("amount", "", "amount to send")
	denom := fs.String("denom", "", "denom to send")
	receiver := fs.String("receiver", "", "receiving address on the counterparty chain")
	memo := fs.String("memo", "", "memo recorded on the transfer")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *chainID == "" || *amountStr == "" || *denom == "" || *receiver == "" {
		return fmt.Errorf("-chain-id, -amount, -denom, and -receiver are required")
	}
	amount, err := parseAmount(*amountStr)
	if err != nil {
		return err
	}

	svc, closer, err := newIBCService(ctx, a, *chainID)
	if err != nil {
		return err
	}
	defer closer()

	if err := svc.SendToChain(ctx, *chainID, amount, *denom, *receiver, *memo); err != nil {
		return err
	}
	fmt.Printf("sent %s %s to %s on %s\n", amount, *denom, *receiver, *chainID)
	return nil
}

func ibcReceive(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("ibc receive")
	chainID := fs.String("chain-id", "", "registered chain id")
	amountStr := fs.String("amount", "", "amount to receive")
	denom := fs.String("denom", "", "ibc denom as received on this solo machine")
	receiver := fs.String("receiver", "", "local address to credit")
	memo := fs.String("memo", "", "memo recorded on the acknowledgement")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *chainID == "" || *amountStr == "" || *denom == "" || *receiver == "" {
		return fmt.Errorf("-chain-id, -amount, -denom, and -receiver are required")
	}
	amount, err := parseAmount(*amountStr)
	if err != nil {
		return err
	}

	svc, closer, err := newIBCService(ctx, a, *chainID)
	if err != nil {
		return err
	}
	defer closer()

	if err := svc.ReceiveFromChain(ctx, *chainID, amount, *denom, *receiver, *memo); err != nil {
		return err
	}
	fmt.Printf("received %s %s for %s from %s\n", amount, *denom, *receiver, *chainID)
	return nil
}

func ibcUpdateSigner(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("ibc update-signer")
	chainID := fs.String("chain-id", "", "registered chain id")
	mnemonic := fs.String("mnemonic", "", "BIP-39 mnemonic for the new signing key")
	hdPath := fs.String("hd-path", signerapi.DefaultHDPath, "HD derivation path for the new signing key")
	accountPrefix := fs.String("account-prefix", "cosmos", "bech32 account prefix for the new signing key")
	memo := fs.String("memo", "", "memo recorded on the client update message")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *chainID == "" || *mnemonic == "" {
		return fmt.Errorf("-chain-id and -mnemonic are required")
	}

	newSigner, err := signerapi.NewMnemonicSigner(*mnemonic, *hdPath, *accountPrefix)
	if err != nil {
		return err
	}

	svc, closer, err := newIBCService(ctx, a, *chainID)
	if err != nil {
		return err
	}
	defer closer()

	if err := svc.UpdateSigner(ctx, *chainID, newSigner, *memo); err != nil {
		return err
	}
	newAddr, err := newSigner.ToAccountAddress()
	if err != nil {
		return err
	}
	fmt.Printf("rotated signer for %s to %s\n", *chainID, newAddr)
	return nil
}
