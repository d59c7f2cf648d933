package main

import (
	"context"
	"fmt"

	"github.com/soloibc/solo-machine/internal/store"
)

func runBank(ctx context.Context, a *app, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: solo-machine bank <mint|burn|account|balance|history> [flags]")
	}
	switch args[0] {
	case "mint":
		return bankMint(ctx, a, args[1:])
	case "burn":
		return bankBurn(ctx, a, args[1:])
	case "account", "balance":
		return bankBalance(ctx, a, args[1:])
	case "history":
		return bankHistory(ctx, a, args[1:])
	default:
		return fmt.Errorf("unknown bank command %q", args[0])
	}
}

func bankMint(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("bank mint")
	address := fs.String("address", "", "address to credit (defaults to this signer's own address)")
	denom := fs.String("denom", "", "denom to mint")
	amountStr := fs.String("amount", "", "amount to mint")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *denom == "" || *amountStr == "" {
		return fmt.Errorf("-denom and -amount are required")
	}
	addr, err := resolveAddress(a, *address)
	if err != nil {
		return err
	}
	amount, err := parseAmount(*amountStr)
	if err != nil {
		return err
	}
	if err := a.bank.Mint(ctx, addr, *denom, amount); err != nil {
		return err
	}
	fmt.Printf("minted %s %s to %s\n", amount, *denom, addr)
	return nil
}

func bankBurn(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("bank burn")
	address := fs.String("address", "", "address to debit (defaults to this signer's own address)")
	denom := fs.String("denom", "", "denom to burn")
	amountStr := fs.String("amount", "", "amount to burn")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *denom == "" || *amountStr == "" {
		return fmt.Errorf("-denom and -amount are required")
	}
	addr, err := resolveAddress(a, *address)
	if err != nil {
		return err
	}
	amount, err := parseAmount(*amountStr)
	if err != nil {
		return err
	}
	if err := a.bank.Burn(ctx, addr, *denom, amount); err != nil {
		return err
	}
	fmt.Printf("burnt %s %s from %s\n", amount, *denom, addr)
	return nil
}

func bankBalance(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("bank balance")
	address := fs.String("address", "", "address to query (defaults to this signer's own address)")
	denom := fs.String("denom", "", "denom to query")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *denom == "" {
		return fmt.Errorf("-denom is required")
	}
	addr, err := resolveAddress(a, *address)
	if err != nil {
		return err
	}
	balance, err := a.bank.Balance(ctx, addr, *denom)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s\n", balance.String(), *denom)
	return nil
}

func bankHistory(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("bank history")
	address := fs.String("address", "", "address to query (defaults to this signer's own address)")
	denom := fs.String("denom", "", "denom to query")
	limit := fs.Int("limit", 20, "maximum number of operations to return")
	offset := fs.Int("offset", 0, "operations to skip, newest first")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *denom == "" {
		return fmt.Errorf("-denom is required")
	}
	addr, err := resolveAddress(a, *address)
	if err != nil {
		return err
	}
	ops, err := a.bank.History(ctx, addr, *denom, *limit, *offset)
	if err != nil {
		return err
	}
	if len(ops) == 0 {
		fmt.Println("no operations recorded")
		return nil
	}
	for _, op := range ops {
		fmt.Printf("%s  %-8s %s %s  %s\n", op.CreatedAt.Format("2006-01-02T15:04:05Z"), opLabel(op.OperationType), op.Amount, op.Denom, op.OperationType.ChainID)
	}
	return nil
}

func opLabel(opType store.AccountOperationType) string {
	return opType.Kind
}
