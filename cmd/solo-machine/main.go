// Command solo-machine is the CLI front-end over the core packages: it
// registers counterparty chains, drives the connect handshake and
// packet lifecycle, and exposes bank balance/mint/burn operations, the
// same flag-dispatched shape the teacher's single binary uses, extended
// to a small set of subcommands instead of one flat flag set.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/soloibc/solo-machine/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading configuration:", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()
	app, err := newApp(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "starting up:", err)
		os.Exit(1)
	}
	defer app.Close()

	group := os.Args[1]
	args := os.Args[2:]

	switch group {
	case "chain":
		err = runChain(ctx, app, args)
	case "bank":
		err = runBank(ctx, app, args)
	case "ibc":
		err = runIBC(ctx, app, args)
	case "serve":
		err = runServe(ctx, app, args)
	case "-h", "-help", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command group %q\n", group)
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: solo-machine <group> <command> [flags]

chain   add|get|get-ibc-denom|balance|get-public-keys
bank    mint|burn|account|balance|history
ibc     connect|send|receive|update-signer
serve   run the gRPC front-end and metrics endpoint

Run "solo-machine <group> <command> -h" for flags on a specific command.
Connection settings fall back to SOLO_* environment variables; see
internal/config for the full list.`)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return fs
}
