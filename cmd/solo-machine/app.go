package main

import (
	"context"
	"fmt"
	"log"

	"github.com/soloibc/solo-machine/internal/bank"
	"github.com/soloibc/solo-machine/internal/config"
	"github.com/soloibc/solo-machine/internal/cryptokeys"
	"github.com/soloibc/solo-machine/internal/eventbus"
	"github.com/soloibc/solo-machine/internal/logging"
	"github.com/soloibc/solo-machine/internal/metrics"
	"github.com/soloibc/solo-machine/internal/signerapi"
	"github.com/soloibc/solo-machine/internal/store"
	"github.com/soloibc/solo-machine/internal/txbuilder"
	"github.com/soloibc/solo-machine/pkg/eventhooks"
)

// app bundles the long-lived resources every subcommand shares: the
// database connection pool, the event bus and its registered handlers,
// the bank ledger, and the signer/builder pair used to construct and
// sign outbound messages. Per-chain outbound clients (rpcclient,
// grpcclient) are dialed per invocation against the addresses a command
// actually needs, not held here.
type app struct {
	cfg           *config.Config
	chainDefaults config.ChainConfig
	logger        *log.Logger
	db            *store.Client
	repos         *store.Repositories
	events        *eventbus.Bus
	metrics       *metrics.Registry
	bank          *bank.Service
	signer        cryptokeys.Signer
	builder       *txbuilder.Builder
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	logger := logging.New("solo-machine")

	db, err := store.NewClient(cfg, store.WithLogger(logging.New("store")))
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := db.MigrateUp(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	repos := store.NewRepositories(db)

	signer, err := signerapi.NewMnemonicSigner(cfg.SignerMnemonic, cfg.SignerHDPath, cfg.SignerAccountPrefix)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("deriving signer from SOLO_MNEMONIC: %w", err)
	}

	chainDefaults, err := config.ChainConfigFromEnv()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("reading chain defaults: %w", err)
	}

	events := eventbus.New()
	registry := metrics.New()
	events.Register(registry.EventHandler())
	events.Register(eventhooks.NewStdoutLogger(logging.New("events")))

	bankService := bank.New(db, repos.Accounts, events)
	builder := txbuilder.New(signer, chainDefaults.Diversifier, chainDefaults.PortID,
		chainDefaults.FeeAmount, chainDefaults.FeeDenom, chainDefaults.FeeGasLimit)

	return &app{
		cfg:           cfg,
		chainDefaults: chainDefaults,
		logger:        logger,
		db:            db,
		repos:         repos,
		events:        events,
		metrics:       registry,
		bank:          bankService,
		signer:        signer,
		builder:       builder,
	}, nil
}

func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		a.logger.Printf("closing database: %v", err)
	}
}
