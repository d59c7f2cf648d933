package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/soloibc/solo-machine/internal/chainservice"
	"github.com/soloibc/solo-machine/internal/grpcclient"
	"github.com/soloibc/solo-machine/internal/ibc"
	"github.com/soloibc/solo-machine/internal/rpcclient"
	"github.com/soloibc/solo-machine/pkg/grpcserver"
)

// runServe starts the optional gRPC front-end and the Prometheus
// metrics endpoint and blocks until SIGINT/SIGTERM, the same
// signal-driven graceful shutdown the teacher's HTTP API uses.
//
// The front-end's Chain and Ibc services are bound to one primary
// counterparty chain for the process's lifetime (SOLO_RPC_ADDR and
// SOLO_GRPC_ADDR_REMOTE, overridable with -rpc-addr/-grpc-addr), since
// internal/ibc.Service's broadcaster/light-client/query dependencies
// are dialed against a single node rather than multiplexed by chain id.
// The CLI's "ibc"/"chain" subcommands dial fresh clients per invocation
// and are not subject to this restriction.
func runServe(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("serve")
	rpcAddr := fs.String("rpc-addr", a.chainDefaults.RPCAddr, "primary counterparty chain's RPC address (SOLO_RPC_ADDR)")
	grpcAddr := fs.String("grpc-addr", a.chainDefaults.GRPCAddr, "primary counterparty chain's gRPC address (SOLO_GRPC_ADDR_REMOTE)")
	listenAddr := fs.String("listen", a.cfg.GRPCListenAddr, "address this process's own gRPC front-end listens on (SOLO_GRPC_ADDR)")
	metricsAddr := fs.String("metrics-listen", a.cfg.MetricsListenAddr, "address the Prometheus metrics endpoint listens on (SOLO_METRICS_ADDR)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var chainSvc *chainservice.Service
	var ibcSvc *ibc.Service
	if *rpcAddr != "" && *grpcAddr != "" {
		rpc, err := rpcclient.New(*rpcAddr)
		if err != nil {
			return err
		}
		grpc, err := grpcclient.New(*grpcAddr)
		if err != nil {
			return err
		}
		defer grpc.Close()
		chainSvc = chainservice.New(a.repos.Chains, a.events, rpc, grpc)
		ibcSvc = ibc.New(a.builder, rpc, rpc, grpc, a.db, a.repos.Chains, a.repos.IBCData, a.repos.ChainKeys, a.bank, a.events)
	} else {
		a.logger.Println("no primary chain configured; chain/ibc gRPC methods will be unavailable")
		chainSvc = chainservice.New(a.repos.Chains, a.events, nil, nil)
		ibcSvc = ibc.New(a.builder, nil, nil, nil, a.db, a.repos.Chains, a.repos.IBCData, a.repos.ChainKeys, a.bank, a.events)
	}

	server := grpcserver.New(a.bank, chainSvc, ibcSvc)

	runCtx, cancel := context.WithCancel(ctx)

	errCh := make(chan error, 2)
	go func() {
		a.logger.Printf("gRPC front-end listening on %s", *listenAddr)
		errCh <- server.ListenAndServe(runCtx, *listenAddr, a.logger)
	}()

	metricsServer := &http.Server{
		Addr:    *metricsAddr,
		Handler: a.metrics.Handler(),
	}
	go func() {
		a.logger.Printf("metrics listening on %s", *metricsAddr)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("metrics server: %w", err)
			return
		}
		errCh <- nil
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		a.logger.Println("shutting down...")
	case err := <-errCh:
		if err != nil {
			a.logger.Printf("server error: %v", err)
		}
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Printf("metrics server shutdown: %v", err)
	}

	a.logger.Println("stopped")
	return nil
}
