package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/goodnatureofminers/txforge7000-backend/internal/bitcoin"
	"github.com/goodnatureofminers/txforge7000-backend/internal/clock"
	"github.com/goodnatureofminers/txforge7000-backend/internal/construction"
	"github.com/goodnatureofminers/txforge7000-backend/internal/indexer"
	"github.com/goodnatureofminers/txforge7000-backend/internal/indexer/clickhouse"
	"github.com/goodnatureofminers/txforge7000-backend/internal/metrics"
	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
	"github.com/goodnatureofminers/txforge7000-backend/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

const (
	nodeProbeAttempts = 10
	nodeProbeBackoff  = 3 * time.Second
)

type config struct {
	Addr           string        `long:"addr" env:"CONSTRUCTION_API_ADDR" description:"HTTP listen address" default:":8000"`
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"CONSTRUCTION_API_CLICKHOUSE_DSN" description:"ClickHouse DSN for the UTXO index"`
	Coin           model.Coin    `long:"coin" env:"CONSTRUCTION_API_COIN" description:"coin name" required:"true"`
	Network        model.Network `long:"network" env:"CONSTRUCTION_API_NETWORK" description:"network name" required:"true"`
	RPCURL         string        `long:"rpc-url" env:"CONSTRUCTION_API_RPC_URL" description:"node RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser        string        `long:"rpc-user" env:"CONSTRUCTION_API_RPC_USER" description:"node RPC username"`
	RPCPassword    string        `long:"rpc-password" env:"CONSTRUCTION_API_RPC_PASSWORD" description:"node RPC password"`
	IndexRPS       int           `long:"index-rps" env:"CONSTRUCTION_API_INDEX_RPS" description:"max index queries per second" default:"50"`
	ReservationTTL time.Duration `long:"reservation-ttl" env:"CONSTRUCTION_API_RESERVATION_TTL" description:"how long selected outputs stay reserved" default:"2m"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewProduction()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("construction api failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewUtxoIndex())
	if err != nil {
		return fmt.Errorf("init index repository: %w", err)
	}

	index := indexer.NewReservingIndex(
		indexer.NewRateLimitedIndex(repo, cfg.IndexRPS),
		cfg.ReservationTTL,
		cfg.ReservationTTL,
		logger,
	)
	index.Start(ctx)
	defer index.Stop()

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init node rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()
	node := bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Coin, cfg.Network))

	if err := waitForNode(ctx, node, logger); err != nil {
		return fmt.Errorf("node connectivity: %w", err)
	}

	service, err := construction.NewService(
		cfg.Coin,
		cfg.Network,
		index,
		node,
		metrics.NewConstructionStages(cfg.Coin, cfg.Network),
		logger,
	)
	if err != nil {
		return fmt.Errorf("init construction service: %w", err)
	}

	handler := transport.NewConstructionHandler(service, logger)

	mux := http.NewServeMux()
	mux.Handle("/construction/", handler.Routes())
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("starting http server", zap.String("addr", cfg.Addr))
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// waitForNode probes the node until it answers or the attempts run out. The
// service is useless without a broadcast path, so failing fast here beats
// serving submit errors.
func waitForNode(ctx context.Context, node *bitcoin.RPCClient, logger *zap.Logger) error {
	var err error
	for attempt := 1; attempt <= nodeProbeAttempts; attempt++ {
		var height int64
		if height, err = node.GetBlockCount(); err == nil {
			logger.Info("node reachable", zap.Int64("height", height))
			return nil
		}
		logger.Warn("node not reachable yet",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if sleepErr := clock.SleepWithContext(ctx, nodeProbeBackoff); sleepErr != nil {
			return sleepErr
		}
	}
	return err
}

func newRPCClient(rawURL, user, password string) (*rpcclient.Client, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse rpc url: %w", err)
	}
	if parsed.Scheme != "http" {
		return nil, fmt.Errorf("rpc url scheme %q not supported, use http", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc url missing host")
	}

	cfg := &rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}

	return rpcclient.New(cfg, nil)
}
