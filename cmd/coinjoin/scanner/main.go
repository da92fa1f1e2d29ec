package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/bitcoin"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/detect"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/protocol"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/repository/clickhouse"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/service/scanner"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/metrics"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/transport"
)

type config struct {
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"COINJOIN_SCAN_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Network       model.Network `long:"network" env:"COINJOIN_SCAN_NETWORK" description:"network name" required:"true"`
	RPCURL        string        `long:"rpc-url" env:"COINJOIN_SCAN_RPC_URL" description:"Bitcoin RPC URL" default:"http://127.0.0.1:8332"`
	RPCUser       string        `long:"rpc-user" env:"COINJOIN_SCAN_RPC_USER" description:"Bitcoin RPC username"`
	RPCPassword   string        `long:"rpc-password" env:"COINJOIN_SCAN_RPC_PASSWORD" description:"Bitcoin RPC password"`
	StartHeight   uint64        `long:"start-height" env:"COINJOIN_SCAN_START_HEIGHT" description:"first block height to scan" default:"1"`
	EndHeight     uint64        `long:"end-height" env:"COINJOIN_SCAN_END_HEIGHT" description:"last block height to scan, 0 means chain tip" default:"0"`
	OpsAddr       string        `long:"ops-addr" env:"COINJOIN_SCAN_OPS_ADDR" description:"address for the metrics and health server" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
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
		logger.Fatal("coinjoin scanner failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	transport.NewOpsServer(cfg.OpsAddr, logger).Start(ctx)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Error("failed to close repository", zap.Error(closeErr))
		}
	}()

	rpcClient, err := newRPCClient(cfg.RPCURL, cfg.RPCUser, cfg.RPCPassword)
	if err != nil {
		return fmt.Errorf("init bitcoin rpc client: %w", err)
	}
	defer func() {
		rpcClient.Shutdown()
		rpcClient.WaitForShutdown()
	}()

	decoder, err := bitcoin.NewScriptDecoder(cfg.Network)
	if err != nil {
		return fmt.Errorf("init script decoder: %w", err)
	}
	source := bitcoin.NewBlockSource(
		bitcoin.NewRPCClient(rpcClient, metrics.NewRPCClient(cfg.Network)),
		decoder,
		cfg.Network,
		logger,
	)

	svc, err := scanner.NewScannerService(
		repo,
		source,
		detect.NewDetector(protocol.DefaultParams()),
		metrics.NewScanner(cfg.Network),
		cfg.Network,
		cfg.StartHeight,
		cfg.EndHeight,
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
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

	return rpcclient.New(&rpcclient.ConnConfig{
		Host:         parsed.Host,
		User:         user,
		Pass:         password,
		HTTPPostMode: true,
		DisableTLS:   true,
	}, nil)
}
