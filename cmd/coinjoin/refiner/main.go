package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/chain"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/enrich"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/graphsense"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/protocol"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/refine"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/repository/clickhouse"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/service/refiner"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/metrics"
	"github.com/goodnatureofminers/coinjoinscan-backend/internal/transport"
)

type config struct {
	ClickhouseDSN    string        `long:"clickhouse-dsn" env:"COINJOIN_REFINE_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Network          model.Network `long:"network" env:"COINJOIN_REFINE_NETWORK" description:"network name" required:"true"`
	EnrichSource     string        `long:"enrich-source" env:"COINJOIN_REFINE_ENRICH_SOURCE" description:"input value source" choice:"clickhouse" choice:"graphsense" default:"clickhouse"`
	EnrichBatchSize  int           `long:"enrich-batch-size" env:"COINJOIN_REFINE_ENRICH_BATCH_SIZE" description:"transactions per enrichment batch" default:"1000"`
	EnrichTimeout    time.Duration `long:"enrich-timeout" env:"COINJOIN_REFINE_ENRICH_TIMEOUT" description:"timeout per enrichment lookup" default:"2m"`
	GraphsenseURL    string        `long:"graphsense-url" env:"COINJOIN_REFINE_GRAPHSENSE_URL" description:"GraphSense API base URL"`
	GraphsenseAPIKey string        `long:"graphsense-api-key" env:"COINJOIN_REFINE_GRAPHSENSE_API_KEY" description:"GraphSense API key"`
	OpsAddr          string        `long:"ops-addr" env:"COINJOIN_REFINE_OPS_ADDR" description:"address for the metrics and health server" default:":2113"`
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
		logger.Fatal("coinjoin refiner failed", zap.Error(err))
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

	source, err := newEnrichSource(cfg, repo)
	if err != nil {
		return fmt.Errorf("init enrich source: %w", err)
	}
	gateway := enrich.NewGateway(
		source,
		metrics.NewEnrichmentGateway(cfg.Network),
		logger,
		cfg.EnrichBatchSize,
		cfg.EnrichTimeout,
	)

	params := protocol.DefaultParams()
	svc, err := refiner.NewRefinerService(
		repo,
		gateway,
		refine.NewSamouraiRefiner(params),
		refine.NewWasabiRefiner(params),
		metrics.NewRefiner(cfg.Network),
		cfg.Network,
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func newEnrichSource(cfg config, repo *clickhouse.Repository) (enrich.Source, error) {
	switch cfg.EnrichSource {
	case "graphsense":
		return graphsense.NewClient(cfg.GraphsenseURL, cfg.GraphsenseAPIKey, metrics.NewGraphsenseClient(cfg.Network))
	case "clickhouse":
		return chain.NewInputValueSource(repo, cfg.Network), nil
	default:
		return nil, fmt.Errorf("unknown enrich source %q", cfg.EnrichSource)
	}
}
