package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/coinjoinscan-backend/internal/coinjoin/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records metrics for repository operations.
	Metrics interface {
		Observe(operation string, network model.Network, err error, started time.Time)
	}

	// Conn is the subset of the ClickHouse driver connection the repository
	// uses. The production driver connection satisfies it structurally.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Query(ctx context.Context, query string, args ...any) (Rows, error)
		Close() error
	}

	// Batch is a prepared columnar insert.
	Batch interface {
		Append(v ...any) error
		Send() error
	}

	// Rows is a result cursor.
	Rows interface {
		Next() bool
		Scan(dest ...any) error
		Close() error
		Err() error
	}
)
