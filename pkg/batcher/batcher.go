// Package batcher accumulates items and flushes them in rate-limited
// batches, by size or by interval, whichever comes first.
package batcher

import (
	"context"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Batcher buffers items of one type for a single flush callback. Start it
// once; Add from any goroutine; Stop drains what is still queued.
type Batcher[T any] struct {
	logger   *zap.Logger
	flush    func(context.Context, []T) error
	size     int
	interval time.Duration
	limiter  ratelimit.Limiter

	items chan T
	stop  chan struct{}
	done  chan struct{}
}

func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, size int, interval time.Duration, rps int) *Batcher[T] {
	return &Batcher[T]{
		logger:   logger,
		flush:    flush,
		size:     size,
		interval: interval,
		limiter:  ratelimit.New(rps),
		items:    make(chan T, size*2),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the background flush loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	go b.loop(ctx)
}

// Stop terminates the flush loop and blocks until queued items are flushed.
func (b *Batcher[T]) Stop() {
	close(b.stop)
	<-b.done
}

// Add queues one item. It fails once the batcher is stopped or when ctx is
// canceled while the queue is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) loop(ctx context.Context) {
	defer close(b.done)

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.size)
	for {
		select {
		case <-ctx.Done():
			b.drain(ctx, buf)
			return

		case <-b.stop:
			b.drain(ctx, buf)
			return

		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.size {
				buf = b.flushBatch(ctx, buf)
			}

		case <-ticker.C:
			buf = b.flushBatch(ctx, buf)
		}
	}
}

// drain empties what is still queued and flushes one final batch.
func (b *Batcher[T]) drain(ctx context.Context, buf []T) {
	for {
		select {
		case item := <-b.items:
			buf = append(buf, item)
		default:
			b.flushBatch(ctx, buf)
			return
		}
	}
}

// flushBatch flushes buf and returns it emptied for reuse. A flush error is
// logged and the batch dropped; the loop keeps running.
func (b *Batcher[T]) flushBatch(ctx context.Context, buf []T) []T {
	if len(buf) == 0 {
		return buf
	}

	b.limiter.Take()
	if err := b.flush(ctx, buf); err != nil {
		b.logger.Error("batch not flushed", zap.Error(err))
	} else {
		b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
	}
	return buf[:0]
}
