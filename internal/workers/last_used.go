// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-api-hub/internal/logger"
	"github.com/MKhiriev/go-api-hub/internal/store"
)

type tokenUsage struct {
	token string
	at    time.Time
}

// LastUsedRecorder moves last-used timestamp writes off the request path.
// Validated tokens are queued with Record and written to the token ledger
// by Run. When the queue is full the stamp is dropped: last-used is
// best-effort and must never slow down or fail a validation.
type LastUsedRecorder struct {
	tokens store.TokenRepository
	queue  chan tokenUsage
	logger *logger.Logger
}

func NewLastUsedRecorder(tokens store.TokenRepository, buffer int, logger *logger.Logger) *LastUsedRecorder {
	if buffer <= 0 {
		buffer = 1
	}
	return &LastUsedRecorder{
		tokens: tokens,
		queue:  make(chan tokenUsage, buffer),
		logger: logger,
	}
}

// Record queues a last-used stamp without blocking and reports whether it
// was accepted.
func (r *LastUsedRecorder) Record(token string, at time.Time) bool {
	select {
	case r.queue <- tokenUsage{token: token, at: at}:
		return true
	default:
		r.logger.Debug().Str("func", "*LastUsedRecorder.Record").Msg("last-used queue is full, stamp dropped")
		return false
	}
}

// Run writes queued stamps until ctx is cancelled, then flushes whatever is
// still buffered.
func (r *LastUsedRecorder) Run(ctx context.Context) error {
	r.logger.Info().Int("buffer", cap(r.queue)).Msg("last-used recorder started")

	for {
		select {
		case <-ctx.Done():
			r.flush(context.WithoutCancel(ctx))
			r.logger.Info().Msg("last-used recorder stopped")
			return nil
		case usage := <-r.queue:
			r.touch(ctx, usage)
		}
	}
}

func (r *LastUsedRecorder) flush(ctx context.Context) {
	for {
		select {
		case usage := <-r.queue:
			r.touch(ctx, usage)
		default:
			return
		}
	}
}

func (r *LastUsedRecorder) touch(ctx context.Context, usage tokenUsage) {
	if err := r.tokens.TouchToken(ctx, usage.token, usage.at); err != nil {
		r.logger.Warn().Err(err).Str("func", "*LastUsedRecorder.touch").Msg("failed to record token usage")
	}
}
