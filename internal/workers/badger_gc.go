// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/SaurabViena/heirloom/internal/logger"
)

const (
	defaultGCInterval     = 5 * time.Minute
	defaultGCDiscardRatio = 0.5
)

// GarbageCollector is implemented by stores that reclaim space on demand,
// such as [store.BadgerDB].
type GarbageCollector interface {
	CollectGarbage(discardRatio float64) (int, error)
}

// BadgerGCWorker periodically runs value log garbage collection on the ciphertext
// store. GC errors are logged and do not stop the worker.
type BadgerGCWorker struct {
	store        GarbageCollector
	interval     time.Duration
	discardRatio float64
	logger       *logger.Logger
}

func NewBadgerGCWorker(store GarbageCollector, interval time.Duration, discardRatio float64, log *logger.Logger) *BadgerGCWorker {
	if interval <= 0 {
		interval = defaultGCInterval
	}
	if discardRatio <= 0 || discardRatio >= 1 {
		discardRatio = defaultGCDiscardRatio
	}
	return &BadgerGCWorker{store: store, interval: interval, discardRatio: discardRatio, logger: log}
}

func (w *BadgerGCWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.collect()
		}
	}
}

func (w *BadgerGCWorker) collect() {
	rewritten, err := w.store.CollectGarbage(w.discardRatio)
	if err != nil {
		w.logger.Err(err).Str("func", "*BadgerGCWorker.collect").Msg("value log gc failed")
		return
	}
	if rewritten > 0 {
		w.logger.Info().Int("rewritten", rewritten).Msg("value log gc reclaimed space")
	}
}
