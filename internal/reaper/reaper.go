// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reaper runs a background sweep that evicts time-expired pastes
// from the store. It satisfies the same server.Server lifecycle contract
// (RunServer/Shutdown) as the HTTP server, so the process lifecycle manager
// can start and stop both uniformly.
package reaper

import (
	"context"
	"errors"
	"time"

	"github.com/omegaupload/omegaupload/internal/logger"
	"github.com/omegaupload/omegaupload/internal/paste"
	"github.com/omegaupload/omegaupload/internal/store"
)

// Reaper periodically scans a store.Store and deletes records whose policy
// deadline has passed. Burn-without-deadline records are never touched by
// the reaper; they are destroyed only by a successful Take on read.
type Reaper struct {
	store    store.Store
	interval time.Duration
	logger   *logger.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// New constructs a Reaper that sweeps s every interval, logging via log.
func New(s store.Store, interval time.Duration, log *logger.Logger) *Reaper {
	return &Reaper{
		store:    s,
		interval: interval,
		logger:   log,
		done:     make(chan struct{}),
	}
}

// RunServer blocks, ticking every r.interval and sweeping the store, until
// Shutdown is called.
func (r *Reaper) RunServer() {
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

// Shutdown cancels the running sweep loop and waits for it to exit.
func (r *Reaper) Shutdown() {
	if r.cancel == nil {
		return
	}
	r.cancel()
	<-r.done
}

// sweep performs a single pass over the store, deleting time-expired
// records. Corrupt records are deleted and logged at warn level; their
// bytes are never logged.
func (r *Reaper) sweep(ctx context.Context) {
	now := time.Now()

	var expired []string
	var corrupt []string

	err := r.store.Scan(ctx, func(id string, data []byte) error {
		policy, err := paste.DecodePolicy(data)
		if err != nil {
			if errors.Is(err, paste.ErrCorruptRecord) {
				corrupt = append(corrupt, id)
				return nil
			}
			return err
		}

		if policy.Expired(now) {
			expired = append(expired, id)
		}
		return nil
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("reaper: scan failed")
		return
	}

	for _, id := range corrupt {
		if err := r.store.Delete(ctx, id); err != nil {
			r.logger.Warn().Str("id", id).Err(err).Msg("reaper: failed to delete corrupt record")
			continue
		}
		r.logger.Warn().Str("id", id).Msg("reaper: deleted corrupt record")
	}

	for _, id := range expired {
		if err := r.store.Delete(ctx, id); err != nil {
			r.logger.Warn().Str("id", id).Err(err).Msg("reaper: failed to delete expired record")
			continue
		}
		r.logger.Debug().Str("id", id).Msg("reaper: deleted expired record")
	}
}
