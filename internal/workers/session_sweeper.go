// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/sparxrahulpawar/tsxChat/internal/logger"
	"github.com/sparxrahulpawar/tsxChat/internal/store"
)

// SessionSweeper periodically deletes sessions whose expiry has passed.
// Expired sessions are already rejected on lookup; sweeping only keeps the
// table small.
type SessionSweeper struct {
	sessionRepository store.SessionRepository
	interval          time.Duration
	now               func() time.Time

	logger *logger.Logger
}

func NewSessionSweeper(sessionRepository store.SessionRepository, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessionRepository: sessionRepository,
		interval:          interval,
		now:               time.Now,
		logger:            logger,
	}
}

// Run sweeps once immediately and then every interval until ctx is done.
// A non-positive interval disables the sweeper.
func (s *SessionSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info().Msg("session sweeper disabled")
		return
	}

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			// a tick may race with cancellation
			if ctx.Err() != nil {
				continue
			}
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	deleted, err := s.sessionRepository.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Msg("expired sessions sweep failed")
		}
		return
	}

	if deleted > 0 {
		s.logger.Info().Int64("deleted", deleted).Msg("expired sessions removed")
	}
}
