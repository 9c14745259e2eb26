package cron

import (
	"context"
	"log/slog"
	"time"
)

type SessionSweeper interface {
	Sweep(ctx context.Context) int
}

type RevocationPruner interface {
	PruneRevoked(cutoff time.Time) int
}

// SessionJobs evicts expired login state.
type SessionJobs struct {
	sessions SessionSweeper
	revoked  RevocationPruner
	ttl      time.Duration
	now      func() time.Time
}

// NewSessionJobs forgets revoked tokens once they are older than ttl, the
// longest a session can live.
func NewSessionJobs(sessions SessionSweeper, revoked RevocationPruner, ttl time.Duration) *SessionJobs {
	return &SessionJobs{sessions: sessions, revoked: revoked, ttl: ttl, now: time.Now}
}

func (j *SessionJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("sweep_expired_sessions", interval, j.SweepExpiredSessions)
	scheduler.AddJob("prune_revoked_tokens", interval, j.PruneRevokedTokens)
}

func (j *SessionJobs) SweepExpiredSessions(ctx context.Context) error {
	if n := j.sessions.Sweep(ctx); n > 0 {
		slog.Info("expired sessions removed", "count", n)
	}
	return nil
}

func (j *SessionJobs) PruneRevokedTokens(ctx context.Context) error {
	if n := j.revoked.PruneRevoked(j.now().Add(-j.ttl)); n > 0 {
		slog.Info("revoked tokens pruned", "count", n)
	}
	return nil
}
