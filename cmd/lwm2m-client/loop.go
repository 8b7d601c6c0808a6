package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/client"
)

// logUpdater stands in for the registration engine's update request.
type logUpdater struct {
	logger *slog.Logger
}

func (u logUpdater) UpdateRegistration(s client.ServerInfo) error {
	u.logger.Info("registration update", "short_id", s.ShortID, "uri", s.URI,
		"lifetime", s.Lifetime, "binding", s.Binding, "queue", s.QueueMode)
	return nil
}

// minServiceInterval bounds how often the simulated engine services servers
// that are still due right after being serviced, such as an observation with
// a zero max period.
const minServiceInterval = time.Second

// runner is the application poll loop. With simulate set it also plays the
// registration engine: new servers are registered, lifetimes refreshed and
// max-period notifications marked as sent.
type runner struct {
	c        *client.Client
	logger   *slog.Logger
	simulate bool
}

// Run services the client until ctx is done.
func (r *runner) Run(ctx context.Context) {
	for {
		if r.simulate {
			r.service()
			// servicing wakes the loop itself; those wakes carry no news
			select {
			case <-r.c.WakeChannel():
			default:
			}
		}

		// without the simulated engine nobody services a due server, so only
		// a wake ends the wait
		var wait time.Duration
		switch delay := r.c.NextWakeDelay(); {
		case delay == client.NoDeadline:
		case delay > 0:
			wait = time.Duration(delay) * time.Second
		case r.simulate:
			wait = minServiceInterval
		}

		var timer *time.Timer
		var fire <-chan time.Time
		if wait > 0 {
			timer = time.NewTimer(wait)
			fire = timer.C
		}

		select {
		case <-ctx.Done():
			stopTimer(timer)
			return
		case <-r.c.WakeChannel():
		case <-fire:
		}
		stopTimer(timer)
	}
}

func stopTimer(t *time.Timer) {
	if t != nil {
		t.Stop()
	}
}

// service advances every server that is due.
func (r *runner) service() {
	now := r.c.Now()
	for _, s := range r.c.Servers() {
		switch s.State {
		case client.StateUnregistered:
			r.register(s, now)
		case client.StateRegistered:
			if s.RefreshAt > 0 && s.RefreshAt <= now {
				r.refresh(s, now)
			}
			for _, obs := range s.Observations {
				if obs.HasMaxPeriod && obs.LastNotify+int64(obs.MaxPeriod) <= now {
					if err := r.c.MarkNotified(s.ShortID, obs.Path, now); err != nil {
						r.logger.Warn("notify failed", "short_id", s.ShortID, "path", obs.Path.String(), "error", err)
					}
				}
			}
		}
	}
}

func (r *runner) register(s client.ServerInfo, now int64) {
	if err := r.c.SetServerState(s.ShortID, client.StateRegistering, 0); err != nil {
		r.logger.Warn("register failed", "short_id", s.ShortID, "error", err)
		return
	}
	if err := r.c.SetServerState(s.ShortID, client.StateRegistered, now+int64(s.Lifetime)); err != nil {
		r.logger.Warn("register failed", "short_id", s.ShortID, "error", err)
	}
}

func (r *runner) refresh(s client.ServerInfo, now int64) {
	if err := r.c.SendHeartbeat(s.ShortID); err != nil {
		r.logger.Warn("lifetime refresh failed", "short_id", s.ShortID, "error", err)
		_ = r.c.ReportRegistrationFailure(s.ShortID, true, true, 0)
		return
	}
	if err := r.c.SetServerState(s.ShortID, client.StateRegistered, now+int64(s.Lifetime)); err != nil {
		r.logger.Warn("lifetime refresh failed", "short_id", s.ShortID, "error", err)
	}
}
