package client

import (
	"github.com/mash-protocol/lwm2m-go/pkg/persistence"
)

// Snapshot returns the persistent configuration of every server.
func (c *Client) Snapshot() []persistence.ServerConfig {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]persistence.ServerConfig, 0, len(c.servers))
	for _, srv := range c.servers {
		cfg := persistence.ServerConfig{
			ShortID:             srv.ShortID,
			URI:                 srv.URI,
			Lifetime:            uint32(srv.Lifetime),
			SecurityMode:        uint8(srv.SecurityMode),
			QueueMode:           srv.Binding&BindingQueue != 0,
			NotificationStoring: srv.NotificationStoring,
			DisableTimeout:      srv.DisableTimeout,
		}
		if c.features.DefaultPeriods {
			cfg.DefaultMinPeriod = ptr(srv.DefaultMinPeriod)
			if srv.DefaultMaxPeriod != PmaxUnset {
				cfg.DefaultMaxPeriod = ptr(srv.DefaultMaxPeriod)
			}
		}
		out = append(out, cfg)
	}
	return out
}

// Restore adds the servers of a snapshot. Every entry is attempted; the
// first failure is returned.
func (c *Client) Restore(servers []persistence.ServerConfig) error {
	var first error
	for _, cfg := range servers {
		var flags ServerFlag
		if cfg.QueueMode {
			flags |= FlagQueueMode
		}
		if err := c.AddServer(cfg.ShortID, cfg.URI, cfg.Lifetime, flags, SecurityMode(cfg.SecurityMode)); err != nil {
			c.logger.Warn("failed to restore server", "short_id", cfg.ShortID, "error", err)
			if first == nil {
				first = err
			}
			continue
		}

		c.mu.Lock()
		if srv := c.findLocked(cfg.ShortID); srv != nil {
			srv.NotificationStoring = cfg.NotificationStoring
			if cfg.DisableTimeout >= 0 {
				srv.DisableTimeout = cfg.DisableTimeout
			}
			if c.features.DefaultPeriods {
				if cfg.DefaultMinPeriod != nil {
					srv.DefaultMinPeriod = *cfg.DefaultMinPeriod
				}
				if cfg.DefaultMaxPeriod != nil {
					srv.DefaultMaxPeriod = *cfg.DefaultMaxPeriod
				}
			}
		}
		c.mu.Unlock()
	}
	return first
}
