package client

import (
	"github.com/mash-protocol/lwm2m-go/pkg/log"
)

// LockNotifications marks that application code is running (enter true) or
// has returned (enter false). Resource change marks are queued while the mark
// is set and flushed in order when it is cleared, followed by a wake.
func (c *Client) LockNotifications(enter bool) {
	c.mu.Lock()
	c.notificationsLocked = enter

	var flushed int
	if !enter {
		for _, p := range c.pending {
			c.engine.ResourceChanged(p)
		}
		flushed = len(c.pending)
		c.pending = nil
	}

	op := "Unlock"
	if enter {
		op = "Lock"
	}
	c.traceOp(log.CategoryGuard, op, nil, nil, nil)
	c.logger.Debug("notification lock", "locked", enter, "flushed", flushed)
	c.mu.Unlock()

	if !enter {
		c.wake()
	}
}

// NotificationsLocked reports whether LockNotifications(true) is in effect.
func (c *Client) NotificationsLocked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notificationsLocked
}
