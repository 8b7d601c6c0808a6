package client

import (
	"math"

	"github.com/mash-protocol/lwm2m-go/pkg/log"
)

// NoDeadline is returned by NextWakeDelay when nothing is pending.
const NoDeadline uint32 = math.MaxUint32

// NextWakeDelay returns the number of seconds until one of the servers must
// be serviced: a lifetime refresh or a notification forced by a max period.
// Only Registered servers are considered. It returns 0 as soon as anything is
// due and NoDeadline when nothing is scheduled. servers is not modified.
func NextWakeDelay(servers []*Server, now int64) uint32 {
	delay := NoDeadline
	fold := func(remaining int64) {
		if remaining < int64(delay) {
			delay = uint32(remaining)
		}
	}

	for _, srv := range servers {
		if srv.State != StateRegistered {
			continue
		}
		if srv.Refresh.Armed {
			remaining := srv.Refresh.ExecutionTime - now
			if remaining <= 0 {
				return 0
			}
			fold(remaining)
		}
		for _, obs := range srv.Observations {
			if !obs.HasMaxPeriod {
				continue
			}
			remaining := obs.LastNotify + int64(obs.MaxPeriod) - now
			if remaining <= 0 {
				return 0
			}
			fold(remaining)
		}
	}
	return delay
}

// NextWakeDelay returns the delay computed at the client's current time.
func (c *Client) NextWakeDelay() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.nowLocked()
	delay := NextWakeDelay(c.servers, now)

	c.logger.Debug("next wake delay", "delay", delay, "now", now, "servers", len(c.servers))
	c.metrics.WakeDelay(delay)
	ev := c.traceEvent(log.CategorySchedule, "NextWakeDelay")
	ev.Schedule = &log.ScheduleEvent{Delay: delay, Now: now, Servers: len(c.servers)}
	c.trace.Log(ev)
	return delay
}
