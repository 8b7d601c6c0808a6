package client

import (
	"github.com/mash-protocol/lwm2m-go/pkg/log"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

// The methods in this file are called by the registration and notification
// engines to drive the server lifecycle. Each one delivers the matching
// event and wakes the poll loop.

// stateEvent maps a lifecycle state to the event announcing it.
func stateEvent(state RegistrationState) (EventType, bool) {
	switch state {
	case StateUnregistered:
		return EventUnregistered, true
	case StateRegistering:
		return EventRegistering, true
	case StateRegistered:
		return EventRegistered, true
	case StateUpdating:
		return EventRegistrationUpdating, true
	default:
		return 0, false
	}
}

// lockServer locks the client and returns the server, or unlocks and returns
// the lookup error.
func (c *Client) lockServer(shortID uint16) (*Server, error) {
	if shortID == model.ReservedShortID || shortID == model.IDAll {
		return nil, wire.Errorf(wire.StatusForbidden, "short id %d is reserved", shortID)
	}
	c.mu.Lock()
	srv := c.findLocked(shortID)
	if srv == nil {
		c.mu.Unlock()
		return nil, wire.Errorf(wire.StatusNotFound, "server %d not found", shortID)
	}
	return srv, nil
}

// updateServer runs fn on the server with the client locked and wakes the
// poll loop when fn succeeds. The lock is released even if an event handler
// invoked from fn panics.
func (c *Client) updateServer(shortID uint16, fn func(srv *Server) error) error {
	err := func() error {
		srv, err := c.lockServer(shortID)
		if err != nil {
			return err
		}
		defer c.mu.Unlock()
		return fn(srv)
	}()
	if err != nil {
		return err
	}
	c.wake()
	return nil
}

// SetServerState records a registration state change. refreshAt is the time
// the lifetime refresh is due; 0 disarms the refresh timer. An event is
// delivered only when the state actually changes.
func (c *Client) SetServerState(shortID uint16, state RegistrationState, refreshAt int64) error {
	if state > StateDeregistering {
		return wire.Errorf(wire.StatusBadRequest, "unknown state %d", state)
	}
	return c.updateServer(shortID, func(srv *Server) error {
		old := srv.State
		srv.State = state
		if refreshAt > 0 {
			srv.Refresh = Timer{ExecutionTime: refreshAt, Armed: true}
		} else {
			srv.Refresh = Timer{}
		}

		ev := c.traceEvent(log.CategoryRegistry, "SetServerState")
		ev.ServerShortID = ptr(shortID)
		ev.StateChange = &log.StateChangeEvent{OldState: old.String(), NewState: state.String(), RefreshAt: refreshAt}
		c.trace.Log(ev)
		c.logger.Info("server state changed", "short_id", shortID, "from", old, "to", state)

		if t, ok := stateEvent(state); ok && old != state {
			c.dispatchLocked(Event{Type: t, ServerShortID: shortID})
		}
		return nil
	})
}

// ReportRegistrationFailure moves the server to StateFailed and delivers
// EventRegistrationFailed, or EventRegistrationUpdateFailed when update is set.
func (c *Client) ReportRegistrationFailure(shortID uint16, update, internal bool, code uint8) error {
	return c.updateServer(shortID, func(srv *Server) error {
		old := srv.State
		srv.State = StateFailed
		srv.Refresh = Timer{}

		ev := c.traceEvent(log.CategoryRegistry, "ReportRegistrationFailure")
		ev.ServerShortID = ptr(shortID)
		ev.Status = ptr(wire.Status(code))
		ev.StateChange = &log.StateChangeEvent{OldState: old.String(), NewState: StateFailed.String()}
		c.trace.Log(ev)
		c.logger.Warn("registration failed", "short_id", shortID, "update", update, "internal", internal, "code", wire.Status(code))

		t := EventRegistrationFailed
		if update {
			t = EventRegistrationUpdateFailed
		}
		c.dispatchLocked(Event{
			Type:          t,
			ServerShortID: shortID,
			Registration:  &RegistrationDetails{InternalError: internal, ErrorCode: code},
		})
		return nil
	})
}

// ReportBootstrap delivers one of the bootstrap events for a server.
func (c *Client) ReportBootstrap(shortID uint16, t EventType) error {
	if !t.isBootstrap() {
		return wire.Errorf(wire.StatusBadRequest, "%s is not a bootstrap event", t)
	}
	return c.updateServer(shortID, func(*Server) error {
		c.traceOp(log.CategoryRegistry, "ReportBootstrap", ptr(shortID), nil, nil)
		c.dispatchLocked(Event{Type: t, ServerShortID: shortID})
		return nil
	})
}

// AttachPeer binds a live transport peer to a server, replacing and closing
// any previous one, even when the same peer is attached again. Cached CoAP overrides are pushed to the new peer.
func (c *Client) AttachPeer(shortID uint16, peer TransportPeer) error {
	if peer == nil {
		return wire.Errorf(wire.StatusBadRequest, "peer is nil")
	}
	srv, err := c.lockServer(shortID)
	if err != nil {
		return err
	}
	defer c.mu.Unlock()

	// Peers need not be comparable, so the old one is closed unconditionally.
	if srv.Peer != nil {
		if err := srv.Peer.Close(); err != nil {
			c.logger.Warn("failed to close transport peer", "short_id", shortID, "error", err)
		}
	}
	srv.Peer = peer

	overrides := []struct {
		id    PeerSetting
		value uint8
	}{
		{PeerAckTimeout, srv.CoAPAckTimeout},
		{PeerMaxRetransmit, srv.CoAPMaxRetransmit},
	}
	for _, o := range overrides {
		if o.value == SettingUnset {
			continue
		}
		if err := peer.SetSetting(o.id, o.value); err != nil {
			c.logger.Warn("failed to apply peer setting", "short_id", shortID, "setting", o.id, "error", err)
		}
	}
	c.traceOp(log.CategoryRegistry, "AttachPeer", ptr(shortID), nil, nil)
	return nil
}

// DetachPeer closes and drops the transport peer of a server.
func (c *Client) DetachPeer(shortID uint16) error {
	srv, err := c.lockServer(shortID)
	if err != nil {
		return err
	}
	defer c.mu.Unlock()

	if srv.Peer == nil {
		return nil
	}
	err = srv.Peer.Close()
	srv.Peer = nil
	c.traceOp(log.CategoryRegistry, "DetachPeer", ptr(shortID), nil, err)
	return err
}

// AddObservation starts or replaces the observation of obs.Path.
func (c *Client) AddObservation(shortID uint16, obs Observation) error {
	return c.updateServer(shortID, func(srv *Server) error {
		if idx := srv.observation(obs.Path); idx >= 0 {
			srv.Observations[idx] = obs
		} else {
			srv.Observations = append(srv.Observations, obs)
		}
		c.traceOp(log.CategoryRegistry, "AddObservation", ptr(shortID), ptr(obs.Path.ObjectID), nil)
		c.dispatchLocked(Event{Type: EventObservationStarted, ServerShortID: shortID})
		return nil
	})
}

// RemoveObservation stops the observation of path.
func (c *Client) RemoveObservation(shortID uint16, path model.Path) error {
	return c.updateServer(shortID, func(srv *Server) error {
		idx := srv.observation(path)
		if idx < 0 {
			return wire.Errorf(wire.StatusNotFound, "server %d does not observe %s", shortID, path)
		}
		srv.Observations = append(srv.Observations[:idx], srv.Observations[idx+1:]...)
		c.traceOp(log.CategoryRegistry, "RemoveObservation", ptr(shortID), ptr(path.ObjectID), nil)
		c.dispatchLocked(Event{Type: EventObservationStopped, ServerShortID: shortID})
		return nil
	})
}

// MarkNotified records that a notification for path was sent at the given time.
func (c *Client) MarkNotified(shortID uint16, path model.Path, at int64) error {
	return c.updateServer(shortID, func(srv *Server) error {
		idx := srv.observation(path)
		if idx < 0 {
			return wire.Errorf(wire.StatusNotFound, "server %d does not observe %s", shortID, path)
		}
		srv.Observations[idx].LastNotify = at
		c.traceOp(log.CategoryRegistry, "MarkNotified", ptr(shortID), ptr(path.ObjectID), nil)
		c.dispatchLocked(Event{Type: EventObservationNotification, ServerShortID: shortID})
		return nil
	})
}
