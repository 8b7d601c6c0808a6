package client

import (
	"slices"

	"github.com/mash-protocol/lwm2m-go/pkg/coapuri"
	"github.com/mash-protocol/lwm2m-go/pkg/log"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

// AddServer configures a new management server. The server starts
// Unregistered; the registration engine takes it from there.
func (c *Client) AddServer(shortID uint16, uri string, lifetime uint32, flags ServerFlag, mode SecurityMode) error {
	c.logger.Info("adding server", "short_id", shortID, "uri", uri, "lifetime", lifetime, "security", mode)

	err := c.addServer(shortID, uri, lifetime, flags, mode)
	if err != nil {
		c.logger.Warn("server not added", "short_id", shortID, "error", err)
		c.traceOp(log.CategoryRegistry, "AddServer", ptr(shortID), nil, err)
		return err
	}
	c.wake()
	return nil
}

func (c *Client) addServer(shortID uint16, uri string, lifetime uint32, flags ServerFlag, mode SecurityMode) error {
	if shortID == model.ReservedShortID || shortID == model.IDAll {
		return wire.Errorf(wire.StatusForbidden, "short id %d is reserved", shortID)
	}
	if !c.features.SupportsSecurityMode(mode) {
		return wire.Errorf(wire.StatusNotAcceptable, "security mode %s is not supported", mode)
	}

	info, err := c.parser.ParseURI(uri)
	if err != nil {
		return err
	}
	if !c.features.SupportsConnectionKind(info.Kind) {
		return wire.Errorf(wire.StatusNotAcceptable, "%s connections are not supported", info.Kind)
	}
	if info.Secure != (mode != SecurityNone) {
		return wire.Errorf(wire.StatusNotAcceptable, "uri %q does not match security mode %s", uri, mode)
	}

	binding := BindingUDP
	if info.Kind != coapuri.KindDatagram {
		binding = BindingTCP
	}
	if flags&FlagQueueMode != 0 {
		binding |= BindingQueue
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.findLocked(shortID) != nil {
		return wire.Errorf(wire.StatusForbidden, "short id %d is already used", shortID)
	}

	srv := newServer(shortID, uri, normalizeLifetime(lifetime), mode, binding)
	srv.SecurityInstanceID, srv.ServerInstanceID = allocateInstanceIDs(c.servers)

	if err := c.objects.CreateSecurityInstance(srv.SecurityInstanceID, shortID, uri); err != nil {
		c.logger.Error("failed to create security instance", "short_id", shortID, "error", err)
		return err
	}
	if err := c.objects.CreateServerInstance(srv.ServerInstanceID, shortID, srv.Lifetime); err != nil {
		c.logger.Error("failed to create server instance", "short_id", shortID, "error", err)
		if rerr := c.objects.RemoveSecurityInstance(srv.SecurityInstanceID); rerr != nil {
			c.logger.Error("failed to roll back security instance", "short_id", shortID, "error", rerr)
		}
		return err
	}

	c.servers = append(c.servers, srv)
	c.metrics.ServerAdded()
	c.traceOp(log.CategoryRegistry, "AddServer", ptr(shortID), nil, nil)
	c.logger.Info("server added", "short_id", shortID,
		"security_instance", srv.SecurityInstanceID, "server_instance", srv.ServerInstanceID)
	return nil
}

// RemoveServer removes one server, or every server with model.IDAll. The
// servers are gone afterwards even when the object layer reports a failure.
func (c *Client) RemoveServer(shortID uint16) error {
	if shortID == model.ReservedShortID {
		return wire.Errorf(wire.StatusForbidden, "short id %d is reserved", shortID)
	}
	c.logger.Info("removing server", "short_id", shortID)

	c.mu.Lock()
	var err error
	if shortID != model.IDAll {
		idx := c.indexLocked(shortID)
		if idx < 0 {
			c.mu.Unlock()
			return wire.Errorf(wire.StatusNotFound, "server %d not found", shortID)
		}
		srv := c.servers[idx]
		c.servers = slices.Delete(c.servers, idx, idx+1)
		err = c.removeServerLocked(srv, len(c.servers) == 0)
	} else {
		servers := c.servers
		c.servers = nil
		for i, srv := range servers {
			if rerr := c.removeServerLocked(srv, i == len(servers)-1); rerr != nil && err == nil {
				err = rerr
			}
		}
	}
	c.traceOp(log.CategoryRegistry, "RemoveServer", ptr(shortID), nil, err)
	c.mu.Unlock()

	c.wake()
	return err
}

// removeServerLocked deletes the backing instances and releases the server,
// which has already been detached from the list. When last is set, a Server
// instance removal reporting PreconditionFailed (the last instance) is not an
// error.
func (c *Client) removeServerLocked(srv *Server, last bool) error {
	defer func() {
		if err := srv.release(); err != nil {
			c.logger.Warn("failed to close transport peer", "short_id", srv.ShortID, "error", err)
		}
		c.metrics.ServerRemoved()
	}()

	if err := c.objects.RemoveSecurityInstance(srv.SecurityInstanceID); err != nil {
		c.logger.Error("failed to remove security instance", "short_id", srv.ShortID, "error", err)
		return err
	}
	if err := c.objects.RemoveServerInstance(srv.ServerInstanceID); err != nil &&
		!(last && wire.StatusOf(err) == wire.StatusPreconditionFailed) {
		c.logger.Error("failed to remove server instance", "short_id", srv.ShortID, "error", err)
		return err
	}
	c.logger.Info("server removed", "short_id", srv.ShortID)
	return nil
}

// SendHeartbeat forces a registration update on one server, or on every
// server with model.IDAll. The first failure is returned.
func (c *Client) SendHeartbeat(shortID uint16) error {
	if shortID == model.ReservedShortID {
		return wire.Errorf(wire.StatusForbidden, "short id %d is reserved", shortID)
	}

	c.mu.Lock()
	targets, err := c.targetsLocked(shortID)
	if err != nil {
		c.mu.Unlock()
		return err
	}

	var result error
	for _, srv := range targets {
		herr := c.updater.UpdateRegistration(srv.info())
		c.metrics.HeartbeatSent(wire.StatusOf(herr).String())
		c.traceOp(log.CategoryRegistry, "SendHeartbeat", ptr(srv.ShortID), nil, herr)
		if herr != nil {
			c.logger.Warn("heartbeat failed", "short_id", srv.ShortID, "error", herr)
			if result == nil {
				result = herr
			}
		}
		c.wake()
	}
	if len(targets) == 0 {
		result = wire.Errorf(wire.StatusPreconditionFailed, "no server to update")
	}
	c.mu.Unlock()
	return result
}

// SetDefaultNotificationPeriods sets the default pmin of one server, or every
// server with model.IDAll. The default pmax is set when maxPeriod >= minPeriod
// and reset to PmaxUnset otherwise.
func (c *Client) SetDefaultNotificationPeriods(shortID uint16, minPeriod, maxPeriod uint32) error {
	if shortID == model.ReservedShortID {
		return wire.Errorf(wire.StatusForbidden, "short id %d is reserved", shortID)
	}
	if !c.features.DefaultPeriods {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	targets, err := c.targetsLocked(shortID)
	if err != nil {
		return err
	}
	for _, srv := range targets {
		srv.DefaultMinPeriod = minPeriod
		if maxPeriod >= minPeriod {
			srv.DefaultMaxPeriod = maxPeriod
		} else {
			srv.DefaultMaxPeriod = PmaxUnset
		}
		c.traceOp(log.CategoryRegistry, "SetDefaultNotificationPeriods", ptr(srv.ShortID), nil, nil)
	}
	return nil
}

// Server returns a copy of the server with the given short id.
func (c *Client) Server(shortID uint16) (ServerInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	srv := c.findLocked(shortID)
	if srv == nil {
		return ServerInfo{}, false
	}
	return srv.info(), true
}

// Servers returns copies of all servers in insertion order.
func (c *Client) Servers() []ServerInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]ServerInfo, 0, len(c.servers))
	for _, srv := range c.servers {
		out = append(out, srv.info())
	}
	return out
}

func (c *Client) indexLocked(shortID uint16) int {
	return slices.IndexFunc(c.servers, func(s *Server) bool { return s.ShortID == shortID })
}

func (c *Client) findLocked(shortID uint16) *Server {
	if idx := c.indexLocked(shortID); idx >= 0 {
		return c.servers[idx]
	}
	return nil
}

// targetsLocked resolves a short id or model.IDAll to the servers it names.
// The returned slice is a copy, safe to range while the list changes.
func (c *Client) targetsLocked(shortID uint16) ([]*Server, error) {
	if shortID == model.IDAll {
		return slices.Clone(c.servers), nil
	}
	srv := c.findLocked(shortID)
	if srv == nil {
		return nil, wire.Errorf(wire.StatusNotFound, "server %d not found", shortID)
	}
	return []*Server{srv}, nil
}
