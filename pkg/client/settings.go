package client

import (
	"github.com/mash-protocol/lwm2m-go/pkg/log"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

// SettingID identifies a server runtime setting.
type SettingID uint8

const (
	SettingLifetime            SettingID = iota // int32
	SettingBinding                              // Binding, without BindingQueue
	SettingQueueMode                            // bool
	SettingNotificationStoring                  // bool
	SettingDisableTimeout                       // int32
	SettingDefaultMinPeriod                     // uint32
	SettingDefaultMaxPeriod                     // uint32
	SettingCoAPAckTimeout                       // uint8
	SettingCoAPMaxRetransmit                    // uint8
)

// String returns the setting name.
func (id SettingID) String() string {
	switch id {
	case SettingLifetime:
		return "LIFETIME"
	case SettingBinding:
		return "BINDING"
	case SettingQueueMode:
		return "QUEUE_MODE"
	case SettingNotificationStoring:
		return "NOTIFICATION_STORING"
	case SettingDisableTimeout:
		return "DISABLE_TIMEOUT"
	case SettingDefaultMinPeriod:
		return "DEFAULT_MIN_PERIOD"
	case SettingDefaultMaxPeriod:
		return "DEFAULT_MAX_PERIOD"
	case SettingCoAPAckTimeout:
		return "COAP_ACK_TIMEOUT"
	case SettingCoAPMaxRetransmit:
		return "COAP_MAX_RETRANSMIT"
	default:
		return "UNKNOWN"
	}
}

// ServerSetting returns the effective value of a server setting.
func (c *Client) ServerSetting(shortID uint16, id SettingID) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	srv := c.findLocked(shortID)
	if srv == nil {
		return nil, wire.Errorf(wire.StatusNotFound, "server %d not found", shortID)
	}
	return c.settingLocked(srv, id)
}

// settingLocked resolves a setting. CoAP tuning values come from the live
// peer first, then from the cached override.
func (c *Client) settingLocked(srv *Server, id SettingID) (any, error) {
	switch id {
	case SettingLifetime:
		return srv.Lifetime, nil
	case SettingBinding:
		return srv.Binding &^ BindingQueue, nil
	case SettingQueueMode:
		return srv.Binding&BindingQueue != 0, nil
	case SettingNotificationStoring:
		return srv.NotificationStoring, nil
	case SettingDisableTimeout:
		return srv.DisableTimeout, nil
	case SettingDefaultMinPeriod, SettingDefaultMaxPeriod:
		if !c.features.DefaultPeriods {
			return nil, wire.Errorf(wire.StatusNotImplemented, "default periods are not supported")
		}
		if id == SettingDefaultMinPeriod {
			return srv.DefaultMinPeriod, nil
		}
		return srv.DefaultMaxPeriod, nil
	case SettingCoAPAckTimeout:
		return peerSetting(srv, PeerAckTimeout, srv.CoAPAckTimeout)
	case SettingCoAPMaxRetransmit:
		return peerSetting(srv, PeerMaxRetransmit, srv.CoAPMaxRetransmit)
	default:
		return nil, wire.Errorf(wire.StatusNotImplemented, "setting %d", id)
	}
}

func peerSetting(srv *Server, id PeerSetting, cached uint8) (any, error) {
	if srv.Peer != nil {
		v, err := srv.Peer.Setting(id)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	if cached != SettingUnset {
		return cached, nil
	}
	return nil, wire.Errorf(wire.StatusPreconditionFailed, "%s is unset and server %d has no peer", id, srv.ShortID)
}

// UpdateServerSetting changes a server setting and reports it with a
// SettingChanged event. The value must have the type ServerSetting returns
// for id; SettingLifetime also accepts uint32 with AddServer semantics.
func (c *Client) UpdateServerSetting(shortID uint16, id SettingID, value any) error {
	if shortID == model.ReservedShortID || shortID == model.IDAll {
		return wire.Errorf(wire.StatusForbidden, "short id %d is reserved", shortID)
	}
	return c.updateServer(shortID, func(srv *Server) error {
		err := c.applySettingLocked(srv, id, value)
		c.traceOp(log.CategoryRegistry, "UpdateServerSetting", ptr(shortID), nil, err)
		if err != nil {
			c.logger.Warn("setting not updated", "short_id", shortID, "setting", id, "error", err)
			return err
		}
		c.dispatchLocked(Event{Type: EventSettingChanged, ServerShortID: shortID, Setting: &SettingDetails{ID: id}})
		return nil
	})
}

func (c *Client) applySettingLocked(srv *Server, id SettingID, value any) error {
	mismatch := func() error {
		return wire.Errorf(wire.StatusBadRequest, "setting %s does not accept %T", id, value)
	}

	switch id {
	case SettingLifetime:
		switch v := value.(type) {
		case int32:
			if v <= 0 {
				return wire.Errorf(wire.StatusBadRequest, "lifetime %d must be positive", v)
			}
			srv.Lifetime = v
		case uint32:
			srv.Lifetime = normalizeLifetime(v)
		default:
			return mismatch()
		}
	case SettingBinding:
		v, ok := value.(Binding)
		if !ok {
			return mismatch()
		}
		if v&^BindingQueue == 0 {
			return wire.Errorf(wire.StatusBadRequest, "binding has no transport")
		}
		srv.Binding = v&^BindingQueue | srv.Binding&BindingQueue
	case SettingQueueMode:
		v, ok := value.(bool)
		if !ok {
			return mismatch()
		}
		if v {
			srv.Binding |= BindingQueue
		} else {
			srv.Binding &^= BindingQueue
		}
	case SettingNotificationStoring:
		v, ok := value.(bool)
		if !ok {
			return mismatch()
		}
		srv.NotificationStoring = v
	case SettingDisableTimeout:
		v, ok := value.(int32)
		if !ok {
			return mismatch()
		}
		if v < 0 {
			return wire.Errorf(wire.StatusBadRequest, "disable timeout %d is negative", v)
		}
		srv.DisableTimeout = v
	case SettingDefaultMinPeriod, SettingDefaultMaxPeriod:
		if !c.features.DefaultPeriods {
			return wire.Errorf(wire.StatusNotImplemented, "default periods are not supported")
		}
		v, ok := value.(uint32)
		if !ok {
			return mismatch()
		}
		switch {
		case id == SettingDefaultMinPeriod:
			srv.DefaultMinPeriod = v
		case v >= srv.DefaultMinPeriod:
			srv.DefaultMaxPeriod = v
		default:
			srv.DefaultMaxPeriod = PmaxUnset
		}
	case SettingCoAPAckTimeout, SettingCoAPMaxRetransmit:
		v, ok := value.(uint8)
		if !ok {
			return mismatch()
		}
		peerID := PeerAckTimeout
		if id == SettingCoAPMaxRetransmit {
			peerID = PeerMaxRetransmit
		}
		if srv.Peer != nil && v != SettingUnset {
			if err := srv.Peer.SetSetting(peerID, v); err != nil {
				return err
			}
		}
		if id == SettingCoAPAckTimeout {
			srv.CoAPAckTimeout = v
		} else {
			srv.CoAPMaxRetransmit = v
		}
	default:
		return wire.Errorf(wire.StatusNotImplemented, "setting %d", id)
	}
	return nil
}
