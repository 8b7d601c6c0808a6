package client

import (
	"github.com/mash-protocol/lwm2m-go/pkg/log"
)

// EventType identifies a client event.
type EventType uint8

const (
	EventBootstrapPending EventType = iota
	EventBootstrapFinished
	EventBootstrapFailed
	EventUnregistered
	EventRegistering
	EventRegistered
	EventRegistrationUpdating
	EventRegistrationFailed
	EventRegistrationUpdateFailed
	EventObservationStarted
	EventObservationNotification
	EventObservationStopped
	EventSettingChanged
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventBootstrapPending:
		return "BOOTSTRAP_PENDING"
	case EventBootstrapFinished:
		return "BOOTSTRAP_FINISHED"
	case EventBootstrapFailed:
		return "BOOTSTRAP_FAILED"
	case EventUnregistered:
		return "UNREGISTERED"
	case EventRegistering:
		return "REGISTERING"
	case EventRegistered:
		return "REGISTERED"
	case EventRegistrationUpdating:
		return "REGISTRATION_UPDATING"
	case EventRegistrationFailed:
		return "REGISTRATION_FAILED"
	case EventRegistrationUpdateFailed:
		return "REGISTRATION_UPDATE_FAILED"
	case EventObservationStarted:
		return "OBSERVATION_STARTED"
	case EventObservationNotification:
		return "OBSERVATION_NOTIFICATION"
	case EventObservationStopped:
		return "OBSERVATION_STOPPED"
	case EventSettingChanged:
		return "SETTING_CHANGED"
	default:
		return "UNKNOWN"
	}
}

// carriesLifetime reports whether events of this type include the lifetime.
func (t EventType) carriesLifetime() bool {
	switch t {
	case EventBootstrapPending, EventBootstrapFailed,
		EventRegistering, EventRegistered, EventRegistrationUpdating:
		return true
	default:
		return false
	}
}

func (t EventType) isFailure() bool {
	return t == EventRegistrationFailed || t == EventRegistrationUpdateFailed
}

func (t EventType) isBootstrap() bool {
	return t == EventBootstrapPending || t == EventBootstrapFinished || t == EventBootstrapFailed
}

// SettingDetails is the payload of EventSettingChanged.
type SettingDetails struct {
	ID    SettingID
	Value any
}

// RegistrationDetails is the payload of lifecycle and failure events.
// Lifetime is set for lifecycle events; InternalError and ErrorCode for
// EventRegistrationFailed and EventRegistrationUpdateFailed.
type RegistrationDetails struct {
	Lifetime      int32
	InternalError bool
	ErrorCode     uint8
}

// Event is delivered to the application's EventHandler.
type Event struct {
	Type          EventType
	ServerShortID uint16
	Setting       *SettingDetails
	Registration  *RegistrationDetails
}

// EventHandler receives client events. It runs without the client lock held
// and may call back into c.
type EventHandler func(ev Event, c *Client)

// dispatchLocked completes the payload of ev and delivers it. It must be
// called with c.mu held; the lock is released while the handler runs, so
// callers must not rely on server pointers afterwards.
func (c *Client) dispatchLocked(ev Event) {
	srv := c.findLocked(ev.ServerShortID)

	switch {
	case ev.Type == EventSettingChanged:
		if srv == nil || ev.Setting == nil {
			c.traceDispatch(ev, true)
			return
		}
		v, err := c.settingLocked(srv, ev.Setting.ID)
		if err != nil {
			c.logger.Debug("setting changed event suppressed",
				"short_id", ev.ServerShortID, "setting", ev.Setting.ID, "error", err)
			c.traceDispatch(ev, true)
			return
		}
		ev.Setting = &SettingDetails{ID: ev.Setting.ID, Value: v}
	case ev.Type.isFailure():
		if ev.Registration == nil {
			ev.Registration = &RegistrationDetails{}
		}
	case ev.Type.carriesLifetime():
		if srv != nil {
			ev.Registration = &RegistrationDetails{Lifetime: srv.Lifetime}
		}
	default:
		ev.Registration = nil
	}

	c.metrics.EventDispatched(ev.Type.String())
	c.traceDispatch(ev, false)

	handler := c.handler
	if handler == nil {
		return
	}

	c.mu.Unlock()
	defer c.mu.Lock()
	handler(ev, c)
}

func (c *Client) traceDispatch(ev Event, suppressed bool) {
	te := c.traceEvent(log.CategoryEvent, "Dispatch")
	te.ServerShortID = ptr(ev.ServerShortID)
	d := &log.DispatchEvent{Type: ev.Type.String(), Suppressed: suppressed}
	if ev.Setting != nil {
		d.SettingID = ptr(uint8(ev.Setting.ID))
		d.Value = ev.Setting.Value
	}
	if ev.Registration != nil {
		if ev.Type.isFailure() {
			d.InternalError = ev.Registration.InternalError
			d.ErrorCode = ev.Registration.ErrorCode
		} else {
			d.Lifetime = ptr(ev.Registration.Lifetime)
		}
	}
	te.Dispatch = d
	c.trace.Log(te)
}
