package log

import (
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

// Event is one trace record emitted by the client core.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// ClientID identifies the client instance (UUID).
	ClientID string `cbor:"2,keyasint"`

	// Category classifies the event.
	Category Category `cbor:"3,keyasint"`

	// Operation is the public operation or hook that produced the event.
	Operation string `cbor:"4,keyasint,omitempty"`

	// ServerShortID is set for server scoped events.
	ServerShortID *uint16 `cbor:"5,keyasint,omitempty"`

	// ObjectID is set for object scoped events.
	ObjectID *uint16 `cbor:"6,keyasint,omitempty"`

	// Status is the outcome of the operation.
	Status *wire.Status `cbor:"7,keyasint,omitempty"`

	// Type-specific payload (at most one of these will be set).
	Dispatch    *DispatchEvent    `cbor:"10,keyasint,omitempty"` // Application callback
	StateChange *StateChangeEvent `cbor:"11,keyasint,omitempty"` // Registration state
	Schedule    *ScheduleEvent    `cbor:"12,keyasint,omitempty"` // Wake delay
	Error       *ErrorEventData   `cbor:"13,keyasint,omitempty"` // Failures
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryRegistry covers server add, remove and heartbeat.
	CategoryRegistry Category = 0
	// CategoryObject covers custom object registration and change marks.
	CategoryObject Category = 1
	// CategoryEvent covers events delivered to the application.
	CategoryEvent Category = 2
	// CategorySchedule covers wake delay computation.
	CategorySchedule Category = 3
	// CategoryGuard covers notification lock transitions.
	CategoryGuard Category = 4
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryRegistry:
		return "REGISTRY"
	case CategoryObject:
		return "OBJECT"
	case CategoryEvent:
		return "EVENT"
	case CategorySchedule:
		return "SCHEDULE"
	case CategoryGuard:
		return "GUARD"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory returns the category for a name produced by String.
func ParseCategory(name string) (Category, bool) {
	for c := CategoryRegistry; c <= CategoryGuard; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return 0, false
}

// DispatchEvent captures an event handed to the application callback.
type DispatchEvent struct {
	// Type is the event type name.
	Type string `cbor:"1,keyasint"`

	// SettingID is set for setting-changed events.
	SettingID *uint8 `cbor:"2,keyasint,omitempty"`

	// Value is the resolved setting value.
	Value any `cbor:"3,keyasint,omitempty"`

	// Lifetime is set for registration lifecycle events.
	Lifetime *int32 `cbor:"4,keyasint,omitempty"`

	// InternalError and ErrorCode are set for failure events.
	InternalError bool  `cbor:"5,keyasint,omitempty"`
	ErrorCode     uint8 `cbor:"6,keyasint,omitempty"`

	// Suppressed is true when the event was built but not delivered.
	Suppressed bool `cbor:"7,keyasint,omitempty"`
}

// StateChangeEvent captures a server registration state transition.
type StateChangeEvent struct {
	// OldState is the previous state.
	OldState string `cbor:"1,keyasint"`

	// NewState is the new state.
	NewState string `cbor:"2,keyasint"`

	// RefreshAt is the next lifetime refresh time in seconds, if any.
	RefreshAt int64 `cbor:"3,keyasint,omitempty"`
}

// ScheduleEvent captures a wake delay computation.
type ScheduleEvent struct {
	// Delay is the computed delay in seconds.
	Delay uint32 `cbor:"1,keyasint"`

	// Now is the client time the delay was computed at.
	Now int64 `cbor:"2,keyasint"`

	// Servers is the number of servers considered.
	Servers int `cbor:"3,keyasint"`
}

// ErrorEventData captures a failed operation.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}
