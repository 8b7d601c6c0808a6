package client

import (
	"math"
	"slices"

	"github.com/mash-protocol/lwm2m-go/pkg/model"
)

// Protocol defaults.
const (
	// DefaultLifetime is used when a server is added with lifetime 0.
	DefaultLifetime int32 = 86400

	// MaxLifetime is the largest lifetime a server can have.
	MaxLifetime int32 = math.MaxInt32

	// DefaultDisableTimeout is the Server object default, in seconds.
	DefaultDisableTimeout int32 = 86400

	// DefaultNotificationStoring is the Server object default.
	DefaultNotificationStoring = true
)

// Sentinels for unset server settings.
const (
	// SettingUnset marks a CoAP tuning value that has no override.
	SettingUnset uint8 = math.MaxUint8

	// PmaxUnset marks a default max period that is not set.
	PmaxUnset uint32 = math.MaxUint32
)

// SecurityMode is the credential scheme of a server connection.
type SecurityMode uint8

const (
	SecurityNone SecurityMode = iota
	SecurityPreSharedKey
	SecurityCertificate
	SecurityRawPublicKey
)

// String returns the mode name.
func (m SecurityMode) String() string {
	switch m {
	case SecurityNone:
		return "NONE"
	case SecurityPreSharedKey:
		return "PSK"
	case SecurityCertificate:
		return "CERTIFICATE"
	case SecurityRawPublicKey:
		return "RPK"
	default:
		return "UNKNOWN"
	}
}

// ParseSecurityMode returns the mode for a name produced by String.
func ParseSecurityMode(name string) (SecurityMode, bool) {
	for m := SecurityNone; m <= SecurityRawPublicKey; m++ {
		if m.String() == name {
			return m, true
		}
	}
	return 0, false
}

// Binding is the transport bitmask of a server, optionally with BindingQueue.
type Binding uint8

const (
	BindingUDP   Binding = 0x01
	BindingTCP   Binding = 0x02
	BindingSMS   Binding = 0x04
	BindingNonIP Binding = 0x08

	// BindingQueue marks queue mode.
	BindingQueue Binding = 0x80
)

// String returns the binding letters, e.g. "UQ".
func (b Binding) String() string {
	var s string
	if b&BindingUDP != 0 {
		s += "U"
	}
	if b&BindingTCP != 0 {
		s += "T"
	}
	if b&BindingSMS != 0 {
		s += "S"
	}
	if b&BindingNonIP != 0 {
		s += "N"
	}
	if b&BindingQueue != 0 {
		s += "Q"
	}
	return s
}

// ServerFlag holds the options passed to AddServer.
type ServerFlag uint16

const (
	// FlagQueueMode adds BindingQueue to the server binding.
	FlagQueueMode ServerFlag = 1 << iota
)

// RegistrationState is the lifecycle state of a server.
type RegistrationState uint8

const (
	StateUnregistered RegistrationState = iota
	StateRegistering
	StateRegistered
	StateUpdating
	StateFailed
	StateDeregistering
)

// String returns the state name.
func (s RegistrationState) String() string {
	switch s {
	case StateUnregistered:
		return "UNREGISTERED"
	case StateRegistering:
		return "REGISTERING"
	case StateRegistered:
		return "REGISTERED"
	case StateUpdating:
		return "UPDATING"
	case StateFailed:
		return "FAILED"
	case StateDeregistering:
		return "DEREGISTERING"
	default:
		return "UNKNOWN"
	}
}

// Observation is a server subscription to a path.
type Observation struct {
	Path model.Path

	// MinPeriod and MaxPeriod are only meaningful when the matching Has flag is set.
	MinPeriod    uint32
	MaxPeriod    uint32
	HasMinPeriod bool
	HasMaxPeriod bool

	// LastNotify is the time of the last delivered notification.
	LastNotify int64
}

// Timer is the lifetime refresh deadline of a server.
type Timer struct {
	ExecutionTime int64
	Armed         bool
}

// Server is one configured management server. Servers belong to a Client and
// are only touched with its lock held; use ServerInfo outside of it.
type Server struct {
	ShortID      uint16
	URI          string
	Lifetime     int32
	SecurityMode SecurityMode
	Binding      Binding

	CoAPAckTimeout    uint8
	CoAPMaxRetransmit uint8

	NotificationStoring bool
	DisableTimeout      int32
	DefaultMinPeriod    uint32
	DefaultMaxPeriod    uint32

	SecurityInstanceID uint16
	ServerInstanceID   uint16

	State        RegistrationState
	Peer         TransportPeer
	Observations []Observation
	Refresh      Timer
}

func newServer(shortID uint16, uri string, lifetime int32, mode SecurityMode, binding Binding) *Server {
	return &Server{
		ShortID:             shortID,
		URI:                 uri,
		Lifetime:            lifetime,
		SecurityMode:        mode,
		Binding:             binding,
		CoAPAckTimeout:      SettingUnset,
		CoAPMaxRetransmit:   SettingUnset,
		NotificationStoring: DefaultNotificationStoring,
		DisableTimeout:      DefaultDisableTimeout,
		DefaultMaxPeriod:    PmaxUnset,
		State:               StateUnregistered,
	}
}

func (s *Server) observation(path model.Path) int {
	return slices.IndexFunc(s.Observations, func(o Observation) bool { return o.Path == path })
}

// release drops the runtime resources of the server.
func (s *Server) release() error {
	var err error
	if s.Peer != nil {
		err = s.Peer.Close()
		s.Peer = nil
	}
	s.Observations = nil
	s.Refresh = Timer{}
	return err
}

// ServerInfo is a copy of a Server's state.
type ServerInfo struct {
	ShortID             uint16
	URI                 string
	Lifetime            int32
	SecurityMode        SecurityMode
	Binding             Binding
	QueueMode           bool
	NotificationStoring bool
	DisableTimeout      int32
	DefaultMinPeriod    uint32
	DefaultMaxPeriod    uint32
	SecurityInstanceID  uint16
	ServerInstanceID    uint16
	State               RegistrationState
	Connected           bool
	Observations        []Observation
	RefreshAt           int64
}

func (s *Server) info() ServerInfo {
	info := ServerInfo{
		ShortID:             s.ShortID,
		URI:                 s.URI,
		Lifetime:            s.Lifetime,
		SecurityMode:        s.SecurityMode,
		Binding:             s.Binding &^ BindingQueue,
		QueueMode:           s.Binding&BindingQueue != 0,
		NotificationStoring: s.NotificationStoring,
		DisableTimeout:      s.DisableTimeout,
		DefaultMinPeriod:    s.DefaultMinPeriod,
		DefaultMaxPeriod:    s.DefaultMaxPeriod,
		SecurityInstanceID:  s.SecurityInstanceID,
		ServerInstanceID:    s.ServerInstanceID,
		State:               s.State,
		Connected:           s.Peer != nil,
		Observations:        slices.Clone(s.Observations),
	}
	if s.Refresh.Armed {
		info.RefreshAt = s.Refresh.ExecutionTime
	}
	return info
}

// normalizeLifetime maps 0 to DefaultLifetime and clamps to MaxLifetime.
func normalizeLifetime(lifetime uint32) int32 {
	switch {
	case lifetime == 0:
		return DefaultLifetime
	case lifetime > uint32(MaxLifetime):
		return MaxLifetime
	default:
		return int32(lifetime)
	}
}
