package client

import (
	"github.com/mash-protocol/lwm2m-go/pkg/coapuri"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
)

// ObjectLayer manages the backing object instances of the client. It is
// satisfied by *model.Store. All methods are called with the client lock held.
type ObjectLayer interface {
	Init(info *model.DeviceInfo) error
	Close()
	CreateSecurityInstance(instanceID, shortID uint16, uri string) error
	RemoveSecurityInstance(instanceID uint16) error
	CreateServerInstance(instanceID, shortID uint16, lifetime int32) error
	RemoveServerInstance(instanceID uint16) error
	AddInstance(objectID, instanceID uint16) error
	RemoveInstance(objectID, instanceID uint16) error
}

// Compile-time check: *model.Store implements ObjectLayer.
var _ ObjectLayer = (*model.Store)(nil)

// URIParser turns a server URI into its connection properties.
type URIParser interface {
	ParseURI(uri string) (coapuri.Info, error)
}

var _ URIParser = coapuri.Parser(nil)

// RegistrationUpdater sends a registration update to a server. It is called
// with the client lock held and must not call back into the Client.
type RegistrationUpdater interface {
	UpdateRegistration(server ServerInfo) error
}

// NotificationEngine receives change marks for observed data. It is called
// with the client lock held and must not call back into the Client.
type NotificationEngine interface {
	ResourceChanged(path model.Path)
	InstanceChanged(objectID, instanceID uint16, op model.InstanceOperation)
}

// PeerSetting identifies a transport tuning value of a peer.
type PeerSetting uint8

const (
	PeerAckTimeout PeerSetting = iota
	PeerMaxRetransmit
)

// String returns the setting name.
func (p PeerSetting) String() string {
	switch p {
	case PeerAckTimeout:
		return "ACK_TIMEOUT"
	case PeerMaxRetransmit:
		return "MAX_RETRANSMIT"
	default:
		return "UNKNOWN"
	}
}

// TransportPeer is the live connection to a server.
type TransportPeer interface {
	Setting(id PeerSetting) (uint8, error)
	SetSetting(id PeerSetting, value uint8) error
	Close() error
}

// Clock returns the current time in seconds.
type Clock interface {
	Now() int64
}

type noopUpdater struct{}

func (noopUpdater) UpdateRegistration(ServerInfo) error { return nil }

type noopEngine struct{}

func (noopEngine) ResourceChanged(model.Path)                              {}
func (noopEngine) InstanceChanged(uint16, uint16, model.InstanceOperation) {}
