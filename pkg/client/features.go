package client

import "github.com/mash-protocol/lwm2m-go/pkg/coapuri"

// Features lists the optional capabilities enabled for a Client. They are
// fixed when the Client is created.
type Features struct {
	// Security modes besides SecurityNone.
	PreSharedKey bool `yaml:"psk"`
	Certificate  bool `yaml:"certificate"`
	RawPublicKey bool `yaml:"rpk"`

	// Connection kinds.
	UDP       bool `yaml:"udp"`
	TCP       bool `yaml:"tcp"`
	WebSocket bool `yaml:"websocket"`

	// DefaultPeriods enables the per-server default min/max periods.
	DefaultPeriods bool `yaml:"defaultPeriods"`

	// SkipArgumentChecks disables validation of custom object schemas and of
	// the client identity. Reserved short ids are rejected regardless.
	SkipArgumentChecks bool `yaml:"skipArgumentChecks"`
}

// DefaultFeatures enables everything except SkipArgumentChecks.
func DefaultFeatures() Features {
	return Features{
		PreSharedKey:   true,
		Certificate:    true,
		RawPublicKey:   true,
		UDP:            true,
		TCP:            true,
		WebSocket:      true,
		DefaultPeriods: true,
	}
}

// SupportsSecurityMode returns true if mode is usable with these features.
func (f Features) SupportsSecurityMode(mode SecurityMode) bool {
	switch mode {
	case SecurityNone:
		return true
	case SecurityPreSharedKey:
		return f.PreSharedKey
	case SecurityCertificate:
		return f.Certificate
	case SecurityRawPublicKey:
		return f.RawPublicKey
	default:
		return false
	}
}

// SupportsConnectionKind returns true if kind is usable with these features.
func (f Features) SupportsConnectionKind(kind coapuri.ConnectionKind) bool {
	switch kind {
	case coapuri.KindDatagram:
		return f.UDP
	case coapuri.KindStream:
		return f.TCP
	case coapuri.KindWebSocket:
		return f.WebSocket
	default:
		return false
	}
}
