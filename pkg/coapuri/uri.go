// Package coapuri parses LwM2M server URIs into their connection properties.
package coapuri

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

// ConnectionKind is the transport family selected by a URI scheme.
type ConnectionKind uint8

const (
	KindDatagram ConnectionKind = iota
	KindStream
	KindWebSocket
)

// String returns the kind name.
func (k ConnectionKind) String() string {
	switch k {
	case KindDatagram:
		return "datagram"
	case KindStream:
		return "stream"
	case KindWebSocket:
		return "websocket"
	default:
		return "unknown"
	}
}

// Default ports.
const (
	DefaultPort       = 5683
	DefaultSecurePort = 5684
	DefaultWSPort     = 80
	DefaultWSSPort    = 443
)

// Info is the result of parsing a server URI.
type Info struct {
	Kind   ConnectionKind
	Secure bool
	Host   string
	Port   int
}

type scheme struct {
	kind   ConnectionKind
	secure bool
}

var schemes = map[string]scheme{
	"coap":      {KindDatagram, false},
	"coaps":     {KindDatagram, true},
	"coap+tcp":  {KindStream, false},
	"coaps+tcp": {KindStream, true},
	"coap+ws":   {KindWebSocket, false},
	"coaps+ws":  {KindWebSocket, true},
}

// Parse extracts the connection kind, security and address of a URI.
// Failures are reported as wire.StatusBadRequest.
func Parse(uri string) (Info, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return Info{}, wire.Errorf(wire.StatusBadRequest, "invalid uri %q: %v", uri, err)
	}

	sch, ok := schemes[strings.ToLower(u.Scheme)]
	if !ok {
		return Info{}, wire.Errorf(wire.StatusBadRequest, "unsupported scheme %q", u.Scheme)
	}

	host := u.Hostname()
	if host == "" {
		return Info{}, wire.Errorf(wire.StatusBadRequest, "uri %q has no host", uri)
	}

	info := Info{Kind: sch.kind, Secure: sch.secure, Host: host, Port: defaultPort(sch)}
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port <= 0 || port > 65535 {
			return Info{}, wire.Errorf(wire.StatusBadRequest, "invalid port %q", p)
		}
		info.Port = port
	}
	return info, nil
}

// Address returns host:port.
func (i Info) Address() string {
	return net.JoinHostPort(i.Host, strconv.Itoa(i.Port))
}

func defaultPort(s scheme) int {
	switch {
	case s.kind == KindWebSocket && s.secure:
		return DefaultWSSPort
	case s.kind == KindWebSocket:
		return DefaultWSPort
	case s.secure:
		return DefaultSecurePort
	default:
		return DefaultPort
	}
}

// Parser adapts a parse function to the client's URI parser interface.
type Parser func(uri string) (Info, error)

// ParseURI calls p.
func (p Parser) ParseURI(uri string) (Info, error) {
	return p(uri)
}

// Default is the Parser backed by Parse.
var Default = Parser(Parse)
