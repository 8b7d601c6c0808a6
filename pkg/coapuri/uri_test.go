package coapuri

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

func TestParse(t *testing.T) {
	tests := []struct {
		uri  string
		want Info
	}{
		{"coap://leshan.example.org", Info{KindDatagram, false, "leshan.example.org", 5683}},
		{"coaps://leshan.example.org", Info{KindDatagram, true, "leshan.example.org", 5684}},
		{"coap://192.0.2.1:6000", Info{KindDatagram, false, "192.0.2.1", 6000}},
		{"coap+tcp://host", Info{KindStream, false, "host", 5683}},
		{"coaps+tcp://host", Info{KindStream, true, "host", 5684}},
		{"coap+ws://host/path", Info{KindWebSocket, false, "host", 80}},
		{"coaps+ws://host", Info{KindWebSocket, true, "host", 443}},
		{"COAPS://[2001:db8::1]:5690", Info{KindDatagram, true, "2001:db8::1", 5690}},
	}

	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			got, err := Parse(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejects(t *testing.T) {
	for _, uri := range []string{
		"",
		"http://host",
		"coap://",
		"coap://host:0",
		"coap://host:99999",
		"::not a uri",
	} {
		_, err := Parse(uri)
		assert.True(t, errors.Is(err, wire.StatusBadRequest), "uri %q: %v", uri, err)
	}
}

func TestInfoAddress(t *testing.T) {
	info, err := Default.ParseURI("coaps://[2001:db8::1]")
	require.NoError(t, err)
	assert.Equal(t, "[2001:db8::1]:5684", info.Address())
}

func TestConnectionKindString(t *testing.T) {
	assert.Equal(t, "datagram", KindDatagram.String())
	assert.Equal(t, "stream", KindStream.String())
	assert.Equal(t, "websocket", KindWebSocket.String())
	assert.Equal(t, "unknown", ConnectionKind(9).String())
}
