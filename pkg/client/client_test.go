package client_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/lwm2m-go/pkg/client"
	"github.com/mash-protocol/lwm2m-go/pkg/client/mocks"
	"github.com/mash-protocol/lwm2m-go/pkg/metrics"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

func TestConfigure(t *testing.T) {
	c := client.New(client.DefaultConfig())
	t.Cleanup(func() { _ = c.Close() })

	info := &model.DeviceInfo{Manufacturer: "Acme", ModelNumber: "X1"}
	require.NoError(t, c.Configure("urn:dev:1", info, nil))

	assert.Equal(t, "urn:dev:1", c.Identity())
	got := c.Device()
	require.NotNil(t, got)
	assert.Equal(t, "Acme", got.Manufacturer)

	// the stored info is a copy
	info.Manufacturer = "changed"
	got.ModelNumber = "changed"
	assert.Equal(t, "Acme", c.Device().Manufacturer)
	assert.Equal(t, "X1", c.Device().ModelNumber)

	// a second Configure is refused and keeps the current state
	err := c.Configure("urn:dev:2", nil, nil)
	assert.True(t, errors.Is(err, wire.StatusPreconditionFailed))
	assert.Equal(t, "urn:dev:1", c.Identity())
}

func TestConfigureRejects(t *testing.T) {
	c := client.New(client.DefaultConfig())

	assert.True(t, errors.Is(c.Configure("", nil, nil), wire.StatusBadRequest))
	assert.True(t, errors.Is(c.Configure("dev", &model.DeviceInfo{MSISDN: "+49123"}, nil), wire.StatusBadRequest))
	assert.Empty(t, c.Identity())
}

func TestConfigureSkipArgumentChecks(t *testing.T) {
	cfg := client.DefaultConfig()
	cfg.Features.SkipArgumentChecks = true
	c := client.New(cfg)
	t.Cleanup(func() { _ = c.Close() })

	require.NoError(t, c.Configure("", nil, nil))
}

func TestConfigureInitFailureClosesLayer(t *testing.T) {
	layer := mocks.NewMockObjectLayer(t)
	layer.EXPECT().Init(mock.Anything).Return(wire.Errorf(wire.StatusInternalServerError, "no memory")).Once()
	layer.EXPECT().Close().Return().Once()

	c := client.New(client.DefaultConfig(), client.WithObjectLayer(layer))
	err := c.Configure("dev", nil, nil)
	assert.Equal(t, wire.StatusInternalServerError, wire.StatusOf(err))
}

func TestCloseRemovesServers(t *testing.T) {
	coll := metrics.NewCollector()
	cfg := client.DefaultConfig()
	cfg.Metrics = coll
	c := client.New(cfg)
	require.NoError(t, c.Configure("dev", nil, nil))
	require.NoError(t, c.AddServer(1, "coap://a", 0, 0, client.SecurityNone))
	require.NoError(t, c.AddServer(2, "coap://b", 0, 0, client.SecurityNone))

	require.NoError(t, c.Close())
	assert.Empty(t, c.Servers())

	families, err := coll.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "lwm2m_client_servers" {
			assert.Zero(t, mf.GetMetric()[0].GetGauge().GetValue())
		}
	}

	// a closed client can be configured again
	require.NoError(t, c.Configure("dev", nil, nil))
	require.NoError(t, c.Close())
}

func TestClientID(t *testing.T) {
	a := client.New(client.DefaultConfig())
	b := client.New(client.DefaultConfig())
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestFeatures(t *testing.T) {
	f := client.DefaultFeatures()
	assert.True(t, f.SupportsSecurityMode(client.SecurityNone))
	assert.True(t, f.SupportsSecurityMode(client.SecurityRawPublicKey))
	assert.False(t, f.SupportsSecurityMode(client.SecurityMode(9)))

	f.Certificate = false
	assert.False(t, f.SupportsSecurityMode(client.SecurityCertificate))
	assert.True(t, client.Features{}.SupportsSecurityMode(client.SecurityNone))
}

func TestWakeSignalCoalesces(t *testing.T) {
	w := client.NewWakeSignal()
	w.Wake()
	w.Wake()
	w.Wake()

	select {
	case <-w.C():
	default:
		t.Fatal("expected a pending wake")
	}
	select {
	case <-w.C():
		t.Fatal("wakes must coalesce")
	default:
	}
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "UQ", (client.BindingUDP | client.BindingQueue).String())
	assert.Equal(t, "T", client.BindingTCP.String())
	assert.Equal(t, "REGISTERED", client.StateRegistered.String())
	assert.Equal(t, "ACK_TIMEOUT", client.PeerAckTimeout.String())

	for _, m := range []client.SecurityMode{client.SecurityNone, client.SecurityPreSharedKey, client.SecurityCertificate, client.SecurityRawPublicKey} {
		got, ok := client.ParseSecurityMode(m.String())
		require.True(t, ok)
		assert.Equal(t, m, got)
	}
	_, ok := client.ParseSecurityMode("bogus")
	assert.False(t, ok)
}
