package client_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/lwm2m-go/pkg/client"
	"github.com/mash-protocol/lwm2m-go/pkg/persistence"
	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

func TestSnapshotRestore(t *testing.T) {
	src := newTestClient(t)
	require.NoError(t, src.AddServer(1, "coap://a", 300, client.FlagQueueMode, client.SecurityNone))
	require.NoError(t, src.AddServer(2, "coaps+tcp://b", 0, 0, client.SecurityPreSharedKey))
	require.NoError(t, src.UpdateServerSetting(2, client.SettingNotificationStoring, false))
	require.NoError(t, src.UpdateServerSetting(2, client.SettingDisableTimeout, int32(10)))
	require.NoError(t, src.SetDefaultNotificationPeriods(1, 5, 50))

	snap := src.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, uint16(1), snap[0].ShortID)
	assert.True(t, snap[0].QueueMode)
	require.NotNil(t, snap[0].DefaultMaxPeriod)
	assert.Equal(t, uint32(50), *snap[0].DefaultMaxPeriod)
	assert.Nil(t, snap[1].DefaultMaxPeriod)

	// round trip through the state file
	store := persistence.NewStateStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, store.Save(&persistence.ClientState{Identity: "dev", Servers: snap}))
	loaded, err := store.Load()
	require.NoError(t, err)

	dst := newTestClient(t)
	require.NoError(t, dst.Restore(loaded.Servers))

	got := dst.Servers()
	require.Len(t, got, 2)
	assert.Equal(t, "coap://a", got[0].URI)
	assert.Equal(t, int32(300), got[0].Lifetime)
	assert.True(t, got[0].QueueMode)
	assert.Equal(t, uint32(5), got[0].DefaultMinPeriod)
	assert.Equal(t, uint32(50), got[0].DefaultMaxPeriod)

	assert.Equal(t, client.SecurityPreSharedKey, got[1].SecurityMode)
	assert.Equal(t, client.BindingTCP, got[1].Binding)
	assert.False(t, got[1].NotificationStoring)
	assert.Equal(t, int32(10), got[1].DisableTimeout)
	assert.Equal(t, client.PmaxUnset, got[1].DefaultMaxPeriod)
}

func TestRestoreContinuesPastFailures(t *testing.T) {
	c := newTestClient(t)

	err := c.Restore([]persistence.ServerConfig{
		{ShortID: 0, URI: "coap://bad"},
		{ShortID: 3, URI: "coap://ok"},
		{ShortID: 4, URI: "coaps://mismatch"},
	})
	assert.True(t, errors.Is(err, wire.StatusForbidden))

	servers := c.Servers()
	require.Len(t, servers, 1)
	assert.Equal(t, uint16(3), servers[0].ShortID)
}
