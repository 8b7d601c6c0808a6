package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/lwm2m-go/pkg/client"
	"github.com/mash-protocol/lwm2m-go/pkg/client/mocks"
	"github.com/mash-protocol/lwm2m-go/pkg/log"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
)

func TestNotificationLockQueuesMarks(t *testing.T) {
	engine := mocks.NewMockNotificationEngine(t)
	c := newTestClient(t, client.WithNotificationEngine(engine))
	require.NoError(t, c.AddCustomObject(5000, nil, []model.ResourceDescriptor{stringResource(1), stringResource(2)},
		model.Handlers{Data: noopData()}))

	c.LockNotifications(true)
	assert.True(t, c.NotificationsLocked())

	require.NoError(t, c.NotifyResourceChanged(5000, 0, 2))
	require.NoError(t, c.NotifyResourceChanged(5000, 0, 1))
	require.NoError(t, c.NotifyResourceChanged(5000, 0, 2))

	var flushed []model.Path
	engine.EXPECT().ResourceChanged(model.ResourcePath(5000, 0, 2)).
		Run(func(p model.Path) { flushed = append(flushed, p) }).Return().Once()
	engine.EXPECT().ResourceChanged(model.ResourcePath(5000, 0, 1)).
		Run(func(p model.Path) { flushed = append(flushed, p) }).Return().Once()

	c.LockNotifications(false)
	assert.False(t, c.NotificationsLocked())
	assert.Equal(t, []model.Path{model.ResourcePath(5000, 0, 2), model.ResourcePath(5000, 0, 1)}, flushed)

	// the queue is empty now
	c.LockNotifications(true)
	c.LockNotifications(false)
}

func TestNotificationLockDropsRemovedObject(t *testing.T) {
	engine := mocks.NewMockNotificationEngine(t)
	c := newTestClient(t, client.WithNotificationEngine(engine))
	require.NoError(t, c.AddCustomObject(5000, nil, []model.ResourceDescriptor{stringResource(1)},
		model.Handlers{Data: noopData()}))

	c.LockNotifications(true)
	require.NoError(t, c.NotifyResourceChanged(5000, 0, 1))
	require.NoError(t, c.RemoveCustomObject(5000))
	c.LockNotifications(false)
}

func TestNotificationUnlockWakes(t *testing.T) {
	c := newTestClient(t)

	c.LockNotifications(true)
	select {
	case <-c.WakeChannel():
		t.Fatal("lock must not wake")
	default:
	}

	c.LockNotifications(false)
	select {
	case <-c.WakeChannel():
	default:
		t.Fatal("unlock must wake")
	}
}

func TestNotificationLockTrace(t *testing.T) {
	mem := log.NewMemoryLogger(0)
	cfg := client.DefaultConfig()
	cfg.ProtocolLogger = mem
	c := newTestClientWith(t, cfg, nil)
	mem.Reset()

	c.LockNotifications(true)
	c.LockNotifications(false)

	assert.Equal(t, []string{"Lock", "Unlock"}, traceOps(mem))
	for _, ev := range mem.Events() {
		assert.Equal(t, log.CategoryGuard, ev.Category)
	}
}
