package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/lwm2m-go/pkg/client"
	"github.com/mash-protocol/lwm2m-go/pkg/log"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
)

func registered(refreshAt int64, obs ...client.Observation) *client.Server {
	s := &client.Server{State: client.StateRegistered, Observations: obs}
	if refreshAt > 0 {
		s.Refresh = client.Timer{ExecutionTime: refreshAt, Armed: true}
	}
	return s
}

func maxPeriod(lastNotify int64, pmax uint32) client.Observation {
	return client.Observation{Path: model.ObjectPath(3), MaxPeriod: pmax, HasMaxPeriod: true, LastNotify: lastNotify}
}

func TestNextWakeDelay(t *testing.T) {
	now := int64(1000)

	tests := []struct {
		name    string
		servers []*client.Server
		want    uint32
	}{
		{name: "no servers", want: client.NoDeadline},
		{name: "nothing armed", servers: []*client.Server{registered(0)}, want: client.NoDeadline},
		{name: "refresh pending", servers: []*client.Server{registered(1060)}, want: 60},
		{name: "refresh due", servers: []*client.Server{registered(1000)}, want: 0},
		{name: "refresh overdue", servers: []*client.Server{registered(900)}, want: 0},
		{
			name:    "due server wins over far one",
			servers: []*client.Server{registered(5000), registered(999)},
			want:    0,
		},
		{
			name:    "earliest refresh",
			servers: []*client.Server{registered(1300), registered(1100), registered(1200)},
			want:    100,
		},
		{
			name:    "observation max period",
			servers: []*client.Server{registered(2000, maxPeriod(990, 30))},
			want:    20,
		},
		{
			name:    "observation overdue",
			servers: []*client.Server{registered(2000, maxPeriod(900, 30))},
			want:    0,
		},
		{
			name: "observation without max period",
			servers: []*client.Server{registered(0, client.Observation{
				Path: model.ObjectPath(3), MaxPeriod: 1, LastNotify: 0,
			})},
			want: client.NoDeadline,
		},
		{
			name: "unregistered server ignored",
			servers: []*client.Server{
				{State: client.StateUpdating, Refresh: client.Timer{ExecutionTime: 900, Armed: true}},
				registered(1500),
			},
			want: 500,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, client.NextWakeDelay(tt.servers, now))
		})
	}
}

func TestNextWakeDelayDoesNotModifyServers(t *testing.T) {
	s := registered(1500, maxPeriod(1000, 60))
	before := *s
	before.Observations = append([]client.Observation(nil), s.Observations...)

	client.NextWakeDelay([]*client.Server{s}, 1200)

	assert.Equal(t, before, *s)
}

func TestClientNextWakeDelay(t *testing.T) {
	clock := &fakeClock{now: 100}
	mem := log.NewMemoryLogger(0)
	cfg := client.DefaultConfig()
	cfg.Clock = clock
	cfg.ProtocolLogger = mem
	c := newTestClientWith(t, cfg, nil)

	assert.Equal(t, client.NoDeadline, c.NextWakeDelay())

	require.NoError(t, c.AddServer(1, "coap://a", 0, 0, client.SecurityNone))
	require.NoError(t, c.SetServerState(1, client.StateRegistered, 400))
	assert.Equal(t, uint32(300), c.NextWakeDelay())

	clock.now = 350
	assert.Equal(t, uint32(50), c.NextWakeDelay())

	clock.now = 401
	assert.Equal(t, uint32(0), c.NextWakeDelay())

	var last *log.ScheduleEvent
	for _, ev := range mem.Events() {
		if ev.Schedule != nil {
			last = ev.Schedule
		}
	}
	require.NotNil(t, last)
	assert.Equal(t, uint32(0), last.Delay)
	assert.Equal(t, int64(401), last.Now)
	assert.Equal(t, 1, last.Servers)
}

func TestClientTimeWithoutClock(t *testing.T) {
	c := newTestClient(t)
	assert.Zero(t, c.Now())

	c.SetTime(42)
	assert.Equal(t, int64(42), c.Now())
}
