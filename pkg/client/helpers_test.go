package client_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mash-protocol/lwm2m-go/pkg/client"
	"github.com/mash-protocol/lwm2m-go/pkg/client/mocks"
	"github.com/mash-protocol/lwm2m-go/pkg/log"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
)

// fakeClock is a settable Clock.
type fakeClock struct{ now int64 }

func (f *fakeClock) Now() int64 { return f.now }

// newTestClient creates a configured client with all features enabled.
func newTestClient(t *testing.T, opts ...client.Option) *client.Client {
	t.Helper()
	return newTestClientWith(t, client.DefaultConfig(), nil, opts...)
}

func newTestClientWith(t *testing.T, cfg client.Config, handler client.EventHandler, opts ...client.Option) *client.Client {
	t.Helper()
	c := client.New(cfg, opts...)
	require.NoError(t, c.Configure("urn:dev:test", nil, handler))
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// recorder collects dispatched events.
type recorder struct {
	events []client.Event
}

func (r *recorder) handle(ev client.Event, _ *client.Client) {
	r.events = append(r.events, ev)
}

func (r *recorder) types() []client.EventType {
	out := make([]client.EventType, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}

func noopData() model.DataHandler {
	return model.DataHandlerFunc(func(model.DataOperation, uint16, []model.Value) ([]model.Value, error) {
		return nil, nil
	})
}

func stringResource(id uint16) model.ResourceDescriptor {
	return model.ResourceDescriptor{ID: id, Type: model.TypeString, Operations: model.OpReadWrite}
}

func traceOps(l *log.MemoryLogger) []string {
	var ops []string
	for _, ev := range l.Events() {
		ops = append(ops, ev.Operation)
	}
	return ops
}

// newClosingPeer returns a peer that expects to be closed exactly once.
func newClosingPeer(t *testing.T) *mocks.MockTransportPeer {
	peer := mocks.NewMockTransportPeer(t)
	peer.EXPECT().Close().Return(nil).Once()
	return peer
}
