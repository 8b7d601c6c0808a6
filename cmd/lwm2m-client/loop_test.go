package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mash-protocol/lwm2m-go/pkg/client"
	"github.com/mash-protocol/lwm2m-go/pkg/log"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newRunnerClient(t *testing.T) *client.Client {
	t.Helper()
	logger := discardLogger()
	c := client.New(client.DefaultConfig(), client.WithRegistrationUpdater(logUpdater{logger: logger}))
	if err := c.Configure("dev", nil, nil); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestRunnerRegistersAndRefreshes(t *testing.T) {
	c := newRunnerClient(t)
	c.SetTime(1000)
	if err := c.AddServer(1, "coap://a", 60, 0, client.SecurityNone); err != nil {
		t.Fatal(err)
	}

	r := &runner{c: c, logger: discardLogger(), simulate: true}
	r.service()

	s, _ := c.Server(1)
	if s.State != client.StateRegistered || s.RefreshAt != 1060 {
		t.Fatalf("after register: state %s refresh %d", s.State, s.RefreshAt)
	}
	if got := c.NextWakeDelay(); got != 60 {
		t.Errorf("NextWakeDelay() = %d, want 60", got)
	}

	c.SetTime(1060)
	r.service()
	s, _ = c.Server(1)
	if s.RefreshAt != 1120 {
		t.Errorf("after refresh: refresh %d, want 1120", s.RefreshAt)
	}
}

func TestRunnerMarksMaxPeriodNotifications(t *testing.T) {
	c := newRunnerClient(t)
	c.SetTime(100)
	if err := c.AddServer(1, "coap://a", 3600, 0, client.SecurityNone); err != nil {
		t.Fatal(err)
	}
	r := &runner{c: c, logger: discardLogger(), simulate: true}
	r.service()

	path := model.InstancePath(3303, 0)
	if err := c.AddObservation(1, client.Observation{Path: path, MaxPeriod: 10, HasMaxPeriod: true, LastNotify: 100}); err != nil {
		t.Fatal(err)
	}
	if got := c.NextWakeDelay(); got != 10 {
		t.Fatalf("NextWakeDelay() = %d, want 10", got)
	}

	c.SetTime(110)
	r.service()
	s, _ := c.Server(1)
	if s.Observations[0].LastNotify != 110 {
		t.Errorf("LastNotify = %d, want 110", s.Observations[0].LastNotify)
	}
}

func TestRunnerPacesZeroMaxPeriod(t *testing.T) {
	trace := log.NewMemoryLogger(1000)
	cfg := client.DefaultConfig()
	cfg.ProtocolLogger = trace
	c := client.New(cfg, client.WithRegistrationUpdater(logUpdater{logger: discardLogger()}))
	if err := c.Configure("dev", nil, nil); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = c.Close() })

	c.SetTime(100)
	if err := c.AddServer(1, "coap://a", 3600, 0, client.SecurityNone); err != nil {
		t.Fatal(err)
	}
	path := model.InstancePath(3303, 0)
	if err := c.AddObservation(1, client.Observation{Path: path, HasMaxPeriod: true}); err != nil {
		t.Fatal(err)
	}

	r := &runner{c: c, logger: discardLogger(), simulate: true}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()
	time.Sleep(200 * time.Millisecond)
	cancel()
	<-done

	computed := 0
	for _, ev := range trace.Events() {
		if ev.Operation == "NextWakeDelay" {
			computed++
		}
	}
	if computed == 0 || computed > 3 {
		t.Errorf("wake delay computed %d times in 200ms, want 1 to 3", computed)
	}
}

func TestRunnerStopsOnCancel(t *testing.T) {
	c := newRunnerClient(t)
	r := &runner{c: c, logger: discardLogger()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runner did not stop")
	}
}
