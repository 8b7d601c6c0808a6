package client

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mash-protocol/lwm2m-go/pkg/coapuri"
	"github.com/mash-protocol/lwm2m-go/pkg/log"
	"github.com/mash-protocol/lwm2m-go/pkg/metrics"
	"github.com/mash-protocol/lwm2m-go/pkg/model"
	"github.com/mash-protocol/lwm2m-go/pkg/wire"
)

// Config configures a Client.
type Config struct {
	// Features selects the optional capabilities.
	Features Features

	// Clock supplies the current time. If nil, time only advances through SetTime.
	Clock Clock

	// Logger is the operational logger.
	// If nil, logging is disabled.
	Logger *slog.Logger

	// ProtocolLogger receives trace events.
	// If nil, tracing is disabled.
	ProtocolLogger log.Logger

	// Metrics receives counters and gauges.
	// If nil, metrics are disabled.
	Metrics metrics.Recorder
}

// DefaultConfig returns a Config with every feature enabled.
func DefaultConfig() Config {
	return Config{Features: DefaultFeatures()}
}

// Option customizes the collaborators of a Client.
type Option func(*Client)

// WithObjectLayer replaces the in-memory object store.
func WithObjectLayer(l ObjectLayer) Option {
	return func(c *Client) { c.objects = l }
}

// WithURIParser replaces the coapuri parser.
func WithURIParser(p URIParser) Option {
	return func(c *Client) { c.parser = p }
}

// WithRegistrationUpdater sets the target of SendHeartbeat.
func WithRegistrationUpdater(u RegistrationUpdater) Option {
	return func(c *Client) { c.updater = u }
}

// WithNotificationEngine sets the receiver of change marks.
func WithNotificationEngine(e NotificationEngine) Option {
	return func(c *Client) { c.engine = e }
}

// WithWaker replaces the built-in WakeSignal.
func WithWaker(w Waker) Option {
	return func(c *Client) { c.waker = w }
}

// Client is the shared state of an LwM2M client.
type Client struct {
	mu sync.Mutex

	id       string
	features Features
	clock    Clock
	logger   *slog.Logger
	trace    log.Logger
	metrics  metrics.Recorder

	objects ObjectLayer
	parser  URIParser
	updater RegistrationUpdater
	engine  NotificationEngine
	waker   Waker
	signal  *WakeSignal

	identity   string
	device     *model.DeviceInfo
	handler    EventHandler
	configured bool

	servers []*Server
	table   *model.ObjectTable
	now     int64

	// notificationsLocked is set while application code runs; pending holds
	// the resource change marks queued meanwhile.
	notificationsLocked bool
	pending             []model.Path
}

// New creates a Client.
func New(cfg Config, opts ...Option) *Client {
	c := &Client{
		id:       uuid.NewString(),
		features: cfg.Features,
		clock:    cfg.Clock,
		logger:   cfg.Logger,
		trace:    log.OrNoop(cfg.ProtocolLogger),
		metrics:  cfg.Metrics,
		table:    model.NewObjectTable(),
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if c.metrics == nil {
		c.metrics = metrics.NoopRecorder{}
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.objects == nil {
		c.objects = model.NewStore(c.table)
	}
	if c.parser == nil {
		c.parser = coapuri.Default
	}
	if c.updater == nil {
		c.updater = noopUpdater{}
	}
	if c.engine == nil {
		c.engine = noopEngine{}
	}
	if c.waker == nil {
		c.signal = NewWakeSignal()
		c.waker = c.signal
	}
	c.logger = c.logger.With("client_id", c.id)
	return c
}

// ID returns the client instance id used in trace events.
func (c *Client) ID() string {
	return c.id
}

// Features returns the enabled features.
func (c *Client) Features() Features {
	return c.features
}

// WakeChannel returns the built-in wake channel, or nil when WithWaker was used.
func (c *Client) WakeChannel() <-chan struct{} {
	if c.signal == nil {
		return nil
	}
	return c.signal.C()
}

// Configure sets the client identity, the device info and the event handler,
// and initializes the object layer.
func (c *Client) Configure(identity string, info *model.DeviceInfo, handler EventHandler) error {
	if !c.features.SkipArgumentChecks {
		if identity == "" {
			c.logger.Warn("identity is empty")
			return wire.Errorf(wire.StatusBadRequest, "identity is empty")
		}
		if info != nil && info.MSISDN != "" {
			c.logger.Warn("cannot set MSISDN without SMS transport")
			return wire.Errorf(wire.StatusBadRequest, "MSISDN requires SMS transport")
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.objects.Init(info); err != nil {
		if wire.StatusOf(err) != wire.StatusPreconditionFailed {
			c.objects.Close()
		}
		c.logger.Error("failed to initialize objects", "error", err)
		c.traceOp(log.CategoryRegistry, "Configure", nil, nil, err)
		return err
	}

	c.identity = identity
	if info != nil {
		d := *info
		c.device = &d
	} else {
		c.device = nil
	}
	c.handler = handler
	c.configured = true

	c.logger.Info("client configured", "identity", identity)
	c.traceOp(log.CategoryRegistry, "Configure", nil, nil, nil)
	return nil
}

// Identity returns the configured identity.
func (c *Client) Identity() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.identity
}

// Device returns a copy of the configured device info, or nil.
func (c *Client) Device() *model.DeviceInfo {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.device == nil {
		return nil
	}
	d := *c.device
	return &d
}

// SetTime sets the current time in seconds. A configured Clock takes over
// again on the next read.
func (c *Client) SetTime(now int64) {
	c.mu.Lock()
	c.now = now
	c.mu.Unlock()
}

// Now returns the current client time in seconds.
func (c *Client) Now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nowLocked()
}

// Close removes every server and releases the object layer.
func (c *Client) Close() error {
	err := c.RemoveServer(model.IDAll)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.configured {
		c.objects.Close()
		c.configured = false
	}
	return err
}

func (c *Client) nowLocked() int64 {
	if c.clock != nil {
		c.now = c.clock.Now()
	}
	return c.now
}

func (c *Client) wake() {
	c.waker.Wake()
}
