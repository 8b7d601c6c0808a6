// Command lwm2m-client runs the LwM2M client core against a YAML
// configuration.
//
// It demonstrates:
//   - Configuration file support
//   - Structured logging and a CBOR protocol trace
//   - Prometheus metrics
//   - Persisting the server list across restarts
//   - An interactive shell for poking at the client
//
// Usage:
//
//	lwm2m-client [flags]
//
// Flags:
//
//	-config string        Configuration file path (required)
//	-log-level string     Log level: debug, info, warn, error (default "info")
//	-log-format string    Log format: text, json (default "text")
//	-protocol-log string  File for the CBOR protocol trace
//	-metrics-addr string  Listen address for /metrics
//	-state string         State file for the server list
//	-simulate             Play the registration engine (default true)
//	-interactive          Start the interactive shell
//
// Examples:
//
//	# Run with the servers from the config file
//	lwm2m-client -config client.yaml
//
//	# Interactive mode with a protocol trace
//	lwm2m-client -config client.yaml -interactive -protocol-log /tmp/client.cbor
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mash-protocol/lwm2m-go/cmd/lwm2m-client/interactive"
	"github.com/mash-protocol/lwm2m-go/pkg/client"
	"github.com/mash-protocol/lwm2m-go/pkg/log"
	"github.com/mash-protocol/lwm2m-go/pkg/metrics"
	"github.com/mash-protocol/lwm2m-go/pkg/persistence"
)

// Options holds the command line flags.
type Options struct {
	ConfigFile  string
	LogLevel    string
	LogFormat   string
	ProtocolLog string
	MetricsAddr string
	StateFile   string
	Simulate    bool
	Interactive bool
}

var opts Options

func init() {
	flag.StringVar(&opts.ConfigFile, "config", "", "Configuration file path")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flag.StringVar(&opts.LogFormat, "log-format", "text", "Log format: text, json")
	flag.StringVar(&opts.ProtocolLog, "protocol-log", "", "File for the CBOR protocol trace")
	flag.StringVar(&opts.MetricsAddr, "metrics-addr", "", "Listen address for /metrics (e.g. :9090)")
	flag.StringVar(&opts.StateFile, "state", "", "State file for the server list")
	flag.BoolVar(&opts.Simulate, "simulate", true, "Play the registration engine")
	flag.BoolVar(&opts.Interactive, "interactive", false, "Start the interactive shell")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if opts.ConfigFile == "" {
		return errors.New("-config is required")
	}
	fileCfg, err := loadConfig(opts.ConfigFile)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	values := newMemoryValues()
	var shell *interactive.Shell

	cfg := client.DefaultConfig()
	if fileCfg.Features != nil {
		cfg.Features = *fileCfg.Features
	}
	cfg.Clock = client.SystemClock{}

	// the shell is created after the client, so log through a late-bound writer
	lw := &lateWriter{w: os.Stderr}
	logger, err := newLogger(lw, opts.LogLevel, opts.LogFormat)
	if err != nil {
		return err
	}
	cfg.Logger = logger

	trace, closeTrace, err := newTraceLogger(opts.ProtocolLog, logger)
	if err != nil {
		return err
	}
	defer closeTrace()
	cfg.ProtocolLogger = trace

	collector := metrics.NewCollector()
	cfg.Metrics = collector
	if opts.MetricsAddr != "" {
		srv := &http.Server{Addr: opts.MetricsAddr, Handler: metricsMux(collector), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		defer srv.Close()
		logger.Info("metrics listening", "addr", opts.MetricsAddr)
	}

	c := client.New(cfg, client.WithRegistrationUpdater(logUpdater{logger: logger}))
	if err := c.Configure(fileCfg.Identity, &fileCfg.Device, handleEvent(logger)); err != nil {
		return fmt.Errorf("configure client: %w", err)
	}
	defer c.Close()

	if err := addObjects(c, fileCfg.Objects, values); err != nil {
		return err
	}

	store := stateStore(opts.StateFile)
	if err := addServers(c, fileCfg, store, logger); err != nil {
		return err
	}

	if opts.Interactive {
		shell, err = interactive.New(c, values)
		if err != nil {
			return err
		}
		lw.set(shell.Stdout())
	}

	r := &runner{c: c, logger: logger, simulate: opts.Simulate}
	go r.Run(ctx)

	if shell != nil {
		go shell.Run(ctx, cancel)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("received signal", "signal", sig.String())
	case <-ctx.Done():
	}
	cancel()

	if store != nil {
		state := &persistence.ClientState{Identity: fileCfg.Identity, Servers: c.Snapshot()}
		if err := store.Save(state); err != nil {
			logger.Error("failed to save state", "path", store.Path(), "error", err)
		} else {
			logger.Info("state saved", "path", store.Path(), "servers", len(state.Servers))
		}
	}
	return nil
}

func stateStore(path string) *persistence.StateStore {
	if path == "" {
		return nil
	}
	return persistence.NewStateStore(path)
}

// addServers restores the saved server list, or adds the configured servers
// when nothing was saved.
func addServers(c *client.Client, cfg *FileConfig, store *persistence.StateStore, logger *slog.Logger) error {
	if store != nil {
		state, err := store.Load()
		if err != nil {
			return fmt.Errorf("load state: %w", err)
		}
		if state != nil && state.Identity == cfg.Identity {
			logger.Info("restoring servers", "path", store.Path(), "servers", len(state.Servers))
			if err := c.Restore(state.Servers); err != nil {
				logger.Warn("some servers were not restored", "error", err)
			}
			return nil
		}
	}

	for _, s := range cfg.Servers {
		mode, err := s.securityMode()
		if err != nil {
			return err
		}
		if err := c.AddServer(s.ShortID, s.URI, s.Lifetime, s.flags(), mode); err != nil {
			return fmt.Errorf("add server %d: %w", s.ShortID, err)
		}
	}
	return nil
}

func addObjects(c *client.Client, objects []ObjectEntry, values *memoryValues) error {
	for _, o := range objects {
		resources, err := o.descriptors()
		if err != nil {
			return err
		}
		if err := c.AddCustomObject(o.ID, o.Instances, resources, values.handlers(o)); err != nil {
			return fmt.Errorf("add object %d: %w", o.ID, err)
		}
	}
	return nil
}

func handleEvent(logger *slog.Logger) client.EventHandler {
	return func(ev client.Event, _ *client.Client) {
		attrs := []any{"type", ev.Type.String(), "short_id", ev.ServerShortID}
		if ev.Setting != nil {
			attrs = append(attrs, "setting", ev.Setting.ID.String(), "value", ev.Setting.Value)
		}
		if r := ev.Registration; r != nil {
			attrs = append(attrs, "lifetime", r.Lifetime)
			if r.InternalError || r.ErrorCode != 0 {
				attrs = append(attrs, "internal", r.InternalError, "code", r.ErrorCode)
			}
		}
		logger.Info("event", attrs...)
	}
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, hopts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, hopts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

// newTraceLogger combines the protocol trace file with the operational
// logger. Trace events reach the logger at debug level.
func newTraceLogger(path string, logger *slog.Logger) (log.Logger, func(), error) {
	adapter := log.NewSlogAdapter(logger)
	if path == "" {
		return adapter, func() {}, nil
	}
	file, err := log.NewFileLogger(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open protocol log: %w", err)
	}
	closeFn := func() {
		written, failed := file.Stats()
		logger.Info("protocol log closed", "path", path, "written", written, "failed", failed)
		_ = file.Close()
	}
	return log.NewMultiLogger(file, adapter), closeFn, nil
}

func metricsMux(c *metrics.Collector) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	return mux
}
