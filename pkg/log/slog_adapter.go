package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("client_id", event.ClientID),
		slog.String("category", event.Category.String()),
	}
	if event.Operation != "" {
		attrs = append(attrs, slog.String("operation", event.Operation))
	}
	if event.ServerShortID != nil {
		attrs = append(attrs, slog.Uint64("short_id", uint64(*event.ServerShortID)))
	}
	if event.ObjectID != nil {
		attrs = append(attrs, slog.Uint64("object_id", uint64(*event.ObjectID)))
	}
	if event.Status != nil {
		attrs = append(attrs, slog.String("status", event.Status.String()))
	}

	switch {
	case event.Dispatch != nil:
		attrs = append(attrs, slog.String("event", event.Dispatch.Type))
		if event.Dispatch.SettingID != nil {
			attrs = append(attrs,
				slog.Uint64("setting", uint64(*event.Dispatch.SettingID)),
				slog.Any("value", event.Dispatch.Value),
			)
		}
		if event.Dispatch.Lifetime != nil {
			attrs = append(attrs, slog.Int("lifetime", int(*event.Dispatch.Lifetime)))
		}
		if event.Dispatch.ErrorCode != 0 || event.Dispatch.InternalError {
			attrs = append(attrs,
				slog.Bool("internal", event.Dispatch.InternalError),
				slog.Uint64("error_code", uint64(event.Dispatch.ErrorCode)),
			)
		}
		if event.Dispatch.Suppressed {
			attrs = append(attrs, slog.Bool("suppressed", true))
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.RefreshAt != 0 {
			attrs = append(attrs, slog.Int64("refresh_at", event.StateChange.RefreshAt))
		}
	case event.Schedule != nil:
		attrs = append(attrs,
			slog.Uint64("delay", uint64(event.Schedule.Delay)),
			slog.Int64("now", event.Schedule.Now),
			slog.Int("servers", event.Schedule.Servers),
		)
	case event.Error != nil:
		attrs = append(attrs, slog.String("error_msg", event.Error.Message))
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "trace", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
