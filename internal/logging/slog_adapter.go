// Wisata - Tourism Place Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wisata

package logging

import (
	"context"
	"log/slog"
	"time"

	"github.com/rs/zerolog"
)

// NewSlogLogger returns an slog.Logger backed by the global zerolog logger,
// for libraries that only speak slog.
//
//	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), cfg)
func NewSlogLogger() *slog.Logger {
	return newSlogLogger(Logger())
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func newSlogLogger(logger zerolog.Logger) *slog.Logger {
	return slog.New(zerologHandler{logger: logger})
}

// zerologHandler adapts slog records to zerolog events. sutureslog emits
// flat attributes only, so groups are not prefixed onto keys.
type zerologHandler struct {
	logger zerolog.Logger
}

func (h zerologHandler) Enabled(_ context.Context, level slog.Level) bool {
	zl := slogToZerologLevel(level)
	return zl >= h.logger.GetLevel() && zl >= zerolog.GlobalLevel()
}

//nolint:gocritic // slog.Record is passed by value per slog.Handler interface
func (h zerologHandler) Handle(_ context.Context, record slog.Record) error {
	event := h.logger.WithLevel(slogToZerologLevel(record.Level))
	record.Attrs(func(attr slog.Attr) bool {
		event = addAttr(event, attr)
		return true
	})
	event.Msg(record.Message)
	return nil
}

func (h zerologHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := make(map[string]interface{}, len(attrs))
	for _, attr := range attrs {
		fields[attr.Key] = attr.Value.Resolve().Any()
	}
	return zerologHandler{logger: h.logger.With().Fields(fields).Logger()}
}

func (h zerologHandler) WithGroup(string) slog.Handler {
	return h
}

func addAttr(event *zerolog.Event, attr slog.Attr) *zerolog.Event {
	switch v := attr.Value.Resolve().Any().(type) {
	case error:
		return event.AnErr(attr.Key, v)
	case time.Duration:
		return event.Dur(attr.Key, v)
	default:
		return event.Interface(attr.Key, v)
	}
}

func slogToZerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level < slog.LevelDebug:
		return zerolog.TraceLevel
	case level < slog.LevelInfo:
		return zerolog.DebugLevel
	case level < slog.LevelWarn:
		return zerolog.InfoLevel
	case level < slog.LevelError:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
