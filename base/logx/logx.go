// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the process-wide user log level and
// a [log/slog] handler that prints compact records with the
// level colored according to the terminal color profile.
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically be
// set through [SetUserLevel] to a user-facing setting.
var UserLevel = defaultUserLevel

var defaultUserLevel = slog.LevelInfo

// SetUserLevel parses the given level name (debug, info, warn, error),
// sets [UserLevel], and installs a new default logger writing to w.
func SetUserLevel(name string, w io.Writer) error {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("logx.SetUserLevel: %w", err)
	}
	UserLevel = lv
	slog.SetDefault(slog.New(NewHandler(w)))
	return nil
}

// Handler is a [slog.Handler] that writes one line per record:
// the colored level, the message, and the attributes as key=value.
type Handler struct {
	mu    *sync.Mutex
	w     io.Writer
	out   *termenv.Output
	attrs []slog.Attr
	group string
}

// NewHandler returns a new [Handler] writing to w, enabled
// for records at or above [UserLevel].
func NewHandler(w io.Writer) *Handler {
	return &Handler{mu: &sync.Mutex{}, w: w, out: termenv.NewOutput(w)}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelString(r.Level))
	sb.WriteString(" ")
	sb.WriteString(r.Message)
	for _, a := range h.attrs {
		h.writeAttr(&sb, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(&sb, a)
		return true
	})
	sb.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	if nh.group != "" {
		name = nh.group + "." + name
	}
	nh.group = name
	return &nh
}

func (h *Handler) writeAttr(sb *strings.Builder, a slog.Attr) {
	key := a.Key
	if h.group != "" {
		key = h.group + "." + key
	}
	fmt.Fprintf(sb, " %s=%v", key, a.Value.Any())
}

// levelString returns the level label colored for the output profile.
func (h *Handler) levelString(level slog.Level) string {
	st := h.out.String(level.String())
	switch {
	case level >= slog.LevelError:
		st = st.Foreground(termenv.ANSIRed)
	case level >= slog.LevelWarn:
		st = st.Foreground(termenv.ANSIYellow)
	case level >= slog.LevelInfo:
		st = st.Foreground(termenv.ANSIGreen)
	default:
		st = st.Foreground(termenv.ANSIBlue)
	}
	return st.String()
}
