// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the logging setup used across veneer, based on
// [log/slog] with a terminal-friendly colored handler.
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level that the user has selected for this
// program. Anything below it is not logged. It defaults to [slog.LevelInfo].
var UserLevel = slog.LevelInfo

// Init installs the veneer handler, writing to os.Stderr at [UserLevel],
// as the default slog logger. Applications embedding the engine may skip
// this and install their own handler instead.
func Init() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// Handler is a [slog.Handler] that renders records on a single line with a
// colored level tag when the output terminal supports it.
type Handler struct {
	w      io.Writer
	mu     *sync.Mutex
	output *termenv.Output
	attrs  []slog.Attr
	groups []string
}

// NewHandler returns a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{
		w:      w,
		mu:     &sync.Mutex{},
		output: termenv.NewOutput(w),
	}
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	b := &strings.Builder{}
	if !r.Time.IsZero() {
		b.WriteString(r.Time.Format(time.DateTime))
		b.WriteString(" ")
	}
	b.WriteString(h.levelTag(r.Level))
	b.WriteString(" ")
	b.WriteString(r.Message)
	prefix := strings.Join(h.groups, ".")
	for _, a := range h.attrs {
		writeAttr(b, prefix, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(b, prefix, a)
		return true
	})
	b.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}

func writeAttr(b *strings.Builder, prefix string, a slog.Attr) {
	b.WriteString(" ")
	if prefix != "" {
		b.WriteString(prefix)
		b.WriteString(".")
	}
	b.WriteString(a.Key)
	b.WriteString("=")
	fmt.Fprintf(b, "%v", a.Value.Any())
}

// levelTag returns the bracketed level name, colored per level when the
// output supports color.
func (h *Handler) levelTag(level slog.Level) string {
	tag := "[" + level.String() + "]"
	var color termenv.ANSIColor
	switch {
	case level >= slog.LevelError:
		color = termenv.ANSIRed
	case level >= slog.LevelWarn:
		color = termenv.ANSIYellow
	case level >= slog.LevelInfo:
		color = termenv.ANSIBlue
	default:
		color = termenv.ANSIGreen
	}
	return h.output.String(tag).Foreground(color).String()
}
