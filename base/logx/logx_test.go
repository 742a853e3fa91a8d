// Copyright (c) 2024, The Veneer Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerOutput(t *testing.T) {
	b := &strings.Builder{}
	logger := slog.New(NewHandler(b))
	logger.Info("decoration resolved", "style", "menuitem", "states", 3)

	out := b.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "decoration resolved")
	assert.Contains(t, out, "style=menuitem")
	assert.Contains(t, out, "states=3")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestHandlerGroupsAndAttrs(t *testing.T) {
	b := &strings.Builder{}
	logger := slog.New(NewHandler(b)).With("skin", "flat").WithGroup("resolve")
	logger.Warn("no applicable fragments", "style", "toolbar")

	out := b.String()
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "skin=flat")
	assert.Contains(t, out, "resolve.style=toolbar")
}

func TestHandlerEnabled(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()

	h := NewHandler(&strings.Builder{})
	UserLevel = slog.LevelWarn
	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}
