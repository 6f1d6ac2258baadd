// Copyright (c) EVAuth
// SPDX-License-Identifier: Apache-2.0

// Package logger contains logger wrapper for the service.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// New returns JSON structured logger writing to the given writer at the
// given level. The level text is parsed case-insensitively; an unknown
// level yields an error.
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return &slog.Logger{}, fmt.Errorf(`{"level":"error","message":"%s: %s","ts":"%s"}`, err, levelText, time.Now().Format(time.RFC3339))
	}

	logHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(logHandler), nil
}

// ExitWithError exits the process with the given code. Deferred so that
// other deferred cleanups run before the process terminates.
func ExitWithError(code *int) {
	os.Exit(*code)
}
