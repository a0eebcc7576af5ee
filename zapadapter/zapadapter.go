// Copyright (c) 2025 Joshua Skootsky
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.
//
// Alternatively, you can license this code under a commercial license.
// Contact: joshua.skootsky@gmail.com

// Package zapadapter adapts a *zap.Logger, through its SugaredLogger, to
// the ringbuffer.Logger interface, so a Buffer's best-effort diagnostics can flow into the
// same structured logger the rest of a service already uses.
package zapadapter

import "go.uber.org/zap"

// Logger wraps a *zap.SugaredLogger to satisfy ringbuffer.Logger.
type Logger struct {
	sugar *zap.SugaredLogger
}

// New wraps logger for use as a ringbuffer.Logger. A nil logger produces
// a Logger whose Debugf calls are no-ops.
func New(logger *zap.Logger) *Logger {
	if logger == nil {
		return &Logger{}
	}
	return &Logger{sugar: logger.Sugar()}
}

// Debugf logs at debug level, matching ringbuffer.Logger.
func (l *Logger) Debugf(template string, args ...any) {
	if l == nil || l.sugar == nil {
		return
	}
	l.sugar.Debugf(template, args...)
}
