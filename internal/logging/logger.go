// Copyright (c) 2026 Keyspect Team
// Keyspect - SSH public key inspection tool
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging wraps the application logger. Callers use the helper
// functions below; tests may swap the package-level logger L.
package logging

import (
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"
)

// L is the package-level logger. It writes to stderr so report output on
// stdout stays clean for piping.
var L = clog.New(os.Stderr)

// SetDebug raises the log level to debug when enabled, and back to info
// otherwise.
func SetDebug(enabled bool) {
	if enabled {
		L.SetLevel(clog.DebugLevel)
	} else {
		L.SetLevel(clog.InfoLevel)
	}
}

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
