// SPDX-FileCopyrightText : © 2024 Galvanized Logic Inc.
// SPDX-License-Identifier: BSD-2-Clause

package flt

import "log/slog"

// logger is the package-wide structured logger, matching the load
// package's habit of attributing its own diagnostics (unknown chunk
// types, fallback decode paths) to a package-level slog handle rather
// than threading a logger through every call.
var logger = slog.Default().With("pkg", "flt")

// SetLogger replaces the package logger. Call once at program start if
// the default handler isn't what a caller wants attached to these
// diagnostics.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger = l.With("pkg", "flt")
	}
}
