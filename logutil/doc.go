// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil holds the process-wide slog logger used by baseurl and the
// baseurl command.
//
// # Basic Usage
//
//	// In main, after flags are parsed
//	logutil.SetupLogger(debug, structured)
//
//	// Package-level helpers
//	logutil.Info("checked urls", "total", n)
//
//	// Component loggers
//	log := logutil.NewLogger("baseurl").WithOperation("set-host")
//	log.Debug("refused", "host", host)
//
// # Debug Mode
//
// Debug records are written when SetupLogger is called with debug=true or
// when BASEURL_DEBUG holds a true value such as "1" or "true".
//
// # Output
//
// Text output uses slog's key=value format:
//
//	time=2026-01-15T10:30:00Z level=DEBUG msg="rejected url" component=baseurl scheme=mailto
//
// With structured=true every record is a JSON object.
package logutil
