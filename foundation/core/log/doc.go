// Package log provides structured logging for the devkit caller layer.
//
// Package: log
// Title: devkit Structured Logging Framework
// Description: Leveled structured logging with contextual fields, JSON, text
//              and console output and integration with the devkit error type.
//              Library packages never log; the CLI and the toolkit runner do.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Dropped async, audit and request-context support
//
// Usage:
//
//	import mdwlog "github.com/msto63/devkit/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatText).
//		WithName("devkit")
//
//	logger.Debug("conversion finished", mdwlog.Fields{"tool": "base64"})
//
//	timer := logger.StartTimer("hash")
//	// ... run the conversion
//	timer.Stop()
package log
