// Package formatter defines how log entries are serialized into bytes.
//
// TextFormatter renders the canonical maxlog line:
//
//	[ error ] 2026-10-17T09:30:00 * /src/app/main.go:42 -> x=1
//
// The level is centered in five columns, the timestamp is local time with
// seconds resolution, and the call site is the file path as captured by
// the logger. ColorFormatter wraps any Formatter and surrounds each line
// with an ANSI color escape chosen by level and a reset escape.
//
// Formatters use a pooled bytes.Buffer internally. Buffers larger than
// 64 KiB are not returned to the pool to prevent a single large log line
// from permanently inflating memory usage.
package formatter
