// Package consolehandler provides the console sink: it writes formatted
// log entries to any io.Writer (default: os.Stdout), each line wrapped in
// the ANSI color of its level followed by a reset escape.
//
// Formatting and writing happen under one mutex, so lines from concurrent
// goroutines never interleave.
package consolehandler
