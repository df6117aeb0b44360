// Package handler provides the Handler interface and the pieces shared by
// the built-in sinks.
//
// A Handler receives a fully populated core.Entry and writes it somewhere.
// Every built-in handler is synchronous: when Handle returns, the record
// has been written or skipped. Handlers report write failures by
// returning an error; the logger ignores them, so a failing sink never
// disturbs the program that is logging.
//
// Built-in handlers:
//
//   - consolehandler.ConsoleHandler writes colored lines to any io.Writer
//     (default: stdout).
//   - filehandler.FileHandler appends plain lines to a file and can be
//     pointed at a new path at runtime.
//   - MultiHandler fans one entry out to several handlers in a fixed
//     order.
//   - SlogHandler adapts a Handler to log/slog.Handler.
//   - zaphandler and zerologhandler let zap and zerolog loggers write
//     through a Handler.
//
// Sinks track written and skipped records per level via the Stats type,
// which can be queried at runtime for monitoring.
package handler
