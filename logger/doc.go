// Package logger is the public API of maxlog. Most users only need to
// import this package.
//
// The package-level functions log through a built-in default logger that
// is created on first use. It appends every line to ./log.txt (or the
// path in MAXLOG_FILE) and echoes it, colored by level, to stdout:
//
//	logger.Info("listening on {}", addr)
//	logger.Warn("retry {} of {}", n, max)
//
// produces lines such as
//
//	[ warn  ] 2024-05-01T12:00:00 * /src/app/main.go:42 -> retry 2 of 5
//
// Levels rank trace < info < debug < warn < error < fatal. The threshold
// comes from MAXLOG_LEVEL, read once; unknown or missing names mean info.
// Calls below the threshold do nothing at all.
//
// Messages are templates in which each "{}" takes the next argument and
// "{N}" takes argument N. A template whose placeholders do not match its
// arguments panics before anything is written.
//
// SetLogFile redirects the file sink at runtime. A path that cannot be
// opened disables the file sink without affecting the console.
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(myHandler).
//	    WithLevel(logger.DebugLevel).
//	    Build()
//
// A Logger is immutable after construction and safe for concurrent use.
package logger
