// Package core defines the shared types used across maxlog.
//
// It provides the Level type and its name codec, the Entry type that
// represents a single log record, CallerInfo for call-site capture, and
// Template, the parser for "{}" style message templates.
//
// Levels have a fixed numeric rank that is part of the public contract:
//
//	trace < info < debug < warn < error < fatal
//
// Note that debug ranks above info. Callers may compare levels with <=.
//
// Entry objects are pooled via sync.Pool. Callers get an Entry with
// GetEntry and return it with PutEntry once every handler has consumed
// it. An Entry is never retained past the call that produced it.
//
// Templates are compiled once and cached by text. A template whose
// placeholder count does not match its arguments yields a *TemplateError;
// the logger turns that into a panic before anything is written.
package core
