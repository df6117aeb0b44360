// Package filehandler provides the file sink: an append-only log file
// holding one plain (uncolored) line per record.
//
// Open never fails. If the file cannot be opened the handler becomes
// inert: Valid reports false, Err explains why, and every record is
// skipped without disturbing the caller. SetPath closes the current file
// and opens another one in append mode; it can also revive an inert
// handler.
//
// Each record is a single Write on the *os.File, so lines reach the
// operating system as soon as Handle returns. No user-space buffer sits
// in between.
package filehandler
