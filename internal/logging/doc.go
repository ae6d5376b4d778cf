// Package logging provides structured logging for ttscheck built on
// log/slog, with a TTY-optimized colorized text handler for interactive
// use and a JSON handler for machine consumption.
//
// The validation transcript itself is rendered by internal/validate;
// this package carries the diagnostic logs around it (probe invocations,
// timings, config resolution) on stderr.
package logging
