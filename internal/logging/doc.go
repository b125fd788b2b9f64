// Package logging provides slog construction and shared structured-logging
// helpers for corfetch.
package logging
