// Package logging provides the bracket-tagged stdlib loggers used
// throughout the core, the same convention the database client uses
// ("[Database] ") extended to every other component.
package logging

import (
	"fmt"
	"log"
	"os"
)

// New returns a *log.Logger prefixed with "[tag] ", writing to stderr
// with standard date/time flags.
func New(tag string) *log.Logger {
	return log.New(os.Stderr, fmt.Sprintf("[%s] ", tag), log.LstdFlags)
}

// NewWithWriter is New but against an explicit writer, for tests that
// want to capture output.
func NewWithWriter(tag string, w *os.File) *log.Logger {
	return log.New(w, fmt.Sprintf("[%s] ", tag), log.LstdFlags)
}
