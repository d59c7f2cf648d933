// Package eventhooks holds the event handlers a deployment wires into
// the event bus alongside the in-process metrics handler: a stdout
// logger equivalent to the reference implementation's bundled
// stdout-logger handler, printing every event as it is emitted.
package eventhooks

import (
	"context"
	"log"

	"github.com/soloibc/solo-machine/internal/eventbus"
)

// StdoutLogger prints every event it receives, tagged with its chain
// ID when the event carries one. It never returns an error: a logging
// failure must not abort the operation that produced the event.
type StdoutLogger struct {
	logger *log.Logger
}

// NewStdoutLogger builds a StdoutLogger writing through logger.
func NewStdoutLogger(logger *log.Logger) *StdoutLogger {
	return &StdoutLogger{logger: logger}
}

// Handle implements eventbus.Handler.
func (h *StdoutLogger) Handle(_ context.Context, event eventbus.Event) error {
	if event.ChainID != "" {
		h.logger.Printf("event=%s chain_id=%s data=%v", event.Kind, event.ChainID, event.Data)
	} else {
		h.logger.Printf("event=%s data=%v", event.Kind, event.Data)
	}
	return nil
}
