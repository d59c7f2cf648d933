// Package eventbus delivers the tagged Event union §4.9 names to an
// ordered list of handlers: one producer, sequential per-event delivery,
// handler failure propagates as an error to the emitting call site.
package eventbus

import (
	"context"
	"fmt"
	"sync"
)

// Kind tags which variant an Event carries.
type Kind string

const (
	KindChainAdded                       Kind = "ChainAdded"
	KindTokensMinted                     Kind = "TokensMinted"
	KindTokensBurnt                      Kind = "TokensBurnt"
	KindTokensSent                       Kind = "TokensSent"
	KindTokensReceived                   Kind = "TokensReceived"
	KindSignerUpdated                    Kind = "SignerUpdated"
	KindCreatedSoloMachineClient         Kind = "CreatedSoloMachineClient"
	KindCreatedTendermintClient          Kind = "CreatedTendermintClient"
	KindInitializedConnectionOnTendermint Kind = "InitializedConnectionOnTendermint"
	KindInitializedConnectionOnSoloMachine Kind = "InitializedConnectionOnSoloMachine"
	KindConfirmedConnectionOnTendermint   Kind = "ConfirmedConnectionOnTendermint"
	KindConfirmedConnectionOnSoloMachine  Kind = "ConfirmedConnectionOnSoloMachine"
	KindInitializedChannelOnTendermint    Kind = "InitializedChannelOnTendermint"
	KindInitializedChannelOnSoloMachine   Kind = "InitializedChannelOnSoloMachine"
	KindConfirmedChannelOnTendermint      Kind = "ConfirmedChannelOnTendermint"
	KindConfirmedChannelOnSoloMachine     Kind = "ConfirmedChannelOnSoloMachine"
	KindConnectionEstablished             Kind = "ConnectionEstablished"
)

// Event is the tagged union every handler receives; Data carries the
// variant-specific payload, whose keys are set by each emitting call
// site (a map so handlers that only care about a couple of fields
// don't need a type switch over every variant struct this package would
// otherwise have to define).
type Event struct {
	Kind    Kind
	ChainID string
	Data    map[string]any
}

// Handler processes one Event to completion before the bus dispatches
// the next; a returned error propagates to the caller that emitted the
// event that produced it.
type Handler interface {
	Handle(ctx context.Context, event Event) error
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(ctx context.Context, event Event) error

func (f HandlerFunc) Handle(ctx context.Context, event Event) error { return f(ctx, event) }

// Bus is a single-producer, ordered multi-handler event dispatcher.
// Registration is expected at startup, before any Emit call; Register
// and Emit are both safe to call concurrently regardless, guarded by a
// mutex so a service under test can register handlers lazily.
type Bus struct {
	mu       sync.Mutex
	handlers []Handler
}

// New constructs an empty Bus.
func New() *Bus {
	return &Bus{}
}

// Register appends handler to the ordered dispatch list.
func (b *Bus) Register(handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, handler)
}

// Emit runs every registered handler against event, in registration
// order, each to completion before the next starts. The first handler
// error stops dispatch and is returned to the caller; it does not
// surface as a separate error after it fires, per §4.9 `handler failure
// propagates as an error`.
func (b *Bus) Emit(ctx context.Context, event Event) error {
	b.mu.Lock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.Unlock()

	for i, handler := range handlers {
		if err := handler.Handle(ctx, event); err != nil {
			return fmt.Errorf("event handler %d failed handling %s: %w", i, event.Kind, err)
		}
	}
	return nil
}
