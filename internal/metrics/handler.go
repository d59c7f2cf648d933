package metrics

import (
	"context"
	"strconv"
	"strings"

	"github.com/soloibc/solo-machine/internal/eventbus"
)

// handshakeSteps maps each connect-flow event kind to the step name
// recorded against HandshakeSteps; kinds not listed here are ignored by
// the handler's switch below.
var handshakeSteps = map[eventbus.Kind]string{
	eventbus.KindCreatedSoloMachineClient:           "created_solo_machine_client",
	eventbus.KindCreatedTendermintClient:            "created_tendermint_client",
	eventbus.KindInitializedConnectionOnTendermint:  "initialized_connection_on_tendermint",
	eventbus.KindInitializedConnectionOnSoloMachine: "initialized_connection_on_solo_machine",
	eventbus.KindConfirmedConnectionOnTendermint:    "confirmed_connection_on_tendermint",
	eventbus.KindConfirmedConnectionOnSoloMachine:   "confirmed_connection_on_solo_machine",
	eventbus.KindInitializedChannelOnTendermint:     "initialized_channel_on_tendermint",
	eventbus.KindInitializedChannelOnSoloMachine:    "initialized_channel_on_solo_machine",
	eventbus.KindConfirmedChannelOnTendermint:       "confirmed_channel_on_tendermint",
	eventbus.KindConfirmedChannelOnSoloMachine:      "confirmed_channel_on_solo_machine",
	eventbus.KindConnectionEstablished:              "connection_established",
}

// EventHandler returns an eventbus.Handler that feeds this registry from
// the event stream every service already emits, so the IBC and bank
// services themselves stay free of metrics bookkeeping.
func (r *Registry) EventHandler() eventbus.Handler {
	return eventbus.HandlerFunc(func(_ context.Context, event eventbus.Event) error {
		if step, ok := handshakeSteps[event.Kind]; ok {
			r.RecordHandshakeStep(event.ChainID, step)
			return nil
		}

		switch event.Kind {
		case eventbus.KindTokensSent:
			r.PacketsSent.WithLabelValues(event.ChainID).Inc()
		case eventbus.KindTokensReceived:
			r.PacketsReceived.WithLabelValues(event.ChainID).Inc()
		case eventbus.KindTokensMinted:
			r.TokensMinted.WithLabelValues(denomOf(event)).Add(amountOf(event))
		case eventbus.KindTokensBurnt:
			r.TokensBurnt.WithLabelValues(denomOf(event)).Add(amountOf(event))
		}
		return nil
	})
}

func denomOf(event eventbus.Event) string {
	denom, _ := event.Data["denom"].(string)
	return denom
}

// amountOf parses the event's decimal-string amount; a non-numeric or
// absent amount counts as zero rather than failing the handler, since a
// metrics miss must never fail the operation that produced the event.
func amountOf(event eventbus.Event) float64 {
	raw, _ := event.Data["amount"].(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}
