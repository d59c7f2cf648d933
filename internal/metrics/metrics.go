// Package metrics exposes the process's own Prometheus registry and its
// counters/gauges: sequence numbers, packets sent/received, tokens
// minted/burnt, and handshake step completions. The counters are fed
// from the IBC and bank services' events by EventHandler; the sequence
// gauges change only through ObserveSequences. Kept as its
// own small registry rather than using the global default, the same
// way the pack's health logger keeps its metrics private to the
// component that owns them.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry collects every counter/gauge this process exports.
type Registry struct {
	registry *prometheus.Registry

	ChainSequence     *prometheus.GaugeVec
	PacketSequence    *prometheus.GaugeVec
	PacketsSent       *prometheus.CounterVec
	PacketsReceived   *prometheus.CounterVec
	HandshakeSteps    *prometheus.CounterVec
	TokensMinted      *prometheus.CounterVec
	TokensBurnt       *prometheus.CounterVec
	BroadcastFailures *prometheus.CounterVec
}

// New builds a Registry with every metric registered.
func New() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		ChainSequence: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "solo_machine_chain_sequence",
			Help: "Current solo-machine signing sequence for a chain.",
		}, []string{"chain_id"}),
		PacketSequence: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "solo_machine_packet_sequence",
			Help: "Current outbound ICS-04 packet sequence for a chain.",
		}, []string{"chain_id"}),
		PacketsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solo_machine_packets_sent_total",
			Help: "Packets sent to a chain via send_to_chain.",
		}, []string{"chain_id"}),
		PacketsReceived: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solo_machine_packets_received_total",
			Help: "Packets received from a chain via receive_from_chain.",
		}, []string{"chain_id"}),
		HandshakeSteps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solo_machine_handshake_steps_total",
			Help: "Connect handshake steps completed, labeled by step name.",
		}, []string{"chain_id", "step"}),
		TokensMinted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solo_machine_tokens_minted_total",
			Help: "Tokens minted, by denom (decimal string amounts summed as floats).",
		}, []string{"denom"}),
		TokensBurnt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solo_machine_tokens_burnt_total",
			Help: "Tokens burnt, by denom.",
		}, []string{"denom"}),
		BroadcastFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solo_machine_broadcast_failures_total",
			Help: "broadcast_tx_commit calls that returned a non-zero check_tx or deliver_tx code.",
		}, []string{"chain_id"}),
	}

	reg.MustRegister(
		r.ChainSequence,
		r.PacketSequence,
		r.PacketsSent,
		r.PacketsReceived,
		r.HandshakeSteps,
		r.TokensMinted,
		r.TokensBurnt,
		r.BroadcastFailures,
	)

	return r
}

// Handler returns the http.Handler that serves this registry's metrics
// in the Prometheus text exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// RecordHandshakeStep increments the named step's counter for chainID.
func (r *Registry) RecordHandshakeStep(chainID, step string) {
	r.HandshakeSteps.WithLabelValues(chainID, step).Inc()
}

// ObserveSequences sets chainID's sequence gauges to the given values.
// No service in this module calls it.
func (r *Registry) ObserveSequences(chainID string, sequence, packetSequence uint64) {
	r.ChainSequence.WithLabelValues(chainID).Set(float64(sequence))
	r.PacketSequence.WithLabelValues(chainID).Set(float64(packetSequence))
}
