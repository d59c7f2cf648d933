package identifiers

import (
	"strconv"
	"strings"
)

// IBCStorePrefix is the fixed prefix segment every IBC proof path is
// rendered under.
const IBCStorePrefix = "ibc"

// Path is an ordered sequence of key segments. Rendering joins segments
// with "/"; ApplyPrefix inserts a segment at position 0.
type Path struct {
	segments []string
}

// NewPath builds a Path from the given segments, in order.
func NewPath(segments ...string) Path {
	out := make([]string, len(segments))
	copy(out, segments)
	return Path{segments: out}
}

// ParsePath splits a rendered path string back into a Path.
func ParsePath(s string) Path {
	return NewPath(strings.Split(s, "/")...)
}

// ApplyPrefix returns a new Path with prefix inserted at position 0.
func (p Path) ApplyPrefix(prefix string) Path {
	segments := make([]string, 0, len(p.segments)+1)
	segments = append(segments, prefix)
	segments = append(segments, p.segments...)
	return Path{segments: segments}
}

// Segments returns the path's segments in order. The caller must not
// mutate the returned slice.
func (p Path) Segments() []string { return p.segments }

// String renders the path as its segments joined by "/".
func (p Path) String() string { return strings.Join(p.segments, "/") }

// KeyAt returns the segment at index i joined with every following segment,
// i.e. "everything after position i". Used to recover the unprefixed path
// from a prefixed one for solo-machine sign bytes (index 1, after "ibc").
func (p Path) KeyAt(i int) string {
	if i >= len(p.segments) {
		return ""
	}
	return strings.Join(p.segments[i:], "/")
}

// Equal reports whether two paths render identically.
func (p Path) Equal(other Path) bool {
	return p.String() == other.String()
}

// Standard IBC store paths, per the data model.

// ClientTypePath returns "clients/{client_id}/clientType".
func ClientTypePath(clientID string) Path {
	return NewPath("clients", clientID, "clientType")
}

// ClientStatePath returns "clients/{client_id}/clientState".
func ClientStatePath(clientID string) Path {
	return NewPath("clients", clientID, "clientState")
}

// ConsensusStatePath returns "clients/{client_id}/consensusStates/{rev}-{h}".
func ConsensusStatePath(clientID string, revision, height uint64) Path {
	return NewPath("clients", clientID, "consensusStates", FormatHeightString(revision, height))
}

// ConnectionPath returns "connections/{connection_id}".
func ConnectionPath(connectionID string) Path {
	return NewPath("connections", connectionID)
}

// ChannelEndPath returns "channelEnds/ports/{port_id}/channels/{channel_id}".
func ChannelEndPath(portID, channelID string) Path {
	return NewPath("channelEnds", "ports", portID, "channels", channelID)
}

// PacketCommitmentPath returns
// "commitments/ports/{port_id}/channels/{channel_id}/sequences/{n}".
func PacketCommitmentPath(portID, channelID string, sequence uint64) Path {
	return NewPath("commitments", "ports", portID, "channels", channelID, "sequences", strconv.FormatUint(sequence, 10))
}

// PacketAcknowledgementPath returns
// "acks/ports/{port_id}/channels/{channel_id}/sequences/{n}".
func PacketAcknowledgementPath(portID, channelID string, sequence uint64) Path {
	return NewPath("acks", "ports", portID, "channels", channelID, "sequences", strconv.FormatUint(sequence, 10))
}

// DenomTracePath returns "{port_id}/{channel_id}/{denom}".
func DenomTracePath(portID, channelID, denom string) Path {
	return NewPath(portID, channelID, denom)
}
