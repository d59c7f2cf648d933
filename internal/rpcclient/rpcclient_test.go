package rpcclient

import (
	"testing"

	abcitypes "github.com/cometbft/cometbft/abci/types"
)

func TestFlattenEventsCollapsesAttributesToAMap(t *testing.T) {
	raw := []abcitypes.Event{
		{
			Type: "send_packet",
			Attributes: []abcitypes.EventAttribute{
				{Key: "packet_sequence", Value: "1"},
				{Key: "packet_src_channel", Value: "channel-0"},
			},
		},
	}

	events := flattenEvents(raw)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Type != "send_packet" {
		t.Fatalf("unexpected event type: %s", events[0].Type)
	}

	seq, ok := events[0].Attribute("packet_sequence")
	if !ok || seq != "1" {
		t.Fatalf("packet_sequence = %q, %v", seq, ok)
	}

	if _, ok := events[0].Attribute("missing_key"); ok {
		t.Fatal("expected missing attribute to report ok=false")
	}
}

func TestFlattenEventsHandlesEmptyInput(t *testing.T) {
	events := flattenEvents(nil)
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}
}
