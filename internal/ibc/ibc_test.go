package ibc

import (
	"testing"

	"github.com/soloibc/solo-machine/internal/ibcerrors"
	"github.com/soloibc/solo-machine/internal/rpcclient"
)

func TestFindAttributeLocatesValueWithinMatchingEventType(t *testing.T) {
	events := []rpcclient.Event{
		{Type: "message", Attributes: map[string]string{"action": "/ibc.core.client.v1.MsgCreateClient"}},
		{Type: "create_client", Attributes: map[string]string{"client_id": "07-tendermint-0"}},
	}
	value, err := findAttribute(events, "create_client", "client_id")
	if err != nil {
		t.Fatalf("findAttribute: %v", err)
	}
	if value != "07-tendermint-0" {
		t.Fatalf("value = %q, want 07-tendermint-0", value)
	}
}

func TestFindAttributeReportsProtocolMismatchWhenAbsent(t *testing.T) {
	events := []rpcclient.Event{{Type: "message", Attributes: map[string]string{}}}
	_, err := findAttribute(events, "create_client", "client_id")
	if err == nil {
		t.Fatal("expected an error when no event of the requested type carries the attribute")
	}
	if !ibcerrors.Is(err, ibcerrors.ErrProtocolMismatch) {
		t.Fatalf("expected ErrProtocolMismatch, got %v", err)
	}
}

func TestFindAttributeIgnoresSameKeyOnWrongEventType(t *testing.T) {
	events := []rpcclient.Event{
		{Type: "connection_open_init", Attributes: map[string]string{"channel_id": "channel-9"}},
	}
	_, err := findAttribute(events, "channel_open_init", "channel_id")
	if err == nil {
		t.Fatal("expected the wrong-event-type attribute to not satisfy the lookup")
	}
}
