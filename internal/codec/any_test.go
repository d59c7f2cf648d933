package codec

import (
	"bytes"
	"testing"

	"github.com/soloibc/solo-machine/internal/pb"
)

func TestToAnyFromAnyRoundTrip(t *testing.T) {
	original := &pb.SignBytes{
		Sequence:    7,
		Timestamp:   1700000000,
		Diversifier: "diversifier-1",
		Path:        []byte("clients/07-tendermint-0/clientState"),
		Data:        []byte("payload"),
	}

	any, err := ToAny(TypeURLSoloMachineClientState, original)
	if err != nil {
		t.Fatalf("ToAny: %v", err)
	}
	if any.TypeUrl != TypeURLSoloMachineClientState {
		t.Fatalf("type url = %s, want %s", any.TypeUrl, TypeURLSoloMachineClientState)
	}

	var decoded pb.SignBytes
	if err := FromAny(any, TypeURLSoloMachineClientState, &decoded); err != nil {
		t.Fatalf("FromAny: %v", err)
	}
	if decoded.Sequence != original.Sequence || decoded.Timestamp != original.Timestamp {
		t.Fatalf("decoded = %+v, want %+v", decoded, original)
	}
	if decoded.Diversifier != original.Diversifier {
		t.Fatalf("diversifier = %s, want %s", decoded.Diversifier, original.Diversifier)
	}
	if !bytes.Equal(decoded.Path, original.Path) || !bytes.Equal(decoded.Data, original.Data) {
		t.Fatalf("path/data mismatch: got %+v", decoded)
	}
}

func TestFromAnyRejectsTypeMismatch(t *testing.T) {
	any := &pb.Any{TypeUrl: "/wrong.type", Value: []byte{}}
	var out pb.SignBytes
	if err := FromAny(any, TypeURLSoloMachineClientState, &out); err == nil {
		t.Fatal("expected error for mismatched type url")
	}
}
