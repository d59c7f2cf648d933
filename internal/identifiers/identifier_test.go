package identifiers

import (
	"errors"
	"testing"

	"github.com/soloibc/solo-machine/internal/ibcerrors"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []string{"a", "client-1", "A.B_C+D-E#F[0]<1>", "x"}
	for _, s := range cases {
		id, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", s, err)
		}
		if id.String() != s {
			t.Fatalf("round trip mismatch: got %q want %q", id.String(), s)
		}
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := []string{"", "has/slash", string(make([]byte, 65))}
	for _, s := range cases {
		if _, err := Parse(s); !errors.Is(err, ibcerrors.ErrInputValidation) {
			t.Fatalf("Parse(%q) expected InputValidation error, got %v", s, err)
		}
	}
}

func TestTypedMinimumLengths(t *testing.T) {
	if _, err := ParseClientID("short"); !errors.Is(err, ibcerrors.ErrInputValidation) {
		t.Fatalf("expected client id below minimum length to fail, got %v", err)
	}
	if _, err := ParseClientID("07-tendermint-ab12"); err != nil {
		t.Fatalf("unexpected error for valid client id: %v", err)
	}
	if _, err := ParsePortID("a"); !errors.Is(err, ibcerrors.ErrInputValidation) {
		t.Fatalf("expected 1-char port id to fail minimum length 2")
	}
	if _, err := ParsePortID("ab"); err != nil {
		t.Fatalf("unexpected error for valid port id: %v", err)
	}
}

func TestChainIDVersion(t *testing.T) {
	tests := []struct {
		in      string
		wantID  string
		wantVer uint64
	}{
		{"testnet-42", "testnet-42", 42},
		{"foo", "foo", 0},
	}
	for _, tt := range tests {
		cid, err := ParseChainID(tt.in)
		if err != nil {
			t.Fatalf("ParseChainID(%q): %v", tt.in, err)
		}
		if cid.String() != tt.wantID || cid.Version() != tt.wantVer {
			t.Fatalf("ParseChainID(%q) = {%q, %d}, want {%q, %d}", tt.in, cid.String(), cid.Version(), tt.wantID, tt.wantVer)
		}
	}

	if _, err := ParseChainID(""); err == nil {
		t.Fatalf("expected error for empty chain id")
	}
}

func TestHeightStringRoundTrip(t *testing.T) {
	rev, height, err := ParseHeightString("0-0")
	if err != nil || rev != 0 || height != 0 {
		t.Fatalf("ParseHeightString(\"0-0\") = (%d, %d, %v), want (0, 0, nil)", rev, height, err)
	}

	if _, _, err := ParseHeightString("0"); err == nil {
		t.Fatalf("expected error for height string missing '-'")
	}
	if _, _, err := ParseHeightString("a-b"); err == nil {
		t.Fatalf("expected error for non-numeric height string")
	}

	if got := FormatHeightString(3, 17); got != "3-17" {
		t.Fatalf("FormatHeightString(3, 17) = %q, want \"3-17\"", got)
	}
}

func TestGenerateUsesPrefix(t *testing.T) {
	id, err := Generate(PrefixConnection)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(id) != len(PrefixConnection)+1+randomSuffixLength {
		t.Fatalf("Generate produced unexpected length: %q", id)
	}
	if id[:len(PrefixConnection)] != PrefixConnection {
		t.Fatalf("Generate did not use prefix: %q", id)
	}
}
