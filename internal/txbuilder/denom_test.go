package txbuilder

import "testing"

func TestIBCDenomFixture(t *testing.T) {
	got := IBCDenom("transfer", "channel-0", "uatom")
	want := "ibc/27394FB092D2ECCD56123C74F36E4C1F926001CEADA9CA97EA622B25F41E5EB2"
	if got != want {
		t.Fatalf("IBCDenom = %s, want %s", got, want)
	}
}

func TestIBCDenomVariesWithChannel(t *testing.T) {
	a := IBCDenom("transfer", "channel-0", "uatom")
	b := IBCDenom("transfer", "channel-1", "uatom")
	if a == b {
		t.Fatalf("denoms for different channels collided: %s", a)
	}
}

func TestBaseDenomFromTrace(t *testing.T) {
	cases := []struct{ in, want string }{
		{"transfer/channel-0/uatom", "uatom"},
		{"uatom", "uatom"},
		{"a/b/c/d", "d"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := BaseDenomFromTrace(tc.in); got != tc.want {
			t.Errorf("BaseDenomFromTrace(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
