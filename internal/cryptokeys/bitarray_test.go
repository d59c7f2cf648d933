package cryptokeys

import "testing"

func TestCompactBitArrayLen(t *testing.T) {
	cases := []struct {
		numBytes int
		extra    byte
		want     int
	}{
		{1, 0, 8},
		{1, 3, 3},
		{2, 0, 16},
		{2, 5, 13},
	}
	for _, tt := range cases {
		c := &CompactBitArray{ExtraBitsStored: tt.extra, Bytes: make([]byte, tt.numBytes)}
		if got := c.Len(); got != tt.want {
			t.Fatalf("Len() for {%d bytes, %d extra} = %d, want %d", tt.numBytes, tt.extra, got, tt.want)
		}
	}
}

func TestCompactBitArraySetGetIndex(t *testing.T) {
	c := NewCompactBitArray(12)
	if c.Len() != 12 {
		t.Fatalf("expected length 12, got %d", c.Len())
	}
	for _, i := range []int{0, 3, 11} {
		if c.GetIndex(i) {
			t.Fatalf("bit %d should start unset", i)
		}
		c.SetIndex(i, true)
		if !c.GetIndex(i) {
			t.Fatalf("bit %d should be set after SetIndex", i)
		}
	}
	if c.countSetBits(12) != 3 {
		t.Fatalf("expected 3 set bits, got %d", c.countSetBits(12))
	}
}
