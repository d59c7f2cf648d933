package codec

import (
	"reflect"
	"testing"

	"github.com/soloibc/solo-machine/internal/cryptokeys"
)

func TestPublicKeyToAnyFromAnyRoundTripSecp256k1(t *testing.T) {
	want := cryptokeys.Secp256k1PublicKey{Compressed: []byte{
		0x02, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c,
		0x0d, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19,
		0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20,
	}}
	roundTripPublicKey(t, want)
}

func TestPublicKeyToAnyFromAnyRoundTripEd25519(t *testing.T) {
	want := cryptokeys.Ed25519PublicKey{Raw: []byte{
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d,
		0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1a,
		0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20,
	}}
	roundTripPublicKey(t, want)
}

func TestPublicKeyToAnyFromAnyRoundTripEthSecp256k1(t *testing.T) {
	uncompressed := make([]byte, 65)
	uncompressed[0] = 0x04
	for i := 1; i < 65; i++ {
		uncompressed[i] = byte(i)
	}
	roundTripPublicKey(t, cryptokeys.EthSecp256k1PublicKey{Uncompressed: uncompressed})
}

func TestPublicKeyToAnyFromAnyRoundTripMultisig(t *testing.T) {
	want := cryptokeys.MultisigPublicKey{
		Threshold: 1,
		PublicKeys: []cryptokeys.PublicKey{
			cryptokeys.Secp256k1PublicKey{Compressed: []byte{
				0x02, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c,
				0x0d, 0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19,
				0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20,
			}},
			cryptokeys.Ed25519PublicKey{Raw: []byte{
				0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d,
				0x0e, 0x0f, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1a,
				0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20,
			}},
		},
	}
	roundTripPublicKey(t, want)
}

func roundTripPublicKey(t *testing.T, want cryptokeys.PublicKey) {
	t.Helper()
	any, err := PublicKeyToAny(want)
	if err != nil {
		t.Fatalf("PublicKeyToAny: %v", err)
	}
	got, err := PublicKeyFromAny(any)
	if err != nil {
		t.Fatalf("PublicKeyFromAny: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("PublicKeyFromAny(PublicKeyToAny(pk)) = %+v, want %+v", got, want)
	}
}
