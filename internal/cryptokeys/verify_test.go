package cryptokeys

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

func sha256Sum(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

func mustSecp256k1SignBytes(t *testing.T, priv *secp256k1.PrivateKey, message []byte) []byte {
	t.Helper()
	digest := sha256Sum(message)
	compact := ecdsa.SignCompact(priv, digest, false)
	// SignCompact prepends a one-byte recovery id; the wire format here is
	// the bare 64-byte r||s pair.
	return compact[1:]
}

func TestVerifySecp256k1RoundTrip(t *testing.T) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}
	pub := Secp256k1PublicKey{Compressed: priv.PubKey().SerializeCompressed()}
	message := []byte("solo machine sign bytes")
	sig := mustSecp256k1SignBytes(t, priv, message)

	if err := Verify(pub, sha256Sum(message), SingleSignatureData{Signature: sig}); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	tampered := append([]byte{}, sig...)
	tampered[0] ^= 0xff
	if err := Verify(pub, sha256Sum(message), SingleSignatureData{Signature: tampered}); err == nil {
		t.Fatal("expected verification failure for tampered signature")
	}
}

func TestVerifyEd25519RoundTrip(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}
	message := []byte("solo machine sign bytes")
	sig := ed25519.Sign(priv, message)
	key := Ed25519PublicKey{Raw: pub}

	if err := Verify(key, message, SingleSignatureData{Signature: sig}); err != nil {
		t.Fatalf("Verify: %v", err)
	}

	if err := Verify(key, []byte("different message"), SingleSignatureData{Signature: sig}); err == nil {
		t.Fatal("expected verification failure for mismatched message")
	}
}

func TestVerifyRejectsMismatchedSignatureDataType(t *testing.T) {
	pub, _, _ := ed25519.GenerateKey(rand.Reader)
	key := Ed25519PublicKey{Raw: pub}
	err := Verify(key, []byte("x"), MultiSignatureData{Bitarray: NewCompactBitArray(1)})
	if err == nil {
		t.Fatal("expected error when signature data kind does not match key kind")
	}
}

func twoOfThreeMultisig(t *testing.T) (MultisigPublicKey, []ed25519.PrivateKey) {
	t.Helper()
	var pubKeys []PublicKey
	var privKeys []ed25519.PrivateKey
	for i := 0; i < 3; i++ {
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		if err != nil {
			t.Fatalf("generating key %d: %v", i, err)
		}
		pubKeys = append(pubKeys, Ed25519PublicKey{Raw: pub})
		privKeys = append(privKeys, priv)
	}
	return MultisigPublicKey{Threshold: 2, PublicKeys: pubKeys}, privKeys
}

func TestVerifyMultisigThresholdSatisfied(t *testing.T) {
	multisig, privKeys := twoOfThreeMultisig(t)
	message := []byte("solo machine sign bytes")

	bitarray := NewCompactBitArray(3)
	bitarray.SetIndex(0, true)
	bitarray.SetIndex(2, true)

	sig := MultiSignatureData{
		Bitarray: bitarray,
		Signatures: []SignatureData{
			SingleSignatureData{Signature: ed25519.Sign(privKeys[0], message)},
			SingleSignatureData{Signature: ed25519.Sign(privKeys[2], message)},
		},
	}

	if err := Verify(multisig, message, sig); err != nil {
		t.Fatalf("Verify: %v", err)
	}
}

func TestVerifyMultisigBelowThresholdRejected(t *testing.T) {
	multisig, privKeys := twoOfThreeMultisig(t)
	message := []byte("solo machine sign bytes")

	bitarray := NewCompactBitArray(3)
	bitarray.SetIndex(0, true)

	sig := MultiSignatureData{
		Bitarray: bitarray,
		Signatures: []SignatureData{
			SingleSignatureData{Signature: ed25519.Sign(privKeys[0], message)},
		},
	}

	if err := Verify(multisig, message, sig); err == nil {
		t.Fatal("expected error when fewer signatures than threshold are provided")
	}
}

func TestVerifyMultisigWrongBitarrayLengthRejected(t *testing.T) {
	multisig, _ := twoOfThreeMultisig(t)
	sig := MultiSignatureData{Bitarray: NewCompactBitArray(2)}
	if err := Verify(multisig, []byte("x"), sig); err == nil {
		t.Fatal("expected error when bitarray length does not match public key count")
	}
}

func TestVerifyMultisigOneBadChildSignatureRejected(t *testing.T) {
	multisig, privKeys := twoOfThreeMultisig(t)
	message := []byte("solo machine sign bytes")

	bitarray := NewCompactBitArray(3)
	bitarray.SetIndex(0, true)
	bitarray.SetIndex(1, true)

	sig := MultiSignatureData{
		Bitarray: bitarray,
		Signatures: []SignatureData{
			SingleSignatureData{Signature: ed25519.Sign(privKeys[0], message)},
			SingleSignatureData{Signature: ed25519.Sign(privKeys[2], message)}, // wrong child key
		},
	}

	if err := Verify(multisig, message, sig); err == nil {
		t.Fatal("expected error when a referenced child signature does not verify")
	}
}
