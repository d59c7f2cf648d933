package cryptokeys

import (
	"bytes"
	"encoding/hex"
	"testing"
)

// fixture: a 33-byte compressed secp256k1 key 0x02 || 01..20, address
// derived as bech32("cosmos", ripemd160(sha256(key))).
func TestSecp256k1AddressFixture(t *testing.T) {
	keyHex := "020102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f20"
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		t.Fatalf("decoding fixture key: %v", err)
	}

	addr, err := Secp256k1Address(key)
	if err != nil {
		t.Fatalf("Secp256k1Address: %v", err)
	}

	wantAddr, _ := hex.DecodeString("2eef74c226d9165fd8bcede31b58bf47300115a0"[:40])
	if !bytes.Equal(addr, wantAddr) {
		t.Fatalf("address = %x, want %x", addr, wantAddr)
	}

	bech32Addr, err := Bech32Address("cosmos", addr)
	if err != nil {
		t.Fatalf("Bech32Address: %v", err)
	}
	const want = "cosmos19mhhfs3xmyt9lk9uah33kk9lgucqz9dqx3smq2"
	if bech32Addr != want {
		t.Fatalf("bech32 address = %s, want %s", bech32Addr, want)
	}

	hrp, decoded, err := DecodeBech32Address(bech32Addr)
	if err != nil {
		t.Fatalf("DecodeBech32Address: %v", err)
	}
	if hrp != "cosmos" {
		t.Fatalf("hrp = %s, want cosmos", hrp)
	}
	if !bytes.Equal(decoded, addr) {
		t.Fatalf("decoded address = %x, want %x", decoded, addr)
	}
}

func TestSecp256k1AddressRejectsShortKey(t *testing.T) {
	if _, err := Secp256k1Address(make([]byte, 32)); err == nil {
		t.Fatal("expected error for 32-byte key, got nil")
	}
}

func TestEd25519AddressIsTruncatedDigest(t *testing.T) {
	raw := bytes.Repeat([]byte{0x11}, 32)
	addr := Ed25519Address(raw)
	if len(addr) != ed25519AddressSize {
		t.Fatalf("address length = %d, want %d", len(addr), ed25519AddressSize)
	}
}

func TestEthSecp256k1AddressRejectsWrongLength(t *testing.T) {
	if _, err := EthSecp256k1Address(make([]byte, 64)); err == nil {
		t.Fatal("expected error for 64-byte uncompressed key, got nil")
	}
}

func TestMultisigAddressDeterministic(t *testing.T) {
	child := Secp256k1PublicKey{Compressed: bytes.Repeat([]byte{0x02}, 33)}
	pk := MultisigPublicKey{Threshold: 1, PublicKeys: []PublicKey{child}}

	addr1, err := MultisigAddress(pk)
	if err != nil {
		t.Fatalf("MultisigAddress: %v", err)
	}
	addr2, err := MultisigAddress(pk)
	if err != nil {
		t.Fatalf("MultisigAddress: %v", err)
	}
	if !bytes.Equal(addr1, addr2) {
		t.Fatalf("MultisigAddress is not deterministic: %x != %x", addr1, addr2)
	}
	if len(addr1) != 20 {
		t.Fatalf("multisig address length = %d, want 20", len(addr1))
	}
}
