package cryptokeys

import (
	"crypto/sha256"
	"fmt"

	"github.com/cosmos/btcutil/bech32"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // ripemd160 is mandated by the address scheme, not our choice

	"github.com/soloibc/solo-machine/internal/ibcerrors"
)

// ed25519AddressSize truncates the SHA-256 digest to Tendermint's
// 20-byte address convention. The original implementation this module
// ports from had two code paths (a full 32-byte digest and a 20-byte
// truncation); we pin to 20 bytes per the open question in the design
// notes unless a specific counterparty chain is known to require the
// untruncated form.
const ed25519AddressSize = 20

// Secp256k1Address derives a 20-byte address from a 33-byte
// SEC1-compressed secp256k1 public key: ripemd160(sha256(pubkey)).
func Secp256k1Address(compressed []byte) ([]byte, error) {
	if len(compressed) != 33 {
		return nil, fmt.Errorf("%w: secp256k1 public key must be 33 bytes, got %d", ibcerrors.ErrInputValidation, len(compressed))
	}
	shaSum := sha256.Sum256(compressed)
	hasher := ripemd160.New()
	if _, err := hasher.Write(shaSum[:]); err != nil {
		return nil, fmt.Errorf("hashing secp256k1 address: %w", err)
	}
	return hasher.Sum(nil), nil
}

// Ed25519Address derives a 20-byte address from a 32-byte Ed25519 public
// key: the first 20 bytes of sha256(raw).
func Ed25519Address(raw []byte) []byte {
	digest := sha256.Sum256(raw)
	return digest[:ed25519AddressSize]
}

// EthSecp256k1Address derives a 20-byte address from a 65-byte
// uncompressed secp256k1 point: the last 20 bytes of keccak256(point).
func EthSecp256k1Address(uncompressed []byte) ([]byte, error) {
	if len(uncompressed) != 65 {
		return nil, fmt.Errorf("%w: uncompressed secp256k1 point must be 65 bytes, got %d", ibcerrors.ErrInputValidation, len(uncompressed))
	}
	// Keccak256 is computed over the 64-byte X||Y part, matching
	// go-ethereum's own PubkeyToAddress convention.
	digest := crypto.Keccak256(uncompressed[1:])
	return digest[len(digest)-20:], nil
}

// MultisigAddress derives a 20-byte address from a multisig public key:
// the first 20 bytes of sha256(encodeLegacyAminoPubKey(pk)). That input
// is the custom encoding below, not the protobuf encoding of
// LegacyAminoPubKey, so the result differs from a cosmos-sdk multisig
// address for the same keys.
func MultisigAddress(pk MultisigPublicKey) ([]byte, error) {
	encoded := encodeLegacyAminoPubKey(pk)
	digest := sha256.Sum256(encoded)
	return digest[:20], nil
}

// encodeLegacyAminoPubKey renders a deterministic byte encoding of a
// LegacyAminoPubKey for address hashing: threshold (4-byte big-endian)
// followed by each child key's type URL length-prefixed and key bytes
// length-prefixed, in order.
func encodeLegacyAminoPubKey(pk MultisigPublicKey) []byte {
	out := make([]byte, 0, 64)
	out = appendUint32(out, pk.Threshold)
	for _, child := range pk.PublicKeys {
		out = appendLengthPrefixed(out, []byte(child.TypeURL()))
		out = appendLengthPrefixed(out, child.KeyBytes())
	}
	return out
}

func appendUint32(dst []byte, v uint32) []byte {
	return append(dst, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func appendLengthPrefixed(dst []byte, b []byte) []byte {
	dst = appendUint32(dst, uint32(len(b)))
	return append(dst, b...)
}

// EncodedChildKey is one child entry of a decoded LegacyAminoPubKey: the
// type URL and canonical key bytes the codec package's PublicKeyFromAny
// re-dispatches on to reconstruct that child's concrete PublicKey.
type EncodedChildKey struct {
	TypeURL  string
	KeyBytes []byte
}

// DecodeLegacyAminoPubKey reverses encodeLegacyAminoPubKey, letting the
// codec package round-trip a MultisigPublicKey through its Any encoding
// without this package needing to know about pb.Any.
func DecodeLegacyAminoPubKey(b []byte) (threshold uint32, children []EncodedChildKey, err error) {
	threshold, b, err = readUint32(b)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: reading multisig threshold: %v", ibcerrors.ErrProtocolMismatch, err)
	}
	for len(b) > 0 {
		var typeURL, keyBytes []byte
		typeURL, b, err = readLengthPrefixed(b)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: reading multisig child type url: %v", ibcerrors.ErrProtocolMismatch, err)
		}
		keyBytes, b, err = readLengthPrefixed(b)
		if err != nil {
			return 0, nil, fmt.Errorf("%w: reading multisig child key bytes: %v", ibcerrors.ErrProtocolMismatch, err)
		}
		children = append(children, EncodedChildKey{TypeURL: string(typeURL), KeyBytes: keyBytes})
	}
	return threshold, children, nil
}

func readUint32(b []byte) (uint32, []byte, error) {
	if len(b) < 4 {
		return 0, nil, fmt.Errorf("need 4 bytes, got %d", len(b))
	}
	v := uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
	return v, b[4:], nil
}

func readLengthPrefixed(b []byte) ([]byte, []byte, error) {
	n, rest, err := readUint32(b)
	if err != nil {
		return nil, nil, err
	}
	if uint32(len(rest)) < n {
		return nil, nil, fmt.Errorf("need %d bytes, got %d", n, len(rest))
	}
	return rest[:n], rest[n:], nil
}

// Bech32Address renders addr under hrp, e.g. Bech32Address("cosmos", addr).
func Bech32Address(hrp string, addr []byte) (string, error) {
	converted, err := bech32.ConvertBits(addr, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("%w: converting address bits for bech32: %v", ibcerrors.ErrInputValidation, err)
	}
	encoded, err := bech32.Encode(hrp, converted)
	if err != nil {
		return "", fmt.Errorf("%w: bech32 encoding address: %v", ibcerrors.ErrInputValidation, err)
	}
	return encoded, nil
}

// DecodeBech32Address reverses Bech32Address.
func DecodeBech32Address(s string) (hrp string, addr []byte, err error) {
	hrp, data, err := bech32.Decode(s, 1023)
	if err != nil {
		return "", nil, fmt.Errorf("%w: bech32 decoding %q: %v", ibcerrors.ErrInputValidation, s, err)
	}
	converted, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", nil, fmt.Errorf("%w: converting bech32 data bits: %v", ibcerrors.ErrInputValidation, err)
	}
	return hrp, converted, nil
}
