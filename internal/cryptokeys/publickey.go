// Package cryptokeys implements the solo machine's public-key variants,
// address derivation, signature verification and the Signer capability
// the core depends on for every proof it constructs.
package cryptokeys

import (
	"fmt"

	"github.com/soloibc/solo-machine/internal/ibcerrors"
)

// Well-known type URLs for the PublicKey variants, per the wire format
// section of the spec.
const (
	TypeURLSecp256k1     = "/cosmos.crypto.secp256k1.PubKey"
	TypeURLEd25519       = "/cosmos.crypto.ed25519.PubKey"
	TypeURLMultisig      = "/cosmos.crypto.multisig.LegacyAminoPubKey"
	TypeURLEthSecp256k1  = "/ethermint.crypto.v1.ethsecp256k1.PubKey"
)

// PublicKey is the tagged union over the four supported key variants.
// The concrete type implementing it selects the variant.
type PublicKey interface {
	// TypeURL identifies the variant for the Any codec.
	TypeURL() string
	// KeyBytes returns the variant's canonical encoded key material (the
	// bytes that get wrapped in the variant's proto message).
	KeyBytes() []byte
	// Address derives the account address bytes for this key, per §3's
	// per-variant hashing rules.
	Address() ([]byte, error)
}

// Secp256k1PublicKey wraps a 33-byte SEC1-compressed secp256k1 point.
type Secp256k1PublicKey struct {
	Compressed []byte
}

func (k Secp256k1PublicKey) TypeURL() string  { return TypeURLSecp256k1 }
func (k Secp256k1PublicKey) KeyBytes() []byte { return k.Compressed }
func (k Secp256k1PublicKey) Address() ([]byte, error) {
	return Secp256k1Address(k.Compressed)
}

// Ed25519PublicKey wraps a 32-byte Ed25519 verifying key.
type Ed25519PublicKey struct {
	Raw []byte
}

func (k Ed25519PublicKey) TypeURL() string  { return TypeURLEd25519 }
func (k Ed25519PublicKey) KeyBytes() []byte { return k.Raw }
func (k Ed25519PublicKey) Address() ([]byte, error) {
	return Ed25519Address(k.Raw), nil
}

// EthSecp256k1PublicKey wraps a 65-byte uncompressed secp256k1 point used
// by Ethermint-style chains.
type EthSecp256k1PublicKey struct {
	Uncompressed []byte
}

func (k EthSecp256k1PublicKey) TypeURL() string  { return TypeURLEthSecp256k1 }
func (k EthSecp256k1PublicKey) KeyBytes() []byte { return k.Uncompressed }
func (k EthSecp256k1PublicKey) Address() ([]byte, error) {
	return EthSecp256k1Address(k.Uncompressed)
}

// MultisigPublicKey is a threshold combination of child public keys,
// encoded the way cosmos-sdk's LegacyAminoPubKey is.
type MultisigPublicKey struct {
	Threshold  uint32
	PublicKeys []PublicKey
}

func (k MultisigPublicKey) TypeURL() string { return TypeURLMultisig }

// KeyBytes returns the LegacyAminoPubKey encoding used for address
// hashing: the deterministic length-prefixed concatenation that
// encodeLegacyAminoPubKey (address.go) produces. It is not the protobuf
// encoding of LegacyAminoPubKey.
func (k MultisigPublicKey) KeyBytes() []byte {
	return encodeLegacyAminoPubKey(k)
}

func (k MultisigPublicKey) Address() ([]byte, error) {
	return MultisigAddress(k)
}

// errInvalidKeyForSignatureType mirrors §4.2's InvalidKeyForSignatureType
// condition: a (PublicKey, SignatureData) combination that can never be
// verified together.
func errInvalidKeyForSignatureType(key PublicKey, sig SignatureData) error {
	return fmt.Errorf("%w: invalid key type %T for signature data %T", ibcerrors.ErrInvariantViolation, key, sig)
}
