// Package signerapi provides the one concrete cryptokeys.Signer this
// module ships so it is runnable without a remote signing plugin:
// MnemonicSigner, a secp256k1 key derived from a BIP-39 mnemonic and a
// BIP-32/BIP-44 HD path, grounded in the original Rust mnemonic signer.
package signerapi

import (
	"context"
	"crypto/ecdsa"
	"crypto/sha256"
	"fmt"
	"strconv"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"

	"github.com/soloibc/solo-machine/internal/cryptokeys"
	"github.com/soloibc/solo-machine/internal/ibcerrors"
)

// DefaultHDPath is cosmos-sdk's standard secp256k1 derivation path
// (m/44'/118'/0'/0/0).
const DefaultHDPath = "m/44'/118'/0'/0/0"

// MnemonicSigner derives a secp256k1 key from a BIP-39 mnemonic and
// signs with it directly; no remote call, no hardware device.
type MnemonicSigner struct {
	privateKey    *ecdsa.PrivateKey
	publicKey     cryptokeys.Secp256k1PublicKey
	accountPrefix string
}

// NewMnemonicSigner derives a signer from mnemonic (a BIP-39 phrase),
// hdPath (e.g. DefaultHDPath), and accountPrefix (the bech32 HRP used
// to render the signer's address).
func NewMnemonicSigner(mnemonic, hdPath, accountPrefix string) (*MnemonicSigner, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("%w: invalid mnemonic checksum", ibcerrors.ErrInputValidation)
	}
	seed := bip39.NewSeed(mnemonic, "")

	keyBytes, err := deriveHD(seed, hdPath)
	if err != nil {
		return nil, fmt.Errorf("%w: deriving key at %s: %v", ibcerrors.ErrInputValidation, hdPath, err)
	}

	privateKey, err := ethcrypto.ToECDSA(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: deriving secp256k1 private key: %v", ibcerrors.ErrInputValidation, err)
	}
	compressed := secp256k1.PrivKeyFromBytes(keyBytes).PubKey().SerializeCompressed()

	return &MnemonicSigner{
		privateKey:    privateKey,
		publicKey:     cryptokeys.Secp256k1PublicKey{Compressed: compressed},
		accountPrefix: accountPrefix,
	}, nil
}

// ToPublicKey returns the signer's secp256k1 public key.
func (s *MnemonicSigner) ToPublicKey() (cryptokeys.PublicKey, error) {
	return s.publicKey, nil
}

// AccountPrefix returns the bech32 HRP this signer renders its address
// under.
func (s *MnemonicSigner) AccountPrefix() string {
	return s.accountPrefix
}

// ToAccountAddress renders the signer's bech32 account address.
func (s *MnemonicSigner) ToAccountAddress() (string, error) {
	addr, err := s.publicKey.Address()
	if err != nil {
		return "", err
	}
	return cryptokeys.Bech32Address(s.accountPrefix, addr)
}

// Sign signs message.Bytes over its SHA-256 digest with the derived
// secp256k1 key, matching the hashing convention cryptokeys.Verify
// expects for Secp256k1PublicKey. requestID is accepted for interface
// compatibility with remote signers and is otherwise unused, since
// there is no audit log to correlate against here.
func (s *MnemonicSigner) Sign(ctx context.Context, requestID *string, message cryptokeys.SignMessage) ([]byte, error) {
	digest := sha256.Sum256(message.Bytes)
	sig, err := ethcrypto.Sign(digest[:], s.privateKey)
	if err != nil {
		return nil, fmt.Errorf("signing digest: %w", err)
	}
	// sig is R || S || recovery-id; cryptokeys.Verify's secp256k1 path
	// only needs the first 64 bytes.
	return sig[:64], nil
}

// deriveHD walks path (e.g. "m/44'/118'/0'/0/0") from seed using
// BIP-32 hardened/non-hardened child derivation, the same library and
// pattern the pack's Ethereum wallet generator uses for its own BIP-44
// derivation.
func deriveHD(seed []byte, path string) ([]byte, error) {
	segments, err := parseHDPath(path)
	if err != nil {
		return nil, err
	}

	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("deriving master key: %w", err)
	}
	for _, segment := range segments {
		key, err = key.NewChildKey(segment)
		if err != nil {
			return nil, fmt.Errorf("deriving child key: %w", err)
		}
	}
	return key.Key, nil
}

// parseHDPath turns "m/44'/118'/0'/0/0" into BIP-32 child indices,
// applying bip32.FirstHardenedChild to any segment suffixed with '.
func parseHDPath(path string) ([]uint32, error) {
	parts := strings.Split(path, "/")
	if len(parts) == 0 || parts[0] != "m" {
		return nil, fmt.Errorf("hd path must start with \"m\", got %q", path)
	}

	segments := make([]uint32, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := strings.HasSuffix(part, "'")
		part = strings.TrimSuffix(part, "'")
		index, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parsing path segment %q: %w", part, err)
		}
		if hardened {
			segments = append(segments, bip32.FirstHardenedChild+uint32(index))
		} else {
			segments = append(segments, uint32(index))
		}
	}
	return segments, nil
}
