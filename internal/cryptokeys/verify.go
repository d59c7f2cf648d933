package cryptokeys

import (
	"crypto/ed25519"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/soloibc/solo-machine/internal/ibcerrors"
)

// Verify checks sig against message under key, dispatching on the
// (PublicKey, SignatureData) pair per §4.2. message is the exact digest
// the signer signed over; no prehashing happens here.
func Verify(key PublicKey, message []byte, sig SignatureData) error {
	switch k := key.(type) {
	case Secp256k1PublicKey:
		single, ok := sig.(SingleSignatureData)
		if !ok {
			return errInvalidKeyForSignatureType(key, sig)
		}
		return verifySecp256k1(k.Compressed, message, single.Signature)

	case EthSecp256k1PublicKey:
		single, ok := sig.(SingleSignatureData)
		if !ok {
			return errInvalidKeyForSignatureType(key, sig)
		}
		return verifyEthSecp256k1(k.Uncompressed, message, single.Signature)

	case Ed25519PublicKey:
		single, ok := sig.(SingleSignatureData)
		if !ok {
			return errInvalidKeyForSignatureType(key, sig)
		}
		if len(single.Signature) != ed25519.SignatureSize {
			return fmt.Errorf("%w: ed25519 signature must be %d bytes, got %d",
				ibcerrors.ErrInvariantViolation, ed25519.SignatureSize, len(single.Signature))
		}
		if len(k.Raw) != ed25519.PublicKeySize {
			return fmt.Errorf("%w: ed25519 public key must be %d bytes, got %d",
				ibcerrors.ErrInvariantViolation, ed25519.PublicKeySize, len(k.Raw))
		}
		if !ed25519.Verify(ed25519.PublicKey(k.Raw), message, single.Signature) {
			return fmt.Errorf("%w: ed25519 signature verification failed", ibcerrors.ErrInvariantViolation)
		}
		return nil

	case MultisigPublicKey:
		multi, ok := sig.(MultiSignatureData)
		if !ok {
			return errInvalidKeyForSignatureType(key, sig)
		}
		return verifyMultisig(k, message, multi)

	default:
		return errInvalidKeyForSignatureType(key, sig)
	}
}

func verifySecp256k1(compressed, message, sig []byte) error {
	if len(sig) != 64 {
		return fmt.Errorf("%w: secp256k1 signature must be 64 bytes, got %d", ibcerrors.ErrInvariantViolation, len(sig))
	}
	pubKey, err := secp256k1.ParsePubKey(compressed)
	if err != nil {
		return fmt.Errorf("%w: parsing secp256k1 public key: %v", ibcerrors.ErrInputValidation, err)
	}
	var r, s secp256k1.ModNScalar
	r.SetByteSlice(sig[:32])
	s.SetByteSlice(sig[32:])
	signature := ecdsa.NewSignature(&r, &s)
	if !signature.Verify(message, pubKey) {
		return fmt.Errorf("%w: secp256k1 signature verification failed", ibcerrors.ErrInvariantViolation)
	}
	return nil
}

func verifyEthSecp256k1(uncompressed, message, sig []byte) error {
	if len(sig) != 64 && len(sig) != 65 {
		return fmt.Errorf("%w: eth_secp256k1 signature must be 64 or 65 bytes, got %d", ibcerrors.ErrInvariantViolation, len(sig))
	}
	if !ethcrypto.VerifySignature(uncompressed, message, sig[:64]) {
		return fmt.Errorf("%w: eth_secp256k1 signature verification failed", ibcerrors.ErrInvariantViolation)
	}
	return nil
}

// verifyMultisig requires at least Threshold of the referenced child keys
// to individually verify against the same message, per §4.3's walk: N =
// len(public_keys), T = threshold; bitarray.Len == N; T <= len(sigs) <= N;
// and the number of set bits in bitarray[0..N] >= T.
func verifyMultisig(key MultisigPublicKey, message []byte, sig MultiSignatureData) error {
	n := len(key.PublicKeys)
	threshold := int(key.Threshold)

	if sig.Bitarray == nil || sig.Bitarray.Len() != n {
		return fmt.Errorf("%w: multisig bitarray length %d does not match %d public keys",
			ibcerrors.ErrInvariantViolation, sig.Bitarray.Len(), n)
	}
	if len(sig.Signatures) < threshold || len(sig.Signatures) > n {
		return fmt.Errorf("%w: multisig has %d signatures, want between threshold %d and %d",
			ibcerrors.ErrInvariantViolation, len(sig.Signatures), threshold, n)
	}
	if sig.Bitarray.countSetBits(n) < threshold {
		return fmt.Errorf("%w: multisig bitarray has fewer than threshold %d bits set", ibcerrors.ErrInvariantViolation, threshold)
	}

	sigIndex := 0
	verified := 0
	for i := 0; i < n; i++ {
		if !sig.Bitarray.GetIndex(i) {
			continue
		}
		if sigIndex >= len(sig.Signatures) {
			return fmt.Errorf("%w: multisig bitarray references more signatures than provided", ibcerrors.ErrInvariantViolation)
		}
		if err := Verify(key.PublicKeys[i], message, sig.Signatures[sigIndex]); err != nil {
			return fmt.Errorf("verifying multisig child %d: %w", i, err)
		}
		sigIndex++
		verified++
	}

	if verified < threshold {
		return fmt.Errorf("%w: only %d of required %d multisig signatures verified", ibcerrors.ErrInvariantViolation, verified, threshold)
	}
	return nil
}
