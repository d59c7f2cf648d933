package codec

import (
	"fmt"

	"github.com/soloibc/solo-machine/internal/cryptokeys"
	"github.com/soloibc/solo-machine/internal/ibcerrors"
	"github.com/soloibc/solo-machine/internal/pb"
)

// PublicKeyToAny packs a cryptokeys.PublicKey into its wire Any form.
// Multisig keys are packed as the length-prefixed LegacyAminoPubKey
// bytes produced by cryptokeys.MultisigPublicKey.KeyBytes, not as a
// protobuf-encoded LegacyAminoPubKey.
func PublicKeyToAny(key cryptokeys.PublicKey) (*pb.Any, error) {
	return &pb.Any{TypeUrl: key.TypeURL(), Value: key.KeyBytes()}, nil
}

// PublicKeyFromAny unpacks a wire Any back into a cryptokeys.PublicKey.
func PublicKeyFromAny(any *pb.Any) (cryptokeys.PublicKey, error) {
	if any == nil {
		return nil, fmt.Errorf("%w: nil public key Any", ibcerrors.ErrProtocolMismatch)
	}
	switch any.TypeUrl {
	case TypeURLSecp256k1PublicKey:
		return cryptokeys.Secp256k1PublicKey{Compressed: any.Value}, nil
	case TypeURLEd25519PublicKey:
		return cryptokeys.Ed25519PublicKey{Raw: any.Value}, nil
	case TypeURLEthSecp256k1PublicKey:
		return cryptokeys.EthSecp256k1PublicKey{Uncompressed: any.Value}, nil
	case TypeURLMultisigPublicKey:
		threshold, children, err := cryptokeys.DecodeLegacyAminoPubKey(any.Value)
		if err != nil {
			return nil, err
		}
		publicKeys := make([]cryptokeys.PublicKey, len(children))
		for i, child := range children {
			childKey, err := PublicKeyFromAny(&pb.Any{TypeUrl: child.TypeURL, Value: child.KeyBytes})
			if err != nil {
				return nil, err
			}
			publicKeys[i] = childKey
		}
		return cryptokeys.MultisigPublicKey{Threshold: threshold, PublicKeys: publicKeys}, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized public key type url %s", ibcerrors.ErrProtocolMismatch, any.TypeUrl)
	}
}
