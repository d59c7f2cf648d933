// Package txbuilder assembles the IBC protocol messages the solo
// machine broadcasts and computes the solo-machine signature "proof"
// that stands in for a Merkle proof at every handshake and packet step.
package txbuilder

import (
	"context"
	"fmt"

	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/cryptokeys"
	"github.com/soloibc/solo-machine/internal/ibcerrors"
	"github.com/soloibc/solo-machine/internal/identifiers"
	"github.com/soloibc/solo-machine/internal/pb"
)

// Builder holds the configuration every message- and proof-construction
// method needs: the signer backing the solo machine's key, its
// diversifier, the fee it pays, and the port it opens channels on.
type Builder struct {
	Signer      cryptokeys.Signer
	Diversifier string
	PortID      string
	FeeAmount   string
	FeeDenom    string
	FeeGasLimit uint64
}

// New constructs a Builder.
func New(signer cryptokeys.Signer, diversifier, portID, feeAmount, feeDenom string, feeGasLimit uint64) *Builder {
	return &Builder{
		Signer:      signer,
		Diversifier: diversifier,
		PortID:      portID,
		FeeAmount:   feeAmount,
		FeeDenom:    feeDenom,
		FeeGasLimit: feeGasLimit,
	}
}

// signerAddress renders the solo machine's bech32 account address, used
// as the `signer` field on every outbound message.
func (b *Builder) signerAddress() (string, error) {
	addr, err := b.Signer.ToAccountAddress()
	if err != nil {
		return "", fmt.Errorf("%w: deriving signer address: %v", ibcerrors.ErrInvariantViolation, err)
	}
	return addr, nil
}

// BuildProof signs the canonical SignBytes{sequence, timestamp,
// diversifier, path, data} payload and wraps the result in the
// TimestampedSignatureData envelope every IBC message carries as its
// "proof" field, per §4.3. unprefixedPath is the store path before the
// "ibc" prefix is applied (BuildProof applies it and takes the key at
// index 1 itself, matching "the prefixed path's key at index 1").
func (b *Builder) BuildProof(ctx context.Context, sequence, timestamp uint64, unprefixedPath identifiers.Path, data []byte) (*pb.TimestampedSignatureData, error) {
	sigData, err := b.signSignBytes(ctx, sequence, timestamp, unprefixedPath, data)
	if err != nil {
		return nil, err
	}
	sigDataBytes, err := codec.Marshal(sigData)
	if err != nil {
		return nil, err
	}
	return &pb.TimestampedSignatureData{SignatureData: sigDataBytes, Timestamp: timestamp}, nil
}

// BuildProofBytes is BuildProof, pre-marshaled to the raw bytes an IBC
// message's proof_* field carries.
func (b *Builder) BuildProofBytes(ctx context.Context, sequence, timestamp uint64, unprefixedPath identifiers.Path, data []byte) ([]byte, error) {
	proof, err := b.BuildProof(ctx, sequence, timestamp, unprefixedPath, data)
	if err != nil {
		return nil, err
	}
	return codec.Marshal(proof)
}

// signSignBytes produces the SignatureData{signature, mode=Unspecified}
// for one SignBytes payload, the primitive every proof kind in §4.3
// builds on.
func (b *Builder) signSignBytes(ctx context.Context, sequence, timestamp uint64, unprefixedPath identifiers.Path, data []byte) (*pb.SignatureData, error) {
	prefixed := unprefixedPath.ApplyPrefix(identifiers.IBCStorePrefix)
	signBytes := &pb.SignBytes{
		Sequence:    sequence,
		Timestamp:   timestamp,
		Diversifier: b.Diversifier,
		Path:        []byte(prefixed.KeyAt(1)),
		Data:        data,
	}
	raw, err := codec.Marshal(signBytes)
	if err != nil {
		return nil, err
	}
	signature, err := b.Signer.Sign(ctx, nil, cryptokeys.NewSignBytesMessage(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: signing solo-machine proof: %v", ibcerrors.ErrInvariantViolation, err)
	}
	return &pb.SignatureData{Signature: signature, Mode: pb.SignatureModeUnspecified}, nil
}

// signHeaderProof signs the sentinel "solomachine:header" path instead
// of a store path, per §9's note that the header proof preserves that
// literal rather than deriving it from a Path.
func (b *Builder) signHeaderProof(ctx context.Context, sequence, timestamp uint64, data []byte) (*pb.SignatureData, error) {
	const headerPath = "solomachine:header"
	signBytes := &pb.SignBytes{
		Sequence:    sequence,
		Timestamp:   timestamp,
		Diversifier: b.Diversifier,
		Path:        []byte(headerPath),
		Data:        data,
	}
	raw, err := codec.Marshal(signBytes)
	if err != nil {
		return nil, err
	}
	signature, err := b.Signer.Sign(ctx, nil, cryptokeys.NewSignBytesMessage(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: signing solo-machine header proof: %v", ibcerrors.ErrInvariantViolation, err)
	}
	return &pb.SignatureData{Signature: signature, Mode: pb.SignatureModeUnspecified}, nil
}
