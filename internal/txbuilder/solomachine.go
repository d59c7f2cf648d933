package txbuilder

import (
	"context"
	"fmt"

	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/cryptokeys"
	"github.com/soloibc/solo-machine/internal/pb"
)

// BuildCreateSoloMachineClient constructs MsgCreateClient wrapping a
// fresh v2/v3 SoloMachineClientState{sequence, is_frozen=false,
// consensus_state}, per §4.3's msg_create_solo_machine_client.
func (b *Builder) BuildCreateSoloMachineClient(ctx context.Context, sequence, timestamp uint64) (*pb.MsgCreateClient, error) {
	publicKey, err := b.Signer.ToPublicKey()
	if err != nil {
		return nil, fmt.Errorf("fetching solo machine public key: %w", err)
	}
	pubKeyAny, err := codec.PublicKeyToAny(publicKey)
	if err != nil {
		return nil, err
	}

	consensusState := &pb.SoloMachineConsensusState{
		PublicKey:   pubKeyAny,
		Diversifier: b.Diversifier,
		Timestamp:   timestamp,
	}
	clientState := &pb.SoloMachineClientState{
		Sequence:       sequence,
		IsFrozen:       false,
		ConsensusState: consensusState,
	}

	clientStateAny, err := codec.ToAny(codec.TypeURLSoloMachineClientState, clientState)
	if err != nil {
		return nil, err
	}
	consensusStateAny, err := codec.ToAny(codec.TypeURLSoloMachineConsensusState, consensusState)
	if err != nil {
		return nil, err
	}
	signerAddr, err := b.signerAddress()
	if err != nil {
		return nil, err
	}

	return &pb.MsgCreateClient{
		ClientState:    clientStateAny,
		ConsensusState: consensusStateAny,
		Signer:         signerAddr,
	}, nil
}

// BuildUpdateSoloMachineClient constructs MsgUpdateClient carrying a
// SoloMachineHeader that rotates the client's public key and/or
// diversifier, per §4.3's msg_update_solo_machine_client. Pass the
// signer's current public key and diversifier to re-assert them
// unchanged, or different values to rotate.
func (b *Builder) BuildUpdateSoloMachineClient(
	ctx context.Context,
	clientID string,
	sequence, timestamp uint64,
	newPublicKey cryptokeys.PublicKey,
	newDiversifier string,
) (*pb.MsgUpdateClient, error) {
	newPubKeyAny, err := codec.PublicKeyToAny(newPublicKey)
	if err != nil {
		return nil, err
	}

	headerData := &pb.HeaderData{NewPubKey: newPubKeyAny, NewDiversifier: newDiversifier}
	headerDataBytes, err := codec.Marshal(headerData)
	if err != nil {
		return nil, err
	}

	sigData, err := b.signHeaderProof(ctx, sequence, timestamp, headerDataBytes)
	if err != nil {
		return nil, err
	}

	header := &pb.SoloMachineHeader{
		Timestamp:      timestamp,
		Signature:      sigData.Signature,
		NewPublicKey:   newPubKeyAny,
		NewDiversifier: newDiversifier,
	}
	headerAny, err := codec.ToAny(codec.TypeURLSoloMachineHeader, header)
	if err != nil {
		return nil, err
	}
	signerAddr, err := b.signerAddress()
	if err != nil {
		return nil, err
	}

	return &pb.MsgUpdateClient{
		ClientId: clientID,
		Header:   headerAny,
		Signer:   signerAddr,
	}, nil
}
