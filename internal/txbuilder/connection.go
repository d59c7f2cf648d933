package txbuilder

import (
	"context"

	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/identifiers"
	"github.com/soloibc/solo-machine/internal/pb"
)

// connectionVersions is the single version every connection the solo
// machine opens proposes, per §4.4 step 6.
func connectionVersions() []*pb.Version {
	return []*pb.Version{{
		Identifier: "1",
		Features:   []string{"ORDER_ORDERED", "ORDER_UNORDERED"},
	}}
}

// BuildConnectionOpenInit assembles MsgConnectionOpenInit on the
// counterparty chain, the first step of §4.4's handshake.
func (b *Builder) BuildConnectionOpenInit(clientID, counterpartyClientID string) (*pb.MsgConnectionOpenInit, error) {
	signerAddr, err := b.signerAddress()
	if err != nil {
		return nil, err
	}
	return &pb.MsgConnectionOpenInit{
		ClientId: clientID,
		Counterparty: &pb.Counterparty{
			ClientId:     counterpartyClientID,
			ConnectionId: "",
			Prefix:       &pb.MerklePrefix{KeyPrefix: []byte(identifiers.IBCStorePrefix)},
		},
		DelayPeriod: 0,
		Signer:      signerAddr,
	}, nil
}

// NewLocalConnectionEnd builds the TryOpen-state ConnectionEnd the
// solo-machine side stores locally after connection_open_try, per §4.4
// step 6.
func NewLocalConnectionEnd(tendermintClientID, soloClientID, soloConnectionID string) *pb.ConnectionEnd {
	return &pb.ConnectionEnd{
		ClientId: tendermintClientID,
		Versions: connectionVersions(),
		State:    pb.ConnectionStateTryOpen,
		Counterparty: &pb.Counterparty{
			ClientId:     soloClientID,
			ConnectionId: soloConnectionID,
			Prefix:       &pb.MerklePrefix{KeyPrefix: []byte(identifiers.IBCStorePrefix)},
		},
		DelayPeriod: 0,
	}
}

// BuildConnectionOpenAck assembles MsgConnectionOpenAck on the
// counterparty chain, proving the locally stored TryOpen ConnectionEnd,
// per §4.4 step 7. clientStateAny is the solo-machine's current client
// state as the counterparty will re-derive it.
func (b *Builder) BuildConnectionOpenAck(
	ctx context.Context,
	connectionID, counterpartyConnectionID string,
	sequence, timestamp uint64,
	localConnectionEnd *pb.ConnectionEnd,
	clientStateAny *pb.Any,
	proofHeight *pb.Height,
) (*pb.MsgConnectionOpenAck, error) {
	connectionEndBytes, err := codec.Marshal(localConnectionEnd)
	if err != nil {
		return nil, err
	}
	proof, err := b.BuildProofBytes(ctx, sequence, timestamp, identifiers.ConnectionPath(connectionID), connectionEndBytes)
	if err != nil {
		return nil, err
	}
	signerAddr, err := b.signerAddress()
	if err != nil {
		return nil, err
	}
	return &pb.MsgConnectionOpenAck{
		ConnectionId:             connectionID,
		CounterpartyConnectionId: counterpartyConnectionID,
		Version:                  connectionVersions()[0],
		ClientState:              clientStateAny,
		ProofHeight:              proofHeight,
		ProofTry:                 proof,
		Signer:                   signerAddr,
	}, nil
}

// ConfirmLocalConnectionEnd returns a copy of connectionEnd transitioned
// to Open, the local-only state change of §4.4 step 8
// (connection_open_confirm never reaches the counterparty chain).
func ConfirmLocalConnectionEnd(connectionEnd *pb.ConnectionEnd) *pb.ConnectionEnd {
	confirmed := *connectionEnd
	confirmed.State = pb.ConnectionStateOpen
	return &confirmed
}
