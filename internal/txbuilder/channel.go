package txbuilder

import (
	"context"

	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/identifiers"
	"github.com/soloibc/solo-machine/internal/pb"
)

// ics20Version is the single application version every transfer channel
// the solo machine opens negotiates, per §4.4 step 10.
const ics20Version = "ics20-1"

// BuildChannelOpenInit assembles MsgChannelOpenInit on the counterparty
// chain, the first step of §4.4's channel handshake.
func (b *Builder) BuildChannelOpenInit(connectionID string) (*pb.MsgChannelOpenInit, error) {
	signerAddr, err := b.signerAddress()
	if err != nil {
		return nil, err
	}
	return &pb.MsgChannelOpenInit{
		PortId: b.PortID,
		Channel: &pb.Channel{
			State:    pb.ChannelStateInit,
			Ordering: pb.OrderUnordered,
			Counterparty: &pb.ChannelCounterparty{
				PortId:    b.PortID,
				ChannelId: "",
			},
			ConnectionHops: []string{connectionID},
			Version:        ics20Version,
		},
		Signer: signerAddr,
	}, nil
}

// NewLocalChannel builds the TryOpen-state Channel the solo-machine
// side stores locally after channel_open_try, per §4.4 step 10.
func NewLocalChannel(connectionID, counterpartyPortID, counterpartyChannelID string) *pb.Channel {
	return &pb.Channel{
		State:    pb.ChannelStateTryOpen,
		Ordering: pb.OrderUnordered,
		Counterparty: &pb.ChannelCounterparty{
			PortId:    counterpartyPortID,
			ChannelId: counterpartyChannelID,
		},
		ConnectionHops: []string{connectionID},
		Version:        ics20Version,
	}
}

// BuildChannelOpenAck assembles MsgChannelOpenAck on the counterparty
// chain, proving the locally stored TryOpen Channel, per §4.4 step 11.
func (b *Builder) BuildChannelOpenAck(
	ctx context.Context,
	channelID, counterpartyChannelID string,
	sequence, timestamp uint64,
	localChannel *pb.Channel,
	proofHeight *pb.Height,
) (*pb.MsgChannelOpenAck, error) {
	channelBytes, err := codec.Marshal(localChannel)
	if err != nil {
		return nil, err
	}
	proof, err := b.BuildProofBytes(ctx, sequence, timestamp, identifiers.ChannelEndPath(b.PortID, channelID), channelBytes)
	if err != nil {
		return nil, err
	}
	signerAddr, err := b.signerAddress()
	if err != nil {
		return nil, err
	}
	return &pb.MsgChannelOpenAck{
		PortId:                b.PortID,
		ChannelId:             channelID,
		CounterpartyChannelId: counterpartyChannelID,
		CounterpartyVersion:   ics20Version,
		ProofTry:              proof,
		ProofHeight:           proofHeight,
		Signer:                signerAddr,
	}, nil
}

// ConfirmLocalChannel returns a copy of channel transitioned to Open,
// the local-only state change of §4.4 step 12
// (channel_open_confirm never reaches the counterparty chain).
func ConfirmLocalChannel(channel *pb.Channel) *pb.Channel {
	confirmed := *channel
	confirmed.State = pb.ChannelStateOpen
	return &confirmed
}
