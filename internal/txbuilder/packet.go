package txbuilder

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/identifiers"
	"github.com/soloibc/solo-machine/internal/pb"
)

// PacketCommitment computes
// Sha256(be64(timeout_timestamp) || be64(revision) || be64(height) || Sha256(data))
// per §4.3 and §8's packet-commitment property.
func PacketCommitment(timeoutTimestamp uint64, timeoutHeight *pb.Height, data []byte) []byte {
	dataHash := sha256.Sum256(data)

	inner := make([]byte, 0, 8*3+len(dataHash))
	inner = binary.BigEndian.AppendUint64(inner, timeoutTimestamp)
	inner = binary.BigEndian.AppendUint64(inner, timeoutHeight.GetRevisionNumber())
	inner = binary.BigEndian.AppendUint64(inner, timeoutHeight.GetRevisionHeight())
	inner = append(inner, dataHash[:]...)

	outer := sha256.Sum256(inner)
	return outer[:]
}

// PacketAcknowledgementDigest computes Sha256(acknowledgement_bytes),
// the data proven for a packet-acknowledgement proof.
func PacketAcknowledgementDigest(acknowledgement []byte) []byte {
	sum := sha256.Sum256(acknowledgement)
	return sum[:]
}

// BuildPacketCommitmentProof signs the commitment of packet under the
// packet-commitment path, for use in MsgRecvPacket.proof_commitment.
func (b *Builder) BuildPacketCommitmentProof(ctx context.Context, sequence, timestamp uint64, packet *pb.Packet) ([]byte, error) {
	path := identifiers.PacketCommitmentPath(packet.SourcePort, packet.SourceChannel, packet.Sequence)
	commitment := PacketCommitment(packet.TimeoutTimestamp, packet.TimeoutHeight, packet.Data)
	return b.BuildProofBytes(ctx, sequence, timestamp, path, commitment)
}

// BuildPacketAcknowledgementProof signs the digest of acknowledgement
// under the packet-acknowledgement path, for use in
// MsgAcknowledgement.proof_acked.
func (b *Builder) BuildPacketAcknowledgementProof(ctx context.Context, sequence, timestamp uint64, packet *pb.Packet, acknowledgement []byte) ([]byte, error) {
	path := identifiers.PacketAcknowledgementPath(packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
	digest := PacketAcknowledgementDigest(acknowledgement)
	return b.BuildProofBytes(ctx, sequence, timestamp, path, digest)
}

// BuildTokenTransferPacketData JSON-encodes the ICS-20 packet payload,
// per §4.5 (JSON, not protobuf, into Packet.Data).
func BuildTokenTransferPacketData(denom, amount, sender, receiver, memo string) ([]byte, error) {
	data := pb.FungibleTokenPacketData{
		Denom:    denom,
		Amount:   amount,
		Sender:   sender,
		Receiver: receiver,
		Memo:     memo,
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshaling token transfer packet data: %w", err)
	}
	return raw, nil
}

// BuildRecvPacket assembles MsgRecvPacket for packet, proven at
// proofHeight against the chain's current sequence/timestamp.
func (b *Builder) BuildRecvPacket(ctx context.Context, sequence, timestamp uint64, packet *pb.Packet, proofHeight *pb.Height) (*pb.MsgRecvPacket, error) {
	proof, err := b.BuildPacketCommitmentProof(ctx, sequence, timestamp, packet)
	if err != nil {
		return nil, err
	}
	signerAddr, err := b.signerAddress()
	if err != nil {
		return nil, err
	}
	return &pb.MsgRecvPacket{
		Packet:          packet,
		ProofCommitment: proof,
		ProofHeight:     proofHeight,
		Signer:          signerAddr,
	}, nil
}

// BuildAcknowledgement assembles MsgAcknowledgement for packet, with the
// standard successful-transfer acknowledgement body {"result":[1]}.
func (b *Builder) BuildAcknowledgement(ctx context.Context, sequence, timestamp uint64, packet *pb.Packet, proofHeight *pb.Height) (*pb.MsgAcknowledgement, error) {
	ack, err := json.Marshal(pb.PacketAcknowledgement{Result: []int{1}})
	if err != nil {
		return nil, fmt.Errorf("marshaling packet acknowledgement: %w", err)
	}
	proof, err := b.BuildPacketAcknowledgementProof(ctx, sequence, timestamp, packet, ack)
	if err != nil {
		return nil, err
	}
	signerAddr, err := b.signerAddress()
	if err != nil {
		return nil, err
	}
	return &pb.MsgAcknowledgement{
		Packet:          packet,
		Acknowledgement: ack,
		ProofAcked:      proof,
		ProofHeight:     proofHeight,
		Signer:          signerAddr,
	}, nil
}

// BuildTransfer assembles MsgTransfer{...} for sending amount/denom
// over sourceChannel to receiver, per §4.5's receive_from_chain step 2.
func (b *Builder) BuildTransfer(sourceChannel string, amount, denom, receiver string, timeoutHeight *pb.Height, memo string) (*pb.MsgTransfer, error) {
	signerAddr, err := b.signerAddress()
	if err != nil {
		return nil, err
	}
	return &pb.MsgTransfer{
		SourcePort:       b.PortID,
		SourceChannel:    sourceChannel,
		Token:            &pb.Coin{Denom: denom, Amount: amount},
		Sender:           signerAddr,
		Receiver:         receiver,
		TimeoutHeight:    timeoutHeight,
		TimeoutTimestamp: 0,
		Memo:             memo,
	}, nil
}

// ToAny wraps a built message in its Any envelope, ready for TxBody.
func ToAny(typeURL string, msg codec.ProtoMessage) (*pb.Any, error) {
	return codec.ToAny(typeURL, msg)
}
