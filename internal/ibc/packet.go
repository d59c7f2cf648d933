package ibc

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/eventbus"
	"github.com/soloibc/solo-machine/internal/ibcerrors"
	"github.com/soloibc/solo-machine/internal/identifiers"
	"github.com/soloibc/solo-machine/internal/pb"
	"github.com/soloibc/solo-machine/internal/rpcclient"
	"github.com/soloibc/solo-machine/internal/store"
	"github.com/soloibc/solo-machine/internal/txbuilder"
)

// SendToChain moves amount of denom from signer's local balance to
// receiver on chainID's side of an established channel, per §4.5's
// send_to_chain: the solo machine debits locally, commits a packet, and
// proves that commitment to the counterparty chain via MsgRecvPacket
// (the counterparty is the packet's receiving side).
func (s *Service) SendToChain(ctx context.Context, chainID string, amount *big.Int, denom, receiver, memo string) error {
	return s.dbClient.WithTx(ctx, func(tx *store.Tx) error {
		chain, err := s.chains.Get(ctx, tx, chainID)
		if err != nil {
			return err
		}
		if !chain.ConnectionDetails.Valid() {
			return fmt.Errorf("%w: chain %s has not completed the connect handshake yet", ibcerrors.ErrInvariantViolation, chainID)
		}
		details := chain.ConnectionDetails

		signerAddr, err := s.builder.Signer.ToAccountAddress()
		if err != nil {
			return fmt.Errorf("%w: deriving signer address: %v", ibcerrors.ErrInvariantViolation, err)
		}
		if err := s.bank.RemoveTokens(ctx, tx, signerAddr, denom, amount, store.AccountOperationType{Kind: "send", ChainID: chainID}); err != nil {
			return err
		}

		latestHeight, err := s.lightBlocks.LatestHeight(ctx)
		if err != nil {
			return err
		}

		packetData, err := txbuilder.BuildTokenTransferPacketData(denom, amount.String(), signerAddr, receiver, memo)
		if err != nil {
			return err
		}

		packetSequence, err := s.chains.IncrementPacketSequence(ctx, tx, chainID)
		if err != nil {
			return err
		}
		packet := &pb.Packet{
			Sequence:           packetSequence,
			SourcePort:         s.builder.PortID,
			SourceChannel:      details.TendermintChannelID,
			DestinationPort:    s.builder.PortID,
			DestinationChannel: details.SoloMachineChannelID,
			Data:               packetData,
			TimeoutHeight:      &pb.Height{RevisionNumber: 0, RevisionHeight: uint64(latestHeight) + 10},
			TimeoutTimestamp:   0,
		}

		sequence, err := s.chains.IncrementSequence(ctx, tx, chainID)
		if err != nil {
			return err
		}
		timestamp := chain.ConsensusTimestamp
		proofHeight := &pb.Height{RevisionNumber: 0, RevisionHeight: sequence}

		msg, err := s.builder.BuildRecvPacket(ctx, sequence, timestamp, packet, proofHeight)
		if err != nil {
			return err
		}
		if _, err := s.broadcastOne(ctx, chain, codec.TypeURLMsgRecvPacket, msg, memo); err != nil {
			return err
		}

		return s.events.Emit(ctx, eventbus.Event{
			Kind:    eventbus.KindTokensSent,
			ChainID: chainID,
			Data: map[string]any{
				"sequence": packetSequence,
				"denom":    denom,
				"amount":   amount.String(),
				"receiver": receiver,
			},
		})
	})
}

// ReceiveFromChain pulls amount of denom from chainID to receiver over
// an established channel, per §4.5's receive_from_chain: refresh the
// on-chain solo-machine client, submit an ordinary MsgTransfer, then
// acknowledge each packet it produced and credit the local balance.
func (s *Service) ReceiveFromChain(ctx context.Context, chainID string, amount *big.Int, denom, receiver, memo string) error {
	return s.dbClient.WithTx(ctx, func(tx *store.Tx) error {
		chain, err := s.chains.Get(ctx, tx, chainID)
		if err != nil {
			return err
		}
		if !chain.ConnectionDetails.Valid() {
			return fmt.Errorf("%w: chain %s has not completed the connect handshake yet", ibcerrors.ErrInvariantViolation, chainID)
		}
		details := chain.ConnectionDetails

		updatedSequence, err := s.refreshSoloMachineClient(ctx, tx, chain, memo)
		if err != nil {
			return err
		}

		ibcDenom := txbuilder.IBCDenom(s.builder.PortID, details.SoloMachineChannelID, denom)
		timeoutHeight := &pb.Height{RevisionNumber: 0, RevisionHeight: updatedSequence + 1}
		transferMsg, err := s.builder.BuildTransfer(details.SoloMachineChannelID, amount.String(), ibcDenom, receiver, timeoutHeight, memo)
		if err != nil {
			return err
		}
		result, err := s.broadcastOne(ctx, chain, codec.TypeURLMsgTransfer, transferMsg, memo)
		if err != nil {
			return err
		}

		packets, err := parseSendPackets(result.Events)
		if err != nil {
			return err
		}

		var credited bool
		for _, packet := range packets {
			if packet.SourcePort != s.builder.PortID || packet.SourceChannel != details.TendermintChannelID ||
				packet.DestinationPort != s.builder.PortID || packet.DestinationChannel != details.SoloMachineChannelID {
				return fmt.Errorf("%w: send_packet event referenced a port/channel pair outside this connection", ibcerrors.ErrProtocolMismatch)
			}

			var data pb.FungibleTokenPacketData
			if err := json.Unmarshal(packet.Data, &data); err != nil {
				return fmt.Errorf("%w: decoding packet data: %v", ibcerrors.ErrProtocolMismatch, err)
			}

			sequence, err := s.chains.IncrementSequence(ctx, tx, chainID)
			if err != nil {
				return err
			}
			timestamp := chain.ConsensusTimestamp
			proofHeight := &pb.Height{RevisionNumber: 0, RevisionHeight: sequence}

			ackMsg, err := s.builder.BuildAcknowledgement(ctx, sequence, timestamp, packet, proofHeight)
			if err != nil {
				return err
			}
			if _, err := s.broadcastOne(ctx, chain, codec.TypeURLMsgAcknowledgement, ackMsg, memo); err != nil {
				return err
			}

			creditAmount, ok := new(big.Int).SetString(data.Amount, 10)
			if !ok {
				return fmt.Errorf("%w: unparsable packet amount %q", ibcerrors.ErrProtocolMismatch, data.Amount)
			}
			baseDenom := txbuilder.BaseDenomFromTrace(data.Denom)
			if err := s.bank.AddTokens(ctx, tx, data.Receiver, baseDenom, creditAmount, store.AccountOperationType{Kind: "receive", ChainID: chainID}); err != nil {
				return err
			}
			credited = true
		}
		if !credited {
			return fmt.Errorf("%w: MsgTransfer produced no send_packet event", ibcerrors.ErrProtocolMismatch)
		}

		return s.events.Emit(ctx, eventbus.Event{
			Kind:    eventbus.KindTokensReceived,
			ChainID: chainID,
			Data: map[string]any{
				"denom":    denom,
				"amount":   amount.String(),
				"receiver": receiver,
			},
		})
	})
}

// refreshSoloMachineClient is receive_from_chain step 1: broadcast
// msg_update_solo_machine_client asserting the signer's current public
// key and diversifier unchanged, returning the chain's sequence after
// the bump this broadcast consumed.
func (s *Service) refreshSoloMachineClient(ctx context.Context, tx *store.Tx, chain *store.Chain, memo string) (uint64, error) {
	sequence, err := s.chains.IncrementSequence(ctx, tx, chain.ID)
	if err != nil {
		return 0, err
	}
	timestamp := chain.ConsensusTimestamp

	publicKey, err := s.builder.Signer.ToPublicKey()
	if err != nil {
		return 0, fmt.Errorf("%w: fetching signer public key: %v", ibcerrors.ErrInvariantViolation, err)
	}

	msg, err := s.builder.BuildUpdateSoloMachineClient(ctx, chain.ConnectionDetails.SoloMachineClientID, sequence, timestamp, publicKey, s.builder.Diversifier)
	if err != nil {
		return 0, err
	}
	if _, err := s.broadcastOne(ctx, chain, codec.TypeURLMsgUpdateClient, msg, memo); err != nil {
		return 0, err
	}
	if err := s.recordSignerKey(ctx, tx, chain.ID); err != nil {
		return 0, err
	}
	if err := s.advanceConsensusTimestamp(ctx, tx, chain); err != nil {
		return 0, err
	}
	return sequence + 1, nil
}

// parseSendPackets reconstructs every Packet a send_packet event
// described, per §4.5 step 3's attribute set.
func parseSendPackets(events []rpcclient.Event) ([]*pb.Packet, error) {
	var packets []*pb.Packet
	for _, event := range events {
		if event.Type != "send_packet" {
			continue
		}
		packet, err := packetFromEvent(event)
		if err != nil {
			return nil, err
		}
		packets = append(packets, packet)
	}
	return packets, nil
}

func packetFromEvent(event rpcclient.Event) (*pb.Packet, error) {
	sequenceStr, err := requireAttribute(event, "packet_sequence")
	if err != nil {
		return nil, err
	}
	sequence, err := parseUint(sequenceStr)
	if err != nil {
		return nil, err
	}
	srcPort, err := requireAttribute(event, "packet_src_port")
	if err != nil {
		return nil, err
	}
	srcChannel, err := requireAttribute(event, "packet_src_channel")
	if err != nil {
		return nil, err
	}
	dstPort, err := requireAttribute(event, "packet_dst_port")
	if err != nil {
		return nil, err
	}
	dstChannel, err := requireAttribute(event, "packet_dst_channel")
	if err != nil {
		return nil, err
	}
	data, err := requireAttribute(event, "packet_data")
	if err != nil {
		return nil, err
	}
	timeoutHeightStr, err := requireAttribute(event, "packet_timeout_height")
	if err != nil {
		return nil, err
	}
	timeoutRevision, timeoutHeight, err := identifiers.ParseHeightString(timeoutHeightStr)
	if err != nil {
		return nil, err
	}
	timeoutTimestampStr, err := requireAttribute(event, "packet_timeout_timestamp")
	if err != nil {
		return nil, err
	}
	timeoutTimestamp, err := parseUint(timeoutTimestampStr)
	if err != nil {
		return nil, err
	}

	return &pb.Packet{
		Sequence:           sequence,
		SourcePort:         srcPort,
		SourceChannel:      srcChannel,
		DestinationPort:    dstPort,
		DestinationChannel: dstChannel,
		Data:               []byte(data),
		TimeoutHeight:      &pb.Height{RevisionNumber: timeoutRevision, RevisionHeight: timeoutHeight},
		TimeoutTimestamp:   timeoutTimestamp,
	}, nil
}

func requireAttribute(event rpcclient.Event, key string) (string, error) {
	value, ok := event.Attribute(key)
	if !ok {
		return "", fmt.Errorf("%w: send_packet event missing attribute %q", ibcerrors.ErrProtocolMismatch, key)
	}
	return value, nil
}

func parseUint(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parsing numeric attribute %q: %v", ibcerrors.ErrProtocolMismatch, s, err)
	}
	return v, nil
}
