// Package codec wraps gogoproto's reflection-based Marshal/Unmarshal with
// the Any type-URL conventions the rest of the solo-machine core depends
// on to pack and unpack polymorphic client states, consensus states,
// headers, public keys, and messages.
package codec

import (
	"fmt"

	"github.com/cosmos/gogoproto/proto"

	"github.com/soloibc/solo-machine/internal/ibcerrors"
	"github.com/soloibc/solo-machine/internal/pb"
)

// Type URLs for every concrete message the core packs into an Any.
const (
	TypeURLSecp256k1PublicKey    = "/cosmos.crypto.secp256k1.PubKey"
	TypeURLEd25519PublicKey      = "/cosmos.crypto.ed25519.PubKey"
	TypeURLEthSecp256k1PublicKey = "/ethermint.crypto.v1.ethsecp256k1.PubKey"
	TypeURLMultisigPublicKey     = "/cosmos.crypto.multisig.LegacyAminoPubKey"

	TypeURLSoloMachineClientState    = "/ibc.lightclients.solomachine.v3.ClientState"
	TypeURLSoloMachineConsensusState = "/ibc.lightclients.solomachine.v3.ConsensusState"
	TypeURLSoloMachineHeader         = "/ibc.lightclients.solomachine.v3.Header"

	TypeURLTendermintClientState    = "/ibc.lightclients.tendermint.v1.ClientState"
	TypeURLTendermintConsensusState = "/ibc.lightclients.tendermint.v1.ConsensusState"

	TypeURLBaseAccount = "/cosmos.auth.v1beta1.BaseAccount"
	TypeURLEthAccount  = "/ethermint.types.v1.EthAccount"

	TypeURLMsgCreateClient           = "/ibc.core.client.v1.MsgCreateClient"
	TypeURLMsgUpdateClient           = "/ibc.core.client.v1.MsgUpdateClient"
	TypeURLMsgConnectionOpenInit     = "/ibc.core.connection.v1.MsgConnectionOpenInit"
	TypeURLMsgConnectionOpenTry      = "/ibc.core.connection.v1.MsgConnectionOpenTry"
	TypeURLMsgConnectionOpenAck      = "/ibc.core.connection.v1.MsgConnectionOpenAck"
	TypeURLMsgConnectionOpenConfirm = "/ibc.core.connection.v1.MsgConnectionOpenConfirm"
	TypeURLMsgChannelOpenInit        = "/ibc.core.channel.v1.MsgChannelOpenInit"
	TypeURLMsgChannelOpenTry         = "/ibc.core.channel.v1.MsgChannelOpenTry"
	TypeURLMsgChannelOpenAck         = "/ibc.core.channel.v1.MsgChannelOpenAck"
	TypeURLMsgChannelOpenConfirm     = "/ibc.core.channel.v1.MsgChannelOpenConfirm"
	TypeURLMsgTransfer               = "/ibc.applications.transfer.v1.MsgTransfer"
	TypeURLMsgRecvPacket             = "/ibc.core.channel.v1.MsgRecvPacket"
	TypeURLMsgAcknowledgement        = "/ibc.core.channel.v1.MsgAcknowledgement"
)

// ProtoMessage is the subset of proto.Message every pb type satisfies via
// its Reset/String/ProtoMessage trio.
type ProtoMessage interface {
	Reset()
	String() string
	ProtoMessage()
}

// ToAny marshals msg and wraps it with typeURL, the Any convention every
// polymorphic field in the message set uses.
func ToAny(typeURL string, msg ProtoMessage) (*pb.Any, error) {
	value, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: marshaling %s: %v", ibcerrors.ErrProtocolMismatch, typeURL, err)
	}
	return &pb.Any{TypeUrl: typeURL, Value: value}, nil
}

// FromAny unmarshals any.Value into out, requiring any.TypeUrl to match
// wantTypeURL exactly.
func FromAny(any *pb.Any, wantTypeURL string, out ProtoMessage) error {
	if any == nil {
		return fmt.Errorf("%w: nil Any, expected %s", ibcerrors.ErrProtocolMismatch, wantTypeURL)
	}
	if any.TypeUrl != wantTypeURL {
		return fmt.Errorf("%w: Any type url %s does not match expected %s",
			ibcerrors.ErrProtocolMismatch, any.TypeUrl, wantTypeURL)
	}
	if err := proto.Unmarshal(any.Value, out); err != nil {
		return fmt.Errorf("%w: unmarshaling %s: %v", ibcerrors.ErrProtocolMismatch, wantTypeURL, err)
	}
	return nil
}

// Marshal is a thin re-export so callers that only need the raw
// reflection-based encoder (e.g. to produce ibc_data.data bytes) don't
// need to import gogoproto/proto directly.
func Marshal(msg ProtoMessage) ([]byte, error) {
	value, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("%w: marshaling message: %v", ibcerrors.ErrProtocolMismatch, err)
	}
	return value, nil
}

// Unmarshal is Marshal's inverse.
func Unmarshal(data []byte, out ProtoMessage) error {
	if err := proto.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: unmarshaling message: %v", ibcerrors.ErrProtocolMismatch, err)
	}
	return nil
}
