package pb

import "github.com/cosmos/gogoproto/proto"

// SignBytes is the canonical payload a solo machine signs in place of a
// Merkle proof. Field order is load-bearing: it is exactly what the
// counterparty re-derives and hashes when checking the signature, so it
// must match the v2/v3 lightclients.solomachine wire shape byte-for-byte.
type SignBytes struct {
	Sequence    uint64 `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Timestamp   uint64 `protobuf:"varint,2,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Diversifier string `protobuf:"bytes,3,opt,name=diversifier,proto3" json:"diversifier,omitempty"`
	Path        []byte `protobuf:"bytes,4,opt,name=path,proto3" json:"path,omitempty"`
	Data        []byte `protobuf:"bytes,5,opt,name=data,proto3" json:"data,omitempty"`
}

func (m *SignBytes) Reset()         { *m = SignBytes{} }
func (m *SignBytes) String() string { return proto.CompactTextString(m) }
func (*SignBytes) ProtoMessage()    {}

func (m *SignBytes) GetSequence() uint64 {
	if m != nil {
		return m.Sequence
	}
	return 0
}

func (m *SignBytes) GetTimestamp() uint64 {
	if m != nil {
		return m.Timestamp
	}
	return 0
}

func (m *SignBytes) GetDiversifier() string {
	if m != nil {
		return m.Diversifier
	}
	return ""
}

func (m *SignBytes) GetPath() []byte {
	if m != nil {
		return m.Path
	}
	return nil
}

func (m *SignBytes) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

// HeaderData is the `data` payload proven under the sentinel path
// "solomachine:header" when updating a client's public key.
type HeaderData struct {
	NewPubKey      *Any   `protobuf:"bytes,1,opt,name=new_pub_key,json=newPubKey,proto3" json:"new_pub_key,omitempty"`
	NewDiversifier string `protobuf:"bytes,2,opt,name=new_diversifier,json=newDiversifier,proto3" json:"new_diversifier,omitempty"`
}

func (m *HeaderData) Reset()         { *m = HeaderData{} }
func (m *HeaderData) String() string { return proto.CompactTextString(m) }
func (*HeaderData) ProtoMessage()    {}

func (m *HeaderData) GetNewPubKey() *Any {
	if m != nil {
		return m.NewPubKey
	}
	return nil
}

func (m *HeaderData) GetNewDiversifier() string {
	if m != nil {
		return m.NewDiversifier
	}
	return ""
}

// SignatureMode distinguishes a bare signature from a multisig
// combination. Unspecified is what the solo-machine core always emits;
// the other values exist so the wire shape matches the counterparty's
// enum exactly.
type SignatureMode int32

const (
	SignatureModeUnspecified SignatureMode = 0
	SignatureModeSingle      SignatureMode = 1
	SignatureModeMulti       SignatureMode = 2
)

// SignatureData is the proto form of a solo-machine proof's signature,
// always constructed here with Mode Unspecified and a single signature
// per §4.3.
type SignatureData struct {
	Signature []byte        `protobuf:"bytes,1,opt,name=signature,proto3" json:"signature,omitempty"`
	Mode      SignatureMode `protobuf:"varint,2,opt,name=mode,proto3,enum=solomachine.SignatureMode" json:"mode,omitempty"`
}

func (m *SignatureData) Reset()         { *m = SignatureData{} }
func (m *SignatureData) String() string { return proto.CompactTextString(m) }
func (*SignatureData) ProtoMessage()    {}

func (m *SignatureData) GetSignature() []byte {
	if m != nil {
		return m.Signature
	}
	return nil
}

func (m *SignatureData) GetMode() SignatureMode {
	if m != nil {
		return m.Mode
	}
	return SignatureModeUnspecified
}

// TimestampedSignatureData is the raw proof bytes carried in every IBC
// message except a header update, which carries SignatureData directly.
type TimestampedSignatureData struct {
	SignatureData []byte `protobuf:"bytes,1,opt,name=signature_data,json=signatureData,proto3" json:"signature_data,omitempty"`
	Timestamp     uint64 `protobuf:"varint,2,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
}

func (m *TimestampedSignatureData) Reset()         { *m = TimestampedSignatureData{} }
func (m *TimestampedSignatureData) String() string { return proto.CompactTextString(m) }
func (*TimestampedSignatureData) ProtoMessage()    {}

func (m *TimestampedSignatureData) GetSignatureData() []byte {
	if m != nil {
		return m.SignatureData
	}
	return nil
}

func (m *TimestampedSignatureData) GetTimestamp() uint64 {
	if m != nil {
		return m.Timestamp
	}
	return 0
}

// SoloMachineConsensusState is the v2/v3 consensus state: a single public
// key, the diversifier that domain-separates it, and the timestamp at
// which it became current.
type SoloMachineConsensusState struct {
	PublicKey   *Any   `protobuf:"bytes,1,opt,name=public_key,json=publicKey,proto3" json:"public_key,omitempty"`
	Diversifier string `protobuf:"bytes,2,opt,name=diversifier,proto3" json:"diversifier,omitempty"`
	Timestamp   uint64 `protobuf:"varint,3,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
}

func (m *SoloMachineConsensusState) Reset()         { *m = SoloMachineConsensusState{} }
func (m *SoloMachineConsensusState) String() string { return proto.CompactTextString(m) }
func (*SoloMachineConsensusState) ProtoMessage()    {}

func (m *SoloMachineConsensusState) GetPublicKey() *Any {
	if m != nil {
		return m.PublicKey
	}
	return nil
}

func (m *SoloMachineConsensusState) GetDiversifier() string {
	if m != nil {
		return m.Diversifier
	}
	return ""
}

func (m *SoloMachineConsensusState) GetTimestamp() uint64 {
	if m != nil {
		return m.Timestamp
	}
	return 0
}

// SoloMachineClientState is the v2/v3 client state: no frozen_sequence,
// no DataType-tagged proofs, just a monotonic sequence, an is_frozen
// flag, and the current consensus state.
type SoloMachineClientState struct {
	Sequence       uint64                     `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	IsFrozen       bool                       `protobuf:"varint,2,opt,name=is_frozen,json=isFrozen,proto3" json:"is_frozen,omitempty"`
	ConsensusState *SoloMachineConsensusState `protobuf:"bytes,3,opt,name=consensus_state,json=consensusState,proto3" json:"consensus_state,omitempty"`
}

func (m *SoloMachineClientState) Reset()         { *m = SoloMachineClientState{} }
func (m *SoloMachineClientState) String() string { return proto.CompactTextString(m) }
func (*SoloMachineClientState) ProtoMessage()    {}

func (m *SoloMachineClientState) GetSequence() uint64 {
	if m != nil {
		return m.Sequence
	}
	return 0
}

func (m *SoloMachineClientState) GetIsFrozen() bool {
	if m != nil {
		return m.IsFrozen
	}
	return false
}

func (m *SoloMachineClientState) GetConsensusState() *SoloMachineConsensusState {
	if m != nil {
		return m.ConsensusState
	}
	return nil
}

// SoloMachineHeader carries the header proof used to rotate a client's
// public key and/or diversifier.
type SoloMachineHeader struct {
	Timestamp      uint64 `protobuf:"varint,1,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Signature      []byte `protobuf:"bytes,2,opt,name=signature,proto3" json:"signature,omitempty"`
	NewPublicKey   *Any   `protobuf:"bytes,3,opt,name=new_public_key,json=newPublicKey,proto3" json:"new_public_key,omitempty"`
	NewDiversifier string `protobuf:"bytes,4,opt,name=new_diversifier,json=newDiversifier,proto3" json:"new_diversifier,omitempty"`
}

func (m *SoloMachineHeader) Reset()         { *m = SoloMachineHeader{} }
func (m *SoloMachineHeader) String() string { return proto.CompactTextString(m) }
func (*SoloMachineHeader) ProtoMessage()    {}

func (m *SoloMachineHeader) GetTimestamp() uint64 {
	if m != nil {
		return m.Timestamp
	}
	return 0
}

func (m *SoloMachineHeader) GetSignature() []byte {
	if m != nil {
		return m.Signature
	}
	return nil
}

func (m *SoloMachineHeader) GetNewPublicKey() *Any {
	if m != nil {
		return m.NewPublicKey
	}
	return nil
}

func (m *SoloMachineHeader) GetNewDiversifier() string {
	if m != nil {
		return m.NewDiversifier
	}
	return ""
}
