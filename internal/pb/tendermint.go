package pb

import "github.com/cosmos/gogoproto/proto"

// Fraction is a ratio of two uint64s, used for the Tendermint light
// client's trust level (e.g. 1/3).
type Fraction struct {
	Numerator   uint64 `protobuf:"varint,1,opt,name=numerator,proto3" json:"numerator,omitempty"`
	Denominator uint64 `protobuf:"varint,2,opt,name=denominator,proto3" json:"denominator,omitempty"`
}

func (m *Fraction) Reset()         { *m = Fraction{} }
func (m *Fraction) String() string { return proto.CompactTextString(m) }
func (*Fraction) ProtoMessage()    {}

// Height is the ICS-02 (revision, height) pair used throughout IBC for
// client heights, proof heights, and packet timeout heights.
type Height struct {
	RevisionNumber uint64 `protobuf:"varint,1,opt,name=revision_number,json=revisionNumber,proto3" json:"revision_number,omitempty"`
	RevisionHeight uint64 `protobuf:"varint,2,opt,name=revision_height,json=revisionHeight,proto3" json:"revision_height,omitempty"`
}

func (m *Height) Reset()         { *m = Height{} }
func (m *Height) String() string { return proto.CompactTextString(m) }
func (*Height) ProtoMessage()    {}

func (m *Height) GetRevisionNumber() uint64 {
	if m != nil {
		return m.RevisionNumber
	}
	return 0
}

func (m *Height) GetRevisionHeight() uint64 {
	if m != nil {
		return m.RevisionHeight
	}
	return 0
}

// MerkleRoot and MerklePrefix back the ICS-23 proof specs carried on a
// Tendermint client state; the solo-machine never verifies proofs
// against them, but it must still round-trip them faithfully.
type MerkleRoot struct {
	Hash []byte `protobuf:"bytes,1,opt,name=hash,proto3" json:"hash,omitempty"`
}

func (m *MerkleRoot) Reset()         { *m = MerkleRoot{} }
func (m *MerkleRoot) String() string { return proto.CompactTextString(m) }
func (*MerkleRoot) ProtoMessage()    {}

type MerklePrefix struct {
	KeyPrefix []byte `protobuf:"bytes,1,opt,name=key_prefix,json=keyPrefix,proto3" json:"key_prefix,omitempty"`
}

func (m *MerklePrefix) Reset()         { *m = MerklePrefix{} }
func (m *MerklePrefix) String() string { return proto.CompactTextString(m) }
func (*MerklePrefix) ProtoMessage()    {}

// ProofSpec names the two ICS-23 specs every Tendermint client state
// carries: the chain's IAVL store proof and the outer Tendermint
// multi-store proof. Used as an opaque identifier here since the
// solo-machine never runs ICS-23 verification itself.
type ProofSpec struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *ProofSpec) Reset()         { *m = ProofSpec{} }
func (m *ProofSpec) String() string { return proto.CompactTextString(m) }
func (*ProofSpec) ProtoMessage()    {}

var (
	// ProofSpecIAVL is the IAVL store's ICS-23 proof spec.
	ProofSpecIAVL = &ProofSpec{Name: "iavl"}
	// ProofSpecTendermint is the outer Tendermint multi-store proof spec.
	ProofSpecTendermint = &ProofSpec{Name: "tendermint"}
)

// TendermintClientState mirrors ibc-go's 07-tendermint ClientState, the
// counterparty client tracking the chain the solo machine connects to.
type TendermintClientState struct {
	ChainId                      string       `protobuf:"bytes,1,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
	TrustLevel                   *Fraction    `protobuf:"bytes,2,opt,name=trust_level,json=trustLevel,proto3" json:"trust_level,omitempty"`
	TrustingPeriod               int64        `protobuf:"varint,3,opt,name=trusting_period,json=trustingPeriod,proto3" json:"trusting_period,omitempty"`
	UnbondingPeriod              int64        `protobuf:"varint,4,opt,name=unbonding_period,json=unbondingPeriod,proto3" json:"unbonding_period,omitempty"`
	MaxClockDrift                int64        `protobuf:"varint,5,opt,name=max_clock_drift,json=maxClockDrift,proto3" json:"max_clock_drift,omitempty"`
	FrozenHeight                 *Height      `protobuf:"bytes,6,opt,name=frozen_height,json=frozenHeight,proto3" json:"frozen_height,omitempty"`
	LatestHeight                 *Height      `protobuf:"bytes,7,opt,name=latest_height,json=latestHeight,proto3" json:"latest_height,omitempty"`
	ProofSpecs                   []*ProofSpec `protobuf:"bytes,8,rep,name=proof_specs,json=proofSpecs,proto3" json:"proof_specs,omitempty"`
	UpgradePath                  []string     `protobuf:"bytes,9,rep,name=upgrade_path,json=upgradePath,proto3" json:"upgrade_path,omitempty"`
	AllowUpdateAfterExpiry       bool         `protobuf:"varint,10,opt,name=allow_update_after_expiry,json=allowUpdateAfterExpiry,proto3" json:"allow_update_after_expiry,omitempty"`
	AllowUpdateAfterMisbehaviour bool         `protobuf:"varint,11,opt,name=allow_update_after_misbehaviour,json=allowUpdateAfterMisbehaviour,proto3" json:"allow_update_after_misbehaviour,omitempty"`
}

func (m *TendermintClientState) Reset()         { *m = TendermintClientState{} }
func (m *TendermintClientState) String() string { return proto.CompactTextString(m) }
func (*TendermintClientState) ProtoMessage()    {}

func (m *TendermintClientState) GetChainId() string {
	if m != nil {
		return m.ChainId
	}
	return ""
}

func (m *TendermintClientState) GetLatestHeight() *Height {
	if m != nil {
		return m.LatestHeight
	}
	return nil
}

func (m *TendermintClientState) GetFrozenHeight() *Height {
	if m != nil {
		return m.FrozenHeight
	}
	return nil
}

// TendermintConsensusState mirrors ibc-go's 07-tendermint ConsensusState,
// the snapshot of a single trusted block header.
type TendermintConsensusState struct {
	Timestamp          int64       `protobuf:"varint,1,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	Root               *MerkleRoot `protobuf:"bytes,2,opt,name=root,proto3" json:"root,omitempty"`
	NextValidatorsHash []byte      `protobuf:"bytes,3,opt,name=next_validators_hash,json=nextValidatorsHash,proto3" json:"next_validators_hash,omitempty"`
}

func (m *TendermintConsensusState) Reset()         { *m = TendermintConsensusState{} }
func (m *TendermintConsensusState) String() string { return proto.CompactTextString(m) }
func (*TendermintConsensusState) ProtoMessage()    {}

func (m *TendermintConsensusState) GetTimestamp() int64 {
	if m != nil {
		return m.Timestamp
	}
	return 0
}

func (m *TendermintConsensusState) GetRoot() *MerkleRoot {
	if m != nil {
		return m.Root
	}
	return nil
}
