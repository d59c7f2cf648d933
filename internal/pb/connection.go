package pb

import "github.com/cosmos/gogoproto/proto"

// ConnectionState enumerates the forward-only connection handshake
// states the local IBC store tracks; Close* is reserved but never
// driven by the happy path.
type ConnectionState int32

const (
	ConnectionStateUninitialized ConnectionState = 0
	ConnectionStateInit          ConnectionState = 1
	ConnectionStateTryOpen       ConnectionState = 2
	ConnectionStateOpen          ConnectionState = 3
)

// Version negotiates the connection/channel feature set; IBC always
// carries at least one.
type Version struct {
	Identifier string   `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Features   []string `protobuf:"bytes,2,rep,name=features,proto3" json:"features,omitempty"`
}

func (m *Version) Reset()         { *m = Version{} }
func (m *Version) String() string { return proto.CompactTextString(m) }
func (*Version) ProtoMessage()    {}

// Counterparty identifies the connection's remote side.
type Counterparty struct {
	ClientId     string        `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	ConnectionId string        `protobuf:"bytes,2,opt,name=connection_id,json=connectionId,proto3" json:"connection_id,omitempty"`
	Prefix       *MerklePrefix `protobuf:"bytes,3,opt,name=prefix,proto3" json:"prefix,omitempty"`
}

func (m *Counterparty) Reset()         { *m = Counterparty{} }
func (m *Counterparty) String() string { return proto.CompactTextString(m) }
func (*Counterparty) ProtoMessage()    {}

// ConnectionEnd is the local record of one IBC connection's handshake
// progress, stored at the connection path once Init completes and
// updated in place as it advances toward Open.
type ConnectionEnd struct {
	ClientId     string          `protobuf:"bytes,1,opt,name=client_id,json=clientId,proto3" json:"client_id,omitempty"`
	Versions     []*Version      `protobuf:"bytes,2,rep,name=versions,proto3" json:"versions,omitempty"`
	State        ConnectionState `protobuf:"varint,3,opt,name=state,proto3,enum=ibc.core.connection.v1.State" json:"state,omitempty"`
	Counterparty *Counterparty   `protobuf:"bytes,4,opt,name=counterparty,proto3" json:"counterparty,omitempty"`
	DelayPeriod  uint64          `protobuf:"varint,5,opt,name=delay_period,json=delayPeriod,proto3" json:"delay_period,omitempty"`
}

func (m *ConnectionEnd) Reset()         { *m = ConnectionEnd{} }
func (m *ConnectionEnd) String() string { return proto.CompactTextString(m) }
func (*ConnectionEnd) ProtoMessage()    {}

func (m *ConnectionEnd) GetClientId() string {
	if m != nil {
		return m.ClientId
	}
	return ""
}

func (m *ConnectionEnd) GetState() ConnectionState {
	if m != nil {
		return m.State
	}
	return ConnectionStateUninitialized
}

func (m *ConnectionEnd) GetCounterparty() *Counterparty {
	if m != nil {
		return m.Counterparty
	}
	return nil
}
