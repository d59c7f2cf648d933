package pb

import "github.com/cosmos/gogoproto/proto"

// ChannelState mirrors ConnectionState's forward-only progression.
type ChannelState int32

const (
	ChannelStateUninitialized ChannelState = 0
	ChannelStateInit          ChannelState = 1
	ChannelStateTryOpen       ChannelState = 2
	ChannelStateOpen          ChannelState = 3
	ChannelStateCloseInit     ChannelState = 4
	ChannelStateCloseConfirm  ChannelState = 5
)

// Order is the channel delivery ordering; the solo-machine always opens
// unordered transfer channels.
type Order int32

const (
	OrderNoneSpecified Order = 0
	OrderUnordered     Order = 1
	OrderOrdered       Order = 2
)

// ChannelCounterparty identifies a channel's remote port/channel pair.
type ChannelCounterparty struct {
	PortId    string `protobuf:"bytes,1,opt,name=port_id,json=portId,proto3" json:"port_id,omitempty"`
	ChannelId string `protobuf:"bytes,2,opt,name=channel_id,json=channelId,proto3" json:"channel_id,omitempty"`
}

func (m *ChannelCounterparty) Reset()         { *m = ChannelCounterparty{} }
func (m *ChannelCounterparty) String() string { return proto.CompactTextString(m) }
func (*ChannelCounterparty) ProtoMessage()    {}

func (m *ChannelCounterparty) GetPortId() string {
	if m != nil {
		return m.PortId
	}
	return ""
}

func (m *ChannelCounterparty) GetChannelId() string {
	if m != nil {
		return m.ChannelId
	}
	return ""
}

// Channel is the local record of one ICS-04 channel's handshake
// progress and connection hops.
type Channel struct {
	State          ChannelState         `protobuf:"varint,1,opt,name=state,proto3,enum=ibc.core.channel.v1.State" json:"state,omitempty"`
	Ordering       Order                `protobuf:"varint,2,opt,name=ordering,proto3,enum=ibc.core.channel.v1.Order" json:"ordering,omitempty"`
	Counterparty   *ChannelCounterparty `protobuf:"bytes,3,opt,name=counterparty,proto3" json:"counterparty,omitempty"`
	ConnectionHops []string             `protobuf:"bytes,4,rep,name=connection_hops,json=connectionHops,proto3" json:"connection_hops,omitempty"`
	Version        string               `protobuf:"bytes,5,opt,name=version,proto3" json:"version,omitempty"`
}

func (m *Channel) Reset()         { *m = Channel{} }
func (m *Channel) String() string { return proto.CompactTextString(m) }
func (*Channel) ProtoMessage()    {}

func (m *Channel) GetState() ChannelState {
	if m != nil {
		return m.State
	}
	return ChannelStateUninitialized
}

func (m *Channel) GetCounterparty() *ChannelCounterparty {
	if m != nil {
		return m.Counterparty
	}
	return nil
}

// Packet is one ICS-04 packet as it travels send -> recv -> ack.
type Packet struct {
	Sequence           uint64  `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	SourcePort         string  `protobuf:"bytes,2,opt,name=source_port,json=sourcePort,proto3" json:"source_port,omitempty"`
	SourceChannel      string  `protobuf:"bytes,3,opt,name=source_channel,json=sourceChannel,proto3" json:"source_channel,omitempty"`
	DestinationPort    string  `protobuf:"bytes,4,opt,name=destination_port,json=destinationPort,proto3" json:"destination_port,omitempty"`
	DestinationChannel string  `protobuf:"bytes,5,opt,name=destination_channel,json=destinationChannel,proto3" json:"destination_channel,omitempty"`
	Data               []byte  `protobuf:"bytes,6,opt,name=data,proto3" json:"data,omitempty"`
	TimeoutHeight      *Height `protobuf:"bytes,7,opt,name=timeout_height,json=timeoutHeight,proto3" json:"timeout_height,omitempty"`
	TimeoutTimestamp   uint64  `protobuf:"varint,8,opt,name=timeout_timestamp,json=timeoutTimestamp,proto3" json:"timeout_timestamp,omitempty"`
}

func (m *Packet) Reset()         { *m = Packet{} }
func (m *Packet) String() string { return proto.CompactTextString(m) }
func (*Packet) ProtoMessage()    {}

func (m *Packet) GetSequence() uint64 {
	if m != nil {
		return m.Sequence
	}
	return 0
}

func (m *Packet) GetData() []byte {
	if m != nil {
		return m.Data
	}
	return nil
}

func (m *Packet) GetTimeoutHeight() *Height {
	if m != nil {
		return m.TimeoutHeight
	}
	return nil
}

func (m *Packet) GetTimeoutTimestamp() uint64 {
	if m != nil {
		return m.TimeoutTimestamp
	}
	return 0
}
