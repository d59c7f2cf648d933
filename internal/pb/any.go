package pb

import "github.com/cosmos/gogoproto/proto"

// Any is the type-URL-tagged wrapper ibc-go uses to carry a polymorphic
// ClientState, ConsensusState, Header or Msg payload inside another
// message. Mirrors google.protobuf.Any's wire shape exactly so it decodes
// against any counterparty expecting the standard encoding.
type Any struct {
	TypeUrl string `protobuf:"bytes,1,opt,name=type_url,json=typeUrl,proto3" json:"type_url,omitempty"`
	Value   []byte `protobuf:"bytes,2,opt,name=value,proto3" json:"value,omitempty"`
}

func (m *Any) Reset()         { *m = Any{} }
func (m *Any) String() string { return proto.CompactTextString(m) }
func (*Any) ProtoMessage()    {}

func (m *Any) GetTypeUrl() string {
	if m != nil {
		return m.TypeUrl
	}
	return ""
}

func (m *Any) GetValue() []byte {
	if m != nil {
		return m.Value
	}
	return nil
}
