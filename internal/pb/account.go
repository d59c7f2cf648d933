package pb

import "github.com/cosmos/gogoproto/proto"

// BaseAccount is the response shape of auth.QueryAccount for a standard
// chain; account_number/account_sequence feed directly into AuthInfo.
type BaseAccount struct {
	Address       string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	PubKey        *Any   `protobuf:"bytes,2,opt,name=pub_key,json=pubKey,proto3" json:"pub_key,omitempty"`
	AccountNumber uint64 `protobuf:"varint,3,opt,name=account_number,json=accountNumber,proto3" json:"account_number,omitempty"`
	Sequence      uint64 `protobuf:"varint,4,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

func (m *BaseAccount) Reset()         { *m = BaseAccount{} }
func (m *BaseAccount) String() string { return proto.CompactTextString(m) }
func (*BaseAccount) ProtoMessage()    {}

func (m *BaseAccount) GetAddress() string {
	if m != nil {
		return m.Address
	}
	return ""
}

func (m *BaseAccount) GetAccountNumber() uint64 {
	if m != nil {
		return m.AccountNumber
	}
	return 0
}

func (m *BaseAccount) GetSequence() uint64 {
	if m != nil {
		return m.Sequence
	}
	return 0
}

// EthAccount wraps a BaseAccount with the EthSecp256k1 code hash fields
// ethermint-style chains attach; grpcclient.QueryAccount unpacks it when
// the account Any carries the EthAccount type URL.
type EthAccount struct {
	BaseAccount  *BaseAccount `protobuf:"bytes,1,opt,name=base_account,json=baseAccount,proto3" json:"base_account,omitempty"`
	CodeHash     string       `protobuf:"bytes,2,opt,name=code_hash,json=codeHash,proto3" json:"code_hash,omitempty"`
}

func (m *EthAccount) Reset()         { *m = EthAccount{} }
func (m *EthAccount) String() string { return proto.CompactTextString(m) }
func (*EthAccount) ProtoMessage()    {}

func (m *EthAccount) GetBaseAccount() *BaseAccount {
	if m != nil {
		return m.BaseAccount
	}
	return nil
}
