package pb

import "github.com/cosmos/gogoproto/proto"

// QueryBalanceRequest mirrors cosmos.bank.v1beta1.QueryBalanceRequest,
// the single RPC the chain service's balance() needs.
type QueryBalanceRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Denom   string `protobuf:"bytes,2,opt,name=denom,proto3" json:"denom,omitempty"`
}

func (m *QueryBalanceRequest) Reset()         { *m = QueryBalanceRequest{} }
func (m *QueryBalanceRequest) String() string { return proto.CompactTextString(m) }
func (*QueryBalanceRequest) ProtoMessage()    {}

// QueryBalanceResponse mirrors cosmos.bank.v1beta1.QueryBalanceResponse.
type QueryBalanceResponse struct {
	Balance *Coin `protobuf:"bytes,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *QueryBalanceResponse) Reset()         { *m = QueryBalanceResponse{} }
func (m *QueryBalanceResponse) String() string { return proto.CompactTextString(m) }
func (*QueryBalanceResponse) ProtoMessage()    {}

func (m *QueryBalanceResponse) GetBalance() *Coin {
	if m != nil {
		return m.Balance
	}
	return nil
}

// QueryAccountRequest mirrors cosmos.auth.v1beta1.QueryAccountRequest,
// used to learn a signer's account_number/sequence before assembling a
// transaction.
type QueryAccountRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
}

func (m *QueryAccountRequest) Reset()         { *m = QueryAccountRequest{} }
func (m *QueryAccountRequest) String() string { return proto.CompactTextString(m) }
func (*QueryAccountRequest) ProtoMessage()    {}

// QueryAccountResponse mirrors cosmos.auth.v1beta1.QueryAccountResponse;
// Account is the packed Any, unpacked as a BaseAccount (or EthAccount).
type QueryAccountResponse struct {
	Account *Any `protobuf:"bytes,1,opt,name=account,proto3" json:"account,omitempty"`
}

func (m *QueryAccountResponse) Reset()         { *m = QueryAccountResponse{} }
func (m *QueryAccountResponse) String() string { return proto.CompactTextString(m) }
func (*QueryAccountResponse) ProtoMessage()    {}

func (m *QueryAccountResponse) GetAccount() *Any {
	if m != nil {
		return m.Account
	}
	return nil
}

// QueryParamsRequest mirrors cosmos.staking.v1beta1.QueryParamsRequest,
// used to learn the unbonding period a new Tendermint client trusts.
type QueryParamsRequest struct{}

func (m *QueryParamsRequest) Reset()         { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryParamsRequest) ProtoMessage()    {}

// StakingParams is the subset of staking params the light client cares
// about: how long evidence of misbehavior can be submitted for.
type StakingParams struct {
	UnbondingTime int64 `protobuf:"varint,1,opt,name=unbonding_time,json=unbondingTime,proto3" json:"unbonding_time,omitempty"`
}

func (m *StakingParams) Reset()         { *m = StakingParams{} }
func (m *StakingParams) String() string { return proto.CompactTextString(m) }
func (*StakingParams) ProtoMessage()    {}

// QueryParamsResponse mirrors cosmos.staking.v1beta1.QueryParamsResponse.
type QueryParamsResponse struct {
	Params *StakingParams `protobuf:"bytes,1,opt,name=params,proto3" json:"params,omitempty"`
}

func (m *QueryParamsResponse) Reset()         { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryParamsResponse) ProtoMessage()    {}

func (m *QueryParamsResponse) GetParams() *StakingParams {
	if m != nil {
		return m.Params
	}
	return nil
}
