package pb

import "github.com/cosmos/gogoproto/proto"

// The types below back the optional front-end gRPC services (Bank,
// Chain, Ibc) named in §6 of the external-interfaces section. They
// follow the same hand-authored, gogoproto-tagged convention as every
// other wire type in this package, rather than anything generated by
// protoc — pkg/grpcserver speaks them directly through the same
// reflection-based codec internal/grpcclient registers for the
// outbound side.

// MintRequest asks the Bank service to mint amount of denom to signer.
type MintRequest struct {
	Signer string `protobuf:"bytes,1,opt,name=signer,proto3" json:"signer,omitempty"`
	Denom  string `protobuf:"bytes,2,opt,name=denom,proto3" json:"denom,omitempty"`
	Amount string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *MintRequest) Reset()         { *m = MintRequest{} }
func (m *MintRequest) String() string { return proto.CompactTextString(m) }
func (*MintRequest) ProtoMessage()    {}

// BurnRequest asks the Bank service to burn amount of denom from signer.
type BurnRequest struct {
	Signer string `protobuf:"bytes,1,opt,name=signer,proto3" json:"signer,omitempty"`
	Denom  string `protobuf:"bytes,2,opt,name=denom,proto3" json:"denom,omitempty"`
	Amount string `protobuf:"bytes,3,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *BurnRequest) Reset()         { *m = BurnRequest{} }
func (m *BurnRequest) String() string { return proto.CompactTextString(m) }
func (*BurnRequest) ProtoMessage()    {}

// Empty is the response to every RPC that has nothing to return beyond
// success.
type Empty struct{}

func (m *Empty) Reset()         { *m = Empty{} }
func (m *Empty) String() string { return proto.CompactTextString(m) }
func (*Empty) ProtoMessage()    {}

// BankQueryBalanceRequest reads one address/denom pair's local balance.
type BankQueryBalanceRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Denom   string `protobuf:"bytes,2,opt,name=denom,proto3" json:"denom,omitempty"`
}

func (m *BankQueryBalanceRequest) Reset()         { *m = BankQueryBalanceRequest{} }
func (m *BankQueryBalanceRequest) String() string { return proto.CompactTextString(m) }
func (*BankQueryBalanceRequest) ProtoMessage()    {}

// BalanceResponse carries a decimal-string balance.
type BalanceResponse struct {
	Balance string `protobuf:"bytes,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *BalanceResponse) Reset()         { *m = BalanceResponse{} }
func (m *BalanceResponse) String() string { return proto.CompactTextString(m) }
func (*BalanceResponse) ProtoMessage()    {}

// AccountResponse is the Bank service's QueryAccount result: the same
// address/denom/balance triple the CLI's `bank account` prints.
type AccountResponse struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Denom   string `protobuf:"bytes,2,opt,name=denom,proto3" json:"denom,omitempty"`
	Balance string `protobuf:"bytes,3,opt,name=balance,proto3" json:"balance,omitempty"`
}

func (m *AccountResponse) Reset()         { *m = AccountResponse{} }
func (m *AccountResponse) String() string { return proto.CompactTextString(m) }
func (*AccountResponse) ProtoMessage()    {}

// HistoryRequest pages through one address/denom's ledger.
type HistoryRequest struct {
	Address string `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Denom   string `protobuf:"bytes,2,opt,name=denom,proto3" json:"denom,omitempty"`
	Limit   int64  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	Offset  int64  `protobuf:"varint,4,opt,name=offset,proto3" json:"offset,omitempty"`
}

func (m *HistoryRequest) Reset()         { *m = HistoryRequest{} }
func (m *HistoryRequest) String() string { return proto.CompactTextString(m) }
func (*HistoryRequest) ProtoMessage()    {}

// OperationRecord mirrors one store.AccountOperation row for the wire.
type OperationRecord struct {
	Id        int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Address   string `protobuf:"bytes,2,opt,name=address,proto3" json:"address,omitempty"`
	Denom     string `protobuf:"bytes,3,opt,name=denom,proto3" json:"denom,omitempty"`
	Amount    string `protobuf:"bytes,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Kind      string `protobuf:"bytes,5,opt,name=kind,proto3" json:"kind,omitempty"`
	ChainId   string `protobuf:"bytes,6,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
	CreatedAt string `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
}

func (m *OperationRecord) Reset()         { *m = OperationRecord{} }
func (m *OperationRecord) String() string { return proto.CompactTextString(m) }
func (*OperationRecord) ProtoMessage()    {}

// HistoryResponse carries one page of OperationRecord, newest first.
type HistoryResponse struct {
	Operations []*OperationRecord `protobuf:"bytes,1,rep,name=operations,proto3" json:"operations,omitempty"`
}

func (m *HistoryResponse) Reset()         { *m = HistoryResponse{} }
func (m *HistoryResponse) String() string { return proto.CompactTextString(m) }
func (*HistoryResponse) ProtoMessage()    {}

// ChainAddRequest mirrors config.ChainConfig, the registration-time
// settings `chain add` either reads from flags or accepts over gRPC.
type ChainAddRequest struct {
	GrpcAddr              string `protobuf:"bytes,1,opt,name=grpc_addr,json=grpcAddr,proto3" json:"grpc_addr,omitempty"`
	RpcAddr               string `protobuf:"bytes,2,opt,name=rpc_addr,json=rpcAddr,proto3" json:"rpc_addr,omitempty"`
	FeeAmount             string `protobuf:"bytes,3,opt,name=fee_amount,json=feeAmount,proto3" json:"fee_amount,omitempty"`
	FeeDenom              string `protobuf:"bytes,4,opt,name=fee_denom,json=feeDenom,proto3" json:"fee_denom,omitempty"`
	FeeGasLimit           uint64 `protobuf:"varint,5,opt,name=fee_gas_limit,json=feeGasLimit,proto3" json:"fee_gas_limit,omitempty"`
	TrustLevelNum         uint64 `protobuf:"varint,6,opt,name=trust_level_num,json=trustLevelNum,proto3" json:"trust_level_num,omitempty"`
	TrustLevelDenom       uint64 `protobuf:"varint,7,opt,name=trust_level_denom,json=trustLevelDenom,proto3" json:"trust_level_denom,omitempty"`
	TrustingPeriodSeconds int64  `protobuf:"varint,8,opt,name=trusting_period_seconds,json=trustingPeriodSeconds,proto3" json:"trusting_period_seconds,omitempty"`
	MaxClockDriftSeconds  int64  `protobuf:"varint,9,opt,name=max_clock_drift_seconds,json=maxClockDriftSeconds,proto3" json:"max_clock_drift_seconds,omitempty"`
	RpcTimeoutSeconds     int64  `protobuf:"varint,10,opt,name=rpc_timeout_seconds,json=rpcTimeoutSeconds,proto3" json:"rpc_timeout_seconds,omitempty"`
	Diversifier           string `protobuf:"bytes,11,opt,name=diversifier,proto3" json:"diversifier,omitempty"`
	PortId                string `protobuf:"bytes,12,opt,name=port_id,json=portId,proto3" json:"port_id,omitempty"`
	TrustedHeight         uint64 `protobuf:"varint,13,opt,name=trusted_height,json=trustedHeight,proto3" json:"trusted_height,omitempty"`
	TrustedHashHex        string `protobuf:"bytes,14,opt,name=trusted_hash_hex,json=trustedHashHex,proto3" json:"trusted_hash_hex,omitempty"`
}

func (m *ChainAddRequest) Reset()         { *m = ChainAddRequest{} }
func (m *ChainAddRequest) String() string { return proto.CompactTextString(m) }
func (*ChainAddRequest) ProtoMessage()    {}

// ChainResponse is the Chain service's Add/Query result.
type ChainResponse struct {
	ChainId        string `protobuf:"bytes,1,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
	NodeId         string `protobuf:"bytes,2,opt,name=node_id,json=nodeId,proto3" json:"node_id,omitempty"`
	Sequence       uint64 `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence,omitempty"`
	PacketSequence uint64 `protobuf:"varint,4,opt,name=packet_sequence,json=packetSequence,proto3" json:"packet_sequence,omitempty"`
	Connected      bool   `protobuf:"varint,5,opt,name=connected,proto3" json:"connected,omitempty"`
}

func (m *ChainResponse) Reset()         { *m = ChainResponse{} }
func (m *ChainResponse) String() string { return proto.CompactTextString(m) }
func (*ChainResponse) ProtoMessage()    {}

// ChainQueryRequest identifies a chain by ID for Query/GetIbcDenom.
type ChainQueryRequest struct {
	ChainId string `protobuf:"bytes,1,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
}

func (m *ChainQueryRequest) Reset()         { *m = ChainQueryRequest{} }
func (m *ChainQueryRequest) String() string { return proto.CompactTextString(m) }
func (*ChainQueryRequest) ProtoMessage()    {}

// GetIbcDenomRequest asks the Chain service for a denom's local IBC
// trace hash.
type GetIbcDenomRequest struct {
	ChainId string `protobuf:"bytes,1,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
	Denom   string `protobuf:"bytes,2,opt,name=denom,proto3" json:"denom,omitempty"`
}

func (m *GetIbcDenomRequest) Reset()         { *m = GetIbcDenomRequest{} }
func (m *GetIbcDenomRequest) String() string { return proto.CompactTextString(m) }
func (*GetIbcDenomRequest) ProtoMessage()    {}

// IbcDenomResponse carries the "ibc/<hash>" string.
type IbcDenomResponse struct {
	IbcDenom string `protobuf:"bytes,1,opt,name=ibc_denom,json=ibcDenom,proto3" json:"ibc_denom,omitempty"`
}

func (m *IbcDenomResponse) Reset()         { *m = IbcDenomResponse{} }
func (m *IbcDenomResponse) String() string { return proto.CompactTextString(m) }
func (*IbcDenomResponse) ProtoMessage()    {}

// ChainQueryBalanceRequest asks the Chain service for a signer's
// on-chain balance (via the counterparty's gRPC bank query), distinct
// from BankQueryBalanceRequest's local-ledger read.
type ChainQueryBalanceRequest struct {
	Signer  string `protobuf:"bytes,1,opt,name=signer,proto3" json:"signer,omitempty"`
	ChainId string `protobuf:"bytes,2,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
	Denom   string `protobuf:"bytes,3,opt,name=denom,proto3" json:"denom,omitempty"`
}

func (m *ChainQueryBalanceRequest) Reset()         { *m = ChainQueryBalanceRequest{} }
func (m *ChainQueryBalanceRequest) String() string { return proto.CompactTextString(m) }
func (*ChainQueryBalanceRequest) ProtoMessage()    {}

// IbcConnectRequest drives the Ibc service's Connect RPC.
type IbcConnectRequest struct {
	ChainId string `protobuf:"bytes,1,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
	Memo    string `protobuf:"bytes,2,opt,name=memo,proto3" json:"memo,omitempty"`
}

func (m *IbcConnectRequest) Reset()         { *m = IbcConnectRequest{} }
func (m *IbcConnectRequest) String() string { return proto.CompactTextString(m) }
func (*IbcConnectRequest) ProtoMessage()    {}

// IbcTransferRequest drives both the Ibc service's Send and Receive
// RPCs; the two share the same shape.
type IbcTransferRequest struct {
	ChainId  string `protobuf:"bytes,1,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
	Amount   string `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Denom    string `protobuf:"bytes,3,opt,name=denom,proto3" json:"denom,omitempty"`
	Receiver string `protobuf:"bytes,4,opt,name=receiver,proto3" json:"receiver,omitempty"`
	Memo     string `protobuf:"bytes,5,opt,name=memo,proto3" json:"memo,omitempty"`
}

func (m *IbcTransferRequest) Reset()         { *m = IbcTransferRequest{} }
func (m *IbcTransferRequest) String() string { return proto.CompactTextString(m) }
func (*IbcTransferRequest) ProtoMessage()    {}

// IbcUpdateSignerRequest rotates the solo machine's signing key to a
// freshly derived mnemonic signer; the server accepts the mnemonic
// directly since the core has no remote-signer plugin loader of its
// own (see DESIGN.md).
type IbcUpdateSignerRequest struct {
	ChainId       string `protobuf:"bytes,1,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
	Mnemonic      string `protobuf:"bytes,2,opt,name=mnemonic,proto3" json:"mnemonic,omitempty"`
	HdPath        string `protobuf:"bytes,3,opt,name=hd_path,json=hdPath,proto3" json:"hd_path,omitempty"`
	AccountPrefix string `protobuf:"bytes,4,opt,name=account_prefix,json=accountPrefix,proto3" json:"account_prefix,omitempty"`
	Memo          string `protobuf:"bytes,5,opt,name=memo,proto3" json:"memo,omitempty"`
}

func (m *IbcUpdateSignerRequest) Reset()         { *m = IbcUpdateSignerRequest{} }
func (m *IbcUpdateSignerRequest) String() string { return proto.CompactTextString(m) }
func (*IbcUpdateSignerRequest) ProtoMessage()    {}
