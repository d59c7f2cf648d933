package pb

import "github.com/cosmos/gogoproto/proto"

// ModeInfoSingle pins the signing mode to SIGN_MODE_DIRECT-equivalent
// single signing; the solo-machine never builds multi-signer txs.
type ModeInfoSingle struct {
	Mode int32 `protobuf:"varint,1,opt,name=mode,proto3,enum=cosmos.tx.signing.v1beta1.SignMode" json:"mode,omitempty"`
}

func (m *ModeInfoSingle) Reset()         { *m = ModeInfoSingle{} }
func (m *ModeInfoSingle) String() string { return proto.CompactTextString(m) }
func (*ModeInfoSingle) ProtoMessage()    {}

// ModeInfo wraps the Single variant; ibc-go's AuthInfo carries this
// oneof but the solo-machine only ever populates Single.
type ModeInfo struct {
	Single *ModeInfoSingle `protobuf:"bytes,1,opt,name=single,proto3" json:"single,omitempty"`
}

func (m *ModeInfo) Reset()         { *m = ModeInfo{} }
func (m *ModeInfo) String() string { return proto.CompactTextString(m) }
func (*ModeInfo) ProtoMessage()    {}

// SignerInfo pairs a public key with its signing mode and the account
// sequence the signature was produced against.
type SignerInfo struct {
	PublicKey *Any      `protobuf:"bytes,1,opt,name=public_key,json=publicKey,proto3" json:"public_key,omitempty"`
	ModeInfo  *ModeInfo `protobuf:"bytes,2,opt,name=mode_info,json=modeInfo,proto3" json:"mode_info,omitempty"`
	Sequence  uint64    `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

func (m *SignerInfo) Reset()         { *m = SignerInfo{} }
func (m *SignerInfo) String() string { return proto.CompactTextString(m) }
func (*SignerInfo) ProtoMessage()    {}

func (m *SignerInfo) GetSequence() uint64 {
	if m != nil {
		return m.Sequence
	}
	return 0
}

// Fee carries the gas price and limit the outer transaction pays.
type Fee struct {
	Amount   []*Coin `protobuf:"bytes,1,rep,name=amount,proto3" json:"amount,omitempty"`
	GasLimit uint64  `protobuf:"varint,2,opt,name=gas_limit,json=gasLimit,proto3" json:"gas_limit,omitempty"`
}

func (m *Fee) Reset()         { *m = Fee{} }
func (m *Fee) String() string { return proto.CompactTextString(m) }
func (*Fee) ProtoMessage()    {}

func (m *Fee) GetAmount() []*Coin {
	if m != nil {
		return m.Amount
	}
	return nil
}

func (m *Fee) GetGasLimit() uint64 {
	if m != nil {
		return m.GasLimit
	}
	return 0
}

// AuthInfo carries exactly one SignerInfo and the Fee, per §4.3.
type AuthInfo struct {
	SignerInfos []*SignerInfo `protobuf:"bytes,1,rep,name=signer_infos,json=signerInfos,proto3" json:"signer_infos,omitempty"`
	Fee         *Fee          `protobuf:"bytes,2,opt,name=fee,proto3" json:"fee,omitempty"`
}

func (m *AuthInfo) Reset()         { *m = AuthInfo{} }
func (m *AuthInfo) String() string { return proto.CompactTextString(m) }
func (*AuthInfo) ProtoMessage()    {}

func (m *AuthInfo) GetSignerInfos() []*SignerInfo {
	if m != nil {
		return m.SignerInfos
	}
	return nil
}

func (m *AuthInfo) GetFee() *Fee {
	if m != nil {
		return m.Fee
	}
	return nil
}

// TxBody carries the messages and their memo.
type TxBody struct {
	Messages []*Any `protobuf:"bytes,1,rep,name=messages,proto3" json:"messages,omitempty"`
	Memo     string `protobuf:"bytes,2,opt,name=memo,proto3" json:"memo,omitempty"`
}

func (m *TxBody) Reset()         { *m = TxBody{} }
func (m *TxBody) String() string { return proto.CompactTextString(m) }
func (*TxBody) ProtoMessage()    {}

func (m *TxBody) GetMessages() []*Any {
	if m != nil {
		return m.Messages
	}
	return nil
}

// TxRaw is the fully-assembled, broadcast-ready transaction: the
// proto-encoded TxBody and AuthInfo bytes plus the signatures over
// their concatenation.
type TxRaw struct {
	BodyBytes     []byte   `protobuf:"bytes,1,opt,name=body_bytes,json=bodyBytes,proto3" json:"body_bytes,omitempty"`
	AuthInfoBytes []byte   `protobuf:"bytes,2,opt,name=auth_info_bytes,json=authInfoBytes,proto3" json:"auth_info_bytes,omitempty"`
	Signatures    [][]byte `protobuf:"bytes,3,rep,name=signatures,proto3" json:"signatures,omitempty"`
}

func (m *TxRaw) Reset()         { *m = TxRaw{} }
func (m *TxRaw) String() string { return proto.CompactTextString(m) }
func (*TxRaw) ProtoMessage()    {}

func (m *TxRaw) GetBodyBytes() []byte {
	if m != nil {
		return m.BodyBytes
	}
	return nil
}

func (m *TxRaw) GetAuthInfoBytes() []byte {
	if m != nil {
		return m.AuthInfoBytes
	}
	return nil
}

func (m *TxRaw) GetSignatures() [][]byte {
	if m != nil {
		return m.Signatures
	}
	return nil
}

// SignDoc is the SIGN_MODE_DIRECT payload a Signer signs to produce a
// transaction signature: body and auth-info bytes pinned to a chain id
// and account number so the signature cannot be replayed elsewhere.
type SignDoc struct {
	BodyBytes     []byte `protobuf:"bytes,1,opt,name=body_bytes,json=bodyBytes,proto3" json:"body_bytes,omitempty"`
	AuthInfoBytes []byte `protobuf:"bytes,2,opt,name=auth_info_bytes,json=authInfoBytes,proto3" json:"auth_info_bytes,omitempty"`
	ChainId       string `protobuf:"bytes,3,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
	AccountNumber uint64 `protobuf:"varint,4,opt,name=account_number,json=accountNumber,proto3" json:"account_number,omitempty"`
}

func (m *SignDoc) Reset()         { *m = SignDoc{} }
func (m *SignDoc) String() string { return proto.CompactTextString(m) }
func (*SignDoc) ProtoMessage()    {}
