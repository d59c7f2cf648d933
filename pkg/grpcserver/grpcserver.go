// Package grpcserver is the optional gRPC front-end over the Bank,
// Chain, and Ibc core services named in §6: a thin translation layer
// from the hand-authored request/response types in internal/pb to the
// service method calls the CLI (cmd/solo-machine) also makes directly.
// It speaks the same reflection-based gogoproto codec
// internal/grpcclient registers for the outbound side, so a caller must
// dial with grpc.CallContentSubtype(CodecName) the same way this
// process's own outbound client does.
package grpcserver

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/encoding"
	"google.golang.org/grpc/status"

	"github.com/soloibc/solo-machine/internal/bank"
	"github.com/soloibc/solo-machine/internal/chainservice"
	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/config"
	"github.com/soloibc/solo-machine/internal/ibc"
	"github.com/soloibc/solo-machine/internal/ibcerrors"
	"github.com/soloibc/solo-machine/internal/pb"
	"github.com/soloibc/solo-machine/internal/signerapi"
	"github.com/soloibc/solo-machine/internal/store"
)

// CodecName is the content-subtype a client must request to have its
// messages decoded against the hand-authored pb types this server
// speaks, rather than grpc's default protobuf codec.
const CodecName = "solo-machine-gogoproto"

type gogoprotoCodec struct{}

func (gogoprotoCodec) Name() string { return CodecName }

func (gogoprotoCodec) Marshal(v any) ([]byte, error) {
	msg, ok := v.(codec.ProtoMessage)
	if !ok {
		return nil, fmt.Errorf("grpcserver: %T does not implement codec.ProtoMessage", v)
	}
	return codec.Marshal(msg)
}

func (gogoprotoCodec) Unmarshal(data []byte, v any) error {
	msg, ok := v.(codec.ProtoMessage)
	if !ok {
		return fmt.Errorf("grpcserver: %T does not implement codec.ProtoMessage", v)
	}
	return codec.Unmarshal(data, msg)
}

func init() {
	encoding.RegisterCodec(gogoprotoCodec{})
}

// Server wires the Bank, Chain, and Ibc core services onto a
// *grpc.Server.
type Server struct {
	bank  *bank.Service
	chain *chainservice.Service
	ibc   *ibc.Service
}

// New builds a Server over the three core services.
func New(bankService *bank.Service, chainService *chainservice.Service, ibcService *ibc.Service) *Server {
	return &Server{bank: bankService, chain: chainService, ibc: ibcService}
}

// Register attaches every service this package exposes to grpcServer.
func (s *Server) Register(grpcServer *grpc.Server) {
	grpcServer.RegisterService(&bankServiceDesc, s)
	grpcServer.RegisterService(&chainServiceDesc, s)
	grpcServer.RegisterService(&ibcServiceDesc, s)
}

// grpcError maps the core's taxonomy of sentinel errors (§7) onto the
// nearest gRPC status code, so a networked caller gets something more
// actionable than codes.Unknown for every failure.
func grpcError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case ibcerrors.Is(err, ibcerrors.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case ibcerrors.Is(err, ibcerrors.ErrInputValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case ibcerrors.Is(err, ibcerrors.ErrInvariantViolation):
		return status.Error(codes.FailedPrecondition, err.Error())
	case ibcerrors.Is(err, ibcerrors.ErrProtocolMismatch):
		return status.Error(codes.FailedPrecondition, err.Error())
	case ibcerrors.Is(err, ibcerrors.ErrLightClientFailure):
		return status.Error(codes.FailedPrecondition, err.Error())
	case ibcerrors.Is(err, ibcerrors.ErrRPCFailure):
		return status.Error(codes.Unavailable, err.Error())
	case ibcerrors.Is(err, ibcerrors.ErrCancelled):
		return status.Error(codes.Canceled, err.Error())
	default:
		return status.Error(codes.Unknown, err.Error())
	}
}

// --- Bank ---

func (s *Server) mint(ctx context.Context, req *pb.MintRequest) (*pb.Empty, error) {
	amount, ok := new(big.Int).SetString(req.Amount, 10)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unparsable amount %q", req.Amount)
	}
	if err := s.bank.Mint(ctx, req.Signer, req.Denom, amount); err != nil {
		return nil, grpcError(err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) burn(ctx context.Context, req *pb.BurnRequest) (*pb.Empty, error) {
	amount, ok := new(big.Int).SetString(req.Amount, 10)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unparsable amount %q", req.Amount)
	}
	if err := s.bank.Burn(ctx, req.Signer, req.Denom, amount); err != nil {
		return nil, grpcError(err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) bankQueryBalance(ctx context.Context, req *pb.BankQueryBalanceRequest) (*pb.BalanceResponse, error) {
	balance, err := s.bank.Balance(ctx, req.Address, req.Denom)
	if err != nil {
		return nil, grpcError(err)
	}
	return &pb.BalanceResponse{Balance: balance.String()}, nil
}

func (s *Server) bankQueryAccount(ctx context.Context, req *pb.BankQueryBalanceRequest) (*pb.AccountResponse, error) {
	balance, err := s.bank.Balance(ctx, req.Address, req.Denom)
	if err != nil {
		return nil, grpcError(err)
	}
	return &pb.AccountResponse{Address: req.Address, Denom: req.Denom, Balance: balance.String()}, nil
}

func (s *Server) bankQueryHistory(ctx context.Context, req *pb.HistoryRequest) (*pb.HistoryResponse, error) {
	ops, err := s.bank.History(ctx, req.Address, req.Denom, int(req.Limit), int(req.Offset))
	if err != nil {
		return nil, grpcError(err)
	}
	resp := &pb.HistoryResponse{Operations: make([]*pb.OperationRecord, len(ops))}
	for i, op := range ops {
		resp.Operations[i] = &pb.OperationRecord{
			Id:        op.ID,
			Address:   op.Address,
			Denom:     op.Denom,
			Amount:    op.Amount,
			Kind:      op.OperationType.Kind,
			ChainId:   op.OperationType.ChainID,
			CreatedAt: op.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		}
	}
	return resp, nil
}

// --- Chain ---

func (s *Server) chainAdd(ctx context.Context, req *pb.ChainAddRequest) (*pb.ChainResponse, error) {
	cfg, err := chainConfigFromRequest(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	chain, err := s.chain.Add(ctx, cfg)
	if err != nil {
		return nil, grpcError(err)
	}
	return chainResponse(chain), nil
}

func (s *Server) chainQuery(ctx context.Context, req *pb.ChainQueryRequest) (*pb.ChainResponse, error) {
	chain, err := s.chain.Get(ctx, req.ChainId)
	if err != nil {
		return nil, grpcError(err)
	}
	return chainResponse(chain), nil
}

func (s *Server) chainGetIbcDenom(ctx context.Context, req *pb.GetIbcDenomRequest) (*pb.IbcDenomResponse, error) {
	denom, err := s.chain.GetIBCDenom(ctx, req.ChainId, req.Denom)
	if err != nil {
		return nil, grpcError(err)
	}
	return &pb.IbcDenomResponse{IbcDenom: denom}, nil
}

func (s *Server) chainQueryBalance(ctx context.Context, req *pb.ChainQueryBalanceRequest) (*pb.BalanceResponse, error) {
	balance, err := s.chain.Balance(ctx, req.Signer, req.ChainId, req.Denom)
	if err != nil {
		return nil, grpcError(err)
	}
	return &pb.BalanceResponse{Balance: balance.String()}, nil
}

// --- Ibc ---

func (s *Server) ibcConnect(ctx context.Context, req *pb.IbcConnectRequest) (*pb.Empty, error) {
	if err := s.ibc.Connect(ctx, req.ChainId, req.Memo); err != nil {
		return nil, grpcError(err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) ibcSend(ctx context.Context, req *pb.IbcTransferRequest) (*pb.Empty, error) {
	amount, ok := new(big.Int).SetString(req.Amount, 10)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unparsable amount %q", req.Amount)
	}
	if err := s.ibc.SendToChain(ctx, req.ChainId, amount, req.Denom, req.Receiver, req.Memo); err != nil {
		return nil, grpcError(err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) ibcReceive(ctx context.Context, req *pb.IbcTransferRequest) (*pb.Empty, error) {
	amount, ok := new(big.Int).SetString(req.Amount, 10)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unparsable amount %q", req.Amount)
	}
	if err := s.ibc.ReceiveFromChain(ctx, req.ChainId, amount, req.Denom, req.Receiver, req.Memo); err != nil {
		return nil, grpcError(err)
	}
	return &pb.Empty{}, nil
}

func (s *Server) ibcUpdateSigner(ctx context.Context, req *pb.IbcUpdateSignerRequest) (*pb.Empty, error) {
	hdPath := req.HdPath
	if hdPath == "" {
		hdPath = signerapi.DefaultHDPath
	}
	accountPrefix := req.AccountPrefix
	if accountPrefix == "" {
		accountPrefix = "cosmos"
	}
	newSigner, err := signerapi.NewMnemonicSigner(req.Mnemonic, hdPath, accountPrefix)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := s.ibc.UpdateSigner(ctx, req.ChainId, newSigner, req.Memo); err != nil {
		return nil, grpcError(err)
	}
	return &pb.Empty{}, nil
}

func chainConfigFromRequest(req *pb.ChainAddRequest) (config.ChainConfig, error) {
	hash, err := decodeHex32(req.TrustedHashHex)
	if err != nil {
		return config.ChainConfig{}, fmt.Errorf("parsing trusted_hash_hex: %w", err)
	}
	return config.ChainConfig{
		GRPCAddr:        req.GrpcAddr,
		RPCAddr:         req.RpcAddr,
		FeeAmount:       req.FeeAmount,
		FeeDenom:        req.FeeDenom,
		FeeGasLimit:     req.FeeGasLimit,
		TrustLevelNum:   req.TrustLevelNum,
		TrustLevelDenom: req.TrustLevelDenom,
		TrustingPeriod:  secondsToDuration(req.TrustingPeriodSeconds),
		MaxClockDrift:   secondsToDuration(req.MaxClockDriftSeconds),
		RPCTimeout:      secondsToDuration(req.RpcTimeoutSeconds),
		Diversifier:     req.Diversifier,
		PortID:          req.PortId,
		TrustedHeight:   req.TrustedHeight,
		TrustedHash:     hash,
	}, nil
}

func chainResponse(chain *store.Chain) *pb.ChainResponse {
	return &pb.ChainResponse{
		ChainId:        chain.ID,
		NodeId:         chain.NodeID,
		Sequence:       chain.Sequence,
		PacketSequence: chain.PacketSequence,
		Connected:      chain.ConnectionDetails.Valid(),
	}
}

func secondsToDuration(seconds int64) time.Duration {
	return time.Duration(seconds) * time.Second
}

func decodeHex32(s string) ([32]byte, error) {
	var out [32]byte
	if s == "" {
		return out, nil
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return out, err
	}
	if len(raw) != 32 {
		return out, fmt.Errorf("expected 32 bytes, got %d", len(raw))
	}
	copy(out[:], raw)
	return out, nil
}
