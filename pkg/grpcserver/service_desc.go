package grpcserver

import (
	"context"

	"google.golang.org/grpc"

	"github.com/soloibc/solo-machine/internal/pb"
)

// The three grpc.ServiceDesc values below are written by hand rather
// than generated, the same "define the wire shape ourselves, skip the
// toolchain" approach internal/pb and internal/grpcclient already
// take for the outbound side.

func decodeInto(dec func(any) error, msg any) error {
	return dec(msg)
}

var bankServiceDesc = grpc.ServiceDesc{
	ServiceName: "solomachine.v1.Bank",
	HandlerType: (*any)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Mint",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := &pb.MintRequest{}
				if err := decodeInto(dec, req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(*Server).mint(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/solomachine.v1.Bank/Mint"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(*Server).mint(ctx, req.(*pb.MintRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "Burn",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := &pb.BurnRequest{}
				if err := decodeInto(dec, req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(*Server).burn(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/solomachine.v1.Bank/Burn"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(*Server).burn(ctx, req.(*pb.BurnRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "QueryBalance",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := &pb.BankQueryBalanceRequest{}
				if err := decodeInto(dec, req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(*Server).bankQueryBalance(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/solomachine.v1.Bank/QueryBalance"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(*Server).bankQueryBalance(ctx, req.(*pb.BankQueryBalanceRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "QueryAccount",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := &pb.BankQueryBalanceRequest{}
				if err := decodeInto(dec, req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(*Server).bankQueryAccount(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/solomachine.v1.Bank/QueryAccount"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(*Server).bankQueryAccount(ctx, req.(*pb.BankQueryBalanceRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "QueryHistory",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := &pb.HistoryRequest{}
				if err := decodeInto(dec, req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(*Server).bankQueryHistory(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/solomachine.v1.Bank/QueryHistory"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(*Server).bankQueryHistory(ctx, req.(*pb.HistoryRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
	},
	Metadata: "solomachine/v1/bank.proto",
}

var chainServiceDesc = grpc.ServiceDesc{
	ServiceName: "solomachine.v1.Chain",
	HandlerType: (*any)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Add",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := &pb.ChainAddRequest{}
				if err := decodeInto(dec, req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(*Server).chainAdd(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/solomachine.v1.Chain/Add"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(*Server).chainAdd(ctx, req.(*pb.ChainAddRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "Query",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := &pb.ChainQueryRequest{}
				if err := decodeInto(dec, req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(*Server).chainQuery(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/solomachine.v1.Chain/Query"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(*Server).chainQuery(ctx, req.(*pb.ChainQueryRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "GetIbcDenom",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := &pb.GetIbcDenomRequest{}
				if err := decodeInto(dec, req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(*Server).chainGetIbcDenom(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/solomachine.v1.Chain/GetIbcDenom"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(*Server).chainGetIbcDenom(ctx, req.(*pb.GetIbcDenomRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "QueryBalance",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := &pb.ChainQueryBalanceRequest{}
				if err := decodeInto(dec, req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(*Server).chainQueryBalance(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/solomachine.v1.Chain/QueryBalance"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(*Server).chainQueryBalance(ctx, req.(*pb.ChainQueryBalanceRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
	},
	Metadata: "solomachine/v1/chain.proto",
}

var ibcServiceDesc = grpc.ServiceDesc{
	ServiceName: "solomachine.v1.Ibc",
	HandlerType: (*any)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Connect",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := &pb.IbcConnectRequest{}
				if err := decodeInto(dec, req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(*Server).ibcConnect(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/solomachine.v1.Ibc/Connect"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(*Server).ibcConnect(ctx, req.(*pb.IbcConnectRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "Send",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := &pb.IbcTransferRequest{}
				if err := decodeInto(dec, req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(*Server).ibcSend(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/solomachine.v1.Ibc/Send"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(*Server).ibcSend(ctx, req.(*pb.IbcTransferRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "Receive",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := &pb.IbcTransferRequest{}
				if err := decodeInto(dec, req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(*Server).ibcReceive(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/solomachine.v1.Ibc/Receive"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(*Server).ibcReceive(ctx, req.(*pb.IbcTransferRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
		{
			MethodName: "UpdateSigner",
			Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
				req := &pb.IbcUpdateSignerRequest{}
				if err := decodeInto(dec, req); err != nil {
					return nil, err
				}
				if interceptor == nil {
					return srv.(*Server).ibcUpdateSigner(ctx, req)
				}
				info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/solomachine.v1.Ibc/UpdateSigner"}
				handler := func(ctx context.Context, req any) (any, error) {
					return srv.(*Server).ibcUpdateSigner(ctx, req.(*pb.IbcUpdateSignerRequest))
				}
				return interceptor(ctx, req, info, handler)
			},
		},
	},
	Metadata: "solomachine/v1/ibc.proto",
}
