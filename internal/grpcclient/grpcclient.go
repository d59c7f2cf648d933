// Package grpcclient is the outbound gRPC client against a counterparty
// chain's query services: cosmos.bank.v1beta1.Query/Balance,
// cosmos.auth.v1beta1.Query/Account, and cosmos.staking.v1beta1.Query/
// Params, per §6. The corpus carries no generated cosmos-sdk query
// stubs, so requests are declared in internal/pb the same way the rest
// of the wire types are (hand-authored gogoproto structs) and sent
// through grpc.ClientConn.Invoke directly with a codec that defers to
// internal/codec's reflection-based marshaling.
package grpcclient

import (
	"context"
	"fmt"
	"math/big"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/encoding"

	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/ibcerrors"
	"github.com/soloibc/solo-machine/internal/pb"
)

const codecName = "solo-machine-gogoproto"

// gogoprotoCodec adapts internal/codec's Marshal/Unmarshal to grpc's
// encoding.Codec so Invoke can send/receive the hand-authored pb
// request and response types directly.
type gogoprotoCodec struct{}

func (gogoprotoCodec) Name() string { return codecName }

func (gogoprotoCodec) Marshal(v any) ([]byte, error) {
	msg, ok := v.(codec.ProtoMessage)
	if !ok {
		return nil, fmt.Errorf("grpcclient: %T does not implement codec.ProtoMessage", v)
	}
	return codec.Marshal(msg)
}

func (gogoprotoCodec) Unmarshal(data []byte, v any) error {
	msg, ok := v.(codec.ProtoMessage)
	if !ok {
		return fmt.Errorf("grpcclient: %T does not implement codec.ProtoMessage", v)
	}
	return codec.Unmarshal(data, msg)
}

func init() {
	encoding.RegisterCodec(gogoprotoCodec{})
}

// Client is a gRPC client bound to one node's query services.
type Client struct {
	addr string
	conn *grpc.ClientConn
}

// Option configures a Client.
type Option func(*dialOptions)

type dialOptions struct {
	tls bool
}

// WithTLS dials the endpoint over TLS instead of a plaintext connection.
func WithTLS() Option {
	return func(o *dialOptions) { o.tls = true }
}

// New dials addr (host:port) and returns a Client bound to it.
func New(addr string, opts ...Option) (*Client, error) {
	options := dialOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	var transportCreds grpc.DialOption
	if options.tls {
		transportCreds = grpc.WithTransportCredentials(credentials.NewTLS(nil))
	} else {
		transportCreds = grpc.WithTransportCredentials(insecure.NewCredentials())
	}

	conn, err := grpc.NewClient(addr, transportCreds, grpc.WithDefaultCallOptions(grpc.CallContentSubtype(codecName)))
	if err != nil {
		return nil, fmt.Errorf("%w: dialing %s: %v", ibcerrors.ErrRPCFailure, addr, err)
	}
	return &Client{addr: addr, conn: conn}, nil
}

// Close tears down the underlying connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// QueryBalance calls cosmos.bank.v1beta1.Query/Balance, satisfying
// chainservice.BalanceClient. grpcAddr is accepted for interface
// compatibility but ignored; Client is already bound to one endpoint.
func (c *Client) QueryBalance(ctx context.Context, grpcAddr, address, denom string) (*big.Int, error) {
	req := &pb.QueryBalanceRequest{Address: address, Denom: denom}
	resp := &pb.QueryBalanceResponse{}
	if err := c.conn.Invoke(ctx, "/cosmos.bank.v1beta1.Query/Balance", req, resp); err != nil {
		return nil, fmt.Errorf("%w: querying balance for %s/%s: %v", ibcerrors.ErrRPCFailure, address, denom, err)
	}
	if resp.Balance == nil {
		return big.NewInt(0), nil
	}
	balance, ok := new(big.Int).SetString(resp.Balance.Amount, 10)
	if !ok {
		return nil, fmt.Errorf("%w: unparsable balance amount %q", ibcerrors.ErrRPCFailure, resp.Balance.Amount)
	}
	return balance, nil
}

// QueryAccount calls cosmos.auth.v1beta1.Query/Account and unpacks the
// response as a BaseAccount (or, when the Any carries the EthAccount type
// URL, as the BaseAccount an EthAccount wraps), giving the
// account_number/sequence a transaction's AuthInfo needs.
func (c *Client) QueryAccount(ctx context.Context, address string) (*pb.BaseAccount, error) {
	req := &pb.QueryAccountRequest{Address: address}
	resp := &pb.QueryAccountResponse{}
	if err := c.conn.Invoke(ctx, "/cosmos.auth.v1beta1.Query/Account", req, resp); err != nil {
		return nil, fmt.Errorf("%w: querying account %s: %v", ibcerrors.ErrRPCFailure, address, err)
	}
	if resp.GetAccount().GetTypeUrl() == codec.TypeURLEthAccount {
		ethAccount := &pb.EthAccount{}
		if err := codec.FromAny(resp.Account, codec.TypeURLEthAccount, ethAccount); err != nil {
			return nil, fmt.Errorf("%w: unpacking account %s: %v", ibcerrors.ErrRPCFailure, address, err)
		}
		if ethAccount.GetBaseAccount() == nil {
			return nil, fmt.Errorf("%w: account %s carried no base account", ibcerrors.ErrRPCFailure, address)
		}
		return ethAccount.GetBaseAccount(), nil
	}
	account := &pb.BaseAccount{}
	if err := codec.FromAny(resp.Account, codec.TypeURLBaseAccount, account); err != nil {
		return nil, fmt.Errorf("%w: unpacking account %s: %v", ibcerrors.ErrRPCFailure, address, err)
	}
	return account, nil
}

// QueryUnbondingPeriod calls cosmos.staking.v1beta1.Query/Params and
// returns the chain's unbonding time, the ceiling a new Tendermint
// client's trusting period must stay under.
func (c *Client) QueryUnbondingPeriod(ctx context.Context) (int64, error) {
	req := &pb.QueryParamsRequest{}
	resp := &pb.QueryParamsResponse{}
	if err := c.conn.Invoke(ctx, "/cosmos.staking.v1beta1.Query/Params", req, resp); err != nil {
		return 0, fmt.Errorf("%w: querying staking params: %v", ibcerrors.ErrRPCFailure, err)
	}
	if resp.Params == nil {
		return 0, fmt.Errorf("%w: staking params response carried no params", ibcerrors.ErrRPCFailure)
	}
	return resp.Params.UnbondingTime, nil
}
