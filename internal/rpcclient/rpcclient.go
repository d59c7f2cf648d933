// Package rpcclient is the outbound Tendermint/CometBFT RPC client:
// status (used by chain registration to learn chain_id/node_id) and
// broadcast_tx_commit (used to submit an assembled transaction and
// learn whether check_tx/deliver_tx accepted it), per §6.
package rpcclient

import (
	"context"
	"fmt"
	"log"

	abcitypes "github.com/cometbft/cometbft/abci/types"
	cmthttp "github.com/cometbft/cometbft/rpc/client/http"
	cmttypes "github.com/cometbft/cometbft/types"

	"github.com/soloibc/solo-machine/internal/chainservice"
	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/ibcerrors"
	"github.com/soloibc/solo-machine/internal/lightclient"
	"github.com/soloibc/solo-machine/internal/logging"
	"github.com/soloibc/solo-machine/internal/pb"
)

// BroadcastResult is the subset of broadcast_tx_commit's response the
// connect/send/receive flows need: whether the tx was accepted, and the
// events it emitted (searched for the packet sequence, the ack, etc).
type BroadcastResult struct {
	Height int64
	Events []Event
}

// Event is one deliver_tx event, flattened to the attribute shape the
// packet flows search over.
type Event struct {
	Type       string
	Attributes map[string]string
}

// Attribute returns the value of key within the event, and whether it
// was present at all, per §4's "missing event attribute" failure mode.
func (e Event) Attribute(key string) (string, bool) {
	v, ok := e.Attributes[key]
	return v, ok
}

// Client is a Tendermint RPC client bound to one node.
type Client struct {
	rpcAddr string
	http    *cmthttp.HTTP
	logger  *log.Logger
}

// New builds an HTTP JSON-RPC client for rpcAddr (e.g.
// "tcp://127.0.0.1:26657"). No connection is opened here; "/websocket"
// is only the endpoint the underlying client would use for event
// subscriptions, which this package does not open.
func New(rpcAddr string) (*Client, error) {
	http, err := cmthttp.New(rpcAddr, "/websocket")
	if err != nil {
		return nil, fmt.Errorf("%w: creating rpc client for %s: %v", ibcerrors.ErrRPCFailure, rpcAddr, err)
	}
	return &Client{rpcAddr: rpcAddr, http: http, logger: logging.New("rpcclient")}, nil
}

// Status reads the node's status and returns its chain and node ids,
// satisfying chainservice.StatusClient.
func (c *Client) Status(ctx context.Context, rpcAddr string) (chainservice.StatusInfo, error) {
	result, err := c.http.Status(ctx)
	if err != nil {
		return chainservice.StatusInfo{}, fmt.Errorf("%w: status against %s: %v", ibcerrors.ErrRPCFailure, rpcAddr, err)
	}
	return chainservice.StatusInfo{
		ChainID: result.NodeInfo.Network,
		NodeID:  string(result.NodeInfo.DefaultNodeID),
	}, nil
}

// BroadcastTxCommit marshals tx and submits it via broadcast_tx_commit,
// blocking until both check_tx and deliver_tx resolve, per §6.
func (c *Client) BroadcastTxCommit(ctx context.Context, tx *pb.TxRaw) (*BroadcastResult, error) {
	raw, err := marshalTxRaw(tx)
	if err != nil {
		return nil, err
	}

	res, err := c.http.BroadcastTxCommit(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: broadcast_tx_commit against %s: %v", ibcerrors.ErrRPCFailure, c.rpcAddr, err)
	}
	if res.CheckTx.Code != 0 {
		return nil, fmt.Errorf("%w: check_tx rejected the transaction (code %d): %s",
			ibcerrors.ErrRPCFailure, res.CheckTx.Code, res.CheckTx.Log)
	}
	if res.DeliverTx.Code != 0 {
		return nil, fmt.Errorf("%w: deliver_tx rejected the transaction (code %d): %s",
			ibcerrors.ErrRPCFailure, res.DeliverTx.Code, res.DeliverTx.Log)
	}

	return &BroadcastResult{Height: res.Height, Events: flattenEvents(res.DeliverTx.Events)}, nil
}

// LatestHeight reads the node's current height via status, for callers
// that need a recent height to anchor a light-client query at (e.g. the
// connect flow's genesis header when no trusted_height is configured).
func (c *Client) LatestHeight(ctx context.Context) (int64, error) {
	result, err := c.http.Status(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: status against %s: %v", ibcerrors.ErrRPCFailure, c.rpcAddr, err)
	}
	return result.SyncInfo.LatestBlockHeight, nil
}

// LightBlock fetches the signed header and validator set at height,
// satisfying the light-client genesis/update queries the connect flow
// and header-rotation code need.
func (c *Client) LightBlock(ctx context.Context, height int64) (lightclient.LightBlock, error) {
	h := height
	commit, err := c.http.Commit(ctx, &h)
	if err != nil {
		return lightclient.LightBlock{}, fmt.Errorf("%w: commit at height %d against %s: %v", ibcerrors.ErrRPCFailure, height, c.rpcAddr, err)
	}

	var validators []*cmttypes.Validator
	page := 1
	perPage := 100
	for {
		result, err := c.http.Validators(ctx, &h, &page, &perPage)
		if err != nil {
			return lightclient.LightBlock{}, fmt.Errorf("%w: validators at height %d against %s: %v", ibcerrors.ErrRPCFailure, height, c.rpcAddr, err)
		}
		validators = append(validators, result.Validators...)
		if len(validators) >= result.Total {
			break
		}
		page++
	}

	validatorSet, err := cmttypes.ValidatorSetFromExistingValidators(validators)
	if err != nil {
		return lightclient.LightBlock{}, fmt.Errorf("%w: building validator set at height %d: %v", ibcerrors.ErrRPCFailure, height, err)
	}

	return lightclient.LightBlock{
		SignedHeader: &commit.SignedHeader,
		Validators:   validatorSet,
	}, nil
}

func marshalTxRaw(tx *pb.TxRaw) ([]byte, error) {
	raw, err := codec.Marshal(tx)
	if err != nil {
		return nil, fmt.Errorf("marshaling tx raw: %w", err)
	}
	return raw, nil
}

func flattenEvents(raw []abcitypes.Event) []Event {
	events := make([]Event, 0, len(raw))
	for _, e := range raw {
		attrs := make(map[string]string, len(e.Attributes))
		for _, a := range e.Attributes {
			attrs[a.Key] = a.Value
		}
		events = append(events, Event{Type: e.Type, Attributes: attrs})
	}
	return events
}
