package ibc

import (
	"context"
	"encoding/json"
	"math/big"
	"os"
	"testing"
	"time"

	cmttypes "github.com/cometbft/cometbft/types"
	_ "github.com/lib/pq"

	"github.com/soloibc/solo-machine/internal/bank"
	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/config"
	"github.com/soloibc/solo-machine/internal/cryptokeys"
	"github.com/soloibc/solo-machine/internal/eventbus"
	"github.com/soloibc/solo-machine/internal/lightclient"
	"github.com/soloibc/solo-machine/internal/pb"
	"github.com/soloibc/solo-machine/internal/rpcclient"
	"github.com/soloibc/solo-machine/internal/store"
	"github.com/soloibc/solo-machine/internal/txbuilder"
)

// fakeSigner is a deterministic, in-memory cryptokeys.Signer, the same
// role fakesigner_test.go plays for internal/txbuilder.
type fakeSigner struct {
	publicKey cryptokeys.PublicKey
	address   string
}

func newFakeSigner() *fakeSigner {
	return &fakeSigner{
		publicKey: cryptokeys.Ed25519PublicKey{Raw: make([]byte, 32)},
		address:   "solo1fakeaddressxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
	}
}

func (s *fakeSigner) ToPublicKey() (cryptokeys.PublicKey, error) { return s.publicKey, nil }
func (s *fakeSigner) AccountPrefix() string                      { return "solo" }
func (s *fakeSigner) ToAccountAddress() (string, error)          { return s.address, nil }
func (s *fakeSigner) Sign(ctx context.Context, requestID *string, message cryptokeys.SignMessage) ([]byte, error) {
	return []byte("deadbeefdeadbeefdeadbeefdeadbeef"), nil
}

// fakeBroadcaster records every transaction handed to it and hands back
// a scripted sequence of events, one slice per call, so each handshake
// or packet step can assert on exactly the events it produced.
type fakeBroadcaster struct {
	t          *testing.T
	script     [][]rpcclient.Event
	call       int
	broadcasts []*pb.TxRaw
}

func (f *fakeBroadcaster) BroadcastTxCommit(ctx context.Context, tx *pb.TxRaw) (*rpcclient.BroadcastResult, error) {
	f.broadcasts = append(f.broadcasts, tx)
	if f.call >= len(f.script) {
		f.t.Fatalf("broadcastTxCommit called more times (%d) than the test script provides for", f.call+1)
	}
	events := f.script[f.call]
	f.call++
	return &rpcclient.BroadcastResult{Height: int64(f.call), Events: events}, nil
}

// fakeLightBlockSource hands back one fixed light block regardless of
// the height asked for, sufficient for exercising the genesis-fetch step
// without a real Tendermint node.
type fakeLightBlockSource struct {
	height int64
	block  lightclient.LightBlock
}

func (f *fakeLightBlockSource) LatestHeight(ctx context.Context) (int64, error) {
	return f.height, nil
}

func (f *fakeLightBlockSource) LightBlock(ctx context.Context, height int64) (lightclient.LightBlock, error) {
	return f.block, nil
}

// fakeChainQueryClient answers the account and unbonding-period queries
// the connect and broadcast flows need.
type fakeChainQueryClient struct {
	unbondingPeriod int64
}

func (f *fakeChainQueryClient) QueryAccount(ctx context.Context, address string) (*pb.BaseAccount, error) {
	return &pb.BaseAccount{Address: address, AccountNumber: 7, Sequence: 0}, nil
}

func (f *fakeChainQueryClient) QueryUnbondingPeriod(ctx context.Context) (int64, error) {
	return f.unbondingPeriod, nil
}

func fixtureGenesis(chainID string, height int64) lightclient.LightBlock {
	header := &cmttypes.Header{
		ChainID:            chainID,
		Height:             height,
		Time:               time.Unix(1700000000, 0).UTC(),
		AppHash:            []byte("apphash0000000000000000000000000"),
		NextValidatorsHash: []byte("nextvals000000000000000000000000"),
	}
	return lightclient.LightBlock{
		SignedHeader: &cmttypes.SignedHeader{Header: header},
		Validators:   &cmttypes.ValidatorSet{},
	}
}

type testEnv struct {
	svc     *Service
	events  []eventbus.Event
	chains  *store.ChainRepository
	broad   *fakeBroadcaster
	chainID string
}

func newTestEnv(t *testing.T, broadcastScript [][]rpcclient.Event) *testEnv {
	t.Helper()
	connStr := os.Getenv("SOLO_TEST_DATABASE_URL")
	if connStr == "" {
		t.Skip("SOLO_TEST_DATABASE_URL not set, skipping ibc integration test")
	}
	cfg := &config.Config{DatabaseURL: connStr, DatabaseMaxConns: 5, DatabaseMinConns: 1}
	client, err := store.NewClient(cfg)
	if err != nil {
		t.Fatalf("connecting to test database: %v", err)
	}
	t.Cleanup(func() { client.Close() })
	if err := client.MigrateUp(context.Background()); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	db := client.DB()
	for _, table := range []string{"account_operations", "accounts", "chain_keys", "ibc_data", "chains"} {
		if _, err := db.ExecContext(context.Background(), "TRUNCATE "+table+" CASCADE"); err != nil {
			t.Fatalf("truncating %s: %v", table, err)
		}
	}

	env := &testEnv{}
	bus := eventbus.New()
	bus.Register(eventbus.HandlerFunc(func(ctx context.Context, event eventbus.Event) error {
		env.events = append(env.events, event)
		return nil
	}))

	chains := store.NewChainRepository(client)
	ibcData := store.NewIBCDataRepository(client)
	chainKeys := store.NewChainKeyRepository(client)
	accounts := store.NewAccountRepository(client)
	bankSvc := bank.New(client, accounts, bus)

	signer := newFakeSigner()
	builder := txbuilder.New(signer, "solo-machine", "transfer", "5000", "stake", 200000)

	broad := &fakeBroadcaster{t: t, script: broadcastScript}
	lightBlocks := &fakeLightBlockSource{height: 10, block: fixtureGenesis("testnet-1", 10)}
	query := &fakeChainQueryClient{unbondingPeriod: int64(21 * 24 * time.Hour / time.Nanosecond)}

	svc := New(builder, broad, lightBlocks, query, client, chains, ibcData, chainKeys, bankSvc, bus)

	chainID := "testnet-1"
	chain := &store.Chain{
		ID:     chainID,
		NodeID: "node-0",
		Config: store.ChainConfigRow{
			GRPCAddr:        "localhost:9090",
			RPCAddr:         "localhost:26657",
			FeeAmount:       "5000",
			FeeDenom:        "stake",
			FeeGasLimit:     200000,
			TrustLevelNum:   1,
			TrustLevelDenom: 3,
			TrustingPeriod:  int64(14 * 24 * time.Hour),
			MaxClockDrift:   int64(10 * time.Second),
			RPCTimeout:      int64(10 * time.Second),
			Diversifier:     "solo-machine",
			PortID:          "transfer",
		},
	}
	if err := chains.Insert(context.Background(), nil, chain); err != nil {
		t.Fatalf("inserting test chain: %v", err)
	}

	env.svc, env.chains, env.broad, env.chainID = svc, chains, broad, chainID
	return env
}

// connectScript lays out the exact sequence of events
// BroadcastTxCommit must hand back across the 5 on-chain broadcasts a
// full Connect performs: create_client, connection_open_init,
// connection_open_ack, channel_open_init, channel_open_ack (the
// TryOpen/Confirm steps never reach the chain, per the handshake's
// local-mirror design).
func connectScript() [][]rpcclient.Event {
	return [][]rpcclient.Event{
		{{Type: "create_client", Attributes: map[string]string{"client_id": "06-solomachine-55"}}},
		{{Type: "connection_open_init", Attributes: map[string]string{"connection_id": "connection-3"}}},
		{{Type: "message", Attributes: map[string]string{"action": "connection_open_ack"}}},
		{{Type: "channel_open_init", Attributes: map[string]string{"channel_id": "channel-8"}}},
		{{Type: "message", Attributes: map[string]string{"action": "channel_open_ack"}}},
	}
}

func TestConnectEstablishesClientConnectionAndChannel(t *testing.T) {
	env := newTestEnv(t, connectScript())
	ctx := context.Background()

	if err := env.svc.Connect(ctx, env.chainID, "connect memo"); err != nil {
		t.Fatalf("Connect: %v", err)
	}

	chain, err := env.chains.Get(ctx, nil, env.chainID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !chain.ConnectionDetails.Valid() {
		t.Fatalf("expected ConnectionDetails to be fully populated, got %+v", chain.ConnectionDetails)
	}
	if chain.ConnectionDetails.SoloMachineClientID != "06-solomachine-55" {
		t.Fatalf("solo machine client id = %s, want 06-solomachine-55", chain.ConnectionDetails.SoloMachineClientID)
	}
	if chain.ConnectionDetails.TendermintConnectionID != "connection-3" {
		t.Fatalf("tendermint connection id = %s, want connection-3", chain.ConnectionDetails.TendermintConnectionID)
	}
	if chain.ConnectionDetails.TendermintChannelID != "channel-8" {
		t.Fatalf("tendermint channel id = %s, want channel-8", chain.ConnectionDetails.TendermintChannelID)
	}
	if chain.ConnectionDetails.TendermintClientID == "" ||
		chain.ConnectionDetails.SoloMachineConnectionID == "" ||
		chain.ConnectionDetails.SoloMachineChannelID == "" {
		t.Fatalf("expected locally generated ids to be populated, got %+v", chain.ConnectionDetails)
	}

	if env.broad.call != len(connectScript()) {
		t.Fatalf("broadcastTxCommit called %d times, want %d", env.broad.call, len(connectScript()))
	}

	wantKinds := []eventbus.Kind{
		eventbus.KindCreatedSoloMachineClient,
		eventbus.KindCreatedTendermintClient,
		eventbus.KindInitializedConnectionOnTendermint,
		eventbus.KindInitializedConnectionOnSoloMachine,
		eventbus.KindConfirmedConnectionOnTendermint,
		eventbus.KindConfirmedConnectionOnSoloMachine,
		eventbus.KindInitializedChannelOnTendermint,
		eventbus.KindInitializedChannelOnSoloMachine,
		eventbus.KindConfirmedChannelOnTendermint,
		eventbus.KindConfirmedChannelOnSoloMachine,
		eventbus.KindConnectionEstablished,
	}
	if len(env.events) != len(wantKinds) {
		t.Fatalf("got %d events, want %d: %+v", len(env.events), len(wantKinds), env.events)
	}
	for i, kind := range wantKinds {
		if env.events[i].Kind != kind {
			t.Fatalf("event %d kind = %s, want %s", i, env.events[i].Kind, kind)
		}
	}

	if err := env.svc.Connect(ctx, env.chainID, "again"); err == nil {
		t.Fatal("expected a second Connect against an already-connected chain to fail")
	}
}

func connectedTestEnv(t *testing.T, tailScript [][]rpcclient.Event) *testEnv {
	t.Helper()
	env := newTestEnv(t, append(connectScript(), tailScript...))
	if err := env.svc.Connect(context.Background(), env.chainID, "connect memo"); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	env.events = nil
	return env
}

func TestSendToChainDebitsLocallyAndBroadcastsRecvPacket(t *testing.T) {
	env := connectedTestEnv(t, [][]rpcclient.Event{
		{{Type: "message", Attributes: map[string]string{"action": "recv_packet"}}},
	})
	ctx := context.Background()

	signerAddr, err := env.svc.builder.Signer.ToAccountAddress()
	if err != nil {
		t.Fatalf("ToAccountAddress: %v", err)
	}
	if err := env.svc.bank.Mint(ctx, signerAddr, "stake", big.NewInt(1000)); err != nil {
		t.Fatalf("Mint: %v", err)
	}
	// Mint emits its own TokensMinted event; only SendToChain's are checked below.
	env.events = nil

	if err := env.svc.SendToChain(ctx, env.chainID, big.NewInt(400), "stake", "cosmos1receiver", "send memo"); err != nil {
		t.Fatalf("SendToChain: %v", err)
	}

	balance, err := env.svc.bank.Balance(ctx, signerAddr, "stake")
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if balance.Cmp(big.NewInt(600)) != 0 {
		t.Fatalf("balance after send = %s, want 600", balance)
	}

	if len(env.events) != 1 || env.events[0].Kind != eventbus.KindTokensSent {
		t.Fatalf("expected exactly one TokensSent event, got %+v", env.events)
	}

	last := env.broad.broadcasts[len(env.broad.broadcasts)-1]
	var body pb.TxBody
	if err := codec.Unmarshal(last.BodyBytes, &body); err != nil {
		t.Fatalf("unmarshaling broadcast tx body: %v", err)
	}
	if len(body.Messages) != 1 || body.Messages[0].TypeUrl != codec.TypeURLMsgRecvPacket {
		t.Fatalf("final broadcast messages = %+v, want a single %s", body.Messages, codec.TypeURLMsgRecvPacket)
	}

	if err := env.svc.SendToChain(ctx, env.chainID, big.NewInt(1_000_000), "stake", "cosmos1receiver", "overdraft"); err == nil {
		t.Fatal("expected an overdraft send to fail before any broadcast")
	}
}

func TestReceiveFromChainCreditsLocalBalancePerPacket(t *testing.T) {
	env := connectedTestEnv(t, nil)
	ctx := context.Background()

	chain, err := env.chains.Get(ctx, nil, env.chainID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	details := chain.ConnectionDetails

	packetData, err := json.Marshal(pb.FungibleTokenPacketData{
		Denom:    "uatom",
		Amount:   "250",
		Sender:   "cosmos1sender",
		Receiver: "solo1fakeaddressxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		Memo:     "receive memo",
	})
	if err != nil {
		t.Fatalf("marshaling packet data: %v", err)
	}

	env.broad.script = append(env.broad.script,
		// step 1: msg_update_solo_machine_client
		[]rpcclient.Event{{Type: "message", Attributes: map[string]string{"action": "update_client"}}},
		// step 2: msg_transfer, producing one send_packet event
		[]rpcclient.Event{{Type: "send_packet", Attributes: map[string]string{
			"packet_sequence":          "1",
			"packet_src_port":          "transfer",
			"packet_src_channel":       details.TendermintChannelID,
			"packet_dst_port":          "transfer",
			"packet_dst_channel":       details.SoloMachineChannelID,
			"packet_data":              string(packetData),
			"packet_timeout_height":    "0-500",
			"packet_timeout_timestamp": "0",
		}}},
		// step 3: msg_acknowledgement
		[]rpcclient.Event{{Type: "message", Attributes: map[string]string{"action": "acknowledge_packet"}}},
	)

	if err := env.svc.ReceiveFromChain(ctx, env.chainID, big.NewInt(250), "uatom", "cosmos1receiver", "receive memo"); err != nil {
		t.Fatalf("ReceiveFromChain: %v", err)
	}

	balance, err := env.svc.bank.Balance(ctx, "solo1fakeaddressxxxxxxxxxxxxxxxxxxxxxxxxxxxx", "uatom")
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if balance.Cmp(big.NewInt(250)) != 0 {
		t.Fatalf("balance after receive = %s, want 250", balance)
	}

	if len(env.events) != 1 || env.events[0].Kind != eventbus.KindTokensReceived {
		t.Fatalf("expected exactly one TokensReceived event, got %+v", env.events)
	}
}
