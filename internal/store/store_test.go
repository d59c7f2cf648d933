// Uses a real Postgres test database when SOLO_TEST_DATABASE_URL is
// set; otherwise these tests are skipped, the same pattern the teacher
// repository's database tests follow.
package store

import (
	"context"
	"database/sql"
	"math/big"
	"os"
	"testing"

	_ "github.com/lib/pq"

	"github.com/soloibc/solo-machine/internal/config"
)

var testClient *Client

func TestMain(m *testing.M) {
	connStr := os.Getenv("SOLO_TEST_DATABASE_URL")
	if connStr == "" {
		os.Exit(0)
	}

	cfg := &config.Config{DatabaseURL: connStr, DatabaseMaxConns: 5, DatabaseMinConns: 1}
	client, err := NewClient(cfg)
	if err != nil {
		panic("connecting to test database: " + err.Error())
	}
	if err := client.MigrateUp(context.Background()); err != nil {
		panic("migrating test database: " + err.Error())
	}
	testClient = client

	code := m.Run()
	client.Close()
	os.Exit(code)
}

func resetTables(t *testing.T) {
	t.Helper()
	_, err := testClient.DB().ExecContext(context.Background(),
		`TRUNCATE account_operations, accounts, chain_keys, ibc_data, chains CASCADE`)
	if err != nil {
		t.Fatalf("truncating tables: %v", err)
	}
}

func TestChainInsertGetIncrementSequence(t *testing.T) {
	if testClient == nil {
		t.Skip("SOLO_TEST_DATABASE_URL not configured")
	}
	resetTables(t)

	repo := NewChainRepository(testClient)
	ctx := context.Background()

	chain := &Chain{
		ID:                 "testnet-1",
		NodeID:              "node-0",
		Config:              ChainConfigRow{PortID: "transfer", Diversifier: "solo-machine"},
		ConsensusTimestamp:  1700000000,
		Sequence:            0,
		PacketSequence:      0,
	}
	if err := repo.Insert(ctx, nil, chain); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, err := repo.Get(ctx, nil, "testnet-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.NodeID != "node-0" || got.Config.PortID != "transfer" {
		t.Fatalf("got = %+v", got)
	}
	if got.ConnectionDetails != nil {
		t.Fatalf("expected nil connection details, got %+v", got.ConnectionDetails)
	}

	consumed, err := repo.IncrementSequence(ctx, nil, "testnet-1")
	if err != nil {
		t.Fatalf("IncrementSequence: %v", err)
	}
	if consumed != 0 {
		t.Fatalf("first IncrementSequence should consume 0, got %d", consumed)
	}
	consumed, err = repo.IncrementSequence(ctx, nil, "testnet-1")
	if err != nil {
		t.Fatalf("IncrementSequence: %v", err)
	}
	if consumed != 1 {
		t.Fatalf("second IncrementSequence should consume 1, got %d", consumed)
	}

	if _, err := repo.IncrementSequence(ctx, nil, "no-such-chain"); !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestChainConnectionDetailsRoundTrip(t *testing.T) {
	if testClient == nil {
		t.Skip("SOLO_TEST_DATABASE_URL not configured")
	}
	resetTables(t)

	repo := NewChainRepository(testClient)
	ctx := context.Background()
	chain := &Chain{ID: "testnet-1", NodeID: "node-0", Config: ChainConfigRow{}}
	if err := repo.Insert(ctx, nil, chain); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	details := ConnectionDetails{
		SoloMachineClientID:     "06-solomachine-0",
		TendermintClientID:      "07-tendermint-0",
		SoloMachineConnectionID: "connection-0",
		TendermintConnectionID:  "connection-1",
		SoloMachineChannelID:    "channel-0",
		TendermintChannelID:     "channel-1",
	}
	if !details.Valid() {
		t.Fatal("fixture details should be valid")
	}
	if err := repo.SetConnectionDetails(ctx, nil, "testnet-1", details); err != nil {
		t.Fatalf("SetConnectionDetails: %v", err)
	}

	got, err := repo.Get(ctx, nil, "testnet-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ConnectionDetails == nil || *got.ConnectionDetails != details {
		t.Fatalf("connection details = %+v, want %+v", got.ConnectionDetails, details)
	}
}

func TestAccountCreditDebitInvariant(t *testing.T) {
	if testClient == nil {
		t.Skip("SOLO_TEST_DATABASE_URL not configured")
	}
	resetTables(t)

	repo := NewAccountRepository(testClient)
	ctx := context.Background()

	if err := repo.Credit(ctx, nil, "cosmos1abc", "uatom", big.NewInt(100), AccountOperationType{Kind: "mint"}); err != nil {
		t.Fatalf("Credit: %v", err)
	}
	balance, err := repo.Balance(ctx, nil, "cosmos1abc", "uatom")
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if balance.Cmp(big.NewInt(100)) != 0 {
		t.Fatalf("balance = %s, want 100", balance)
	}

	if err := repo.Debit(ctx, nil, "cosmos1abc", "uatom", big.NewInt(40), AccountOperationType{Kind: "burn"}); err != nil {
		t.Fatalf("Debit: %v", err)
	}
	balance, err = repo.Balance(ctx, nil, "cosmos1abc", "uatom")
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if balance.Cmp(big.NewInt(60)) != 0 {
		t.Fatalf("balance = %s, want 60", balance)
	}

	err = repo.Debit(ctx, nil, "cosmos1abc", "uatom", big.NewInt(1000), AccountOperationType{Kind: "burn"})
	if err == nil {
		t.Fatal("expected insufficient balance error")
	}

	ops, err := repo.History(ctx, nil, "cosmos1abc", "uatom", 10, 0)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("expected 2 ledger entries, got %d", len(ops))
	}
	if ops[0].OperationType.Kind != "burn" {
		t.Fatalf("newest entry should be the burn, got %+v", ops[0])
	}
}

func TestIBCDataPutGetOverwrite(t *testing.T) {
	if testClient == nil {
		t.Skip("SOLO_TEST_DATABASE_URL not configured")
	}
	resetTables(t)

	repo := NewIBCDataRepository(testClient)
	ctx := context.Background()

	const path = "ibc/clients/07-tendermint-0/clientState"
	if _, err := repo.Get(ctx, nil, path); !IsNotFound(err) {
		t.Fatalf("expected not-found before first write, got %v", err)
	}

	if err := repo.Put(ctx, nil, path, []byte("v1")); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := repo.Get(ctx, nil, path)
	if err != nil || string(got) != "v1" {
		t.Fatalf("Get after first Put = %q, %v", got, err)
	}

	if err := repo.Put(ctx, nil, path, []byte("v2")); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	got, err = repo.Get(ctx, nil, path)
	if err != nil || string(got) != "v2" {
		t.Fatalf("Get after overwrite = %q, %v", got, err)
	}
}

func TestClientWithTxRollsBackOnError(t *testing.T) {
	if testClient == nil {
		t.Skip("SOLO_TEST_DATABASE_URL not configured")
	}
	resetTables(t)

	chains := NewChainRepository(testClient)
	ctx := context.Background()

	err := testClient.WithTx(ctx, func(tx *Tx) error {
		chain := &Chain{ID: "testnet-1", NodeID: "node-0"}
		if err := chains.Insert(ctx, tx, chain); err != nil {
			return err
		}
		return sql.ErrTxDone
	})
	if err == nil {
		t.Fatal("expected WithTx to surface the error")
	}

	if _, err := chains.Get(ctx, nil, "testnet-1"); !IsNotFound(err) {
		t.Fatalf("expected rollback to leave chain absent, got %v", err)
	}
}
