package lightclient

import (
	"testing"
	"time"

	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	cmttypes "github.com/cometbft/cometbft/types"

	"github.com/soloibc/solo-machine/internal/config"
	"github.com/soloibc/solo-machine/internal/ibcerrors"
	"github.com/soloibc/solo-machine/internal/pb"
)

func fixtureChainConfig() config.ChainConfig {
	return config.ChainConfig{
		TrustLevelNum:   1,
		TrustLevelDenom: 3,
		TrustingPeriod:  14 * 24 * time.Hour,
		MaxClockDrift:   10 * time.Second,
	}
}

func fixtureGenesisBlock(chainID string, height int64, appHash, nextValHash []byte) LightBlock {
	header := &cmttypes.Header{
		ChainID:            chainID,
		Height:             height,
		Time:               time.Unix(1700000000, 0).UTC(),
		AppHash:            appHash,
		NextValidatorsHash: nextValHash,
	}
	return LightBlock{
		SignedHeader: &cmttypes.SignedHeader{Header: header},
		Validators:   &cmttypes.ValidatorSet{},
	}
}

func TestNewClientStatePopulatesFromGenesis(t *testing.T) {
	genesis := fixtureGenesisBlock("testnet-1", 10, []byte("apphash0"), []byte("nextvals0"))

	clientState, consensusState, err := NewClientState("testnet-1", fixtureChainConfig(), genesis)
	if err != nil {
		t.Fatalf("NewClientState: %v", err)
	}

	if clientState.ChainId != "testnet-1" {
		t.Fatalf("ChainId = %q", clientState.ChainId)
	}
	if clientState.TrustLevel.Numerator != 1 || clientState.TrustLevel.Denominator != 3 {
		t.Fatalf("TrustLevel = %+v", clientState.TrustLevel)
	}
	if clientState.LatestHeight.RevisionHeight != 10 {
		t.Fatalf("LatestHeight = %+v", clientState.LatestHeight)
	}
	if clientState.FrozenHeight.RevisionHeight != 0 {
		t.Fatalf("new client should not be frozen, got %+v", clientState.FrozenHeight)
	}
	if len(clientState.ProofSpecs) != 2 {
		t.Fatalf("expected 2 proof specs, got %d", len(clientState.ProofSpecs))
	}

	if consensusState.Timestamp != genesis.SignedHeader.Time.UnixNano() {
		t.Fatalf("Timestamp = %d", consensusState.Timestamp)
	}
	if string(consensusState.Root.Hash) != "apphash0" {
		t.Fatalf("Root.Hash = %q", consensusState.Root.Hash)
	}
	if string(consensusState.NextValidatorsHash) != "nextvals0" {
		t.Fatalf("NextValidatorsHash = %q", consensusState.NextValidatorsHash)
	}
}

func TestNewClientStateRejectsChainIDMismatch(t *testing.T) {
	genesis := fixtureGenesisBlock("testnet-1", 10, nil, nil)
	if _, _, err := NewClientState("testnet-2", fixtureChainConfig(), genesis); err == nil {
		t.Fatal("expected chain id mismatch to be rejected")
	}
}

func TestNewClientStateRejectsIncompleteGenesis(t *testing.T) {
	if _, _, err := NewClientState("testnet-1", fixtureChainConfig(), LightBlock{}); err == nil {
		t.Fatal("expected incomplete genesis to be rejected")
	}
}

func TestIsExpired(t *testing.T) {
	consensusState := &pb.TendermintConsensusState{Timestamp: time.Unix(1000, 0).UnixNano()}
	trustingPeriod := time.Hour

	if IsExpired(consensusState, trustingPeriod, time.Unix(1000, 0).Add(30*time.Minute)) {
		t.Fatal("should not be expired 30 minutes in")
	}
	if !IsExpired(consensusState, trustingPeriod, time.Unix(1000, 0).Add(2*time.Hour)) {
		t.Fatal("should be expired after 2 hours")
	}
}

func TestVerifyUpdateRejectsFrozenClient(t *testing.T) {
	clientState := &pb.TendermintClientState{
		ChainId:         "testnet-1",
		TrustLevel:      &pb.Fraction{Numerator: 1, Denominator: 3},
		TrustingPeriod:  int64(14 * 24 * time.Hour),
		MaxClockDrift:   int64(10 * time.Second),
		FrozenHeight:    &pb.Height{RevisionHeight: 5},
	}
	trustedConsensusState := &pb.TendermintConsensusState{Timestamp: time.Now().UnixNano()}

	_, err := VerifyUpdate(clientState, 5, trustedConsensusState, &cmttypes.ValidatorSet{}, LightBlock{
		SignedHeader: &cmttypes.SignedHeader{Header: &cmttypes.Header{Height: 6}},
		Validators:   &cmttypes.ValidatorSet{},
	}, time.Now())
	if !ibcerrors.Is(err, ibcerrors.ErrLightClientFailure) {
		t.Fatalf("expected light client failure for frozen client, got %v", err)
	}
}

func TestVerifyUpdateRejectsExpiredTrustedState(t *testing.T) {
	clientState := &pb.TendermintClientState{
		ChainId:        "testnet-1",
		TrustLevel:     &pb.Fraction{Numerator: 1, Denominator: 3},
		TrustingPeriod: int64(time.Hour),
		MaxClockDrift:  int64(10 * time.Second),
		FrozenHeight:   &pb.Height{RevisionHeight: 0},
	}
	staleTimestamp := time.Now().Add(-2 * time.Hour).UnixNano()
	trustedConsensusState := &pb.TendermintConsensusState{Timestamp: staleTimestamp}

	_, err := VerifyUpdate(clientState, 5, trustedConsensusState, &cmttypes.ValidatorSet{}, LightBlock{
		SignedHeader: &cmttypes.SignedHeader{Header: &cmttypes.Header{Height: 6}},
		Validators:   &cmttypes.ValidatorSet{},
	}, time.Now())
	if !ibcerrors.Is(err, ibcerrors.ErrLightClientFailure) {
		t.Fatalf("expected light client failure for expired trusted state, got %v", err)
	}
}

func TestVerifyUpdateRejectsNonIncreasingHeight(t *testing.T) {
	clientState := &pb.TendermintClientState{
		ChainId:        "testnet-1",
		TrustLevel:     &pb.Fraction{Numerator: 1, Denominator: 3},
		TrustingPeriod: int64(14 * 24 * time.Hour),
		MaxClockDrift:  int64(10 * time.Second),
		FrozenHeight:   &pb.Height{RevisionHeight: 0},
	}
	trustedConsensusState := &pb.TendermintConsensusState{Timestamp: time.Now().UnixNano()}

	_, err := VerifyUpdate(clientState, 10, trustedConsensusState, &cmttypes.ValidatorSet{}, LightBlock{
		SignedHeader: &cmttypes.SignedHeader{Header: &cmttypes.Header{Height: 10}},
		Validators:   &cmttypes.ValidatorSet{},
	}, time.Now())
	if !ibcerrors.Is(err, ibcerrors.ErrLightClientFailure) {
		t.Fatalf("expected light client failure for non-increasing height, got %v", err)
	}
}

func TestCheckMisbehaviourAgreeingHeaders(t *testing.T) {
	hash := cmtbytes.HexBytes("blockhash0")
	a := &cmttypes.SignedHeader{Commit: &cmttypes.Commit{BlockID: cmttypes.BlockID{Hash: hash}}}
	b := &cmttypes.SignedHeader{Commit: &cmttypes.Commit{BlockID: cmttypes.BlockID{Hash: hash}}}
	if err := CheckMisbehaviour("testnet-1", 10, a, b); err != nil {
		t.Fatalf("agreeing headers should not be flagged as misbehaviour: %v", err)
	}
}

func TestCheckMisbehaviourConflictingHeaders(t *testing.T) {
	a := &cmttypes.SignedHeader{Commit: &cmttypes.Commit{BlockID: cmttypes.BlockID{Hash: cmtbytes.HexBytes("blockhashA")}}}
	b := &cmttypes.SignedHeader{Commit: &cmttypes.Commit{BlockID: cmttypes.BlockID{Hash: cmtbytes.HexBytes("blockhashB")}}}
	err := CheckMisbehaviour("testnet-1", 10, a, b)
	if !ibcerrors.Is(err, ibcerrors.ErrInvariantViolation) {
		t.Fatalf("expected invariant violation for conflicting headers, got %v", err)
	}
}

func TestRevisionFromChainID(t *testing.T) {
	cases := map[string]uint64{
		"testnet-1":   1,
		"testnet-42":  42,
		"testnet":     0,
		"testnet-":    0,
		"no-digits-x": 0,
	}
	for chainID, want := range cases {
		if got := revisionFromChainID(chainID); got != want {
			t.Errorf("revisionFromChainID(%q) = %d, want %d", chainID, got, want)
		}
	}
}
