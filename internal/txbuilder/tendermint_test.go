package txbuilder

import (
	"testing"
	"time"

	cmttypes "github.com/cometbft/cometbft/types"

	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/config"
	"github.com/soloibc/solo-machine/internal/lightclient"
)

func fixtureGenesis(chainID string, height int64) lightclient.LightBlock {
	header := &cmttypes.Header{
		ChainID:            chainID,
		Height:             height,
		Time:               time.Unix(1700000000, 0).UTC(),
		AppHash:            []byte("apphash0"),
		NextValidatorsHash: []byte("nextvals0"),
	}
	return lightclient.LightBlock{
		SignedHeader: &cmttypes.SignedHeader{Header: header},
		Validators:   &cmttypes.ValidatorSet{},
	}
}

func TestBuildCreateTendermintClient(t *testing.T) {
	b, signer := newTestBuilder()
	cfg := config.ChainConfig{
		TrustLevelNum:   1,
		TrustLevelDenom: 3,
		TrustingPeriod:  14 * 24 * time.Hour,
		MaxClockDrift:   10 * time.Second,
	}

	msg, err := b.BuildCreateTendermintClient("testnet-1", cfg, fixtureGenesis("testnet-1", 10), int64(21*24*time.Hour))
	if err != nil {
		t.Fatalf("BuildCreateTendermintClient: %v", err)
	}
	if msg.Signer != signer.address {
		t.Fatalf("msg.Signer = %s, want %s", msg.Signer, signer.address)
	}
	if msg.ClientState.TypeUrl != codec.TypeURLTendermintClientState {
		t.Fatalf("client state type url = %s, want %s", msg.ClientState.TypeUrl, codec.TypeURLTendermintClientState)
	}
	if msg.ConsensusState.TypeUrl != codec.TypeURLTendermintConsensusState {
		t.Fatalf("consensus state type url = %s, want %s", msg.ConsensusState.TypeUrl, codec.TypeURLTendermintConsensusState)
	}
}

func TestBuildCreateTendermintClientRejectsChainIDMismatch(t *testing.T) {
	b, _ := newTestBuilder()
	cfg := config.ChainConfig{TrustLevelNum: 1, TrustLevelDenom: 3, TrustingPeriod: time.Hour, MaxClockDrift: time.Second}
	if _, err := b.BuildCreateTendermintClient("testnet-2", cfg, fixtureGenesis("testnet-1", 10), 0); err == nil {
		t.Fatal("expected chain id mismatch to be rejected")
	}
}
