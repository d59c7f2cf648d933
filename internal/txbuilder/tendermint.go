package txbuilder

import (
	"fmt"

	"github.com/soloibc/solo-machine/internal/codec"
	"github.com/soloibc/solo-machine/internal/config"
	"github.com/soloibc/solo-machine/internal/lightclient"
	"github.com/soloibc/solo-machine/internal/pb"
)

// BuildCreateTendermintClient constructs MsgCreateClient wrapping the
// counterparty's TendermintClientState/ConsensusState derived from a
// trusted genesis light block, per §4.3's msg_create_tendermint_client.
// unbondingPeriod is read from the chain's staking params via gRPC by
// the caller and passed in here.
func (b *Builder) BuildCreateTendermintClient(
	chainID string,
	cfg config.ChainConfig,
	genesis lightclient.LightBlock,
	unbondingPeriod int64,
) (*pb.MsgCreateClient, error) {
	clientState, consensusState, err := lightclient.NewClientState(chainID, cfg, genesis)
	if err != nil {
		return nil, fmt.Errorf("building tendermint client state: %w", err)
	}
	clientState.UnbondingPeriod = unbondingPeriod
	clientState.AllowUpdateAfterExpiry = true
	clientState.AllowUpdateAfterMisbehaviour = true

	clientStateAny, err := codec.ToAny(codec.TypeURLTendermintClientState, clientState)
	if err != nil {
		return nil, err
	}
	consensusStateAny, err := codec.ToAny(codec.TypeURLTendermintConsensusState, consensusState)
	if err != nil {
		return nil, err
	}
	signerAddr, err := b.signerAddress()
	if err != nil {
		return nil, err
	}

	return &pb.MsgCreateClient{
		ClientState:    clientStateAny,
		ConsensusState: consensusStateAny,
		Signer:         signerAddr,
	}, nil
}
