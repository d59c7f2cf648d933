// Package lightclient implements the counterparty side of the solo
// machine's IBC connection: a CometBFT light client tracking the
// remote chain's validator set, built directly on
// github.com/cometbft/cometbft/light rather than re-deriving the
// trust-threshold math by hand.
package lightclient

import (
	"bytes"
	"fmt"
	"time"

	cmtlight "github.com/cometbft/cometbft/light"
	cmtmath "github.com/cometbft/cometbft/libs/math"
	cmttypes "github.com/cometbft/cometbft/types"

	"github.com/soloibc/solo-machine/internal/config"
	"github.com/soloibc/solo-machine/internal/ibcerrors"
	"github.com/soloibc/solo-machine/internal/pb"
)

// LightBlock is a signed header paired with the validator set that
// signed it, as returned by an RPC provider at a given height.
type LightBlock struct {
	SignedHeader *cmttypes.SignedHeader
	Validators   *cmttypes.ValidatorSet
}

// NewClientState builds the initial 07-tendermint-equivalent client and
// consensus state from a trusted genesis light block and a chain's
// registration-time configuration (§4.2's MsgCreateClient construction).
func NewClientState(chainID string, cfg config.ChainConfig, genesis LightBlock) (*pb.TendermintClientState, *pb.TendermintConsensusState, error) {
	if genesis.SignedHeader == nil || genesis.SignedHeader.Header == nil || genesis.Validators == nil {
		return nil, nil, fmt.Errorf("%w: genesis light block is incomplete", ibcerrors.ErrInputValidation)
	}
	if genesis.SignedHeader.Header.ChainID != chainID {
		return nil, nil, fmt.Errorf("%w: genesis header chain id %q does not match %q",
			ibcerrors.ErrInputValidation, genesis.SignedHeader.Header.ChainID, chainID)
	}
	if genesis.SignedHeader.Header.Height <= 0 {
		return nil, nil, fmt.Errorf("%w: genesis header has non-positive height %d",
			ibcerrors.ErrInputValidation, genesis.SignedHeader.Header.Height)
	}

	clientState := &pb.TendermintClientState{
		ChainId: chainID,
		TrustLevel: &pb.Fraction{
			Numerator:   cfg.TrustLevelNum,
			Denominator: cfg.TrustLevelDenom,
		},
		TrustingPeriod:  int64(cfg.TrustingPeriod),
		UnbondingPeriod: int64(cfg.TrustingPeriod) * 3 / 2,
		MaxClockDrift:   int64(cfg.MaxClockDrift),
		FrozenHeight:    &pb.Height{RevisionNumber: 0, RevisionHeight: 0},
		LatestHeight: &pb.Height{
			RevisionNumber: revisionFromChainID(chainID),
			RevisionHeight: uint64(genesis.SignedHeader.Height),
		},
		ProofSpecs: []*pb.ProofSpec{pb.ProofSpecIAVL, pb.ProofSpecTendermint},
		UpgradePath: []string{"upgrade", "upgradedIBCState"},
	}

	consensusState := consensusStateFromHeader(genesis.SignedHeader.Header)

	return clientState, consensusState, nil
}

func consensusStateFromHeader(header *cmttypes.Header) *pb.TendermintConsensusState {
	return &pb.TendermintConsensusState{
		Timestamp:          header.Time.UnixNano(),
		Root:               &pb.MerkleRoot{Hash: header.AppHash},
		NextValidatorsHash: header.NextValidatorsHash,
	}
}

// VerifyUpdate checks untrusted against the client's trusted state using
// cmtlight.Verify, and returns the new consensus state to persist. It
// rejects updates once the client state is frozen or the trusted
// consensus state has aged past the trusting period, and enforces the
// monotonic-height and within-clock-drift invariants IBC requires of
// MsgUpdateClient.
func VerifyUpdate(
	clientState *pb.TendermintClientState,
	trustedHeight uint64,
	trustedConsensusState *pb.TendermintConsensusState,
	trustedValidators *cmttypes.ValidatorSet,
	untrusted LightBlock,
	now time.Time,
) (*pb.TendermintConsensusState, error) {
	if clientState.GetFrozenHeight().GetRevisionHeight() != 0 {
		return nil, fmt.Errorf("%w: client is frozen at height %d", ibcerrors.ErrLightClientFailure, clientState.GetFrozenHeight().GetRevisionHeight())
	}

	trustingPeriod := time.Duration(clientState.TrustingPeriod)
	maxClockDrift := time.Duration(clientState.MaxClockDrift)

	trustedTime := time.Unix(0, trustedConsensusState.GetTimestamp())
	if IsExpired(trustedConsensusState, trustingPeriod, now) {
		return nil, fmt.Errorf("%w: trusted consensus state at %s is past its trusting period (%s)",
			ibcerrors.ErrLightClientFailure, trustedTime, trustingPeriod)
	}

	untrustedHeight := uint64(untrusted.SignedHeader.Height)
	if untrustedHeight <= trustedHeight {
		return nil, fmt.Errorf("%w: update height %d is not greater than trusted height %d",
			ibcerrors.ErrLightClientFailure, untrustedHeight, trustedHeight)
	}

	trustedHeader := &cmttypes.SignedHeader{
		Header: &cmttypes.Header{
			ChainID:            clientState.ChainId,
			Height:             int64(trustedHeight),
			Time:               trustedTime,
			NextValidatorsHash: trustedConsensusState.GetNextValidatorsHash(),
			AppHash:            trustedConsensusState.GetRoot().GetHash(),
		},
	}

	trustLevel := cmtmath.Fraction{
		Numerator:   int64(clientState.GetTrustLevel().GetNumerator()),
		Denominator: int64(clientState.GetTrustLevel().GetDenominator()),
	}

	err := cmtlight.Verify(
		trustedHeader,
		trustedValidators,
		untrusted.SignedHeader,
		untrusted.Validators,
		trustingPeriod,
		now,
		maxClockDrift,
		trustLevel,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ibcerrors.ErrLightClientFailure, err)
	}

	return consensusStateFromHeader(untrusted.SignedHeader.Header), nil
}

// IsExpired reports whether a consensus state's timestamp has aged past
// trustingPeriod relative to now.
func IsExpired(consensusState *pb.TendermintConsensusState, trustingPeriod time.Duration, now time.Time) bool {
	expiry := time.Unix(0, consensusState.GetTimestamp()).Add(trustingPeriod)
	return !now.Before(expiry)
}

// CheckMisbehaviour reports whether two signed headers for the same
// height disagree, which under the solo machine's light client
// Non-goals is surfaced as an invariant violation rather than acted on
// (no freezing pipeline is implemented).
func CheckMisbehaviour(chainID string, height uint64, a, b *cmttypes.SignedHeader) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil header passed to misbehaviour check", ibcerrors.ErrInputValidation)
	}
	if bytes.Equal(a.Commit.BlockID.Hash, b.Commit.BlockID.Hash) {
		return nil
	}
	return fmt.Errorf("%w: conflicting headers for %s at height %d", ibcerrors.ErrInvariantViolation, chainID, height)
}

// revisionFromChainID extracts the trailing "-N" revision number IBC
// chain identifiers carry, defaulting to 0 when absent.
func revisionFromChainID(chainID string) uint64 {
	var rev uint64
	var idx int
	for i := len(chainID) - 1; i >= 0; i-- {
		if chainID[i] == '-' {
			idx = i
			break
		}
		if chainID[i] < '0' || chainID[i] > '9' {
			return 0
		}
	}
	if idx == 0 {
		return 0
	}
	for _, c := range chainID[idx+1:] {
		rev = rev*10 + uint64(c-'0')
	}
	return rev
}
