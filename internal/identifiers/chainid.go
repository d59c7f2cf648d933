package identifiers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/soloibc/solo-machine/internal/ibcerrors"
)

// ChainID is "{name}-{version}"; version is the trailing integer and every
// IBC revision number for this chain derives from it.
type ChainID struct {
	id      string
	version uint64
}

// ParseChainID splits s into its name and trailing "-N" version. A chain id
// with no trailing "-N" has version 0. An empty string is an error.
func ParseChainID(s string) (ChainID, error) {
	if s == "" {
		return ChainID{}, fmt.Errorf("%w: chain id must not be empty", ibcerrors.ErrInputValidation)
	}

	idx := strings.LastIndex(s, "-")
	if idx < 0 {
		return ChainID{id: s, version: 0}, nil
	}

	suffix := s[idx+1:]
	version, err := strconv.ParseUint(suffix, 10, 64)
	if err != nil {
		// No numeric suffix, e.g. "foo-bar": version defaults to 0 and the
		// whole string is the name.
		return ChainID{id: s, version: 0}, nil
	}

	return ChainID{id: s, version: version}, nil
}

// String returns the chain id's wire form, e.g. "testnet-42".
func (c ChainID) String() string { return c.id }

// Version returns the trailing integer, or 0 if the chain id has none.
func (c ChainID) Version() uint64 { return c.version }
