// Package identifiers implements the IBC identifier, chain-id and path
// types from the data model: typed, length-checked identifiers and the
// store-path builders that key the IBC object store.
package identifiers

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/soloibc/solo-machine/internal/ibcerrors"
)

const (
	minIdentifierLength = 1
	maxIdentifierLength = 64

	minClientIDLength     = 9
	minConnectionIDLength = 10
	minChannelIDLength    = 8
	minPortIDLength       = 2

	randomSuffixAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	randomSuffixLength   = 4
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z0-9._+\-#\[\]<>]+$`)

// Identifier is a validated IBC identifier: non-blank UTF-8, no '/', 1-64
// bytes, matching the IBC identifier character class.
type Identifier string

// Parse validates s as a generic identifier.
func Parse(s string) (Identifier, error) {
	if err := validate(s, minIdentifierLength); err != nil {
		return "", err
	}
	return Identifier(s), nil
}

func validate(s string, minLen int) error {
	if len(s) < minLen || len(s) > maxIdentifierLength {
		return fmt.Errorf("%w: invalid identifier length %d (want %d-%d): %q",
			ibcerrors.ErrInputValidation, len(s), minLen, maxIdentifierLength, s)
	}
	if strings.Contains(s, "/") {
		return fmt.Errorf("%w: identifier must not contain '/': %q", ibcerrors.ErrInputValidation, s)
	}
	if !identifierPattern.MatchString(s) {
		return fmt.Errorf("%w: identifier has invalid characters: %q", ibcerrors.ErrInputValidation, s)
	}
	return nil
}

// String returns the identifier's wire form.
func (id Identifier) String() string { return string(id) }

// ClientID is an Identifier with the IBC client minimum length.
type ClientID string

// ParseClientID validates s as a client identifier.
func ParseClientID(s string) (ClientID, error) {
	if err := validate(s, minClientIDLength); err != nil {
		return "", err
	}
	return ClientID(s), nil
}

func (id ClientID) String() string { return string(id) }

// ConnectionID is an Identifier with the IBC connection minimum length.
type ConnectionID string

// ParseConnectionID validates s as a connection identifier.
func ParseConnectionID(s string) (ConnectionID, error) {
	if err := validate(s, minConnectionIDLength); err != nil {
		return "", err
	}
	return ConnectionID(s), nil
}

func (id ConnectionID) String() string { return string(id) }

// ChannelID is an Identifier with the IBC channel minimum length.
type ChannelID string

// ParseChannelID validates s as a channel identifier.
func ParseChannelID(s string) (ChannelID, error) {
	if err := validate(s, minChannelIDLength); err != nil {
		return "", err
	}
	return ChannelID(s), nil
}

func (id ChannelID) String() string { return string(id) }

// PortID is an Identifier with the IBC port minimum length.
type PortID string

// ParsePortID validates s as a port identifier.
func ParsePortID(s string) (PortID, error) {
	if err := validate(s, minPortIDLength); err != nil {
		return "", err
	}
	return PortID(s), nil
}

func (id PortID) String() string { return string(id) }

// Well-known identifier prefixes used by Generate.
const (
	PrefixSoloMachineClient = "07-tendermint"
	PrefixConnection        = "connection"
	PrefixChannel           = "channel"
)

// Generate appends "-" plus a fixed-length random alphanumeric suffix to
// prefix, e.g. Generate("connection") -> "connection-a1B2".
func Generate(prefix string) (string, error) {
	suffix, err := randomAlphanumeric(randomSuffixLength)
	if err != nil {
		return "", fmt.Errorf("%w: generating identifier suffix: %v", ibcerrors.ErrInputValidation, err)
	}
	return prefix + "-" + suffix, nil
}

func randomAlphanumeric(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(randomSuffixAlphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = randomSuffixAlphabet[idx.Int64()]
	}
	return string(out), nil
}

// ParseHeightString parses the "{revision}-{height}" format used throughout
// IBC. A missing '-' is a parse error; "0-0" is valid; "0" and "a-b" are
// rejected.
func ParseHeightString(s string) (revision uint64, height uint64, err error) {
	idx := strings.LastIndex(s, "-")
	if idx < 0 {
		return 0, 0, fmt.Errorf("%w: height string missing '-': %q", ibcerrors.ErrInputValidation, s)
	}
	revision, err = strconv.ParseUint(s[:idx], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: parsing revision in height %q: %v", ibcerrors.ErrInputValidation, s, err)
	}
	height, err = strconv.ParseUint(s[idx+1:], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: parsing height in height %q: %v", ibcerrors.ErrInputValidation, s, err)
	}
	return revision, height, nil
}

// FormatHeightString renders the "{revision}-{height}" format.
func FormatHeightString(revision, height uint64) string {
	return strconv.FormatUint(revision, 10) + "-" + strconv.FormatUint(height, 10)
}
