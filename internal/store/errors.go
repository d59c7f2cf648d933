package store

import (
	"errors"
	"fmt"

	"github.com/soloibc/solo-machine/internal/ibcerrors"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = fmt.Errorf("%w: entity not found", ibcerrors.ErrNotFound)

// ErrChainNotFound is returned when a chain row does not exist.
var ErrChainNotFound = fmt.Errorf("%w: chain not found", ibcerrors.ErrNotFound)

// ErrIBCPathNotFound is returned when no ibc_data row exists at a path.
var ErrIBCPathNotFound = fmt.Errorf("%w: ibc path not found", ibcerrors.ErrNotFound)

// ErrInsufficientBalance is returned when a debit would drive an
// account's balance negative.
var ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ibcerrors.ErrInvariantViolation)

// IsNotFound reports whether err is, or wraps, a not-found condition.
func IsNotFound(err error) bool {
	return errors.Is(err, ibcerrors.ErrNotFound)
}
