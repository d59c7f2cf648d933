// Package ibcerrors defines the typed error taxonomy shared by every core
// package: input validation, not-found, invariant violations, RPC/light
// client failures, protocol mismatches and cancellation. Services wrap a
// sentinel Kind with context using fmt.Errorf("%w: ...", kind) so callers
// can errors.Is against the Kind while still getting a useful message.
package ibcerrors

import "errors"

// Kind is a sentinel representing one of the seven error taxonomies from
// the error-handling design. Wrap it, don't replace it, so errors.Is keeps
// working through fmt.Errorf("%w: detail", ErrNotFound).
type Kind error

var (
	// ErrInputValidation covers malformed identifiers, bad hex, unknown
	// type URLs, unparseable heights, negative durations.
	ErrInputValidation Kind = errors.New("input validation")

	// ErrNotFound covers chain/client/connection/channel/account absent
	// from the store.
	ErrNotFound Kind = errors.New("not found")

	// ErrInvariantViolation covers unmet multisig thresholds, wrong
	// signature lengths, negative balances, and uniqueness violations.
	ErrInvariantViolation Kind = errors.New("invariant violation")

	// ErrRPCFailure covers non-zero check_tx/deliver_tx codes, unreachable
	// gRPC endpoints, timeouts, and catching-up nodes.
	ErrRPCFailure Kind = errors.New("rpc failure")

	// ErrLightClientFailure covers header verification rejections.
	ErrLightClientFailure Kind = errors.New("light client failure")

	// ErrProtocolMismatch covers missing event attributes and
	// packet port/channel mismatches against stored connection details.
	ErrProtocolMismatch Kind = errors.New("protocol mismatch")

	// ErrCancelled covers task cancellation and aborted transactions.
	ErrCancelled Kind = errors.New("cancelled")
)

// Is reports whether err ultimately wraps kind.
func Is(err error, kind Kind) bool {
	return errors.Is(err, kind)
}
