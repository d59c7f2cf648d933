package txbuilder

import (
	"context"
	"fmt"

	"github.com/soloibc/solo-machine/internal/cryptokeys"
)

// fakeSigner is a deterministic, in-memory cryptokeys.Signer for
// exercising message-shape construction without real cryptography.
type fakeSigner struct {
	publicKey cryptokeys.PublicKey
	address   string
	prefix    string
	lastKind  cryptokeys.SignMessageKind
	lastBytes []byte
	signErr   error
}

func newFakeSigner() *fakeSigner {
	return &fakeSigner{
		publicKey: cryptokeys.Ed25519PublicKey{Raw: make([]byte, 32)},
		address:   "solo1fakeaddressxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		prefix:    "solo",
	}
}

func (s *fakeSigner) ToPublicKey() (cryptokeys.PublicKey, error) { return s.publicKey, nil }
func (s *fakeSigner) AccountPrefix() string                      { return s.prefix }
func (s *fakeSigner) ToAccountAddress() (string, error)          { return s.address, nil }

func (s *fakeSigner) Sign(ctx context.Context, requestID *string, message cryptokeys.SignMessage) ([]byte, error) {
	if s.signErr != nil {
		return nil, s.signErr
	}
	s.lastKind = message.Kind
	s.lastBytes = message.Bytes
	n := len(message.Bytes)
	if n > 8 {
		n = 8
	}
	return []byte(fmt.Sprintf("sig(%d,%x)", message.Kind, message.Bytes[:n])), nil
}
