package construction

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/txforge7000-backend/internal/bitcoin"
)

// Derive computes the single-signature pay-to-pubkey-hash address for a
// public key. Only secp256k1 keys are accepted.
func (s *Service) Derive(_ context.Context, pubKey []byte, curveType string) (address string, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("derive", err, started)
	}()

	address, derr := s.codec.DeriveAddress(pubKey, curveType)
	if derr != nil {
		if errors.Is(derr, bitcoin.ErrUnsupportedCurve) {
			err = &Error{Kind: KindInvalidCurveType, Err: derr}
			return "", err
		}
		err = &Error{Kind: KindAddressDerivationFailed, Err: derr}
		return "", err
	}
	return address, nil
}
