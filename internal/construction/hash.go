package construction

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/goodnatureofminers/txforge7000-backend/internal/bitcoin"
	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
)

// Hash computes the canonical transaction identifier of a signed envelope.
func (s *Service) Hash(_ context.Context, env model.SignedEnvelope) (id model.TransactionIdentifier, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("hash", err, started)
	}()

	if verr := env.Validate(); verr != nil {
		err = &Error{Kind: KindMalformedEnvelope, Err: verr}
		return model.TransactionIdentifier{}, err
	}
	raw, herr := hex.DecodeString(env.RawTx)
	if herr != nil {
		err = &Error{Kind: KindMalformedEnvelope, Err: herr}
		return model.TransactionIdentifier{}, err
	}
	hash, terr := bitcoin.TransactionID(raw)
	if terr != nil {
		err = &Error{Kind: KindMalformedEnvelope, Err: terr}
		return model.TransactionIdentifier{}, err
	}
	return model.TransactionIdentifier{Hash: hash}, nil
}
