package construction

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/goodnatureofminers/txforge7000-backend/internal/bitcoin"
	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
	"go.uber.org/zap"
)

// Submit broadcasts a signed envelope through the node and returns the
// broadcast hash. RPC failures surface with the underlying message and are
// never retried here.
func (s *Service) Submit(ctx context.Context, env model.SignedEnvelope) (id model.TransactionIdentifier, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("submit", err, started)
	}()

	if cerr := ctx.Err(); cerr != nil {
		err = cerr
		return model.TransactionIdentifier{}, err
	}

	if verr := env.Validate(); verr != nil {
		err = &Error{Kind: KindMalformedEnvelope, Err: verr}
		return model.TransactionIdentifier{}, err
	}
	raw, herr := hex.DecodeString(env.RawTx)
	if herr != nil {
		err = &Error{Kind: KindMalformedEnvelope, Err: herr}
		return model.TransactionIdentifier{}, err
	}
	tx, derr := bitcoin.DecodeTx(raw)
	if derr != nil {
		err = &Error{Kind: KindMalformedEnvelope, Err: derr}
		return model.TransactionIdentifier{}, err
	}

	hash, berr := s.broadcaster.SendRawTransaction(tx)
	if berr != nil {
		err = &Error{Kind: KindSubmitFailed, Err: berr}
		return model.TransactionIdentifier{}, err
	}

	s.logger.Info("transaction broadcast", zap.String("txid", hash.String()))
	return model.TransactionIdentifier{Hash: hash.String()}, nil
}
