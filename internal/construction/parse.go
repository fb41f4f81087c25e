package construction

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/txforge7000-backend/internal/bitcoin"
	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
	"github.com/goodnatureofminers/txforge7000-backend/pkg/safe"
)

// ParseResult is the operation list recovered from a transaction, plus the
// signer addresses when the transaction was signed. Operation status is empty
// on both paths: parse happens before the transaction reaches the ledger.
type ParseResult struct {
	Operations []model.Operation
	Signers    []string
}

// Parse decodes an envelope back into the operations that produced it. The
// signed flag is caller-supplied, never inferred. Input operations come first,
// output operations continue the numbering. On the signed path each signer is
// recovered from its input's unlock script; duplicates are allowed.
func (s *Service) Parse(_ context.Context, txString string, signed bool) (result ParseResult, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("parse", err, started)
	}()

	if signed {
		return s.parseSigned(txString)
	}
	return s.parseUnsigned(txString)
}

func (s *Service) parseUnsigned(txString string) (ParseResult, error) {
	env, err := model.DecodeUnsignedEnvelope(txString)
	if err != nil {
		return ParseResult{}, &Error{Kind: KindMalformedEnvelope, Err: err}
	}
	tx, err := s.decodeEnvelopeTx(env.RawTx, len(env.InputAmounts))
	if err != nil {
		return ParseResult{}, err
	}

	ops := make([]model.Operation, 0, len(tx.TxIn)+len(tx.TxOut))
	for i := range tx.TxIn {
		amount, aerr := safe.Int64(env.InputAmounts[i])
		if aerr != nil {
			return ParseResult{}, &Error{Kind: KindMalformedEnvelope, Err: aerr}
		}
		ops = append(ops, s.debitOperation(int64(i), env.InputAddresses[i], amount))
	}
	ops, err = s.appendOutputOperations(ops, tx)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{Operations: ops}, nil
}

func (s *Service) parseSigned(txString string) (ParseResult, error) {
	env, err := model.DecodeSignedEnvelope(txString)
	if err != nil {
		return ParseResult{}, &Error{Kind: KindMalformedEnvelope, Err: err}
	}
	tx, err := s.decodeEnvelopeTx(env.RawTx, len(env.InputAmounts))
	if err != nil {
		return ParseResult{}, err
	}

	ops := make([]model.Operation, 0, len(tx.TxIn)+len(tx.TxOut))
	signers := make([]string, 0, len(tx.TxIn))
	for i, txIn := range tx.TxIn {
		signer, serr := s.codec.SignerFromUnlockScript(txIn.SignatureScript)
		if serr != nil {
			return ParseResult{}, &Error{Kind: KindMalformedEnvelope, Err: fmt.Errorf("input %d: %w", i, serr)}
		}
		amount, aerr := safe.Int64(env.InputAmounts[i])
		if aerr != nil {
			return ParseResult{}, &Error{Kind: KindMalformedEnvelope, Err: aerr}
		}
		ops = append(ops, s.debitOperation(int64(i), signer, amount))
		signers = append(signers, signer)
	}
	ops, err = s.appendOutputOperations(ops, tx)
	if err != nil {
		return ParseResult{}, err
	}
	return ParseResult{Operations: ops, Signers: signers}, nil
}

func (s *Service) decodeEnvelopeTx(rawHex string, carriedInputs int) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(rawHex)
	if err != nil {
		return nil, &Error{Kind: KindMalformedEnvelope, Err: err}
	}
	tx, err := bitcoin.DecodeTx(raw)
	if err != nil {
		return nil, &Error{Kind: KindMalformedEnvelope, Err: err}
	}
	if len(tx.TxIn) != carriedInputs {
		return nil, &Error{
			Kind: KindMalformedEnvelope,
			Err:  fmt.Errorf("envelope carries %d input records for %d transaction inputs", carriedInputs, len(tx.TxIn)),
		}
	}
	return tx, nil
}

func (s *Service) debitOperation(index int64, address string, amount int64) model.Operation {
	return model.Operation{
		Index:   index,
		Type:    model.OperationTypeTransfer,
		Address: address,
		Amount:  -amount,
		Coin:    s.coin,
	}
}

func (s *Service) appendOutputOperations(ops []model.Operation, tx *wire.MsgTx) ([]model.Operation, error) {
	for i, txOut := range tx.TxOut {
		address, err := s.codec.AddressFromScript(txOut.PkScript)
		if err != nil {
			return nil, &Error{Kind: KindMalformedEnvelope, Err: fmt.Errorf("output %d: %w", i, err)}
		}
		ops = append(ops, model.Operation{
			Index:   int64(len(tx.TxIn) + i),
			Type:    model.OperationTypeTransfer,
			Address: address,
			Amount:  txOut.Value,
			Coin:    s.coin,
		})
	}
	return ops, nil
}
