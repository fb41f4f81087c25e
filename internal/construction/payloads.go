package construction

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/txforge7000-backend/internal/bitcoin"
	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
)

// PayloadsResult packages the unsigned transaction envelope with the signing
// payloads, one per input, positionally aligned with the transaction's inputs.
type PayloadsResult struct {
	Envelope model.UnsignedEnvelope
	Payloads []model.SigningPayload
}

// Payloads builds the unsigned transaction: credit operations become outputs
// in operation order, selected inputs are added in metadata order, and one
// sign-all digest is computed per input. Combine depends on the payload order
// matching input order exactly.
func (s *Service) Payloads(_ context.Context, ops []model.Operation, meta MetadataResult) (result PayloadsResult, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("payloads", err, started)
	}()

	if len(meta.Inputs) == 0 {
		err = &Error{Kind: KindExpectedRelevantInputs}
		return PayloadsResult{}, err
	}
	for i, in := range meta.Inputs {
		if len(in.PkScript) == 0 {
			err = &Error{
				Kind:    KindExpectedRelevantInputs,
				Address: in.Address,
				Err:     fmt.Errorf("input %d carries no spent output script", i),
			}
			return PayloadsResult{}, err
		}
	}

	tx := wire.NewMsgTx(bitcoin.TxVersion)
	for _, op := range ops {
		if op.Amount < 0 {
			continue
		}
		script, serr := s.codec.AddressScript(op.Address)
		if serr != nil {
			err = &Error{Kind: KindAddressDerivationFailed, Address: op.Address, Err: serr}
			return PayloadsResult{}, err
		}
		tx.AddTxOut(wire.NewTxOut(op.Amount, script))
	}

	for _, in := range meta.Inputs {
		prevHash, herr := chainhash.NewHashFromStr(in.TxID)
		if herr != nil {
			err = fmt.Errorf("input txid %q: %w", in.TxID, herr)
			return PayloadsResult{}, err
		}
		tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(prevHash, in.Vout), nil, nil))
	}

	payloads := make([]model.SigningPayload, 0, len(meta.Inputs))
	scripts := make([]string, 0, len(meta.Inputs))
	amounts := make([]uint64, 0, len(meta.Inputs))
	addresses := make([]string, 0, len(meta.Inputs))
	for i, in := range meta.Inputs {
		digest, derr := bitcoin.SignatureHash(tx, i, in.PkScript)
		if derr != nil {
			err = fmt.Errorf("payload for input %d: %w", i, derr)
			return PayloadsResult{}, err
		}
		payloads = append(payloads, model.SigningPayload{
			Address:       in.Address,
			Hash:          hex.EncodeToString(digest),
			SignatureType: model.SignatureTypeECDSA,
		})
		scripts = append(scripts, hex.EncodeToString(in.PkScript))
		amounts = append(amounts, in.Satoshis)
		addresses = append(addresses, in.Address)
	}

	raw, eerr := bitcoin.EncodeTx(tx)
	if eerr != nil {
		err = eerr
		return PayloadsResult{}, err
	}

	result = PayloadsResult{
		Envelope: model.UnsignedEnvelope{
			Version:        model.EnvelopeVersion,
			RawTx:          hex.EncodeToString(raw),
			InputScripts:   scripts,
			InputAmounts:   amounts,
			InputAddresses: addresses,
		},
		Payloads: payloads,
	}
	return result, nil
}
