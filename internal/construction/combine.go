package construction

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/goodnatureofminers/txforge7000-backend/internal/bitcoin"
	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
)

// Signature is one externally produced signature, paired with the public key
// the signer claims. Bytes may be the raw 64-byte r||s form or already DER.
type Signature struct {
	PubKey []byte
	Bytes  []byte
}

// Combine installs one unlock script per input and serializes the signed
// transaction. Signatures must align positionally with the envelope's inputs;
// a count mismatch is fatal and no partial signing is attempted. The stage
// assembles blindly: whether a signature actually satisfies its sighash is
// the node's concern downstream.
func (s *Service) Combine(_ context.Context, env model.UnsignedEnvelope, sigs []Signature) (signed model.SignedEnvelope, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("combine", err, started)
	}()

	if verr := env.Validate(); verr != nil {
		err = &Error{Kind: KindMalformedEnvelope, Err: verr}
		return model.SignedEnvelope{}, err
	}
	raw, herr := hex.DecodeString(env.RawTx)
	if herr != nil {
		err = &Error{Kind: KindMalformedEnvelope, Err: herr}
		return model.SignedEnvelope{}, err
	}
	tx, derr := bitcoin.DecodeTx(raw)
	if derr != nil {
		err = &Error{Kind: KindMalformedEnvelope, Err: derr}
		return model.SignedEnvelope{}, err
	}

	if len(sigs) != len(tx.TxIn) {
		err = &Error{
			Kind: KindSignatureCountMismatch,
			Err:  fmt.Errorf("%d signatures for %d inputs", len(sigs), len(tx.TxIn)),
		}
		return model.SignedEnvelope{}, err
	}

	for i := range tx.TxIn {
		der, serr := derSignature(sigs[i].Bytes)
		if serr != nil {
			err = fmt.Errorf("signature for input %d: %w", i, serr)
			return model.SignedEnvelope{}, err
		}
		unlock, uerr := s.codec.UnlockScript(append(der, byte(bitcoin.SigHashType)), sigs[i].PubKey)
		if uerr != nil {
			err = fmt.Errorf("unlock script for input %d: %w", i, uerr)
			return model.SignedEnvelope{}, err
		}
		tx.TxIn[i].SignatureScript = unlock
	}

	signedRaw, eerr := bitcoin.EncodeTx(tx)
	if eerr != nil {
		err = eerr
		return model.SignedEnvelope{}, err
	}
	return model.SignedEnvelope{
		Version:      model.EnvelopeVersion,
		RawTx:        hex.EncodeToString(signedRaw),
		InputAmounts: env.InputAmounts,
	}, nil
}

// derSignature normalizes a signature to DER. A 64-byte input is treated as
// raw r||s; anything else must already parse as DER.
func derSignature(sig []byte) ([]byte, error) {
	if len(sig) == 64 {
		var r, s btcec.ModNScalar
		if overflow := r.SetByteSlice(sig[:32]); overflow {
			return nil, errors.New("signature r overflows the curve order")
		}
		if overflow := s.SetByteSlice(sig[32:]); overflow {
			return nil, errors.New("signature s overflows the curve order")
		}
		return ecdsa.NewSignature(&r, &s).Serialize(), nil
	}
	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return nil, fmt.Errorf("parse DER signature: %w", err)
	}
	return parsed.Serialize(), nil
}
