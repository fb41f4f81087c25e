package bitcoin

import (
	"bytes"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// TxVersion is the transaction version the builder emits.
const TxVersion = 2

// EncodeTx serializes a transaction to its wire form.
func EncodeTx(tx *wire.MsgTx) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(tx.SerializeSize())
	if err := tx.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serialize transaction: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeTx deserializes a transaction from its wire form.
func DecodeTx(raw []byte) (*wire.MsgTx, error) {
	tx := &wire.MsgTx{}
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("deserialize transaction: %w", err)
	}
	return tx, nil
}

// TransactionID computes the canonical identifier of a serialized transaction:
// double SHA-256 in the ledger's reversed display order, hex-encoded.
func TransactionID(raw []byte) (string, error) {
	if _, err := DecodeTx(raw); err != nil {
		return "", err
	}
	return chainhash.DoubleHashH(raw).String(), nil
}
