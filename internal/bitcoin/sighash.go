package bitcoin

import (
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// SigHashType is the hash type every signing payload commits to.
const SigHashType = txscript.SigHashAll

// SignatureHash computes the legacy sign-all digest for one input, using the
// spent output's script as the subscript.
func SignatureHash(tx *wire.MsgTx, inputIndex int, spentScript []byte) ([]byte, error) {
	if inputIndex < 0 || inputIndex >= len(tx.TxIn) {
		return nil, fmt.Errorf("input index %d out of range for %d inputs", inputIndex, len(tx.TxIn))
	}
	hash, err := txscript.CalcSignatureHash(spentScript, SigHashType, tx, inputIndex)
	if err != nil {
		return nil, fmt.Errorf("calc signature hash for input %d: %w", inputIndex, err)
	}
	return hash, nil
}
