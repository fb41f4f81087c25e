package construction

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// UtxoIndex is the external account index the metadata stage queries for
	// spendable outputs. Outputs are returned in the index's preferred
	// spending order; the selector consumes them as delivered.
	UtxoIndex interface {
		UnspentOutputs(ctx context.Context, coin model.Coin, network model.Network, address string) ([]model.UnspentOutput, error)
	}

	// Broadcaster forwards a final signed transaction to the node.
	Broadcaster interface {
		SendRawTransaction(tx *wire.MsgTx) (*chainhash.Hash, error)
	}

	// StageMetrics records one observation per pipeline stage invocation.
	StageMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
