// Package indexer provides UTXO index implementations and decorators used by
// the metadata stage.
package indexer

import (
	"context"

	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// UtxoIndex reports the spendable outputs of an address.
type UtxoIndex interface {
	UnspentOutputs(ctx context.Context, coin model.Coin, network model.Network, address string) ([]model.UnspentOutput, error)
}
