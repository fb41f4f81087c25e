// Package construction implements the stages of the transaction construction
// pipeline: derive, preprocess, metadata, payloads, combine, hash, parse and
// submit. Every stage is a stateless function of its inputs; intermediate
// results cross the transport boundary as self-describing envelopes.
package construction

import (
	"errors"

	"github.com/goodnatureofminers/txforge7000-backend/internal/bitcoin"
	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
	"go.uber.org/zap"
)

const defaultFetchWorkers = 4

// Service wires the pipeline stages to their collaborators: the chain codec,
// the external UTXO index and the node broadcaster.
type Service struct {
	logger       *zap.Logger
	coin         model.Coin
	network      model.Network
	codec        *bitcoin.Codec
	index        UtxoIndex
	broadcaster  Broadcaster
	metrics      StageMetrics
	fetchWorkers int
}

// NewService builds a Service with dependencies.
func NewService(
	coin model.Coin,
	network model.Network,
	index UtxoIndex,
	broadcaster Broadcaster,
	metrics StageMetrics,
	logger *zap.Logger,
) (*Service, error) {
	logger = logger.With(
		zap.String("coin", string(coin)),
		zap.String("network", string(network)),
	)
	if metrics == nil {
		return nil, errors.New("stage metrics is required")
	}
	codec, err := bitcoin.NewCodec(coin, network)
	if err != nil {
		return nil, err
	}

	return &Service{
		logger:       logger,
		coin:         coin,
		network:      network,
		codec:        codec,
		index:        index,
		broadcaster:  broadcaster,
		metrics:      metrics,
		fetchWorkers: defaultFetchWorkers,
	}, nil
}
