package indexer

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
	"go.uber.org/zap"
)

// ReservingIndex holds short-lived reservations over the outputs it returns,
// so two concurrent metadata calls cannot both select the same output. The
// reservation is in-memory only: it narrows the double-spend window within
// one process but does not close it across processes sharing an index.
type ReservingIndex struct {
	logger *zap.Logger
	inner  UtxoIndex
	ttl    time.Duration
	sweep  time.Duration

	mu       sync.Mutex
	reserved map[string]time.Time

	wg   sync.WaitGroup
	stop chan struct{}
}

// NewReservingIndex wraps an index with TTL-based output reservations.
func NewReservingIndex(inner UtxoIndex, ttl, sweepEvery time.Duration, logger *zap.Logger) *ReservingIndex {
	return &ReservingIndex{
		logger:   logger,
		inner:    inner,
		ttl:      ttl,
		sweep:    sweepEvery,
		reserved: make(map[string]time.Time),
		stop:     make(chan struct{}),
	}
}

// Start begins the background sweep of expired reservations.
func (x *ReservingIndex) Start(ctx context.Context) {
	x.wg.Add(1)
	go x.run(ctx)
}

// Stop stops the background sweep.
func (x *ReservingIndex) Stop() {
	close(x.stop)
	x.wg.Wait()
}

// UnspentOutputs returns the address's outputs minus those currently reserved
// by other requests, and reserves everything it returns.
func (x *ReservingIndex) UnspentOutputs(ctx context.Context, coin model.Coin, network model.Network, address string) ([]model.UnspentOutput, error) {
	utxos, err := x.inner.UnspentOutputs(ctx, coin, network, address)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expiry := now.Add(x.ttl)

	x.mu.Lock()
	defer x.mu.Unlock()

	available := make([]model.UnspentOutput, 0, len(utxos))
	for _, utxo := range utxos {
		key := outpointKey(utxo)
		if until, ok := x.reserved[key]; ok && now.Before(until) {
			continue
		}
		x.reserved[key] = expiry
		available = append(available, utxo)
	}
	if skipped := len(utxos) - len(available); skipped > 0 {
		x.logger.Debug("outputs reserved elsewhere",
			zap.String("address", address),
			zap.Int("skipped", skipped),
		)
	}
	return available, nil
}

func (x *ReservingIndex) run(ctx context.Context) {
	defer x.wg.Done()

	ticker := time.NewTicker(x.sweep)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-x.stop:
			return
		case <-ticker.C:
			x.sweepExpired(time.Now())
		}
	}
}

func (x *ReservingIndex) sweepExpired(now time.Time) {
	x.mu.Lock()
	defer x.mu.Unlock()

	for key, until := range x.reserved {
		if !now.Before(until) {
			delete(x.reserved, key)
		}
	}
}

func outpointKey(utxo model.UnspentOutput) string {
	return fmt.Sprintf("%s:%d", utxo.TxID, utxo.Vout)
}
