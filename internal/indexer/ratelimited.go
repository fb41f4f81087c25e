package indexer

import (
	"context"

	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
	"go.uber.org/ratelimit"
)

// RateLimitedIndex throttles index calls to a fixed number per second. The
// index is the one external fan-out point of the pipeline; concurrent
// metadata calls share the limiter.
type RateLimitedIndex struct {
	inner UtxoIndex
	rl    ratelimit.Limiter
}

// NewRateLimitedIndex wraps an index with a per-second rate limit.
func NewRateLimitedIndex(inner UtxoIndex, rps int) *RateLimitedIndex {
	return &RateLimitedIndex{
		inner: inner,
		rl:    ratelimit.New(rps),
	}
}

// UnspentOutputs blocks until the limiter grants a slot, then delegates. The
// limiter has no context support, so Take runs in a goroutine and the caller
// unblocks as soon as the context is done. An abandoned Take still consumes
// its slot once granted.
func (x *RateLimitedIndex) UnspentOutputs(ctx context.Context, coin model.Coin, network model.Network, address string) ([]model.UnspentOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	granted := make(chan struct{})
	go func() {
		x.rl.Take()
		close(granted)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-granted:
	}
	return x.inner.UnspentOutputs(ctx, coin, network, address)
}
