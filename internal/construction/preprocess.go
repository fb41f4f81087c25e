package construction

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
	"github.com/goodnatureofminers/txforge7000-backend/pkg/safe"
)

// Preprocess aggregates the debit operations into one balance requirement per
// distinct debited address. Credit operations are skipped entirely; they only
// matter at payload-building time. Requirements are emitted in order of each
// address's first debit so the output is deterministic.
func (s *Service) Preprocess(_ context.Context, ops []model.Operation) (reqs []model.BalanceRequirement, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("preprocess", err, started)
	}()

	totals := make(map[string]uint64)
	order := make([]string, 0, len(ops))
	for _, op := range ops {
		if op.Amount >= 0 {
			continue
		}
		amount, aerr := safe.Uint64(-op.Amount)
		if aerr != nil {
			err = fmt.Errorf("operation %d amount: %w", op.Index, aerr)
			return nil, err
		}
		if _, ok := totals[op.Address]; !ok {
			order = append(order, op.Address)
		}
		totals[op.Address] += amount
	}

	reqs = make([]model.BalanceRequirement, 0, len(order))
	for _, address := range order {
		reqs = append(reqs, model.BalanceRequirement{Address: address, Satoshis: totals[address]})
	}
	return reqs, nil
}
