package construction

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
	"github.com/goodnatureofminers/txforge7000-backend/pkg/safe"
	"github.com/goodnatureofminers/txforge7000-backend/pkg/workerpool"
	"go.uber.org/zap"
)

// MetadataResult is the metadata stage's output: the selected inputs across
// all requirements in requirement order, their output scripts, and the
// aggregate change left over after selection. Change is never attributed to a
// specific address here. SuggestedFee is always empty; fee policy is external.
type MetadataResult struct {
	Inputs       []model.UnspentOutput
	Scripts      [][]byte
	Change       uint64
	SuggestedFee []uint64
}

type selection struct {
	inputs []model.UnspentOutput
	change uint64
}

// Metadata resolves each balance requirement against the external UTXO index
// and greedily selects inputs until the requirement is met. Requirements are
// fetched concurrently but results keep requirement order.
func (s *Service) Metadata(ctx context.Context, reqs []model.BalanceRequirement) (result MetadataResult, err error) {
	started := time.Now()
	defer func() {
		s.metrics.Observe("metadata", err, started)
	}()

	if len(reqs) == 0 {
		err = &Error{Kind: KindExpectedRequiredAccounts}
		return MetadataResult{}, err
	}

	selections, werr := workerpool.Map(ctx, s.fetchWorkers, reqs, s.selectForRequirement)
	if werr != nil {
		err = werr
		return MetadataResult{}, err
	}

	for _, sel := range selections {
		result.Inputs = append(result.Inputs, sel.inputs...)
		result.Change += sel.change
	}
	result.Scripts = make([][]byte, 0, len(result.Inputs))
	for _, in := range result.Inputs {
		result.Scripts = append(result.Scripts, in.PkScript)
	}
	result.SuggestedFee = []uint64{}

	s.logger.Debug("selected inputs",
		zap.Int("requirements", len(reqs)),
		zap.Int("inputs", len(result.Inputs)),
		zap.Uint64("change", result.Change),
	)
	return result, nil
}

// selectForRequirement walks the index's outputs in delivery order, tracking
// how much is still missing. Selection stops lazily once the running total
// covers the requirement; remaining outputs are never touched.
func (s *Service) selectForRequirement(ctx context.Context, req model.BalanceRequirement) (selection, error) {
	utxos, err := s.index.UnspentOutputs(ctx, s.coin, s.network, req.Address)
	if err != nil {
		return selection{}, &Error{Kind: KindIndexUnavailable, Address: req.Address, Err: err}
	}

	missing, err := safe.Int64(req.Satoshis)
	if err != nil {
		return selection{}, fmt.Errorf("requirement for %s: %w", req.Address, err)
	}
	missing = -missing

	var selected []model.UnspentOutput
	for _, utxo := range utxos {
		if missing >= 0 {
			break
		}
		value, verr := safe.Int64(utxo.Satoshis)
		if verr != nil {
			return selection{}, fmt.Errorf("utxo %s:%d value: %w", utxo.TxID, utxo.Vout, verr)
		}
		selected = append(selected, utxo)
		missing += value
	}

	if missing < 0 {
		return selection{}, &Error{Kind: KindInsufficientBalance, Address: req.Address}
	}
	return selection{inputs: selected, change: uint64(missing)}, nil
}
