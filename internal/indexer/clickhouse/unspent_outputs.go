package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/txforge7000-backend/internal/model"
)

// UnspentOutputs returns the confirmed unspent outputs held by an address,
// oldest first. An output is unspent when no recorded input references its
// outpoint.
func (r *Repository) UnspentOutputs(ctx context.Context, coin model.Coin, network model.Network, address string) ([]model.UnspentOutput, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("unspent_outputs", coin, network, err, start)
	}()

	const query = `
SELECT
	o.txid,
	o.output_index,
	o.value,
	o.script_hex
FROM utxo_transaction_outputs AS o
LEFT ANTI JOIN utxo_transaction_inputs AS i
	ON i.coin = o.coin
	AND i.network = o.network
	AND i.spent_txid = o.txid
	AND i.spent_output_index = o.output_index
WHERE o.coin = ? AND o.network = ? AND has(o.addresses, ?)
ORDER BY o.block_height ASC, o.txid ASC, o.output_index ASC`

	rows, err := r.conn.Query(ctx, query, coin, network, address)
	if err != nil {
		return nil, fmt.Errorf("query unspent outputs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var outputs []model.UnspentOutput
	for rows.Next() {
		var (
			output    model.UnspentOutput
			scriptHex string
		)
		if err = rows.Scan(
			&output.TxID,
			&output.Vout,
			&output.Satoshis,
			&scriptHex,
		); err != nil {
			return nil, fmt.Errorf("scan unspent output: %w", err)
		}

		output.Address = address
		if output.PkScript, err = hex.DecodeString(scriptHex); err != nil {
			return nil, fmt.Errorf("decode output script: %w", err)
		}

		outputs = append(outputs, output)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unspent outputs: %w", err)
	}

	return outputs, nil
}
