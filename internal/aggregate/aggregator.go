// Package aggregate reduces pool observations for a period into one summary
// row per pool.
package aggregate

import (
	"fmt"

	"github.com/defipatriot/ss-pool-data-2026/internal/model"
)

// Summary describes one aggregation pass.
type Summary struct {
	Period string
	Inputs int
	Pools  int
}

func (s Summary) String() string {
	return fmt.Sprintf("aggregated %d inputs into %d pools for %s", s.Inputs, s.Pools, s.Period)
}

// Aggregate groups inputs by pool id and produces one row per distinct pool,
// labeled with the target period. Output order follows first discovery of
// each pool across the inputs.
func Aggregate(period string, inputs []Input) ([]model.AggregateRow, Summary) {
	accumulators := make(map[string]*Accumulator)
	var order []string

	for _, in := range inputs {
		acc := accumulators[in.PoolID]
		if acc == nil {
			acc = NewAccumulator(in.PoolID, in.PoolAddress)
			accumulators[in.PoolID] = acc
			order = append(order, in.PoolID)
		}
		acc.Add(in)
	}

	rows := make([]model.AggregateRow, 0, len(order))
	for _, id := range order {
		rows = append(rows, accumulators[id].Row(period))
	}

	return rows, Summary{Period: period, Inputs: len(inputs), Pools: len(rows)}
}
