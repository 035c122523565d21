package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/defipatriot/ss-pool-data-2026/internal/model"
)

// meanAcc folds present values into a running sum and count.
type meanAcc struct {
	sum   decimal.Decimal
	count int64
}

func (m *meanAcc) add(v model.Metric) {
	if !v.Valid {
		return
	}
	m.sum = m.sum.Add(v.Decimal)
	m.count++
}

// mean returns the arithmetic mean of the added values, or zero when none
// were present.
func (m *meanAcc) mean() decimal.Decimal {
	if m.count == 0 {
		return decimal.Zero
	}
	return m.sum.Div(decimal.NewFromInt(m.count))
}

// Accumulator holds the running aggregate state for one pool. The address
// recorded at creation wins; later inputs never replace it.
type Accumulator struct {
	PoolID      string
	PoolAddress string

	tvl        meanAcc
	apr        meanAcc
	reserve0   meanAcc
	reserve1   meanAcc
	totalShare meanAcc
	volume     decimal.Decimal
	snapshots  int64
}

func NewAccumulator(poolID, poolAddress string) *Accumulator {
	return &Accumulator{PoolID: poolID, PoolAddress: poolAddress}
}

// Add folds one input into the accumulator. Absent fields are excluded from
// their mean rather than counted as zero.
func (a *Accumulator) Add(in Input) {
	a.tvl.add(in.TVLUSD)
	a.apr.add(in.APR7d)
	a.reserve0.add(in.Reserve0)
	a.reserve1.add(in.Reserve1)
	a.totalShare.add(in.TotalShare)
	if in.Volume.Valid {
		a.volume = a.volume.Add(in.Volume.Decimal)
	}
	a.snapshots += in.Snapshots
}

// Row renders the accumulated state as the aggregate row for a period.
// Fields with no contributing values come out as zero rather than absent.
func (a *Accumulator) Row(period string) model.AggregateRow {
	return model.AggregateRow{
		Period:         period,
		PoolID:         a.PoolID,
		PoolAddress:    a.PoolAddress,
		AvgTVLUSD:      model.MetricOf(a.tvl.mean()),
		TotalVolumeUSD: model.MetricOf(a.volume),
		AvgAPR7d:       model.MetricOf(a.apr.mean()),
		AvgReserve0:    model.MetricOf(a.reserve0.mean()),
		AvgReserve1:    model.MetricOf(a.reserve1.mean()),
		AvgTotalShare:  model.MetricOf(a.totalShare.mean()),
		SnapshotCount:  a.snapshots,
	}
}
