package aggregate

import "github.com/defipatriot/ss-pool-data-2026/internal/model"

// Input is one contribution to an aggregate: a raw daily snapshot or an
// already-aggregated row from a lower tier.
type Input struct {
	PoolID      string
	PoolAddress string

	TVLUSD     model.Metric
	APR7d      model.Metric
	Reserve0   model.Metric
	Reserve1   model.Metric
	TotalShare model.Metric

	// Volume is additive over the period: a snapshot contributes its 24h
	// volume, a child aggregate its period total.
	Volume model.Metric

	// Snapshots is the number of original daily observations behind this
	// input, so counts survive through multiple rollup levels.
	Snapshots int64
}

// SnapshotInput adapts a raw daily row.
func SnapshotInput(row model.SnapshotRow) Input {
	return Input{
		PoolID:      row.PoolID,
		PoolAddress: row.PoolAddress,
		TVLUSD:      row.TVLUSD,
		APR7d:       row.APR7d,
		Reserve0:    row.Reserve0,
		Reserve1:    row.Reserve1,
		TotalShare:  row.TotalShare,
		Volume:      row.Volume24hUSD,
		Snapshots:   1,
	}
}

// AggregateInput adapts a lower-tier aggregate row.
func AggregateInput(row model.AggregateRow) Input {
	return Input{
		PoolID:      row.PoolID,
		PoolAddress: row.PoolAddress,
		TVLUSD:      row.AvgTVLUSD,
		APR7d:       row.AvgAPR7d,
		Reserve0:    row.AvgReserve0,
		Reserve1:    row.AvgReserve1,
		TotalShare:  row.AvgTotalShare,
		Volume:      row.TotalVolumeUSD,
		Snapshots:   row.SnapshotCount,
	}
}
