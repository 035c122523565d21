package model

// Decimal places used when rounding and rendering aggregate fields.
const (
	USDPlaces      int32 = 2
	RatePlaces     int32 = 4
	QuantityPlaces int32 = 0
)

// AggregateRow is one weekly/monthly/yearly record: per-pool summary
// statistics for a period. SnapshotCount is the number of original daily
// observations folded in, carried through every rollup level.
type AggregateRow struct {
	Period         string
	PoolID         string
	PoolAddress    string
	AvgTVLUSD      Metric
	TotalVolumeUSD Metric
	AvgAPR7d       Metric
	AvgReserve0    Metric
	AvgReserve1    Metric
	AvgTotalShare  Metric
	SnapshotCount  int64
}
