package model

// SnapshotRow is one daily-tier record: a pool's metrics as captured at fetch
// time. One row per pool per capture; a later same-day capture replaces the
// whole file, never individual rows.
type SnapshotRow struct {
	Date         string
	Time         string
	PoolID       string
	PoolAddress  string
	TVLUSD       Metric
	Volume24hUSD Metric
	Volume7dUSD  Metric
	APR7d        Metric
	Reserve0     Metric
	Reserve1     Metric
	TotalShare   Metric
}
