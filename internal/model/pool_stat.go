package model

// PoolStat is one pool element of the upstream pools document.
type PoolStat struct {
	PoolID       string `json:"pool_id"`
	PoolAddress  string `json:"pool_address"`
	TVLUSD       Metric `json:"tvl_usd"`
	Volume24hUSD Metric `json:"volume_24h_usd"`
	Volume7dUSD  Metric `json:"volume_7d_usd"`
	APR7d        Metric `json:"apr_7d"`
	Reserve0     Metric `json:"reserve_0"`
	Reserve1     Metric `json:"reserve_1"`
	TotalShare   Metric `json:"total_share"`
}
