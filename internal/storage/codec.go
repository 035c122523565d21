package storage

import (
	"strconv"
	"strings"

	"github.com/defipatriot/ss-pool-data-2026/internal/model"
)

// Tier file headers. Column order is part of the on-disk format and must not
// change.
const (
	SnapshotHeader  = "date,time,pool_id,pool_address,tvl_usd,volume_24h_usd,volume_7d_usd,apr_7d,reserve_0,reserve_1,total_share"
	AggregateHeader = "period,pool_id,pool_address,avg_tvl_usd,total_volume_usd,avg_apr_7d,avg_reserve_0,avg_reserve_1,avg_total_share,snapshot_count"
)

const (
	snapshotFields  = 11
	aggregateFields = 10
)

// quote wraps a pool identifier in double quotes. Embedded quotes and commas
// are not escaped; an identifier containing either corrupts its row.
func quote(s string) string {
	return `"` + s + `"`
}

// unquote strips one leading and one trailing double quote.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// splitRow splits a line on plain commas, with no quote awareness, and pads
// missing trailing fields with empty strings.
func splitRow(line string, n int) []string {
	fields := strings.Split(line, ",")
	for len(fields) < n {
		fields = append(fields, "")
	}
	return fields
}

func encodeSnapshot(r model.SnapshotRow) string {
	return strings.Join([]string{
		r.Date,
		r.Time,
		quote(r.PoolID),
		r.PoolAddress,
		r.TVLUSD.String(),
		r.Volume24hUSD.String(),
		r.Volume7dUSD.String(),
		r.APR7d.String(),
		r.Reserve0.String(),
		r.Reserve1.String(),
		r.TotalShare.String(),
	}, ",")
}

func decodeSnapshot(line string) model.SnapshotRow {
	f := splitRow(line, snapshotFields)
	return model.SnapshotRow{
		Date:         f[0],
		Time:         f[1],
		PoolID:       unquote(f[2]),
		PoolAddress:  f[3],
		TVLUSD:       model.MetricFromString(f[4]),
		Volume24hUSD: model.MetricFromString(f[5]),
		Volume7dUSD:  model.MetricFromString(f[6]),
		APR7d:        model.MetricFromString(f[7]),
		Reserve0:     model.MetricFromString(f[8]),
		Reserve1:     model.MetricFromString(f[9]),
		TotalShare:   model.MetricFromString(f[10]),
	}
}

func encodeAggregate(r model.AggregateRow) string {
	return strings.Join([]string{
		r.Period,
		quote(r.PoolID),
		r.PoolAddress,
		r.AvgTVLUSD.Fixed(model.USDPlaces),
		r.TotalVolumeUSD.Fixed(model.USDPlaces),
		r.AvgAPR7d.Fixed(model.RatePlaces),
		r.AvgReserve0.Fixed(model.QuantityPlaces),
		r.AvgReserve1.Fixed(model.QuantityPlaces),
		r.AvgTotalShare.Fixed(model.QuantityPlaces),
		strconv.FormatInt(r.SnapshotCount, 10),
	}, ",")
}

func decodeAggregate(line string) model.AggregateRow {
	f := splitRow(line, aggregateFields)
	// A malformed count decodes as zero.
	count, _ := strconv.ParseInt(f[9], 10, 64)
	return model.AggregateRow{
		Period:         f[0],
		PoolID:         unquote(f[1]),
		PoolAddress:    f[2],
		AvgTVLUSD:      model.MetricFromString(f[3]),
		TotalVolumeUSD: model.MetricFromString(f[4]),
		AvgAPR7d:       model.MetricFromString(f[5]),
		AvgReserve0:    model.MetricFromString(f[6]),
		AvgReserve1:    model.MetricFromString(f[7]),
		AvgTotalShare:  model.MetricFromString(f[8]),
		SnapshotCount:  count,
	}
}
