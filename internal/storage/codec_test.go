package storage

import (
	"strings"
	"testing"

	"github.com/defipatriot/ss-pool-data-2026/internal/model"
)

func TestEncodeAggregateFixedPlaces(t *testing.T) {
	row := model.AggregateRow{
		Period:         "2024-W05",
		PoolID:         "LUNA-USDC",
		PoolAddress:    "terra1pooladdr",
		AvgTVLUSD:      model.MetricFromString("150"),
		TotalVolumeUSD: model.MetricFromString("30.005"),
		AvgAPR7d:       model.MetricFromString("0.12345"),
		AvgReserve0:    model.MetricFromString("1234.6"),
		AvgReserve1:    model.MetricFromString("98.2"),
		AvgTotalShare:  model.MetricFromString("500"),
		SnapshotCount:  2,
	}

	got := encodeAggregate(row)
	want := `2024-W05,"LUNA-USDC",terra1pooladdr,150.00,30.01,0.1235,1235,98,500,2`
	if got != want {
		t.Fatalf("encodeAggregate = %q, want %q", got, want)
	}
}

func TestAggregateRoundTrip(t *testing.T) {
	row := model.AggregateRow{
		Period:         "2023-12",
		PoolID:         "ATOM-JUNO",
		PoolAddress:    "terra1xyz",
		AvgTVLUSD:      model.MetricFromString("99312.55"),
		TotalVolumeUSD: model.MetricFromString("1204.10"),
		AvgAPR7d:       model.MetricFromString("0.0831"),
		AvgReserve0:    model.MetricFromString("42"),
		AvgReserve1:    model.MetricFromString("17"),
		AvgTotalShare:  model.MetricFromString("9000"),
		SnapshotCount:  31,
	}

	decoded := decodeAggregate(encodeAggregate(row))
	if decoded.Period != row.Period || decoded.PoolID != row.PoolID || decoded.PoolAddress != row.PoolAddress {
		t.Fatalf("round trip changed keys: %+v", decoded)
	}
	if decoded.SnapshotCount != 31 {
		t.Fatalf("round trip count = %d, want 31", decoded.SnapshotCount)
	}
	if encodeAggregate(decoded) != encodeAggregate(row) {
		t.Fatalf("round trip changed values:\n  %s\n  %s", encodeAggregate(row), encodeAggregate(decoded))
	}
}

func TestDecodeSnapshot(t *testing.T) {
	line := `2024-02-05,03:00:00,"LUNA-USDC",terra1pooladdr,1500.5,10,70,0.12,1000,2000,500`
	row := decodeSnapshot(line)

	if row.PoolID != "LUNA-USDC" {
		t.Fatalf("pool id = %q, want unquoted LUNA-USDC", row.PoolID)
	}
	if got := row.TVLUSD.String(); got != "1500.5" {
		t.Fatalf("tvl = %q, want 1500.5", got)
	}
	if got := row.TotalShare.String(); got != "500" {
		t.Fatalf("total share = %q, want 500", got)
	}
}

func TestDecodeSnapshotShortRow(t *testing.T) {
	row := decodeSnapshot(`2024-02-05,03:00:00,"LUNA-USDC"`)
	if row.PoolID != "LUNA-USDC" {
		t.Fatalf("pool id = %q", row.PoolID)
	}
	if row.PoolAddress != "" {
		t.Fatalf("pool address = %q, want empty", row.PoolAddress)
	}
	if row.TVLUSD.Valid {
		t.Fatal("tvl should decode as absent on a short row")
	}
}

func TestDecodeSnapshotBadNumber(t *testing.T) {
	row := decodeSnapshot(`2024-02-05,03:00:00,"P",terra1x,not-a-number,10,,,,,`)
	if row.TVLUSD.Valid {
		t.Fatal("non-numeric tvl should decode as absent")
	}
	if got := row.Volume24hUSD.String(); got != "10" {
		t.Fatalf("volume = %q, want 10", got)
	}
	if row.APR7d.Valid {
		t.Fatal("blank apr should decode as absent")
	}
}

func TestDecodeAggregateBadCount(t *testing.T) {
	row := decodeAggregate(`2024-W05,"P",terra1x,1.00,2.00,0.0001,1,2,3,oops`)
	if row.SnapshotCount != 0 {
		t.Fatalf("count = %d, want 0 for malformed input", row.SnapshotCount)
	}
}

// The format has no quote escaping. A pool identifier containing a comma
// shifts every later field by one on read.
func TestSplitNotQuoteAware(t *testing.T) {
	row := decodeSnapshot(`2024-02-05,03:00:00,"A,B",terra1x,5,,,,,,`)
	if row.PoolID != `"A` {
		t.Fatalf("pool id = %q, want the corrupted %q", row.PoolID, `"A`)
	}
	if row.PoolAddress != `B"` {
		t.Fatalf("pool address = %q, want the shifted %q", row.PoolAddress, `B"`)
	}
}

func TestHeadersMatchFieldCounts(t *testing.T) {
	if got := len(strings.Split(SnapshotHeader, ",")); got != snapshotFields {
		t.Fatalf("snapshot header has %d columns, want %d", got, snapshotFields)
	}
	if got := len(strings.Split(AggregateHeader, ",")); got != aggregateFields {
		t.Fatalf("aggregate header has %d columns, want %d", got, aggregateFields)
	}
}
