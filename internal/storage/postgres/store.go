// Package postgres mirrors published period rows into Postgres for ad hoc
// querying. The CSV files stay canonical; mirror writes are best effort.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/defipatriot/ss-pool-data-2026/internal/model"
)

// Store provides Postgres persistence for snapshots and aggregates.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertSnapshots inserts or updates one row per pool per capture date. A
// later capture on the same date replaces the earlier one, matching the
// overwrite semantics of the daily files.
func (s *Store) UpsertSnapshots(ctx context.Context, rows []model.SnapshotRow) error {
	if len(rows) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(`
			INSERT INTO pool_snapshots (
				capture_date, capture_time, pool_id, pool_address,
				tvl_usd, volume_24h_usd, volume_7d_usd, apr_7d,
				reserve_0, reserve_1, total_share, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now(),now())
			ON CONFLICT (capture_date, pool_id)
			DO UPDATE SET
				capture_time = EXCLUDED.capture_time,
				pool_address = EXCLUDED.pool_address,
				tvl_usd = EXCLUDED.tvl_usd,
				volume_24h_usd = EXCLUDED.volume_24h_usd,
				volume_7d_usd = EXCLUDED.volume_7d_usd,
				apr_7d = EXCLUDED.apr_7d,
				reserve_0 = EXCLUDED.reserve_0,
				reserve_1 = EXCLUDED.reserve_1,
				total_share = EXCLUDED.total_share,
				updated_at = now()
		`,
			row.Date,
			row.Time,
			row.PoolID,
			row.PoolAddress,
			row.TVLUSD.Ptr(),
			row.Volume24hUSD.Ptr(),
			row.Volume7dUSD.Ptr(),
			row.APR7d.Ptr(),
			row.Reserve0.Ptr(),
			row.Reserve1.Ptr(),
			row.TotalShare.Ptr(),
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range rows {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// UpsertAggregates inserts or updates one row per pool per period. Values
// carry the same fixed decimal places as the published files.
func (s *Store) UpsertAggregates(ctx context.Context, tier model.Tier, rows []model.AggregateRow) error {
	if len(rows) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(`
			INSERT INTO pool_aggregates (
				tier, period, pool_id, pool_address,
				avg_tvl_usd, total_volume_usd, avg_apr_7d,
				avg_reserve_0, avg_reserve_1, avg_total_share,
				snapshot_count, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now(),now())
			ON CONFLICT (tier, period, pool_id)
			DO UPDATE SET
				pool_address = EXCLUDED.pool_address,
				avg_tvl_usd = EXCLUDED.avg_tvl_usd,
				total_volume_usd = EXCLUDED.total_volume_usd,
				avg_apr_7d = EXCLUDED.avg_apr_7d,
				avg_reserve_0 = EXCLUDED.avg_reserve_0,
				avg_reserve_1 = EXCLUDED.avg_reserve_1,
				avg_total_share = EXCLUDED.avg_total_share,
				snapshot_count = EXCLUDED.snapshot_count,
				updated_at = now()
		`,
			tier.String(),
			row.Period,
			row.PoolID,
			row.PoolAddress,
			row.AvgTVLUSD.FixedPtr(model.USDPlaces),
			row.TotalVolumeUSD.FixedPtr(model.USDPlaces),
			row.AvgAPR7d.FixedPtr(model.RatePlaces),
			row.AvgReserve0.FixedPtr(model.QuantityPlaces),
			row.AvgReserve1.FixedPtr(model.QuantityPlaces),
			row.AvgTotalShare.FixedPtr(model.QuantityPlaces),
			row.SnapshotCount,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range rows {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
