package storage

import "github.com/defipatriot/ss-pool-data-2026/internal/model"

// Store reads and writes period-bucketed tier files.
type Store interface {
	// ListPeriods returns the period identifiers present for a tier, sorted
	// by name. A missing tier directory lists as empty.
	ListPeriods(tier model.Tier) ([]string, error)

	ReadSnapshots(tier model.Tier, id string) ([]model.SnapshotRow, error)
	ReadAggregates(tier model.Tier, id string) ([]model.AggregateRow, error)

	// Writes are full overwrites of the period file, never appends.
	WriteSnapshots(tier model.Tier, id string, rows []model.SnapshotRow) error
	WriteAggregates(tier model.Tier, id string, rows []model.AggregateRow) error
}
