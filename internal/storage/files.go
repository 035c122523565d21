package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/defipatriot/ss-pool-data-2026/internal/model"
)

// FileStore keeps each tier in its own directory under a common root, one
// CSV file per period.
type FileStore struct {
	root string
}

func NewFileStore(root string) *FileStore {
	return &FileStore{root: root}
}

// Root returns the directory all tier files live under.
func (s *FileStore) Root() string {
	return s.root
}

func (s *FileStore) tierDir(tier model.Tier) string {
	return filepath.Join(s.root, tier.String())
}

func (s *FileStore) path(tier model.Tier, id string) string {
	return filepath.Join(s.tierDir(tier), id+".csv")
}

func (s *FileStore) ListPeriods(tier model.Tier) ([]string, error) {
	entries, err := os.ReadDir(s.tierDir(tier))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list %s periods: %w", tier, err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".csv") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".csv"))
	}
	return ids, nil
}

func (s *FileStore) ReadSnapshots(tier model.Tier, id string) ([]model.SnapshotRow, error) {
	lines, err := s.readLines(tier, id)
	if err != nil {
		return nil, err
	}
	rows := make([]model.SnapshotRow, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, decodeSnapshot(line))
	}
	return rows, nil
}

func (s *FileStore) ReadAggregates(tier model.Tier, id string) ([]model.AggregateRow, error) {
	lines, err := s.readLines(tier, id)
	if err != nil {
		return nil, err
	}
	rows := make([]model.AggregateRow, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, decodeAggregate(line))
	}
	return rows, nil
}

func (s *FileStore) WriteSnapshots(tier model.Tier, id string, rows []model.SnapshotRow) error {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, SnapshotHeader)
	for _, row := range rows {
		lines = append(lines, encodeSnapshot(row))
	}
	return s.writeLines(tier, id, lines)
}

func (s *FileStore) WriteAggregates(tier model.Tier, id string, rows []model.AggregateRow) error {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, AggregateHeader)
	for _, row := range rows {
		lines = append(lines, encodeAggregate(row))
	}
	return s.writeLines(tier, id, lines)
}

// readLines returns the data lines of a period file. The first line is
// assumed to be the header and skipped; blank lines are dropped.
func (s *FileStore) readLines(tier model.Tier, id string) ([]string, error) {
	data, err := os.ReadFile(s.path(tier, id))
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", tier, id, err)
	}

	var out []string
	for i, line := range strings.Split(string(data), "\n") {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out, nil
}

func (s *FileStore) writeLines(tier model.Tier, id string, lines []string) error {
	if err := os.MkdirAll(s.tierDir(tier), 0o755); err != nil {
		return fmt.Errorf("create %s dir: %w", tier, err)
	}

	path := s.path(tier, id)
	data := []byte(strings.Join(lines, "\n") + "\n")

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s/%s tmp: %w", tier, id, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename %s/%s: %w", tier, id, err)
	}
	return nil
}
