package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	m "boundsmith.dev/pkg/boundsmith/internal/model"
)

// reportFileName is the report payload written into the reports directory.
const reportFileName = "boundaries.json"

// ReportStore persists the outcome of a scan so the view and generate
// commands can re-render it without re-scanning.
type ReportStore interface {
	Save(dir m.Path, report m.Report) error
	Load(dir m.Path) (m.Report, error)
}

// JSONReportStore stores reports as an indented JSON file on disk.
type JSONReportStore struct{}

// NewReportStore constructs a JSONReportStore.
func NewReportStore() *JSONReportStore {
	return &JSONReportStore{}
}

// Save writes the report into dir, creating the directory when needed.
func (s *JSONReportStore) Save(dir m.Path, report m.Report) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir %s: %w", dir, err)
	}

	data, err := m.EncodeJSONIndent(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	target := filepath.Join(string(dir), reportFileName)
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", target, err)
	}

	return nil
}

// Load reads the most recent report from dir.
func (s *JSONReportStore) Load(dir m.Path) (m.Report, error) {
	target := filepath.Join(string(dir), reportFileName)

	data, err := os.ReadFile(target)
	if err != nil {
		return m.Report{}, fmt.Errorf("read report %s: %w", target, err)
	}

	var report m.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return m.Report{}, fmt.Errorf("decode report %s: %w", target, err)
	}

	return report, nil
}
