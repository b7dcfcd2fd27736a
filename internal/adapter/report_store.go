package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "flowlint.dev/pkg/flowlint/internal/model"
)

// reportFileName is the single YAML document written under the reports
// directory.
const reportFileName = "flowlint-report.yaml"

// ReportStore persists normalized diagnostics between runs so they can be
// re-rendered without invoking the checker again.
type ReportStore interface {
	SaveReports(dir m.Path, reports []m.FileReport) error
	LoadReports(dir m.Path) ([]m.FileReport, error)
}

// LocalReportStore stores reports as a YAML file on the local filesystem.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReports writes all file reports into dir, creating it if needed.
func (s *LocalReportStore) SaveReports(dir m.Path, reports []m.FileReport) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir %s: %w", dir, err)
	}

	data, err := yaml.Marshal(reports)
	if err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}

	path := filepath.Join(string(dir), reportFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write reports to %s: %w", path, err)
	}

	return nil
}

// LoadReports reads the file reports previously saved into dir. A missing
// report file yields an empty slice, not an error.
func (s *LocalReportStore) LoadReports(dir m.Path) ([]m.FileReport, error) {
	path := filepath.Join(string(dir), reportFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports from %s: %w", path, err)
	}

	var reports []m.FileReport
	if err := yaml.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("decode reports from %s: %w", path, err)
	}

	return reports, nil
}
