package adapter

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "ctlint.dev/pkg/ctlint/internal/model"
)

// reportsFileName is the aggregate report file inside the output directory.
const reportsFileName = "reports.yaml"

// ReportStore persists lint results for later viewing.
type ReportStore interface {
	SaveReports(dir m.Path, reports []m.TargetReport) error
	LoadReports(dir m.Path) ([]m.TargetReport, error)

	// SaveTargetReport writes the machine-readable per-target report
	// (fix mode output contract).
	SaveTargetReport(path m.Path, report m.TargetReport) error
}

// YAMLReportStore stores reports as YAML documents.
type YAMLReportStore struct{}

// NewReportStore constructs a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReports writes the aggregate report file into dir.
func (s *YAMLReportStore) SaveReports(dir m.Path, reports []m.TargetReport) error {
	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(reports)
	if err != nil {
		return fmt.Errorf("marshal reports: %w", err)
	}

	path := filepath.Join(string(dir), reportsFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write reports: %w", err)
	}

	return nil
}

// LoadReports reads the aggregate report file from dir.
func (s *YAMLReportStore) LoadReports(dir m.Path) ([]m.TargetReport, error) {
	path := filepath.Join(string(dir), reportsFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reports: %w", err)
	}

	var reports []m.TargetReport
	if err := yaml.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("parse reports %s: %w", path, err)
	}

	return reports, nil
}

// SaveTargetReport writes one report to an explicit path.
func (s *YAMLReportStore) SaveTargetReport(path m.Path, report m.TargetReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report for %s: %w", report.Target, err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}
