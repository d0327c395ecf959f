package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/vovakirdan/brick-breaker/internal/config"
)

// OutputManager writes run output into a directory: the effective config
// as config.yaml and one levels.csv row per finished level.
type OutputManager struct {
	dir           string
	levelsFile    *os.File
	headerWritten bool
}

// NewOutputManager creates the output directory and opens levels.csv.
// Returns nil if dir is empty (output disabled); a nil manager ignores writes.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "levels.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating levels.csv: %w", err)
	}
	return &OutputManager{dir: dir, levelsFile: f}, nil
}

// WriteConfig saves the effective configuration as YAML.
func (om *OutputManager) WriteConfig(cfg config.BreakoutConfig) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteLevels appends level records to levels.csv.
func (om *OutputManager) WriteLevels(records []LevelStats) error {
	if om == nil || len(records) == 0 {
		return nil
	}

	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.levelsFile); err != nil {
			return fmt.Errorf("writing levels: %w", err)
		}
		om.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.levelsFile); err != nil {
		return fmt.Errorf("writing levels: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.levelsFile == nil {
		return nil
	}
	return om.levelsFile.Close()
}
