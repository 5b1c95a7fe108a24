package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"expgen/internal/market"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// RecordFile is written next to the generated tests.
var RecordFile = filepath.Join(TestsDir, ".expgen.yaml")

// Record describes one generation run. It is what `expgen status` prints.
type Record struct {
	RunID       string          `yaml:"run_id"`
	Experiment  string          `yaml:"experiment"`
	BaseURL     string          `yaml:"base_url"`
	MarketGroup string          `yaml:"market_group"`
	Markets     []market.Locale `yaml:"markets"`
	Selector    string          `yaml:"selector,omitempty"` // empty = placeholder
	PagePaths   []string        `yaml:"page_paths,omitempty"`
	Files       []string        `yaml:"files"`
	GeneratedAt time.Time       `yaml:"generated_at"`
}

// NewRecord builds a Record for opts with a fresh run ID.
func NewRecord(opts Options, files []string, now time.Time) Record {
	r := Record{
		RunID:       uuid.NewString(),
		Experiment:  opts.ExperimentName,
		BaseURL:     opts.BaseURL,
		MarketGroup: opts.MarketGroup,
		Markets:     opts.Markets,
		Files:       files,
		GeneratedAt: now.UTC(),
	}
	if opts.Selector != nil {
		r.Selector = *opts.Selector
	}
	for _, p := range opts.PagePaths {
		r.PagePaths = append(r.PagePaths, p.Value)
	}
	return r
}

// WriteRecord saves r under dir.
func WriteRecord(dir string, r Record) error {
	path := filepath.Join(dir, RecordFile)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create record directory: %w", err)
	}
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// ReadRecord loads the record under dir. A project that was never generated
// returns an error wrapping os.ErrNotExist.
func ReadRecord(dir string) (Record, error) {
	var r Record
	data, err := os.ReadFile(filepath.Join(dir, RecordFile))
	if err != nil {
		return r, fmt.Errorf("failed to read record: %w", err)
	}
	if err := yaml.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("failed to parse record: %w", err)
	}
	return r, nil
}
