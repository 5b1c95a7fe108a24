// Package scaffold writes the Playwright test tree into a target project from
// templates embedded in the binary.
package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"expgen/internal/market"
	"expgen/internal/pagepath"

	"go.uber.org/zap"
)

//go:embed templates
var templates embed.FS

// TestsDir is the directory generated into the target project.
const TestsDir = "tests"

// Options carries the answers collected by the workflow.
type Options struct {
	ExperimentName string
	BaseURL        string
	MarketGroup    string
	Markets        []market.Locale
	// Selector is the chosen component selector. Nil renders a placeholder.
	Selector  *string
	PagePaths []pagepath.Entry
	Logger    *zap.Logger
}

// Output describes what Generate wrote.
type Output struct {
	TestsDir      string
	ExperimentDir string
	Files         []string // relative to the project root, in write order
}

type mapping struct {
	source string // path inside templates/
	dest   string // relative to the project root; {{kebab}} expanded
}

var mappings = []mapping{
	{"playwright.config.js", "playwright.config.js"},
	{"tests/config/index.js", "tests/config/index.js"},
	{"tests/config/experiment.config.js", "tests/config/experiment.config.js"},
	{"tests/config/qa-links.config.js", "tests/config/qa-links.config.js"},
	{"tests/config/urls.config.js", "tests/config/urls.config.js"},
	{"tests/fixtures/test-fixtures.js", "tests/fixtures/test-fixtures.js"},
	{"tests/utils/test-helpers.js", "tests/utils/test-helpers.js"},
	{"tests/e2e/experiment-name/experiment.spec.js", "tests/e2e/{{kebab}}/{{kebab}}.spec.js"},
	{"tests/e2e/experiment-name/experiment-test.spec.js", "tests/e2e/{{kebab}}/experiment-test.spec.js"},
}

// GeneratedFiles lists the files Generate writes for name, relative to the
// project root.
func GeneratedFiles(name string) []string {
	kebab := ToKebabCase(name)
	files := make([]string, len(mappings))
	for i, m := range mappings {
		files[i] = strings.ReplaceAll(m.dest, "{{kebab}}", kebab)
	}
	return files
}

// Vars builds the template variables for opts.
func Vars(opts Options) map[string]string {
	kebab := ToKebabCase(opts.ExperimentName)
	selector := PlaceholderSelector(kebab)
	if opts.Selector != nil {
		selector = *opts.Selector
	}
	return map[string]string{
		VarExperimentName:      jsString(opts.ExperimentName),
		VarExperimentNameKebab: kebab,
		VarBaseURL:             jsString(strings.TrimRight(opts.BaseURL, "/")),
		VarMarket:              strings.ToUpper(opts.MarketGroup),
		VarMarketsJSON:         market.MarketsJSON(opts.Markets),
		VarComponentSelector:   jsString(selector),
		VarPagePathsJS:         pagepath.BuildJS(opts.PagePaths),
	}
}

// Generate renders every template into dir, overwriting existing files.
func Generate(dir string, opts Options) (Output, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if strings.TrimSpace(opts.ExperimentName) == "" {
		return Output{}, fmt.Errorf("experiment name is required")
	}
	kebab := ToKebabCase(opts.ExperimentName)
	if kebab == "" {
		return Output{}, fmt.Errorf("experiment name %q has no usable characters", opts.ExperimentName)
	}

	vars := Vars(opts)
	files := GeneratedFiles(opts.ExperimentName)

	for i, m := range mappings {
		data, err := templates.ReadFile(path.Join("templates", m.source))
		if err != nil {
			return Output{}, fmt.Errorf("failed to read template %s: %w", m.source, err)
		}

		dest := filepath.Join(dir, filepath.FromSlash(files[i]))
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return Output{}, fmt.Errorf("failed to create directory for %s: %w", files[i], err)
		}
		if err := os.WriteFile(dest, []byte(ReplaceVars(string(data), vars)), 0644); err != nil {
			return Output{}, fmt.Errorf("failed to write %s: %w", files[i], err)
		}
		logger.Debug("Wrote template", zap.String("file", files[i]))
	}

	return Output{
		TestsDir:      filepath.Join(dir, TestsDir),
		ExperimentDir: filepath.Join(dir, TestsDir, "e2e", kebab),
		Files:         files,
	}, nil
}

// TestsDirExists reports whether dir already has a tests/ entry.
func TestsDirExists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, TestsDir))
	return err == nil
}
