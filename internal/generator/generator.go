// Package generator runs the end-to-end scaffolding workflow: pre-flight
// checks, prompts, template generation, package.json patching and install.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"expgen/internal/config"
	"expgen/internal/logging"
	"expgen/internal/manifest"
	"expgen/internal/market"
	"expgen/internal/pagepath"
	"expgen/internal/pkgmgr"
	"expgen/internal/scaffold"
	"expgen/internal/selector"

	"go.uber.org/zap"
)

// ErrCancelled is returned when the user declines to continue or aborts a prompt.
var ErrCancelled = errors.New("operation cancelled")

// Prompter collects answers from the user. Implementations return
// ErrCancelled when the user aborts.
type Prompter interface {
	// Confirm asks a yes/no question.
	Confirm(message string, initial bool) (bool, error)
	// Text asks for a line of input. validate may reject an answer.
	Text(message, initial string, validate func(string) error) (string, error)
	// Market offers choices with type-to-filter; free text not matching any
	// choice is returned upper-cased.
	Market(message string, choices []market.Choice, initial string) (string, error)
	// PagePaths offers a multiselect and returns the selected values.
	PagePaths(message string, choices []pagepath.Choice) ([]string, error)
	// Selector offers scanned candidates. Nil means "use a placeholder".
	Selector(message string, candidates []selector.Candidate) (*string, error)
}

// Installer runs the dependency install step.
type Installer interface {
	Install(ctx context.Context, dir string, m pkgmgr.Manager) error
}

// Workflow wires the collaborators for one run.
type Workflow struct {
	Dir       string
	Config    *config.Config
	Prompter  Prompter
	Scanner   *selector.Scanner
	Installer Installer // nil skips the install step
	Logger    *zap.Logger
	Now       func() time.Time
}

// Result summarises a completed run.
type Result struct {
	ExperimentName      string
	ExperimentDir       string
	BaseURL             string
	Resolution          market.Resolution
	Selector            *string
	PagePaths           []pagepath.Entry
	Files               []string
	Manifest            manifest.Result
	PlaywrightInstalled bool // before this run
	ESLintIgnoreUpdated bool
	PackageManager      pkgmgr.Manager
	Installed           bool
	InstallErr          error
	Record              scaffold.Record
}

// Run executes the workflow. It returns ErrCancelled when the user stops it
// and scaffold.ErrNoManifest when Dir is not a project root.
func (w *Workflow) Run(ctx context.Context) (*Result, error) {
	logger := logging.Get(w.Logger, logging.CategoryGenerator)
	cfg := w.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	scanner := w.Scanner
	if scanner == nil {
		scanner = selector.NewScanner(selector.Options{
			Extensions: cfg.Scanner.Extensions,
			Workers:    cfg.Scanner.Workers,
			Logger:     logging.Get(w.Logger, logging.CategoryScanner),
		})
	}
	now := w.Now
	if now == nil {
		now = time.Now
	}

	// Pre-flight
	logger.Debug("Running pre-flight checks", zap.String("dir", w.Dir))
	if err := scaffold.ValidateProjectDir(w.Dir); err != nil {
		return nil, err
	}

	if scaffold.TestsDirExists(w.Dir) {
		logger.Warn("tests/ directory already exists")
		ok, err := w.Prompter.Confirm("Do you want to overwrite existing test files?", true)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrCancelled
		}
	}

	res := &Result{PlaywrightInstalled: manifest.IsPlaywrightInstalled(w.Dir)}
	if res.PlaywrightInstalled {
		logger.Info("Playwright is already installed")
	}

	// Prompts
	name, err := w.Prompter.Text("What is your experiment name?", scaffold.DetectExperimentName(w.Dir), validateName)
	if err != nil {
		return nil, err
	}
	res.ExperimentName = strings.TrimSpace(name)

	baseURL, err := w.Prompter.Text("Base URL for tests (e.g., https://www.samsung.com)", cfg.Defaults.BaseURL, config.ValidateBaseURL)
	if err != nil {
		return nil, err
	}
	res.BaseURL = strings.TrimSpace(baseURL)

	marketInput, err := w.Prompter.Market("Select market or market group (type to search, or enter custom code)", market.Choices(), cfg.Defaults.Market)
	if err != nil {
		return nil, err
	}
	res.Resolution = market.Resolve(strings.TrimSpace(marketInput))
	logger.Info("Resolved markets",
		zap.String("group", res.Resolution.MarketGroup),
		zap.String("markets", market.FormatCodes(res.Resolution.Markets)))

	runESLint, err := w.Prompter.Confirm("Run ESLint on tests?", false)
	if err != nil {
		return nil, err
	}

	values, err := w.Prompter.PagePaths("Which page paths does your experiment target?", pagepath.PromptChoices())
	if err != nil {
		return nil, err
	}
	res.PagePaths = pagepath.LookupAll(dropHeaders(values))

	timer := logging.StartTimer(logger, "selector scan")
	candidates := scanner.Scan(w.Dir)
	timer.Stop()
	res.Selector, err = w.Prompter.Selector("Select the component selector for your experiment tests", candidates)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Generate
	opts := scaffold.Options{
		ExperimentName: res.ExperimentName,
		BaseURL:        res.BaseURL,
		MarketGroup:    res.Resolution.MarketGroup,
		Markets:        res.Resolution.Markets,
		Selector:       res.Selector,
		PagePaths:      res.PagePaths,
		Logger:         logging.Get(w.Logger, logging.CategoryScaffold),
	}
	out, err := scaffold.Generate(w.Dir, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate test files: %w", err)
	}
	res.Files = out.Files
	res.ExperimentDir = out.ExperimentDir

	res.Manifest, err = manifest.Update(w.Dir, cfg.Playwright.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to update package.json: %w", err)
	}
	for _, c := range res.Manifest.Changes {
		logging.Get(w.Logger, logging.CategoryManifest).Info(c)
	}

	if !runESLint {
		res.ESLintIgnoreUpdated, err = scaffold.AddTestsToESLintIgnore(w.Dir)
		if err != nil {
			return nil, err
		}
	}

	res.PackageManager = pkgmgr.Detect(w.Dir)
	if w.Installer != nil && cfg.Install.Enabled {
		if err := w.Installer.Install(ctx, w.Dir, res.PackageManager); err != nil {
			// Files are already written; report and carry on.
			logger.Warn("Dependency install failed", zap.Error(err))
			res.InstallErr = err
		} else {
			res.Installed = true
		}
	}

	res.Record = scaffold.NewRecord(opts, res.Files, now())
	if err := scaffold.WriteRecord(w.Dir, res.Record); err != nil {
		return nil, err
	}

	logger.Info("Test structure generated", zap.String("run_id", res.Record.RunID), zap.Int("files", len(res.Files)))
	return res, nil
}

func validateName(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New("experiment name is required")
	}
	if scaffold.ToKebabCase(v) == "" {
		return errors.New("experiment name needs at least one letter or digit")
	}
	return nil
}

func dropHeaders(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !strings.HasPrefix(v, pagepath.HeaderValuePrefix) {
			out = append(out, v)
		}
	}
	return out
}
