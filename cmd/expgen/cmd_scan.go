package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"expgen/cmd/expgen/ui"
	"expgen/internal/logging"
	"expgen/internal/market"
	"expgen/internal/scaffold"
	"expgen/internal/selector"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scanWatch bool

// slowScanThreshold is the scan duration above which a warning is logged.
const slowScanThreshold = 2 * time.Second

var scanCmd = &cobra.Command{
	Use:   "scan [dir]",
	Short: "List component selector candidates found under <dir>/src",
	Long: `Scans the project's src/ tree for selectors the way the generator does and
prints them best-first. With --watch the table is reprinted whenever a source
file changes, until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the last generation run recorded in tests/",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runScan(cmd *cobra.Command, args []string) error {
	dir, err := workspaceDir()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		if dir, err = filepath.Abs(args[0]); err != nil {
			return err
		}
	}

	cfg := currentConfig()
	scanner := selector.NewScanner(selector.Options{
		Extensions: cfg.Scanner.Extensions,
		Workers:    cfg.Scanner.Workers,
		Logger:     logging.Get(currentLogger(), logging.CategoryScanner),
	})
	out := cmd.OutOrStdout()

	if !scanWatch {
		timer := logging.StartTimer(currentLogger(), "selector scan")
		candidates := scanner.Scan(dir)
		timer.StopWithThreshold(slowScanThreshold)
		ui.RenderCandidates(out, dir, candidates)
		return nil
	}

	w, err := selector.NewWatcher(scanner, dir, selector.DefaultDebounce)
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	ctx, cancel := commandContext(false)
	defer cancel()

	styles := ui.DefaultStyles()
	fmt.Fprintln(out, styles.Hint.Render("Watching "+filepath.Join(dir, selector.SourceDir)+" (Ctrl+C to stop)"))
	return w.Run(ctx, func(candidates []selector.Candidate) {
		currentLogger().Debug("Rescanned", zap.Int("candidates", len(candidates)))
		fmt.Fprintln(out, styles.RenderDivider(40))
		ui.RenderCandidates(out, dir, candidates)
	})
}

func runStatus(cmd *cobra.Command, args []string) error {
	dir, err := workspaceDir()
	if err != nil {
		return err
	}

	rec, err := scaffold.ReadRecord(dir)
	if errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(cmd.OutOrStdout(), "No generation record found. Run \"expgen generate\" first.")
		return nil
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	ui.RenderRecord(out, rec)
	ui.RenderResolution(out, market.Resolution{MarketGroup: rec.MarketGroup, Markets: rec.Markets})

	styles := ui.DefaultStyles()
	for _, f := range rec.Files {
		mark := styles.Success.Render("✓")
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(f))); err != nil {
			mark = styles.Error.Render("✗ missing")
		}
		fmt.Fprintf(out, "  %s %s\n", mark, f)
	}
	return nil
}
