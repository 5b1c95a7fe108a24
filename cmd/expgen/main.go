// Command expgen scaffolds Playwright end-to-end tests for an A/B experiment
// project and provides helpers to inspect markets, page paths and selectors.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"expgen/internal/config"
	"expgen/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose    bool
	workspace  string
	configPath string
	timeout    time.Duration

	logger *zap.Logger
	appCfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "expgen",
	Short: "Experiment E2E test generator",
	Long: `expgen scaffolds a Playwright end-to-end test suite inside an experiment
project. It asks for the experiment name, base URL, markets and target pages,
scans the project sources for a component selector, writes tests/ and
playwright.config.js, patches package.json and installs dependencies.

Run without arguments (or with "generate") inside the project root.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		dir, err := workspaceDir()
		if err != nil {
			return err
		}

		if configPath != "" {
			appCfg, err = config.Load(configPath)
		} else {
			appCfg, err = config.LoadProject(dir)
		}
		if err != nil {
			return err
		}
		if err := appCfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		logger, err = logging.New(appCfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logging.Get(logger, logging.CategoryBoot).Debug("Configuration loaded",
			zap.String("workspace", dir),
			zap.String("base_url", appCfg.Defaults.BaseURL))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runGenerate,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Project directory (default: current)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <workspace>/"+config.FileName+")")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Minute, "Operation timeout (0 disables)")

	generateCmd.Flags().BoolVar(&skipInstall, "skip-install", false, "Do not install dependencies after generating")
	rootCmd.Flags().AddFlagSet(generateCmd.Flags())

	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "Print the markets block as it appears in qa-links.config.js")
	pagesCmd.Flags().StringVarP(&pagesType, "type", "t", "", "Only show one page type (PFP, PCD, PDP, BUY)")
	scanCmd.Flags().BoolVar(&scanWatch, "watch", false, "Re-scan when source files change")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(marketsCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(pagesCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// workspaceDir returns the absolute project directory.
func workspaceDir() (string, error) {
	dir := workspace
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
	}
	return filepath.Abs(dir)
}

// currentConfig returns the loaded config, or defaults when the command was
// invoked without the root pre-run (as in tests).
func currentConfig() *config.Config {
	if appCfg == nil {
		return config.DefaultConfig()
	}
	return appCfg
}

func currentLogger() *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// commandContext returns a context cancelled on SIGINT/SIGTERM and, when
// withTimeout is set and --timeout is positive, after the timeout.
func commandContext(withTimeout bool) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	if withTimeout && timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, timeout)
		parent := cancel
		cancel = func() {
			cancelTimeout()
			parent()
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case <-sigCh:
			currentLogger().Info("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
