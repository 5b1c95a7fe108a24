package main

import (
	"errors"
	"fmt"
	"io"

	"expgen/cmd/expgen/ui"
	"expgen/internal/generator"
	"expgen/internal/logging"
	"expgen/internal/pkgmgr"
	"expgen/internal/selector"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var skipInstall bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the Playwright test structure for this project",
	Long: `Runs the interactive generator in the project root.

Pre-flight checks require a package.json and ask before overwriting an
existing tests/ directory. The answers are recorded in tests/.expgen.yaml
and can be shown later with "expgen status".`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

// Collaborators swapped out by tests.
var (
	newPrompter = func(cmd *cobra.Command, styles ui.Styles) generator.Prompter {
		return ui.NewTeaPrompter(styles, cmd.InOrStdin(), cmd.OutOrStdout())
	}
	newInstaller = func(cmd *cobra.Command) generator.Installer {
		return pkgmgr.NewInstaller(cmd.OutOrStdout(), cmd.ErrOrStderr(), logging.Get(currentLogger(), logging.CategoryInstall))
	}
	summaryStyle = ""
)

func runGenerate(cmd *cobra.Command, args []string) error {
	dir, err := workspaceDir()
	if err != nil {
		return err
	}
	cfg := currentConfig()
	if skipInstall {
		cfg.Install.Enabled = false
	}

	out := cmd.OutOrStdout()
	styles := ui.DefaultStyles()
	fmt.Fprintf(out, "\n%s\n\n", ui.Banner(styles))

	ctx, cancel := commandContext(true)
	defer cancel()

	w := &generator.Workflow{
		Dir:      dir,
		Config:   cfg,
		Prompter: newPrompter(cmd, styles),
		Scanner: selector.NewScanner(selector.Options{
			Extensions: cfg.Scanner.Extensions,
			Workers:    cfg.Scanner.Workers,
			Logger:     logging.Get(currentLogger(), logging.CategoryScanner),
		}),
		Installer: newInstaller(cmd),
		Logger:    currentLogger(),
	}

	res, err := w.Run(ctx)
	if errors.Is(err, generator.ErrCancelled) {
		fmt.Fprintln(out, styles.Muted.Render("\nOperation cancelled."))
		return nil
	}
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), styles.Error.Render("✗ Error generating test files"))
		return err
	}

	printResult(out, styles, res)

	summary, err := ui.RenderSummary(res, summaryStyle, 80)
	if err != nil {
		currentLogger().Warn("Failed to render summary", zap.Error(err))
		summary = ui.SummaryMarkdown(res)
	}
	fmt.Fprint(out, summary)
	return nil
}

func printResult(out io.Writer, styles ui.Styles, res *generator.Result) {
	fmt.Fprintln(out, styles.Info.Render("\n📁 Generated test files"))
	for _, f := range res.Files {
		fmt.Fprintf(out, "  %s %s\n", styles.Success.Render("✓"), f)
	}

	fmt.Fprintln(out, styles.Info.Render("\n📦 package.json"))
	if len(res.Manifest.Changes) == 0 {
		fmt.Fprintln(out, styles.Muted.Render("  ℹ No package.json updates needed"))
	}
	for _, c := range res.Manifest.Changes {
		fmt.Fprintf(out, "  %s %s\n", styles.Success.Render("✓"), c)
	}

	if res.ESLintIgnoreUpdated {
		fmt.Fprintf(out, "  %s Added tests/ to .eslintignore\n", styles.Success.Render("✓"))
	}
	if res.InstallErr != nil {
		fmt.Fprintf(out, "\n%s %v\n", styles.Warning.Render("⚠ Dependency install failed:"), res.InstallErr)
	}
}
