package ui

import (
	"fmt"
	"strings"

	"expgen/internal/generator"
	"expgen/internal/manifest"
	"expgen/internal/market"
	"expgen/internal/scaffold"

	"github.com/charmbracelet/glamour"
)

// DocsURL is linked from the completion summary.
const DocsURL = "https://playwright.dev/docs/intro"

// SummaryMarkdown describes a completed run and the steps that remain.
func SummaryMarkdown(res *generator.Result) string {
	var sb strings.Builder
	kebab := scaffold.ToKebabCase(res.ExperimentName)

	sb.WriteString("# ✓ Test structure generated successfully!\n\n")
	fmt.Fprintf(&sb, "- **Experiment:** %s\n", res.ExperimentName)
	fmt.Fprintf(&sb, "- **Base URL:** %s\n", res.BaseURL)
	fmt.Fprintf(&sb, "- **Markets:** %s (%s)\n", res.Resolution.MarketGroup, market.FormatCodes(res.Resolution.Markets))
	if res.Selector != nil {
		fmt.Fprintf(&sb, "- **Selector:** `%s`\n", *res.Selector)
	} else {
		fmt.Fprintf(&sb, "- **Selector:** `%s` (placeholder)\n", scaffold.PlaceholderSelector(kebab))
	}
	fmt.Fprintf(&sb, "- **Run ID:** %s\n\n", res.Record.RunID)

	sb.WriteString("## Next steps\n\n")
	step := 1
	if !res.Installed {
		fmt.Fprintf(&sb, "%d. Install dependencies: `%s install`\n", step, res.PackageManager)
		step++
	}
	fmt.Fprintf(&sb, "%d. Update test URLs in `tests/config/qa-links.config.js`\n", step)
	step++
	fmt.Fprintf(&sb, "%d. Customize test selectors in `tests/e2e/%s/%s.spec.js`\n", step, kebab, kebab)
	step++
	fmt.Fprintf(&sb, "%d. Run tests: `%s`\n\n", step, res.PackageManager.ScriptCommand(manifest.ScriptE2E))

	fmt.Fprintf(&sb, "Documentation: %s\n", DocsURL)
	return sb.String()
}

// RenderSummary renders SummaryMarkdown for the terminal. An empty style
// picks light or dark from the terminal background.
func RenderSummary(res *generator.Result, style string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if style == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	return r.Render(SummaryMarkdown(res))
}
