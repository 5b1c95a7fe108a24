package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"expgen/cmd/expgen/ui"
	"expgen/internal/generator"
	"expgen/internal/market"
	"expgen/internal/pagepath"
	"expgen/internal/scaffold"
	"expgen/internal/selector"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// answerPrompter accepts every default and picks the first selector.
type answerPrompter struct {
	market string
}

func (p answerPrompter) Confirm(string, bool) (bool, error) { return false, nil }

func (p answerPrompter) Text(_ string, initial string, validate func(string) error) (string, error) {
	return initial, validate(initial)
}

func (p answerPrompter) Market(string, []market.Choice, string) (string, error) {
	return p.market, nil
}

func (p answerPrompter) PagePaths(string, []pagepath.Choice) ([]string, error) {
	return []string{"pfpTvsAll"}, nil
}

func (p answerPrompter) Selector(_ string, candidates []selector.Candidate) (*string, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	v := candidates[0].Value
	return &v, nil
}

type cancelPrompter struct{ answerPrompter }

func (cancelPrompter) Market(string, []market.Choice, string) (string, error) {
	return "", generator.ErrCancelled
}

func setupWorkspace(t *testing.T) string {
	t.Helper()
	logger = zap.NewNop()
	appCfg = nil
	ws := t.TempDir()
	workspace = ws
	t.Cleanup(func() { workspace = "" })
	return ws
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	return cmd, &buf
}

func stubCollaborators(t *testing.T, p generator.Prompter) {
	t.Helper()
	origPrompter, origInstaller, origStyle := newPrompter, newInstaller, summaryStyle
	newPrompter = func(*cobra.Command, ui.Styles) generator.Prompter { return p }
	newInstaller = func(*cobra.Command) generator.Installer { return nil }
	summaryStyle = "notty"
	t.Cleanup(func() {
		newPrompter, newInstaller, summaryStyle = origPrompter, origInstaller, origStyle
	})
}

func TestMarketsCmd(t *testing.T) {
	setupWorkspace(t)
	cmd, buf := newTestCmd()

	if err := runMarkets(cmd, nil); err != nil {
		t.Fatalf("runMarkets failed: %v", err)
	}
	for _, want := range []string{"SEBN", "SENA", "SEIB", "EUROPE_CZ"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("markets output missing %s", want)
		}
	}
}

func TestResolveCmd(t *testing.T) {
	setupWorkspace(t)
	cmd, buf := newTestCmd()

	if err := runResolve(cmd, []string{"be_fr"}); err != nil {
		t.Fatalf("runResolve failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Belgium (FR)") {
		t.Errorf("expected BE_FR locale in output, got:\n%s", buf.String())
	}

	resolveJSON = true
	defer func() { resolveJSON = false }()
	buf.Reset()
	if err := runResolve(cmd, []string{"SEIB"}); err != nil {
		t.Fatalf("runResolve --json failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"urlPath": "pt"`) {
		t.Errorf("expected markets JSON, got:\n%s", buf.String())
	}
}

func TestResolveCmd_EmptyInput(t *testing.T) {
	setupWorkspace(t)
	cmd, buf := newTestCmd()

	for _, in := range []string{"", "   "} {
		if err := runResolve(cmd, []string{in}); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got:\n%s", buf.String())
	}
}

func TestPagesCmd(t *testing.T) {
	setupWorkspace(t)
	cmd, buf := newTestCmd()

	pagesType = "pdp"
	defer func() { pagesType = "" }()
	if err := runPages(cmd, nil); err != nil {
		t.Fatalf("runPages failed: %v", err)
	}
	if strings.Contains(buf.String(), "pfpTvsAll") {
		t.Error("PDP filter leaked a PFP entry")
	}

	pagesType = "nope"
	if err := runPages(cmd, nil); err == nil {
		t.Error("expected error for unknown page type")
	}
}

func TestScanCmd(t *testing.T) {
	ws := setupWorkspace(t)
	writeFile(t, filepath.Join(ws, "src", "js", "config.js"), "export const BANNER_SELECTOR = '.promo-banner';\n")
	cmd, buf := newTestCmd()

	if err := runScan(cmd, nil); err != nil {
		t.Fatalf("runScan failed: %v", err)
	}
	if !strings.Contains(buf.String(), ".promo-banner") {
		t.Errorf("expected candidate in output, got:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "src/js/config.js:1") {
		t.Errorf("expected relative location in output, got:\n%s", buf.String())
	}
}

func TestScanCmd_LogsDuration(t *testing.T) {
	ws := setupWorkspace(t)
	writeFile(t, filepath.Join(ws, "src", "main.js"), "document.querySelector('.cta');\n")
	core, logs := observer.New(zapcore.DebugLevel)
	logger = zap.New(core)

	cmd, _ := newTestCmd()
	if err := runScan(cmd, nil); err != nil {
		t.Fatalf("runScan failed: %v", err)
	}
	entries := logs.FilterMessageSnippet("selector scan").All()
	if len(entries) != 1 {
		t.Fatalf("expected one timing entry, got %d", len(entries))
	}
	// A tiny tree never crosses the slow-scan threshold.
	if entries[0].Level != zapcore.DebugLevel || entries[0].Message != "selector scan completed" {
		t.Errorf("unexpected timing entry: %s %q", entries[0].Level, entries[0].Message)
	}
	if slowScanThreshold <= 0 {
		t.Error("slow scan threshold must be positive")
	}
}

func TestStatusCmd_NoRecord(t *testing.T) {
	setupWorkspace(t)
	cmd, buf := newTestCmd()

	if err := runStatus(cmd, nil); err != nil {
		t.Fatalf("runStatus failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No generation record found") {
		t.Errorf("unexpected output: %s", buf.String())
	}
}

func TestGenerateCmd(t *testing.T) {
	ws := setupWorkspace(t)
	writeFile(t, filepath.Join(ws, "package.json"), `{"name":"hero","version":"1.0.0"}`)
	writeFile(t, filepath.Join(ws, "src", "js", "main.js"), "document.querySelector('.hero-cta');\n")
	stubCollaborators(t, answerPrompter{market: "SEUK"})

	cmd, buf := newTestCmd()
	if err := runGenerate(cmd, nil); err != nil {
		t.Fatalf("runGenerate failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"tests/e2e/hero/hero.spec.js", "test:e2e", "Next steps"} {
		if !strings.Contains(out, want) {
			t.Errorf("generate output missing %q", want)
		}
	}

	rec, err := scaffold.ReadRecord(ws)
	if err != nil {
		t.Fatalf("record not written: %v", err)
	}
	if rec.Selector != ".hero-cta" || rec.MarketGroup != "SEUK" {
		t.Errorf("unexpected record: %+v", rec)
	}

	buf.Reset()
	if err := runStatus(cmd, nil); err != nil {
		t.Fatalf("runStatus failed: %v", err)
	}
	if !strings.Contains(buf.String(), "hero") || strings.Contains(buf.String(), "missing") {
		t.Errorf("unexpected status output:\n%s", buf.String())
	}
}

func TestGenerateCmd_Cancelled(t *testing.T) {
	ws := setupWorkspace(t)
	writeFile(t, filepath.Join(ws, "package.json"), `{"name":"hero"}`)
	stubCollaborators(t, cancelPrompter{})

	cmd, buf := newTestCmd()
	if err := runGenerate(cmd, nil); err != nil {
		t.Fatalf("cancel should not be an error: %v", err)
	}
	if !strings.Contains(buf.String(), "Operation cancelled") {
		t.Errorf("expected cancellation notice, got:\n%s", buf.String())
	}
	if scaffold.TestsDirExists(ws) {
		t.Error("tests/ should not be created on cancel")
	}
}

func TestGenerateCmd_NoManifest(t *testing.T) {
	setupWorkspace(t)
	stubCollaborators(t, answerPrompter{market: "SEF"})

	cmd, _ := newTestCmd()
	if err := runGenerate(cmd, nil); err == nil {
		t.Fatal("expected error without package.json")
	}
}
