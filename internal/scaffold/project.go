package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"expgen/internal/manifest"
)

// ErrNoManifest means the directory has no package.json.
var ErrNoManifest = errors.New("no package.json found in current directory. Please run this command from your project root")

// ValidateProjectDir checks that dir looks like a project root.
func ValidateProjectDir(dir string) error {
	info, err := os.Stat(filepath.Join(dir, manifest.FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNoManifest
		}
		return fmt.Errorf("failed to stat package.json: %w", err)
	}
	if info.IsDir() {
		return ErrNoManifest
	}
	return nil
}

var (
	scopeRe          = regexp.MustCompile(`^@[^/]+/`)
	componentExtRe   = regexp.MustCompile(`\.(jsx?|tsx?)$`)
	componentsSubdir = filepath.Join("src", "components")
)

// DetectExperimentName guesses a name from package.json's "name" (without an
// npm scope) or, failing that, the first entry of src/components. It returns
// "" when nothing fits.
func DetectExperimentName(dir string) string {
	if name, ok := manifest.Name(dir); ok {
		return scopeRe.ReplaceAllString(name, "")
	}

	entries, err := os.ReadDir(filepath.Join(dir, componentsSubdir))
	if err != nil || len(entries) == 0 {
		return ""
	}
	return componentExtRe.ReplaceAllString(entries[0].Name(), "")
}

// ESLintIgnoreFile is the legacy ESLint ignore file.
const ESLintIgnoreFile = ".eslintignore"

// AddTestsToESLintIgnore appends "tests/" to .eslintignore. It does nothing
// when the file is missing or already lists tests or tests/, and reports
// whether it wrote.
func AddTestsToESLintIgnore(dir string) (bool, error) {
	path := filepath.Join(dir, ESLintIgnoreFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", ESLintIgnoreFile, err)
	}

	content := string(data)
	for _, line := range strings.Split(content, "\n") {
		switch strings.TrimSpace(line) {
		case "tests", "tests/":
			return false, nil
		}
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += "tests/\n"

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", ESLintIgnoreFile, err)
	}
	return true, nil
}
