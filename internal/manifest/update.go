package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
)

// FileName is the manifest every target project must have.
const FileName = "package.json"

const (
	ScriptE2E           = "test:e2e"
	ScriptE2EExperiment = "test:e2e:experiment"

	PackagePlaywrightTest = "@playwright/test"
	PackagePlaywright     = "playwright"
)

const (
	sectionDependencies    = "dependencies"
	sectionDevDependencies = "devDependencies"
	sectionScripts         = "scripts"
)

// Pair is an ordered key/value entry.
type Pair struct {
	Key   string
	Value string
}

// Result reports what Update changed.
type Result struct {
	Updated bool
	Changes []string
}

// Update adds the Playwright devDependencies and e2e scripts to the
// package.json in dir. Existing scripts and an existing @playwright/test
// version are never overwritten. The file is rewritten only when something
// changed.
func Update(dir, version string) (Result, error) {
	path := filepath.Join(dir, FileName)
	doc, err := read(path)
	if err != nil {
		return Result{}, err
	}

	var deps, scripts []Pair
	var changes []string

	if !doc.Truthy(sectionDevDependencies, PackagePlaywrightTest) {
		deps = append(deps, Pair{PackagePlaywrightTest, version})
		if !doc.Truthy(sectionDevDependencies, PackagePlaywright) {
			deps = append(deps, Pair{PackagePlaywright, version})
		}
		changes = append(changes, "Added Playwright dependencies to devDependencies")
	}

	wanted := []Pair{
		{ScriptE2E, "playwright test"},
		{ScriptE2EExperiment, "playwright test tests/e2e/*/experiment-test.spec.js"},
	}
	for _, s := range wanted {
		if doc.Truthy(sectionScripts, s.Key) {
			continue
		}
		scripts = append(scripts, s)
		changes = append(changes, fmt.Sprintf("Added %q script", s.Key))
	}

	if len(changes) == 0 {
		return Result{Updated: false, Changes: []string{}}, nil
	}

	if err := setSection(doc, sectionDevDependencies, deps); err != nil {
		return Result{}, err
	}
	if err := setSection(doc, sectionScripts, scripts); err != nil {
		return Result{}, err
	}
	if err := os.WriteFile(path, doc.Bytes(), 0644); err != nil {
		return Result{}, fmt.Errorf("failed to write package.json: %w", err)
	}

	return Result{Updated: true, Changes: changes}, nil
}

func setSection(doc *Document, section string, pairs []Pair) error {
	if len(pairs) == 0 {
		return nil
	}
	if err := doc.EnsureObject(section); err != nil {
		return err
	}
	for _, p := range pairs {
		if err := doc.Set(p.Value, section, p.Key); err != nil {
			return err
		}
	}
	return nil
}

// IsPlaywrightInstalled reports whether @playwright/test or playwright is
// listed in dependencies or devDependencies. Any read error means false.
func IsPlaywrightInstalled(dir string) bool {
	doc, err := read(filepath.Join(dir, FileName))
	if err != nil {
		return false
	}
	for _, section := range []string{sectionDependencies, sectionDevDependencies} {
		if doc.Truthy(section, PackagePlaywrightTest) || doc.Truthy(section, PackagePlaywright) {
			return true
		}
	}
	return false
}

// Name returns the manifest's "name" field, if any.
func Name(dir string) (string, bool) {
	doc, err := read(filepath.Join(dir, FileName))
	if err != nil {
		return "", false
	}
	name := doc.Get("name")
	if name.Type != gjson.String || name.Str == "" {
		return "", false
	}
	return name.Str, true
}
