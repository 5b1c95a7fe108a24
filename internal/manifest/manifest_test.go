package manifest

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))
	return dir
}

func readManifest(t *testing.T, dir string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte(`[1,2]`))
	assert.True(t, errors.Is(err, ErrNotObject))

	_, err = Parse([]byte(`{"a":`))
	assert.Error(t, err)

	_, err = Parse(nil)
	assert.Error(t, err)
}

func TestDocument_Bytes(t *testing.T) {
	doc, err := Parse([]byte(`{"name":"x","version":"1.0.0","private":true,"z":{"b":1,"a":2}}`))
	require.NoError(t, err)

	assert.Equal(t, `{
  "name": "x",
  "version": "1.0.0",
  "private": true,
  "z": {
    "b": 1,
    "a": 2
  }
}
`, string(doc.Bytes()))
}

func TestDocument_SetEscapesPackageNames(t *testing.T) {
	doc, err := Parse([]byte(`{"devDependencies":{"eslint":"^9.0.0"},"name":"n"}`))
	require.NoError(t, err)

	require.NoError(t, doc.Set("^1.49.0", "devDependencies", "@playwright/test"))
	require.NoError(t, doc.Set("eslint . && prettier -c .", "scripts", "lint"))

	assert.Equal(t, "^1.49.0", doc.Get("devDependencies", "@playwright/test").Str)
	assert.True(t, doc.Truthy("scripts", "lint"))
	assert.False(t, doc.Get("devDependencies", "@playwright").Exists())

	var m map[string]any
	require.NoError(t, json.Unmarshal(doc.Bytes(), &m))
	devDeps := m["devDependencies"].(map[string]any)
	assert.Equal(t, "^1.49.0", devDeps["@playwright/test"])
	assert.Equal(t, "^9.0.0", devDeps["eslint"])
}

func TestDocument_EnsureObject(t *testing.T) {
	doc, err := Parse([]byte(`{"scripts":null,"name":"n"}`))
	require.NoError(t, err)

	require.NoError(t, doc.EnsureObject("scripts"))
	assert.True(t, doc.Get("scripts").IsObject())
	require.NoError(t, doc.EnsureObject("devDependencies"))
	assert.True(t, doc.Get("devDependencies").IsObject())

	assert.True(t, errors.Is(doc.EnsureObject("name"), ErrNotObject))
}

func TestDocument_Truthy(t *testing.T) {
	doc, err := Parse([]byte(`{"a":"x","b":"","c":null,"d":false,"e":0,"f":{}}`))
	require.NoError(t, err)
	assert.True(t, doc.Truthy("a"))
	assert.False(t, doc.Truthy("b"))
	assert.False(t, doc.Truthy("c"))
	assert.False(t, doc.Truthy("d"))
	assert.False(t, doc.Truthy("e"))
	assert.True(t, doc.Truthy("f"))
	assert.False(t, doc.Truthy("missing"))
}

func TestUpdate_AddsDependencies(t *testing.T) {
	dir := writeManifest(t, `{"name":"test","version":"1.0.0"}`)

	res, err := Update(dir, "^1.49.0")
	require.NoError(t, err)
	assert.True(t, res.Updated)
	assert.Contains(t, res.Changes, "Added Playwright dependencies to devDependencies")

	pkg := readManifest(t, dir)
	devDeps := pkg["devDependencies"].(map[string]any)
	assert.Equal(t, "^1.49.0", devDeps["@playwright/test"])
	assert.Equal(t, "^1.49.0", devDeps["playwright"])
}

func TestUpdate_AddsScripts(t *testing.T) {
	dir := writeManifest(t, `{"name":"test","version":"1.0.0"}`)

	res, err := Update(dir, "^1.49.0")
	require.NoError(t, err)
	assert.Contains(t, res.Changes, `Added "test:e2e" script`)
	assert.Contains(t, res.Changes, `Added "test:e2e:experiment" script`)

	scripts := readManifest(t, dir)["scripts"].(map[string]any)
	assert.Equal(t, "playwright test", scripts["test:e2e"])
	assert.Contains(t, scripts["test:e2e:experiment"], "experiment-test.spec.js")
}

func TestUpdate_KeepsExistingPlaywrightVersion(t *testing.T) {
	dir := writeManifest(t, `{"name":"test","devDependencies":{"@playwright/test":"^1.50.0"}}`)

	res, err := Update(dir, "^1.49.0")
	require.NoError(t, err)
	assert.True(t, res.Updated)
	assert.NotContains(t, res.Changes, "Added Playwright dependencies to devDependencies")

	devDeps := readManifest(t, dir)["devDependencies"].(map[string]any)
	assert.Equal(t, "^1.50.0", devDeps["@playwright/test"])
	assert.NotContains(t, devDeps, "playwright")
}

func TestUpdate_NoChanges(t *testing.T) {
	content := `{
	"name": "test",
	"devDependencies": {"@playwright/test": "^1.49.0"},
	"scripts": {
		"test:e2e": "playwright test --headed",
		"test:e2e:experiment": "custom"
	}
}`
	dir := writeManifest(t, content)

	res, err := Update(dir, "^1.49.0")
	require.NoError(t, err)
	assert.False(t, res.Updated)
	assert.Empty(t, res.Changes)

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Equal(t, content, string(data), "file must not be rewritten")
}

func TestUpdate_PreservesFieldsAndOrder(t *testing.T) {
	dir := writeManifest(t, `{"name":"my-project","version":"2.0.0","author":"Test Author","license":"MIT","scripts":{"build":"gulp build","dev":"gulp"}}`)

	_, err := Update(dir, "^1.49.0")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	doc := gjson.ParseBytes(data)

	var keys []string
	doc.ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	assert.Equal(t, []string{"name", "version", "author", "license", "scripts", "devDependencies"}, keys)

	var scripts []string
	doc.Get("scripts").ForEach(func(k, _ gjson.Result) bool {
		scripts = append(scripts, k.String())
		return true
	})
	assert.Equal(t, []string{"build", "dev", "test:e2e", "test:e2e:experiment"}, scripts)
	assert.Equal(t, byte('\n'), data[len(data)-1])
	assert.Contains(t, string(data), "\n  \"name\": \"my-project\",\n")
}

func TestUpdate_Errors(t *testing.T) {
	_, err := Update(t.TempDir(), "^1.49.0")
	assert.Error(t, err)

	dir := writeManifest(t, `{"scripts":"oops"}`)
	_, err = Update(dir, "^1.49.0")
	assert.True(t, errors.Is(err, ErrNotObject))
}

func TestUpdate_NullSections(t *testing.T) {
	dir := writeManifest(t, `{"name":"test","scripts":null,"devDependencies":null}`)

	res, err := Update(dir, "^1.49.0")
	require.NoError(t, err)
	assert.True(t, res.Updated)

	pkg := readManifest(t, dir)
	assert.Equal(t, "playwright test", pkg["scripts"].(map[string]any)["test:e2e"])
	assert.Equal(t, "^1.49.0", pkg["devDependencies"].(map[string]any)["@playwright/test"])
}

func TestIsPlaywrightInstalled(t *testing.T) {
	assert.True(t, IsPlaywrightInstalled(writeManifest(t, `{"devDependencies":{"@playwright/test":"^1.49.0"}}`)))
	assert.True(t, IsPlaywrightInstalled(writeManifest(t, `{"dependencies":{"playwright":"^1.49.0"}}`)))
	assert.False(t, IsPlaywrightInstalled(writeManifest(t, `{"name":"test"}`)))
	assert.False(t, IsPlaywrightInstalled(writeManifest(t, `not json`)))
	assert.False(t, IsPlaywrightInstalled(t.TempDir()))
}

func TestName(t *testing.T) {
	name, ok := Name(writeManifest(t, `{"name":"@samsung/promo-banner"}`))
	assert.True(t, ok)
	assert.Equal(t, "@samsung/promo-banner", name)

	_, ok = Name(writeManifest(t, `{"name":""}`))
	assert.False(t, ok)
}
