// Package manifest reads, patches and writes package.json files without
// disturbing key order or fields it does not know about.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// ErrNotObject is returned when a document or a nested field that must be a
// JSON object holds something else.
var ErrNotObject = errors.New("not a JSON object")

// prettyOptions match JSON.stringify(v, null, 2): two-space indent, one
// array element per line, keys in document order.
var prettyOptions = &pretty.Options{Width: 0, Prefix: "", Indent: "  ", SortKeys: false}

// Document is a raw package.json. Edits go through sjson so untouched fields
// keep their position and bytes.
type Document struct {
	data []byte
}

// Parse checks that data holds a single JSON object.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("invalid JSON")
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, ErrNotObject
	}
	return &Document{data: data}, nil
}

// Get returns the value at the given key path.
func (d *Document) Get(path ...string) gjson.Result {
	return gjson.GetBytes(d.data, joinPath(path))
}

// Truthy reports whether the value at path would be truthy in JavaScript.
func (d *Document) Truthy(path ...string) bool {
	return truthy(d.Get(path...))
}

// EnsureObject makes sure key holds an object. A missing or null value becomes
// {}; any other non-object value is ErrNotObject.
func (d *Document) EnsureObject(key string) error {
	r := d.Get(key)
	switch {
	case r.IsObject():
		return nil
	case !r.Exists(), r.Type == gjson.Null:
		return d.setRaw(escapeKey(key), "{}")
	default:
		return fmt.Errorf("%s: %w", key, ErrNotObject)
	}
}

// Set stores a string value at path. New keys are appended after the
// existing ones of their object.
func (d *Document) Set(value string, path ...string) error {
	out, err := sjson.SetBytes(d.data, joinPath(path), value)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", strings.Join(path, "."), err)
	}
	d.data = out
	return nil
}

func (d *Document) setRaw(path, raw string) error {
	out, err := sjson.SetRawBytes(d.data, path, []byte(raw))
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", path, err)
	}
	d.data = out
	return nil
}

// Bytes returns the document formatted with two-space indentation and a
// trailing newline.
func (d *Document) Bytes() []byte {
	out := pretty.PrettyOptions(d.data, prettyOptions)
	if len(out) == 0 || out[len(out)-1] != '\n' {
		out = append(out, '\n')
	}
	return out
}

func read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read package.json: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.String:
		return r.Str != ""
	case gjson.Number:
		return r.Num != 0
	case gjson.True, gjson.JSON:
		return true
	default:
		return false
	}
}

// escapeKey escapes the characters gjson and sjson treat as path syntax, so
// package names such as "@playwright/test" are matched literally.
func escapeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '.', '*', '?', '|', '#', '@', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func joinPath(keys []string) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = escapeKey(k)
	}
	return strings.Join(parts, ".")
}
