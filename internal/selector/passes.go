package selector

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"
)

// match is a raw hit from a single pass over a single file.
type match struct {
	value  string
	offset int // byte offset used for the line number
}

// pass extracts raw matches of one heuristic from file content.
type pass struct {
	kind Kind
	// keyword must occur in the content for the pass to have any chance of
	// matching; it drives the prefilter.
	keyword string
	extract func(content []byte) []match
}

var (
	datasetPattern       = regexp.MustCompile(`dataset\.([A-Za-z]+)\s*=`)
	exportedConstPattern = regexp.MustCompile(`export\s+const\s+[A-Z0-9_]*SELECTOR[A-Z0-9_]*\s*=\s*['"]([^'"]+)['"]`)
	selectorsKeyPattern  = regexp.MustCompile(`selectors\s*:\s*\{`)
	selectorValuePattern = regexp.MustCompile(`['"]([.#\[][^'"]{2,})['"]`)
	querySelectorPattern = regexp.MustCompile(`document\.querySelector\s*\(\s*['"]([^'"]+)['"]\s*\)`)
)

// passes in priority order.
var passes = []pass{
	{kind: KindInjectedMarker, keyword: "dataset", extract: extractInjectedMarkers},
	{kind: KindExportedConstant, keyword: "SELECTOR", extract: extractExportedConstants},
	{kind: KindSelectorsBlock, keyword: "selectors", extract: extractSelectorsBlocks},
	{kind: KindQuerySelector, keyword: "querySelector", extract: extractQuerySelectors},
}

func extractInjectedMarkers(content []byte) []match {
	var out []match
	for _, loc := range datasetPattern.FindAllSubmatchIndex(content, -1) {
		prop := string(content[loc[2]:loc[3]])
		if !strings.Contains(strings.ToLower(prop), "injected") {
			continue
		}
		out = append(out, match{value: datasetPropToSelector(prop), offset: loc[0]})
	}
	return out
}

func extractExportedConstants(content []byte) []match {
	return literalMatches(exportedConstPattern, content)
}

func extractQuerySelectors(content []byte) []match {
	return literalMatches(querySelectorPattern, content)
}

// literalMatches returns capture group 1 of every match, located at the start
// of the whole match.
func literalMatches(re *regexp.Regexp, content []byte) []match {
	var out []match
	for _, loc := range re.FindAllSubmatchIndex(content, -1) {
		out = append(out, match{value: string(content[loc[2]:loc[3]]), offset: loc[0]})
	}
	return out
}

// extractSelectorsBlocks finds every selectors: { ... } block and returns the
// selector-looking string literals inside it. The block extends to the
// matching closing brace, so nested objects are included. When the braces
// cannot be balanced (regex literals, unterminated strings) the block ends at
// the first closing brace and scanning resumes just inside it.
func extractSelectorsBlocks(content []byte) []match {
	var out []match
	pos := 0
	for pos < len(content) {
		loc := selectorsKeyPattern.FindIndex(content[pos:])
		if loc == nil {
			break
		}
		open := pos + loc[1] - 1
		next := open + 1
		end := matchingBrace(content, open)
		if end < 0 {
			first := bytes.IndexByte(content[open+1:], '}')
			if first < 0 {
				break
			}
			end = open + 1 + first
		} else {
			next = end + 1
		}
		body := content[open+1 : end]
		for _, vloc := range selectorValuePattern.FindAllSubmatchIndex(body, -1) {
			out = append(out, match{
				value:  string(body[vloc[2]:vloc[3]]),
				offset: open + 1 + vloc[2],
			})
		}
		pos = next
	}
	return out
}

// matchingBrace returns the index of the brace closing the one at open, or -1.
// Braces inside string literals and comments are ignored.
func matchingBrace(content []byte, open int) int {
	depth := 0
	for i := open; i < len(content); i++ {
		switch c := content[i]; c {
		case '\'', '"', '`':
			i = skipString(content, i)
		case '/':
			if i+1 < len(content) && content[i+1] == '/' {
				if nl := bytes.IndexByte(content[i:], '\n'); nl >= 0 {
					i += nl
				} else {
					return -1
				}
			} else if i+1 < len(content) && content[i+1] == '*' {
				if cl := bytes.Index(content[i+2:], []byte("*/")); cl >= 0 {
					i += cl + 3
				} else {
					return -1
				}
			}
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// skipString returns the index of the quote closing the literal opened at i.
// An unterminated literal runs to the end of the content.
func skipString(content []byte, i int) int {
	quote := content[i]
	for j := i + 1; j < len(content); j++ {
		switch content[j] {
		case '\\':
			j++
		case quote:
			return j
		case '\n':
			if quote != '`' {
				return j
			}
		}
	}
	return len(content)
}

// datasetPropToSelector converts a camelCase dataset property to the data
// attribute selector it produces: injectedPromo -> [data-injected-promo].
func datasetPropToSelector(prop string) string {
	var b strings.Builder
	b.WriteString("[data-")
	for _, r := range prop {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	b.WriteByte(']')
	return b.String()
}

// lineAt returns the 1-based line number of offset in content.
func lineAt(content []byte, offset int) int {
	if offset > len(content) {
		offset = len(content)
	}
	return bytes.Count(content[:offset], []byte{'\n'}) + 1
}
