package scaffold

import (
	"regexp"
	"strings"
)

// Template variable names.
const (
	VarExperimentName      = "EXPERIMENT_NAME"
	VarExperimentNameKebab = "EXPERIMENT_NAME_KEBAB"
	VarBaseURL             = "BASE_URL"
	VarMarket              = "MARKET"
	VarMarketsJSON         = "MARKETS_JSON"
	VarComponentSelector   = "COMPONENT_SELECTOR"
	VarPagePathsJS         = "PAGE_PATHS_JS"
)

var placeholderRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// ReplaceVars substitutes every {{KEY}} in content with vars[KEY].
// Placeholders without a value are left as they are. Substituted values are
// not expanded again.
func ReplaceVars(content string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(content, func(m string) string {
		if v, ok := vars[m[2:len(m)-2]]; ok {
			return v
		}
		return m
	})
}

var (
	kebabSpaceRe   = regexp.MustCompile(`[\s\x{000B}\p{Z}\x{FEFF}_]+`)
	kebabInvalidRe = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
	kebabDashesRe  = regexp.MustCompile(`-{2,}`)
)

// ToKebabCase lowercases s, turns whitespace and underscore runs into a
// single hyphen, drops everything that is not a letter, digit or hyphen, and
// trims hyphens from both ends.
func ToKebabCase(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = kebabSpaceRe.ReplaceAllString(s, "-")
	s = kebabInvalidRe.ReplaceAllString(s, "")
	s = kebabDashesRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// PlaceholderSelector is the component selector used when none was picked.
func PlaceholderSelector(kebab string) string {
	return `[data-experiment="` + kebab + `"]`
}

// jsString escapes s for a single-quoted JavaScript string literal.
func jsString(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`).Replace(s)
}
