// Package selector discovers candidate CSS selectors in a project's source tree.
//
// Four heuristics run over the raw text of every source file under <root>/src.
// Each heuristic has a fixed priority (its Kind); when the same selector value
// is found more than once, the first sighting in priority order wins and later
// sightings are dropped. Matching is textual only: nothing is parsed.
package selector

import "fmt"

// Kind ranks the heuristic that produced a candidate. Lower is preferred.
type Kind int

const (
	// KindInjectedMarker is a dataset property containing "injected",
	// e.g. el.dataset.injectedPromo = 'true'.
	KindInjectedMarker Kind = iota + 1
	// KindExportedConstant is an exported *SELECTOR* string constant.
	KindExportedConstant
	// KindSelectorsBlock is a selector-like string inside a selectors: { } block.
	KindSelectorsBlock
	// KindQuerySelector is the literal argument of document.querySelector.
	KindQuerySelector
)

// String returns the short label shown next to a candidate in prompts.
func (k Kind) String() string {
	switch k {
	case KindInjectedMarker:
		return "injected marker"
	case KindExportedConstant:
		return "config export"
	case KindSelectorsBlock:
		return "selectors obj"
	case KindQuerySelector:
		return "querySelector"
	default:
		return fmt.Sprintf("type %d", int(k))
	}
}

// Candidate is one discovered selector.
type Candidate struct {
	Value string `json:"value" yaml:"value"`
	Kind  Kind   `json:"kind" yaml:"kind"`
	File  string `json:"file" yaml:"file"`
	Line  int    `json:"line" yaml:"line"`
}
