package ui

import (
	"fmt"
	"io"
	"path/filepath"

	"expgen/internal/market"
	"expgen/internal/pagepath"
	"expgen/internal/scaffold"
	"expgen/internal/selector"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	return t
}

// RenderMarkets prints every market group with its locale codes.
func RenderMarkets(w io.Writer, groups []market.Group) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Group", "Name", "Scope", "Locales", "Codes"})
	for _, g := range groups {
		scope := "single"
		if g.IsMulti() {
			scope = "multi"
		}
		t.AppendRow(table.Row{g.Code, g.Name, scope, len(g.Countries), market.FormatCodes(g.Countries)})
	}
	t.AppendFooter(table.Row{"Total", "", "", len(groups), ""})
	t.Render()
}

// RenderResolution prints the locales an input resolved to.
func RenderResolution(w io.Writer, res market.Resolution) {
	t := newTable(w)
	t.SetTitle("Market group: %s", res.MarketGroup)
	t.AppendHeader(table.Row{"Code", "URL Path", "Name"})
	for _, l := range res.Markets {
		t.AppendRow(table.Row{l.Code, "/" + l.URLPath + "/", l.Name})
	}
	t.Render()
}

// RenderCandidates prints scanned selector candidates in scan order.
func RenderCandidates(w io.Writer, root string, candidates []selector.Candidate) {
	t := newTable(w)
	t.AppendHeader(table.Row{"#", "Selector", "Kind", "Location"})
	for i, c := range candidates {
		loc := c.File
		if rel, err := filepath.Rel(root, c.File); err == nil {
			loc = filepath.ToSlash(rel)
		}
		t.AppendRow(table.Row{i + 1, c.Value, c.Kind.String(), fmt.Sprintf("%s:%d", loc, c.Line)})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d candidates", len(candidates)), "", ""})
	t.Render()
}

// RenderPages prints page path entries, optionally filtered to one type.
func RenderPages(w io.Writer, entries []pagepath.Entry, only pagepath.Type) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Type", "Key", "Path", "Title"})
	n := 0
	for _, e := range entries {
		if only != "" && e.Type != only {
			continue
		}
		t.AppendRow(table.Row{e.Type, e.Value, e.Path, e.Title})
		n++
	}
	t.AppendFooter(table.Row{"Total", n, "", ""})
	t.Render()
}

// RenderRecord prints the record of the last generation run.
func RenderRecord(w io.Writer, rec scaffold.Record) {
	sel := rec.Selector
	if sel == "" {
		sel = "(placeholder)"
	}

	t := newTable(w)
	t.SetTitle("Experiment: %s", rec.Experiment)
	t.AppendRows([]table.Row{
		{"Run ID", rec.RunID},
		{"Generated", rec.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
		{"Base URL", rec.BaseURL},
		{"Market group", rec.MarketGroup},
		{"Markets", market.FormatCodes(rec.Markets)},
		{"Selector", sel},
		{"Page paths", len(rec.PagePaths)},
		{"Files", len(rec.Files)},
	})
	t.Render()
}
