/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package compare

import (
	"bytes"
	"slices"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Recognized top-level blocks.
const (
	SelectorThemeInline = "@theme inline"
	SelectorTheme       = "@theme"
	SelectorRoot        = ":root"
	SelectorDark        = `[data-theme="dark"]`
)

var recognizedSelectors = []string{SelectorThemeInline, SelectorTheme, SelectorRoot, SelectorDark}

// SelectorRow counts the distinct files on each side declaring a selector.
type SelectorRow struct {
	Selector string
	Build    int
	External int
}

// TopLevelSelectors returns the recognized selectors opening a top-level
// block in css, in source order. Grouped selectors are split.
func TopLevelSelectors(cssText string) []string {
	p := css.NewParser(parse.NewInput(bytes.NewReader([]byte(cssText))), false)

	var found []string
	depth := 0
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			return found
		case css.BeginAtRuleGrammar:
			if depth == 0 {
				found = appendRecognized(found, atRuleSelector(data, p.Values()))
			}
			depth++
		case css.BeginRulesetGrammar:
			if depth == 0 {
				for sel := range strings.SplitSeq(joinTokens(data, p.Values()), ",") {
					found = appendRecognized(found, sel)
				}
			}
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			if depth > 0 {
				depth--
			}
		}
	}
}

func atRuleSelector(name []byte, values []css.Token) string {
	prelude := strings.TrimSpace(joinTokens(nil, values))
	if prelude == "" {
		return string(name)
	}
	return string(name) + " " + prelude
}

func joinTokens(data []byte, values []css.Token) string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}
	return sb.String()
}

func appendRecognized(found []string, selector string) []string {
	selector = strings.Join(strings.Fields(selector), " ")
	if slices.Contains(recognizedSelectors, selector) {
		return append(found, selector)
	}
	return found
}

// structuralRows counts, per recognized selector, the files on each side
// declaring it. Rows are sorted by selector.
func structuralRows(build, external []File) []SelectorRow {
	counts := make(map[string]*SelectorRow)
	tally := func(files []File, bump func(*SelectorRow)) {
		for _, f := range files {
			seen := make(map[string]bool)
			for _, sel := range TopLevelSelectors(f.Content) {
				if seen[sel] {
					continue
				}
				seen[sel] = true
				row, ok := counts[sel]
				if !ok {
					row = &SelectorRow{Selector: sel}
					counts[sel] = row
				}
				bump(row)
			}
		}
	}
	tally(build, func(r *SelectorRow) { r.Build++ })
	tally(external, func(r *SelectorRow) { r.External++ })

	rows := make([]SelectorRow, 0, len(counts))
	for _, row := range counts {
		rows = append(rows, *row)
	}
	slices.SortFunc(rows, func(a, b SelectorRow) int {
		return strings.Compare(a.Selector, b.Selector)
	})
	return rows
}
