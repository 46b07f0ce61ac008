/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package compare

import (
	"fmt"
	"strings"
)

// Markdown renders the comparison report.
func (r *Result) Markdown() string {
	label := r.Options.ExternalLabel
	if label == "" {
		label = DefaultExternalLabel
	}

	var lines []string
	add := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}
	blank := func() { lines = append(lines, "") }

	add("# Pipeline Comparison Report")
	blank()
	add("- Build tokens directory: `%s`", r.Build.Root)
	add("- %s directory: `%s`", label, r.External.Root)
	add("- Build tokens parsed: %d", r.Build.Tokens.Len())
	add("- %s tokens parsed: %d", label, r.External.Tokens.Len())
	blank()

	add("## 1. Matched")
	blank()
	add("- Equivalent same-name tokens: **%d**", r.Matched)
	add("- Equivalent same-name tokens with different value form (e.g. var vs literal): **%d**", r.MatchedDifferentForm)
	blank()

	add("## 2. Name differences")
	blank()
	if len(r.NameMappings) == 0 {
		add("No concept-level name mappings detected.")
	} else {
		add("| Concept | Build token | %s token | Relation |", label)
		add("|---|---|---|---|")
		for _, row := range r.NameMappings {
			add("| `%s` | `%s` | `%s` | %s |", row.Concept, row.Build, row.External, row.Relation)
		}
	}
	blank()

	add("## 3. Value differences")
	blank()
	if len(r.ValueDifferences) == 0 {
		add("No same-name value differences.")
	} else {
		add("| Token | Build value | %s value |", label)
		add("|---|---|---|")
		for _, row := range r.ValueDifferences {
			add("| `%s` | `%s` | `%s` |", row.Name, row.BuildValue, row.ExternalValue)
		}
	}
	blank()

	add("## 4. Only in build-tokens")
	blank()
	lines = append(lines, nameList(r.OnlyBuild)...)
	blank()

	add("## 5. Only in %s", label)
	blank()
	lines = append(lines, nameList(r.OnlyExternal)...)
	blank()

	add("## 6. Structural differences")
	blank()
	if len(r.Structural) == 0 {
		add("No selector differences detected.")
	} else {
		add("| Selector | Build occurrences | %s occurrences |", label)
		add("|---|---|---|")
		for _, row := range r.Structural {
			add("| `%s` | %d | %d |", row.Selector, row.Build, row.External)
		}
	}
	blank()

	add("## 7. Dark mode audit")
	blank()
	if r.DarkAudit.Note != "" {
		add("%s", r.DarkAudit.Note)
	} else {
		add("Tokens with identical light and dark values in %s: **%d**", label, len(r.DarkAudit.Rows))
		if len(r.DarkAudit.Rows) > 0 {
			blank()
			add("| Token | Light value | Dark value |")
			add("|---|---|---|")
			for _, row := range r.DarkAudit.Rows {
				add("| `%s` | `%s` | `%s` |", row.Token, row.LightValue, row.DarkValue)
			}
		}
		for _, skipped := range r.DarkAudit.Skipped {
			blank()
			add("Skipped `%s`: no light counterpart found.", skipped)
		}
	}
	blank()

	return strings.Join(lines, "\n")
}

func nameList(names []string) []string {
	lines := []string{fmt.Sprintf("Count: **%d**", len(names))}
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("- `%s`", name))
	}
	return lines
}
