/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package compare

import (
	"fmt"
	"regexp"
	"strings"

	"bennypowers.dev/stratum/normalize"
	"bennypowers.dev/stratum/parser/common"
	"bennypowers.dev/stratum/token"
)

var (
	darkPattern  = regexp.MustCompile(`(?i)dark`)
	lightPattern = regexp.MustCompile(`(?i)light`)
)

// NoDarkFileNote is reported when the external side has no dark-mode file.
const NoDarkFileNote = "No dark-mode CSS file found in %s export."

// DarkDuplicate is a token whose dark value normalizes to its light value.
type DarkDuplicate struct {
	Token      string
	LightValue string
	DarkValue  string
	LightFile  string
	DarkFile   string
}

// DarkAudit is the result of the dark-mode duplicate audit.
type DarkAudit struct {
	Rows []DarkDuplicate

	// Note replaces the table when no dark file exists.
	Note string

	// Skipped lists dark files without a light counterpart.
	Skipped []string
}

// auditDarkMode pairs every dark-named file with a light counterpart and
// flags tokens whose normalized values match across the pair.
func auditDarkMode(files []File, label string) DarkAudit {
	var dark []File
	for _, f := range files {
		if darkPattern.MatchString(f.Rel) {
			dark = append(dark, f)
		}
	}
	if len(dark) == 0 {
		return DarkAudit{Note: fmt.Sprintf(NoDarkFileNote, label)}
	}

	var audit DarkAudit
	for _, d := range dark {
		light, ok := lightCounterpart(d, files)
		if !ok {
			audit.Skipped = append(audit.Skipped, d.Rel)
			continue
		}
		darkTokens, lightTokens := fileTokens(d), fileTokens(light)
		for _, decl := range darkTokens.Names() {
			darkValue, _ := darkTokens.Value(decl)
			lightValue, ok := lightTokens.Value(decl)
			if !ok {
				continue
			}
			if normalize.Normalize(lightValue) == normalize.Normalize(darkValue) {
				audit.Rows = append(audit.Rows, DarkDuplicate{
					Token:      decl,
					LightValue: lightValue,
					DarkValue:  darkValue,
					LightFile:  light.Rel,
					DarkFile:   d.Rel,
				})
			}
		}
	}
	return audit
}

// lightCounterpart looks for the file named like dark with "dark" replaced
// by "light", then any light-named file, then any file not named dark.
// The dark file never pairs with itself.
func lightCounterpart(dark File, files []File) (File, bool) {
	want := strings.Replace(strings.ToLower(dark.Rel), "dark", "light", 1)
	matchers := []func(File) bool{
		func(f File) bool { return strings.ToLower(f.Rel) == want },
		func(f File) bool { return lightPattern.MatchString(f.Rel) },
		func(f File) bool { return !darkPattern.MatchString(f.Rel) },
	}
	for _, match := range matchers {
		for _, f := range files {
			if f.Path != dark.Path && match(f) {
				return f, true
			}
		}
	}
	return File{}, false
}

func fileTokens(f File) *token.Map {
	m := token.NewMap()
	for _, d := range common.ParseCustomProperties(f.Content) {
		m.Add(&token.Token{Name: d.Name, Value: d.Value, SourceFile: f.Path})
	}
	return m
}
