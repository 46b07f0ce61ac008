/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package verify checks emitted token files for the properties every
// build must hold.
package verify

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"go.uber.org/multierr"

	"bennypowers.dev/stratum/emit"
	"bennypowers.dev/stratum/parser/common"
	"bennypowers.dev/stratum/token"
)

// ErrCheckFailed wraps the message of every failing check.
var ErrCheckFailed = errors.New("check failed")

// Check names.
const (
	CheckRoundTrip  = "round-trip"
	CheckReferences = "references"
	CheckDarkParity = "dark-parity"
	CheckIdempotent = "idempotent"
	CheckFallback   = "fallback"
	CheckGray       = "gray"
	CheckNamespace  = "namespace"
	CheckTypography = "typography"
)

var (
	rootBlockPattern = regexp.MustCompile(`(?s):root\s*\{(.*?)\}`)
	darkBlockPattern = regexp.MustCompile(`(?s)\[data-theme="dark"\]\s*\{(.*?)\}`)
	grayPattern      = regexp.MustCompile(`\bgray\b`)
)

// Result is the outcome of one check.
type Result struct {
	Name    string
	Pass    bool
	Message string
}

// String renders the result as a labelled report line.
func (r Result) String() string {
	if r.Pass {
		return "[PASS] " + r.Message
	}
	return "[FAIL] " + r.Message
}

// Outputs maps emitted file names to their contents.
type Outputs map[string]string

// FromOutput converts rendered output.
func FromOutput(out *emit.Output) Outputs {
	return Outputs(out.Strings())
}

func (o Outputs) decls(file string) []common.Declaration {
	return common.ParseCustomProperties(o[file])
}

func (o Outputs) names(file string) map[string]bool {
	m := token.NewMap()
	for _, d := range o.decls(file) {
		m.Add(&token.Token{Name: d.Name, Value: d.Value, SourceFile: file})
	}
	return m.NameSet()
}

func result(name string, pass bool, ok string, failed string, args ...any) Result {
	if pass {
		return Result{Name: name, Pass: true, Message: ok}
	}
	return Result{Name: name, Message: fmt.Sprintf(failed, args...)}
}

// Check runs every check that needs a single build's output.
func Check(out Outputs) []Result {
	return []Result{
		RoundTrip(out),
		References(out),
		DarkParity(out),
		NoGray(out),
		Namespaces(out),
		Typography(out),
	}
}

// RoundTrip parses every primitive color and converts it to OKLCH.
func RoundTrip(out Outputs) Result {
	invalid := 0
	for _, d := range out.decls(emit.PrimitivesFile) {
		if !strings.HasPrefix(d.Name, "--primitive-color-") {
			continue
		}
		c, _, ok := emit.ParseColor(d.Value)
		if !ok {
			invalid++
			continue
		}
		l, ch, _ := c.OkLch()
		if math.IsNaN(l) || math.IsInf(l, 0) || math.IsNaN(ch) || math.IsInf(ch, 0) {
			invalid++
		}
	}
	return result(CheckRoundTrip, invalid == 0,
		"Round-trip colour parse succeeded for all primitive colours",
		"Round-trip colour parse failed for %d primitive colours", invalid)
}

// References checks that aliases point into primitives and semantic
// tokens point into aliases.
func References(out Outputs) Result {
	broken := danglingRefs(out, emit.AliasesFile, emit.PrimitivesFile, token.TierPrimitive) +
		danglingRefs(out, emit.SemanticFile, emit.AliasesFile, token.TierAlias)
	return result(CheckReferences, broken == 0,
		"Reference chain integrity passed (aliases -> primitives, semantic -> aliases)",
		"Reference chain errors: %d", broken)
}

// danglingRefs counts references in from that are not declared in into or
// whose names place them outside tier.
func danglingRefs(out Outputs, from, into string, tier token.Tier) int {
	targets := out.names(into)
	n := 0
	for _, d := range out.decls(from) {
		for _, ref := range token.ExtractVarRefs(d.Value) {
			if !targets[ref] || token.TierOf(ref) != tier {
				n++
			}
		}
	}
	return n
}

// DarkParity checks that every :root name of the inline file is
// overridden in the dark block.
func DarkParity(out Outputs) Result {
	inline := out[emit.SemanticInlineFile]
	root := blockNames(rootBlockPattern, inline)
	dark := blockNames(darkBlockPattern, inline)
	missing := 0
	for name := range root {
		if !dark[name] {
			missing++
		}
	}
	if len(root) == 0 {
		return Result{Name: CheckDarkParity, Message: "Dark mode completeness failed: no tokens in :root"}
	}
	return result(CheckDarkParity, missing == 0,
		"Dark mode completeness passed",
		"Dark mode completeness failed: %d tokens missing in dark mode", missing)
}

func blockNames(pattern *regexp.Regexp, css string) map[string]bool {
	set := make(map[string]bool)
	m := pattern.FindStringSubmatch(css)
	if m == nil {
		return set
	}
	for _, d := range common.ParseCustomProperties(m[1]) {
		set[d.Name] = true
	}
	return set
}

// NoGray checks that the word gray appears in no emitted file.
func NoGray(out Outputs) Result {
	found := false
	for _, file := range emit.Files {
		if grayPattern.MatchString(out[file]) {
			found = true
		}
	}
	return result(CheckGray, !found,
		`Gray leak test passed (no "gray" found)`,
		`Gray leak test failed ("gray" found in output)`)
}

// Namespaces checks that width and container tokens live outside spacing.
func Namespaces(out Outputs) Result {
	invalid := 0
	hasWidth, hasContainer := false, false
	for _, d := range out.decls(emit.SemanticFile) {
		switch {
		case strings.HasPrefix(d.Name, "--spacing-width-"), strings.HasPrefix(d.Name, "--spacing-container-"):
			invalid++
		case strings.HasPrefix(d.Name, "--width-"):
			hasWidth = true
		case strings.HasPrefix(d.Name, "--container-"):
			hasContainer = true
		}
	}
	return result(CheckNamespace, invalid == 0 && hasWidth && hasContainer,
		"Width namespace test passed",
		"Width namespace test failed (%d invalid spacing-width/container tokens)", invalid)
}

// Typography checks that every base text token has its companions.
func Typography(out Outputs) Result {
	names := out.names(emit.SemanticFile)
	missing := 0
	for name := range names {
		if !strings.HasPrefix(name, "--text-") || isCompanion(name) {
			continue
		}
		for _, suffix := range companionSuffixes {
			if !names[name+suffix] {
				missing++
			}
		}
	}
	return result(CheckTypography, missing == 0,
		"Typography composite test passed",
		"Typography composite test failed (%d missing sub-properties)", missing)
}

var companionSuffixes = []string{"--line-height", "--letter-spacing", "--font-weight"}

func isCompanion(name string) bool {
	for _, suffix := range companionSuffixes {
		if strings.Contains(name, suffix) {
			return true
		}
	}
	return false
}

// Idempotent checks that two builds of the same input are byte-identical.
func Idempotent(first, second Outputs) Result {
	identical := true
	for _, file := range emit.Files {
		if first[file] != second[file] {
			identical = false
			break
		}
	}
	return result(CheckIdempotent, identical,
		"Idempotency test passed (byte-identical outputs)",
		"Idempotency test failed (outputs differ between runs)")
}

// Fallback checks that a build from the legacy shape emitted every file.
func Fallback(out Outputs) Result {
	ok := true
	for _, file := range emit.Files {
		if len(out.decls(file)) == 0 {
			ok = false
		}
	}
	return result(CheckFallback, ok,
		"Collection fallback test passed",
		"Collection fallback test failed (empty output)")
}

// Err combines the failing results into one error, or nil.
func Err(results []Result) error {
	var err error
	for _, r := range results {
		if !r.Pass {
			err = multierr.Append(err, fmt.Errorf("%w: %s", ErrCheckFailed, r.Message))
		}
	}
	return err
}
