/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package compare reconciles two directories of compiled CSS custom
// properties that follow different naming conventions.
package compare

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"go.uber.org/zap"

	stratumfs "bennypowers.dev/stratum/fs"
	"bennypowers.dev/stratum/normalize"
	"bennypowers.dev/stratum/token"
)

// DefaultExternalLabel names the external pipeline in reports.
const DefaultExternalLabel = "Supernova"

// Name mapping relations.
const (
	RelationEquivalent              = "equivalent"
	RelationEquivalentDifferentForm = "equivalent (different form)"
	RelationConcept                 = "concept"
)

// Options configures a comparison.
type Options struct {
	BuildDir    string
	ExternalDir string

	// ExternalLabel names the external side in the report.
	ExternalLabel string

	// Exclude holds doublestar globs matched against paths relative to
	// each directory root.
	Exclude []string
}

// NameMapping pairs a build token with an external token of the same concept.
type NameMapping struct {
	Concept  string
	Build    string
	External string
	Relation string
}

// ValueDifference is a same-name token whose values are not equivalent.
type ValueDifference struct {
	Name          string
	BuildValue    string
	ExternalValue string
}

// Result holds every finding of a comparison.
type Result struct {
	Options Options

	Build    *Directory
	External *Directory

	// Matched counts same-name equivalent tokens, including those in
	// MatchedDifferentForm.
	Matched              int
	MatchedDifferentForm int

	NameMappings     []NameMapping
	ValueDifferences []ValueDifference
	OnlyBuild        []string
	OnlyExternal     []string
	Structural       []SelectorRow
	DarkAudit        DarkAudit
}

// Comparator compares directories read from a filesystem.
type Comparator struct {
	fs  stratumfs.FileSystem
	log *zap.Logger
}

// NewComparator creates a comparator.
func NewComparator(filesystem stratumfs.FileSystem, log *zap.Logger) *Comparator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Comparator{fs: filesystem, log: log}
}

// Compare loads both directories and runs every pass. Either directory
// being missing or holding no CSS files is an error.
func (c *Comparator) Compare(ctx context.Context, opts Options) (*Result, error) {
	if opts.ExternalLabel == "" {
		opts.ExternalLabel = DefaultExternalLabel
	}

	build, err := LoadDirectory(ctx, c.fs, opts.BuildDir, opts.Exclude, c.log)
	if err != nil {
		return nil, err
	}
	external, err := LoadDirectory(ctx, c.fs, opts.ExternalDir, opts.Exclude, c.log)
	if err != nil {
		return nil, err
	}

	result := &Result{Options: opts, Build: build, External: external}
	result.matchValues()
	result.NameMappings = nameMappings(build.Tokens, external.Tokens)
	result.OnlyBuild = missingFrom(build.Tokens, external.Tokens)
	result.OnlyExternal = missingFrom(external.Tokens, build.Tokens)
	result.Structural = structuralRows(build.Files, external.Files)
	result.DarkAudit = auditDarkMode(external.Files, opts.ExternalLabel)

	c.log.Info("compared",
		zap.Int("matched", result.Matched),
		zap.Int("valueDifferences", len(result.ValueDifferences)),
		zap.Int("nameMappings", len(result.NameMappings)),
		zap.Int("darkDuplicates", len(result.DarkAudit.Rows)))
	for _, skipped := range result.DarkAudit.Skipped {
		c.log.Warn("no light counterpart for dark file", zap.String("file", skipped))
	}
	return result, nil
}

func (r *Result) matchValues() {
	buildTokens, externalTokens := r.Build.Tokens, r.External.Tokens
	for _, name := range buildTokens.Names() {
		externalValue, ok := externalTokens.Value(name)
		if !ok {
			continue
		}
		buildValue, _ := buildTokens.Value(name)
		eq := normalize.Equivalent(buildValue, externalValue, buildTokens, externalTokens)
		if eq.Equivalent {
			r.Matched++
			if eq.DifferentForm {
				r.MatchedDifferentForm++
			}
			continue
		}
		r.ValueDifferences = append(r.ValueDifferences, ValueDifference{
			Name:          name,
			BuildValue:    buildValue,
			ExternalValue: externalValue,
		})
	}
	slices.SortFunc(r.ValueDifferences, func(a, b ValueDifference) int {
		return strings.Compare(a.Name, b.Name)
	})
}

// nameMappings pairs each build name lacking a same-name external token
// with an external token sharing its concept key, preferring one whose
// value is equivalent.
func nameMappings(build, external *token.Map) []NameMapping {
	externalByConcept := make(map[string][]string)
	for _, name := range external.Names() {
		key := normalize.ConceptKey(name)
		externalByConcept[key] = append(externalByConcept[key], name)
	}

	var rows []NameMapping
	for _, name := range build.Names() {
		if external.Has(name) {
			continue
		}
		key := normalize.ConceptKey(name)
		candidates := externalByConcept[key]
		if len(candidates) == 0 {
			continue
		}
		buildValue, _ := build.Value(name)
		row := NameMapping{Concept: key, Build: name, External: candidates[0], Relation: RelationConcept}
		for _, candidate := range candidates {
			externalValue, _ := external.Value(candidate)
			eq := normalize.Equivalent(buildValue, externalValue, build, external)
			if !eq.Equivalent {
				continue
			}
			row.External = candidate
			row.Relation = RelationEquivalent
			if eq.DifferentForm {
				row.Relation = RelationEquivalentDifferentForm
			}
			break
		}
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b NameMapping) int {
		return cmp.Or(strings.Compare(a.Concept, b.Concept), strings.Compare(a.Build, b.Build))
	})
	return rows
}

func missingFrom(from, other *token.Map) []string {
	var names []string
	for _, name := range from.SortedNames() {
		if !other.Has(name) {
			names = append(names, name)
		}
	}
	return names
}
