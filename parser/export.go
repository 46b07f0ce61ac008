/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/tidwall/jsonc"
	"go.uber.org/zap"

	"bennypowers.dev/stratum/fs"
	"bennypowers.dev/stratum/schema"
)

// ExportParser parses design-tool JSON exports.
type ExportParser struct {
	log *zap.Logger
}

var _ Parser = (*ExportParser)(nil)

// NewExportParser creates a new export parser.
func NewExportParser(log *zap.Logger) *ExportParser {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExportParser{log: log.Named("parser")}
}

// DecodeEntries decodes export data into its collections, in document
// order. Comments and trailing commas are tolerated.
func DecodeEntries(data []byte) ([]schema.Entry, error) {
	var raw []map[string]any
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", schema.ErrInvalidExport, err)
	}

	entries := make([]schema.Entry, 0, len(raw))
	for i, obj := range raw {
		names := make([]string, 0, len(obj))
		for name := range obj {
			names = append(names, name)
		}
		slices.Sort(names)
		for _, name := range names {
			body, ok := obj[name].(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: entry %d: collection %q is not an object", schema.ErrInvalidExport, i, name)
			}
			entries = append(entries, schema.Entry{Name: name, Body: body})
		}
	}
	return entries, nil
}

// EncodeEntries writes collections back into the export format.
func EncodeEntries(entries []schema.Entry) ([]byte, error) {
	raw := make([]map[string]any, len(entries))
	for i, e := range entries {
		raw[i] = map[string]any{e.Name: e.Body}
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return append(data, '\n'), nil
}

// Parse parses export data and returns the token graph.
func (p *ExportParser) Parse(data []byte, opts Options) (*Graph, error) {
	entries, err := DecodeEntries(data)
	if err != nil {
		return nil, err
	}
	return p.ParseEntries(entries, opts)
}

// ParseEntries normalizes decoded collections and returns the token graph.
func (p *ExportParser) ParseEntries(entries []schema.Entry, opts Options) (*Graph, error) {
	export, err := schema.Normalize(entries)
	if err != nil {
		return nil, err
	}
	p.log.Debug("normalized export",
		zap.Stringer("shape", export.Shape),
		zap.Int("collections", len(export.Collections)))

	w := newWalker(p.log, entries, opts)
	graph := newGraph(export.Shape)
	for _, c := range export.Collections {
		if err := w.collection(graph, c); err != nil {
			return nil, err
		}
	}
	return graph, nil
}

// ParseFile parses an export file and returns the token graph.
func (p *ExportParser) ParseFile(filesystem fs.FileSystem, path string, opts Options) (*Graph, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	graph, err := p.Parse(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse file %s: %w", path, err)
	}
	return graph, nil
}
