/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package schema

import "errors"

// Sentinel errors for export and token graph operations.
var (
	// ErrInvalidExport indicates the export is not a JSON array of collections.
	ErrInvalidExport = errors.New("invalid token export")

	// ErrNoCollections indicates no recognizable collection key was found.
	ErrNoCollections = errors.New("no recognizable collections in token export")

	// ErrUnknownShape indicates an unrecognized shape name.
	ErrUnknownShape = errors.New("unknown export shape")

	// ErrCircularReference indicates a circular reference was detected.
	ErrCircularReference = errors.New("circular reference detected")

	// ErrUnresolvedReference indicates a reference could not be resolved.
	ErrUnresolvedReference = errors.New("unresolved token reference")

	// ErrTierViolation indicates a reference escapes its allowed tier.
	ErrTierViolation = errors.New("reference violates tier discipline")
)
