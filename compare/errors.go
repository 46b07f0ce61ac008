/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package compare

import "errors"

// Sentinel errors for directory loading.
var (
	// ErrNoCSSFiles indicates a directory tree holds no .css files.
	ErrNoCSSFiles = errors.New("no CSS files found in")

	// ErrDirectoryNotFound indicates a compared directory does not exist.
	ErrDirectoryNotFound = errors.New("directory not found")
)
