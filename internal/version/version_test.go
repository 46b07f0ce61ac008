/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"strings"
	"testing"
)

func setVars(t *testing.T, version, commit, tag, dirty string) {
	t.Helper()
	saved := [4]string{Version, GitCommit, GitTag, GitDirty}
	Version, GitCommit, GitTag, GitDirty = version, commit, tag, dirty
	t.Cleanup(func() {
		Version, GitCommit, GitTag, GitDirty = saved[0], saved[1], saved[2], saved[3]
	})
}

func TestGetPrefersLdflagsVersion(t *testing.T) {
	setVars(t, "v1.2.3", "unknown", "unknown", "")
	if got := Get(); got != "v1.2.3" {
		t.Errorf("Get() = %q, want v1.2.3", got)
	}
}

func TestGetFromTag(t *testing.T) {
	setVars(t, "dev", "0123456789abcdef", "v0.4.0", "dirty")
	got := Get()
	// test binaries carry no module version, so the tag is used
	if got != "v0.4.0-0123456-dirty" {
		t.Errorf("Get() = %q, want v0.4.0-0123456-dirty", got)
	}
}

func TestFullIncludesCommit(t *testing.T) {
	setVars(t, "v1.0.0", "abc1234", "unknown", "")
	if got := Full(); !strings.Contains(got, "(commit: abc1234)") {
		t.Errorf("Full() = %q, want commit suffix", got)
	}
}
