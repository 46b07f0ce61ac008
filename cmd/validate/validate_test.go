/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package validate

import (
	"bytes"
	"strings"
	"testing"

	"bennypowers.dev/stratum/parser"
	"bennypowers.dev/stratum/schema"
	"bennypowers.dev/stratum/testutil"
)

var opts = parser.Options{ExcludePalettes: parser.DefaultExcludePalettes}

func TestValidateFiles(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/export", "/test")
	var out, errOut bytes.Buffer

	err := validateFiles(mfs, []string{"/test/current/tokens.json", "/test/legacy/tokens.json"}, opts, schema.Unknown, false, &out, &errOut)
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, errOut.String())
	}
	if !strings.Contains(out.String(), "shape: current") || !strings.Contains(out.String(), "shape: legacy") {
		t.Errorf("expected both shapes reported, got:\n%s", out.String())
	}
	if !strings.HasSuffix(out.String(), "All files valid.\n") {
		t.Errorf("missing summary line:\n%s", out.String())
	}
}

func TestValidateFiles_ReportsEveryViolation(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/export", "/test")
	mfs.AddFile("/test/broken.json", `[
  {"2.0_Alias_Colours": {"modes": {"Style": {
    "A": {"$value": "{Nope}"},
    "B": {"$value": "{Missing}"}
  }}}}
]`, 0644)
	var out, errOut bytes.Buffer

	err := validateFiles(mfs, []string{"/test/broken.json"}, opts, schema.Unknown, true, &out, &errOut)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if out.Len() != 0 {
		t.Errorf("quiet mode printed %q", out.String())
	}
	if got := strings.Count(errOut.String(), "/test/broken.json:"); got != 2 {
		t.Errorf("expected 2 reported violations, got %d:\n%s", got, errOut.String())
	}
}

func TestValidateFiles_Unreadable(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/export", "/test")
	var errOut bytes.Buffer

	if err := validateFiles(mfs, []string{"/test/missing.json"}, opts, schema.Unknown, true, &bytes.Buffer{}, &errOut); err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(errOut.String(), "Error parsing /test/missing.json") {
		t.Errorf("unexpected stderr %q", errOut.String())
	}
}

func TestValidateFiles_RequiredShape(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/export", "/test")
	want, err := schema.FromString("current")
	if err != nil {
		t.Fatal(err)
	}

	var errOut bytes.Buffer
	if err := validateFiles(mfs, []string{"/test/current/tokens.json"}, opts, want, true, &bytes.Buffer{}, &errOut); err != nil {
		t.Fatalf("current export rejected: %v\n%s", err, errOut.String())
	}

	err = validateFiles(mfs, []string{"/test/legacy/tokens.json"}, opts, want, true, &bytes.Buffer{}, &errOut)
	if err == nil {
		t.Fatal("expected legacy export to fail a current shape requirement")
	}
	if !strings.Contains(errOut.String(), "/test/legacy/tokens.json: shape is legacy, expected current") {
		t.Errorf("unexpected stderr %q", errOut.String())
	}
}
