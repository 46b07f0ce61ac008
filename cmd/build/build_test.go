/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package build

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"bennypowers.dev/stratum/config"
	"bennypowers.dev/stratum/emit"
	"bennypowers.dev/stratum/testutil"
)

func TestExecute(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/export/legacy", "/test")
	cfg := config.Default()
	cfg.Build.Input = "/test/tokens.json"
	cfg.Build.OutputDir = "/dist"
	var out bytes.Buffer

	if err := Execute(context.Background(), mfs, cfg, true, &out); err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out.String())
	}
	for _, name := range emit.Files {
		if !mfs.Exists("/dist/" + name) {
			t.Errorf("expected %s to be written", name)
		}
	}
	if strings.Count(out.String(), "[PASS]") != 6 {
		t.Errorf("expected 6 passing checks, got:\n%s", out.String())
	}
}

func TestExecute_NoVerify(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/export/current", "/test")
	cfg := config.Default()
	cfg.Build.Input = "/test/tokens.json"
	cfg.Build.OutputDir = "/dist"
	cfg.Build.ColorFormat = "hex"
	var out bytes.Buffer

	if err := Execute(context.Background(), mfs, cfg, false, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output without --verify, got %q", out.String())
	}
	data, err := mfs.ReadFile("/dist/primitives.css")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "oklch(") {
		t.Errorf("hex format should convert oklch primitives:\n%s", data)
	}
}

func TestExecute_MissingInput(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/export/current", "/test")
	cfg := config.Default()
	cfg.Build.Input = "/test/missing.json"
	cfg.Build.OutputDir = "/dist"

	if err := Execute(context.Background(), mfs, cfg, false, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for missing input")
	}
	if mfs.Exists("/dist/primitives.css") {
		t.Error("nothing should be written on error")
	}
}
