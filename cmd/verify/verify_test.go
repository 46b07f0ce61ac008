/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package verify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"bennypowers.dev/stratum/config"
	"bennypowers.dev/stratum/emit"
	"bennypowers.dev/stratum/parser"
	"bennypowers.dev/stratum/testutil"
	verifylib "bennypowers.dev/stratum/verify"
)

func TestInput(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/export/current", "/test")
	var out bytes.Buffer

	err := Input(context.Background(), mfs, config.Default(), "/test/tokens.json", "/tmp/work", &out)
	if err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out.String())
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected 8 result lines, got %d:\n%s", len(lines), out.String())
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "[PASS] ") {
			t.Errorf("unexpected line %q", line)
		}
	}
}

func TestInput_BuildError(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/export/current", "/test")
	mfs.AddFile("/test/broken.json", "not json", 0644)
	var out bytes.Buffer

	err := Input(context.Background(), mfs, config.Default(), "/test/broken.json", "/tmp/work", &out)
	if !errors.Is(err, verifylib.ErrCheckFailed) {
		t.Fatalf("expected ErrCheckFailed, got %v", err)
	}
	if !strings.Contains(out.String(), "[FAIL] Unexpected build error:") {
		t.Errorf("expected failure line, got %q", out.String())
	}
}

func TestDir(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/export/current", "/test")
	b := emit.NewBuilder(mfs, nil)
	opts := emit.BuildOptions{Parse: parser.Options{ExcludePalettes: parser.DefaultExcludePalettes}}
	if _, err := b.Build(context.Background(), "/test/tokens.json", "/out", opts); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	if err := Dir(mfs, "/out", &out); err != nil {
		t.Fatalf("unexpected error: %v\n%s", err, out.String())
	}
	if strings.Count(out.String(), "[PASS]") != 6 {
		t.Errorf("expected 6 passing checks, got:\n%s", out.String())
	}

	mfs.AddFile("/out/semantic.css", ":root { --spacing-width-page: 1px; }", 0644)
	out.Reset()
	if err := Dir(mfs, "/out", &out); err == nil {
		t.Error("expected failure after breaking semantic.css")
	}
	if !strings.Contains(out.String(), "[FAIL] Width namespace test failed") {
		t.Errorf("expected namespace failure, got:\n%s", out.String())
	}
}

func TestDir_Missing(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/export/current", "/test")
	if err := Dir(mfs, "/nowhere", &bytes.Buffer{}); err == nil {
		t.Error("expected error for missing directory")
	}
}
