// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package config_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"cloudeng.io/calendar/clock"
	"cloudeng.io/calendar/config"
	"cloudeng.io/file"
)

const fullConfig = `format: "yyyy/MM/dd HH:mm"
now: "2024-03-10 12:00:00"
logging:
  level: 3
  format: text
`

func TestParse(t *testing.T) {
	cfg, err := config.Parse([]byte(fullConfig))
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Format.String(), "yyyy/MM/dd HH:mm"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Logging.Level, 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cfg.Logging.Format, "text"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	when := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	clk, err := cfg.Clock()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := clk.Now(), when; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	u, err := cfg.Util(nil)
	if err != nil {
		t.Fatal(err)
	}
	out, err := u.FormatNow("")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := out, "2024/03/10 12:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	cfg, err = config.Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	clk, err = cfg.Clock()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := clk.(clock.System); !ok {
		t.Errorf("expected the system clock: %T", clk)
	}
	if cfg.Pattern() != nil {
		t.Errorf("expected no pattern")
	}
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		spec     string
		contains []string
	}{
		{`format: "invalid{"`, []string{"invalid{"}},
		{`unknown: field`, []string{"unknown"}},
		{`now: yesterday`, []string{"now:", "yesterday"}},
		{"logging:\n  format: xml\n", []string{"logging.format", "xml"}},
		{"now: tomorrow\nlogging:\n  level: -1\n  format: xml\n",
			[]string{"now:", "logging.format", "logging.level"}},
	} {
		_, err := config.Parse([]byte(tc.spec))
		if err == nil {
			t.Errorf("%q: expected an error", tc.spec)
			continue
		}
		for _, c := range tc.contains {
			if !strings.Contains(err.Error(), c) {
				t.Errorf("%q: %q does not contain %q", tc.spec, err, c)
			}
		}
	}
}

func TestParseTime(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want time.Time
	}{
		{"2024-03-10T12:01:02Z", time.Date(2024, 3, 10, 12, 1, 2, 0, time.UTC)},
		{"2024-03-10 12:01:02", time.Date(2024, 3, 10, 12, 1, 2, 0, time.UTC)},
		{"2024-03-10", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
	} {
		got, err := config.ParseTime(tc.in)
		if err != nil {
			t.Errorf("%v: %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("%v: got %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := config.ParseTime("10/03/2024"); err == nil {
		t.Errorf("expected an error")
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()
	filename := filepath.Join(tmpDir, "calendar.yaml")
	if err := os.WriteFile(filename, []byte(fullConfig), 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(ctx, filename)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := cfg.Now, "2024-03-10 12:00:00"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	ctx = file.ContextWithFS(ctx, fstest.MapFS{
		"embedded.yaml": &fstest.MapFile{Data: []byte(`now: "2023-12-31"`)},
	})
	cfg, err = config.Load(ctx, "embedded.yaml")
	if err != nil {
		t.Fatal(err)
	}
	u, err := cfg.Util(nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := u.CurrentYear(), 2023; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := u.QuarterBoundary(true).String(), "2023-10-01"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := config.Load(ctx, ""); err == nil {
		t.Errorf("expected an error")
	}
	if _, err := config.Load(ctx, filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Errorf("expected an error")
	}
	bad := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("now: never\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := config.Load(ctx, bad); err == nil || !strings.Contains(err.Error(), "bad.yaml") {
		t.Errorf("missing or unexpected error: %v", err)
	}
}

func TestUtilLogger(t *testing.T) {
	cfg, err := config.Parse([]byte(`now: "2024-03-10 12:00:00"`))
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	u, err := cfg.Util(logger)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := u.CurrentDay(), 10; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if !strings.Contains(buf.String(), `"msg":"calendar snapshot"`) {
		t.Errorf("missing log entry: %v", buf.String())
	}
}

func TestUnparsableNow(t *testing.T) {
	// A Config that has not been validated may contain an invalid now.
	cfg := config.Config{Now: "next tuesday"}
	if clk, err := cfg.Clock(); err == nil || clk != nil {
		t.Errorf("expected an error: %v, %v", clk, err)
	}
	u, err := cfg.Util(nil)
	if err == nil || u != nil {
		t.Fatalf("expected an error: %v", err)
	}
	if !strings.Contains(err.Error(), "next tuesday") {
		t.Errorf("unexpected error: %v", err)
	}
}
