package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/scott-cotton/cli"
	"github.com/signadot/floatrun/report"
)

type recorder struct {
	entries []report.Entry
}

func (r *recorder) Begin(report.Header) error { return nil }
func (r *recorder) End(report.Summary) error  { return nil }
func (r *recorder) Write(e report.Entry) error {
	r.entries = append(r.entries, e)
	return nil
}

func TestLookupKind(t *testing.T) {
	for _, name := range kindNames() {
		k, err := lookupKind(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if k.Name() != name {
			t.Errorf("kind %s reports name %s", name, k.Name())
		}
	}
	if _, err := lookupKind("f16"); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("unknown type: got %v, want usage error", err)
	}
}

func TestCompileRequiresBound(t *testing.T) {
	k, _ := lookupKind("f32")
	if _, err := k.compile(&QueryOpts{Type: "f32"}); !errors.Is(err, cli.ErrUsage) {
		t.Errorf("got %v, want usage error", err)
	}
	for _, q := range []*QueryOpts{{Max: "0"}, {Min: "0"}, {Where: "x > 0"}} {
		if _, err := k.compile(q); err != nil {
			t.Errorf("%+v: %v", q, err)
		}
	}
}

func TestCompileBadBound(t *testing.T) {
	tests := []struct {
		kind, bound string
	}{
		{"f32", "abc"},
		{"i8", "200"},
		{"u16", "-1"},
		{"i32", "1.5"},
	}
	for _, tt := range tests {
		k, _ := lookupKind(tt.kind)
		_, err := k.compile(&QueryOpts{Max: tt.bound})
		if !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%s %q: got %v, want usage error", tt.kind, tt.bound, err)
		}
	}
}

func TestGenerateAndScan(t *testing.T) {
	for _, name := range kindNames() {
		t.Run(name, func(t *testing.T) {
			k, _ := lookupKind(name)
			data, err := k.generate(100, 0, 50, 9)
			if err != nil {
				t.Fatal(err)
			}
			if len(data) != 100*k.Size() {
				t.Fatalf("generated %d bytes, want %d", len(data), 100*k.Size())
			}
			run, err := k.compile(&QueryOpts{Min: "0"})
			if err != nil {
				t.Fatal(err)
			}
			rec := &recorder{}
			st, err := run(context.Background(), "gen", data, rec)
			if err != nil {
				t.Fatal(err)
			}
			want := []report.Entry{{Source: "gen", Offset: 0, Count: 100}}
			if diff := cmp.Diff(want, rec.entries, cmpopts.IgnoreFields(report.Entry{}, "Values")); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}
			if st.Unconsumed != 0 || st.Runs != 1 {
				t.Errorf("stats = %+v", st)
			}
		})
	}
}

func TestCompileWhere(t *testing.T) {
	k, _ := lookupKind("i16")
	data := []byte{1, 0, 2, 0, 0xff, 0xff, 4, 0, 6, 0}
	run, err := k.compile(&QueryOpts{Min: "0", Where: "int(x) % 2 == 0", MinLen: 2})
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	if _, err := run(context.Background(), "w", data, rec); err != nil {
		t.Fatal(err)
	}
	want := []report.Entry{{Source: "w", Offset: 6, Count: 2, Values: report.Values{"4", "6"}}}
	if diff := cmp.Diff(want, rec.entries); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestCanceledScan(t *testing.T) {
	k, _ := lookupKind("u8")
	run, _ := k.compile(&QueryOpts{Max: "10"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &recorder{}
	_, err := run(ctx, "c", []byte{1, 2, 200, 3}, rec)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}

func TestLoadFileConfig(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	os.WriteFile(good, []byte("min: -50\nmax: 0.5\nminlen: 3\ntype: f64\nformat: jsonl\n"), 0644)
	fc, err := loadFileConfig(good)
	if err != nil {
		t.Fatal(err)
	}
	if got := bound(fc.Min); got != "-50" {
		t.Errorf("min = %q", got)
	}
	if got := bound(fc.Max); got != "0.5" {
		t.Errorf("max = %q", got)
	}
	if fc.MinLen == nil || *fc.MinLen != 3 || fc.Type != "f64" || fc.Format != "jsonl" {
		t.Errorf("config = %+v", fc)
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("maxx: 1\n"), 0644)
	if _, err := loadFileConfig(bad); err == nil {
		t.Error("unknown field accepted")
	}
}

func TestQueryOptsFileDefaults(t *testing.T) {
	minLen := 4
	fc := &FileConfig{Min: -1.5, Max: 2, Where: "x != 0", MinLen: &minLen, Type: "f64"}
	q := &QueryOpts{Type: "f32"}
	q.merge(cli.NewCommand("scan"), fc)
	want := &QueryOpts{Min: "-1.5", Max: "2", Where: "x != 0", MinLen: 4, Type: "f64"}
	if diff := cmp.Diff(want, q); diff != "" {
		t.Errorf("merged opts mismatch (-want +got):\n%s", diff)
	}
	q = &QueryOpts{Max: "3"}
	q.merge(cli.NewCommand("scan"), nil)
	if q.Max != "3" {
		t.Errorf("nil config changed max to %q", q.Max)
	}
}
