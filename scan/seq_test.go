package scan

import (
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSeqReadUntilEOF(t *testing.T) {
	buf := append(f32Bytes(-1, junk, -2, -3, junk, junk, -4), 0x01)
	s := mustScanner(t, Float32LE, neg, 0)
	seq := s.Runs(buf)

	var got []Run[float32]
	for {
		run, err := seq.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Read error: %v", err)
		}
		got = append(got, *run)
	}
	want := []Run[float32]{
		{Offset: 0, Values: []float32{-1}},
		{Offset: 8, Values: []float32{-2, -3}},
		{Offset: 24, Values: []float32{-4}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("runs mismatch (-want +got):\n%s", diff)
	}
	if !seq.Done() {
		t.Error("Done() = false after EOF")
	}
	if seq.Unconsumed() != 1 {
		t.Errorf("Unconsumed() = %d, want 1", seq.Unconsumed())
	}
	if _, err := seq.Read(); err != io.EOF {
		t.Errorf("Read after EOF = %v, want io.EOF", err)
	}
}

func TestSeqRemainderKeepsSkippedTail(t *testing.T) {
	buf := f32Bytes(-1, -1, junk, -1, junk, 7)
	s := mustScanner(t, Float32LE, neg, 2)
	seq := s.Runs(buf)
	n := 0
	for range seq.All() {
		n++
	}
	if n != 1 {
		t.Fatalf("got %d runs, want 1", n)
	}
	if diff := cmp.Diff(buf[8:], seq.Remainder()); diff != "" {
		t.Errorf("remainder mismatch (-want +got):\n%s", diff)
	}
	want := Stats{Runs: 1, Discarded: 1, Unconsumed: 16}
	got := seq.Stats()
	got.Windows = 0
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
}

func TestSeqEarlyBreakResumes(t *testing.T) {
	buf := f32Bytes(-1, junk, -2, junk, -3)
	s := mustScanner(t, Float32LE, neg, 1)
	seq := s.Runs(buf)
	for r := range seq.All() {
		if r.Offset != 0 {
			t.Fatalf("first run at %d", r.Offset)
		}
		break
	}
	if seq.Offset() != 4 {
		t.Fatalf("Offset() = %d, want 4", seq.Offset())
	}
	var rest []int
	for r := range seq.All() {
		rest = append(rest, r.Offset)
	}
	if diff := cmp.Diff([]int{8, 16}, rest); diff != "" {
		t.Errorf("offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestSeqNotRestartable(t *testing.T) {
	buf := f32Bytes(-1)
	seq := IterateRuns(buf, 0, Float32LE, Predicate[float32](neg))
	first := 0
	for range seq.All() {
		first++
	}
	second := 0
	for range seq.All() {
		second++
	}
	if first != 1 || second != 0 {
		t.Errorf("first pass %d runs, second pass %d runs; want 1 and 0", first, second)
	}
}

func TestIterateRunsInvalid(t *testing.T) {
	buf := f32Bytes(-1, -2)
	seq := IterateRuns[float32](buf, 0, Float32LE, nil)
	if _, err := seq.Read(); err != io.EOF {
		t.Fatalf("Read = %v, want io.EOF", err)
	}
	if seq.Unconsumed() != len(buf) {
		t.Errorf("Unconsumed() = %d, want %d", seq.Unconsumed(), len(buf))
	}
}

func TestSeqEmptyBuffer(t *testing.T) {
	s := mustScanner(t, Float32LE, pos, 0)
	seq := s.Runs(nil)
	if _, err := seq.Read(); err != io.EOF {
		t.Fatalf("Read = %v, want io.EOF", err)
	}
	if got := seq.Stats(); got != (Stats{}) {
		t.Errorf("Stats() = %+v, want zero", got)
	}
}
