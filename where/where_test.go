package where

import (
	"errors"
	"math"
	"testing"

	"github.com/signadot/floatrun/scan"
)

func TestCompileAndEval(t *testing.T) {
	cases := []struct {
		src  string
		in   float64
		want bool
	}{
		{"x > 0", 1, true},
		{"x > 0", -1, false},
		{"x >= -100 && x <= 1", -20, true},
		{"abs(x) > 10", -20, true},
		{"isNaN(x)", math.NaN(), true},
		{"isNaN(x)", 3, false},
		{"isInf(x) || x == 0", math.Inf(-1), true},
	}
	for _, tc := range cases {
		p, err := Compile(tc.src)
		if err != nil {
			t.Fatalf("Compile(%q): %v", tc.src, err)
		}
		got, err := p.Eval(tc.in)
		if err != nil {
			t.Fatalf("Eval(%q, %v): %v", tc.src, tc.in, err)
		}
		if got != tc.want {
			t.Errorf("%q with x=%v = %v, want %v", tc.src, tc.in, got, tc.want)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{"x +", "x + 1", "y > 0"} {
		if _, err := Compile(src); !errors.Is(err, ErrExpr) {
			t.Errorf("Compile(%q) = %v, want ErrExpr", src, err)
		}
	}
}

func TestPredicateWithScanner(t *testing.T) {
	p, err := Compile("x < 0")
	if err != nil {
		t.Fatal(err)
	}
	buf := []byte{
		0x00, 0x00, 0x80, 0x3f, // 1
		0x00, 0x00, 0xa0, 0xc1, // -20
		0x00, 0x00, 0xa0, 0xc1, // -20
	}
	s, err := scan.NewScanner(scan.Float32LE, Predicate[float32](p), scan.MinLength(2))
	if err != nil {
		t.Fatal(err)
	}
	run, rest := s.FindNext(buf)
	if run == nil || run.Offset != 4 || run.Len() != 2 || len(rest) != 0 {
		t.Fatalf("got %+v with %d bytes left", run, len(rest))
	}
}

func TestRange(t *testing.T) {
	lo := int16(-5)
	p, err := Compile("x != 0")
	if err != nil {
		t.Fatal(err)
	}
	r := Range(&lo, nil, p)
	for v, want := range map[int16]bool{-6: false, -5: true, 0: false, 300: true} {
		if got := r(v); got != want {
			t.Errorf("Range(%d) = %v, want %v", v, got, want)
		}
	}
	if !Range[int16](nil, nil, nil)(0) {
		t.Error("unbounded range rejected 0")
	}
}
