package sample

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/floatrun/scan"
)

func TestGenerateRange(t *testing.T) {
	vs := Generate[float32](NewRand(7), 1000, DefaultLo, DefaultHi)
	if len(vs) != 1000 {
		t.Fatalf("len = %d, want 1000", len(vs))
	}
	for i, v := range vs {
		if v < DefaultLo || v > DefaultHi {
			t.Fatalf("value %d = %v outside [%v, %v)", i, v, DefaultLo, DefaultHi)
		}
	}
}

func TestGenerateSwappedBounds(t *testing.T) {
	vs := Generate[int32](NewRand(1), 50, 10, -10)
	for _, v := range vs {
		if v < -10 || v > 10 {
			t.Fatalf("value %d outside [-10, 10]", v)
		}
	}
	if got := Generate[int8](NewRand(1), -3, 0, 1); len(got) != 0 {
		t.Errorf("negative length produced %d values", len(got))
	}
}

func TestDeterministic(t *testing.T) {
	a := Float32s(64, 42)
	b := Float32s(64, 42)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed differs (-a +b):\n%s", diff)
	}
	if len(a) != 256 {
		t.Errorf("len = %d, want 256", len(a))
	}
}

func TestEncodeRoundTripsThroughDecoder(t *testing.T) {
	vs := []int16{-2, 0, 300}
	b, err := Encode(nil, binary.LittleEndian, vs)
	if err != nil {
		t.Fatal(err)
	}
	var got []int16
	for i := 0; i+2 <= len(b); i += 2 {
		got = append(got, scan.Int16LE.Decode(b[i:]))
	}
	if diff := cmp.Diff(vs, got); diff != "" {
		t.Errorf("decoded mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateClampsToType(t *testing.T) {
	us := Generate[uint16](NewRand(3), 200, -100, -1)
	for i, v := range us {
		if v != 0 {
			t.Fatalf("value %d = %d, want 0", i, v)
		}
	}
	is := Generate[int8](NewRand(3), 200, 500, 600)
	for i, v := range is {
		if v != 127 {
			t.Fatalf("value %d = %d, want 127", i, v)
		}
	}
}
