// Package sample generates synthetic input for scans.
package sample

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/signadot/floatrun/scan"
)

// Default range of generated values.
const (
	DefaultLo = -100.0
	DefaultHi = 1.0
)

// DefaultLength is the default number of generated values.
const DefaultLength = 1 << 20

// NewRand returns a deterministic generator for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate returns n values drawn uniformly from [lo, hi). Integer types
// truncate toward zero, and values outside the range of V are clamped to
// it, so u8 samples from the default range are mostly zero.
func Generate[V scan.Number](rng *rand.Rand, n int, lo, hi float64) []V {
	if n < 0 {
		n = 0
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	vmin, vmax := limits[V]()
	vs := make([]V, n)
	span := hi - lo
	for i := range vs {
		vs[i] = V(min(max(lo+rng.Float64()*span, vmin), vmax))
	}
	return vs
}

func limits[V scan.Number]() (float64, float64) {
	var z V
	switch any(z).(type) {
	case int8:
		return math.MinInt8, math.MaxInt8
	case uint8:
		return 0, math.MaxUint8
	case int16:
		return math.MinInt16, math.MaxInt16
	case uint16:
		return 0, math.MaxUint16
	case int32:
		return math.MinInt32, math.MaxInt32
	case uint32:
		return 0, math.MaxUint32
	case int64:
		// largest float64 below 2^63
		return math.MinInt64, math.Nextafter(math.MaxInt64, 0)
	case uint64:
		return 0, math.Nextafter(math.MaxUint64, 0)
	case float32:
		return -math.MaxFloat32, math.MaxFloat32
	}
	return math.Inf(-1), math.Inf(1)
}

// Encode appends the binary form of vs to dst using order.
func Encode[V scan.Number](dst []byte, order binary.ByteOrder, vs []V) ([]byte, error) {
	out, err := binary.Append(dst, order, vs)
	if err != nil {
		return dst, fmt.Errorf("encoding %d values: %w", len(vs), err)
	}
	return out, nil
}

// Float32s returns n little-endian float32 values in [DefaultLo, DefaultHi).
func Float32s(n int, seed uint64) []byte {
	vs := Generate[float32](NewRand(seed), n, DefaultLo, DefaultHi)
	b, err := Encode(make([]byte, 0, 4*len(vs)), binary.LittleEndian, vs)
	if err != nil {
		panic(err)
	}
	return b
}
