package scan

import (
	"encoding/binary"
	"math"
)

// Number is the set of value types with a fixed-size binary encoding.
type Number interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64 |
		~float32 | ~float64
}

// Decoder converts a window of Size bytes into a value. Decode is called
// with a slice of at least Size bytes and must not retain it. Every bit
// pattern decodes to some value; there is no failure path.
type Decoder[V any] struct {
	Name   string
	Size   int
	Decode func([]byte) V
}

func (d Decoder[V]) valid() bool {
	return d.Size > 0 && d.Decode != nil
}

// Little-endian decoders for each value type.
var (
	Float32LE = Float32(binary.LittleEndian)
	Float64LE = Float64(binary.LittleEndian)
	Int8LE    = Int8()
	Uint8LE   = Uint8()
	Int16LE   = Int16(binary.LittleEndian)
	Uint16LE  = Uint16(binary.LittleEndian)
	Int32LE   = Int32(binary.LittleEndian)
	Uint32LE  = Uint32(binary.LittleEndian)
	Int64LE   = Int64(binary.LittleEndian)
	Uint64LE  = Uint64(binary.LittleEndian)
)

// Float32 decodes IEEE-754 single-precision values.
func Float32(order binary.ByteOrder) Decoder[float32] {
	return Decoder[float32]{
		Name: "f32",
		Size: 4,
		Decode: func(b []byte) float32 {
			return math.Float32frombits(order.Uint32(b))
		},
	}
}

// Float64 decodes IEEE-754 double-precision values.
func Float64(order binary.ByteOrder) Decoder[float64] {
	return Decoder[float64]{
		Name: "f64",
		Size: 8,
		Decode: func(b []byte) float64 {
			return math.Float64frombits(order.Uint64(b))
		},
	}
}

// Int8 decodes signed bytes. Int8 and Uint8 have no byte order.
func Int8() Decoder[int8] {
	return Decoder[int8]{
		Name:   "i8",
		Size:   1,
		Decode: func(b []byte) int8 { return int8(b[0]) },
	}
}

// Uint8 decodes single bytes.
func Uint8() Decoder[uint8] {
	return Decoder[uint8]{
		Name:   "u8",
		Size:   1,
		Decode: func(b []byte) uint8 { return b[0] },
	}
}

// Int16 decodes two's complement 16-bit integers.
func Int16(order binary.ByteOrder) Decoder[int16] {
	return Decoder[int16]{
		Name:   "i16",
		Size:   2,
		Decode: func(b []byte) int16 { return int16(order.Uint16(b)) },
	}
}

// Uint16 decodes unsigned 16-bit integers.
func Uint16(order binary.ByteOrder) Decoder[uint16] {
	return Decoder[uint16]{
		Name:   "u16",
		Size:   2,
		Decode: order.Uint16,
	}
}

// Int32 decodes two's complement 32-bit integers.
func Int32(order binary.ByteOrder) Decoder[int32] {
	return Decoder[int32]{
		Name:   "i32",
		Size:   4,
		Decode: func(b []byte) int32 { return int32(order.Uint32(b)) },
	}
}

// Uint32 decodes unsigned 32-bit integers.
func Uint32(order binary.ByteOrder) Decoder[uint32] {
	return Decoder[uint32]{
		Name:   "u32",
		Size:   4,
		Decode: order.Uint32,
	}
}

// Int64 decodes two's complement 64-bit integers.
func Int64(order binary.ByteOrder) Decoder[int64] {
	return Decoder[int64]{
		Name:   "i64",
		Size:   8,
		Decode: func(b []byte) int64 { return int64(order.Uint64(b)) },
	}
}

// Uint64 decodes unsigned 64-bit integers.
func Uint64(order binary.ByteOrder) Decoder[uint64] {
	return Decoder[uint64]{
		Name:   "u64",
		Size:   8,
		Decode: order.Uint64,
	}
}
