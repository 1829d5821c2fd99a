package report

import (
	"strconv"
	"unsafe"

	"github.com/signadot/floatrun/scan"
)

// Value is a run value rendered in its own width, so that float32 values
// print as the shortest float32 text and 64-bit integers keep every digit.
type Value string

// Values are run values.
type Values []Value

// FormatValue renders v.
func FormatValue[V scan.Number](v V) Value {
	var one V = 1
	switch {
	case one/2 != 0:
		return Value(strconv.FormatFloat(float64(v), 'g', -1, int(unsafe.Sizeof(v))*8))
	case -one < 0:
		return Value(strconv.FormatInt(int64(v), 10))
	}
	return Value(strconv.FormatUint(uint64(v), 10))
}

// finite reports whether v is a number literal in both JSON and YAML.
// NaN and the infinities are not.
func (v Value) finite() bool {
	switch v {
	case "NaN", "+Inf", "-Inf":
		return false
	}
	return true
}

// MarshalJSON writes finite values as numbers. JSON has no encoding for NaN
// or the infinities, so they are written as the strings "NaN", "+Inf" and
// "-Inf".
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.finite() {
		return strconv.AppendQuote(nil, string(v)), nil
	}
	return []byte(v), nil
}

// MarshalYAML writes values as plain scalars, using the YAML spellings of
// NaN and the infinities.
func (v Value) MarshalYAML() ([]byte, error) {
	switch v {
	case "NaN":
		return []byte(".nan"), nil
	case "+Inf":
		return []byte(".inf"), nil
	case "-Inf":
		return []byte("-.inf"), nil
	}
	return []byte(v), nil
}
