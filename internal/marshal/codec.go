package marshal

import (
	"encoding/binary"
	"math"
)

// Float64Size is the byte width of one encoded value.
const Float64Size = 8

// DecodeFloat64s decodes little-endian IEEE-754 values, the in-memory
// layout of a JavaScript Float64Array. Trailing bytes that do not form a
// whole value are ignored.
func DecodeFloat64s(b []byte) []float64 {
	out := make([]float64, len(b)/Float64Size)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*Float64Size:]))
	}
	return out
}

// EncodeFloat64s writes values into dst as little-endian IEEE-754.
// dst must hold at least len(values)*Float64Size bytes.
func EncodeFloat64s(dst []byte, values []float64) {
	if len(dst) < len(values)*Float64Size {
		panic("marshal: destination too small")
	}
	for i, v := range values {
		binary.LittleEndian.PutUint64(dst[i*Float64Size:], math.Float64bits(v))
	}
}
