//go:build js && wasm

package marshal

import "syscall/js"

var (
	float64ArrayCtor = js.Global().Get("Float64Array")
	uint8ArrayCtor   = js.Global().Get("Uint8Array")
)

// jsArray is a Source over a JavaScript array-like value.
type jsArray struct {
	v js.Value
}

// FromJS returns a kernel-owned copy of a JavaScript Float64Array or plain
// array. Float64Array contents are copied byte for byte; other array-likes
// are read element by element. undefined and null yield an empty slice.
func FromJS(v js.Value) []float64 {
	if v.IsUndefined() || v.IsNull() {
		return []float64{}
	}
	if v.InstanceOf(float64ArrayCtor) {
		return copyTypedArray(v)
	}
	return In(jsArray{v: v})
}

// ToJS returns a new Float64Array holding a copy of values.
func ToJS(values []float64) js.Value {
	arr := float64ArrayCtor.New(len(values))
	if len(values) == 0 {
		return arr
	}
	buf := make([]byte, len(values)*Float64Size)
	EncodeFloat64s(buf, values)
	view := uint8ArrayCtor.New(arr.Get("buffer"), arr.Get("byteOffset"), arr.Get("byteLength"))
	js.CopyBytesToJS(view, buf)
	return arr
}

func copyTypedArray(v js.Value) []float64 {
	n := v.Get("length").Int()
	if n == 0 {
		return []float64{}
	}
	view := uint8ArrayCtor.New(v.Get("buffer"), v.Get("byteOffset"), n*Float64Size)
	buf := make([]byte, n*Float64Size)
	js.CopyBytesToGo(buf, view)
	return DecodeFloat64s(buf)
}

func (a jsArray) Len() int { return a.v.Length() }

func (a jsArray) CopyTo(dst []float64) int {
	n := a.v.Length()
	if len(dst) < n {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] = a.v.Index(i).Float()
	}
	return n
}
