package worker

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	json "github.com/goccy/go-json"
)

// Values is a float64 array with a JSON encoding that survives non-finite
// values. NaN and the infinities are written as the strings "NaN",
// "Infinity" and "-Infinity". Decoding accepts numbers, those strings (and
// any other spelling strconv.ParseFloat understands) and null, which
// decodes to NaN. NaN payload bits are not preserved.
type Values []float64

// MarshalJSON implements json.Marshaler. A nil Values encodes as [].
func (v Values) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 2+len(v)*8)
	b = append(b, '[')
	for i, x := range v {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendValue(b, x)
	}
	b = append(b, ']')
	return b, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Values) UnmarshalJSON(b []byte) error {
	if v == nil {
		return errors.New("values: nil receiver")
	}
	if string(b) == "null" {
		*v = Values{}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		return fmt.Errorf("values: %w", err)
	}

	out := make(Values, len(items))
	for i, item := range items {
		x, err := parseValue(item)
		if err != nil {
			return fmt.Errorf("values: index %d: %w", i, err)
		}
		out[i] = x
	}
	*v = out
	return nil
}

// Float is a float64 that encodes like one element of Values.
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	return appendValue(nil, float64(f)), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Float) UnmarshalJSON(b []byte) error {
	x, err := parseValue(b)
	if err != nil {
		return fmt.Errorf("float: %w", err)
	}
	*f = Float(x)
	return nil
}

func appendValue(b []byte, x float64) []byte {
	switch {
	case math.IsNaN(x):
		return append(b, `"NaN"`...)
	case math.IsInf(x, 1):
		return append(b, `"Infinity"`...)
	case math.IsInf(x, -1):
		return append(b, `"-Infinity"`...)
	default:
		return strconv.AppendFloat(b, x, 'g', -1, 64)
	}
}

func parseValue(raw json.RawMessage) (float64, error) {
	if len(raw) == 0 {
		return 0, errors.New("empty element")
	}

	switch raw[0] {
	case 'n':
		if string(raw) != "null" {
			return 0, fmt.Errorf("invalid element %s", raw)
		}
		return math.NaN(), nil
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, err
		}
		return parseFloat(s)
	default:
		return parseFloat(string(raw))
	}
}

// parseFloat accepts out-of-range literals as the matching infinity.
func parseFloat(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return x, nil
		}
		return 0, err
	}
	return x, nil
}
