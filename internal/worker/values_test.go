package worker

import (
	"math"
	"testing"

	json "github.com/goccy/go-json"
)

func TestValuesMarshalNonFinite(t *testing.T) {
	v := Values{1.5, math.NaN(), math.Inf(1), math.Inf(-1), math.Copysign(0, -1), 1e21}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	want := `[1.5,"NaN","Infinity","-Infinity",-0,1e+21]`
	if string(b) != want {
		t.Fatalf("Marshal = %s, want %s", b, want)
	}
}

func TestValuesMarshalNil(t *testing.T) {
	b, err := json.Marshal(Values(nil))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "[]" {
		t.Fatalf("Marshal(nil) = %s, want []", b)
	}
}

func TestValuesUnmarshal(t *testing.T) {
	var v Values
	in := `[1, -2.5e3, "NaN", "Infinity", "-Infinity", null, "0.25", 1e999]`
	if err := json.Unmarshal([]byte(in), &v); err != nil {
		t.Fatal(err)
	}
	if len(v) != 8 {
		t.Fatalf("len = %d, want 8", len(v))
	}
	if v[0] != 1 || v[1] != -2500 || v[6] != 0.25 {
		t.Fatalf("finite values decoded as %v", v)
	}
	if !math.IsNaN(v[2]) || !math.IsNaN(v[5]) {
		t.Fatalf("NaN and null should decode to NaN, got %v %v", v[2], v[5])
	}
	if !math.IsInf(v[3], 1) || !math.IsInf(v[4], -1) || !math.IsInf(v[7], 1) {
		t.Fatalf("infinities decoded as %v %v %v", v[3], v[4], v[7])
	}
}

func TestValuesRoundTripNonFinite(t *testing.T) {
	in := Values{math.Inf(-1), math.NaN(), 3}
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}
	var out Values
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(out[0], -1) || !math.IsNaN(out[1]) || out[2] != 3 {
		t.Fatalf("round trip = %v", out)
	}
}

func TestValuesUnmarshalErrors(t *testing.T) {
	for _, in := range []string{`[true]`, `["abc"]`, `{"a":1}`, `[[1]]`} {
		var v Values
		if err := json.Unmarshal([]byte(in), &v); err == nil {
			t.Errorf("Unmarshal(%s) succeeded, want error", in)
		}
	}
}
