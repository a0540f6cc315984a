package filter

import (
	"errors"
	"testing"

	"github.com/klawthorne/edgecv/array"
)

func TestHysteresis_InvalidThresholds(t *testing.T) {
	thinned := array.New(3, 3, 1, 0)

	tests := []struct {
		name      string
		low, high float64
	}{
		{"low equals high", 5, 5},
		{"low above high", 6, 5},
		{"negative low", -1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Hysteresis(thinned, tt.low, tt.high)
			if !errors.Is(err, ErrInvalidThreshold) {
				t.Errorf("got %v, want ErrInvalidThreshold", err)
			}
		})
	}
}

func TestHysteresis_MultiChannel(t *testing.T) {
	thinned := array.New(3, 3, 3, 0)
	if _, err := Hysteresis(thinned, 1, 2); !errors.Is(err, array.ErrShapeMismatch) {
		t.Errorf("got %v, want ErrShapeMismatch", err)
	}
}

func TestHysteresis_StrongOnly(t *testing.T) {
	thinned := mustArray(t, 3, 4, []float64{
		0, 9, 0, 0,
		0, 9, 0, 0,
		0, 9, 0, 2,
	})

	out, err := Hysteresis(thinned, 5, 8)
	if err != nil {
		t.Fatalf("Hysteresis failed: %v", err)
	}
	want := []float64{
		0, 1, 0, 0,
		0, 1, 0, 0,
		0, 1, 0, 0,
	}
	if d := maxDiff(out.Data(), want); d != 0 {
		t.Errorf("edge map mismatch\ngot  %v\nwant %v", out.Data(), want)
	}
}

func TestHysteresis_WeakLinkedToStrong(t *testing.T) {
	// A strong seed, a weak chain hanging off it (including a diagonal
	// hop), and an isolated weak pixel that must not survive.
	thinned := mustArray(t, 5, 5, []float64{
		6, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 9, 6, 0,
		0, 0, 0, 0, 6,
		0, 0, 0, 0, 0,
	})

	out, err := Hysteresis(thinned, 5, 8)
	if err != nil {
		t.Fatalf("Hysteresis failed: %v", err)
	}
	want := []float64{
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 1, 1, 0,
		0, 0, 0, 0, 1,
		0, 0, 0, 0, 0,
	}
	if d := maxDiff(out.Data(), want); d != 0 {
		t.Errorf("edge map mismatch\ngot  %v\nwant %v", out.Data(), want)
	}
}

func TestHysteresis_NoCrossingSuppressed(t *testing.T) {
	// The weak pixel at the far end is separated from the strong seed by
	// a fully suppressed gap and must stay dark.
	thinned := mustArray(t, 1, 5, []float64{9, 6, 0, 6, 6})

	out, err := Hysteresis(thinned, 5, 8)
	if err != nil {
		t.Fatalf("Hysteresis failed: %v", err)
	}
	want := []float64{1, 1, 0, 0, 0}
	if d := maxDiff(out.Data(), want); d != 0 {
		t.Errorf("edge map mismatch\ngot  %v\nwant %v", out.Data(), want)
	}
}

func TestHysteresis_NarrowGapCollapsesToStrongSet(t *testing.T) {
	// With low approaching high the weak band vanishes and the edge map
	// reduces to exactly the strong set.
	thinned := mustArray(t, 3, 3, []float64{
		0, 4, 0,
		7, 9, 0,
		0, 4, 0,
	})

	high := 8.0
	out, err := Hysteresis(thinned, high-1e-12, high)
	if err != nil {
		t.Fatalf("Hysteresis failed: %v", err)
	}
	md := thinned.Data()
	for i, v := range out.Data() {
		want := 0.0
		if md[i] >= high {
			want = 1
		}
		if v != want {
			t.Errorf("out[%d]: got %v, want %v", i, v, want)
		}
	}
}

func TestHysteresis_BinaryOutput(t *testing.T) {
	thinned := mustArray(t, 2, 3, []float64{9, 6, 3, 0, 9, 6})

	out, err := Hysteresis(thinned, 5, 8)
	if err != nil {
		t.Fatalf("Hysteresis failed: %v", err)
	}
	for i, v := range out.Data() {
		if v != 0 && v != 1 {
			t.Errorf("out[%d] = %v, want 0 or 1", i, v)
		}
	}
}
