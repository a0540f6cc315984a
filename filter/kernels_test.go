package filter

import (
	"errors"
	"math"
	"testing"

	"github.com/klawthorne/edgecv/array"
)

func TestGaussianKernel(t *testing.T) {
	k, err := GaussianKernel(5)
	if err != nil {
		t.Fatalf("GaussianKernel failed: %v", err)
	}
	if k.Rows() != 5 || k.Cols() != 5 || k.Channels() != 1 {
		t.Fatalf("shape: got %dx%dx%d, want 5x5x1", k.Rows(), k.Cols(), k.Channels())
	}

	var sum float64
	for _, v := range k.Data() {
		if v <= 0 {
			t.Fatalf("non-positive weight %v", v)
		}
		sum += v
	}
	if math.Abs(sum-1) > 1e-12 {
		t.Errorf("weights sum to %v, want 1", sum)
	}

	// Center weight dominates and the kernel is symmetric.
	center, _ := k.At(2, 2)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			v, _ := k.At(i, j)
			if v > center {
				t.Errorf("weight (%d,%d)=%v exceeds center %v", i, j, v, center)
			}
			m, _ := k.At(4-i, 4-j)
			if v != m {
				t.Errorf("asymmetry: (%d,%d)=%v vs (%d,%d)=%v", i, j, v, 4-i, 4-j, m)
			}
		}
	}
}

func TestGaussianKernel_BadSize(t *testing.T) {
	for _, size := range []int{-1, 0, 2, 4} {
		if _, err := GaussianKernel(size); !errors.Is(err, array.ErrShapeMismatch) {
			t.Errorf("size %d: got %v, want ErrShapeMismatch", size, err)
		}
	}
}

func TestMeanKernel(t *testing.T) {
	k, err := MeanKernel(3)
	if err != nil {
		t.Fatalf("MeanKernel failed: %v", err)
	}
	for i, v := range k.Data() {
		if v != 1.0/9 {
			t.Errorf("weight[%d]: got %v, want 1/9", i, v)
		}
	}

	if _, err := MeanKernel(4); !errors.Is(err, array.ErrShapeMismatch) {
		t.Errorf("even size: got %v, want ErrShapeMismatch", err)
	}
}

func TestMeanSmooth_Impulse(t *testing.T) {
	src := array.New(3, 3, 1, 0)
	if err := src.Set(1, 1, 1); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	out, err := MeanSmooth(src, 3, BorderZero)
	if err != nil {
		t.Fatalf("MeanSmooth failed: %v", err)
	}
	// Every output window covers the central impulse once.
	for i, v := range out.Data() {
		if math.Abs(v-1.0/9) > 1e-12 {
			t.Errorf("out[%d]: got %v, want 1/9", i, v)
		}
	}
}

func TestGaussianSmooth_UniformStaysUniform(t *testing.T) {
	src := array.New(6, 7, 1, 0.5)

	out, err := GaussianSmooth(src, 5, BorderReplicate)
	if err != nil {
		t.Fatalf("GaussianSmooth failed: %v", err)
	}
	for i, v := range out.Data() {
		if math.Abs(v-0.5) > 1e-9 {
			t.Errorf("out[%d]: got %v, want 0.5", i, v)
		}
	}
}
