package world

import "testing"

func TestSimplexDeterminism(t *testing.T) {
	a := NewSimplex(99)
	b := NewSimplex(99)

	for i := 0; i < 1000; i++ {
		x := float64(i) * 0.137
		y := float64(i) * -0.291
		if a.Noise2D(x, y) != b.Noise2D(x, y) {
			t.Fatalf("noise not deterministic at (%f,%f)", x, y)
		}
	}
}

func TestSimplexRange(t *testing.T) {
	sx := NewSimplex(7)

	for i := -500; i < 500; i++ {
		for j := -5; j < 5; j++ {
			v := sx.Noise2D(float64(i)*0.173, float64(j)*0.311)
			if v < -1.0 || v > 1.0 {
				t.Fatalf("Noise2D out of range at (%d,%d): %f", i, j, v)
			}
		}
	}
}

func TestSimplexSeedsDiffer(t *testing.T) {
	a := NewSimplex(1)
	b := NewSimplex(2)

	same := true
	for i := 0; i < 100 && same; i++ {
		x := float64(i) * 0.7
		if a.Noise2D(x, x) != b.Noise2D(x, x) {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical noise")
	}
}

func TestOctaveNoiseRange(t *testing.T) {
	sx := NewSimplex(7)

	for i := -100; i < 100; i++ {
		v := sx.OctaveNoise2D(float64(i)*0.211, float64(i)*0.173, 4, 0.5, 2.0)
		if v < -1.0 || v > 1.0 {
			t.Fatalf("OctaveNoise2D out of range at %d: %f", i, v)
		}
	}
}
