package envelope

import (
	"math/rand"
	"testing"
)

func benchCurve(points int) *Curve {
	rng := rand.New(rand.NewSource(1))
	c := New(Point{Time: 0, Value: 0})
	for i := 1; i < points; i++ {
		c.AddPointDeferred(Point{Time: float64(i), Value: rng.Float64()})
	}
	c.Sort()
	return c
}

func BenchmarkValueAt(b *testing.B) {
	c := benchCurve(32)

	b.ResetTimer()

	var sink float64
	for b.Loop() {
		sink += c.ValueAt(15.5)
	}
	_ = sink
}

func BenchmarkFillBuffer(b *testing.B) {
	c := benchCurve(32)
	buf := make([]float64, 1024)

	b.ResetTimer()

	for b.Loop() {
		c.FillBuffer(buf, 0, 31)
	}
}

func BenchmarkFillBufferClamped(b *testing.B) {
	c := benchCurve(32)
	buf := make([]float64, 1024)
	clamp := WithClamp(0.1, 0.9)

	b.ResetTimer()

	for b.Loop() {
		c.FillBuffer(buf, 0, 31, clamp)
	}
}

func BenchmarkValueAtPerSampleBaseline(b *testing.B) {
	// the naive alternative to FillBuffer: one search per sample
	c := benchCurve(32)
	buf := make([]float64, 1024)

	b.ResetTimer()

	for b.Loop() {
		for i := range buf {
			buf[i] = c.ValueAt(31 * float64(i) / float64(len(buf)))
		}
	}
}
