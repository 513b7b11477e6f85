package orbit

import "testing"

func BenchmarkCompute(b *testing.B) {
	var s State[float64]
	s.Compute(100, 100, 800, 600)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := 100 + float64(i%600)
		s.Compute(x, 200, 800, 600)
	}
}

func BenchmarkComputeFloat32(b *testing.B) {
	var s State[float32]
	s.Compute(100, 100, 800, 600)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x := 100 + float32(i%600)
		s.Compute(x, 200, 800, 600)
	}
}

func BenchmarkOrbitFlat(b *testing.B) {
	var rot, cache [4]float64
	size := [2]float64{800, 600}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Orbit(&rot, &cache, [2]float64{100 + float64(i%600), 200}, size)
	}
}
