package di

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/goliatone/go-matrix-cache/matrixcache"
)

// benchMatrix builds a diagonally dominant n by n matrix. Diagonal dominance
// keeps the matrix comfortably invertible at every benchmarked size.
func benchMatrix(n int) *mat.Dense {
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				data[i*n+j] = float64(n) + 1
			} else {
				data[i*n+j] = 1 / float64(i+j+2)
			}
		}
	}
	return mat.NewDense(n, n, data)
}

func BenchmarkResolveInverse(b *testing.B) {
	container, err := NewContainerWithDefaults()
	if err != nil {
		b.Fatalf("Failed to create DI container: %v", err)
	}

	engine := container.Inverter()
	resolver := NewResolver(container)

	small := benchMatrix(8)
	large := benchMatrix(64)

	b.Run("direct_engine_invert_8x8", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = engine.Invert(small)
		}
	})

	b.Run("resolver_cold_slot_8x8", func(b *testing.B) {
		cm := matrixcache.New(small)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			cm.SetCachedInverse(nil)
			_, _ = resolver.Resolve(cm)
		}
	})

	// Warm the slot once so every iteration below is a pure hit
	warmSmall := matrixcache.New(small)
	if _, err := resolver.Resolve(warmSmall); err != nil {
		b.Fatalf("Failed to warm the 8x8 slot: %v", err)
	}

	b.Run("resolver_warm_slot_8x8", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = resolver.Resolve(warmSmall)
		}
	})

	b.Run("direct_engine_invert_64x64", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = engine.Invert(large)
		}
	})

	b.Run("resolver_cold_slot_64x64", func(b *testing.B) {
		cm := matrixcache.New(large)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			cm.SetCachedInverse(nil)
			_, _ = resolver.Resolve(cm)
		}
	})

	warmLarge := matrixcache.New(large)
	if _, err := resolver.Resolve(warmLarge); err != nil {
		b.Fatalf("Failed to warm the 64x64 slot: %v", err)
	}

	b.Run("resolver_warm_slot_64x64", func(b *testing.B) {
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = resolver.Resolve(warmLarge)
		}
	})
}
