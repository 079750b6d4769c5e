package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
	"gonum.org/v1/gonum/mat"

	"github.com/goliatone/go-matrix-cache/matrixcache"
	"github.com/goliatone/go-matrix-cache/pkg/di"
)

// runGenerated times cold and warm resolutions of a generated matrix and
// reports the observed speedup alongside a round trip residual check.
func runGenerated(ctx context.Context, cmd *cli.Command) error {
	size := cmd.Int("size")
	trials := cmd.Int("trials")
	seed := cmd.Int("seed")

	if size < 1 {
		return fmt.Errorf("--size must be at least 1, got %d", size)
	}
	if trials < 1 {
		return fmt.Errorf("--trials must be at least 1, got %d", trials)
	}

	config, err := engineConfig(cmd)
	if err != nil {
		return err
	}

	container, err := di.NewContainer(config)
	if err != nil {
		return err
	}

	resolver := di.NewResolver(container)

	log.Infof("generating a %dx%d matrix with seed %d", size, size, seed)
	m := generateMatrix(size, int64(seed))
	cm := matrixcache.New(m)

	log.Debugf("resolving cold slot")
	start := time.Now()
	inverse, err := resolver.Resolve(cm)
	coldDuration := time.Since(start)
	if err != nil {
		return fmt.Errorf("cold resolution failed: %w", err)
	}
	log.Infof("cold resolution took %v", coldDuration)

	start = time.Now()
	for i := 0; i < trials; i++ {
		if _, err := resolver.Resolve(cm); err != nil {
			return fmt.Errorf("warm resolution %d failed: %w", i+1, err)
		}
	}
	warmTotal := time.Since(start)
	warmAvg := warmTotal / time.Duration(trials)
	log.Infof("%s warm resolutions took %v total", humanize.Comma(int64(trials)), warmTotal)

	residual := roundTripResidual(m, inverse)

	fmt.Println()
	fmt.Printf("Matrix size:          %dx%d\n", size, size)
	fmt.Printf("Cold resolution:      %v\n", coldDuration)
	fmt.Printf("Warm resolutions:     %s in %v (avg %v)\n",
		humanize.Comma(int64(trials)), warmTotal, warmAvg)
	if warmAvg > 0 {
		fmt.Printf("Observed speedup:     %.0fx\n", float64(coldDuration)/float64(warmAvg))
	}
	fmt.Printf("Round trip residual:  %g\n", residual)

	return nil
}

// generateMatrix builds a pseudo random diagonally dominant matrix. Diagonal
// dominance keeps every generated matrix invertible.
func generateMatrix(n int, seed int64) *mat.Dense {
	r := rand.New(rand.NewSource(seed))

	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				data[i*n+j] = float64(n) + r.Float64()
			} else {
				data[i*n+j] = r.Float64() - 0.5
			}
		}
	}

	return mat.NewDense(n, n, data)
}

// roundTripResidual returns the largest absolute deviation of m times inv
// from the identity matrix.
func roundTripResidual(m, inv mat.Matrix) float64 {
	var product mat.Dense
	product.Mul(m, inv)

	n, _ := product.Dims()
	residual := 0.0
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if dev := math.Abs(product.At(i, j) - want); dev > residual {
				residual = dev
			}
		}
	}

	return residual
}
