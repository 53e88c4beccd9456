package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Histogram holds bin edges (len(Counts)+1) and counts
type Histogram struct {
	Edges  []float64 `json:"edges"`
	Counts []float64 `json:"counts"`
}

// NewHistogram bins xs into equal-width bins spanning [min, max].
// The last bin is closed on the right.
func NewHistogram(xs []float64, bins int) Histogram {
	if bins < 1 {
		bins = 1
	}
	if len(xs) == 0 {
		return Histogram{Edges: floats.Span(make([]float64, bins+1), 0, 1), Counts: make([]float64, bins)}
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	edges := floats.Span(make([]float64, bins+1), lo, hi)
	dividers := append([]float64(nil), edges...)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)
	return Histogram{Edges: edges, Counts: counts}
}

// Total is the number of binned values
func (h Histogram) Total() float64 {
	return floats.Sum(h.Counts)
}

// ScottBandwidth is Scott's rule of thumb for a Gaussian kernel
func ScottBandwidth(xs []float64) float64 {
	if len(xs) < 2 {
		return 1
	}
	bw := stat.StdDev(xs, nil) * math.Pow(float64(len(xs)), -0.2)
	if bw == 0 {
		return 1
	}
	return bw
}

// GaussianKDE estimates the density of xs at each point
func GaussianKDE(xs, points []float64) []float64 {
	out := make([]float64, len(points))
	if len(xs) == 0 {
		return out
	}
	bw := ScottBandwidth(xs)
	kernel := distuv.Normal{Mu: 0, Sigma: bw}
	n := float64(len(xs))
	for i, p := range points {
		var sum float64
		for _, x := range xs {
			sum += kernel.Prob(p - x)
		}
		out[i] = sum / n
	}
	return out
}
