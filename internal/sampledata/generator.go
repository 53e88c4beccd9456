// Package sampledata produces the synthetic arrays and tables the lessons
// and projects work on.
//
// Every Generator is seeded. Two generators built with the same seed
// return identical sequences, so charts and printed numbers are stable
// from run to run.
package sampledata

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Generator draws reproducible random samples
type Generator struct {
	rng *rand.Rand
}

// New returns a generator seeded with seed
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// StandardNormal draws n values from N(0, 1)
func (g *Generator) StandardNormal(n int) []float64 {
	return g.Normal(0, 1, n)
}

// Normal draws n values from N(mean, sd²)
func (g *Generator) Normal(mean, sd float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = mean + sd*g.rng.NormFloat64()
	}
	return out
}

// Exponential draws n values from an exponential distribution with the given scale
func (g *Generator) Exponential(scale float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = scale * g.rng.ExpFloat64()
	}
	return out
}

// RandInt draws n integers from [lo, hi)
func (g *Generator) RandInt(lo, hi, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = lo + g.rng.Intn(hi-lo)
	}
	return out
}

// Choice draws n values uniformly from options
func (g *Generator) Choice(options []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = options[g.rng.Intn(len(options))]
	}
	return out
}

// Trig returns x = linspace(0, 10, n) with sin(x) and cos(x)
func Trig(n int) (x, sin, cos []float64) {
	x = floats.Span(make([]float64, n), 0, 10)
	sin = make([]float64, n)
	cos = make([]float64, n)
	for i, v := range x {
		sin[i] = math.Sin(v)
		cos[i] = math.Cos(v)
	}
	return x, sin, cos
}

// Scatter returns x ~ N(0, 1) and y = 2x + N(0, 1)
func (g *Generator) Scatter(n int) (x, y []float64) {
	x = g.StandardNormal(n)
	noise := g.StandardNormal(n)
	y = make([]float64, n)
	for i := range x {
		y[i] = 2*x[i] + noise[i]
	}
	return x, y
}

// RandomWalk is the cumulative sum of n standard normal steps
func (g *Generator) RandomWalk(n int) []float64 {
	steps := g.StandardNormal(n)
	return floats.CumSum(make([]float64, n), steps)
}

// DateRange returns n consecutive days starting at start
func DateRange(start time.Time, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

// FormatDates renders dates as YYYY-MM-DD
func FormatDates(dates []time.Time) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.Format("2006-01-02")
	}
	return out
}

// Jan1 is the first day of the sample year
var Jan1 = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
