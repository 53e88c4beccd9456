// Package arrays provides the small numeric array toolkit used by the
// array lessons: constructors, element-wise arithmetic, reductions and a
// bracketed printer.
//
// A Vector remembers whether it holds integers so that printing matches
// what a learner typed: Array(1, 2, 3) prints as [1 2 3] while Zeros(3)
// prints as [0. 0. 0.].
package arrays

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"dataguide/internal/stats"
)

// Vector is a one-dimensional numeric array
type Vector struct {
	data    []float64
	integer bool
}

// Array builds an integer vector from values
func Array(values ...int) Vector {
	data := make([]float64, len(values))
	for i, v := range values {
		data[i] = float64(v)
	}
	return Vector{data: data, integer: true}
}

// Floats builds a float vector from values
func Floats(values ...float64) Vector {
	return Vector{data: append([]float64(nil), values...)}
}

// Zeros returns n float zeros
func Zeros(n int) Vector {
	return Vector{data: make([]float64, n)}
}

// Ones returns an r×c matrix of float ones
func Ones(r, c int) *mat.Dense {
	data := make([]float64, r*c)
	for i := range data {
		data[i] = 1
	}
	return mat.NewDense(r, c, data)
}

// Arange returns integers in [start, stop) spaced by step
func Arange(start, stop, step int) Vector {
	if step == 0 {
		return Vector{integer: true}
	}
	var data []float64
	for v := start; (step > 0 && v < stop) || (step < 0 && v > stop); v += step {
		data = append(data, float64(v))
	}
	return Vector{data: data, integer: true}
}

// Linspace returns n evenly spaced floats from start to stop inclusive
func Linspace(start, stop float64, n int) Vector {
	if n <= 0 {
		return Vector{}
	}
	if n == 1 {
		return Vector{data: []float64{start}}
	}
	return Vector{data: floats.Span(make([]float64, n), start, stop)}
}

// Len is the number of elements
func (v Vector) Len() int { return len(v.data) }

// At returns element i
func (v Vector) At(i int) float64 { return v.data[i] }

// Data returns a copy of the elements
func (v Vector) Data() []float64 { return append([]float64(nil), v.data...) }

// IsInteger reports whether the vector holds integers
func (v Vector) IsInteger() bool { return v.integer }

func (v Vector) mustMatch(o Vector) {
	if len(v.data) != len(o.data) {
		panic(fmt.Sprintf("arrays: length mismatch %d != %d", len(v.data), len(o.data)))
	}
}

// Add is element-wise addition
func (v Vector) Add(o Vector) Vector {
	v.mustMatch(o)
	out := make([]float64, len(v.data))
	floats.AddTo(out, v.data, o.data)
	return Vector{data: out, integer: v.integer && o.integer}
}

// Mul is element-wise multiplication
func (v Vector) Mul(o Vector) Vector {
	v.mustMatch(o)
	out := make([]float64, len(v.data))
	floats.MulTo(out, v.data, o.data)
	return Vector{data: out, integer: v.integer && o.integer}
}

// Sqrt is the element-wise square root
func (v Vector) Sqrt() Vector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = math.Sqrt(x)
	}
	return Vector{data: out}
}

// Sum adds all elements
func (v Vector) Sum() float64 { return floats.Sum(v.data) }

// Mean is the arithmetic mean
func (v Vector) Mean() float64 { return stats.Mean(v.data) }

// Std is the population standard deviation
func (v Vector) Std() float64 { return stats.PopulationStd(v.data) }

// Min is the smallest element
func (v Vector) Min() float64 { return stats.Min(v.data) }

// Max is the largest element
func (v Vector) Max() float64 { return stats.Max(v.data) }

// ArgMax is the index of the first largest element
func (v Vector) ArgMax() int { return floats.MaxIdx(v.data) }

// ArgMin is the index of the first smallest element
func (v Vector) ArgMin() int { return floats.MinIdx(v.data) }

// String prints the vector in brackets
func (v Vector) String() string {
	return Format(v)
}
