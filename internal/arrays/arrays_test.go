package arrays

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  Vector
		want string
	}{
		{"from list", Array(1, 2, 3, 4, 5), "[1 2 3 4 5]"},
		{"zeros", Zeros(5), "[0. 0. 0. 0. 0.]"},
		{"arange", Arange(0, 10, 2), "[0 2 4 6 8]"},
		{"arange descending", Arange(5, 0, -2), "[5 3 1]"},
		{"linspace", Linspace(0, 1, 5), "[0.   0.25 0.5  0.75 1.  ]"},
		{"empty", Arange(0, 0, 1), "[]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.String())
		})
	}
}

func TestOnes(t *testing.T) {
	m := Ones(3, 3)
	assert.Equal(t, "[[1. 1. 1.]\n [1. 1. 1.]\n [1. 1. 1.]]", FormatMatrix(m))
}

func TestArithmetic(t *testing.T) {
	a := Array(1, 2, 3, 4, 5)
	b := Array(10, 20, 30, 40, 50)

	assert.Equal(t, "[11 22 33 44 55]", a.Add(b).String())
	assert.Equal(t, "[ 10  40  90 160 250]", a.Mul(b).String())
	assert.Equal(t, "[1.         1.41421356 1.73205081 2.         2.23606798]", a.Sqrt().String())
	assert.Equal(t, "3.0", FormatScalar(a.Mean()))
	assert.Equal(t, "1.4142135623730951", FormatScalar(a.Std()))
	assert.False(t, a.Sqrt().IsInteger())

	assert.Panics(t, func() { a.Add(Array(1)) })
}

func TestReductions(t *testing.T) {
	temps := Array(22, 25, 28, 30, 27, 24, 21)

	assert.Equal(t, 3, temps.ArgMax())
	assert.Equal(t, 6, temps.ArgMin())
	assert.Equal(t, 30.0, temps.Max())
	assert.Equal(t, 21.0, temps.Min())
	assert.InDelta(t, 25.2857, temps.Mean(), 1e-4)
	assert.Equal(t, 177.0, temps.Sum())
	assert.True(t, math.IsNaN(Floats().Mean()))
}
