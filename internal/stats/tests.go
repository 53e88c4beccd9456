package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	apierrors "dataguide/internal/errors"
)

// ANOVAResult is the outcome of a one-way analysis of variance
type ANOVAResult struct {
	F         float64 `json:"f_statistic"`
	P         float64 `json:"p_value"`
	DFBetween float64 `json:"df_between"`
	DFWithin  float64 `json:"df_within"`
}

// OneWayANOVA tests whether the group means differ.
// It needs at least two groups of at least two observations each.
func OneWayANOVA(groups ...[]float64) (ANOVAResult, error) {
	if len(groups) < 2 {
		return ANOVAResult{}, apierrors.InsufficientGroups(len(groups), 2)
	}

	var all []float64
	for i, g := range groups {
		if len(g) < 2 {
			return ANOVAResult{}, apierrors.EmptyGroup(fmt.Sprintf("#%d", i+1), len(g), 2)
		}
		all = append(all, g...)
	}

	grand := stat.Mean(all, nil)
	var ssb, ssw float64
	for _, g := range groups {
		m := stat.Mean(g, nil)
		ssb += float64(len(g)) * (m - grand) * (m - grand)
		for _, x := range g {
			ssw += (x - m) * (x - m)
		}
	}

	k := float64(len(groups))
	n := float64(len(all))
	res := ANOVAResult{DFBetween: k - 1, DFWithin: n - k}

	switch {
	case ssw == 0 && ssb == 0:
		res.F, res.P = math.NaN(), math.NaN()
	case ssw == 0:
		res.F, res.P = math.Inf(1), 0
	default:
		res.F = (ssb / res.DFBetween) / (ssw / res.DFWithin)
		res.P = distuv.F{D1: res.DFBetween, D2: res.DFWithin}.Survival(res.F)
	}
	return res, nil
}

// TTestResult is the outcome of an independent two-sample t-test
type TTestResult struct {
	T  float64 `json:"t_statistic"`
	P  float64 `json:"p_value"`
	DF float64 `json:"df"`
}

// TTestInd runs a two-sided t-test assuming equal variances (pooled).
// Both samples must be non-empty and together hold at least three values.
func TTestInd(a, b []float64) (TTestResult, error) {
	if len(a) == 0 {
		return TTestResult{}, apierrors.EmptyGroup("first sample", 0, 1)
	}
	if len(b) == 0 {
		return TTestResult{}, apierrors.EmptyGroup("second sample", 0, 1)
	}
	na, nb := float64(len(a)), float64(len(b))
	df := na + nb - 2
	if df < 1 {
		return TTestResult{}, apierrors.EmptyGroup("pooled samples", len(a)+len(b), 3)
	}

	ma, va := stat.MeanVariance(a, nil)
	mb, vb := stat.MeanVariance(b, nil)
	if len(a) == 1 {
		va = 0
	}
	if len(b) == 1 {
		vb = 0
	}

	pooled := ((na-1)*va + (nb-1)*vb) / df
	se := math.Sqrt(pooled * (1/na + 1/nb))
	res := TTestResult{DF: df}

	switch {
	case se == 0 && ma == mb:
		res.T, res.P = math.NaN(), math.NaN()
	case se == 0:
		res.T, res.P = math.Copysign(math.Inf(1), ma-mb), 0
	default:
		res.T = (ma - mb) / se
		dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
		res.P = 2 * dist.Survival(math.Abs(res.T))
	}
	return res, nil
}
