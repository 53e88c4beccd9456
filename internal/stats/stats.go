package stats

import (
	"encoding/json"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean, NaN for no values
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return stat.Mean(xs, nil)
}

// SampleStd is the standard deviation with n-1 in the denominator
func SampleStd(xs []float64) float64 {
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.StdDev(xs, nil)
}

// PopulationStd is the standard deviation with n in the denominator
func PopulationStd(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return math.Sqrt(stat.PopVariance(xs, nil))
}

// Sum adds up xs
func Sum(xs []float64) float64 {
	return floats.Sum(xs)
}

// Min returns the smallest value, NaN for no values
func Min(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return floats.Min(xs)
}

// Max returns the largest value, NaN for no values
func Max(xs []float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return floats.Max(xs)
}

// Quantile returns the p-quantile of xs, interpolating linearly between
// the closest ranks: h = (n-1)p.
func Quantile(xs []float64, p float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return quantileSorted(sorted, p)
}

func quantileSorted(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	hi := math.Ceil(h)
	if lo == hi {
		return sorted[int(lo)]
	}
	return sorted[int(lo)] + (h-lo)*(sorted[int(hi)]-sorted[int(lo)])
}

// Summary is the count/mean/std/min/quartiles/max block of a column
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// SummaryRowNames labels the rows of a describe table in Values order
var SummaryRowNames = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// Describe computes the Summary of xs
func Describe(xs []float64) Summary {
	if len(xs) == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, Std: nan, Min: nan, Q25: nan, Median: nan, Q75: nan, Max: nan}
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return Summary{
		Count:  len(xs),
		Mean:   Mean(xs),
		Std:    SampleStd(xs),
		Min:    sorted[0],
		Q25:    quantileSorted(sorted, 0.25),
		Median: quantileSorted(sorted, 0.5),
		Q75:    quantileSorted(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

// Values returns the summary in SummaryRowNames order
func (s Summary) Values() []float64 {
	return []float64{float64(s.Count), s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max}
}

// Matrix is a labelled square matrix, used for correlation tables
type Matrix struct {
	Labels []string    `json:"labels"`
	Values [][]float64 `json:"values"`
}

// At returns the value at row i, column j
func (m Matrix) At(i, j int) float64 {
	return m.Values[i][j]
}

// MarshalJSON writes undefined correlations, such as those of a constant
// column, as null
func (m Matrix) MarshalJSON() ([]byte, error) {
	values := make([][]*float64, len(m.Values))
	for i, row := range m.Values {
		values[i] = make([]*float64, len(row))
		for j := range row {
			if v := row[j]; !math.IsNaN(v) && !math.IsInf(v, 0) {
				values[i][j] = &v
			}
		}
	}
	return json.Marshal(struct {
		Labels []string     `json:"labels"`
		Values [][]*float64 `json:"values"`
	}{m.Labels, values})
}

// Pair is an unordered pair of labels with a value
type Pair struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Value float64 `json:"value"`
}

// StrongestPair returns the off-diagonal pair with the highest value.
// Ties keep the first pair in row-major order. NaN values are skipped.
func (m Matrix) StrongestPair() (Pair, bool) {
	var best Pair
	found := false
	for i := range m.Labels {
		for j := i + 1; j < len(m.Labels); j++ {
			v := m.Values[i][j]
			if math.IsNaN(v) {
				continue
			}
			if !found || v > best.Value {
				best = Pair{A: m.Labels[i], B: m.Labels[j], Value: v}
				found = true
			}
		}
	}
	return best, found
}

// CorrMatrix computes the Pearson correlation matrix of equally long columns
func CorrMatrix(labels []string, cols [][]float64) Matrix {
	k := len(cols)
	out := Matrix{Labels: labels, Values: make([][]float64, k)}
	if k == 0 {
		return out
	}
	n := len(cols[0])
	data := mat.NewDense(n, k, nil)
	for j, col := range cols {
		data.SetCol(j, col)
	}

	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, data, nil)

	for i := 0; i < k; i++ {
		out.Values[i] = make([]float64, k)
		for j := 0; j < k; j++ {
			out.Values[i][j] = corr.At(i, j)
		}
	}
	return out
}

// Correlation is the Pearson correlation of x and y
func Correlation(x, y []float64) float64 {
	return stat.Correlation(x, y, nil)
}

// Round rounds x to places decimals, halves to even
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	pow := math.Pow(10, float64(places))
	return math.RoundToEven(x*pow) / pow
}

// Significant reports whether p is below alpha
func Significant(p, alpha float64) bool {
	return p < alpha
}

// YesNo renders a significance decision the way the reports print it
func YesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
