// Package grading maps average scores to letter grades.
//
// Two scales are in use. The project analyzer uses FiveLetter (A through F),
// the table lessons use FourLetter where everything below 70 is a D.
package grading

// Threshold is the inclusive lower bound of a letter grade
type Threshold struct {
	Min    float64
	Letter string
}

// Scale is an ordered list of thresholds, highest first, plus the letter
// given to anything below the last threshold.
type Scale struct {
	Name       string
	Thresholds []Threshold
	Fallback   string
}

var (
	// FiveLetter is the A/B/C/D/F scale (90/80/70/60)
	FiveLetter = Scale{
		Name: "five-letter",
		Thresholds: []Threshold{
			{Min: 90, Letter: "A"},
			{Min: 80, Letter: "B"},
			{Min: 70, Letter: "C"},
			{Min: 60, Letter: "D"},
		},
		Fallback: "F",
	}

	// FourLetter is the A/B/C/D scale (90/80/70)
	FourLetter = Scale{
		Name: "four-letter",
		Thresholds: []Threshold{
			{Min: 90, Letter: "A"},
			{Min: 80, Letter: "B"},
			{Min: 70, Letter: "C"},
		},
		Fallback: "D",
	}
)

// Letter returns the letter grade for avg
func (s Scale) Letter(avg float64) string {
	for _, t := range s.Thresholds {
		if avg >= t.Min {
			return t.Letter
		}
	}
	return s.Fallback
}

// Letters returns every letter of the scale, best first
func (s Scale) Letters() []string {
	out := make([]string, 0, len(s.Thresholds)+1)
	for _, t := range s.Thresholds {
		out = append(out, t.Letter)
	}
	return append(out, s.Fallback)
}

// Rank returns the position of letter in the scale (0 is best), or -1
func (s Scale) Rank(letter string) int {
	for i, l := range s.Letters() {
		if l == letter {
			return i
		}
	}
	return -1
}

// Apply grades every average
func (s Scale) Apply(avgs []float64) []string {
	out := make([]string, len(avgs))
	for i, a := range avgs {
		out[i] = s.Letter(a)
	}
	return out
}
