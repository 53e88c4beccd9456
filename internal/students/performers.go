package students

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"dataguide/internal/stats"
	"dataguide/pkg/contracts/domain"
)

// StudentScore is one student in a ranking
type StudentScore struct {
	Rank       int     `json:"rank"`
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	GradeLevel string  `json:"grade_level"`
	Grade      string  `json:"grade,omitempty"`
}

// TopReport lists the best students overall and in each subject
type TopReport struct {
	Overall   []StudentScore            `json:"overall"`
	BySubject map[string][]StudentScore `json:"by_subject"`
}

// ranking lengths
const (
	topOverall    = 5
	topPerSubject = 3
)

// TopPerformers ranks the top five averages and the top three in each subject
func (a *Analyzer) TopPerformers(ctx context.Context) (*TopReport, error) {
	res := &TopReport{BySubject: make(map[string][]StudentScore, len(domain.Subjects))}
	err := a.section(ctx, "top_performers", "TOP PERFORMERS", func() error {
		for i, r := range a.rankBy(func(r domain.StudentRecord) float64 { return r.Average() }, topOverall) {
			res.Overall = append(res.Overall, StudentScore{
				Rank:       i + 1,
				Name:       r.Name,
				Score:      r.Average(),
				GradeLevel: r.GradeLevel,
				Grade:      a.scale.Letter(r.Average()),
			})
		}

		p := a.printer
		p.Line("Top 5 Students Overall:")
		rows := make([][]string, len(res.Overall))
		for i, s := range res.Overall {
			rows[i] = []string{s.Name, fmt.Sprintf("%.6f", s.Score), s.GradeLevel, s.Grade}
		}
		p.Table([]string{"Name", ColAverage, "Grade_Level", ColGrade}, rows)

		p.Blank()
		p.Line("Top Performers by Subject:")
		for _, subject := range domain.Subjects {
			score := subjectScore(subject)
			p.Blank()
			p.Line("%s:", subject)
			for i, r := range a.rankBy(score, topPerSubject) {
				s := StudentScore{Rank: i + 1, Name: r.Name, Score: score(r), GradeLevel: r.GradeLevel}
				res.BySubject[subject] = append(res.BySubject[subject], s)
				p.Line("  %d. %s: %.0f (%s)", s.Rank, s.Name, s.Score, s.GradeLevel)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// rankBy returns the n records with the highest score. Ties keep dataset order.
func (a *Analyzer) rankBy(score func(domain.StudentRecord) float64, n int) []domain.StudentRecord {
	ranked := append([]domain.StudentRecord(nil), a.records...)
	sort.SliceStable(ranked, func(i, j int) bool { return score(ranked[i]) > score(ranked[j]) })
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

func subjectScore(subject string) func(domain.StudentRecord) float64 {
	return func(r domain.StudentRecord) float64 {
		switch subject {
		case "Math":
			return r.Math
		case "Science":
			return r.Science
		default:
			return r.English
		}
	}
}

// AtRiskStudent is a student whose average is below the threshold
type AtRiskStudent struct {
	Name       string  `json:"name"`
	Average    float64 `json:"average"`
	GradeLevel string  `json:"grade_level"`
	Math       float64 `json:"math"`
	Science    float64 `json:"science"`
	English    float64 `json:"english"`
}

// AtRiskReport lists students needing support and per-subject weaknesses
type AtRiskReport struct {
	Students   []AtRiskStudent     `json:"students"`
	Weaknesses map[string][]string `json:"weaknesses"`
}

// AtRiskStudents finds averages below 70 and, for each subject, the students
// scoring below 70 in it
func (a *Analyzer) AtRiskStudents(ctx context.Context) (*AtRiskReport, error) {
	res := &AtRiskReport{Weaknesses: make(map[string][]string)}
	err := a.section(ctx, "at_risk", "AT-RISK STUDENTS", func() error {
		for _, r := range a.records {
			if r.Average() < AtRiskThreshold {
				res.Students = append(res.Students, AtRiskStudent{
					Name:       r.Name,
					Average:    r.Average(),
					GradeLevel: r.GradeLevel,
					Math:       r.Math,
					Science:    r.Science,
					English:    r.English,
				})
			}
		}

		p := a.printer
		if len(res.Students) == 0 {
			p.Line("Great news! No students are currently at risk.")
			return nil
		}

		p.Line("Students needing support (%d students):", len(res.Students))
		rows := make([][]string, len(res.Students))
		for i, s := range res.Students {
			rows[i] = []string{s.Name, fmt.Sprintf("%.6f", s.Average), s.GradeLevel,
				domain.FormatScore(s.Math), domain.FormatScore(s.Science), domain.FormatScore(s.English)}
		}
		p.Table([]string{"Name", ColAverage, "Grade_Level", "Math", "Science", "English"}, rows)

		p.Blank()
		p.Line("Subject-specific support needed:")
		for _, subject := range domain.Subjects {
			score := subjectScore(subject)
			var weak []string
			for _, r := range a.records {
				if score(r) < AtRiskThreshold {
					weak = append(weak, r.Name)
				}
			}
			if len(weak) > 0 {
				res.Weaknesses[subject] = weak
				p.Line("%s: %s", subject, strings.Join(weak, ", "))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// levelSpreadThreshold is the standard deviation of grade level means above
// which the weakest level gets its own recommendation
const levelSpreadThreshold = 5

// Recommendations derives the action items of the report
func (a *Analyzer) Recommendations(ctx context.Context) ([]string, error) {
	var out []string
	err := a.section(ctx, "recommendations", "RECOMMENDATIONS", func() error {
		_, hardest, err := a.subjectExtremes()
		if err != nil {
			return err
		}
		out = append(out, fmt.Sprintf("1. Focus on %s improvement - it has the lowest average score (%.2f)",
			hardest.Subject, hardest.Mean))

		levels, averages, err := a.table.GroupValues("Grade_Level", ColAverage)
		if err != nil {
			return err
		}
		means := make([]float64, len(averages))
		lowest := 0
		for i, g := range averages {
			means[i] = stats.Mean(g)
			if means[i] < means[lowest] {
				lowest = i
			}
		}
		if stats.SampleStd(means) > levelSpreadThreshold {
			out = append(out, fmt.Sprintf("2. Provide additional support for %s grade students", levels[lowest].Key))
		}

		atRisk := 0
		for _, r := range a.records {
			if r.Average() < AtRiskThreshold {
				atRisk++
			}
		}
		if atRisk > 0 {
			out = append(out, fmt.Sprintf("3. Implement intervention programs for %d at-risk students", atRisk))
		}

		corr, err := a.table.Corr(domain.Subjects...)
		if err != nil {
			return err
		}
		if pair, ok := corr.StrongestPair(); ok {
			out = append(out, fmt.Sprintf("4. %s and %s are highly correlated - integrated teaching approach recommended",
				pair.A, pair.B))
		}

		out = append(out, "5. Continue monitoring student progress and adjust teaching strategies accordingly")
		for _, l := range out {
			a.printer.Line("%s", l)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
