package students

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"dataguide/internal/report"
	"dataguide/internal/stats"
	"dataguide/internal/table"
	"dataguide/pkg/contracts/domain"
)

// BasicStats is the cohort overview
type BasicStats struct {
	Students    int                `json:"students"`
	GradeLevels []string           `json:"grade_levels"`
	Gender      []table.ValueCount `json:"gender"`
	Mean        float64            `json:"mean"`
	Highest     float64            `json:"highest"`
	Lowest      float64            `json:"lowest"`
	Std         domain.Number      `json:"std"`
}

// BasicStatistics prints counts, the gender split and the spread of averages
func (a *Analyzer) BasicStatistics(ctx context.Context) (*BasicStats, error) {
	res := &BasicStats{Students: len(a.records)}
	err := a.section(ctx, "basic_statistics", "BASIC STATISTICS", func() error {
		var err error
		if res.GradeLevels, err = a.table.Unique("Grade_Level"); err != nil {
			return err
		}
		if res.Gender, err = a.table.ValueCounts("Gender"); err != nil {
			return err
		}
		avg, err := a.table.Col(ColAverage)
		if err != nil {
			return err
		}
		res.Mean, res.Highest, res.Lowest = stats.Mean(avg), stats.Max(avg), stats.Min(avg)
		res.Std = domain.Number(stats.SampleStd(avg))

		p := a.printer
		p.Line("Total students: %d", res.Students)
		p.Line("Grade levels: %s", quoteList(res.GradeLevels))
		p.Line("Gender distribution: %s", countDict(res.Gender))
		p.Blank()
		p.Line("Overall Performance:")
		p.Line("Average score across all subjects: %.2f", res.Mean)
		p.Line("Highest average score: %.2f", res.Highest)
		p.Line("Lowest average score: %.2f", res.Lowest)
		p.Line("Standard deviation: %.2f", float64(res.Std))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// SubjectMean is a subject with its mean score
type SubjectMean struct {
	Subject string  `json:"subject"`
	Mean    float64 `json:"mean"`
}

// SubjectReport describes each subject and how subjects move together
type SubjectReport struct {
	Stats        *table.Grid  `json:"stats"`
	Best         SubjectMean  `json:"best"`
	Hardest      SubjectMean  `json:"hardest"`
	Correlations stats.Matrix `json:"correlations"`
}

// SubjectAnalysis prints per-subject statistics and the correlation matrix
func (a *Analyzer) SubjectAnalysis(ctx context.Context) (*SubjectReport, error) {
	res := &SubjectReport{}
	err := a.section(ctx, "subject_analysis", "SUBJECT ANALYSIS", func() error {
		desc, err := a.table.Describe(domain.Subjects...)
		if err != nil {
			return err
		}
		res.Stats = desc.Round(2)

		if res.Best, res.Hardest, err = a.subjectExtremes(); err != nil {
			return err
		}
		if res.Correlations, err = a.table.Corr(domain.Subjects...); err != nil {
			return err
		}

		p := a.printer
		p.Line("Subject Statistics:")
		p.Grid(res.Stats)
		p.Blank()
		p.Line("Best performing subject: %s (avg: %.2f)", res.Best.Subject, res.Best.Mean)
		p.Line("Most challenging subject: %s (avg: %.2f)", res.Hardest.Subject, res.Hardest.Mean)
		p.Blank()
		p.Line("Subject Correlations:")
		p.Grid(matrixGrid(res.Correlations).Round(3))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// subjectExtremes returns the subjects with the highest and lowest mean.
// Ties go to the first subject.
func (a *Analyzer) subjectExtremes() (best, hardest SubjectMean, err error) {
	means, err := a.table.Means(domain.Subjects...)
	if err != nil {
		return best, hardest, err
	}
	for i, m := range means {
		s := SubjectMean{Subject: domain.Subjects[i], Mean: m}
		if i == 0 || m > best.Mean {
			best = s
		}
		if i == 0 || m < hardest.Mean {
			hardest = s
		}
	}
	return best, hardest, nil
}

// GroupReport compares groups of students and tests the difference
type GroupReport struct {
	Stats *table.Grid       `json:"stats"`
	Test  domain.TestResult `json:"test"`
}

// groupStats aggregates averages and subject means per key
func (a *Analyzer) groupStats(key string) (*table.Grid, error) {
	specs := []table.AggSpec{
		{Column: ColAverage, Func: table.Mean},
		{Column: ColAverage, Func: table.Std},
		{Column: ColAverage, Func: table.Count},
	}
	for _, s := range domain.Subjects {
		specs = append(specs, table.AggSpec{Column: s, Func: table.Mean})
	}
	grid, err := a.table.Aggregate(key, specs...)
	if err != nil {
		return nil, err
	}
	return grid.Round(2), nil
}

// GradeLevelAnalysis compares grade levels and runs a one-way ANOVA across them
func (a *Analyzer) GradeLevelAnalysis(ctx context.Context) (*GroupReport, error) {
	res := &GroupReport{}
	err := a.section(ctx, "grade_level_analysis", "GRADE LEVEL ANALYSIS", func() error {
		var err error
		if res.Stats, err = a.groupStats("Grade_Level"); err != nil {
			return err
		}
		p := a.printer
		p.Line("Performance by Grade Level:")
		p.Grid(res.Stats)

		_, groups, err := a.table.GroupValues("Grade_Level", ColAverage)
		if err != nil {
			return err
		}
		anova, err := stats.OneWayANOVA(groups...)
		if err != nil {
			return fmt.Errorf("grade level ANOVA: %w", err)
		}
		res.Test = domain.TestResult{
			Name:        "one-way ANOVA",
			Statistic:   domain.Number(anova.F),
			PValue:      domain.Number(anova.P),
			DF:          domain.Number(anova.DFWithin),
			Significant: stats.Significant(anova.P, a.alpha),
		}

		p.Blank()
		p.Line("ANOVA Test Results:")
		p.Line("F-statistic: %.4f", anova.F)
		p.Line("P-value: %.4f", anova.P)
		p.Line("Significant difference between grade levels: %s", stats.YesNo(res.Test.Significant))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// GenderAnalysis compares genders and runs a pooled t-test, Male against Female
func (a *Analyzer) GenderAnalysis(ctx context.Context) (*GroupReport, error) {
	res := &GroupReport{}
	err := a.section(ctx, "gender_analysis", "GENDER ANALYSIS", func() error {
		var err error
		if res.Stats, err = a.groupStats("Gender"); err != nil {
			return err
		}
		p := a.printer
		p.Line("Performance by Gender:")
		p.Grid(res.Stats)

		male, female := a.averagesOf(domain.GenderMale), a.averagesOf(domain.GenderFemale)
		tt, err := stats.TTestInd(male, female)
		if err != nil {
			return fmt.Errorf("gender t-test: %w", err)
		}
		res.Test = domain.TestResult{
			Name:        "independent t-test",
			Statistic:   domain.Number(tt.T),
			PValue:      domain.Number(tt.P),
			DF:          domain.Number(tt.DF),
			Significant: stats.Significant(tt.P, a.alpha),
		}

		p.Blank()
		p.Line("T-test Results:")
		p.Line("T-statistic: %.4f", tt.T)
		p.Line("P-value: %.4f", tt.P)
		p.Line("Significant gender difference: %s", stats.YesNo(res.Test.Significant))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// averagesOf returns the averages of one gender, in dataset order
func (a *Analyzer) averagesOf(gender string) []float64 {
	var out []float64
	for _, r := range a.records {
		if r.Gender == gender {
			out = append(out, r.Average())
		}
	}
	return out
}

// GradeShare is how many students got one letter grade
type GradeShare struct {
	Grade   string  `json:"grade"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// DistributionReport is the letter grade distribution overall and per gender
type DistributionReport struct {
	Grades   []GradeShare `json:"grades"`
	ByGender *table.Grid  `json:"by_gender"`
}

// GradeDistribution counts letter grades and splits them by gender.
// The gender table holds the percentage of each gender with each grade.
func (a *Analyzer) GradeDistribution(ctx context.Context) (*DistributionReport, error) {
	res := &DistributionReport{}
	err := a.section(ctx, "grade_distribution", "GRADE DISTRIBUTION ANALYSIS", func() error {
		counts, err := a.table.ValueCounts(ColGrade)
		if err != nil {
			return err
		}
		sort.SliceStable(counts, func(i, j int) bool { return counts[i].Value < counts[j].Value })

		p := a.printer
		p.Line("Grade Distribution:")
		for _, c := range counts {
			share := GradeShare{
				Grade:   c.Value,
				Count:   c.Count,
				Percent: stats.Round(float64(c.Count)/float64(len(a.records))*100, 2),
			}
			res.Grades = append(res.Grades, share)
			p.Line("Grade %s: %d students (%s%%)", share.Grade, share.Count, report.Float(share.Percent))
		}

		byGender, err := a.table.Crosstab(ColGrade, "Gender", true)
		if err != nil {
			return err
		}
		res.ByGender = byGender.Scale(100).Round(2)
		p.Blank()
		p.Line("Grade Distribution by Gender:")
		p.Grid(res.ByGender)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// quoteList prints values as ['a', 'b']
func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// countDict prints counts as {'a': 1, 'b': 2}
func countDict(counts []table.ValueCount) string {
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = fmt.Sprintf("'%s': %d", c.Value, c.Count)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// matrixGrid turns a correlation matrix into a printable grid
func matrixGrid(m stats.Matrix) *table.Grid {
	g := table.NewGrid("", append([]string(nil), m.Labels...), append([]string(nil), m.Labels...))
	for i := range m.Values {
		copy(g.Values[i], m.Values[i])
	}
	return g
}
