package students

import (
	"context"
	"fmt"
	"path/filepath"

	"dataguide/internal/charts"
	"dataguide/internal/table"
	"dataguide/pkg/contracts/domain"
)

// Report figure size in inches
const (
	chartWidth  = 15
	chartHeight = 18
)

// histogramBins is the bin count of the average score histogram
const histogramBins = 15

// CreateVisualizations renders the 3×2 report figure to path.
// The directory of path must already exist.
func (a *Analyzer) CreateVisualizations(ctx context.Context, path string, dpi int) error {
	return a.section(ctx, "visualizations", "CREATING VISUALIZATIONS", func() error {
		fig, err := a.Figure(dpi)
		if err != nil {
			return err
		}
		if err := fig.SavePNG(path); err != nil {
			return err
		}
		a.metrics.ChartRendered("student_performance_report")
		a.printer.Line("Visualizations saved as '%s'", filepath.Base(path))
		return nil
	})
}

// Figure builds the six report panels
func (a *Analyzer) Figure(dpi int) (*charts.Figure, error) {
	fig := charts.NewFigure(3, 2, chartWidth, chartHeight, dpi)

	scores, err := a.table.Cols(domain.Subjects...)
	if err != nil {
		return nil, err
	}
	box, err := charts.BoxPlot(charts.Options{Title: "Subject Performance Distribution", YLabel: "Scores"},
		domain.Subjects, scores)
	if err != nil {
		return nil, err
	}
	fig.Set(0, 0, box)

	grades, err := a.table.ValueCounts(ColGrade)
	if err != nil {
		return nil, err
	}
	byLetter := make(map[string]float64, len(grades))
	for _, g := range grades {
		byLetter[g.Value] = float64(g.Count)
	}
	var letters []string
	var counts []float64
	for _, l := range a.scale.Letters() {
		if c, ok := byLetter[l]; ok {
			letters = append(letters, l)
			counts = append(counts, c)
		}
	}
	gradeBars, err := charts.Bar(charts.Options{Title: "Grade Distribution", XLabel: "Letter Grade", YLabel: "Number of Students"},
		letters, counts, charts.SkyBlue)
	if err != nil {
		return nil, err
	}
	fig.Set(0, 1, gradeBars)

	levels, err := a.table.Aggregate("Grade_Level", table.AggSpec{Column: ColAverage, Func: table.Mean, Name: "Average"})
	if err != nil {
		return nil, err
	}
	levelBars, err := charts.Bar(charts.Options{Title: "Average Performance by Grade Level", XLabel: "Grade Level", YLabel: "Average Score"},
		levels.Rows, levels.Col("Average"), charts.LightGreen)
	if err != nil {
		return nil, err
	}
	fig.Set(1, 0, levelBars)

	gender, err := a.genderSubjectMeans()
	if err != nil {
		return nil, err
	}
	genderBars, err := charts.GroupedBar(charts.Options{Title: "Performance by Gender and Subject", XLabel: "Subjects", YLabel: "Average Score", Legend: true},
		domain.Subjects, gender...)
	if err != nil {
		return nil, err
	}
	fig.Set(1, 1, genderBars)

	corr, err := a.table.Corr(append(append([]string(nil), domain.Subjects...), ColAverage)...)
	if err != nil {
		return nil, err
	}
	heat, err := charts.HeatMap(charts.Options{Title: "Subject Correlation Matrix"}, corr, true, true)
	if err != nil {
		return nil, err
	}
	fig.Set(2, 0, heat)

	avg, err := a.table.Col(ColAverage)
	if err != nil {
		return nil, err
	}
	hist, err := charts.Histogram(charts.Options{Title: "Distribution of Average Scores", XLabel: "Average Score", YLabel: "Number of Students", Legend: true},
		avg, histogramBins, charts.Orange, true)
	if err != nil {
		return nil, err
	}
	fig.Set(2, 1, hist)
	return fig, nil
}

// genderSubjectMeans returns Male then Female subject means
func (a *Analyzer) genderSubjectMeans() ([]charts.BarGroup, error) {
	var out []charts.BarGroup
	for _, g := range []string{domain.GenderMale, domain.GenderFemale} {
		sub, err := a.table.Filter("Gender", table.Eq, g)
		if err != nil {
			return nil, err
		}
		if sub.Nrow() == 0 {
			return nil, fmt.Errorf("no %s students to chart", g)
		}
		means, err := sub.Means(domain.Subjects...)
		if err != nil {
			return nil, err
		}
		out = append(out, charts.BarGroup{Name: g, Values: means})
	}
	return out, nil
}
