package students

import (
	"context"
	"fmt"
	"strconv"

	"dataguide/internal/exporter"
	"dataguide/internal/table"
	"dataguide/pkg/contracts/domain"
)

// ReportName names the export directory and workbook of this report
const ReportName = "student_performance"

// Report is every text section of the student analysis
type Report struct {
	Dataset         string              `json:"dataset"`
	Students        int                 `json:"students"`
	Basic           *BasicStats         `json:"basic"`
	Subjects        *SubjectReport      `json:"subjects"`
	GradeLevels     *GroupReport        `json:"grade_levels"`
	Gender          *GroupReport        `json:"gender"`
	Distribution    *DistributionReport `json:"distribution"`
	Top             *TopReport          `json:"top"`
	AtRisk          *AtRiskReport       `json:"at_risk"`
	Recommendations []string            `json:"recommendations"`
}

// Run executes every text section in report order
func (a *Analyzer) Run(ctx context.Context) (*Report, error) {
	rep := &Report{Dataset: a.path, Students: len(a.records)}
	var err error

	if rep.Basic, err = a.BasicStatistics(ctx); err != nil {
		return nil, err
	}
	if rep.Subjects, err = a.SubjectAnalysis(ctx); err != nil {
		return nil, err
	}
	if rep.GradeLevels, err = a.GradeLevelAnalysis(ctx); err != nil {
		return nil, err
	}
	if rep.Gender, err = a.GenderAnalysis(ctx); err != nil {
		return nil, err
	}
	if rep.Distribution, err = a.GradeDistribution(ctx); err != nil {
		return nil, err
	}
	if rep.Top, err = a.TopPerformers(ctx); err != nil {
		return nil, err
	}
	if rep.AtRisk, err = a.AtRiskStudents(ctx); err != nil {
		return nil, err
	}
	if rep.Recommendations, err = a.Recommendations(ctx); err != nil {
		return nil, err
	}
	return rep, nil
}

// Sheets lays the report's tables out for export
func (r *Report) Sheets() []exporter.Sheet {
	grades := make([][]string, len(r.Distribution.Grades))
	for i, g := range r.Distribution.Grades {
		grades[i] = []string{g.Grade, strconv.Itoa(g.Count), strconv.FormatFloat(g.Percent, 'f', 2, 64)}
	}
	atRisk := make([][]string, len(r.AtRisk.Students))
	for i, s := range r.AtRisk.Students {
		atRisk[i] = []string{s.Name, strconv.FormatFloat(s.Average, 'f', 2, 64), s.GradeLevel,
			domain.FormatScore(s.Math), domain.FormatScore(s.Science), domain.FormatScore(s.English)}
	}
	return []exporter.Sheet{
		gridSheet("subjects", r.Subjects.Stats),
		gridSheet("grade_levels", r.GradeLevels.Stats),
		gridSheet("gender", r.Gender.Stats),
		{Name: "grades", Headers: []string{"Grade", "Count", "Percent"}, Rows: grades},
		gridSheet("grades_by_gender", r.Distribution.ByGender),
		{Name: "at_risk", Headers: []string{"Name", ColAverage, "Grade_Level", "Math", "Science", "English"}, Rows: atRisk},
	}
}

func gridSheet(name string, g *table.Grid) exporter.Sheet {
	header := g.Header()
	if header[0] == "" {
		header[0] = "stat"
	}
	return exporter.Sheet{Name: name, Headers: header, Rows: g.Records()}
}

// Export writes the report tables as CSV files and/or one workbook and
// returns the written paths
func (r *Report) Export(exp *exporter.ReportExporter, csv, xlsx bool) ([]string, error) {
	var written []string
	sheets := r.Sheets()
	if csv {
		paths, err := exp.ExportCSV(ReportName, sheets)
		if err != nil {
			return written, fmt.Errorf("failed to export student tables: %w", err)
		}
		written = append(written, paths...)
	}
	if xlsx {
		path, err := exp.ExportWorkbook(ReportName, sheets)
		if err != nil {
			return written, fmt.Errorf("failed to export student workbook: %w", err)
		}
		written = append(written, path)
	}
	return written, nil
}
