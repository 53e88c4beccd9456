package students

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataguide/internal/config"
	apierrors "dataguide/internal/errors"
	"dataguide/internal/exporter"
	"dataguide/internal/report"
	"dataguide/internal/stats"
	"dataguide/pkg/contracts/domain"
)

const studentsCSV = `Student_ID,Name,Math,Science,English,Grade_Level,Gender
1,Ann,95,92,91,10th,Female
2,Ben,85,80,84,10th,Male
3,Cat,72,75,70,9th,Female
4,Dan,60,65,58,9th,Male
5,Eve,50,55,52,9th,Female
6,Fay,88,90,86,10th,Female
7,Gus,78,70,75,9th,Male
8,Hal,91,89,94,10th,Male
`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "student_grades.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func load(t *testing.T, content string) (*Analyzer, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	a, err := NewAnalyzer(context.Background(), writeDataset(t, content),
		WithPrinter(report.NewPrinter(&out, false)))
	require.NoError(t, err)
	return a, &out
}

func TestDerivedColumns(t *testing.T) {
	a, out := load(t, studentsCSV)
	assert.Equal(t, "Loaded data for 8 students\n", out.String())

	tbl := a.Table()
	scores, err := tbl.Cols(domain.Subjects...)
	require.NoError(t, err)
	total, err := tbl.Col(ColTotal)
	require.NoError(t, err)
	average, err := tbl.Col(ColAverage)
	require.NoError(t, err)
	grades, err := tbl.Strings(ColGrade)
	require.NoError(t, err)

	for i := range total {
		assert.Equal(t, scores[0][i]+scores[1][i]+scores[2][i], total[i])
		assert.InDelta(t, total[i]/3, average[i], 1e-12)
		assert.Equal(t, a.scale.Letter(average[i]), grades[i])
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "F", "B", "C", "A"}, grades)
}

func TestNewAnalyzerErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"missing column", "Name,Math,Science,English,Grade_Level\nAnn,1,2,3,9th\n", apierrors.ErrMissingColumn},
		{"score out of range", "Name,Math,Science,English,Grade_Level,Gender\nAnn,101,2,3,9th,Male\n", apierrors.ErrInvalidRecord},
		{"score not a number", "Name,Math,Science,English,Grade_Level,Gender\nAnn,ninety,2,3,9th,Male\n", apierrors.ErrInvalidRecord},
		{"missing gender", "Name,Math,Science,English,Grade_Level,Gender\nAnn,90,2,3,9th,\n", apierrors.ErrInvalidRecord},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnalyzer(context.Background(), writeDataset(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}

	_, err := NewAnalyzer(context.Background(), filepath.Join(t.TempDir(), "none.csv"))
	assert.True(t, errors.Is(err, apierrors.ErrMissingFile))
}

func TestFractionalScoresAndOtherGenders(t *testing.T) {
	a, out := load(t, `Name,Math,Science,English,Grade_Level,Gender
Ann,95.5,90,91,10th,Female
Ben,85,80.25,84,10th,Male
Cat,72,75,70,9th,Female
Dan,60,65,58.5,9th,Male
Eli,66,68,62,9th,Other
`)
	require.Len(t, a.Records(), 5)
	assert.Equal(t, 95.5, a.Records()[0].Math)
	assert.InDelta(t, (95.5+90+91)/3, a.Records()[0].Average(), 1e-12)
	assert.Equal(t, []string{"Ann", "95.5", "90", "91", "10th", "Female"}, a.Records()[0].Row()[1:])

	total, err := a.Table().Col(ColTotal)
	require.NoError(t, err)
	assert.Equal(t, 249.25, total[1])

	basic, err := a.BasicStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, basic.Students)
	assert.Contains(t, out.String(), "'Other': 1")

	gender, err := a.GenderAnalysis(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Female", "Male", "Other"}, gender.Stats.Rows)
	// the t-test compares Male and Female only: 2 + 2 - 2
	assert.Equal(t, domain.Number(2), gender.Test.DF)

	atRisk, err := a.AtRiskStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, atRisk.Students, 2)
	assert.Equal(t, 58.5, atRisk.Students[0].English)
	assert.Contains(t, out.String(), "58.5")
}

func TestRunJSONWithConstantSubject(t *testing.T) {
	a, _ := load(t, `Name,Math,Science,English,Grade_Level,Gender
Ann,80,92,91,10th,Female
Ben,80,80,84,10th,Male
Cat,80,75,70,9th,Female
Dan,80,65,58,9th,Male
`)
	rep, err := a.Run(context.Background())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(rep.Subjects.Correlations.At(0, 1)))
	assert.Contains(t, rep.Recommendations, "4. Science and English are highly correlated - integrated teaching approach recommended")

	data, err := json.Marshal(rep)
	require.NoError(t, err)

	var decoded struct {
		Subjects struct {
			Correlations struct {
				Values [][]*float64 `json:"values"`
			} `json:"correlations"`
		} `json:"subjects"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	values := decoded.Subjects.Correlations.Values
	require.Len(t, values, 3)
	assert.Nil(t, values[0][1])
	require.NotNil(t, values[1][2])
	assert.InDelta(t, rep.Subjects.Correlations.At(1, 2), *values[1][2], 1e-12)
}

func TestOptionalStudentID(t *testing.T) {
	a, _ := load(t, "Name,Math,Science,English,Grade_Level,Gender\nAnn,90,80,70,9th,Female\nBen,60,70,80,10th,Male\n")
	assert.Equal(t, 1, a.Records()[0].StudentID)
	assert.Equal(t, 2, a.Records()[1].StudentID)
}

func TestBasicStatistics(t *testing.T) {
	a, out := load(t, studentsCSV)
	res, err := a.BasicStatistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8, res.Students)
	assert.Equal(t, []string{"10th", "9th"}, res.GradeLevels)
	assert.InDelta(t, 92.6667, res.Highest, 1e-4)

	text := out.String()
	assert.Contains(t, text, "Grade levels: ['10th', '9th']")
	assert.Contains(t, text, "Gender distribution: {'Female': 4, 'Male': 4}")
	assert.Contains(t, text, "Lowest average score: 52.33")
}

func TestNumericGradeLevels(t *testing.T) {
	a, out := load(t, `Name,Math,Science,English,Grade_Level,Gender
Ann,95,92,91,10,Female
Ben,85,80,84,9,Male
Cat,72,75,70,10,Female
Dan,60,65,58,9,Male
`)
	res, err := a.BasicStatistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"9", "10"}, res.GradeLevels)
	assert.Contains(t, out.String(), "Grade levels: ['9', '10']")

	levels, err := a.GradeLevelAnalysis(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"9", "10"}, levels.Stats.Rows)
}

func TestSubjectAnalysis(t *testing.T) {
	a, out := load(t, studentsCSV)
	res, err := a.SubjectAnalysis(context.Background())
	require.NoError(t, err)

	assert.Equal(t, SubjectMean{Subject: "Math", Mean: 77.375}, res.Best)
	assert.Equal(t, SubjectMean{Subject: "English", Mean: 76.25}, res.Hardest)
	assert.Equal(t, 8.0, res.Stats.At("count", "Math"))
	assert.InDelta(t, 1.0, res.Correlations.At(1, 1), 1e-12)

	assert.Contains(t, out.String(), "Best performing subject: Math (avg: 77.38)")
	assert.Contains(t, out.String(), "Most challenging subject: English (avg: 76.25)")
}

func TestGradeLevelAnalysis(t *testing.T) {
	a, out := load(t, studentsCSV)
	res, err := a.GradeLevelAnalysis(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 88.75, res.Stats.At("10th", "Average_Score_mean"))
	assert.Equal(t, 65.0, res.Stats.At("9th", "Average_Score_mean"))
	assert.Equal(t, 4.0, res.Stats.At("9th", "Average_Score_count"))
	assert.True(t, res.Test.Significant)

	// With two groups F is the square of the pooled t statistic
	_, groups, err := a.Table().GroupValues("Grade_Level", ColAverage)
	require.NoError(t, err)
	tt, err := stats.TTestInd(groups[0], groups[1])
	require.NoError(t, err)
	assert.InDelta(t, tt.T*tt.T, float64(res.Test.Statistic), 1e-9)
	assert.InDelta(t, tt.P, float64(res.Test.PValue), 1e-9)

	assert.Contains(t, out.String(), "Significant difference between grade levels: Yes")
}

func TestGradeLevelAnalysisSingleLevel(t *testing.T) {
	a, _ := load(t, "Name,Math,Science,English,Grade_Level,Gender\nAnn,90,80,70,9th,Female\nBen,60,70,80,9th,Male\n")
	_, err := a.GradeLevelAnalysis(context.Background())
	assert.True(t, errors.Is(err, apierrors.ErrInsufficientGroups))
}

func TestGenderAnalysis(t *testing.T) {
	a, out := load(t, studentsCSV)
	res, err := a.GenderAnalysis(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Female", "Male"}, res.Stats.Rows)
	assert.False(t, res.Test.Significant)
	assert.Equal(t, domain.Number(6), res.Test.DF)
	assert.Contains(t, out.String(), "Significant gender difference: No")
}

func TestGenderAnalysisOneGender(t *testing.T) {
	a, _ := load(t, "Name,Math,Science,English,Grade_Level,Gender\nAnn,90,80,70,9th,Female\nBea,60,70,80,10th,Female\n")
	_, err := a.GenderAnalysis(context.Background())
	assert.True(t, errors.Is(err, apierrors.ErrEmptyGroup))
}

func TestGradeDistribution(t *testing.T) {
	a, out := load(t, studentsCSV)
	res, err := a.GradeDistribution(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Grades, 5)
	assert.Equal(t, GradeShare{Grade: "A", Count: 2, Percent: 25}, res.Grades[0])
	assert.Equal(t, GradeShare{Grade: "F", Count: 1, Percent: 12.5}, res.Grades[4])

	// Each gender column sums to 100 percent
	for _, g := range res.ByGender.Columns {
		assert.InDelta(t, 100, stats.Sum(res.ByGender.Col(g)), 0.05)
	}
	assert.Equal(t, 25.0, res.ByGender.At("F", "Female"))

	assert.Contains(t, out.String(), "Grade A: 2 students (25.0%)")
	assert.Contains(t, out.String(), "Grade D: 1 students (12.5%)")
}

func TestTopPerformers(t *testing.T) {
	a, out := load(t, studentsCSV)
	res, err := a.TopPerformers(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Overall, 5)
	names := make([]string, len(res.Overall))
	for i, s := range res.Overall {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"Ann", "Hal", "Fay", "Ben", "Gus"}, names)
	assert.Equal(t, "A", res.Overall[0].Grade)

	require.Len(t, res.BySubject["Math"], 3)
	assert.Equal(t, StudentScore{Rank: 1, Name: "Ann", Score: 95, GradeLevel: "10th"}, res.BySubject["Math"][0])
	assert.Contains(t, out.String(), "  1. Hal: 94 (10th)")
}

func TestAtRiskStudents(t *testing.T) {
	a, out := load(t, studentsCSV)
	res, err := a.AtRiskStudents(context.Background())
	require.NoError(t, err)

	require.Len(t, res.Students, 2)
	assert.Equal(t, "Dan", res.Students[0].Name)
	assert.Equal(t, []string{"Dan", "Eve"}, res.Weaknesses["Math"])
	assert.Contains(t, out.String(), "Students needing support (2 students):")
	assert.Contains(t, out.String(), "English: Dan, Eve")
}

func TestAtRiskStudentsNone(t *testing.T) {
	a, out := load(t, "Name,Math,Science,English,Grade_Level,Gender\nAnn,90,80,70,9th,Female\nBen,80,90,80,10th,Male\n")
	res, err := a.AtRiskStudents(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Students)
	assert.Contains(t, out.String(), "Great news! No students are currently at risk.")

	recs, err := a.Recommendations(context.Background())
	require.NoError(t, err)
	for _, r := range recs {
		assert.False(t, strings.HasPrefix(r, "3."), r)
	}
}

func TestRecommendations(t *testing.T) {
	a, _ := load(t, studentsCSV)
	recs, err := a.Recommendations(context.Background())
	require.NoError(t, err)

	require.Len(t, recs, 5)
	assert.Equal(t, "1. Focus on English improvement - it has the lowest average score (76.25)", recs[0])
	assert.Equal(t, "2. Provide additional support for 9th grade students", recs[1])
	assert.Equal(t, "3. Implement intervention programs for 2 at-risk students", recs[2])
	assert.True(t, strings.HasPrefix(recs[3], "4. "))
	assert.True(t, strings.HasSuffix(recs[3], "are highly correlated - integrated teaching approach recommended"))
	assert.Equal(t, "5. Continue monitoring student progress and adjust teaching strategies accordingly", recs[4])
}

func TestRunExportAndCharts(t *testing.T) {
	a, out := load(t, studentsCSV)
	rep, err := a.Run(context.Background())
	require.NoError(t, err)

	data, err := json.Marshal(rep)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"recommendations"`)

	paths := config.ResolvePaths(t.TempDir(), config.Default().Paths)
	written, err := rep.Export(exporter.NewReportExporter(paths), true, true)
	require.NoError(t, err)
	assert.Len(t, written, 7)

	require.NoError(t, os.MkdirAll(paths.ProjectsDir, 0755))
	require.NoError(t, a.CreateVisualizations(context.Background(), paths.StudentReportPNG, 40))
	info, err := os.Stat(paths.StudentReportPNG)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.Contains(t, out.String(), "Visualizations saved as 'student_performance_report.png'")
}

func TestNumberJSON(t *testing.T) {
	data, err := json.Marshal(domain.TestResult{Statistic: domain.Number(math.NaN()), PValue: 0.5})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"statistic":null`)
	assert.Contains(t, string(data), `"p_value":0.5`)
}
