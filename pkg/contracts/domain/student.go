package domain

import "strconv"

// Subjects are the scored subjects, in report order
var Subjects = []string{"Math", "Science", "English"}

// StudentColumns is the header of a student dataset, in file order
var StudentColumns = []string{"Student_ID", "Name", "Math", "Science", "English", "Grade_Level", "Gender"}

// Gender values used by the student datasets
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// StudentRecord is one student's scores
type StudentRecord struct {
	StudentID  int     `json:"student_id" csv:"Student_ID" validate:"gte=1"`
	Name       string  `json:"name" csv:"Name" validate:"required"`
	Math       float64 `json:"math" csv:"Math" validate:"gte=0,lte=100"`
	Science    float64 `json:"science" csv:"Science" validate:"gte=0,lte=100"`
	English    float64 `json:"english" csv:"English" validate:"gte=0,lte=100"`
	GradeLevel string  `json:"grade_level" csv:"Grade_Level" validate:"required"`

	// Any value is accepted; only Male and Female are compared.
	Gender string `json:"gender" csv:"Gender" validate:"required"`
}

// Total is the sum of the three subject scores
func (r StudentRecord) Total() float64 {
	return r.Math + r.Science + r.English
}

// Average is Total divided by the number of subjects
func (r StudentRecord) Average() float64 {
	return r.Total() / float64(len(Subjects))
}

// Row renders the record in StudentColumns order
func (r StudentRecord) Row() []string {
	return []string{
		strconv.Itoa(r.StudentID),
		r.Name,
		FormatScore(r.Math),
		FormatScore(r.Science),
		FormatScore(r.English),
		r.GradeLevel,
		r.Gender,
	}
}

// FormatScore writes a score without trailing zeros, 85 or 92.5
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
