// Package students implements the student performance project.
//
// NewAnalyzer loads a student dataset with the columns Name, Math, Science,
// English, Grade_Level and Gender (Student_ID is optional), then derives
// Total_Score, Average_Score and a five-letter Grade for every row. The
// report sections compare subjects, grade levels and genders, including a
// one-way ANOVA across grade levels and a pooled two-sample t-test between
// genders, and list top performers and students at risk.
package students
