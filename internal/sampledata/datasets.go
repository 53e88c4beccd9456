package sampledata

import (
	"math"

	"dataguide/pkg/contracts/domain"
)

// Names used for generated datasets
var (
	SalesProducts = []string{"Laptop", "Phone", "Tablet", "Monitor", "Headphones"}
	Salespeople   = []string{"Alice Johnson", "Bob Smith", "Carol White", "David Brown", "Eva Green"}
	firstNames    = []string{"Liam", "Olivia", "Noah", "Emma", "Ava", "Ethan", "Mia", "Lucas", "Zoe", "Mason", "Aria", "Logan"}
	lastNames     = []string{"Smith", "Jones", "Garcia", "Miller", "Davis", "Lopez", "Wilson", "Moore", "Clark", "Hall"}
)

// productPrice is the typical ticket for each product
var productPrice = map[string]float64{
	"Laptop":     1200,
	"Phone":      800,
	"Tablet":     500,
	"Monitor":    300,
	"Headphones": 150,
}

// SalesRecords generates n transactions spread over days consecutive days
func (g *Generator) SalesRecords(n, days int) []domain.SaleRecord {
	if days < 1 {
		days = 1
	}
	dates := DateRange(Jan1, days)
	out := make([]domain.SaleRecord, n)
	for i := range out {
		product := SalesProducts[g.rng.Intn(len(SalesProducts))]
		qty := 1 + g.rng.Intn(5)
		price := productPrice[product] * (0.85 + 0.3*g.rng.Float64())
		out[i] = domain.SaleRecord{
			Date:        dates[i*days/n],
			Product:     product,
			Sales:       math.Round(price*float64(qty)*100) / 100,
			Region:      FourRegions[g.rng.Intn(len(FourRegions))],
			Salesperson: Salespeople[g.rng.Intn(len(Salespeople))],
		}
	}
	return out
}

// StudentRecords generates n students. Scores are centred on a per-student
// ability so subjects correlate, and clipped to 0..100.
func (g *Generator) StudentRecords(n int) []domain.StudentRecord {
	out := make([]domain.StudentRecord, n)
	for i := range out {
		level := GradeLevels[g.rng.Intn(len(GradeLevels))]
		ability := 76 + 9*g.rng.NormFloat64()
		gender := domain.GenderMale
		if g.rng.Intn(2) == 1 {
			gender = domain.GenderFemale
		}
		out[i] = domain.StudentRecord{
			StudentID:  i + 1,
			Name:       firstNames[g.rng.Intn(len(firstNames))] + " " + lastNames[g.rng.Intn(len(lastNames))],
			Math:       g.score(ability - 1),
			Science:    g.score(ability + 1),
			English:    g.score(ability + 2),
			GradeLevel: level,
			Gender:     gender,
		}
	}
	return out
}

func (g *Generator) score(center float64) float64 {
	s := math.Round(center + 6*g.rng.NormFloat64())
	return math.Max(0, math.Min(100, s))
}
