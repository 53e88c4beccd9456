package lessons

import (
	"context"

	"dataguide/internal/arrays"
)

// ArrayLessons are run by the arraybasics program, in this order
var ArrayLessons = []Lesson{
	{Name: "array_creation", Run: ArrayCreation},
	{Name: "mathematical_operations", Run: MathematicalOperations},
	{Name: "temperature_analysis", Run: TemperatureAnalysis},
}

// ArrayCreation shows the ways of building an array
func ArrayCreation(_ context.Context, env *Env) error {
	p := env.Printer
	p.Section("Array Creation Examples")

	p.Line("From list: %s", arrays.Array(1, 2, 3, 4, 5))
	p.Line("Zeros: %s", arrays.Zeros(5))
	p.Line("Ones:\n%s", arrays.FormatMatrix(arrays.Ones(3, 3)))
	p.Line("Range: %s", arrays.Arange(0, 10, 2))
	p.Line("Linspace: %s", arrays.Linspace(0, 1, 5))
	return nil
}

// MathematicalOperations shows element-wise arithmetic and reductions
func MathematicalOperations(_ context.Context, env *Env) error {
	p := env.Printer
	p.Section("Mathematical Operations")

	a := arrays.Array(1, 2, 3, 4, 5)
	b := arrays.Array(10, 20, 30, 40, 50)

	p.Line("Addition: %s", a.Add(b))
	p.Line("Multiplication: %s", a.Mul(b))
	p.Line("Square root: %s", a.Sqrt())
	p.Line("Mean: %s", arrays.FormatScalar(a.Mean()))
	p.Line("Standard deviation: %s", arrays.FormatScalar(a.Std()))
	return nil
}

// weekDays label the temperature readings
var weekDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// TemperatureAnalysis summarises a week of readings in Celsius
func TemperatureAnalysis(_ context.Context, env *Env) error {
	p := env.Printer
	p.Section("Real-World Example: Temperature Analysis")

	temps := arrays.Array(22, 25, 28, 30, 27, 24, 21)
	maxTemp, minTemp := temps.Max(), temps.Min()

	p.Line("Average temperature: %.1f°C", temps.Mean())
	p.Line("Hottest day: %s (%.0f°C)", weekDays[temps.ArgMax()], maxTemp)
	p.Line("Coldest temperature: %.0f°C", minTemp)
	p.Line("Temperature range: %.0f°C", maxTemp-minTemp)
	return nil
}
