package lessons

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"dataguide/internal/charts"
	"dataguide/internal/config"
	"dataguide/internal/sampledata"
	"dataguide/internal/table"
)

// Dashboard is one chart lesson: a figure built from its own seeded data
type Dashboard struct {
	Name  string
	Title string
	Path  func(p *config.Paths) string
	Build func(g *sampledata.Generator, dpi int) (*charts.Figure, error)
}

// Dashboards are rendered by the charts program, and printed in this order
var Dashboards = []Dashboard{
	{
		Name:  "basic_plots",
		Title: "Creating Basic Plots",
		Path:  func(p *config.Paths) string { return p.BasicPlotsPNG },
		Build: BasicPlots,
	},
	{
		Name:  "pandas_plots",
		Title: "Pandas Visualization",
		Path:  func(p *config.Paths) string { return p.PandasPlotsPNG },
		Build: PandasPlots,
	},
	{
		Name:  "advanced_plots",
		Title: "Advanced Visualization",
		Path:  func(p *config.Paths) string { return p.AdvancedPlotsPNG },
		Build: AdvancedPlots,
	},
}

// Render builds the dashboard and writes it to its path
func (d Dashboard) Render(env *Env) (string, error) {
	fig, err := d.Build(env.generator(), env.DPI)
	if err != nil {
		return "", fmt.Errorf("build %s: %w", d.Name, err)
	}
	path := d.Path(env.Paths)
	if err := fig.SavePNG(path); err != nil {
		return "", err
	}
	env.Metrics.ChartRendered(d.Name)
	return path, nil
}

// Lesson wraps the dashboard for sequential runs
func (d Dashboard) Lesson() Lesson {
	return Lesson{
		Name: d.Name,
		Run: func(_ context.Context, env *Env) error {
			env.Printer.Section(d.Title)
			path, err := d.Render(env)
			if err != nil {
				return err
			}
			env.Printer.Line("Saved %s", path)
			return nil
		},
	}
}

// RenderAll renders every dashboard concurrently, each with its own
// generator, then prints the results in dashboard order.
func RenderAll(ctx context.Context, env *Env, dashboards ...Dashboard) error {
	paths := make([]string, len(dashboards))
	g, ctx := errgroup.WithContext(ctx)

	for i, d := range dashboards {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			path, err := d.Render(env)
			if err != nil {
				return fmt.Errorf("dashboard %s: %w", d.Name, err)
			}
			paths[i] = path
			env.Metrics.ObserveSection(d.Name, start)
			env.logger().InfoContext(ctx, "Dashboard rendered",
				slog.String("dashboard", d.Name),
				slog.String("path", path),
				slog.Duration("duration", time.Since(start)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, d := range dashboards {
		env.Printer.Section(d.Title)
		env.Printer.Line("Saved %s", paths[i])
	}
	return nil
}

// BasicPlots: trigonometric lines, a scatter, a normal histogram and a bar chart
func BasicPlots(g *sampledata.Generator, dpi int) (*charts.Figure, error) {
	fig := charts.NewFigure(2, 2, 12, 8, dpi)

	x, sin, cos := sampledata.Trig(100)
	line, err := charts.Line(charts.Options{Title: "Trigonometric Functions", Legend: true, Grid: true},
		charts.Series{Name: "sin(x)", X: x, Y: sin, Color: charts.Blue},
		charts.Series{Name: "cos(x)", X: x, Y: cos, Color: charts.Red},
	)
	if err != nil {
		return nil, err
	}
	fig.Set(0, 0, line)

	sx, sy := g.Scatter(100)
	scatter, err := charts.Scatter(charts.Options{Title: "Scatter Plot", XLabel: "X values", YLabel: "Y values"}, sx, sy)
	if err != nil {
		return nil, err
	}
	fig.Set(0, 1, scatter)

	hist, err := charts.Histogram(charts.Options{Title: "Normal Distribution", XLabel: "Values", YLabel: "Frequency"},
		g.Normal(100, 15, 1000), 30, charts.Green, false)
	if err != nil {
		return nil, err
	}
	fig.Set(1, 0, hist)

	bar, err := charts.Bar(charts.Options{Title: "Bar Chart", XLabel: "Categories", YLabel: "Values"},
		[]string{"A", "B", "C", "D", "E"}, []float64{23, 45, 56, 78, 32}, charts.Orange)
	if err != nil {
		return nil, err
	}
	fig.Set(1, 1, bar)
	return fig, nil
}

// PandasPlots: monthly averages, per-product boxes, a regional pie and a
// correlation heatmap over one year of daily sales
func PandasPlots(g *sampledata.Generator, dpi int) (*charts.Figure, error) {
	fig := charts.NewFigure(2, 2, 15, 10, dpi)

	sales, err := g.DailySales(365)
	if err != nil {
		return nil, err
	}

	monthly, err := sales.Resample("Date", "Sales", table.Monthly, table.Mean)
	if err != nil {
		return nil, err
	}
	mx := make([]float64, len(monthly))
	my := make([]float64, len(monthly))
	for i, tp := range monthly {
		mx[i] = float64(tp.Time.Unix())
		my[i] = tp.Value
	}
	trend, err := charts.Line(charts.Options{Title: "Monthly Average Sales", YLabel: "Sales ($)", TimeFormat: "Jan"},
		charts.Series{Name: "Sales", X: mx, Y: my})
	if err != nil {
		return nil, err
	}
	fig.Set(0, 0, trend)

	groups, values, err := sales.GroupValues("Product", "Sales")
	if err != nil {
		return nil, err
	}
	box, err := charts.BoxPlot(charts.Options{Title: "Sales Distribution by Product", XLabel: "Product"},
		groupKeys(groups), values)
	if err != nil {
		return nil, err
	}
	fig.Set(0, 1, box)

	byRegion, err := sales.Aggregate("Region", table.AggSpec{Column: "Sales", Func: table.Sum})
	if err != nil {
		return nil, err
	}
	pie, err := charts.Pie(charts.Options{Title: "Sales Distribution by Region"},
		byRegion.Rows, byRegion.Col("Sales_sum"))
	if err != nil {
		return nil, err
	}
	fig.Set(1, 0, pie)

	dates, err := sales.Dates("Date")
	if err != nil {
		return nil, err
	}
	month := make([]int, len(dates))
	day := make([]int, len(dates))
	for i, d := range dates {
		month[i] = int(d.Month())
		day[i] = d.YearDay()
	}
	if sales, err = sales.Mutate("Month", month); err != nil {
		return nil, err
	}
	if sales, err = sales.Mutate("DayOfYear", day); err != nil {
		return nil, err
	}
	corr, err := sales.Corr("Sales", "Month", "DayOfYear")
	if err != nil {
		return nil, err
	}
	heat, err := charts.HeatMap(charts.Options{Title: "Correlation Matrix"}, corr, true, false)
	if err != nil {
		return nil, err
	}
	fig.Set(1, 1, heat)
	return fig, nil
}

// AdvancedPlots: bubbles by category, a 2D density, violins and a stacked area
func AdvancedPlots(g *sampledata.Generator, dpi int) (*charts.Figure, error) {
	fig := charts.NewFigure(2, 2, 15, 12, dpi)

	data, err := g.AdvancedSet(1000)
	if err != nil {
		return nil, err
	}
	cols, err := data.Cols("x", "y", "size", "value")
	if err != nil {
		return nil, err
	}
	x, y, size, value := cols[0], cols[1], cols[2], cols[3]

	groups, err := data.GroupBy("category")
	if err != nil {
		return nil, err
	}
	bubbles := make([]charts.BubbleGroup, len(groups))
	violins := make([][]float64, len(groups))
	for i, grp := range groups {
		bubbles[i] = charts.BubbleGroup{
			Name: grp.Key,
			X:    pickRows(x, grp.Rows),
			Y:    pickRows(y, grp.Rows),
			Size: pickRows(size, grp.Rows),
		}
		violins[i] = pickRows(value, grp.Rows)
	}
	bubble, err := charts.Bubble(charts.Options{Title: "Bubble Chart", Legend: true, Grid: true}, bubbles...)
	if err != nil {
		return nil, err
	}
	fig.Set(0, 0, bubble)

	density, err := charts.Density(charts.Options{Title: "Density Plot (Binned)", XLabel: "X values", YLabel: "Y values"}, x, y, 20)
	if err != nil {
		return nil, err
	}
	fig.Set(0, 1, density)

	violin, err := charts.Violin(charts.Options{Title: "Violin Plot", YLabel: "Values"}, groupKeys(groups), violins)
	if err != nil {
		return nil, err
	}
	fig.Set(1, 0, violin)

	const days = 50
	area, err := charts.StackedArea(charts.Options{Title: "Stacked Area Chart", Legend: true},
		sampledata.DateRange(sampledata.Jan1, days),
		charts.Layer{Name: "A", Values: g.RandomWalk(days)},
		charts.Layer{Name: "B", Values: g.RandomWalk(days)},
		charts.Layer{Name: "C", Values: g.RandomWalk(days)},
	)
	if err != nil {
		return nil, err
	}
	fig.Set(1, 1, area)
	return fig, nil
}

func groupKeys(groups []table.Group) []string {
	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	return keys
}

func pickRows(vals []float64, rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = vals[r]
	}
	return out
}
