package sales

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"dataguide/internal/report"
	"dataguide/internal/stats"
	"dataguide/internal/table"
	"dataguide/pkg/contracts/domain"
)

// BasicStats is the dataset overview
type BasicStats struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Total       float64   `json:"total"`
	Average     float64   `json:"average"`
	Products    int       `json:"products"`
	Regions     int       `json:"regions"`
	Salespeople int       `json:"salespeople"`
}

// BasicStatistics prints the date range, totals and distinct counts
func (a *Analyzer) BasicStatistics(ctx context.Context) (*BasicStats, error) {
	res := &BasicStats{}
	err := a.section(ctx, "basic_statistics", "BASIC STATISTICS", func() error {
		sales, err := a.table.Col("Sales")
		if err != nil {
			return err
		}
		for i, r := range a.records {
			if i == 0 || r.Date.Before(res.Start) {
				res.Start = r.Date
			}
			if i == 0 || r.Date.After(res.End) {
				res.End = r.Date
			}
		}
		res.Total = stats.Sum(sales)
		res.Average = stats.Mean(sales)
		if res.Products, err = a.table.NUnique("Product"); err != nil {
			return err
		}
		if res.Regions, err = a.table.NUnique("Region"); err != nil {
			return err
		}
		if res.Salespeople, err = a.table.NUnique("Salesperson"); err != nil {
			return err
		}

		p := a.printer
		p.Line("Date range: %s to %s", res.Start.Format(DateTimeLayout), res.End.Format(DateTimeLayout))
		p.Line("Total sales: %s", report.Money(res.Total))
		p.Line("Average daily sales: $%.2f", res.Average)
		p.Line("Number of products: %d", res.Products)
		p.Line("Number of regions: %d", res.Regions)
		p.Line("Number of salespeople: %d", res.Salespeople)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ProductReport ranks products by total sales
type ProductReport struct {
	Stats *table.Grid `json:"stats"`
	Best  string      `json:"best"`
	Worst string      `json:"worst"`
}

// ProductAnalysis aggregates sales per product, best first
func (a *Analyzer) ProductAnalysis(ctx context.Context) (*ProductReport, error) {
	res := &ProductReport{}
	err := a.section(ctx, "product_analysis", "PRODUCT ANALYSIS", func() error {
		grid, err := a.table.Aggregate("Product",
			table.AggSpec{Column: "Sales", Func: table.Sum, Name: "Total_Sales"},
			table.AggSpec{Column: "Sales", Func: table.Mean, Name: "Avg_Sales"},
			table.AggSpec{Column: "Sales", Func: table.Count, Name: "Count"},
			table.AggSpec{Column: "Sales", Func: table.Std, Name: "Std_Dev"},
		)
		if err != nil {
			return err
		}
		grid.Round(2).SortBy("Total_Sales", true)
		res.Stats = grid
		if len(grid.Rows) > 0 {
			res.Best, res.Worst = grid.Rows[0], grid.Rows[len(grid.Rows)-1]
		}

		p := a.printer
		p.Line("Sales by Product:")
		p.Grid(grid)
		p.Blank()
		p.Line("Best performing product: %s", res.Best)
		p.Line("Worst performing product: %s", res.Worst)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// RegionalReport holds per-region totals and market share in percent
type RegionalReport struct {
	Stats *table.Grid `json:"stats"`
}

// Share returns the market share of a region in percent
func (r *RegionalReport) Share(region string) float64 {
	return r.Stats.At(region, "Market_Share")
}

// RegionalAnalysis aggregates sales per region and computes market share
func (a *Analyzer) RegionalAnalysis(ctx context.Context) (*RegionalReport, error) {
	res := &RegionalReport{}
	err := a.section(ctx, "regional_analysis", "REGIONAL ANALYSIS", func() error {
		grid, err := a.table.Aggregate("Region",
			table.AggSpec{Column: "Sales", Func: table.Sum, Name: "Total_Sales"},
			table.AggSpec{Column: "Sales", Func: table.Mean, Name: "Avg_Sales"},
			table.AggSpec{Column: "Sales", Func: table.Count, Name: "Count"},
		)
		if err != nil {
			return err
		}
		grid.Round(2).SortBy("Total_Sales", true)

		p := a.printer
		p.Line("Sales by Region:")
		p.Grid(grid)

		sales, err := a.table.Col("Sales")
		if err != nil {
			return err
		}
		total := stats.Sum(sales)
		totals := grid.Col("Total_Sales")
		shares := make([]float64, len(totals))
		for i, t := range totals {
			shares[i] = stats.Round(t/total*100, 2)
		}
		grid.AddColumn("Market_Share", shares)
		res.Stats = grid

		p.Blank()
		p.Line("Market Share by Region:")
		for i, region := range grid.Rows {
			p.Line("%s: %s%%", region, report.Float(shares[i]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Ranked is one entry of a top-N list
type Ranked struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

// SalespersonReport ranks salespeople by total sales
type SalespersonReport struct {
	Stats *table.Grid `json:"stats"`
	Top   []Ranked    `json:"top"`
}

// topPerformers is the length of the salesperson ranking
const topPerformers = 3

// SalespersonPerformance aggregates sales per salesperson and ranks the top three
func (a *Analyzer) SalespersonPerformance(ctx context.Context) (*SalespersonReport, error) {
	res := &SalespersonReport{}
	err := a.section(ctx, "salesperson_performance", "SALESPERSON PERFORMANCE", func() error {
		grid, err := a.table.Aggregate("Salesperson",
			table.AggSpec{Column: "Sales", Func: table.Sum, Name: "Total_Sales"},
			table.AggSpec{Column: "Sales", Func: table.Mean, Name: "Avg_Sales"},
			table.AggSpec{Column: "Sales", Func: table.Count, Name: "Count"},
		)
		if err != nil {
			return err
		}
		grid.Round(2).SortBy("Total_Sales", true)
		res.Stats = grid

		p := a.printer
		p.Line("Performance by Salesperson:")
		p.Grid(grid)
		p.Blank()
		p.Line("Top Performers:")
		totals := grid.Col("Total_Sales")
		for i := 0; i < topPerformers && i < len(grid.Rows); i++ {
			r := Ranked{Rank: i + 1, Name: grid.Rows[i], Total: totals[i]}
			res.Top = append(res.Top, r)
			p.Line("%d. %s: %s total sales", r.Rank, r.Name, report.Money(r.Total))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// TimeSeriesReport is the daily sales series with its extremes
type TimeSeriesReport struct {
	Daily   []table.TimePoint `json:"daily"`
	Highest table.TimePoint   `json:"highest"`
	Lowest  table.TimePoint   `json:"lowest"`

	// GrowthRate compares the last day with the first, in percent.
	// It is only set when there are at least two days, and is infinite
	// (null in JSON) when the first day sold nothing.
	GrowthRate *domain.Number `json:"growth_rate,omitempty"`
}

// TimeSeriesAnalysis sums sales per day and reports the extremes and growth
func (a *Analyzer) TimeSeriesAnalysis(ctx context.Context) (*TimeSeriesReport, error) {
	res := &TimeSeriesReport{}
	err := a.section(ctx, "time_series", "TIME SERIES ANALYSIS", func() error {
		daily := a.dailySales()
		res.Daily = daily

		p := a.printer
		p.Line("Daily Sales Summary:")
		if len(daily) == 0 {
			return nil
		}

		hi, lo := 0, 0
		for i, d := range daily {
			if d.Value > daily[hi].Value {
				hi = i
			}
			if d.Value < daily[lo].Value {
				lo = i
			}
		}
		res.Highest, res.Lowest = daily[hi], daily[lo]
		p.Line("Highest sales day: %s (%s)", res.Highest.Time.Format(DateTimeLayout), report.Money(res.Highest.Value))
		p.Line("Lowest sales day: %s (%s)", res.Lowest.Time.Format(DateTimeLayout), report.Money(res.Lowest.Value))

		if len(daily) > 1 {
			first, last := daily[0].Value, daily[len(daily)-1].Value
			growth := (last - first) / first * 100
			rate := domain.Number(growth)
			res.GrowthRate = &rate
			p.Line("Overall growth rate: %.2f%%", growth)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// dailySales sums sales per calendar day, in date order
func (a *Analyzer) dailySales() []table.TimePoint {
	sums := make(map[time.Time]float64)
	for _, r := range a.records {
		sums[r.Date] += r.Sales
	}
	out := make([]table.TimePoint, 0, len(sums))
	for d, v := range sums {
		out = append(out, table.TimePoint{Time: d, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	return out
}

// Insights are the headline findings of the report
type Insights struct {
	TopProduct        Ranked   `json:"top_product"`
	TopRegion         Ranked   `json:"top_region"`
	TopSalesperson    Ranked   `json:"top_salesperson"`
	AverageSale       float64  `json:"average_sale"`
	MostDiverseRegion string   `json:"most_diverse_region"`
	RegionProducts    int      `json:"region_products"`
	Lines             []string `json:"lines"`
}

// GenerateInsights derives the five headline findings
func (a *Analyzer) GenerateInsights(ctx context.Context) (*Insights, error) {
	res := &Insights{}
	err := a.section(ctx, "insights", "KEY INSIGHTS", func() error {
		var err error
		if res.TopProduct, err = a.topBy("Product"); err != nil {
			return err
		}
		if res.TopRegion, err = a.topBy("Region"); err != nil {
			return err
		}
		if res.TopSalesperson, err = a.topBy("Salesperson"); err != nil {
			return err
		}
		sales, err := a.table.Col("Sales")
		if err != nil {
			return err
		}
		res.AverageSale = stats.Mean(sales)

		groups, err := a.table.GroupBy("Region")
		if err != nil {
			return err
		}
		for _, g := range groups {
			n, err := a.table.GroupTable(g).NUnique("Product")
			if err != nil {
				return err
			}
			if n > res.RegionProducts {
				res.MostDiverseRegion, res.RegionProducts = g.Key, n
			}
		}

		res.Lines = []string{
			fmt.Sprintf("1. %s is the best-selling product with %s in sales", res.TopProduct.Name, report.Money(res.TopProduct.Total)),
			fmt.Sprintf("2. %s region generates the highest revenue: %s", res.TopRegion.Name, report.Money(res.TopRegion.Total)),
			fmt.Sprintf("3. %s is the top performer with %s in sales", res.TopSalesperson.Name, report.Money(res.TopSalesperson.Total)),
			fmt.Sprintf("4. Average transaction value: $%.2f", res.AverageSale),
			fmt.Sprintf("5. %s has the most product diversity (%d products)", res.MostDiverseRegion, res.RegionProducts),
		}
		for _, l := range res.Lines {
			a.printer.Line("%s", l)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// topBy returns the key with the largest total sales. Ties go to the first key.
func (a *Analyzer) topBy(key string) (Ranked, error) {
	grid, err := a.table.Aggregate(key, table.AggSpec{Column: "Sales", Func: table.Sum, Name: "Total"})
	if err != nil {
		return Ranked{}, err
	}
	best := Ranked{Rank: 1, Total: math.Inf(-1)}
	for i, v := range grid.Col("Total") {
		if v > best.Total {
			best.Name, best.Total = grid.Rows[i], v
		}
	}
	return best, nil
}
