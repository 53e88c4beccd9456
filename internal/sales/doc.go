// Package sales implements the sales analysis project.
//
// An Analyzer loads a sales dataset once (CSV or XLSX with the columns Date,
// Product, Sales, Region and Salesperson), validates every record and then
// answers independent report sections: basic statistics, per-product,
// per-region and per-salesperson aggregates, a daily time series and a list
// of insights. Each section prints its text through a report.Printer and
// returns a result struct, so the same analyzer backs both the salesreport
// program and the report server.
package sales
