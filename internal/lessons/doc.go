// Package lessons holds the bodies of the three example programs: array
// basics, table basics and the chart dashboards.
//
// A lesson is an independent function. It seeds its own generator, builds
// its own sample data and writes its output through a report.Printer, so
// lessons can run in any order, or concurrently when they only render charts.
package lessons
