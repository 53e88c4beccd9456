// Package domain defines the records read from the datasets and the small
// result types shared between the analyzers, the exporters and the report
// server.
package domain
