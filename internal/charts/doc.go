// Package charts builds the chart panels used by the lessons and the
// project reports and tiles them into a single PNG.
//
// Each builder returns a *plot.Plot configured with a title, axis labels
// and the plotters for one chart type. A Figure arranges panels in a grid
// with plot.Align and renders them through vgimg.
//
// Renderers never create directories. Saving into a directory that does
// not exist fails with an OUTPUT_DIR_MISSING analysis error; programs
// create output directories up front when configured to.
//
// gonum/plot has no pie or violin plotter. Pie draws wedges with vg paths
// and Violin mirrors a Gaussian kernel density estimate into a polygon.
package charts
