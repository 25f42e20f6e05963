// Package progresschart renders an HTML line chart of a driver's
// pair-queue size and working-basis size over the run, written at
// verbose level 4.
//
// A Recorder accumulates one sample per driver iteration and renders
// them as a plain two-series line chart; there is nothing resembling a
// sweep of tunable parameters to plot against each other, so no
// interactive tooltip or slider controls are needed.
package progresschart
