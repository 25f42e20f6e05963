package progresschart

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Recorder accumulates one sample per driver iteration: the pending
// pair-queue length and the current working-basis size. It is safe
// for concurrent use, though in practice a single driver run records
// from one goroutine only.
type Recorder struct {
	mu         sync.Mutex
	iteration  []int
	pairQueue  []int
	basisSize  []int
	nextSample int
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Sample appends one (pairQueueLen, basisLen) observation.
func (r *Recorder) Sample(pairQueueLen, basisLen int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.iteration = append(r.iteration, r.nextSample)
	r.pairQueue = append(r.pairQueue, pairQueueLen)
	r.basisSize = append(r.basisSize, basisLen)
	r.nextSample++
}

// Len reports how many samples have been recorded.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.iteration)
}

// Render writes an HTML line chart of the recorded samples to w.
func (r *Recorder) Render(w io.Writer, title string) error {
	r.mu.Lock()
	iteration := append([]int(nil), r.iteration...)
	pairQueue := append([]int(nil), r.pairQueue...)
	basisSize := append([]int(nil), r.basisSize...)
	r.mu.Unlock()

	xAxis := make([]string, len(iteration))
	for i, n := range iteration {
		xAxis[i] = fmt.Sprintf("%d", n)
	}

	pairQueueData := make([]opts.LineData, len(pairQueue))
	for i, v := range pairQueue {
		pairQueueData[i] = opts.LineData{Value: v}
	}
	basisSizeData := make([]opts.LineData, len(basisSize))
	for i, v := range basisSize {
		basisSizeData[i] = opts.LineData{Value: v}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "iteration", Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count", Type: "value"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xAxis).
		AddSeries("pair queue size", pairQueueData).
		AddSeries("basis size", basisSizeData)

	page := components.NewPage().SetPageTitle(title)
	page.AddCharts(line)

	return page.Render(w)
}

// RenderTemp renders the chart to a new temp file and returns its
// path, for callers that write the chart out and log the path rather
// than serving it directly.
func (r *Recorder) RenderTemp(title string) (string, error) {
	f, err := os.CreateTemp("", "tateideal-progress-*.html")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := r.Render(f, title); err != nil {
		return "", err
	}

	return f.Name(), nil
}
