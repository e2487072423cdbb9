package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/tetrion/engine"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Seed     uint64
	Steering int

	// Results
	Games     int64
	Pieces    int64
	TotalTime time.Duration
	DropTime  LatencyStats
	PerKind   *intmap.Map[int64, int64]
	PerColumn *intmap.Map[int64, int64]

	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// LatencyStats accumulates per-drop durations and summarizes them with
// the percentiles that matter for a latency distribution.
type LatencyStats struct {
	samples []time.Duration

	Count int
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
	P50   time.Duration
	P99   time.Duration
}

func (s *LatencyStats) Record(d time.Duration) {
	s.samples = append(s.samples, d)
}

// Finalize sorts the recorded samples and fills in the summary fields.
// Call once, after the last Record.
func (s *LatencyStats) Finalize() {
	s.Count = len(s.samples)
	if s.Count == 0 {
		return
	}

	slices.Sort(s.samples)
	s.Min = s.samples[0]
	s.Max = s.samples[s.Count-1]
	s.P50 = s.samples[s.Count/2]
	s.P99 = s.samples[s.Count*99/100]

	var total time.Duration
	for _, sample := range s.samples {
		total += sample
	}
	s.Avg = total / time.Duration(s.Count)
}

// Count is one row of a histogram table in the rendered report.
type Count struct {
	Label string
	Value int64
}

// KindCounts flattens the per-kind histogram in kind order.
func (r *Report) KindCounts() []Count {
	counts := make([]Count, 0, len(engine.Kinds))
	for _, kind := range engine.Kinds {
		value, _ := r.PerKind.Get(int64(kind))
		counts = append(counts, Count{Label: kind.String(), Value: value})
	}
	return counts
}

// ColumnCounts flattens the landing-column histogram left to right.
func (r *Report) ColumnCounts() []Count {
	counts := make([]Count, 0, engine.Width)
	for x := 0; x < engine.Width; x++ {
		value, _ := r.PerColumn.Get(int64(x))
		counts = append(counts, Count{Label: fmt.Sprintf("%d", x), Value: value})
	}
	return counts
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Playout Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Seed:** {{.Seed}}
- **Steering Commands Per Piece:** {{.Steering}}

## Throughput
- **Games Completed:** {{.Games}}
- **Pieces Placed:** {{.Pieces}}
- **Total Test Time:** {{.TotalTime}}
- **Hard Drop Latency ({{.DropTime.Count}} samples):**
  - **Avg:** {{.DropTime.Avg}}
  - **P50:** {{.DropTime.P50}}
  - **P99:** {{.DropTime.P99}}
  - **Min:** {{.DropTime.Min}}
  - **Max:** {{.DropTime.Max}}

## Pieces Placed By Kind
{{range .KindCounts}}- {{.Label}}: {{.Value}}
{{end}}
## Cells Landed By Column
{{range .ColumnCounts}}- {{.Label}}: {{.Value}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
