package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
)

// TickStats plots recent frame times so gravity hitches are visible
// while tuning a driver loop.
type TickStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewTickStats(historyFrames int) *TickStats {
	return &TickStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Render records deltaTime (seconds) and draws the stats window.
func (ts *TickStats) Render(deltaTime float32) {
	ts.frameHistory[ts.frameIndex] = deltaTime * 1000.0
	ts.frameIndex = (ts.frameIndex + 1) % ts.historyFrames

	if !imgui.BeginV("Tick Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	var avgFrameTime float32
	for _, ft := range ts.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ts.historyFrames)

	if avgFrameTime > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ts.frameHistory[0], int32(len(ts.frameHistory)))

	imgui.End()
}
