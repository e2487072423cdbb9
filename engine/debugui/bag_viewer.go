package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/tetrion/engine"
)

// BagViewer shows the remaining kinds in the current shuffle cycle and
// a running histogram of everything spawned so far. Spawns are detected
// by watching the cursor appear, so the panel must be rendered every
// frame to keep an accurate count.
type BagViewer struct {
	counts    [7]int64
	hadCursor bool
}

// Render draws the bag window and updates the spawn histogram.
func (v *BagViewer) Render(eng *engine.Engine) {
	piece, ok := eng.Cursor()
	if ok && !v.hadCursor {
		v.counts[piece.Kind]++
	}
	v.hadCursor = ok

	if !imgui.BeginV("Bag", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	remaining := eng.BagRemaining()
	if len(remaining) == 0 {
		imgui.Text("cycle exhausted, refill on next draw")
	} else {
		var b strings.Builder
		for i, kind := range remaining {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(kind.String())
		}
		imgui.Text(fmt.Sprintf("Next: %s", b.String()))
	}

	imgui.Separator()
	imgui.Text("Spawned so far")

	var total int64
	for _, n := range v.counts {
		total += n
	}
	for _, kind := range engine.Kinds {
		n := v.counts[kind]
		share := 0.0
		if total > 0 {
			share = float64(n) / float64(total) * 100
		}
		imgui.BulletText(fmt.Sprintf("%s: %d (%.1f%%)", kind, n, share))
	}

	imgui.End()
}
