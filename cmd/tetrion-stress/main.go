// Command tetrion-stress drives randomized playouts against the engine
// and reports throughput, drop latency, and distribution statistics. It
// doubles as a fairness check on the bag: over a long run every kind
// should be placed equally often.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/plus3/tetrion/engine"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	seed := flag.Uint64("seed", 1, "Seed for both the bag shuffles and the random steering.")
	steering := flag.Int("steering", 4, "Random movement/rotation commands issued per piece before dropping.")
	flag.Parse()

	log.Println("Starting playout stress test...")

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	eng := engine.NewWithRand(rng)

	report := &Report{
		Duration:  *duration,
		Seed:      *seed,
		Steering:  *steering,
		PerKind:   intmap.New[int64, int64](8),
		PerColumn: intmap.New[int64, int64](engine.Width),
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running playouts for %s...\n", *duration)
	startTime := time.Now()
	deadline := startTime.Add(*duration)

	for time.Now().Before(deadline) {
		if err := eng.SpawnNext(); err != nil {
			// Board full: one game finished, start the next.
			report.Games++
			eng.Reset()
			continue
		}

		piece, _ := eng.Cursor()
		for i := 0; i < *steering; i++ {
			switch rng.IntN(4) {
			case 0:
				eng.Move(engine.MoveLeft)
			case 1:
				eng.Move(engine.MoveRight)
			case 2:
				eng.Rotate(engine.TurnClockwise)
			case 3:
				eng.Rotate(engine.TurnCounterClockwise)
			}
		}

		// Columns are settled before the drop; only the row changes.
		coords, _, _ := eng.CursorCells()

		dropStart := time.Now()
		eng.HardDrop()
		report.DropTime.Record(time.Since(dropStart))

		report.Pieces++
		bump(report.PerKind, int64(piece.Kind))
		for _, c := range coords {
			bump(report.PerColumn, int64(c.X))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.DropTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Playouts finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

func bump(m *intmap.Map[int64, int64], key int64) {
	count, _ := m.Get(key)
	m.Put(key, count+1)
}
