// Command tetrion is a playable terminal frontend for the falling-block
// engine. It owns the timers and input the engine deliberately does not:
// a gravity ticker, a tcell event loop, and the respawn after each lock.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/tetrion/engine"
)

func main() {
	tick := flag.Duration("tick", 500*time.Millisecond, "gravity period")
	seed := flag.Uint64("seed", 0, "piece sequence seed (0 picks one at random)")
	flag.Parse()

	eng := engine.New()
	if *seed != 0 {
		eng = engine.NewWithRand(rand.New(rand.NewPCG(*seed, *seed)))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init screen: %v", err)
	}

	// Restore the terminal before reporting a crash, or the stack trace
	// ends up garbled by raw mode.
	defer func() {
		screen.Fini()
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "tetrion crashed: %v\n", r)
			os.Exit(1)
		}
	}()

	g := &game{screen: screen, eng: eng}
	g.run(*tick)
}

type game struct {
	screen tcell.Screen
	eng    *engine.Engine
	over   bool
}

func (g *game) run(tick time.Duration) {
	events := make(chan tcell.Event, 8)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	gravity := time.NewTicker(tick)
	defer gravity.Stop()

	g.spawn()
	g.draw()

	for {
		select {
		case ev := <-events:
			if !g.handleEvent(ev) {
				return
			}
		case <-gravity.C:
			g.step()
		}
		g.draw()
	}
}

// handleEvent reacts to one tcell event; false means quit.
func (g *game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.command(func() { g.eng.Move(engine.MoveLeft) })
		case tcell.KeyRight:
			g.command(func() { g.eng.Move(engine.MoveRight) })
		case tcell.KeyUp:
			g.command(func() { g.eng.Rotate(engine.TurnClockwise) })
		case tcell.KeyDown:
			g.step()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				g.command(func() { g.eng.Move(engine.MoveLeft) })
			case 'l':
				g.command(func() { g.eng.Move(engine.MoveRight) })
			case 'z':
				g.command(func() { g.eng.Rotate(engine.TurnClockwise) })
			case 'x':
				g.command(func() { g.eng.Rotate(engine.TurnCounterClockwise) })
			case ' ':
				g.hardDrop()
			case 'r':
				g.restart()
			}
		}
	}
	return true
}

// command runs a movement command unless the game is over. Rejected
// moves need no handling here: the engine leaves its state untouched.
func (g *game) command(fn func()) {
	if !g.over {
		fn()
	}
}

// step applies one gravity tick and respawns after a lock.
func (g *game) step() {
	if g.over {
		return
	}
	if g.eng.TickDown() {
		g.spawn()
	}
}

func (g *game) hardDrop() {
	if g.over {
		return
	}
	if g.eng.HardDrop() {
		g.spawn()
	}
}

func (g *game) spawn() {
	if err := g.eng.SpawnNext(); err != nil {
		g.over = true
	}
}

func (g *game) restart() {
	g.eng.Reset()
	g.over = false
	g.spawn()
}
