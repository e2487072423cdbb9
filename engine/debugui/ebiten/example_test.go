package ebiten_test

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetrion/engine"
	"github.com/plus3/tetrion/engine/debugui"
	debugui_ebiten "github.com/plus3/tetrion/engine/debugui/ebiten"
)

// Game implements ebiten.Game and hosts the debug panels next to a
// running engine.
type Game struct {
	eng     *engine.Engine
	ui      *debugui.UI
	backend debugui_ebiten.Backend
}

func (g *Game) Update() error {
	// Begin ImGui frame before rendering any panels
	g.backend.BeginFrame()

	if _, ok := g.eng.Cursor(); !ok {
		if err := g.eng.SpawnNext(); err != nil {
			g.eng.Reset()
		}
	}
	g.eng.TickDown()
	g.ui.Render(g.eng, 1.0/60.0)

	// End ImGui frame after panels complete
	g.backend.EndFrame()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw game content to screen
	// ...

	// Draw ImGui overlay on top
	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	// Create Ebiten window and ImGui backend
	imguiBackend := ebitenbackend.NewEbitenBackend()
	imguiBackend.CreateWindow("Engine Debug Example", 1280, 720)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	game := &Game{
		eng:     engine.New(),
		ui:      debugui.New(),
		backend: debugui_ebiten.Backend{EbitenBackend: imguiBackend},
	}

	// Run the game
	if err := ebiten.RunGame(game); err != nil {
		panic(err)
	}
}
