// Package ebiten provides Dear ImGui backend integration for hosting
// the debug panels inside an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
)

// Backend wraps the Ebiten-specific Dear ImGui backend implementation.
// Call BeginFrame/EndFrame around panel rendering in Update, and Draw
// from the game's Draw.
type Backend struct {
	*ebitenbackend.EbitenBackend
}
