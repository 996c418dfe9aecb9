package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/torchlit/internal/entity"
	"github.com/samdwyer/torchlit/internal/fov"
	"github.com/samdwyer/torchlit/internal/world"
)

// View is the read-only game state the renderer draws.
type View interface {
	Grid() *world.Grid
	Visible() fov.Set
	Player() *entity.Player
	Status() string
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws explored tiles, the player and the status line.
// Tiles never seen are left blank.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	grid := v.Grid()
	visible := v.Visible()
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			tile := grid.GetTile(x, y)
			if !tile.Explored {
				continue
			}
			r.screen.SetContent(x, y, ' ', r.tileStyle(visible.Contains(x, y), tile.BlockSight))
		}
	}

	// Draw player on top of its floor tile
	player := v.Player()
	px, py := player.Position()
	playerStyle := r.tileStyle(visible.Contains(px, py), grid.BlocksSight(px, py)).
		Foreground(tcell.ColorWhite)
	r.screen.SetContent(px, py, player.Symbol, playerStyle)

	r.RenderMessage(v.Status(), grid.Height+1)

	r.screen.Show()
}

// Fits reports whether the screen can show the whole map plus the status row.
func (r *Renderer) Fits(v View) bool {
	w, h := r.screen.Size()
	grid := v.Grid()
	return w >= grid.Width && h >= grid.Height+2
}

// tileStyle returns the background style for an explored tile.
func (r *Renderer) tileStyle(visible, wall bool) tcell.Style {
	return tcell.StyleDefault.Background(r.palette.TileColor(visible, wall))
}

// RenderMessage displays a message on the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
