package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/torchlit/internal/world"
)

// Intent is one tick's worth of player input.
type Intent struct {
	Delta world.Point // Unit step, zero when no direction was pressed
	Quit  bool
}

// IsZero reports whether the intent asks for nothing.
func (i Intent) IsZero() bool {
	return i == Intent{}
}

var (
	up    = world.Point{X: 0, Y: -1}
	down  = world.Point{X: 0, Y: 1}
	left  = world.Point{X: -1, Y: 0}
	right = world.Point{X: 1, Y: 0}
)

// IntentFromKey translates a key press into an intent.
// Arrow keys and hjkl move; Escape, Ctrl-C and q quit.
func IntentFromKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Intent{Quit: true}
	case tcell.KeyUp:
		return Intent{Delta: up}
	case tcell.KeyDown:
		return Intent{Delta: down}
	case tcell.KeyLeft:
		return Intent{Delta: left}
	case tcell.KeyRight:
		return Intent{Delta: right}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return Intent{Quit: true}
		case 'k':
			return Intent{Delta: up}
		case 'j':
			return Intent{Delta: down}
		case 'h':
			return Intent{Delta: left}
		case 'l':
			return Intent{Delta: right}
		}
	}
	return Intent{}
}
