package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// PaletteConfig holds the tile colors as hex strings, as read from the environment.
type PaletteConfig struct {
	DarkWall    string `env:"DARK_WALL" envDefault:"#000064"`
	LightWall   string `env:"LIGHT_WALL" envDefault:"#826E32"`
	DarkGround  string `env:"DARK_GROUND" envDefault:"#323296"`
	LightGround string `env:"LIGHT_GROUND" envDefault:"#C8B432"`
}

// Palette holds the background colors for explored tiles.
// Dark colors are used outside the field of view, light colors inside it.
type Palette struct {
	DarkWall    tcell.Color
	LightWall   tcell.Color
	DarkGround  tcell.Color
	LightGround tcell.Color
}

// Palette parses every configured color.
func (c PaletteConfig) Palette() (Palette, error) {
	var p Palette
	for _, f := range []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"dark wall", c.DarkWall, &p.DarkWall},
		{"light wall", c.LightWall, &p.LightWall},
		{"dark ground", c.DarkGround, &p.DarkGround},
		{"light ground", c.LightGround, &p.LightGround},
	} {
		color, err := ParseHexColor(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("%s color: %w", f.name, err)
		}
		*f.dst = color
	}
	return p, nil
}

// TileColor picks the background for a tile by visibility and wall-ness.
func (p Palette) TileColor(visible, wall bool) tcell.Color {
	switch {
	case !visible && wall:
		return p.DarkWall
	case !visible:
		return p.DarkGround
	case wall:
		return p.LightWall
	default:
		return p.LightGround
	}
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
