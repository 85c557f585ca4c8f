package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB color. Both renderers consume it: the terminal
// backend as a hex string for Lip Gloss, the window backend as RGBA.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA implements image/color.Color with full opacity.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// ParseColor parses "#RRGGBB" or "RRGGBB".
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want #RRGGBB", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Default palette of the game board.
var (
	ColorBackground = RGB(0, 0, 0)
	ColorBorder     = RGB(93, 216, 228)
	ColorApple      = RGB(255, 0, 0)
	ColorSnake      = RGB(0, 255, 0)
	ColorText       = RGB(255, 255, 255)
)

// Palette holds the colors used to draw a frame.
type Palette struct {
	Background Color
	Border     Color
	Apple      Color
	Snake      Color
	Text       Color // HUD text (terminal backend only)
}

// DefaultPalette returns the stock board colors.
func DefaultPalette() Palette {
	return Palette{
		Background: ColorBackground,
		Border:     ColorBorder,
		Apple:      ColorApple,
		Snake:      ColorSnake,
		Text:       ColorText,
	}
}
