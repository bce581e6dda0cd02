package paint

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	MinWidth = 1
	MaxWidth = 20

	DefaultColor = "#000000"
	DefaultWidth = 5
)

// Style is the pen configuration applied to newly drawn segments.
type Style struct {
	Color string // normalized "#rrggbb"
	Width int
}

func DefaultStyle() Style {
	return Style{Color: DefaultColor, Width: DefaultWidth}
}

// ParseColor accepts "#rgb" or "#rrggbb" in any case and returns the
// lowercase six digit form.
func ParseColor(hex string) (string, error) {
	hex = strings.TrimSpace(hex)
	if (len(hex) != 4 && len(hex) != 7) || hex[0] != '#' || !isHexDigits(hex[1:]) {
		return "", fmt.Errorf("color %q: expected #rgb or #rrggbb", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("color %q: %w", hex, err)
	}
	return c.Hex(), nil
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// ColorToHex converts a toolkit color (color picker, swatch) to the hex form
// the controller stores. Fully transparent colors map to black.
func ColorToHex(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return DefaultColor
	}
	return cf.Clamped().Hex()
}

// ClampWidth pins n into [MinWidth, MaxWidth].
func ClampWidth(n int) int {
	if n < MinWidth {
		return MinWidth
	}
	if n > MaxWidth {
		return MaxWidth
	}
	return n
}

// NRGBA returns the style color for hosts that want a color.Color.
func (s Style) NRGBA() color.NRGBA {
	c, err := colorful.Hex(s.Color)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func (s Style) String() string {
	return fmt.Sprintf("%s/%dpx", s.Color, s.Width)
}
