package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned for color strings that are neither hex nor a known name.
var ErrInvalidColor = errors.New("render: invalid color")

var namedColors = map[string]color.RGBA{
	"black":  {A: 255},
	"white":  {R: 255, G: 255, B: 255, A: 255},
	"red":    {R: 255, A: 255},
	"green":  {G: 128, A: 255},
	"blue":   {B: 255, A: 255},
	"orange": {R: 255, G: 165, A: 255},
	"purple": {R: 128, B: 128, A: 255},
	"gray":   {R: 128, G: 128, B: 128, A: 255},
	"grey":   {R: 128, G: 128, B: 128, A: 255},
	"teal":   {G: 128, B: 128, A: 255},
}

// DefaultPalette returns the default colors. Entry 0 is meant for the raw
// waveform, the rest for curves.
func DefaultPalette() []color.RGBA {
	return []color.RGBA{
		{R: 0xa8, G: 0xc6, B: 0xdb, A: 255},
		namedColors["orange"],
		namedColors["red"],
		{R: 0x4a, G: 0xa0, B: 0x00, A: 255},
	}
}

// ParseColor accepts "#rrggbb", "#rgb" or a color name such as "orange".
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// ParsePalette parses a comma separated list of colors.
func ParsePalette(list string) ([]color.RGBA, error) {
	var out []color.RGBA
	for _, part := range strings.Split(list, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ParseColor(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty palette", ErrInvalidColor)
	}
	return out, nil
}
