package herald

import (
	"strconv"
	"strings"
)

// DefaultColor is the brand color applied when no usable color is given.
const DefaultColor = 0x5865F2

var namedColors = map[string]int{
	"red":    0xFF0000,
	"green":  0x00FF00,
	"blue":   0x0000FF,
	"yellow": 0xFFFF00,
	"orange": 0xFFA500,
	"purple": 0x800080,
	"pink":   0xFFC0CB,
	"gold":   0xFFD700,
	"white":  0xFFFFFF,
	"black":  0x000000,
}

// ResolveColor maps a color name or a #RRGGBB token to an RGB value.
// Anything else, including malformed hex, yields DefaultColor.
func ResolveColor(token string) int {
	token = strings.TrimSpace(token)
	if token == "" {
		return DefaultColor
	}
	if c, ok := namedColors[strings.ToLower(token)]; ok {
		return c
	}
	hex, ok := strings.CutPrefix(token, "#")
	if !ok || len(hex) != 6 {
		return DefaultColor
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return DefaultColor
	}
	return int(v)
}

// ColorNames returns the recognized color names.
func ColorNames() []string {
	return []string{"red", "green", "blue", "yellow", "orange", "purple", "pink", "gold", "white", "black"}
}
