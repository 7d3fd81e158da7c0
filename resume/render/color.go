package render

import (
	"strconv"
	"strings"
)

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

// FallbackColor replaces any colour string that cannot be parsed.
var FallbackColor = RGB{R: 0, G: 0, B: 255}

var (
	black = RGB{}
	white = RGB{R: 255, G: 255, B: 255}
)

// ResolveColor parses "#RRGGBB". Malformed input yields FallbackColor; a bad colour
// never aborts an export.
func ResolveColor(hex string) RGB {
	if len(hex) != 7 || !strings.HasPrefix(hex, "#") {
		return FallbackColor
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return FallbackColor
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}
