package core

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}

	// SnakeDefault is the neon green every new game starts with
	SnakeDefault = RGB{0x39, 0xff, 0x14}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Lighten moves each channel towards white by amt
func (c RGB) Lighten(amt float64) RGB {
	lift := func(v uint8) uint8 {
		f := float64(v) + (255-float64(v))*amt
		return uint8(min(255, int(f+0.5)))
	}
	return RGB{R: lift(c.R), G: lift(c.G), B: lift(c.B)}
}

// Scale multiplies each channel by factor (for fading effects)
func (c RGB) Scale(factor float64) RGB {
	if factor <= 0 {
		return RGBBlack
	}
	if factor >= 1 {
		return c
	}
	return RGB{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
	}
}

// Hex formats the color as #rrggbb
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex accepts #rgb and #rrggbb forms
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	num, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return RGB{R: uint8(num >> 16), G: uint8(num >> 8), B: uint8(num)}, nil
}

// FromHSL converts hue in degrees, saturation and lightness in percent
func FromHSL(h, s, l float64) RGB {
	c := colorful.Hsl(h, s/100, l/100).Clamped()
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}
}

// RandomSnakeColor picks a saturated hue, mostly outside the food greens and purples
func RandomSnakeColor(r *rand.Rand) RGB {
	return FromHSL(snakeHue(r), 90, 55)
}

// snakeHue is uniform in [20,140) or [160,340) 80% of the time, else in the magenta band [300,340)
func snakeHue(r *rand.Rand) float64 {
	if r.Float64() < 0.8 {
		ranges := [2][2]float64{{20, 140}, {160, 340}}
		pick := ranges[r.IntN(2)]
		return pick[0] + r.Float64()*(pick[1]-pick[0])
	}
	return math.Mod(r.Float64()*40+300, 360)
}
