package render

import "github.com/lixenwraith/snakeio/core"

// BlendMode defines compositing operations using a bitmask (Flags | Op)
type BlendMode uint8

const (
	// Operations (lower 4 bits)
	opAlpha  uint8 = 0x01
	opMax    uint8 = 0x02
	opScreen uint8 = 0x03

	// Target flags (upper 4 bits)
	flagBg uint8 = 0x10
	flagFg uint8 = 0x20
)

const (
	BlendAlphaBg  = BlendMode(opAlpha | flagBg) // Tint background, keep glyph
	BlendAlphaFg  = BlendMode(opAlpha | flagFg) // Fade glyph over what is already there
	BlendMaxBg    = BlendMode(opMax | flagBg)
	BlendScreenBg = BlendMode(opScreen | flagBg)
)

// Max keeps the brighter value per channel
func Max(dst, src core.RGB) core.RGB {
	return core.RGB{R: max(dst.R, src.R), G: max(dst.G, src.G), B: max(dst.B, src.B)}
}

// Screen brightens: 1 - (1-a)(1-b)
func Screen(dst, src core.RGB) core.RGB {
	s := func(a, b uint8) uint8 {
		return uint8(255 - (int(255-a)*int(255-b))/255)
	}
	return core.RGB{R: s(dst.R, src.R), G: s(dst.G, src.G), B: s(dst.B, src.B)}
}

// apply composites src onto dst; max and screen results are mixed in by alpha
func apply(op uint8, dst, src core.RGB, alpha float64) core.RGB {
	switch op {
	case opAlpha:
		return dst.Blend(src, alpha)
	case opMax:
		return dst.Blend(Max(dst, src), alpha)
	case opScreen:
		return dst.Blend(Screen(dst, src), alpha)
	default:
		return src
	}
}
