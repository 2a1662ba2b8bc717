package palette

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// channelModulus is the wrap point for channel shifts. Shifted channels always land in [0, 254].
const channelModulus = 255

// RGB is a 24-bit colour, 8 bits per channel, no alpha
type RGB struct {
	R, G, B uint8
}

// Predefined colours
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
	Blue  = RGB{0, 0, 255}
)

// IntSource is the subset of math/rand/v2 used to pick colours
type IntSource interface {
	IntN(n int) int
}

// DeriveBirthColor shifts each channel of alive by the matching channel of shift, wrapping modulo 255
func DeriveBirthColor(alive, shift RGB) RGB {
	return RGB{
		R: shiftChannel(alive.R, shift.R),
		G: shiftChannel(alive.G, shift.G),
		B: shiftChannel(alive.B, shift.B),
	}
}

func shiftChannel(c, s uint8) uint8 {
	return uint8((int(c) + int(s)) % channelModulus)
}

// DimByPercent scales every channel by (100-percent)/100 with integer truncation.
// percent is clamped to [0, 100].
func DimByPercent(c RGB, percent int) RGB {
	percent = min(max(percent, 0), 100)
	keep := 100 - percent
	return RGB{
		R: uint8(int(c.R) * keep / 100),
		G: uint8(int(c.G) * keep / 100),
		B: uint8(int(c.B) * keep / 100),
	}
}

// Random picks every channel in [0, 254]
func Random(rng IntSource) RGB {
	return RGB{
		R: uint8(rng.IntN(channelModulus)),
		G: uint8(rng.IntN(channelModulus)),
		B: uint8(rng.IntN(channelModulus)),
	}
}

// ParseHex parses "#rrggbb" or "#rgb"
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, errors.Wrapf(err, "[ParseHex] invalid colour: %q", s)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// Hex formats the colour as "#rrggbb"
func (c RGB) Hex() string {
	return c.colorful().Hex()
}

func (c RGB) String() string {
	return c.Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromTriple builds a shift/colour from config ints, reducing each into a byte
func FromTriple(v [3]int) RGB {
	return RGB{
		R: uint8(((v[0] % 256) + 256) % 256),
		G: uint8(((v[1] % 256) + 256) % 256),
		B: uint8(((v[2] % 256) + 256) % 256),
	}
}
