package wire

import "fmt"

// Fixed is a Wayland 24.8 signed fixed-point number: the top 24 bits hold
// the integer part, the bottom 8 bits the fractional part.
type Fixed int32

// FixedFromWire reinterprets a raw wire word as a Fixed value.
func FixedFromWire(v int32) Fixed {
	return Fixed(v)
}

// Wire returns the raw wire representation of f.
func (f Fixed) Wire() int32 {
	return int32(f)
}

// Int returns the truncated integer part of f.
func (f Fixed) Int() int {
	return int(f) / 256
}

// Frac returns the fractional part of f, scaled to [0, 256).
func (f Fixed) Frac() int {
	v := int(f) % 256
	if v < 0 {
		v += 256
	}
	return v
}

// Float64 returns f as a float64, for diagnostics only; the wire format
// never carries floating point.
func (f Fixed) Float64() float64 {
	return float64(f) / 256.0
}

// FixedFromInt constructs a Fixed with zero fractional part.
func FixedFromInt(i int) Fixed {
	return Fixed(i * 256)
}

func (f Fixed) String() string {
	return fmt.Sprintf("%g", f.Float64())
}
