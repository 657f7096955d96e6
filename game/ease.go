package game

import "github.com/chewxy/math32"

// Easing maps a linear progress fraction in [0, 1] to an eased one.
type Easing func(t float32) float32

// Linear ...
func Linear(t float32) float32 {
	return t
}

// InSine ...
func InSine(t float32) float32 {
	return 1 - math32.Cos(t*math32.Pi/2)
}

// OutSine ...
func OutSine(t float32) float32 {
	return math32.Sin(t * math32.Pi / 2)
}

// InOutSine ...
func InOutSine(t float32) float32 {
	return -(math32.Cos(math32.Pi*t) - 1) / 2
}
