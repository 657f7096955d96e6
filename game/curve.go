package game

import "sort"

// Keyframe is a single point on a Curve.
type Keyframe struct {
	Time  float32 `yaml:"time"`
	Value float32 `yaml:"value"`
}

// Curve is a piecewise-linear function defined by keyframes. Evaluating outside of the keyframe
// range clamps to the first or last value.
type Curve []Keyframe

// NewCurve returns a curve with the given keyframes sorted by time.
func NewCurve(keys ...Keyframe) Curve {
	c := make(Curve, len(keys))
	copy(c, keys)
	sort.Slice(c, func(i, j int) bool { return c[i].Time < c[j].Time })
	return c
}

// Evaluate returns the value of the curve at t.
func (c Curve) Evaluate(t float32) float32 {
	switch len(c) {
	case 0:
		return 0
	case 1:
		return c[0].Value
	}
	if t <= c[0].Time {
		return c[0].Value
	}
	last := c[len(c)-1]
	if t >= last.Time {
		return last.Value
	}

	i := sort.Search(len(c), func(i int) bool { return c[i].Time >= t })
	a, b := c[i-1], c[i]
	if b.Time == a.Time {
		return b.Value
	}
	return Lerp(a.Value, b.Value, (t-a.Time)/(b.Time-a.Time))
}
