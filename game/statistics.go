package game

import (
	"sort"

	"github.com/chewxy/math32"
)

// Sum ...
func Sum(data []float32) (result float32) {
	for _, v := range data {
		result += v
	}
	return result
}

// Mean ...
func Mean(data []float32) float32 {
	count := float32(len(data))
	if count == 0 {
		return 0
	}
	return Sum(data) / count
}

// Median ...
func Median(data []float32) float32 {
	if len(data) == 0 {
		return 0
	}

	sorted := make([]float32, len(data))
	copy(sorted, data)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 != 0 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) * 0.5
}

// Variance ...
func Variance(data []float32) (variance float32) {
	count := float32(len(data))
	if count == 0 {
		return 0
	}
	mean := Mean(data)

	for _, number := range data {
		variance += (number - mean) * (number - mean)
	}
	return variance / count
}

// StandardDeviation ...
func StandardDeviation(data []float32) float32 {
	return math32.Sqrt(Variance(data))
}

// Max ...
func Max(data []float32) float32 {
	if len(data) == 0 {
		return 0
	}
	m := data[0]
	for _, v := range data[1:] {
		m = math32.Max(m, v)
	}
	return m
}
