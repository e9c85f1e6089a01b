package domain

import "math"

// NormalizeVector returns the L2-normalized copy of v so that cosine distance
// behaves consistently regardless of provider scaling. A zero vector has no
// direction; the divisor is treated as 1 and the vector passes through
// unchanged.
func NormalizeVector(v []float32) []float32 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}

	norm := math.Sqrt(sum)
	if norm == 0 {
		norm = 1
	}

	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}
