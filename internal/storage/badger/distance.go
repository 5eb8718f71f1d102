package badger

import (
	"errors"
	"fmt"
	"math"
)

// CosineDistance computes 1 - cosine similarity between two vectors.
// Returns 0 for identical directions, 2 for opposite ones.
func CosineDistance(a, b []float32) (float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return 0, errors.New("vectors cannot be empty")
	}
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector dimensions do not match: %d vs %d", len(a), len(b))
	}

	var dot, magA, magB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		magA += float64(a[i]) * float64(a[i])
		magB += float64(b[i]) * float64(b[i])
	}

	if magA == 0 || magB == 0 {
		return 0, errors.New("vector magnitude is zero")
	}

	distance := 1 - dot/(math.Sqrt(magA)*math.Sqrt(magB))
	// Guard against float rounding pushing identical vectors below zero
	if distance < 0 {
		distance = 0
	}
	return distance, nil
}
