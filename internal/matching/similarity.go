package matching

import (
	"fmt"
	"math"
)

// NeutralSimilarity is the value substituted when similarity cannot be
// computed at all. It maps to a fit score of 50.
const NeutralSimilarity = 0.5

// CosineSimilarity returns the cosine of the angle between a and b: the dot
// product divided by the product of the Euclidean norms. A zero vector has
// no direction, so similarity against one is exactly 0.0, never a division
// error. Vectors of different lengths cannot be compared and return an
// error.
func CosineSimilarity(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector length mismatch: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}

// FitScore maps a similarity value to an integer percentage. The result is
// always clamped into [0, 100], even for similarity values outside [-1, 1].
func FitScore(similarity float64) int {
	score := similarity * 100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(math.Round(score))
}
