package search

import "math"

// CosineSimilarity computes dot(a,b) / (‖a‖·‖b‖), range [-1, 1].
// Vectors of different lengths are compared over their common prefix.
// If either vector has zero magnitude the similarity is 0.
func CosineSimilarity(a, b []float32) float32 {
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}

	var dot, normA, normB float64
	for i := 0; i < minLen; i++ {
		dot += float64(a[i]) * float64(b[i])
	}
	for _, v := range a {
		normA += float64(v) * float64(v)
	}
	for _, v := range b {
		normB += float64(v) * float64(v)
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}

// roundScore rounds a similarity score to 4 decimal places for output.
func roundScore(score float32) float32 {
	return float32(math.Round(float64(score)*10000) / 10000)
}
