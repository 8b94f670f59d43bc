// Package scoring computes query/chunk relevance via cosine similarity.
package scoring

import "math"

// Cosine returns the cosine similarity between two vectors, in [-1, 1].
// Vectors of unequal length or zero norm score 0 so the caller never has
// to guard against a division by zero.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// ScoreChunks computes one similarity per chunk vector against the query
// vector, preserving input order.
func ScoreChunks(queryVec []float64, chunkVecs [][]float64) []float64 {
	scores := make([]float64, len(chunkVecs))
	for i, vec := range chunkVecs {
		scores[i] = Cosine(queryVec, vec)
	}
	return scores
}
