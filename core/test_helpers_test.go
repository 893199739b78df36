package core_test

import "iter"

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexZ = "Z"
)

// collectVertices drains a vertex iterator into parallel id/value slices.
func collectVertices[K comparable, V any](seq iter.Seq2[K, V]) ([]K, []V) {
	var ids []K
	var values []V
	for id, v := range seq {
		ids = append(ids, id)
		values = append(values, v)
	}

	return ids, values
}
