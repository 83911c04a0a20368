package service

import (
	"math"

	"defect-assistant/internal/similar/model"
)

// Cosine returns the cosine of the angle between a and b, clamped to [0, 1].
// A zero vector on either side gives 0.
func Cosine(a, b Vector) float64 {
	na, nb := a.norm(), b.norm()
	if na == 0 || nb == 0 {
		return 0
	}
	var dot float64
	for i, j := 0, 0; i < len(a.Idx) && j < len(b.Idx); {
		switch {
		case a.Idx[i] == b.Idx[j]:
			dot += a.Val[i] * b.Val[j]
			i++
			j++
		case a.Idx[i] < b.Idx[j]:
			i++
		default:
			j++
		}
	}
	s := dot / (na * nb)
	switch {
	case math.IsNaN(s), s < 0:
		return 0
	case s > 1:
		return 1
	}
	return s
}

// Score rates every record of m against q, in corpus order.
func Score(m *TermModel, q Vector) []model.Match {
	out := make([]model.Match, m.Len())
	for i := range out {
		out[i] = model.Match{Index: i, Score: Cosine(q, m.docs[i])}
	}
	return out
}
