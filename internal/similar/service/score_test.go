package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosine(t *testing.T) {
	a := Vector{Idx: []int{0, 2}, Val: []float64{1, 1}}
	b := Vector{Idx: []int{1, 2}, Val: []float64{3, 3}}

	assert.InDelta(t, 0.5, Cosine(a, b), 1e-12)
	assert.InDelta(t, 1.0, Cosine(a, a), 1e-12)
	assert.Zero(t, Cosine(a, Vector{}))
	assert.Zero(t, Cosine(Vector{}, Vector{}))
	assert.Zero(t, Cosine(a, Vector{Idx: []int{5}, Val: []float64{2}}))
	assert.False(t, math.IsNaN(Cosine(Vector{Idx: []int{0}, Val: []float64{0}}, a)))
}

func TestScoreKeepsCorpusOrder(t *testing.T) {
	c := corpusOf(
		[2]string{"D-1", "export crashes"},
		[2]string{"D-2", "login fails on timeout"},
		[2]string{"D-3", "printing broken"},
	)
	m := BuildModel(c, ModelOptions{})
	scores := Score(m, m.Project("login timeout"))

	for i, s := range scores {
		assert.Equal(t, i, s.Index)
		assert.GreaterOrEqual(t, s.Score, 0.0)
		assert.LessOrEqual(t, s.Score, 1.0)
	}
	assert.Zero(t, scores[0].Score)
	assert.Greater(t, scores[1].Score, 0.0)
}
