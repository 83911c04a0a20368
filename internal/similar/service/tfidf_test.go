package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildModel(t *testing.T) {
	c := corpusOf(
		[2]string{"D-1", "login fails on timeout"},
		[2]string{"D-2", "login fails on timeout"},
		[2]string{"D-3", "export crashes"},
	)
	m := BuildModel(c, ModelOptions{})

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 5, m.VocabularySize())
	assert.InDelta(t, math.Log(4.0/3.0)+1, m.IDF("login"), 1e-12)
	assert.InDelta(t, math.Log(2.0)+1, m.IDF("export"), 1e-12)
	assert.Zero(t, m.IDF("on"))
	assert.Zero(t, m.IDF("unknown"))

	for i := 0; i < m.Len(); i++ {
		assert.InDelta(t, 1.0, m.Doc(i).norm(), 1e-12)
	}
}

func TestBuildModelDegenerate(t *testing.T) {
	t.Run("empty corpus", func(t *testing.T) {
		m := BuildModel(corpusOf(), ModelOptions{})
		assert.Zero(t, m.Len())
		assert.True(t, m.Project("anything").IsZero())
	})

	t.Run("nil corpus", func(t *testing.T) {
		m := BuildModel(nil, ModelOptions{})
		assert.Zero(t, m.Len())
	})

	t.Run("single record", func(t *testing.T) {
		m := BuildModel(corpusOf([2]string{"D-1", "login fails"}), ModelOptions{})
		require.Equal(t, 1, m.Len())
		assert.True(t, m.Project("login fails").IsZero())
		assert.Zero(t, Score(m, m.Project("login fails"))[0].Score)
	})

	t.Run("only stop words", func(t *testing.T) {
		m := BuildModel(corpusOf([2]string{"D-1", "the and of"}, [2]string{"D-2", "it is"}), ModelOptions{})
		assert.Zero(t, m.VocabularySize())
		for _, s := range Score(m, m.Project("the")) {
			assert.Zero(t, s.Score)
		}
	})
}

func TestProject(t *testing.T) {
	c := corpusOf([2]string{"D-1", "alpha beta"}, [2]string{"D-2", "gamma"})
	m := BuildModel(c, ModelOptions{})

	t.Run("same text as a record gives its vector", func(t *testing.T) {
		assert.Equal(t, m.Doc(0), m.Project("Alpha, BETA"))
	})

	t.Run("unknown terms ignored", func(t *testing.T) {
		assert.True(t, m.Project("delta epsilon").IsZero())
		assert.Equal(t, m.Doc(1), m.Project("gamma delta"))
	})

	t.Run("does not grow the vocabulary", func(t *testing.T) {
		before := m.VocabularySize()
		_ = m.Project("zeta eta theta")
		assert.Equal(t, before, m.VocabularySize())
	})
}

func TestIsNearDuplicate(t *testing.T) {
	c := corpusOf(
		[2]string{"D-1", "login fails on timeout"},
		[2]string{"D-2", "export crashes"},
		[2]string{"D-3", "login page slow"},
	)
	m := BuildModel(c, ModelOptions{})
	assert.True(t, m.IsNearDuplicate("Login fails on timeout!", "login fails on timeout", 0.95))
	assert.False(t, m.IsNearDuplicate("login fails", "export crashes", 0.95))
	assert.False(t, m.IsNearDuplicate("", "", 0.95))
}
