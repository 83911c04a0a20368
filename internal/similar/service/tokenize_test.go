package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"login", "fails", "on", "timeout"}, tokenize("Login FAILS on timeout!"))
	assert.Equal(t, []string{"error_code", "42", "über"}, tokenize("error_code=42, a über"))
	assert.Empty(t, tokenize(""))
	assert.Empty(t, tokenize("a b c . ,"))
}

func TestAnalyzerTerms(t *testing.T) {
	t.Run("removes stop words", func(t *testing.T) {
		an := newAnalyzer(false)
		assert.Equal(t, []string{"login", "fails", "timeout"}, an.terms("The login fails on a timeout"))
	})

	t.Run("stems when enabled", func(t *testing.T) {
		an := newAnalyzer(true)
		assert.Equal(t, []string{"crash", "export"}, an.terms("crashes exporting"))
	})
}

func TestDefaultStopwordsIsFresh(t *testing.T) {
	a := DefaultStopwords()
	delete(a, "the")
	_, ok := DefaultStopwords()["the"]
	assert.True(t, ok)
}
