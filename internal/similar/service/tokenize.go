package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/kljensen/snowball/english"
)

// analyzer turns text into index terms. Pipeline: lower -> split -> stop -> stem.
type analyzer struct {
	stop map[string]struct{}
	stem bool
}

func newAnalyzer(stem bool) analyzer {
	return analyzer{stop: DefaultStopwords(), stem: stem}
}

// terms returns the terms of text in order, duplicates kept.
func (a analyzer) terms(text string) []string {
	toks := tokenize(text)
	out := toks[:0]
	for _, t := range toks {
		if _, bad := a.stop[t]; bad {
			continue
		}
		if a.stem {
			t = english.Stem(t, false)
			if t == "" {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// tokenize lowercases text and returns maximal runs of letters, digits and
// underscores that are at least two runes long.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
	out := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) >= 2 {
			out = append(out, f)
		}
	}
	return out
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
