package service

import (
	"math"
	"sort"

	"defect-assistant/internal/similar/model"
)

// ModelOptions tune how descriptions are analysed.
type ModelOptions struct {
	Stem bool // apply Snowball English stemming after stop-word removal
}

// Vector is a sparse weight vector. Idx is strictly increasing so that dot
// products are always summed in the same order.
type Vector struct {
	Idx []int
	Val []float64
}

// IsZero reports whether the vector has no non-zero weight.
func (v Vector) IsZero() bool { return len(v.Idx) == 0 }

func (v Vector) norm() float64 {
	var s float64
	for _, x := range v.Val {
		s += x * x
	}
	return math.Sqrt(s)
}

// TermModel holds the vocabulary, smoothed IDF weights and one L2-normalised
// vector per corpus record. It is never mutated after BuildModel returns.
type TermModel struct {
	an    analyzer
	vocab map[string]int
	terms []string
	idf   []float64
	docs  []Vector
}

// BuildModel weights every description in corpus with TF-IDF:
// raw count * (ln((1+n)/(1+df)) + 1), rows normalised to unit length.
// With fewer than two records or an empty vocabulary the model projects
// everything to the zero vector.
func BuildModel(corpus *model.Corpus, opts ModelOptions) *TermModel {
	m := &TermModel{
		an:    newAnalyzer(opts.Stem),
		vocab: map[string]int{},
	}
	n := corpus.Len()
	m.docs = make([]Vector, n)
	if n < 2 {
		return m
	}

	docTerms := make([][]string, n)
	df := make(map[string]int)
	for i, rec := range corpus.Records {
		docTerms[i] = m.an.terms(rec.Description())
		seen := make(map[string]struct{}, len(docTerms[i]))
		for _, t := range docTerms[i] {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}
	if len(df) == 0 {
		return m
	}

	m.terms = make([]string, 0, len(df))
	for t := range df {
		m.terms = append(m.terms, t)
	}
	sort.Strings(m.terms)
	m.idf = make([]float64, len(m.terms))
	for i, t := range m.terms {
		m.vocab[t] = i
		m.idf[i] = math.Log(float64(1+n)/float64(1+df[t])) + 1
	}
	for i, terms := range docTerms {
		m.docs[i] = m.weigh(terms)
	}
	return m
}

// Project maps text into the model's weight space. Unknown terms are ignored.
func (m *TermModel) Project(text string) Vector {
	if len(m.vocab) == 0 {
		return Vector{}
	}
	return m.weigh(m.an.terms(text))
}

// weigh builds a unit-length vector from a term list.
func (m *TermModel) weigh(terms []string) Vector {
	counts := make(map[int]int)
	for _, t := range terms {
		if i, ok := m.vocab[t]; ok {
			counts[i]++
		}
	}
	if len(counts) == 0 {
		return Vector{}
	}
	v := Vector{Idx: make([]int, 0, len(counts))}
	for i := range counts {
		v.Idx = append(v.Idx, i)
	}
	sort.Ints(v.Idx)
	v.Val = make([]float64, len(v.Idx))
	for k, i := range v.Idx {
		v.Val[k] = float64(counts[i]) * m.idf[i]
	}
	if nrm := v.norm(); nrm > 0 {
		for k := range v.Val {
			v.Val[k] /= nrm
		}
	}
	return v
}

// Doc returns the stored vector of record i.
func (m *TermModel) Doc(i int) Vector { return m.docs[i] }

// Len is the number of records the model was built from.
func (m *TermModel) Len() int { return len(m.docs) }

// VocabularySize is the number of distinct terms kept.
func (m *TermModel) VocabularySize() int { return len(m.terms) }

// IDF returns the weight of term, or 0 for terms outside the vocabulary.
func (m *TermModel) IDF(term string) float64 {
	if i, ok := m.vocab[term]; ok {
		return m.idf[i]
	}
	return 0
}

// IsNearDuplicate reports whether the projections of a and b have a cosine
// above threshold.
func (m *TermModel) IsNearDuplicate(a, b string, threshold float64) bool {
	return Cosine(m.Project(a), m.Project(b)) > threshold
}
