package service

import (
	"sort"
	"strings"

	"defect-assistant/internal/similar/model"
)

// Rank orders scores best first (ties keep corpus order), drops anything under
// opts.MinScore and accepts at most opts.TopN records, skipping a candidate
// whose normalised description was already accepted or that is a near
// duplicate of an accepted one.
func Rank(scores []model.Match, corpus *model.Corpus, m *TermModel, opts model.Options) []model.Match {
	if opts.TopN <= 0 || len(scores) == 0 {
		return nil
	}
	sorted := make([]model.Match, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})

	out := make([]model.Match, 0, opts.TopN)
	seen := make(map[string]struct{}, opts.TopN)
	for _, cand := range sorted {
		// sorted descending: nothing after this can pass either
		if cand.Score < opts.MinScore {
			break
		}
		desc := corpus.Records[cand.Index].Description()
		key := normalizeDescription(desc)
		if _, dup := seen[key]; dup {
			continue
		}
		if nearDuplicateOfAny(desc, out, corpus, m, opts.DuplicateThreshold) {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, cand)
		if len(out) >= opts.TopN {
			break
		}
	}
	return out
}

func nearDuplicateOfAny(desc string, accepted []model.Match, corpus *model.Corpus, m *TermModel, threshold float64) bool {
	for _, a := range accepted {
		if m.IsNearDuplicate(desc, corpus.Records[a.Index].Description(), threshold) {
			return true
		}
	}
	return false
}

func normalizeDescription(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
