package service

import (
	"fmt"

	"defect-assistant/internal/similar/model"
)

// Assemble projects ranked matches into presentation records. Resolution is
// taken from the Comment column.
func Assemble(matches []model.Match, corpus *model.Corpus) []model.Issue {
	out := make([]model.Issue, 0, len(matches))
	for i, mt := range matches {
		rec := corpus.Records[mt.Index]
		out = append(out, model.Issue{
			Position:    i + 1,
			IssueKey:    rec.Field(model.FieldIssueKey),
			Summary:     rec.Field(model.FieldSummary),
			Status:      rec.Field(model.FieldStatus),
			FixVersion:  rec.Field(model.FieldFixVersion),
			Severity:    rec.Field(model.FieldSeverity),
			Description: rec.Description(),
			Resolution:  rec.Field(model.FieldComment),
			Score:       mt.Score,
			ScoreText:   fmt.Sprintf("%.2f", mt.Score),
		})
	}
	return out
}
