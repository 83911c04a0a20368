package service

import "defect-assistant/internal/similar/model"

// corpusOf builds a corpus whose records carry key as Issue key.
func corpusOf(pairs ...[2]string) *model.Corpus {
	c := &model.Corpus{Source: "test"}
	for _, p := range pairs {
		c.Records = append(c.Records, model.Record{
			model.FieldIssueKey:    p[0],
			model.FieldDescription: p[1],
		})
	}
	return c
}

func keys(issues []model.Issue) []string {
	out := make([]string, len(issues))
	for i, is := range issues {
		out[i] = is.IssueKey
	}
	return out
}
