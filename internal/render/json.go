package render

import (
	"encoding/json"
	"io"

	"defect-assistant/internal/similar/model"
)

// Response is the JSON shape shared by the API and the CLI.
type Response struct {
	Query   string        `json:"query"`
	Count   int           `json:"count"`
	Results []model.Issue `json:"results"`
}

func NewResponse(query string, issues []model.Issue) Response {
	if issues == nil {
		issues = []model.Issue{}
	}
	return Response{Query: query, Count: len(issues), Results: issues}
}

// JSON writes v indented, followed by a newline.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// JSONLine writes v compactly on one line.
func JSONLine(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}
