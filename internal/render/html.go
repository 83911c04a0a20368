package render

import (
	"html/template"
	"io"

	"defect-assistant/internal/similar/model"
)

const style = `
body { font-family: Arial, sans-serif; padding: 20px; background: #f9f9f9; }
table { width: 100%; border-collapse: collapse; background: white; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; vertical-align: top; }
th { background: #4CAF50; color: white; }
tr:nth-child(even) { background: #f2f2f2; }
textarea { width: 100%; }
`

var pages = template.Must(template.New("results").Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>Defect Assistant - Similar Issues</title>
<style>{{.Style}}</style></head><body>
<h2>Top similar past issues</h2>
{{if .Query}}<p>Query: <em>{{.Query}}</em></p>{{end}}
{{if .Issues}}<table>
<tr><th>#</th><th>Issue Key</th><th>Summary</th><th>Status</th><th>Fix Version</th><th>Severity</th><th>Description</th><th>Resolution</th><th>Similarity Score</th></tr>
{{range .Issues}}<tr><td>{{.Position}}</td><td>{{.IssueKey}}</td><td>{{.Summary}}</td><td>{{.Status}}</td><td>{{.FixVersion}}</td><td>{{.Severity}}</td><td>{{.Description}}</td><td>{{.Resolution}}</td><td>{{.ScoreText}}</td></tr>
{{end}}</table>{{else}}<p>No similar issues found.</p>{{end}}
{{if .FormAction}}<p><a href="{{.FormAction}}">New search</a></p>{{end}}
</body></html>
`))

func init() {
	template.Must(pages.New("form").Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>Defect Assistant</title>
<style>{{.Style}}</style></head><body>
<h2>Find similar past issues</h2>
<form method="post" action="{{.FormAction}}">
<p><textarea name="user_query" rows="6" placeholder="Describe the defect">{{.Query}}</textarea></p>
<p>Results: <input type="number" name="top_n" min="1" value="{{.TopN}}">
<button type="submit">Search</button></p>
</form>
<p>{{.Records}} defects indexed.</p>
</body></html>
`))
}

type pageData struct {
	Style      template.CSS
	Query      string
	Issues     []model.Issue
	FormAction string
	TopN       int
	Records    int
}

// ResultsHTML writes the results table for query. An empty list renders a
// "no similar issues" notice. back, when set, links to a new search.
func ResultsHTML(w io.Writer, query string, issues []model.Issue, back string) error {
	return pages.ExecuteTemplate(w, "results", pageData{
		Style:      template.CSS(style),
		Query:      query,
		Issues:     issues,
		FormAction: back,
	})
}

// FormHTML writes the search form posting to action.
func FormHTML(w io.Writer, action string, topN, records int) error {
	return pages.ExecuteTemplate(w, "form", pageData{
		Style:      template.CSS(style),
		FormAction: action,
		TopN:       topN,
		Records:    records,
	})
}
