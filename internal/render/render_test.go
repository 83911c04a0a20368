package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"defect-assistant/internal/similar/model"
)

func TestResultsHTML(t *testing.T) {
	issues := []model.Issue{{
		Position: 1, IssueKey: "D-1", Summary: "Login", Status: "Open",
		FixVersion: model.Placeholder, Severity: "High",
		Description: "<script>alert(1)</script>", Resolution: "restart", ScoreText: "0.82",
	}}
	var buf bytes.Buffer
	require.NoError(t, ResultsHTML(&buf, "login & timeout", issues, "/"))

	out := buf.String()
	assert.Contains(t, out, "<td>D-1</td>")
	assert.Contains(t, out, "<td>0.82</td>")
	assert.Contains(t, out, "login &amp; timeout")
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "No similar issues found")
}

func TestResultsHTMLEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ResultsHTML(&buf, "", nil, ""))
	assert.Contains(t, buf.String(), "No similar issues found")
	assert.NotContains(t, buf.String(), "<table>")
}

func TestFormHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormHTML(&buf, "/search", 3, 42))
	assert.Contains(t, buf.String(), `action="/search"`)
	assert.Contains(t, buf.String(), `name="user_query"`)
	assert.Contains(t, buf.String(), "42 defects indexed")
}

func TestNewResponse(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONLine(&buf, NewResponse("q", nil)))
	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, float64(0), got["count"])
	assert.Equal(t, []any{}, got["results"])
}
