package model

import "strings"

// Column names recognised in a defect corpus. Matching is exact.
const (
	FieldDescription = "Description"
	FieldIssueKey    = "Issue key"
	FieldSummary     = "Summary"
	FieldStatus      = "Status"
	FieldFixVersion  = "Fix Version"
	FieldSeverity    = "Severity"
	FieldComment     = "Comment"
)

// Placeholder is shown for optional fields that are missing or blank.
const Placeholder = "N/A"

// Record is one defect row, field name -> value.
type Record map[string]string

// Description returns the raw description text.
func (r Record) Description() string { return r[FieldDescription] }

// Field returns the trimmed value of name, or Placeholder when absent or blank.
func (r Record) Field(name string) string {
	if v := strings.TrimSpace(r[name]); v != "" {
		return v
	}
	return Placeholder
}

// Corpus is the ordered set of records that have a description.
type Corpus struct {
	Source  string
	Records []Record
	Skipped int // rows dropped at load time
}

// Len returns the number of records; nil-safe.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Records)
}

type Options struct {
	TopN               int     `json:"topN"`               // max results returned
	MinScore           float64 `json:"minScore"`           // scores below are "not similar"
	DuplicateThreshold float64 `json:"duplicateThreshold"` // pairwise cosine above is a near-duplicate
}

// DefaultOptions returns TopN 3, MinScore 0.01, DuplicateThreshold 0.95.
func DefaultOptions() Options {
	return Options{TopN: 3, MinScore: 0.01, DuplicateThreshold: 0.95}
}

// Match pairs a corpus index with its similarity to the query.
type Match struct {
	Index int
	Score float64
}

// Issue is a ranked result projected for presentation.
type Issue struct {
	Position    int     `json:"position"`
	IssueKey    string  `json:"issueKey"`
	Summary     string  `json:"summary"`
	Status      string  `json:"status"`
	FixVersion  string  `json:"fixVersion"`
	Severity    string  `json:"severity"`
	Description string  `json:"description"`
	Resolution  string  `json:"resolution"`
	Score       float64 `json:"score"`
	ScoreText   string  `json:"scoreText"`
}
