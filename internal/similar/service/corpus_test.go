package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"defect-assistant/internal/similar/model"
)

const sampleCSV = `Issue key,Summary,Status,Description,Comment
D-1,Login,Open,login fails on timeout,raised timeout
D-2,Login dup,Closed,  ,
D-3,Export,Open,export crashes,"fixed in 2.1"
D-4,broken,row
D-5,Print,Open,printer queue stalls,
`

func TestLoadCorpus(t *testing.T) {
	c, err := LoadCorpus(strings.NewReader(sampleCSV), "defects.csv", 1)
	require.NoError(t, err)

	// 5 data rows: D-2 has a blank description, D-4 has the wrong width
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 2, c.Skipped)
	assert.Equal(t, "D-1", c.Records[0][model.FieldIssueKey])
	assert.Equal(t, "D-3", c.Records[1][model.FieldIssueKey])
	assert.Equal(t, "fixed in 2.1", c.Records[1][model.FieldComment])
	assert.Equal(t, "D-5", c.Records[2][model.FieldIssueKey])
}

func TestLoadCorpusWithoutDescriptionColumn(t *testing.T) {
	c, err := LoadCorpus(strings.NewReader("Issue key,Summary\nD-1,x\n"), "defects.csv", 0)
	require.NoError(t, err)
	assert.Zero(t, c.Len())
	assert.Equal(t, 1, c.Skipped)
}

func TestLoadCorpusFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defects.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	c, err := LoadCorpusFile(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, path, c.Source)

	t.Run("missing file is a load error", func(t *testing.T) {
		_, err := LoadCorpusFile(filepath.Join(dir, "nope.csv"), LoadOptions{})
		var le *LoadError
		require.True(t, errors.As(err, &le))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unsupported format is a load error", func(t *testing.T) {
		_, err := LoadCorpus(strings.NewReader("{}"), "defects.json", 1)
		var le *LoadError
		assert.True(t, errors.As(err, &le))
		assert.Contains(t, err.Error(), "defects.json")
	})
}

func TestAssemble(t *testing.T) {
	c := &model.Corpus{Records: []model.Record{
		{model.FieldDescription: "login fails", model.FieldIssueKey: "D-1", model.FieldComment: "restart"},
		{model.FieldDescription: "export crashes", model.FieldSeverity: "High"},
	}}
	got := Assemble([]model.Match{{Index: 1, Score: 0.456}, {Index: 0, Score: 0.1}}, c)
	require.Len(t, got, 2)

	assert.Equal(t, 1, got[0].Position)
	assert.Equal(t, model.Placeholder, got[0].IssueKey)
	assert.Equal(t, "High", got[0].Severity)
	assert.Equal(t, "0.46", got[0].ScoreText)
	assert.Equal(t, model.Placeholder, got[0].Resolution)

	assert.Equal(t, 2, got[1].Position)
	assert.Equal(t, "restart", got[1].Resolution)
	assert.Equal(t, "0.10", got[1].ScoreText)
}

func TestLoadCorpusRepeatedHeaders(t *testing.T) {
	in := "Issue key,Description,Comment,Comment\n" +
		"D-1,login fails on timeout,raised the timeout to 60s,\n" +
		"D-2,export crashes on large reports,,see D-1\n"
	c, err := LoadCorpus(strings.NewReader(in), "defects.csv", 1)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	got := Query(BuildModel(c, ModelOptions{}), c, "login timeout", model.DefaultOptions())
	require.NotEmpty(t, got)
	assert.Equal(t, "D-1", got[0].IssueKey)
	assert.Equal(t, "raised the timeout to 60s", got[0].Resolution)
	assert.Equal(t, "see D-1", c.Records[1]["Comment.1"])
}

func TestLoadCorpusMalformedXLS(t *testing.T) {
	_, err := LoadCorpus(strings.NewReader("garbage"), "defects.xls", 1)
	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "defects.xls", le.Source)
}
