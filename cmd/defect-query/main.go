package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"defect-assistant/internal/config"
	"defect-assistant/internal/render"
	"defect-assistant/internal/similar/model"
	"defect-assistant/internal/similar/service"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// rankFlags returns fresh ranking flags; each command needs its own instances.
func rankFlags() []cli.Flag {
	def := model.DefaultOptions()
	return []cli.Flag{
		&cli.IntFlag{Name: "top-n", Aliases: []string{"n"}, Usage: "Maximum number of results", Value: def.TopN},
		&cli.Float64Flag{Name: "min-score", Usage: "Scores below this are not similar", Value: def.MinScore},
		&cli.Float64Flag{Name: "threshold", Usage: "Pairwise similarity above which results are near-duplicates", Value: def.DuplicateThreshold},
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "defect-query",
		Usage: "Find previously recorded defects similar to a description",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "corpus", Aliases: []string{"c"}, Usage: "Defect corpus (.csv, .xls, .xlsx, .db)", Value: "defects.csv", EnvVars: []string{"CORPUS_PATH"}},
			&cli.StringFlag{Name: "table", Usage: "Table to read from SQLite corpora", Value: "defects", EnvVars: []string{"CORPUS_TABLE"}},
			&cli.IntFlag{Name: "header-row", Usage: "1-based header row of spreadsheet corpora", Value: 1},
			&cli.BoolFlag{Name: "stem", Usage: "Apply English stemming to terms", EnvVars: []string{"STEM"}},
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: "Set logging level (debug, info, warn, error)", Value: "info"},
		},
		Commands: []*cli.Command{
			{
				Name:   "query",
				Usage:  "Rank the corpus against one query and write a report",
				Action: queryCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "query-file", Aliases: []string{"f"}, Usage: "File holding the query text", Value: "query.txt"},
					&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: "Query text; overrides --query-file"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output file, - for stdout", Value: "defect_results.html"},
					&cli.StringFlag{Name: "format", Usage: "html or json", Value: "html"},
				}, rankFlags()...),
			},
			{
				Name:   "batch",
				Usage:  "Rank the corpus against every line of a file, JSON lines to stdout",
				Action: batchCommand,
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "queries", Aliases: []string{"q"}, Usage: "File with one query per line", Required: true},
					&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "Concurrent queries (0 = one per CPU)"},
				}, rankFlags()...),
			},
		},
	}
}

func setupLogger(c *cli.Context) zerolog.Logger {
	return config.SetupLogger(config.Config{LogLevel: c.String("log-level")}, os.Stderr)
}

func loadEngine(c *cli.Context, logger zerolog.Logger) (*service.Engine, error) {
	corpus, err := service.LoadCorpusFile(c.String("corpus"), service.LoadOptions{
		HeaderRow: c.Int("header-row"),
		Table:     c.String("table"),
	})
	if err != nil {
		return nil, err
	}
	return service.NewEngine(corpus, service.ModelOptions{Stem: c.Bool("stem")}, logger), nil
}

func rankOptions(c *cli.Context) model.Options {
	return model.Options{
		TopN:               c.Int("top-n"),
		MinScore:           c.Float64("min-score"),
		DuplicateThreshold: c.Float64("threshold"),
	}
}

func queryCommand(c *cli.Context) error {
	logger := setupLogger(c)

	text, err := readQuery(c)
	if err != nil {
		return err
	}
	engine, err := loadEngine(c, logger)
	if err != nil {
		return err
	}
	issues := engine.Query(text, rankOptions(c))

	out := c.String("out")
	var w io.Writer = c.App.Writer
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	switch strings.ToLower(c.String("format")) {
	case "json":
		err = render.JSON(w, render.NewResponse(text, issues))
	case "html":
		err = render.ResultsHTML(w, text, issues, "")
	default:
		return fmt.Errorf("unknown format %q", c.String("format"))
	}
	if err != nil {
		return err
	}
	logger.Info().Int("results", len(issues)).Str("out", out).Msg("report written")
	return nil
}

func readQuery(c *cli.Context) (string, error) {
	if c.IsSet("text") {
		return strings.TrimSpace(c.String("text")), nil
	}
	b, err := os.ReadFile(c.String("query-file"))
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("no query found: %s does not exist", c.String("query-file"))
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

func batchCommand(c *cli.Context) error {
	logger := setupLogger(c)

	queries, err := readLines(c.String("queries"))
	if err != nil {
		return err
	}
	engine, err := loadEngine(c, logger)
	if err != nil {
		return err
	}
	results, err := engine.QueryBatch(c.Context, queries, rankOptions(c), c.Int("workers"))
	if err != nil {
		return err
	}
	for i, q := range queries {
		if err := render.JSONLine(c.App.Writer, render.NewResponse(q, results[i])); err != nil {
			return err
		}
	}
	logger.Info().Int("queries", len(queries)).Msg("batch done")
	return nil
}

// readLines returns the trimmed non-blank lines of path.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}
