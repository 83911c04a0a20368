package service

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"

	"defect-assistant/internal/similar/model"
)

// Query scores text against the corpus and returns the deduplicated top
// results ready for rendering. Any text, including "", is valid.
func Query(m *TermModel, corpus *model.Corpus, text string, opts model.Options) []model.Issue {
	scores := Score(m, m.Project(text))
	return Assemble(Rank(scores, corpus, m, opts), corpus)
}

// Engine pairs a corpus with the model built from it. Both are read-only, so
// one Engine serves concurrent queries without locking.
type Engine struct {
	corpus *model.Corpus
	model  *TermModel
	log    zerolog.Logger
}

// NewEngine builds the term model for corpus.
func NewEngine(corpus *model.Corpus, opts ModelOptions, logger zerolog.Logger) *Engine {
	if corpus == nil {
		corpus = &model.Corpus{}
	}
	start := time.Now()
	m := BuildModel(corpus, opts)
	logger.Info().
		Str("source", corpus.Source).
		Int("records", corpus.Len()).
		Int("skipped", corpus.Skipped).
		Int("vocabulary", m.VocabularySize()).
		Bool("stem", opts.Stem).
		Dur("elapsed", time.Since(start)).
		Msg("model built")
	return &Engine{corpus: corpus, model: m, log: logger}
}

func (e *Engine) Corpus() *model.Corpus { return e.corpus }

func (e *Engine) Model() *TermModel { return e.model }

// Query runs one query through the engine.
func (e *Engine) Query(text string, opts model.Options) []model.Issue {
	res := Query(e.model, e.corpus, text, opts)
	e.log.Debug().
		Int("query_len", len(text)).
		Int("top_n", opts.TopN).
		Int("results", len(res)).
		Msg("query")
	return res
}

// QueryBatch runs queries on a pool of workers goroutines; workers <= 0 uses
// one per CPU. results[i] belongs to queries[i].
func (e *Engine) QueryBatch(ctx context.Context, queries []string, opts model.Options, workers int) ([][]model.Issue, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([][]model.Issue, len(queries))
	var wg sync.WaitGroup
	for i, q := range queries {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		i, q := i, q
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results[i] = e.Query(q, opts)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}
	wg.Wait()
	return results, nil
}
