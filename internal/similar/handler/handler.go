package handler

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"defect-assistant/internal/middleware"
	"defect-assistant/internal/render"
	"defect-assistant/internal/similar/model"
	"defect-assistant/internal/similar/service"
)

// Handler serves similarity searches from one shared, read-only engine.
type Handler struct {
	engine *service.Engine
	defs   model.Options
	log    zerolog.Logger
}

func New(engine *service.Engine, defaults model.Options, logger zerolog.Logger) *Handler {
	return &Handler{engine: engine, defs: defaults, log: logger}
}

// Form renders the search page.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.FormHTML(w, "/search", h.defs.TopN, h.engine.Corpus().Len()); err != nil {
		h.log.Error().Err(err).Str("rid", middleware.GetRequestID(r)).Msg("render form")
	}
}

// Search handles the form post: user_query plus optional top_n, min_score
// and threshold. HTML by default, JSON on request. A missing user_query is a
// 400; an empty one is a valid query with no results.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "bad form: "+err.Error())
		return
	}
	if _, ok := r.Form["user_query"]; !ok {
		writeError(w, http.StatusBadRequest, "user_query is required")
		return
	}
	query := r.PostForm.Get("user_query")
	if query == "" {
		query = r.Form.Get("user_query")
	}
	h.respond(w, r, query, optionsFrom(r.Form, h.defs), wantsJSON(r))
}

// API handles GET /api/search?q=...; always JSON.
func (h *Handler) API(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.respond(w, r, q.Get("q"), optionsFrom(q, h.defs), true)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, query string, opts model.Options, asJSON bool) {
	start := time.Now()
	log := h.log.With().Str("rid", middleware.GetRequestID(r)).Logger()

	issues := h.engine.Query(query, opts)

	w.Header().Set("Cache-Control", "no-store")
	var err error
	if asJSON {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		err = render.JSON(w, render.NewResponse(query, issues))
	} else {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		err = render.ResultsHTML(w, query, issues, "/")
	}
	if err != nil {
		log.Error().Err(err).Msg("write response")
		return
	}

	log.Info().
		Int("results", len(issues)).
		Int("top_n", opts.TopN).
		Bool("json", asJSON).
		Dur("elapsed", time.Since(start)).
		Msg("search done")
}
