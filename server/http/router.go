package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"defect-assistant/internal/config"
	"defect-assistant/internal/middleware"
	simHnd "defect-assistant/internal/similar/handler"
	"defect-assistant/internal/similar/service"
	"defect-assistant/server/http/handlers"
)

func NewRouter(cfg config.Config, engine *service.Engine, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// порядок важен: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health(engine))

	h := simHnd.New(engine, cfg.SearchOptions(), logger)
	r.Get("/", h.Form)
	r.Post("/search", h.Search)
	r.Get("/api/search", h.API)

	return r
}
