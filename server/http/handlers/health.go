package handlers

import (
	"encoding/json"
	"net/http"

	"defect-assistant/internal/similar/service"
)

// Health reports liveness and the size of the loaded corpus.
func Health(engine *service.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"status":     "ok",
			"records":    engine.Corpus().Len(),
			"vocabulary": engine.Model().VocabularySize(),
		})
	}
}
