package handler

import (
	"encoding/json"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"defect-assistant/internal/similar/model"
	"defect-assistant/internal/utils"
)

// maxTopN caps what a single request may ask for.
const maxTopN = 50

// optionsFrom overrides def with top_n, min_score and threshold from v.
// Values that do not parse keep the default.
func optionsFrom(v url.Values, def model.Options) model.Options {
	opts := def
	opts.TopN = utils.IntOr(v.Get("top_n"), def.TopN)
	if opts.TopN > maxTopN {
		opts.TopN = maxTopN
	}
	opts.MinScore = utils.FloatOr(v.Get("min_score"), def.MinScore)
	opts.DuplicateThreshold = utils.FloatOr(v.Get("threshold"), def.DuplicateThreshold)
	return opts
}

// wantsJSON is true for format=json or an Accept header preferring JSON.
func wantsJSON(r *http.Request) bool {
	if strings.EqualFold(r.FormValue("format"), "json") {
		return true
	}
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mt, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mt == "application/json" {
			return true
		}
	}
	return false
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
