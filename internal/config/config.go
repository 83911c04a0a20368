package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"defect-assistant/internal/similar/model"
	"defect-assistant/internal/similar/service"
	"defect-assistant/internal/utils"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	LogFile      string // empty disables the rotating file
	MaxUploadMB  int

	CorpusPath      string
	CorpusTable     string
	CorpusHeaderRow int
	Stem            bool

	TopN               int
	MinScore           float64
	DuplicateThreshold float64
}

// Load reads .env when present, then the environment.
func Load() Config {
	_ = godotenv.Load()

	def := model.DefaultOptions()
	return Config{
		Host:               getenv("HOST", "127.0.0.1"),
		Port:               utils.IntOr(getenv("PORT", ""), 8082),
		AllowOrigins:       strings.Split(getenv("ALLOW_ORIGINS", "*"), ","),
		LogLevel:           getenv("LOG_LEVEL", "info"),
		LogFile:            getenv("LOG_FILE", "logs/defect-assistant.log"),
		MaxUploadMB:        utils.IntOr(getenv("MAX_UPLOAD_MB", ""), 8),
		CorpusPath:         getenv("CORPUS_PATH", "defects.csv"),
		CorpusTable:        getenv("CORPUS_TABLE", "defects"),
		CorpusHeaderRow:    utils.IntOr(getenv("CORPUS_HEADER_ROW", ""), 1),
		Stem:               utils.BoolOr(getenv("STEM", ""), false),
		TopN:               utils.IntOr(getenv("TOP_N", ""), def.TopN),
		MinScore:           utils.FloatOr(getenv("MIN_SCORE", ""), def.MinScore),
		DuplicateThreshold: utils.FloatOr(getenv("DUPLICATE_THRESHOLD", ""), def.DuplicateThreshold),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

// SearchOptions are the ranking defaults for requests that set none.
func (c Config) SearchOptions() model.Options {
	return model.Options{
		TopN:               c.TopN,
		MinScore:           c.MinScore,
		DuplicateThreshold: c.DuplicateThreshold,
	}
}

func (c Config) LoadOptions() service.LoadOptions {
	return service.LoadOptions{HeaderRow: c.CorpusHeaderRow, Table: c.CorpusTable}
}

func (c Config) ModelOptions() service.ModelOptions {
	return service.ModelOptions{Stem: c.Stem}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
