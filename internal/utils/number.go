package utils

import (
	"math"
	"strconv"
	"strings"
)

// ParseFloat парсит "0.95", "0,95" и значения с (неразрывными) пробелами.
// NaN и Inf не принимаем.
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	repl := strings.NewReplacer("\u00A0", "", "\u202F", "", " ", "", ",", ".")
	f, err := strconv.ParseFloat(repl.Replace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FloatOr returns the parsed value of s, or def when s does not parse.
func FloatOr(s string, def float64) float64 {
	if f, ok := ParseFloat(s); ok {
		return f
	}
	return def
}

// IntOr returns the parsed value of s, or def when s does not parse.
func IntOr(s string, def int) int {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return i
}

// BoolOr understands 1/0, true/false, yes/no, y/n, on/off.
func BoolOr(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
