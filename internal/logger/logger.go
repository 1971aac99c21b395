// Package logger provides structured logging utilities for cal.
// It includes environment-aware handler selection and request-scoped loggers.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/cloud-abstraction-layer/cal/internal/constants"

	"github.com/lmittmann/tint"
)

// Initialize sets up the global slog logger based on the environment
func Initialize(env constants.Environment, level slog.Level) *slog.Logger {
	logger := New(os.Stderr, env, level)
	slog.SetDefault(logger)
	slog.Debug("logger initialized", "env", env, "level", level)

	return logger
}

// New builds a logger writing to w: JSON in production, tint-colored text otherwise.
func New(w io.Writer, env constants.Environment, level slog.Level) *slog.Logger {
	var handler slog.Handler

	if env == constants.Production {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:       level,
			TimeFormat:  time.TimeOnly,
			ReplaceAttr: replaceAttrForDev,
			NoColor:     !isTerminal(w),
		})
	}

	return slog.New(handler)
}

// ParseLevel converts a level name to a slog.Level, defaulting to INFO.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// replaceAttrForDev flattens map values into "key.sub=value" pairs so headers and
// query maps stay readable on a terminal.
func replaceAttrForDev(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindAny {
		return a
	}
	switch a.Value.Any().(type) {
	case map[string]string, map[string]any, map[string][]string:
		return slog.String(a.Key, flattenMapAttr(a.Key, a.Value.Any()))
	}
	return a
}

func flattenMapAttr(prefix string, value any) string {
	var parts []string
	appendPart := func(key string, v any) {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if nested, ok := v.(map[string]any); ok {
			parts = append(parts, flattenMapAttr(full, nested))
			return
		}
		parts = append(parts, fmt.Sprintf("%s=%v", full, v))
	}

	switch m := value.(type) {
	case map[string]string:
		for _, k := range slices.Sorted(maps.Keys(m)) {
			appendPart(k, m[k])
		}
	case map[string][]string:
		for _, k := range slices.Sorted(maps.Keys(m)) {
			appendPart(k, strings.Join(m[k], ","))
		}
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(m)) {
			appendPart(k, m[k])
		}
	}
	return strings.Join(parts, " ")
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		fileInfo, err := f.Stat()
		return err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0
	}
	return false
}
