package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
	}
	for in, want := range cases {
		got, ok := ParseLevel(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	got, ok := ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, slog.LevelInfo, got)
}

func TestAdapterWritesThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	InitWithZap(zap.New(core), slog.LevelInfo)

	log := NewSlogAdapter()
	log.Debug("hidden")
	log.Info("generate tokens.json success.", "file", "tokens.json")
	log.Warn("careful")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "generate tokens.json success.", entries[0].Message)
		assert.Equal(t, "tokens.json", entries[0].ContextMap()["file"])
		assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	}
}
