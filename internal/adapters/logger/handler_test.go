package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/commons/internal/adapters/logger"
)

func TestPrettyHandler(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	h := logger.NewPrettyHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))

	log := slog.New(h).With("run", 1).WithGroup("doc")
	log.Warn("skipped", "path", "a.json")

	assert.Equal(t, "! skipped run=1 doc.path=a.json\n", buf.String())
}

func TestPrettyHandler_Groups(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	log := slog.New(logger.NewPrettyHandler(&buf, nil)).
		WithGroup("doc").With("id", 7).
		WithGroup("out").With("fmt", "yaml").
		WithGroup("")
	log.Info("done", "n", 2)

	assert.Equal(t, "done doc.id=7 doc.out.fmt=yaml doc.out.n=2\n", buf.String())
}

func TestPrettyHandler_DefaultLevel(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	log := slog.New(logger.NewPrettyHandler(&buf, nil))
	log.Debug("hidden")
	log.Info("shown")

	assert.Equal(t, "shown\n", buf.String())
}
