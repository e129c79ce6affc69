package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/commons/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr single error",
			err:          zerr.New("zerr error"),
			wantMessages: []string{"zerr error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{nil, nil, nil},
		},
		{
			name:         "zerr with metadata",
			err:          zerr.With(zerr.With(zerr.New("base error"), "key1", "value1"), "key2", 42),
			wantMessages: []string{"base error"},
			wantMetadata: []map[string]any{{"key1": "value1", "key2": 42}},
		},
		{
			name:         "metadata on a standard error",
			err:          zerr.With(errors.New("open a.json: no such file"), "path", "a.json"),
			wantMessages: []string{"open a.json: no such file"},
			wantMetadata: []map[string]any{{"path": "a.json"}},
		},
		{
			name:         "nil error",
			err:          nil,
			wantMessages: nil,
			wantMetadata: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			var messages []string
			var metadata []map[string]any
			for _, e := range entries {
				messages = append(messages, logger.EntryMessage(e))
				metadata = append(metadata, logger.EntryMetadata(e))
			}
			assert.Equal(t, tt.wantMessages, messages)
			assert.Equal(t, tt.wantMetadata, metadata)
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	got := logger.FormatErrorEntries(nil)
	assert.Empty(t, got)

	got = logger.FormatErrorEntries([]logger.ErrorEntry{
		logger.NewErrorEntry("conversion failed", map[string]any{"path": "a.json", "attempt": 1}),
		logger.NewErrorEntry("failed to read document", nil),
		logger.NewErrorEntry("permission denied\nsecond line", nil),
	})

	want := "Error: conversion failed (attempt=1, path=a.json)\n" +
		"\n" +
		"  Caused by:\n" +
		"    → failed to read document\n" +
		"    → permission denied\n" +
		"      second line"
	assert.Equal(t, want, got)
}
