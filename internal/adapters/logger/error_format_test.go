package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/graphcache/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: []string{"boom"},
		},
		{
			name: "zerr over plain",
			err:  zerr.Wrap(errors.New("boom"), "replay failed"),
			want: []string{"replay failed", "boom"},
		},
		{
			name: "zerr over zerr",
			err:  zerr.Wrap(zerr.New("invalid selection syntax"), "failed to parse scenario file"),
			want: []string{"failed to parse scenario file", "invalid selection syntax"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntries(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	got := logger.FormatErrorEntries([]string{"top", "middle\nmore", "bottom"})
	want := "Error: top\n\n  Caused by:\n    → middle\n      more\n    → bottom"
	assert.Equal(t, want, got)
}

func TestFormatErrorEntries_MultilineHead(t *testing.T) {
	got := logger.FormatErrorEntries([]string{"first\nsecond"})
	assert.Equal(t, "Error: first\n       second", got)
}
