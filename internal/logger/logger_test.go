package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log := New(zerolog.WarnLevel)
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf, zerolog.InfoLevel)

	log.Info().Str("stage", "parse").Msg("test message")
	log.Debug().Msg("hidden")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, `"stage":"parse"`)
	assert.NotContains(t, output, "hidden")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    zerolog.Level
		wantErr bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, false},
		{"  WARN ", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"loud", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromContext(t *testing.T) {
	buf := &bytes.Buffer{}
	testLog := NewWithWriter(buf, zerolog.InfoLevel)
	ctx := WithContext(context.Background(), testLog)

	retrievedLog := FromContext(ctx)
	retrievedLog.Info().Msg("test")

	assert.NotZero(t, buf.Len(), "Expected log output from retrieved logger")
}

func TestFromContext_DefaultLogger(t *testing.T) {
	log := FromContext(context.Background())
	assert.Equal(t, zerolog.Disabled, log.GetLevel())
}

func TestWithFields(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf, zerolog.InfoLevel)

	logWithFields := WithFields(log, map[string]interface{}{
		"run_id": "123",
		"region": "North",
	})
	logWithFields.Info().Msg("test message")

	output := buf.String()
	assert.Contains(t, output, `"run_id":"123"`)
	assert.Contains(t, output, `"region":"North"`)
}
