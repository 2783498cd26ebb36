package logzer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogBuffer(t *testing.T) {
	lb := &LogBuffer{Level: zerolog.WarnLevel, Size: 2}

	_, _ = lb.WriteLevel(zerolog.DebugLevel, []byte(`{"message":"skipped"}`))
	_, _ = lb.WriteLevel(zerolog.WarnLevel, []byte(`{"message":"first"}`))
	_, _ = lb.WriteLevel(zerolog.ErrorLevel, []byte(`{"message":"second"}`))
	_, _ = lb.WriteLevel(zerolog.ErrorLevel, []byte(`{"message":"third"}`))

	recs := lb.Records()
	assert.Len(t, recs, 2)
	/* the ring keeps the most recent records only */
	data, err := json.Marshal(recs)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "second")
	assert.Contains(t, string(data), "third")
	assert.NotContains(t, string(data), "skipped")
	assert.NotContains(t, string(data), "first")
}

func TestLogFileRotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "test.log")
	f := &LogFile{FilePath: logPath, MaxSize: 32, Rotate: 2}
	defer f.Close()

	line := strings.Repeat("x", 20) + "\n"
	for i := 0; i < 4; i++ {
		_, err := f.Write([]byte(line))
		assert.NoError(t, err)
	}

	if _, err := os.Stat(logPath + ".1"); err != nil {
		t.Errorf("expected rotated file: %v", err)
	}
}

func TestNewWriterLastErrors(t *testing.T) {
	w := NewWriter(WithLastErrors(4), WithLevel(zerolog.InfoLevel))
	logger := zerolog.New(w)
	logger.Error().Msg("boom")
	recs := LastErrors()
	assert.NotEmpty(t, recs)
	data, err := json.Marshal(recs)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "boom")
}
