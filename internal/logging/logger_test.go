package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "contactform.log")

	logger, err := New(path, false)
	require.NoError(t, err)

	logger.Info("submit accepted", "snapshot_id", "abc")
	logger.Debug("hidden at info level")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	output := string(data)
	assert.Contains(t, output, "submit accepted")
	assert.Contains(t, output, "snapshot_id=abc")
	assert.NotContains(t, output, "hidden at info level")
}

func TestNewWithoutPathDiscards(t *testing.T) {
	logger, err := New("", true)
	require.NoError(t, err)

	logger.Info("dropped")
	assert.NoError(t, logger.Close())
}

func TestNewWriterDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, true)

	logger.Debug("field validated", "field", "email")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "field=email")
}

func TestCloseNilLogger(t *testing.T) {
	var logger *Logger
	assert.NoError(t, logger.Close())
	assert.NoError(t, Discard().Close())
}
