package logging

import (
	"bytes"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesToFile(t *testing.T) {
	prevDefault := slog.Default()
	prevOutput := log.Writer()
	t.Cleanup(func() {
		slog.SetDefault(prevDefault)
		log.SetOutput(prevOutput)
	})

	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := Init(dir, slog.LevelInfo)
	require.NoError(t, err)

	slog.Info("hello from slog", "user_id", 7)
	slog.Debug("below threshold")
	log.Print("hello from log")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "lista.log"))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "hello from slog")
	assert.Contains(t, content, "user_id=7")
	assert.Contains(t, content, "hello from log")
	assert.NotContains(t, content, "below threshold")
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Info("quiet")
	logger.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}
