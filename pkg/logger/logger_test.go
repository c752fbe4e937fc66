package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitialize_InvalidLevel(t *testing.T) {
	err := Initialize(Config{Level: "loud"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestInitialize_WritesToLogDir(t *testing.T) {
	dir := t.TempDir()
	t.Cleanup(func() { Log = zap.NewNop() })

	require.NoError(t, Initialize(Config{Level: "debug", LogDir: dir}))
	LogAPICall("GET", "/api/auth/profile", 200, 0.12)
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, "flexzone.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"path":"/api/auth/profile"`)
	assert.Contains(t, string(data), `"status":200`)
}

func TestInitialize_NoSinksIsNop(t *testing.T) {
	t.Cleanup(func() { Log = zap.NewNop() })

	require.NoError(t, Initialize(Config{Level: "info"}))
	assert.NotPanics(t, func() {
		Info("nothing to see")
		LogError(assert.AnError, "still fine")
	})
}
