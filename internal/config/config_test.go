package config

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/finboard/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FINBOARD_TEST_ENV_VALUE=from-dotenv\n"), 0600))
	chdirForTest(t, dir)
	t.Setenv("FINBOARD_TEST_ENV_VALUE", "")
	require.NoError(t, os.Unsetenv("FINBOARD_TEST_ENV_VALUE"))

	loaded := LoadEnv(logging.NewMockLogger())
	assert.Equal(t, ".env", loaded)
	assert.Equal(t, "from-dotenv", GetEnv("FINBOARD_TEST_ENV_VALUE", "fallback"))
}

func TestLoadEnv_NoFile(t *testing.T) {
	chdirForTest(t, filepath.Join(t.TempDir()))
	assert.Equal(t, "", LoadEnv(logging.NewMockLogger()))
}

func TestGetEnv(t *testing.T) {
	t.Setenv("FINBOARD_TEST_SET", "value")
	assert.Equal(t, "value", GetEnv("FINBOARD_TEST_SET", "fallback"))
	assert.Equal(t, "fallback", GetEnv("FINBOARD_TEST_DEFINITELY_UNSET", "fallback"))
}
