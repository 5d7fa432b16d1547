package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFilesMergesJSONThenDotEnv(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "app.json")
	envPath := filepath.Join(dir, ".env")

	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"app_port":"9000","rate_limit":50,"auth_enforce":true}`), 0o644))
	require.NoError(t, os.WriteFile(envPath, []byte("# comment\nAPP_PORT=\"9100\"\nCACHE_TTL=45s\n"), 0o644))

	require.NoError(t, loadFromFiles(jsonPath, envPath))
	t.Cleanup(func() { _ = loadFromFiles(filepath.Join(dir, "none.json"), filepath.Join(dir, "none.env")) })

	assert.Equal(t, "9100", get("APP_PORT", defaultAppPort))
	assert.Equal(t, 50, getInt("RATE_LIMIT", defaultRateLimit))
	assert.True(t, getBool("AUTH_ENFORCE", false))
	assert.Equal(t, 45*time.Second, CacheTTL())
}

func TestLoadFromFilesMissingFilesUseDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, loadFromFiles(filepath.Join(dir, "missing.json"), filepath.Join(dir, "missing.env")))

	assert.Equal(t, defaultAppPort, get("APP_PORT", defaultAppPort))
	assert.Equal(t, "", get("REDIS_ADDR", ""))
	assert.True(t, getBool("SEED_FIXTURES", false))
	assert.False(t, getBool("AUTH_ENFORCE", true))
}

func TestLoadFromFilesRejectsBrokenJSON(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "app.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{not json`), 0o644))

	err := loadFromFiles(jsonPath, filepath.Join(dir, "missing.env"))
	assert.Error(t, err)
}

func TestNumericAccessorsFallBackOnGarbage(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("RATE_LIMIT=lots\nCACHE_TTL=-3\nMAX_BODY_BYTES=0\n"), 0o644))

	require.NoError(t, loadFromFiles(filepath.Join(dir, "missing.json"), envPath))
	t.Cleanup(func() { _ = loadFromFiles(filepath.Join(dir, "none.json"), filepath.Join(dir, "none.env")) })

	assert.Equal(t, defaultRateLimit, getInt("RATE_LIMIT", defaultRateLimit))
	assert.Equal(t, defaultCacheTTL, CacheTTL())
	assert.Equal(t, defaultMaxBodyBytes, getInt("MAX_BODY_BYTES", defaultMaxBodyBytes))
}
