package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Sound)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.NoError(t, cfg.Validate())
}

func TestMergeFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colorball.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nseed: 12\nsound: false\nscale: 2\n"), 0o644))

	cfg := Default()
	require.NoError(t, cfg.mergeFile(path))
	assert.Equal(t, Config{LogLevel: "debug", Seed: 12, Sound: false, Scale: 2}, cfg)

	require.NoError(t, cfg.mergeEnv(env(map[string]string{EnvSeed: "99", EnvSound: "true"})))
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.True(t, cfg.Sound)
	assert.Equal(t, "debug", cfg.LogLevel, "unset env keeps file value")
}

func TestMergeEnvErrors(t *testing.T) {
	for _, kv := range [][2]string{{EnvSeed, "-1"}, {EnvSound, "maybe"}, {EnvScale, "big"}} {
		cfg := Default()
		err := cfg.mergeEnv(env(map[string]string{kv[0]: kv[1]}))
		assert.ErrorContains(t, err, kv[0])
	}
}

func TestMergeFileErrors(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.mergeFile(filepath.Join(t.TempDir(), "missing.yaml")))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: [1"), 0o644))
	assert.Error(t, cfg.mergeFile(path))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Scale = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 3\n"), 0o644))
	t.Setenv(EnvFile, path)
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvSound, "")
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvScale, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(3), cfg.Seed)
	assert.Equal(t, "error", cfg.LogLevel)
}
