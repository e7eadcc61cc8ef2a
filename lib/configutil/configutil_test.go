package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Port     int      `json:"port"`
	Sources  []string `json:"sources"`
	Interval int      `json:"interval"`
}

func writeFile(t *testing.T, path, contents string) {
	err := os.WriteFile(path, []byte(contents), 0o644)
	require.NoError(t, err)
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json5"), `{
		// json5 comments should parse fine
		port: 10123,
		sources: ["a", "b"],
		interval: 5,
	}`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, 10123, cfg.Port)
	require.Equal(t, []string{"a", "b"}, cfg.Sources)
	require.Equal(t, 5, cfg.Interval)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json5"), `{port: 10123, interval: 5}`)
	writeFile(t, filepath.Join(dir, "config.local.json5"), `{port: 8080}`)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 5, cfg.Interval)
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
