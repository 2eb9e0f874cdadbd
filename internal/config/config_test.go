package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cfg, err := Parse(strings.NewReader(`
threshold: 64
threads: 3
outDir: out
format: dds
maxEdge: 512
debug: true
`))
	require.NoError(t, err)
	require.Equal(t, Config{
		Threshold: 64,
		Threads:   3,
		OutDir:    "out",
		Format:    "dds",
		MaxEdge:   512,
		Debug:     true,
	}, cfg)
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader("outDir: x\n"))
	require.NoError(t, err)
	require.Equal(t, 128, cfg.Threshold)
	require.Equal(t, "bmp", cfg.Format)
	require.Equal(t, "x", cfg.OutDir)
	require.GreaterOrEqual(t, cfg.Threads, 1)

	cfg, err = Parse(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Default().Threshold, cfg.Threshold)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("treshold: 3\n"))
	require.Error(t, err)
}

func TestParseClampsThreads(t *testing.T) {
	cfg, err := Parse(strings.NewReader("threads: 0\n"))
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Threads)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, DefaultPath))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threshold: 1\n"), 0666))
	cfg, err = Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Threshold)

	require.NoError(t, os.WriteFile(path, []byte("threshold: [\n"), 0666))
	_, err = Load(path)
	require.ErrorContains(t, err, "custom.yaml")
}
