package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []int{1}, cfg.Versions)
	assert.Equal(t, []uint8{1}, cfg.AcceptedVersions())
	assert.Equal(t, "$", cfg.Report.Currency)
	assert.True(t, cfg.Report.CSVHeader)
}

func TestAcceptedVersionsSkipsOutOfRange(t *testing.T) {
	cfg := &Config{Versions: []int{1, 300, -2, 7}}
	assert.Equal(t, []uint8{1, 7}, cfg.AcceptedVersions())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txlog.yaml")

	cfg := Default()
	cfg.Versions = []int{1, 2}
	cfg.Report.Currency = "€"
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txlog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("report:\n  currency: \"£\"\n  csv_header: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "£", cfg.Report.Currency)
	assert.Equal(t, []int{1}, cfg.Versions, "unset keys keep their defaults")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txlog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("versions: [1\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
