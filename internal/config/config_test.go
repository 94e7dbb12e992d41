package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := load(filepath.Join(home, ".rezydent", "config.yaml"), home)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".rezydent", "rezydent.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(home, ".rezydent", "catalogue"), cfg.CatalogueDir)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ".rezydent")
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /data/file.db\ncatalogue_dir: /data/catalogue\n"), 0644))

	cfg, err := load(path, home)
	require.NoError(t, err)
	assert.Equal(t, "/data/file.db", cfg.DBPath)

	t.Setenv("REZYDENT_DB", "/env/wins.db")
	cfg, err = load(path, home)
	require.NoError(t, err)
	assert.Equal(t, "/env/wins.db", cfg.DBPath, "environment beats the file")
	assert.Equal(t, "/data/catalogue", cfg.CatalogueDir)
}

func TestLoad_MalformedFile(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: [broken"), 0644))

	_, err := load(path, home)
	require.Error(t, err)
}
