package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDecodesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sqlsmith.toml")
	body := `
target = "mysql://root@127.0.0.1:3306/fuzzdb"
seed = 42
max_queries = 1000
verbose = true
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mysql://root@127.0.0.1:3306/fuzzdb", cfg.Target)
	assert.EqualValues(t, 42, cfg.Seed)
	assert.Equal(t, 1000, cfg.MaxQueries)
	assert.True(t, cfg.Verbose)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/sqlsmith.toml")
	assert.Error(t, err)
}
