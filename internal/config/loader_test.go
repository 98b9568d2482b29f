package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "carbonledgerd.toml")
	require.NoError(t, os.WriteFile(path, []byte("string_limit = 64\nasset_deposit = 5\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(64), cfg.StringLimit)
	assert.Equal(t, uint64(5), cfg.AssetDeposit)
	assert.Equal(t, Default().ApprovalDeposit, cfg.ApprovalDeposit)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CARBONLEDGER_STRING_LIMIT", "12")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, uint32(12), cfg.StringLimit)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
