package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "distpatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, DefaultRoot, cfg.Root)
	assert.Equal(t, DefaultInclude, cfg.Include)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.ShowDiff)
	assert.False(t, cfg.Quiet)
	assert.Empty(t, cfg.RulesFile)
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, `root: build/out
include: "**.mjs"
dry_run: true
rules_file: extra-rules.yaml
`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "build/out", cfg.Root)
	assert.Equal(t, "**.mjs", cfg.Include)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, "extra-rules.yaml", cfg.RulesFile)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "quiet: true\n")

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, DefaultRoot, cfg.Root)
	assert.Equal(t, DefaultInclude, cfg.Include)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("DISTPATCH_ROOT", "out")
	t.Setenv("DISTPATCH_DRY_RUN", "true")

	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, "out", cfg.Root)
	assert.True(t, cfg.DryRun)
}

func TestLoadConfig_ExplicitMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "root: \"\"\n")

	_, err := LoadConfig(path)

	require.ErrorIs(t, err, ErrEmptyRoot)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "root: [unclosed\n")

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
