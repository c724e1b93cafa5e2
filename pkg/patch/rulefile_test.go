package patch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRuleFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoadRuleFile_Valid(t *testing.T) {
	t.Parallel()

	path := writeRuleFile(t, `rules:
  - name: legacy-shim
    label: removed legacy shim import
    pattern: 'import "\./legacy-shim\.js";\n'
    replacement: ""
  - name: banner
    pattern: '^// bundle [0-9a-f]+\n'
    replacement: "// bundle\n"
`)

	rules, err := LoadRuleFile(path)

	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "legacy-shim", rules[0].Name)
	assert.Equal(t, "removed legacy shim import", rules[0].Label)
	assert.Empty(t, rules[0].Replacement)
}

func TestLoadRuleFile_LabelDefaultsToName(t *testing.T) {
	t.Parallel()

	path := writeRuleFile(t, `rules:
  - name: banner
    pattern: 'x'
    replacement: 'y'
`)

	rules, err := LoadRuleFile(path)

	require.NoError(t, err)
	assert.Equal(t, "banner", rules[0].Label)
}

func TestLoadRuleFile_AppliesAsLoaded(t *testing.T) {
	t.Parallel()

	path := writeRuleFile(t, `rules:
  - name: strip-debug
    pattern: 'console\.debug\([^)]*\);\n'
    replacement: ""
`)

	rules, err := LoadRuleFile(path)
	require.NoError(t, err)

	patched := rules[0].Apply("console.debug(\"x\");\nconst a = 1;\n")

	assert.Equal(t, "const a = 1;\n", patched)
}

func TestLoadRuleFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadRuleFile(filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read rule file")
}

func TestLoadRuleFile_NotYAML(t *testing.T) {
	t.Parallel()

	path := writeRuleFile(t, "{not valid yaml: [")

	_, err := LoadRuleFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse rule file")
}

func TestLoadRuleFile_Empty(t *testing.T) {
	t.Parallel()

	path := writeRuleFile(t, "rules: []\n")

	_, err := LoadRuleFile(path)

	require.ErrorIs(t, err, ErrRuleFileEmpty)
}

func TestLoadRuleFile_MissingName(t *testing.T) {
	t.Parallel()

	path := writeRuleFile(t, `rules:
  - pattern: 'x'
    replacement: 'y'
`)

	_, err := LoadRuleFile(path)

	require.ErrorIs(t, err, ErrRuleName)
}

func TestLoadRuleFile_MissingPattern(t *testing.T) {
	t.Parallel()

	path := writeRuleFile(t, `rules:
  - name: broken
    replacement: 'y'
`)

	_, err := LoadRuleFile(path)

	require.ErrorIs(t, err, ErrRulePattern)
}

func TestLoadRuleFile_BadRegexp(t *testing.T) {
	t.Parallel()

	path := writeRuleFile(t, `rules:
  - name: broken
    pattern: '([unclosed'
    replacement: 'y'
`)

	_, err := LoadRuleFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile pattern")
	assert.Contains(t, err.Error(), "broken")
}
