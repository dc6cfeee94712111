package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "dmd.yaml", `
max_nesting_depth: 4
code_syntax_highlight: false
style: dracula
timezone: Europe/Berlin
log:
  level: debug
  json: true
`)
	c, err := loadConfig(path, "", noEnv)
	require.NoError(t, err)
	assert.Equal(t, 4, c.MaxNestingDepth)
	require.NotNil(t, c.CodeSyntaxHighlight)
	assert.False(t, *c.CodeSyntaxHighlight)
	assert.Equal(t, "dracula", c.Style)
	assert.Equal(t, "debug", c.Log.Level)
	assert.True(t, c.Log.JSON)

	engine, err := c.engine()
	require.NoError(t, err)
	assert.Equal(t, 4, engine.ParseOptions.MaxNestingDepth)
	assert.False(t, engine.ParseOptions.CodeSyntaxHighlight)
	assert.False(t, engine.RenderOptions.CodeSyntaxHighlight)
	assert.Equal(t, "dracula", engine.RenderOptions.CodeSyntaxHighlightStyleName)
	assert.Equal(t, "Europe/Berlin", engine.RenderOptions.TimestampLocation.String())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeFile(t, "dmd.yaml", "style: dracula\nmax_nesting_depth: 4\n")
	envFile := writeFile(t, ".env", "DMD_STYLE=github\nDMD_MAX_NESTING_DEPTH=8\n")
	environ := func(key string) (string, bool) {
		if "DMD_MAX_NESTING_DEPTH" == key {
			return "16", true
		}
		return "", false
	}

	c, err := loadConfig(path, envFile, environ)
	require.NoError(t, err)
	assert.Equal(t, "github", c.Style)
	assert.Equal(t, 16, c.MaxNestingDepth)
}

func TestLoadConfigMissingEnvFile(t *testing.T) {
	c, err := loadConfig("", filepath.Join(t.TempDir(), ".env"), noEnv)
	require.NoError(t, err)
	assert.Nil(t, c.CodeSyntaxHighlight)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"), "", noEnv)
	assert.Error(t, err)

	path := writeFile(t, "bad.yaml", "max_nesting_depth: [1")
	_, err = loadConfig(path, "", noEnv)
	assert.Error(t, err)

	_, err = loadConfig("", "", func(key string) (string, bool) {
		return "yes please", "DMD_CODE_SYNTAX_HIGHLIGHT" == key
	})
	assert.Error(t, err)

	c := &config{Timezone: "Nowhere/Atlantis"}
	_, err = c.engine()
	assert.Error(t, err)
}

func TestConfigureLogger(t *testing.T) {
	logger := logrus.New()
	c := &config{}
	c.Log.Level = "warn"
	c.Log.JSON = true
	require.NoError(t, c.configureLogger(logger, ""))
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)

	require.NoError(t, c.configureLogger(logger, "debug"))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	assert.Error(t, c.configureLogger(logger, "loud"))
}
