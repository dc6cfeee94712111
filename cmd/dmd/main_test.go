package main

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cmd := newRootCmd(logger)
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), ".env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestHTMLCommand(t *testing.T) {
	out, err := execute(t, "# Hi", "html")
	require.NoError(t, err)
	assert.Equal(t, "<h1>Hi</h1>\n", out)
}

func TestTextCommandFromFile(t *testing.T) {
	path := writeFile(t, "msg.md", "Hello <@1>")
	out, err := execute(t, "", "text", path)
	require.NoError(t, err)
	assert.Equal(t, "Hello @User\n", out)
}

func TestFormatCommand(t *testing.T) {
	out, err := execute(t, "* a\n    * b", "format")
	require.NoError(t, err)
	assert.Equal(t, "- a\n  - b\n", out)
}

func TestTreeCommand(t *testing.T) {
	out, err := execute(t, "**b**", "tree")
	require.NoError(t, err)
	assert.Equal(t, "[Paragraph([([Bold([Text(\"b\")])], false)])]\n", out)

	out, err = execute(t, "**b**", "tree", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"type":"NodeBold"`)
}

func TestHighlightCommand(t *testing.T) {
	out, err := execute(t, "return 1", "highlight", "--lang", "go", "--format", "tokens")
	require.NoError(t, err)
	assert.Equal(t, "Keyword\t\"return\"\nText\t\" \"\nLiteralNumber\t\"1\"\n", out)

	_, err = execute(t, "x", "highlight", "--lang", "pyth")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean python")
}

func TestCSSCommand(t *testing.T) {
	out, err := execute(t, "", "css")
	require.NoError(t, err)
	assert.Contains(t, out, ".highlight-k")

	out, err = execute(t, "", "css", "--style", "monokai")
	require.NoError(t, err)
	assert.Contains(t, out, "#272822")
}

func TestPreviewCommand(t *testing.T) {
	out, err := execute(t, `{"content":"**hi**","embeds":[{"title":"T","description":"~~d~~","color":16711680}]}`, "preview")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>hi</strong>")
	assert.Contains(t, out, "border-left-color: #ff0000")
	assert.Contains(t, out, "<s>d</s>")

	_, err = execute(t, "{", "preview")
	assert.Error(t, err)
}

func TestWatchRequiresFile(t *testing.T) {
	_, err := execute(t, "x", "html", "--watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--watch requires a file argument")
}
