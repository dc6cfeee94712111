package render_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pafthang/dmd/parse"
	"github.com/pafthang/dmd/render"
)

func renderJSON(t *testing.T, markdown string) *render.JSONNode {
	t.Helper()
	tree := parse.Parse("", []byte(markdown), nil)
	ret := &render.JSONNode{}
	require.NoError(t, json.Unmarshal(render.NewJSONRenderer(tree, nil).Render(), ret))
	return ret
}

func TestJSONRendererDocument(t *testing.T) {
	root := renderJSON(t, "## Hi <@1>\n<a:wave:42> <t:0:R>")
	assert.Equal(t, "NodeDocument", root.Type)
	require.Len(t, root.Children, 2)

	heading := root.Children[0]
	assert.Equal(t, "NodeHeading", heading.Type)
	assert.Equal(t, 2, heading.Level)
	require.Len(t, heading.Children, 2)
	assert.Equal(t, "Hi ", heading.Children[0].Text)
	assert.Equal(t, "@User", heading.Children[1].Display)

	line := root.Children[1].Children[0]
	assert.Equal(t, "NodeParagraphLine", line.Type)
	require.Len(t, line.Children, 3)
	emoji := line.Children[0]
	assert.Equal(t, "wave", emoji.Text)
	assert.Equal(t, "42", emoji.EmojiID)
	assert.True(t, emoji.Animated)
	assert.Equal(t, ":wave:", emoji.Display)

	timestamp := line.Children[2]
	require.NotNil(t, timestamp.Unix)
	assert.Equal(t, int64(0), *timestamp.Unix)
	assert.Equal(t, "R", timestamp.Format)
	assert.Equal(t, render.RelativeTimestampText, timestamp.Display)
}

func TestJSONRendererCodeBlock(t *testing.T) {
	root := renderJSON(t, "```go\nreturn 1\n```")
	require.Len(t, root.Children, 1)

	block := root.Children[0]
	assert.Equal(t, "go", block.Language)
	assert.Equal(t, "return 1", block.Text)
	assert.Equal(t, []render.JSONToken{
		{Type: "Keyword", Value: "return"},
		{Type: "Text", Value: " "},
		{Type: "LiteralNumber", Value: "1"},
	}, block.Tokens)
}

func TestJSONRendererNodeIDs(t *testing.T) {
	root := renderJSON(t, "a\n\nb")
	assert.Equal(t, "n0", root.ID)
	require.Len(t, root.Children, 3)
	assert.Equal(t, "n1", root.Children[0].ID)
	assert.Equal(t, "NodeGap", root.Children[1].Type)
}
