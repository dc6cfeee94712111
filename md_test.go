package dmd_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alecthomas/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pafthang/dmd"
	"github.com/pafthang/dmd/ast"
	"github.com/pafthang/dmd/render"
)

func TestMarkdownStr(t *testing.T) {
	engine := dmd.New()
	assert.Equal(t, "<p>Hello <strong>world</strong>!</p>\n", engine.MarkdownStr("", "Hello **world**!"))
}

func TestInlineMarkdownStr(t *testing.T) {
	engine := dmd.New()
	assert.Equal(t, "# not a heading <em>x</em>", engine.InlineMarkdownStr("", "# not a heading *x*"))
}

func TestTextStr(t *testing.T) {
	engine := dmd.New(dmd.WithTimestampLocation(time.FixedZone("UTC+2", 7200)))
	assert.Equal(t, "@User at 02:00", engine.TextStr("", "<@!1> at <t:0:t>"))
}

func TestFormatStr(t *testing.T) {
	engine := dmd.New()
	assert.Equal(t, "- a\n  - b", engine.FormatStr("", "* a\n  * b"))
}

func TestRenderJSON(t *testing.T) {
	engine := dmd.New()
	root := &render.JSONNode{}
	require.NoError(t, json.Unmarshal([]byte(engine.RenderJSON("> hi")), root))
	require.Len(t, root.Children, 1)
	assert.Equal(t, "NodeBlockquote", root.Children[0].Type)
}

func TestHighlight(t *testing.T) {
	engine := dmd.New()
	tokens := engine.Highlight("fn main", "rs")
	require.NotEmpty(t, tokens)
	assert.Equal(t, chroma.Token{Type: chroma.Keyword, Value: "fn"}, tokens[0])
	assert.Nil(t, engine.Highlight("fn main", ""))
}

func TestWithMaxNestingDepth(t *testing.T) {
	engine := dmd.New(dmd.WithMaxNestingDepth(1))
	tree := engine.ParseInline("", []byte("**_~~x~~_**"))
	assert.Equal(t, `[Bold([Italic([Text("~~x~~")])])]`, ast.Sprint(tree.Root))
}

func TestSetCodeSyntaxHighlight(t *testing.T) {
	engine := dmd.New()
	engine.SetCodeSyntaxHighlight(false)
	tree := engine.Parse("", []byte("```go\nreturn 1\n```"))
	assert.Nil(t, tree.Root.FirstChild.CodeTokens)
	assert.Contains(t, engine.Tree2HTML(tree, engine.RenderOptions), "<code>return 1</code>")
}

func TestMd2HTMLRendererFuncs(t *testing.T) {
	engine := dmd.New()
	engine.Md2HTMLRendererFuncs[ast.NodeSpoiler] = func(n *ast.Node, entering bool) (string, ast.WalkStatus) {
		if entering {
			return "[spoiler]", ast.WalkSkipChildren
		}
		return "", ast.WalkContinue
	}
	assert.Equal(t, "<p>a [spoiler]</p>\n", engine.MarkdownStr("", "a ||secret||"))
}

func TestRenderSafe(t *testing.T) {
	engine := dmd.New()
	tree := engine.Parse("", []byte("<@1>"))
	renderer := render.NewHtmlRenderer(tree, nil)
	renderer.ExtRendererFuncs[ast.NodeUserMention] = func(n *ast.Node, entering bool) (string, ast.WalkStatus) {
		panic("broken renderer")
	}
	_, err := dmd.RenderSafe(renderer)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken renderer")
}

func TestFormatNode(t *testing.T) {
	engine := dmd.New()
	tree := engine.Parse("", []byte("# Title\n\n> **quoted** text"))
	formatted, err := dmd.FormatNode(tree.Root.LastChild, nil)
	require.NoError(t, err)
	assert.Equal(t, "> **quoted** text", formatted)
}
