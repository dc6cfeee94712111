package parse_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pafthang/dmd/ast"
	"github.com/pafthang/dmd/parse"
)

var blockTests = []struct {
	name     string
	markdown string
	want     string
}{
	{"empty", "", `[]`},
	{
		"heading gap paragraph",
		"# Title\n\nHello **world**!",
		`[Heading(1,[Text("Title")]),Gap,Paragraph([([Text("Hello "),Bold([Text("world")]),Text("!")], false)])]`,
	},
	{"blockquote", "> quoted", `[Blockquote([Paragraph([([Text("quoted")], false)])])]`},
	{
		"flat list",
		"- one\n- two",
		`[ListForest([{content:[Text("one")],children:[]},{content:[Text("two")],children:[]}])]`,
	},
	{
		"nested list",
		"- a\n  - b",
		`[ListForest([{content:[Text("a")],children:[{content:[Text("b")],children:[]}]}])]`,
	},
	{
		"deep item attaches to nearest shallower ancestor",
		"* a\n      - b\n  - c\n- d",
		`[ListForest([{content:[Text("a")],children:[{content:[Text("b")],children:[]},{content:[Text("c")],children:[]}]},{content:[Text("d")],children:[]}])]`,
	},
	{
		"tab indented list item",
		"- a\n\t- b",
		`[ListForest([{content:[Text("a")],children:[{content:[Text("b")],children:[]}]}])]`,
	},
	{
		"list then paragraph",
		"- a\ntext",
		`[ListForest([{content:[Text("a")],children:[]}]),Paragraph([([Text("text")], false)])]`,
	},
	{
		"paragraph then list",
		"text\n- a",
		`[Paragraph([([Text("text")], false)]),ListForest([{content:[Text("a")],children:[]}])]`,
	},
	{
		"blank line splits lists",
		"- a\n\n- b",
		`[ListForest([{content:[Text("a")],children:[]}]),Gap,ListForest([{content:[Text("b")],children:[]}])]`,
	},
	{"headings", "## two\n### three", `[Heading(2,[Text("two")]),Heading(3,[Text("three")])]`},
	{"too many hashes", "#### four", `[Paragraph([([Text("#### four")], false)])]`},
	{"heading needs space", "#tag", `[Paragraph([([Text("#tag")], false)])]`},
	{"subtext", "-# small *print*", `[Subtext([Text("small "),Italic([Text("print")])])]`},
	{
		"hard break",
		"line one  \nline two",
		`[Paragraph([([Text("line one")], true),([Text("line two")], false)])]`,
	},
	{"trailing newline", "a\n", `[Paragraph([([Text("a")], false)]),Gap]`},
	{"crlf", "a\r\nb", `[Paragraph([([Text("a")], false),([Text("b")], false)])]`},
	{"fenced code", "```go\nfmt.Println(1)\n```", `[CodeBlock("go","fmt.Println(1)")]`},
	{"unknown language", "```unknownlang\ncode\n```", `[CodeBlock("unknownlang","code")]`},
	{"fence content is literal", "```\n**x**\n# y\n```\nafter", `[CodeBlock("","**x**\n# y"),Paragraph([([Text("after")], false)])]`},
	{"unclosed fence", "```py\nprint(1)\n\nx = 2", `[CodeBlock("py","print(1)\n\nx = 2")]`},
	{
		"multiline blockquote ends at blank line",
		">>> a\n> b\n\nc",
		`[Blockquote([Paragraph([([Text("a")], false)]),Blockquote([Paragraph([([Text("b")], false)])])]),Gap,Paragraph([([Text("c")], false)])]`,
	},
	{
		"unclosed multiline blockquote",
		">>> a\nb",
		`[Blockquote([Paragraph([([Text("a")], false),([Text("b")], false)])])]`,
	},
	{
		"nested blockquote",
		"> > deep",
		`[Blockquote([Blockquote([Paragraph([([Text("deep")], false)])])])]`,
	},
	{"quote marker needs space", ">no", `[Paragraph([([Text(">no")], false)])]`},
}

func TestParse(t *testing.T) {
	for _, test := range blockTests {
		t.Run(test.name, func(t *testing.T) {
			tree := parse.Parse("", []byte(test.markdown), nil)
			if diff := cmp.Diff(test.want, ast.Sprint(tree.Root)); "" != diff {
				t.Errorf("Parse(%q) diff (-want +got):\n%s", test.markdown, diff)
			}
		})
	}
}

func TestCodeBlockTokens(t *testing.T) {
	tree := parse.Parse("", []byte("```go\nreturn 1\n```"), nil)
	code := tree.Root.FirstChild
	require.NotNil(t, code)
	require.Equal(t, ast.NodeCodeBlock, code.Type)
	require.NotEmpty(t, code.CodeTokens)
	assert.Equal(t, "return", code.CodeTokens[0].Value)

	tree = parse.Parse("", []byte("```unknownlang\ncode\n```"), nil)
	assert.Empty(t, tree.Root.FirstChild.CodeTokens)

	options := parse.NewOptions()
	options.CodeSyntaxHighlight = false
	tree = parse.Parse("", []byte("```go\nreturn 1\n```"), options)
	assert.Empty(t, tree.Root.FirstChild.CodeTokens)
	assert.Equal(t, "go", string(tree.Root.FirstChild.CodeBlockInfo))
}

func TestBlockquoteMaxNestingDepth(t *testing.T) {
	options := parse.NewOptions()
	options.MaxNestingDepth = 1
	tree := parse.Parse("", []byte("> > > x"), options)
	assert.Equal(t, `[Blockquote([Blockquote([Paragraph([([Text("> x")], false)])])])]`, ast.Sprint(tree.Root))
}

func TestDeepBlockquoteIsBounded(t *testing.T) {
	tree := parse.Parse("", []byte(strings.Repeat("> ", 100)+"x"), nil)

	quotes := 0
	var literal string
	ast.Walk(tree.Root, func(n *ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.WalkContinue
		}
		switch n.Type {
		case ast.NodeBlockquote:
			quotes++
		case ast.NodeText:
			literal = n.TokensStr()
		}
		return ast.WalkContinue
	})
	assert.Equal(t, parse.DefaultMaxNestingDepth+1, quotes)
	assert.Equal(t, strings.Repeat("> ", 100-parse.DefaultMaxNestingDepth-1)+"x", literal)
}

func TestDeepListIsClamped(t *testing.T) {
	options := parse.NewOptions()
	options.MaxNestingDepth = 2
	tree := parse.Parse("", []byte("- a\n  - b\n    - c\n      - d\n        - e"), options)

	// d 和 e 的深度被截断为 2，成为 b 的子项
	assert.Equal(t,
		`[ListForest([{content:[Text("a")],children:[{content:[Text("b")],children:[{content:[Text("c")],children:[]},{content:[Text("d")],children:[]},{content:[Text("e")],children:[]}]}]}])]`,
		ast.Sprint(tree.Root))
}

func TestNodeIDs(t *testing.T) {
	tree := parse.Parse("", []byte("# T\n\n**b**"), nil)
	var ids []string
	ast.Walk(tree.Root, func(n *ast.Node, entering bool) ast.WalkStatus {
		if entering {
			ids = append(ids, n.ID)
		}
		return ast.WalkContinue
	})
	// Document Heading Text Gap Paragraph ParagraphLine Bold Text
	assert.Equal(t, []string{"n0", "n1", "n2", "n3", "n4", "n5", "n6", "n7"}, ids)

	again := parse.Parse("", []byte("# T\n\n**b**"), nil)
	assert.Equal(t, ast.Sprint(tree.Root), ast.Sprint(again.Root))
	assert.Equal(t, tree.Root.LastChild.ID, again.Root.LastChild.ID)
}
