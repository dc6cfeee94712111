package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pafthang/dmd/ast"
	"github.com/pafthang/dmd/parse"
	"github.com/pafthang/dmd/render"
)

func format(markdown string) string {
	tree := parse.Parse("", []byte(markdown), nil)
	return string(render.NewFormatRenderer(tree, nil).Render())
}

func TestFormatRenderer(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{"heading", "## Title", "## Title"},
		{"subtext", "-# small", "-# small"},
		{"gap", "a\n\nb", "a\n\nb"},
		{"single line quote", "> quoted", "> quoted"},
		{"multiline quote", ">>> one\ntwo", ">>> one\ntwo"},
		{"list", "* a\n    - b", "- a\n  - b"},
		{"hard break", "one  \ntwo", "one  \ntwo"},
		{"code block", "```go\nreturn 1\n```", "```go\nreturn 1\n```"},
		{"fence split across paragraph lines", "see ```go\nx``` here", "see \\`\\`\\`go\nx\\`\\`\\` here"},
		{"emphasis", "__***x***__ ~~s~~ ||h||", "__***x***__ ~~s~~ ||h||"},
		{"tokens", "<@1> <#2> <@&3> <a:wave:42> <t:0:R>", "<@1> <#2> <@&3> <a:wave:42> <t:0:R>"},
		{"escaped text", `\*literal\*`, `\*literal\*`},
		{"italic next to bold", "_a_**b**", "_a_**b**"},
		{"italic inside bold", "**_x_**", "**_x_**"},
		{"adjacent italics", "_a_*b*", "*a*_b_"},
		{"text inside emphasis", "**a_b**", "**a_b**"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, format(test.markdown))
		})
	}
}

func TestFormatRoundTrip(t *testing.T) {
	inputs := []string{
		"# Title\n\nHello **world**!",
		"- a\n  - b\n- c",
		"> quoted",
		">>> one\ntwo",
		"```go\nreturn 1\n```",
		"__***x***__ ~~s~~ ||hidden|| `code` [site](https://example.com) <@1> <#2> <@&3> <a:wave:42> <t:0:D>",
		"line one  \nline two",
		"-# small",
		`\*literal\*`,
		`a\\b`,
		`\|\|s\|\|`,
		`<:a\_b:1>`,
		"<@abc>",
		"_a_**b**",
		"**_x_**",
		"_a_*b*",
		"__a*b*__",
		"**a_b** ~~c*d~~",
		"x\\_ *y*",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			tree := parse.Parse("", []byte(input), nil)
			formatted := render.NewFormatRenderer(tree, nil).Render()
			reparsed := parse.Parse("", formatted, nil)
			assert.Equal(t, ast.Sprint(tree.Root), ast.Sprint(reparsed.Root), "formatted as %q", formatted)
		})
	}
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, "plain", render.EscapeText("plain"))
	assert.Equal(t, `\*a\_b\*`, render.EscapeText("*a_b*"))
	assert.Equal(t, "\\`\\[x\\]\\~\\|\\\\", render.EscapeText("`[x]~|\\"))
}
