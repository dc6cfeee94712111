//go:build javascript
// +build javascript

package render

import (
	"errors"

	"github.com/pafthang/dmd/ast"
	"github.com/pafthang/dmd/util"
	"golang.org/x/net/html"
)

// renderCodeBlock 进行代码块 HTML 渲染，不实现语法高亮，由浏览器端根据 language- 类名自行高亮。
func (r *HtmlRenderer) renderCodeBlock(node *ast.Node, entering bool) ast.WalkStatus {
	if !entering {
		return ast.WalkContinue
	}

	attrs := [][]string{{"class", "discord-code-block"}}
	if 0 < len(node.CodeBlockInfo) {
		attrs[0][1] += " language-" + util.BytesToStr(node.CodeBlockInfo)
	}

	if inlineCodeBlock(node) {
		r.Tag("code", attrs, false)
		r.writeCodeBlockContent(node)
		r.Tag("/code", nil, false)
		return ast.WalkSkipChildren
	}

	r.Newline()
	r.Tag("pre", attrs, false)
	r.Tag("code", nil, false)
	r.writeCodeBlockContent(node)
	r.Tag("/code", nil, false)
	r.Tag("/pre", nil, false)
	r.Newline()
	return ast.WalkSkipChildren
}

func (r *HtmlRenderer) writeCodeBlockContent(node *ast.Node) {
	r.WriteString(html.EscapeString(util.BytesToStr(node.Tokens)))
}

// CodeBlockCSS 在浏览器中不可用。
func CodeBlockCSS(options *Options) (css string, err error) {
	err = errors.New("code block css is not supported in javascript")
	return
}
