//go:build !javascript
// +build !javascript

package render

import (
	"bytes"

	"github.com/alecthomas/chroma"
	chromahtml "github.com/alecthomas/chroma/formatters/html"
	"github.com/alecthomas/chroma/styles"
	"github.com/pafthang/dmd/ast"
	"github.com/pafthang/dmd/util"
	"golang.org/x/net/html"
)

// renderCodeBlock 进行代码块 HTML 渲染，高亮结果使用 chroma 的 HTML 格式化器输出。
func (r *HtmlRenderer) renderCodeBlock(node *ast.Node, entering bool) ast.WalkStatus {
	if !entering {
		return ast.WalkContinue
	}

	language := util.BytesToStr(node.CodeBlockInfo)
	attrs := [][]string{{"class", "discord-code-block"}}
	if "" != language {
		attrs[0][1] += " language-" + language
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

// writeCodeBlockContent 输出代码块内容，未开启高亮、没有高亮结果或者格式化失败时输出转义后的原文。
func (r *HtmlRenderer) writeCodeBlockContent(node *ast.Node) {
	if !r.Options.CodeSyntaxHighlight || 1 > len(node.CodeTokens) || !r.highlightCodeBlock(node) {
		r.WriteString(html.EscapeString(util.BytesToStr(node.Tokens)))
	}
}

// highlightCodeBlock 输出代码块的高亮结果，格式化失败时返回 false。
func (r *HtmlRenderer) highlightCodeBlock(node *ast.Node) bool {
	formatter := newCodeBlockFormatter(r.Options)
	style := styles.Get(r.Options.CodeSyntaxHighlightStyleName)
	var b bytes.Buffer
	if err := formatter.Format(&b, style, chroma.Literator(node.CodeTokens...)); nil != err {
		return false
	}
	r.Write(b.Bytes())
	return true
}

func newCodeBlockFormatter(options *Options) *chromahtml.Formatter {
	if options.CodeSyntaxHighlightInlineStyle {
		return chromahtml.New(chromahtml.PreventSurroundingPre(true), chromahtml.WithClasses(false))
	}
	return chromahtml.New(chromahtml.PreventSurroundingPre(true), chromahtml.WithClasses(true), chromahtml.ClassPrefix(options.CodeSyntaxHighlightClassPrefix))
}

// CodeBlockCSS 返回非内联样式下代码块语法高亮使用的 CSS。
func CodeBlockCSS(options *Options) (css string, err error) {
	if nil == options {
		options = NewOptions()
	}

	var b bytes.Buffer
	formatter := chromahtml.New(chromahtml.WithClasses(true), chromahtml.ClassPrefix(options.CodeSyntaxHighlightClassPrefix))
	if err = formatter.WriteCSS(&b, styles.Get(options.CodeSyntaxHighlightStyleName)); nil != err {
		return
	}
	css = b.String()
	return
}
