package parse

import (
	"regexp"
	"strings"

	"github.com/pafthang/dmd/ast"
	"github.com/pafthang/dmd/highlight"
)

const codeBlockFence = "```"

var fenceOpenerRegexp = regexp.MustCompile("^```([^\\s`]*)\\s*$")

// FenceCodeBlockStart 判断围栏代码块（```lang）是否开始。代码块按字面读入后续行直到闭合围栏，
// 没有闭合围栏时一直读到输入结束。
func FenceCodeBlockStart(context *Context) bool {
	match := fenceOpenerRegexp.FindStringSubmatch(context.currentLine)
	if nil == match {
		return false
	}

	lines := context.captureLines(func(line string) bool {
		return codeBlockFence == strings.TrimSpace(line)
	}, true)
	context.addBlock(context.Tree.newCodeBlock(match[1], strings.Join(lines, "\n")))
	return true
}

// buildInlineCodeBlock 构造行内出现的围栏代码块，比如 ```js\nlet a = 1```。
func buildInlineCodeBlock(t *Tree, match []string, depth int) *ast.Node {
	return t.newCodeBlock(match[1], strings.TrimSuffix(match[2], "\n"))
}

func buildInlineCode(t *Tree, match []string, depth int) *ast.Node {
	return &ast.Node{Type: ast.NodeInlineCode, Tokens: []byte(match[1])}
}

// newCodeBlock 创建代码块节点，开启语法高亮且语言受支持时附带高亮结果。
func (t *Tree) newCodeBlock(language, literal string) (ret *ast.Node) {
	ret = &ast.Node{Type: ast.NodeCodeBlock, Tokens: []byte(literal)}
	if "" != language {
		ret.CodeBlockInfo = []byte(language)
	}
	if t.ParseOption.CodeSyntaxHighlight {
		ret.CodeTokens = highlight.Highlight(literal, language)
	}
	return
}
