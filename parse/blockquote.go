package parse

import (
	"strings"

	"github.com/pafthang/dmd/ast"
)

const (
	blockquoteMarker          = "> "
	multilineBlockquoteMarker = ">>> "
)

// BlockquoteStart 判断单行块引用（> ）是否开始，> 后面的空格是必须的。
func BlockquoteStart(context *Context) bool {
	if !strings.HasPrefix(context.currentLine, blockquoteMarker) {
		return false
	}
	content := strings.TrimPrefix(context.currentLine, blockquoteMarker)
	if "" == strings.TrimSpace(content) {
		return false
	}

	context.addBlock(context.newBlockquote(content))
	return true
}

// MultilineBlockquoteStart 判断多行块引用（>>> ）是否开始。块引用一直延续到空行或者输入结束，
// 空行本身不属于块引用。
func MultilineBlockquoteStart(context *Context) bool {
	if !strings.HasPrefix(context.currentLine, multilineBlockquoteMarker) {
		return false
	}

	lines := []string{strings.TrimPrefix(context.currentLine, multilineBlockquoteMarker)}
	lines = append(lines, context.captureLines(func(line string) bool {
		return "" == strings.TrimSpace(line)
	}, false)...)
	context.addBlock(context.newBlockquote(strings.Join(lines, "\n")))
	return true
}

// newBlockquote 将 content 作为块级内容递归解析，嵌套深度加一。
func (context *Context) newBlockquote(content string) *ast.Node {
	ret := &ast.Node{Type: ast.NodeBlockquote}
	ret.AppendChildren(context.Tree.parseBlocks(content, context.depth+1))
	return ret
}
