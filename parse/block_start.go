package parse

import (
	"strings"

	"github.com/pafthang/dmd/ast"
)

// blockStarts 返回定义好的一系列函数，每个函数用于判断某种块节点是否可以从当前行开始。
// 按顺序依次尝试，第一个返回 true 的函数负责处理当前行。
func blockStarts() []blockStartFunc {
	return []blockStartFunc{
		FenceCodeBlockStart,
		MultilineBlockquoteStart,
		BlankLineStart,
		ListStart,
		HeadingStart,
		SubtextStart,
		BlockquoteStart,
		ParagraphStart,
	}
}

// blockStartFunc 定义了用于判断块是否开始的函数签名，返回 true 表示当前行已经被处理。
type blockStartFunc func(context *Context) bool

// BlankLineStart 处理空行：关闭段落和列表，添加一个间隔。
func BlankLineStart(context *Context) bool {
	if "" != strings.TrimSpace(context.currentLine) {
		return false
	}
	context.addBlock(&ast.Node{Type: ast.NodeGap})
	return true
}

// ParagraphStart 将当前行作为段落行，总是匹配。
func ParagraphStart(context *Context) bool {
	context.addParagraphLine(context.currentLine)
	return true
}
