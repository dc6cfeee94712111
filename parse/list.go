package parse

import (
	"regexp"

	"github.com/pafthang/dmd/ast"
	"github.com/pafthang/dmd/util"
)

var listItemRegexp = regexp.MustCompile(`^([ \t]*)[-*] (.+)$`)

// listBuffer 描述了正在构建的列表森林。stack 从外到内记录当前打开的列表项。
type listBuffer struct {
	list  *ast.Node
	stack []openListItem
}

type openListItem struct {
	depth int
	item  *ast.Node
}

// ListStart 判断列表项（- 或者 * 后跟空格）是否开始。深度为前导空白宽度除以 2，
// 列表项挂到最近的一个深度更小的打开列表项下，没有的话作为顶层列表项。
func ListStart(context *Context) bool {
	match := listItemRegexp.FindStringSubmatch(context.currentLine)
	if nil == match {
		return false
	}

	context.closeParagraph()
	width, _ := util.IndentWidth(match[1])
	depth := width / 2
	if maxDepth := context.Tree.ParseOption.maxNestingDepth(); depth > maxDepth {
		depth = maxDepth
	}

	item := &ast.Node{Type: ast.NodeListItem}
	content := &ast.Node{Type: ast.NodeListItemContent}
	content.AppendChildren(context.Tree.parseInline(match[2], context.depth))
	item.AppendChild(content)
	context.listBuffer().add(depth, item)
	return true
}

func (context *Context) listBuffer() *listBuffer {
	if nil == context.list {
		context.list = &listBuffer{list: &ast.Node{Type: ast.NodeList}}
	}
	return context.list
}

// flushList 将正在构建的列表森林作为一个块添加。
func (context *Context) flushList() {
	if nil == context.list {
		return
	}
	context.blocks = append(context.blocks, context.list.list)
	context.list = nil
}

func (buf *listBuffer) add(depth int, item *ast.Node) {
	for 0 < len(buf.stack) && buf.stack[len(buf.stack)-1].depth >= depth {
		buf.stack = buf.stack[:len(buf.stack)-1]
	}
	if 1 > len(buf.stack) {
		buf.list.AppendChild(item)
	} else {
		buf.stack[len(buf.stack)-1].item.AppendChild(item)
	}
	buf.stack = append(buf.stack, openListItem{depth: depth, item: item})
}
