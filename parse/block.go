package parse

import (
	"strings"

	"github.com/pafthang/dmd/ast"
)

// Context 用于维护块级元素解析过程中使用到的公共数据。每次调用 parseBlocks 都会创建新的
// Context，块引用递归解析时也是如此。
type Context struct {
	Tree *Tree // 关联的语法树

	depth       int      // 块引用嵌套深度
	lines       []string // 所有行
	pos         int      // 下一行在 lines 中的下标
	currentLine string   // 当前行

	blocks    []*ast.Node // 已经关闭的块
	paragraph *ast.Node   // 正在累积行的段落
	list      *listBuffer // 正在构建的列表森林
}

// parseBlocks 逐行扫描 text，返回块节点序列。
func (t *Tree) parseBlocks(text string, depth int) []*ast.Node {
	if "" == text {
		return nil
	}

	context := &Context{Tree: t, depth: depth, lines: strings.Split(text, "\n")}
	if depth > t.ParseOption.maxNestingDepth() {
		// 嵌套过深，所有行按字面段落输出
		for context.nextLine() {
			context.addLiteralLine(context.currentLine)
		}
		context.closeUnmatchedBlocks()
		return context.blocks
	}

	starts := blockStarts()
	for context.nextLine() {
		for _, start := range starts {
			if start(context) {
				break
			}
		}
	}
	context.closeUnmatchedBlocks()
	return context.blocks
}

// nextLine 读入下一行，没有更多行时返回 false。
func (context *Context) nextLine() bool {
	if context.pos >= len(context.lines) {
		return false
	}
	context.currentLine = context.lines[context.pos]
	context.pos++
	return true
}

// captureLines 读入后续行直到 stop 返回 true 或者没有更多行。stop 返回 true 的行在 consume
// 为 true 时被吃掉，否则留给下一轮扫描。
func (context *Context) captureLines(stop func(line string) bool, consume bool) (ret []string) {
	for context.pos < len(context.lines) {
		line := context.lines[context.pos]
		if stop(line) {
			if consume {
				context.pos++
			}
			return
		}
		ret = append(ret, line)
		context.pos++
	}
	return
}

// closeUnmatchedBlocks 关闭正在累积的段落和列表。
func (context *Context) closeUnmatchedBlocks() {
	context.closeParagraph()
	context.flushList()
}

func (context *Context) closeParagraph() {
	if nil == context.paragraph {
		return
	}
	context.blocks = append(context.blocks, context.paragraph)
	context.paragraph = nil
}

// addBlock 关闭段落和列表后添加一个块。
func (context *Context) addBlock(block *ast.Node) {
	context.closeUnmatchedBlocks()
	context.blocks = append(context.blocks, block)
}

// addParagraphLine 将 line 作为段落行添加到当前段落中，行尾两个空格表示硬换行。
func (context *Context) addParagraphLine(line string) {
	context.flushList()

	hardBreak := strings.HasSuffix(line, "  ")
	if hardBreak {
		line = strings.TrimRight(line, " ")
	}
	paragraphLine := &ast.Node{Type: ast.NodeParagraphLine, HardBreak: hardBreak}
	paragraphLine.AppendChildren(context.Tree.parseInline(line, context.depth))
	context.paragraphNode().AppendChild(paragraphLine)
}

func (context *Context) addLiteralLine(line string) {
	paragraphLine := &ast.Node{Type: ast.NodeParagraphLine}
	paragraphLine.AppendChildren(textNodes(line))
	context.paragraphNode().AppendChild(paragraphLine)
}

func (context *Context) paragraphNode() *ast.Node {
	if nil == context.paragraph {
		context.paragraph = &ast.Node{Type: ast.NodeParagraph}
	}
	return context.paragraph
}
