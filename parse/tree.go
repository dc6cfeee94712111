// Package parse 实现了 Discord Markdown 的解析，包括按行扫描的块级解析和基于规则表的行级解析。
package parse

import (
	"strings"

	"github.com/pafthang/dmd/ast"
)

// Tree 描述了 Markdown 抽象语法树结构。
type Tree struct {
	Name        string   // 名称，可以为空
	Root        *ast.Node // 根节点
	ParseOption *Options  // 解析选项
}

// Parse 会将 markdown 解析为块级语法树。解析不会失败，无法识别或者未闭合的结构按字面文本输出。
func Parse(name string, markdown []byte, options *Options) (tree *Tree) {
	tree = newTree(name, options)
	tree.Root.AppendChildren(tree.parseBlocks(normalizeNewlines(string(markdown)), 0))
	ast.AssignIDs(tree.Root)
	return
}

// Inline 会将 markdown 作为行级内容解析，根节点的子节点均为行级节点。
func Inline(name string, markdown []byte, options *Options) (tree *Tree) {
	tree = newTree(name, options)
	tree.Root.AppendChildren(tree.parseInline(normalizeNewlines(string(markdown)), 0))
	ast.AssignIDs(tree.Root)
	return
}

func newTree(name string, options *Options) *Tree {
	if nil == options {
		options = NewOptions()
	}
	return &Tree{Name: name, Root: &ast.Node{Type: ast.NodeDocument}, ParseOption: options}
}

func normalizeNewlines(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
