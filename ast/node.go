// Package ast 定义了 Discord Markdown 语法树节点。
//
// 树由 parse 包一次性构建，构建完成后调用方不应再修改任何节点。
package ast

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma"
	"github.com/diamondburned/arikawa/v3/discord"
)

// Node 描述了节点结构。不同类型的节点使用不同的字段，未使用的字段保持零值。
type Node struct {
	ID     string   // 按先序位置分配的 ID，比如 n0、n1
	Type   NodeType // 节点类型
	Tokens []byte   // 文本、行内代码、代码块字面量、链接文本、自动链接地址、表情名、提及 ID

	Parent     *Node // 父节点
	Previous   *Node // 前一个兄弟节点
	Next       *Node // 后一个兄弟节点
	FirstChild *Node // 第一个子节点
	LastChild  *Node // 最后一个子节点

	// 标题

	HeadingLevel int // 1~3

	// 代码块

	CodeBlockInfo []byte         // 语言标识，空表示未标注
	CodeTokens    []chroma.Token // 语法高亮结果，不支持的语言为空

	// 链接

	LinkDest []byte // 链接地址

	// 段落行

	HardBreak bool // 行尾两个空格

	// 自定义表情

	EmojiID       discord.EmojiID
	EmojiAnimated bool

	// 时间戳

	TimestampUnix   int64
	TimestampFormat byte
}

// AppendChild 在 n 的子节点最后再添加一个子节点。
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	if nil != n.LastChild {
		n.LastChild.Next = child
		child.Previous = n.LastChild
		n.LastChild = child
	} else {
		n.FirstChild = child
		n.LastChild = child
	}
}

// AppendChildren 依次添加 children。
func (n *Node) AppendChildren(children []*Node) {
	for _, c := range children {
		n.AppendChild(c)
	}
}

// Children 返回 n 的所有直接子节点。
func (n *Node) Children() (ret []*Node) {
	for c := n.FirstChild; nil != c; c = c.Next {
		ret = append(ret, c)
	}
	return
}

// ChildrenByType 返回 n 的直接子节点中类型为 typ 的节点。
func (n *Node) ChildrenByType(typ NodeType) (ret []*Node) {
	for c := n.FirstChild; nil != c; c = c.Next {
		if typ == c.Type {
			ret = append(ret, c)
		}
	}
	return
}

// TokensStr 返回 n.Tokens 的字符串形式。
func (n *Node) TokensStr() string {
	return string(n.Tokens)
}

// IsBlock 判断 n 是否为块级节点。
func (n *Node) IsBlock() bool {
	return NodeText > n.Type
}

// IsEmphasis 判断 n 是否为强调类节点（粗体、斜体、下划线及其组合）。
func (n *Node) IsEmphasis() bool {
	_, ok := emphasisStyles[n.Type]
	return ok
}

var emphasisStyles = map[NodeType][]NodeType{
	NodeBold:                {NodeBold},
	NodeItalic:              {NodeItalic},
	NodeBoldItalic:          {NodeBold, NodeItalic},
	NodeUnderline:           {NodeUnderline},
	NodeUnderlineBold:       {NodeUnderline, NodeBold},
	NodeUnderlineItalic:     {NodeUnderline, NodeItalic},
	NodeUnderlineBoldItalic: {NodeUnderline, NodeBold, NodeItalic},
}

// Styles 将组合强调节点分解为由外到内的基础样式，比如 NodeUnderlineBold 分解为
// [NodeUnderline, NodeBold]，即 __**x**__ 等价于 Underline(Bold(x))。非强调节点返回 nil。
func (n *Node) Styles() []NodeType {
	return emphasisStyles[n.Type]
}

// Text 返回 n 及其后代节点中文本内容的拼接。
func (n *Node) Text() string {
	var buf strings.Builder
	Walk(n, func(n *Node, entering bool) WalkStatus {
		if !entering {
			return WalkContinue
		}
		switch n.Type {
		case NodeText, NodeInlineCode, NodeCodeBlock, NodeAutoLink, NodeLink:
			buf.Write(n.Tokens)
		case NodeLineBreak:
			buf.WriteByte('\n')
		}
		return WalkContinue
	})
	return buf.String()
}

// AssignIDs 按先序遍历位置为 root 及其所有后代节点分配 ID。
func AssignIDs(root *Node) {
	i := 0
	Walk(root, func(n *Node, entering bool) WalkStatus {
		if entering {
			n.ID = "n" + strconv.Itoa(i)
			i++
		}
		return WalkContinue
	})
}
