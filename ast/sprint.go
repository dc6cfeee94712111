package ast

import (
	"strconv"
	"strings"
)

var sprintNames = map[NodeType]string{
	NodeSubtext:             "Subtext",
	NodeBlockquote:          "Blockquote",
	NodeBold:                "Bold",
	NodeItalic:              "Italic",
	NodeBoldItalic:          "BoldItalic",
	NodeUnderline:           "Underline",
	NodeUnderlineBold:       "UnderlineBold",
	NodeUnderlineItalic:     "UnderlineItalic",
	NodeUnderlineBoldItalic: "UnderlineBoldItalic",
	NodeStrikethrough:       "Strikethrough",
	NodeSpoiler:             "Spoiler",
}

// Sprint 以紧凑的变体记法输出节点序列，比如 [Heading(1,[Text("Title")]),Gap]。
// 文档根节点输出其子节点序列。主要用于测试和调试。
func Sprint(nodes ...*Node) string {
	var b strings.Builder
	if 1 == len(nodes) && NodeDocument == nodes[0].Type {
		nodes = nodes[0].Children()
	}
	sprintSeq(&b, nodes)
	return b.String()
}

func sprintSeq(b *strings.Builder, nodes []*Node) {
	b.WriteByte('[')
	for i, n := range nodes {
		if 0 < i {
			b.WriteByte(',')
		}
		sprintNode(b, n)
	}
	b.WriteByte(']')
}

func sprintNode(b *strings.Builder, n *Node) {
	if name, ok := sprintNames[n.Type]; ok {
		b.WriteString(name)
		b.WriteByte('(')
		sprintSeq(b, n.Children())
		b.WriteByte(')')
		return
	}

	switch n.Type {
	case NodeDocument:
		sprintSeq(b, n.Children())
	case NodeText:
		b.WriteString("Text(" + strconv.Quote(n.TokensStr()) + ")")
	case NodeLineBreak:
		b.WriteString("LineBreak")
	case NodeGap:
		b.WriteString("Gap")
	case NodeHeading:
		b.WriteString("Heading(" + strconv.Itoa(n.HeadingLevel) + ",")
		sprintSeq(b, n.Children())
		b.WriteByte(')')
	case NodeCodeBlock:
		b.WriteString("CodeBlock(" + strconv.Quote(string(n.CodeBlockInfo)) + "," + strconv.Quote(n.TokensStr()) + ")")
	case NodeList:
		b.WriteString("ListForest(")
		sprintSeq(b, n.Children())
		b.WriteByte(')')
	case NodeListItem:
		b.WriteString("{content:")
		var content []*Node
		if c := n.FirstChild; nil != c && NodeListItemContent == c.Type {
			content = c.Children()
		}
		sprintSeq(b, content)
		b.WriteString(",children:")
		sprintSeq(b, n.ChildrenByType(NodeListItem))
		b.WriteByte('}')
	case NodeParagraph:
		b.WriteString("Paragraph(")
		sprintSeq(b, n.Children())
		b.WriteByte(')')
	case NodeParagraphLine:
		b.WriteByte('(')
		sprintSeq(b, n.Children())
		b.WriteString(", " + strconv.FormatBool(n.HardBreak) + ")")
	case NodeInlineCode:
		b.WriteString("InlineCode(" + strconv.Quote(n.TokensStr()) + ")")
	case NodeLink:
		b.WriteString("Link(" + strconv.Quote(n.TokensStr()) + "," + strconv.Quote(string(n.LinkDest)) + ")")
	case NodeAutoLink:
		b.WriteString("AutoLink(" + strconv.Quote(n.TokensStr()) + ")")
	case NodeUserMention:
		b.WriteString("UserMention")
	case NodeChannelMention:
		b.WriteString("ChannelMention")
	case NodeRoleMention:
		b.WriteString("RoleMention")
	case NodeCustomEmoji:
		b.WriteString("CustomEmoji(" + strconv.Quote(n.TokensStr()) + "," + strconv.FormatBool(n.EmojiAnimated) + ")")
	case NodeTimestamp:
		b.WriteString("Timestamp(" + strconv.FormatInt(n.TimestampUnix, 10) + "," + strconv.QuoteRune(rune(n.TimestampFormat)) + ")")
	default:
		b.WriteString(n.Type.String())
	}
}
