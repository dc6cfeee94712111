package render

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/pafthang/dmd/ast"
	"github.com/pafthang/dmd/parse"
	"github.com/pafthang/dmd/util"
)

// FormatRenderer 描述了格式化渲染器，将语法树重新输出为 Markdown。标记之外文本中的可转义标点会被转义，
// 所以只包含文本的树输出后重新解析得到同样的树。
type FormatRenderer struct {
	*BaseRenderer
	listDepth int
}

// NewFormatRenderer 创建一个格式化渲染器。
func NewFormatRenderer(tree *parse.Tree, options *Options) *FormatRenderer {
	ret := &FormatRenderer{BaseRenderer: NewBaseRenderer(tree, options)}
	ret.RendererFuncs[ast.NodeDocument] = ret.renderDocument
	ret.RendererFuncs[ast.NodeHeading] = ret.renderHeading
	ret.RendererFuncs[ast.NodeSubtext] = ret.renderSubtext
	ret.RendererFuncs[ast.NodeBlockquote] = ret.renderBlockquote
	ret.RendererFuncs[ast.NodeCodeBlock] = ret.renderCodeBlock
	ret.RendererFuncs[ast.NodeList] = ret.renderList
	ret.RendererFuncs[ast.NodeListItem] = ret.renderListItem
	ret.RendererFuncs[ast.NodeListItemContent] = ret.renderListItemContent
	ret.RendererFuncs[ast.NodeParagraph] = ret.renderParagraph
	ret.RendererFuncs[ast.NodeParagraphLine] = ret.renderParagraphLine
	ret.RendererFuncs[ast.NodeGap] = ret.renderGap
	ret.RendererFuncs[ast.NodeText] = ret.renderText
	ret.RendererFuncs[ast.NodeBold] = ret.renderDelimited
	ret.RendererFuncs[ast.NodeItalic] = ret.renderItalic
	ret.RendererFuncs[ast.NodeBoldItalic] = ret.renderDelimited
	ret.RendererFuncs[ast.NodeUnderline] = ret.renderDelimited
	ret.RendererFuncs[ast.NodeUnderlineBold] = ret.renderDelimited
	ret.RendererFuncs[ast.NodeUnderlineItalic] = ret.renderDelimited
	ret.RendererFuncs[ast.NodeUnderlineBoldItalic] = ret.renderDelimited
	ret.RendererFuncs[ast.NodeStrikethrough] = ret.renderDelimited
	ret.RendererFuncs[ast.NodeSpoiler] = ret.renderDelimited
	ret.RendererFuncs[ast.NodeInlineCode] = ret.renderInlineCode
	ret.RendererFuncs[ast.NodeLink] = ret.renderLink
	ret.RendererFuncs[ast.NodeAutoLink] = ret.renderAutoLink
	ret.RendererFuncs[ast.NodeUserMention] = ret.renderMention
	ret.RendererFuncs[ast.NodeChannelMention] = ret.renderMention
	ret.RendererFuncs[ast.NodeRoleMention] = ret.renderMention
	ret.RendererFuncs[ast.NodeCustomEmoji] = ret.renderCustomEmoji
	ret.RendererFuncs[ast.NodeTimestamp] = ret.renderTimestamp
	ret.RendererFuncs[ast.NodeLineBreak] = ret.renderLineBreak
	return ret
}

// Render 输出 Markdown。每个块以换行结束，最后一个换行会被去掉，否则重新解析时会多出一个间隔。
func (r *FormatRenderer) Render() (output []byte) {
	r.listDepth = 0
	output = bytes.TrimSuffix(r.BaseRenderer.Render(), []byte("\n"))
	return
}

// escapePuncts 为行级规则中可以被反斜杠转义的标点。
const escapePuncts = "\\*_~|`[]"

// EscapeText 使用反斜杠转义 text 中的可转义标点。
func EscapeText(text string) string {
	if !strings.ContainsAny(text, escapePuncts) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + 8)
	for i := 0; i < len(text); i++ {
		if 0 <= strings.IndexByte(escapePuncts, text[i]) {
			b.WriteByte('\\')
		}
		b.WriteByte(text[i])
	}
	return b.String()
}

func (r *FormatRenderer) renderDocument(node *ast.Node, entering bool) ast.WalkStatus {
	return ast.WalkContinue
}

func (r *FormatRenderer) renderHeading(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.WriteString(strings.Repeat("#", node.HeadingLevel) + " ")
	} else {
		r.WriteByte('\n')
	}
	return ast.WalkContinue
}

func (r *FormatRenderer) renderSubtext(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.WriteString("-# ")
	} else {
		r.WriteByte('\n')
	}
	return ast.WalkContinue
}

// renderBlockquote 输出块引用。单行内容使用 > ，多行且不含空行的内容使用 >>> ，其他情况逐行添加 > 。
func (r *FormatRenderer) renderBlockquote(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.pushWriter()
		return ast.WalkContinue
	}

	content := strings.TrimSuffix(util.BytesToStr(r.popWriter()), "\n")
	lines := strings.Split(content, "\n")
	switch {
	case 1 == len(lines):
		r.WriteString("> " + content)
	case !hasBlankLine(lines):
		r.WriteString(">>> " + content)
	default:
		for i, line := range lines {
			if 0 < i {
				r.WriteByte('\n')
			}
			r.WriteString("> " + line)
		}
	}
	r.WriteByte('\n')
	return ast.WalkContinue
}

func hasBlankLine(lines []string) bool {
	for _, line := range lines {
		if "" == strings.TrimSpace(line) {
			return true
		}
	}
	return false
}

// renderCodeBlock 输出代码块。位于段落行中的代码块使用行内围栏形式。
func (r *FormatRenderer) renderCodeBlock(node *ast.Node, entering bool) ast.WalkStatus {
	if !entering {
		return ast.WalkSkipChildren
	}

	if ast.NodeParagraphLine == node.Parent.Type || !node.Parent.IsBlock() {
		r.WriteString("```")
		if 0 < len(node.CodeBlockInfo) {
			r.Write(node.CodeBlockInfo)
			r.WriteByte('\n')
		}
		r.Write(node.Tokens)
		r.WriteString("```")
		return ast.WalkSkipChildren
	}

	r.WriteString("```")
	r.Write(node.CodeBlockInfo)
	r.WriteByte('\n')
	if 0 < len(node.Tokens) {
		r.Write(node.Tokens)
		r.WriteByte('\n')
	}
	r.WriteString("```\n")
	return ast.WalkSkipChildren
}

func (r *FormatRenderer) renderList(node *ast.Node, entering bool) ast.WalkStatus {
	return ast.WalkContinue
}

func (r *FormatRenderer) renderListItem(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.WriteString(strings.Repeat("  ", r.listDepth) + "- ")
		r.listDepth++
	} else {
		r.listDepth--
	}
	return ast.WalkContinue
}

func (r *FormatRenderer) renderListItemContent(node *ast.Node, entering bool) ast.WalkStatus {
	if !entering {
		r.WriteByte('\n')
	}
	return ast.WalkContinue
}

func (r *FormatRenderer) renderParagraph(node *ast.Node, entering bool) ast.WalkStatus {
	return ast.WalkContinue
}

func (r *FormatRenderer) renderParagraphLine(node *ast.Node, entering bool) ast.WalkStatus {
	if !entering {
		if node.HardBreak {
			r.WriteString("  ")
		}
		r.WriteByte('\n')
	}
	return ast.WalkContinue
}

func (r *FormatRenderer) renderGap(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.WriteByte('\n')
	}
	return ast.WalkContinue
}

func (r *FormatRenderer) renderText(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.WriteString(formatText(node))
	}
	return ast.WalkContinue
}

// formatText 返回文本节点的输出。转义规则优先于其他所有规则，标记内部出现的转义会让标记无法闭合，
// 所以只有不在标记内的文本才转义，标记内的文本原样输出。
func formatText(node *ast.Node) string {
	text := util.BytesToStr(node.Tokens)
	if nil != node.Parent && isDelimited(node.Parent.Type) {
		return text
	}
	return EscapeText(text)
}

func isDelimited(typ ast.NodeType) bool {
	_, ok := delimiters[typ]
	return ok || ast.NodeItalic == typ
}

// delimiters 为使用固定标记的节点，斜体的标记由 italicDelimiter 按上下文选择。
var delimiters = map[ast.NodeType]string{
	ast.NodeBold:                "**",
	ast.NodeBoldItalic:          "***",
	ast.NodeUnderline:           "__",
	ast.NodeUnderlineBold:       "__**",
	ast.NodeUnderlineItalic:     "__*",
	ast.NodeUnderlineBoldItalic: "__***",
	ast.NodeStrikethrough:       "~~",
	ast.NodeSpoiler:             "||",
}

// renderDelimited 输出成对标记包裹的节点，结束标记为开始标记的逆序。
func (r *FormatRenderer) renderDelimited(node *ast.Node, entering bool) ast.WalkStatus {
	delimiter := delimiters[node.Type]
	if entering {
		r.WriteString(delimiter)
	} else {
		r.WriteString(reverse(delimiter))
	}
	return ast.WalkContinue
}

// renderItalic 输出斜体，先取得内容再按前后相邻的输出选择 * 或者 _。
func (r *FormatRenderer) renderItalic(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.pushWriter()
		return ast.WalkContinue
	}

	content := r.popWriter()
	delimiter := italicDelimiter(r.LastOut, nextByte(node), content)
	r.WriteByte(delimiter)
	r.Write(content)
	r.WriteByte(delimiter)
	return ast.WalkContinue
}

// italicDelimiter 选择不与前一个字节、后一个字节以及内容首尾相同的斜体标记，
// 否则 * 会和相邻的 ** 连成粗体或者粗斜体，_ 会和相邻的 _ 连成下划线。都不满足时使用 *。
func italicDelimiter(prev, next byte, content []byte) byte {
	for _, delimiter := range []byte{'*', '_'} {
		if delimiter == prev || delimiter == next {
			continue
		}
		if length := len(content); 0 < length && (delimiter == content[0] || delimiter == content[length-1]) {
			continue
		}
		return delimiter
	}
	return '*'
}

// nextByte 返回节点之后紧跟着输出的第一个字节，无法确定时返回 0。
func nextByte(node *ast.Node) byte {
	if nil != node.Next {
		return leadingByte(node.Next)
	}
	if nil != node.Parent {
		if delimiter, ok := delimiters[node.Parent.Type]; ok {
			return delimiter[len(delimiter)-1]
		}
	}
	return 0
}

// leadingByte 返回节点输出的第一个字节。斜体的标记尚未确定，返回 0，由它自己避开前一个字节。
func leadingByte(node *ast.Node) byte {
	if delimiter, ok := delimiters[node.Type]; ok {
		return delimiter[0]
	}
	if ast.NodeText == node.Type {
		if text := formatText(node); "" != text {
			return text[0]
		}
	}
	return 0
}

func reverse(str string) string {
	ret := []byte(str)
	for i, j := 0, len(ret)-1; i < j; i, j = i+1, j-1 {
		ret[i], ret[j] = ret[j], ret[i]
	}
	return string(ret)
}

func (r *FormatRenderer) renderInlineCode(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.WriteByte('`')
		r.Write(node.Tokens)
		r.WriteByte('`')
	}
	return ast.WalkContinue
}

func (r *FormatRenderer) renderLink(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.WriteString("[" + node.TokensStr() + "](" + util.BytesToStr(node.LinkDest) + ")")
	}
	return ast.WalkContinue
}

func (r *FormatRenderer) renderAutoLink(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.Write(node.LinkDest)
	}
	return ast.WalkContinue
}

var mentionPrefixes = map[ast.NodeType]string{
	ast.NodeUserMention:    "<@",
	ast.NodeChannelMention: "<#",
	ast.NodeRoleMention:    "<@&",
}

func (r *FormatRenderer) renderMention(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.WriteString(mentionPrefixes[node.Type] + node.TokensStr() + ">")
	}
	return ast.WalkContinue
}

func (r *FormatRenderer) renderCustomEmoji(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.WriteByte('<')
		if node.EmojiAnimated {
			r.WriteByte('a')
		}
		r.WriteString(":" + node.TokensStr() + ":" + node.EmojiID.String() + ">")
	}
	return ast.WalkContinue
}

func (r *FormatRenderer) renderTimestamp(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.WriteString("<t:" + strconv.FormatInt(node.TimestampUnix, 10) + ":" + string(node.TimestampFormat) + ">")
	}
	return ast.WalkContinue
}

func (r *FormatRenderer) renderLineBreak(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.WriteByte('\n')
	}
	return ast.WalkContinue
}
