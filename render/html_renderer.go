package render

import (
	"strconv"
	"strings"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/pafthang/dmd/ast"
	"github.com/pafthang/dmd/parse"
	"github.com/pafthang/dmd/util"
	"golang.org/x/net/html"
)

// 提及的占位文本。
const (
	UserMentionText    = "@User"
	ChannelMentionText = "#channel"
	RoleMentionText    = "@Role"
)

// HtmlRenderer 描述了 HTML 渲染器。树中的所有文本都会被转义输出。
type HtmlRenderer struct {
	*BaseRenderer
}

// NewHtmlRenderer 创建一个 HTML 渲染器。
func NewHtmlRenderer(tree *parse.Tree, options *Options) *HtmlRenderer {
	ret := &HtmlRenderer{NewBaseRenderer(tree, options)}
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
	ret.RendererFuncs[ast.NodeBold] = ret.renderEmphasis
	ret.RendererFuncs[ast.NodeItalic] = ret.renderEmphasis
	ret.RendererFuncs[ast.NodeBoldItalic] = ret.renderEmphasis
	ret.RendererFuncs[ast.NodeUnderline] = ret.renderEmphasis
	ret.RendererFuncs[ast.NodeUnderlineBold] = ret.renderEmphasis
	ret.RendererFuncs[ast.NodeUnderlineItalic] = ret.renderEmphasis
	ret.RendererFuncs[ast.NodeUnderlineBoldItalic] = ret.renderEmphasis
	ret.RendererFuncs[ast.NodeStrikethrough] = ret.renderStrikethrough
	ret.RendererFuncs[ast.NodeSpoiler] = ret.renderSpoiler
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

func (r *HtmlRenderer) renderDocument(node *ast.Node, entering bool) ast.WalkStatus {
	return ast.WalkContinue
}

func (r *HtmlRenderer) renderHeading(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.Newline()
		r.WriteString("<h" + strconv.Itoa(node.HeadingLevel) + ">")
	} else {
		r.WriteString("</h" + strconv.Itoa(node.HeadingLevel) + ">")
		r.Newline()
	}
	return ast.WalkContinue
}

func (r *HtmlRenderer) renderSubtext(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.Newline()
		r.Tag("div", [][]string{{"class", "discord-subtext"}}, false)
	} else {
		r.Tag("/div", nil, false)
		r.Newline()
	}
	return ast.WalkContinue
}

func (r *HtmlRenderer) renderBlockquote(node *ast.Node, entering bool) ast.WalkStatus {
	r.Newline()
	if entering {
		r.Tag("blockquote", [][]string{{"class", "discord-blockquote"}}, false)
	} else {
		r.Tag("/blockquote", nil, false)
	}
	r.Newline()
	return ast.WalkContinue
}

func (r *HtmlRenderer) renderList(node *ast.Node, entering bool) ast.WalkStatus {
	r.Newline()
	if entering {
		r.Tag("ul", [][]string{{"class", "discord-list"}}, false)
	} else {
		r.Tag("/ul", nil, false)
	}
	r.Newline()
	return ast.WalkContinue
}

// renderListItem 渲染列表项，子列表项包裹在嵌套的 ul 中。
func (r *HtmlRenderer) renderListItem(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.Tag("li", nil, false)
	} else {
		if ast.NodeListItem == node.LastChild.Type {
			r.Tag("/ul", nil, false)
		}
		r.Tag("/li", nil, false)
		r.Newline()
	}
	return ast.WalkContinue
}

func (r *HtmlRenderer) renderListItemContent(node *ast.Node, entering bool) ast.WalkStatus {
	if !entering && nil != node.Next {
		r.Newline()
		r.Tag("ul", nil, false)
		r.Newline()
	}
	return ast.WalkContinue
}

func (r *HtmlRenderer) renderParagraph(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.Newline()
		r.Tag("p", nil, false)
	} else {
		r.Tag("/p", nil, false)
		r.Newline()
	}
	return ast.WalkContinue
}

func (r *HtmlRenderer) renderParagraphLine(node *ast.Node, entering bool) ast.WalkStatus {
	if !entering && (nil != node.Next || node.HardBreak) {
		r.Tag("br", nil, true)
		r.Newline()
	}
	return ast.WalkContinue
}

func (r *HtmlRenderer) renderGap(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.Newline()
		r.Tag("div", [][]string{{"class", "discord-gap"}}, false)
		r.Tag("/div", nil, false)
		r.Newline()
	}
	return ast.WalkContinue
}

func (r *HtmlRenderer) renderText(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.WriteString(html.EscapeString(util.BytesToStr(node.Tokens)))
	}
	return ast.WalkContinue
}

var emphasisTags = map[ast.NodeType]string{
	ast.NodeBold:      "strong",
	ast.NodeItalic:    "em",
	ast.NodeUnderline: "u",
}

// renderEmphasis 渲染强调节点，组合强调由外到内依次输出标签，比如 __**x**__ 输出 <u><strong>x</strong></u>。
func (r *HtmlRenderer) renderEmphasis(node *ast.Node, entering bool) ast.WalkStatus {
	styles := node.Styles()
	if entering {
		for _, style := range styles {
			r.Tag(emphasisTags[style], nil, false)
		}
	} else {
		for i := len(styles) - 1; 0 <= i; i-- {
			r.Tag("/"+emphasisTags[styles[i]], nil, false)
		}
	}
	return ast.WalkContinue
}

func (r *HtmlRenderer) renderStrikethrough(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.Tag("s", nil, false)
	} else {
		r.Tag("/s", nil, false)
	}
	return ast.WalkContinue
}

func (r *HtmlRenderer) renderSpoiler(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.Tag("span", [][]string{{"class", "discord-spoiler"}}, false)
	} else {
		r.Tag("/span", nil, false)
	}
	return ast.WalkContinue
}

func (r *HtmlRenderer) renderInlineCode(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.Tag("code", [][]string{{"class", "discord-inline-code"}}, false)
		r.WriteString(html.EscapeString(util.BytesToStr(node.Tokens)))
		r.Tag("/code", nil, false)
	}
	return ast.WalkContinue
}

// renderLink 渲染链接。只有 http 和 https 链接会输出为 a 标签，其他协议的链接只输出链接文本。
func (r *HtmlRenderer) renderLink(node *ast.Node, entering bool) ast.WalkStatus {
	if !entering {
		return ast.WalkContinue
	}

	dest := util.BytesToStr(node.LinkDest)
	if !isWebLink(dest) {
		r.WriteString(html.EscapeString(util.BytesToStr(node.Tokens)))
		return ast.WalkContinue
	}
	r.Tag("a", linkAttrs(dest), false)
	r.WriteString(html.EscapeString(util.BytesToStr(node.Tokens)))
	r.Tag("/a", nil, false)
	return ast.WalkContinue
}

func (r *HtmlRenderer) renderAutoLink(node *ast.Node, entering bool) ast.WalkStatus {
	if !entering {
		return ast.WalkContinue
	}

	dest := util.BytesToStr(node.LinkDest)
	attrs := linkAttrs(dest)
	if r.Options.MediaLinkPreview {
		if media := MediaType(dest); "" != media {
			attrs = append(attrs, []string{"data-media", media})
		}
	}
	r.Tag("a", attrs, false)
	r.WriteString(html.EscapeString(util.BytesToStr(node.Tokens)))
	r.Tag("/a", nil, false)
	return ast.WalkContinue
}

func linkAttrs(dest string) [][]string {
	return [][]string{{"href", dest}, {"target", "_blank"}, {"rel", "noopener noreferrer"}}
}

func isWebLink(dest string) bool {
	dest = strings.ToLower(strings.TrimSpace(dest))
	return strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://")
}

var mentionTexts = map[ast.NodeType]string{
	ast.NodeUserMention:    UserMentionText,
	ast.NodeChannelMention: ChannelMentionText,
	ast.NodeRoleMention:    RoleMentionText,
}

func (r *HtmlRenderer) renderMention(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.Tag("span", [][]string{{"class", "discord-mention"}}, false)
		r.WriteString(html.EscapeString(mentionTexts[node.Type]))
		r.Tag("/span", nil, false)
	}
	return ast.WalkContinue
}

// renderCustomEmoji 渲染自定义表情为 CDN 图片，无法生成地址时输出 :name:。
func (r *HtmlRenderer) renderCustomEmoji(node *ast.Node, entering bool) ast.WalkStatus {
	if !entering {
		return ast.WalkContinue
	}

	name := ":" + util.BytesToStr(node.Tokens) + ":"
	emoji := discord.Emoji{ID: node.EmojiID, Name: util.BytesToStr(node.Tokens), Animated: node.EmojiAnimated}
	src := emoji.EmojiURL()
	if "" == src {
		r.WriteString(html.EscapeString(name))
		return ast.WalkContinue
	}
	r.Tag("img", [][]string{{"class", "discord-emoji"}, {"src", src}, {"alt", name}, {"draggable", "false"}}, true)
	return ast.WalkContinue
}

func (r *HtmlRenderer) renderTimestamp(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		attrs := [][]string{
			{"class", "discord-timestamp"},
			{"data-timestamp", strconv.FormatInt(node.TimestampUnix, 10)},
			{"data-format", string(node.TimestampFormat)},
		}
		r.Tag("span", attrs, false)
		r.WriteString(html.EscapeString(TimestampText(node, r.Options.TimestampLocation)))
		r.Tag("/span", nil, false)
	}
	return ast.WalkContinue
}

func (r *HtmlRenderer) renderLineBreak(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.Tag("br", nil, true)
	}
	return ast.WalkContinue
}

// Tag 会输出 HTML 标签，属性值会被转义。
func (r *HtmlRenderer) Tag(name string, attrs [][]string, selfclosing bool) {
	r.WriteString("<")
	r.WriteString(name)
	for _, attr := range attrs {
		r.WriteString(" " + attr[0] + "=\"" + html.EscapeString(attr[1]) + "\"")
	}
	if selfclosing {
		r.WriteString(" /")
	}
	r.WriteString(">")
}

// inlineCodeBlock 判断代码块是否位于段落行、标题等行级内容中，这时只能输出 <code>，不能输出 <pre>。
func inlineCodeBlock(node *ast.Node) bool {
	parent := node.Parent
	return nil != parent && ast.NodeDocument != parent.Type && ast.NodeBlockquote != parent.Type
}
