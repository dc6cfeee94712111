package render

import (
	"bytes"
	"strings"

	"github.com/pafthang/dmd/ast"
	"github.com/pafthang/dmd/parse"
)

// TextRenderer 描述了纯文本渲染器，输出用户看到的展示文本。
type TextRenderer struct {
	*BaseRenderer
	listDepth int
}

// NewTextRenderer 创建一个纯文本渲染器。
func NewTextRenderer(tree *parse.Tree, options *Options) *TextRenderer {
	ret := &TextRenderer{BaseRenderer: NewBaseRenderer(tree, options)}
	ret.RendererFuncs[ast.NodeDocument] = ret.renderDocument
	ret.RendererFuncs[ast.NodeHeading] = ret.renderBlock
	ret.RendererFuncs[ast.NodeSubtext] = ret.renderBlock
	ret.RendererFuncs[ast.NodeBlockquote] = ret.renderBlock
	ret.RendererFuncs[ast.NodeCodeBlock] = ret.renderCodeBlock
	ret.RendererFuncs[ast.NodeList] = ret.renderBlock
	ret.RendererFuncs[ast.NodeListItem] = ret.renderListItem
	ret.RendererFuncs[ast.NodeListItemContent] = ret.renderListItemContent
	ret.RendererFuncs[ast.NodeParagraph] = ret.renderBlock
	ret.RendererFuncs[ast.NodeParagraphLine] = ret.renderParagraphLine
	ret.RendererFuncs[ast.NodeGap] = ret.renderGap
	ret.DefaultRendererFunc = ret.renderInline
	return ret
}

// Render 渲染纯文本，去掉结尾的换行。
func (r *TextRenderer) Render() (output []byte) {
	r.listDepth = 0
	output = bytes.TrimRight(r.BaseRenderer.Render(), "\n")
	return
}

func (r *TextRenderer) renderDocument(node *ast.Node, entering bool) ast.WalkStatus {
	return ast.WalkContinue
}

func (r *TextRenderer) renderBlock(node *ast.Node, entering bool) ast.WalkStatus {
	r.Newline()
	return ast.WalkContinue
}

func (r *TextRenderer) renderCodeBlock(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		if node.Parent.IsBlock() {
			r.Newline()
		}
		r.Write(node.Tokens)
		if node.Parent.IsBlock() {
			r.Newline()
		}
	}
	return ast.WalkSkipChildren
}

func (r *TextRenderer) renderListItem(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.Newline()
		r.WriteString(strings.Repeat("  ", r.listDepth) + "• ")
		r.listDepth++
	} else {
		r.listDepth--
	}
	return ast.WalkContinue
}

func (r *TextRenderer) renderListItemContent(node *ast.Node, entering bool) ast.WalkStatus {
	if !entering {
		r.Newline()
	}
	return ast.WalkContinue
}

func (r *TextRenderer) renderParagraphLine(node *ast.Node, entering bool) ast.WalkStatus {
	if !entering {
		r.WriteByte('\n')
	}
	return ast.WalkContinue
}

func (r *TextRenderer) renderGap(node *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.WriteByte('\n')
	}
	return ast.WalkContinue
}

// renderInline 输出行级节点的展示文本，强调、删除线和剧透只输出其子节点。
func (r *TextRenderer) renderInline(node *ast.Node, entering bool) ast.WalkStatus {
	if !entering {
		return ast.WalkContinue
	}

	switch node.Type {
	case ast.NodeText, ast.NodeInlineCode, ast.NodeLink, ast.NodeAutoLink:
		r.Write(node.Tokens)
	case ast.NodeUserMention, ast.NodeChannelMention, ast.NodeRoleMention:
		r.WriteString(mentionTexts[node.Type])
	case ast.NodeCustomEmoji:
		r.WriteString(":" + node.TokensStr() + ":")
	case ast.NodeTimestamp:
		r.WriteString(TimestampText(node, r.Options.TimestampLocation))
	case ast.NodeLineBreak:
		r.WriteByte('\n')
	}
	return ast.WalkContinue
}
