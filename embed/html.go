package embed

import (
	"strings"

	"github.com/pafthang/dmd/parse"
	"github.com/pafthang/dmd/render"
	"github.com/pafthang/dmd/util"
	"golang.org/x/net/html"
)

// HTML 将预览渲染为 HTML。options 为 nil 时使用默认渲染选项。
func (preview *Preview) HTML(options *render.Options) string {
	b := &strings.Builder{}
	b.WriteString("<div class=\"discord-message\">\n")
	if nil != preview.Content {
		writeTree(b, "discord-content", preview.Content, options)
	}
	for _, embed := range preview.Embeds {
		embed.writeHTML(b, options)
	}
	b.WriteString("</div>\n")
	return b.String()
}

func (embed *EmbedPreview) writeHTML(b *strings.Builder, options *render.Options) {
	b.WriteString("<div class=\"discord-embed\" style=\"border-left-color: " + embed.Color + "\">\n")
	writeLiteral(b, "discord-embed-author", embed.AuthorName)
	if "" != embed.Title {
		b.WriteString("<div class=\"discord-embed-title\">")
		if "" != embed.URL {
			b.WriteString("<a href=\"" + html.EscapeString(embed.URL) + "\" target=\"_blank\" rel=\"noopener noreferrer\">")
			b.WriteString(html.EscapeString(embed.Title))
			b.WriteString("</a>")
		} else {
			b.WriteString(html.EscapeString(embed.Title))
		}
		b.WriteString("</div>\n")
	}
	if nil != embed.Description {
		writeTree(b, "discord-embed-description", embed.Description, options)
	}

	if 0 < len(embed.Fields) {
		b.WriteString("<div class=\"discord-embed-fields\">\n")
		for _, field := range embed.Fields {
			class := "discord-embed-field"
			if field.Inline {
				class += " discord-embed-field-inline"
			}
			b.WriteString("<div class=\"" + class + "\">\n")
			if nil != field.Name {
				writeTree(b, "discord-embed-field-name", field.Name, options)
			}
			if nil != field.Value {
				writeTree(b, "discord-embed-field-value", field.Value, options)
			}
			b.WriteString("</div>\n")
		}
		b.WriteString("</div>\n")
	}
	writeLiteral(b, "discord-embed-footer", embed.FooterText)
	b.WriteString("</div>\n")
}

func writeTree(b *strings.Builder, class string, tree *parse.Tree, options *render.Options) {
	b.WriteString("<div class=\"" + class + "\">\n")
	b.WriteString(util.BytesToStr(render.NewHtmlRenderer(tree, options).Render()))
	b.WriteString("</div>\n")
}

func writeLiteral(b *strings.Builder, class, text string) {
	if "" == text {
		return
	}
	b.WriteString("<div class=\"" + class + "\">" + html.EscapeString(text) + "</div>\n")
}
