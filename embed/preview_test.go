package embed_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pafthang/dmd/ast"
	"github.com/pafthang/dmd/embed"
)

func TestNewPreview(t *testing.T) {
	embeds := []discord.Embed{{
		Title:       "**Release** notes",
		URL:         "https://example.com/release",
		Description: "Fixed *everything*",
		Color:       0x00ADD8,
		Author:      &discord.EmbedAuthor{Name: "__bot__"},
		Footer:      &discord.EmbedFooter{Text: "v1 ~~beta~~"},
		Fields: []discord.EmbedField{
			{Name: "**Added**", Value: "- a\n- b", Inline: true},
		},
	}}

	preview, err := embed.NewPreview("Hello <@1>", embeds, nil)
	require.NoError(t, err)
	assert.Equal(t, `[Paragraph([([Text("Hello "),UserMention], false)])]`, ast.Sprint(preview.Content.Root))

	require.Len(t, preview.Embeds, 1)
	e := preview.Embeds[0]
	assert.Equal(t, "**Release** notes", e.Title)
	assert.Equal(t, "__bot__", e.AuthorName)
	assert.Equal(t, "v1 ~~beta~~", e.FooterText)
	assert.Equal(t, "#00add8", e.Color)
	assert.Equal(t, `[Paragraph([([Text("Fixed "),Italic([Text("everything")])], false)])]`, ast.Sprint(e.Description.Root))

	require.Len(t, e.Fields, 1)
	assert.True(t, e.Fields[0].Inline)
	assert.Equal(t, `[Paragraph([([Bold([Text("Added")])], false)])]`, ast.Sprint(e.Fields[0].Name.Root))
	assert.Equal(t, ast.NodeList, e.Fields[0].Value.Root.FirstChild.Type)
}

func TestNewPreviewEmptyText(t *testing.T) {
	preview, err := embed.NewPreview("", []discord.Embed{{Title: "t"}}, nil)
	require.NoError(t, err)
	assert.Nil(t, preview.Content)
	assert.Nil(t, preview.Embeds[0].Description)
	assert.Equal(t, "#5865f2", preview.Embeds[0].Color)
}

func TestNewPreviewLimits(t *testing.T) {
	_, err := embed.NewPreview(strings.Repeat("é", embed.MaxContentLength), nil, nil)
	assert.NoError(t, err)

	_, err = embed.NewPreview(strings.Repeat("a", embed.MaxContentLength+1), nil, nil)
	assert.ErrorIs(t, err, embed.ErrContentTooLong)

	_, err = embed.NewPreview("", make([]discord.Embed, embed.MaxEmbeds+1), nil)
	assert.ErrorIs(t, err, embed.ErrTooManyEmbeds)

	_, err = embed.NewPreview("", []discord.Embed{{Title: "ok"}, {Title: strings.Repeat("t", 300)}}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid embed 1")
}

func TestColor(t *testing.T) {
	assert.Equal(t, "#5865f2", embed.Color(0))
	assert.Equal(t, "#000001", embed.Color(1))
	assert.Equal(t, "#ffffff", embed.Color(0xFFFFFF))
	assert.Equal(t, "#ffffff", embed.Color(0x1000000))
}

func TestPreviewHTML(t *testing.T) {
	embeds := []discord.Embed{{
		Title:       "<b>title</b>",
		URL:         "https://example.com",
		Description: "||secret||",
		Footer:      &discord.EmbedFooter{Text: "footer"},
		Fields:      []discord.EmbedField{{Name: "n", Value: "v"}},
	}}
	preview, err := embed.NewPreview("**hi**", embeds, nil)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(preview.HTML(nil)))
	require.NoError(t, err)
	assert.Equal(t, "hi", doc.Find(".discord-content strong").Text())

	e := doc.Find(".discord-embed")
	style, _ := e.Attr("style")
	assert.Equal(t, "border-left-color: #5865f2", style)
	assert.Equal(t, "<b>title</b>", e.Find(".discord-embed-title a").Text())
	assert.Equal(t, 0, e.Find(".discord-embed-title b").Length())
	assert.Equal(t, "secret", e.Find(".discord-embed-description .discord-spoiler").Text())
	assert.Equal(t, "n", strings.TrimSpace(e.Find(".discord-embed-field-name").Text()))
	assert.Equal(t, 0, e.Find(".discord-embed-field-inline").Length())
	assert.Equal(t, "footer", e.Find(".discord-embed-footer").Text())
	assert.Equal(t, 0, e.Find(".discord-embed-author").Length())
}
