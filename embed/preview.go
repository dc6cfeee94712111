// Package embed 实现了 Discord 消息和嵌入内容（Embed）的预览：校验消息限制，解析其中支持 Markdown 的文本。
package embed

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/pafthang/dmd/parse"
	"github.com/pafthang/dmd/util"
	"github.com/pkg/errors"
)

// 消息限制。
const (
	MaxContentLength = 2000
	MaxEmbeds        = 10
)

// DefaultColor 是未设置颜色时嵌入内容左侧色条的颜色（Blurple）。
const DefaultColor = 0x5865F2

var (
	ErrContentTooLong = errors.New("content is too long")
	ErrTooManyEmbeds  = errors.New("too many embeds")
)

// Preview 描述了一条消息的预览。
type Preview struct {
	Content *parse.Tree     // 消息正文，为空时为 nil
	Embeds  []*EmbedPreview // 嵌入内容
}

// EmbedPreview 描述了一个嵌入内容的预览。标题、作者和页脚在 Discord 中不支持 Markdown，按字面保留。
type EmbedPreview struct {
	Title       string
	URL         string
	AuthorName  string
	FooterText  string
	Color       string      // #rrggbb
	Description *parse.Tree // 描述，为空时为 nil
	Fields      []*FieldPreview
}

// FieldPreview 描述了嵌入内容中的一个字段。
type FieldPreview struct {
	Name   *parse.Tree
	Value  *parse.Tree
	Inline bool
}

// NewPreview 校验并解析消息正文 content 和嵌入内容 embeds。options 为 nil 时使用默认解析选项。
func NewPreview(content string, embeds []discord.Embed, options *parse.Options) (ret *Preview, err error) {
	if length := util.RuneCount(content); MaxContentLength < length {
		err = errors.Wrapf(ErrContentTooLong, "content has %d characters, limit is %d", length, MaxContentLength)
		return
	}
	if MaxEmbeds < len(embeds) {
		err = errors.Wrapf(ErrTooManyEmbeds, "message has %d embeds, limit is %d", len(embeds), MaxEmbeds)
		return
	}

	ret = &Preview{Content: parseText(content, options)}
	for i := range embeds {
		embed := embeds[i]
		color := Color(embed.Color)
		if err = embed.Validate(); nil != err {
			ret = nil
			err = errors.Wrapf(err, "invalid embed %d", i)
			return
		}

		preview := &EmbedPreview{
			Title:       embed.Title,
			URL:         string(embed.URL),
			Color:       color,
			Description: parseText(embed.Description, options),
		}
		if nil != embed.Author {
			preview.AuthorName = embed.Author.Name
		}
		if nil != embed.Footer {
			preview.FooterText = embed.Footer.Text
		}
		for _, field := range embed.Fields {
			preview.Fields = append(preview.Fields, &FieldPreview{
				Name:   parseText(field.Name, options),
				Value:  parseText(field.Value, options),
				Inline: field.Inline,
			})
		}
		ret.Embeds = append(ret.Embeds, preview)
	}
	return
}

func parseText(text string, options *parse.Options) *parse.Tree {
	if "" == text {
		return nil
	}
	return parse.Parse("", []byte(text), options)
}

// Color 将嵌入内容的颜色转换为 #rrggbb 形式。0 和负数（JSON 中的 null）为未设置，使用 DefaultColor；
// 超过 0xFFFFFF 的值按 0xFFFFFF 处理。
func Color(color discord.Color) string {
	value := int64(color)
	switch {
	case 0 >= value:
		value = DefaultColor
	case 0xFFFFFF < value:
		value = 0xFFFFFF
	}
	return fmt.Sprintf("#%06x", value)
}
