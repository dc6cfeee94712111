package render

import "time"

// Options 描述了渲染选项。
type Options struct {
	// CodeSyntaxHighlight 设置是否对代码块进行语法高亮。
	CodeSyntaxHighlight bool
	// CodeSyntaxHighlightInlineStyle 设置语法高亮是否为内联样式，默认不内联，使用带前缀的类名。
	CodeSyntaxHighlightInlineStyle bool
	// CodeSyntaxHighlightStyleName 指定语法高亮样式名，可用的样式名参考 chroma 的 styles 包。
	CodeSyntaxHighlightStyleName string
	// CodeSyntaxHighlightClassPrefix 为非内联样式时语法高亮类名的前缀。
	CodeSyntaxHighlightClassPrefix string
	// TimestampLocation 为渲染时间戳使用的时区。
	TimestampLocation *time.Location
	// MediaLinkPreview 设置是否标记指向图片、视频和音频的自动链接。
	MediaLinkPreview bool
}

// NewOptions 创建默认的渲染选项。
func NewOptions() *Options {
	return &Options{
		CodeSyntaxHighlight:            true,
		CodeSyntaxHighlightStyleName:   "monokai",
		CodeSyntaxHighlightClassPrefix: "highlight-",
		TimestampLocation:              time.UTC,
		MediaLinkPreview:               true,
	}
}
