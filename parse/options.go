package parse

// DefaultMaxNestingDepth 是默认的最大嵌套深度。
const DefaultMaxNestingDepth = 32

// Options 描述了解析选项。
type Options struct {
	// MaxNestingDepth 为强调、剧透、块引用等结构的最大嵌套深度，超过后按字面文本输出。
	MaxNestingDepth int
	// CodeSyntaxHighlight 设置为 true 时对标注了语言的代码块进行语法高亮。
	CodeSyntaxHighlight bool
}

// NewOptions 创建默认的解析选项。
func NewOptions() *Options {
	return &Options{
		MaxNestingDepth:     DefaultMaxNestingDepth,
		CodeSyntaxHighlight: true,
	}
}

func (options *Options) maxNestingDepth() int {
	if 1 > options.MaxNestingDepth {
		return DefaultMaxNestingDepth
	}
	return options.MaxNestingDepth
}
