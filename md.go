// Package dmd 提供了一款 Discord 风格的 Markdown 引擎，支持 Go 和 JavaScript。
package dmd

import (
	"strings"
	"time"

	"github.com/alecthomas/chroma"
	"github.com/gopherjs/gopherjs/js"
	"github.com/pafthang/dmd/ast"
	"github.com/pafthang/dmd/highlight"
	"github.com/pafthang/dmd/parse"
	"github.com/pafthang/dmd/render"
	"github.com/pafthang/dmd/util"
)

const Version = "0.3.0"

// DMD 描述了 DMD 引擎的顶层使用入口。
type DMD struct {
	ParseOptions  *parse.Options  // 解析选项
	RenderOptions *render.Options // 渲染选项

	Md2HTMLRendererFuncs map[ast.NodeType]render.ExtRendererFunc // 用户自定义的 Md2HTML 渲染器函数
	Md2TextRendererFuncs map[ast.NodeType]render.ExtRendererFunc // 用户自定义的 Md2Text 渲染器函数
}

// New 创建一个新的 DMD 引擎。
//
// 默认的解析选项：
//   - 最大嵌套深度 32
//   - 代码块语法高亮
//
// 默认的渲染选项：
//   - 代码块语法高亮，使用 highlight- 前缀的类名
//   - 时间戳按 UTC 显示
//   - 媒体链接标记
func New(opts ...ParseOption) (ret *DMD) {
	ret = &DMD{ParseOptions: parse.NewOptions(), RenderOptions: render.NewOptions()}
	for _, opt := range opts {
		opt(ret)
	}

	ret.Md2HTMLRendererFuncs = map[ast.NodeType]render.ExtRendererFunc{}
	ret.Md2TextRendererFuncs = map[ast.NodeType]render.ExtRendererFunc{}
	return ret
}

// ParseOption 描述了解析选项设置函数签名。
type ParseOption func(dmd *DMD)

// WithMaxNestingDepth 设置最大嵌套深度。
func WithMaxNestingDepth(depth int) ParseOption {
	return func(dmd *DMD) {
		dmd.SetMaxNestingDepth(depth)
	}
}

// WithTimestampLocation 设置时间戳的显示时区。
func WithTimestampLocation(location *time.Location) ParseOption {
	return func(dmd *DMD) {
		dmd.SetTimestampLocation(location)
	}
}

// Parse 将 markdown 解析为语法树。name 参数仅用于标识文本，比如可传入 id 或者标题，也可以传入 ""。
func (dmd *DMD) Parse(name string, markdown []byte) (tree *parse.Tree) {
	tree = parse.Parse(name, markdown, dmd.ParseOptions)
	return
}

// ParseInline 将 markdown 作为行级内容解析为语法树，不识别标题、列表等块级结构。
func (dmd *DMD) ParseInline(name string, markdown []byte) (tree *parse.Tree) {
	tree = parse.Inline(name, markdown, dmd.ParseOptions)
	return
}

// Markdown 将 markdown 文本字节数组处理为相应的 html 字节数组。
func (dmd *DMD) Markdown(name string, markdown []byte) (html []byte) {
	tree := dmd.Parse(name, markdown)
	html = dmd.renderHTML(tree, dmd.RenderOptions)
	return
}

// MarkdownStr 接受 string 类型的 markdown 后直接调用 Markdown 进行处理。
func (dmd *DMD) MarkdownStr(name, markdown string) (html string) {
	htmlBytes := dmd.Markdown(name, []byte(markdown))
	html = util.BytesToStr(htmlBytes)
	return
}

// InlineMarkdownStr 将 markdown 作为行级内容渲染为 html，适用于嵌入内容的字段名等单行场景。
func (dmd *DMD) InlineMarkdownStr(name, markdown string) (html string) {
	tree := dmd.ParseInline(name, []byte(markdown))
	html = util.BytesToStr(dmd.renderHTML(tree, dmd.RenderOptions))
	return
}

func (dmd *DMD) renderHTML(tree *parse.Tree, options *render.Options) []byte {
	renderer := render.NewHtmlRenderer(tree, options)
	for nodeType, rendererFunc := range dmd.Md2HTMLRendererFuncs {
		renderer.ExtRendererFuncs[nodeType] = rendererFunc
	}
	return renderer.Render()
}

// Text 将 markdown 处理为用户看到的纯文本。
func (dmd *DMD) Text(name string, markdown []byte) (text []byte) {
	tree := dmd.Parse(name, markdown)
	renderer := render.NewTextRenderer(tree, dmd.RenderOptions)
	for nodeType, rendererFunc := range dmd.Md2TextRendererFuncs {
		renderer.ExtRendererFuncs[nodeType] = rendererFunc
	}
	text = renderer.Render()
	return
}

// TextStr 接受 string 类型的 markdown 后直接调用 Text 进行处理。
func (dmd *DMD) TextStr(name, markdown string) (text string) {
	text = util.BytesToStr(dmd.Text(name, []byte(markdown)))
	return
}

// Format 将 markdown 文本字节数组进行格式化。
func (dmd *DMD) Format(name string, markdown []byte) (formatted []byte) {
	tree := dmd.Parse(name, markdown)
	renderer := render.NewFormatRenderer(tree, dmd.RenderOptions)
	formatted = renderer.Render()
	return
}

// FormatStr 接受 string 类型的 markdown 后直接调用 Format 进行处理。
func (dmd *DMD) FormatStr(name, markdown string) (formatted string) {
	formattedBytes := dmd.Format(name, []byte(markdown))
	formatted = util.BytesToStr(formattedBytes)
	return
}

// RenderJSON 用于渲染 JSON 格式数据。
func (dmd *DMD) RenderJSON(markdown string) (json string) {
	tree := dmd.Parse("", []byte(markdown))
	renderer := render.NewJSONRenderer(tree, dmd.RenderOptions)
	output := renderer.Render()
	json = util.BytesToStr(output)
	return
}

// Highlight 对代码 code 按语言 language 进行语法高亮，语言不支持时返回 nil。
func (dmd *DMD) Highlight(code, language string) []chroma.Token {
	return highlight.Highlight(code, language)
}

// Tree2HTML 使用指定的 options 渲染 tree 为 HTML。
func (dmd *DMD) Tree2HTML(tree *parse.Tree, options *render.Options) string {
	output := dmd.renderHTML(tree, options)
	return util.BytesToStr(output)
}

// RenderSafe 调用 renderer 渲染，渲染过程中的 panic（比如自定义渲染函数引发的）会被转换为 err。
func RenderSafe(renderer render.Renderer) (output []byte, err error) {
	defer util.RecoverPanic(&err)
	output = renderer.Render()
	return
}

// FormatNode 将以 node 为根的子树格式化为 Markdown。
func FormatNode(node *ast.Node, renderOptions *render.Options) (ret string, err error) {
	tree := &parse.Tree{Root: node, ParseOption: parse.NewOptions()}
	output, err := RenderSafe(render.NewFormatRenderer(tree, renderOptions))
	if nil != err {
		return
	}
	ret = strings.TrimSpace(util.BytesToStr(output))
	return
}

// 以下 Setters 主要是给 JavaScript 端导出方法用。

func (dmd *DMD) SetMaxNestingDepth(depth int) {
	dmd.ParseOptions.MaxNestingDepth = depth
}

func (dmd *DMD) SetCodeSyntaxHighlight(b bool) {
	dmd.ParseOptions.CodeSyntaxHighlight = b
	dmd.RenderOptions.CodeSyntaxHighlight = b
}

func (dmd *DMD) SetCodeSyntaxHighlightInlineStyle(b bool) {
	dmd.RenderOptions.CodeSyntaxHighlightInlineStyle = b
}

func (dmd *DMD) SetCodeSyntaxHighlightStyleName(name string) {
	dmd.RenderOptions.CodeSyntaxHighlightStyleName = name
}

func (dmd *DMD) SetCodeSyntaxHighlightClassPrefix(prefix string) {
	dmd.RenderOptions.CodeSyntaxHighlightClassPrefix = prefix
}

func (dmd *DMD) SetTimestampLocation(location *time.Location) {
	dmd.RenderOptions.TimestampLocation = location
}

func (dmd *DMD) SetMediaLinkPreview(b bool) {
	dmd.RenderOptions.MediaLinkPreview = b
}

// SetJSRenderers 设置 JavaScript 端传入的自定义渲染函数，options["renderers"] 的键为渲染器类型（Md2HTML 或者 Md2Text），
// 值为包含 renderXxx 方法的对象，Xxx 为去掉 Node 前缀的节点类型名。
func (dmd *DMD) SetJSRenderers(options map[string]map[string]*js.Object) {
	for rendererType, extRenderer := range options["renderers"] {
		switch extRenderer.Interface().(type) { // 稍微进行一点格式校验
		case map[string]interface{}:
			break
		default:
			panic("invalid type [" + rendererType + "]")
		}

		var rendererFuncs map[ast.NodeType]render.ExtRendererFunc
		switch rendererType {
		case "Md2HTML":
			rendererFuncs = dmd.Md2HTMLRendererFuncs
		case "Md2Text":
			rendererFuncs = dmd.Md2TextRendererFuncs
		default:
			panic("unknown ext renderer func [" + rendererType + "]")
		}

		extRenderer := extRenderer
		renderFuncs := extRenderer.Interface().(map[string]interface{})
		for funcName := range renderFuncs {
			nodeType := ast.Str2NodeType("Node" + strings.TrimPrefix(funcName, "render"))
			if 0 > nodeType {
				continue
			}
			rendererFuncs[nodeType] = func(node *ast.Node, entering bool) (string, ast.WalkStatus) {
				funcName := "render" + strings.TrimPrefix(node.Type.String(), "Node")
				ret := extRenderer.Call(funcName, js.MakeWrapper(node), entering).Interface().([]interface{})
				return ret[0].(string), ast.WalkStatus(ret[1].(float64))
			}
		}
	}
}
