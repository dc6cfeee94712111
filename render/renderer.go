// Package render 实现了语法树的渲染，包括 HTML、纯文本、Markdown 格式化和 JSON 渲染器。
package render

import (
	"bytes"

	"github.com/pafthang/dmd/ast"
	"github.com/pafthang/dmd/parse"
	"github.com/pafthang/dmd/util"
)

// Renderer 描述了渲染器接口。
type Renderer interface {
	// Render 渲染输出。
	Render() (output []byte)
}

// RendererFunc 描述了渲染器函数签名。
type RendererFunc func(n *ast.Node, entering bool) ast.WalkStatus

// ExtRendererFunc 描述了用户自定义的渲染器函数签名，返回值为需要输出的内容和遍历状态。
type ExtRendererFunc func(n *ast.Node, entering bool) (string, ast.WalkStatus)

// BaseRenderer 描述了渲染器结构。
type BaseRenderer struct {
	Options             *Options                         // 渲染选项
	RendererFuncs       map[ast.NodeType]RendererFunc    // 渲染器
	DefaultRendererFunc RendererFunc                     // 默认渲染器，在 RendererFuncs 中找不到节点渲染器时会使用该默认渲染器进行渲染
	ExtRendererFuncs    map[ast.NodeType]ExtRendererFunc // 用户自定义的渲染器
	Writer              *bytes.Buffer                    // 输出缓冲
	LastOut             byte                             // 最新输出的一个字节
	Tree                *parse.Tree                      // 待渲染的树
	NodeWriterStack     []*bytes.Buffer                  // 节点输出缓冲栈，用于需要对子节点输出进行后处理的场景
}

// NewBaseRenderer 构造一个 BaseRenderer。options 为 nil 时使用默认渲染选项。
func NewBaseRenderer(tree *parse.Tree, options *Options) *BaseRenderer {
	if nil == options {
		options = NewOptions()
	}
	ret := &BaseRenderer{RendererFuncs: map[ast.NodeType]RendererFunc{}, ExtRendererFuncs: map[ast.NodeType]ExtRendererFunc{}, Options: options, Tree: tree}
	ret.Writer = &bytes.Buffer{}
	ret.Writer.Grow(4096)
	return ret
}

// Render 从指定的根节点 root 开始遍历并渲染。
func (r *BaseRenderer) Render() (output []byte) {
	r.LastOut = '\n'
	r.Writer = &bytes.Buffer{}
	r.Writer.Grow(4096)
	r.NodeWriterStack = nil

	ast.Walk(r.Tree.Root, func(n *ast.Node, entering bool) ast.WalkStatus {
		extRender := r.ExtRendererFuncs[n.Type]
		if nil != extRender {
			output, status := extRender(n, entering)
			r.WriteString(output)
			return status
		}

		render := r.RendererFuncs[n.Type]
		if nil == render {
			if nil != r.DefaultRendererFunc {
				return r.DefaultRendererFunc(n, entering)
			}
			return r.renderDefault(n, entering)
		}
		return render(n, entering)
	})

	output = r.Writer.Bytes()
	return
}

func (r *BaseRenderer) renderDefault(n *ast.Node, entering bool) ast.WalkStatus {
	if entering {
		r.WriteString("not found render function for node [type=" + n.Type.String() + ", Tokens=" + util.BytesToStr(n.Tokens) + "]")
	}
	return ast.WalkContinue
}

// WriteByte 输出一个字节 c。
func (r *BaseRenderer) WriteByte(c byte) {
	r.Writer.WriteByte(c)
	r.LastOut = c
}

// Write 输出指定的字节数组 content。
func (r *BaseRenderer) Write(content []byte) {
	if length := len(content); 0 < length {
		r.Writer.Write(content)
		r.LastOut = content[length-1]
	}
}

// WriteString 输出指定的字符串 content。
func (r *BaseRenderer) WriteString(content string) {
	if length := len(content); 0 < length {
		r.Writer.WriteString(content)
		r.LastOut = content[length-1]
	}
}

// Newline 会在最新内容不是换行符 \n 时输出一个换行符。
func (r *BaseRenderer) Newline() {
	if '\n' != r.LastOut {
		r.Writer.WriteByte('\n')
		r.LastOut = '\n'
	}
}

// pushWriter 将后续输出重定向到一个新的缓冲中，配合 popWriter 取得子节点的输出。
func (r *BaseRenderer) pushWriter() {
	r.NodeWriterStack = append(r.NodeWriterStack, r.Writer)
	r.Writer = &bytes.Buffer{}
	r.LastOut = '\n'
}

// popWriter 恢复上一个输出缓冲，返回 pushWriter 之后输出的内容。
func (r *BaseRenderer) popWriter() (output []byte) {
	output = r.Writer.Bytes()
	last := len(r.NodeWriterStack) - 1
	r.Writer = r.NodeWriterStack[last]
	r.NodeWriterStack = r.NodeWriterStack[:last]
	if length := r.Writer.Len(); 0 < length {
		r.LastOut = r.Writer.Bytes()[length-1]
	} else {
		r.LastOut = '\n'
	}
	return
}
