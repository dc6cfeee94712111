package main

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/pafthang/dmd"
	"github.com/pafthang/dmd/ast"
	"github.com/pafthang/dmd/highlight"
	"github.com/pafthang/dmd/render"
)

func main() {
	js.Global.Set("DMD", map[string]interface{}{
		"Version":          dmd.Version,
		"New":              New,
		"WalkStop":         ast.WalkStop,
		"WalkSkipChildren": ast.WalkSkipChildren,
		"WalkContinue":     ast.WalkContinue,
		"EscapeText":       render.EscapeText,
		"MediaType":        render.MediaType,
		"Supported":        highlight.Supported,
	})
}

// New 创建一个 DMD 引擎，options 中可以通过 renderers 传入自定义渲染函数。
func New(options map[string]map[string]*js.Object) *js.Object {
	engine := dmd.New()
	engine.SetJSRenderers(options)
	return js.MakeWrapper(engine)
}
