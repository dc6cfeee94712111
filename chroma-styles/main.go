package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/styles"
	"github.com/pafthang/dmd/render"
)

// 生成代码块高亮使用的 Chroma 样式，类名前缀与 HTML 渲染器默认一致。
func main() {
	dir := "chroma-styles"
	options := render.NewOptions()
	names := styles.Names()
	for _, name := range names {
		options.CodeSyntaxHighlightStyleName = name
		css, err := render.CodeBlockCSS(options)
		if nil != err {
			fmt.Fprintln(os.Stderr, "generate style ["+name+"] failed: "+err.Error())
			os.Exit(1)
		}
		if err = os.WriteFile(filepath.Join(dir, name)+".css", []byte(css), 0644); nil != err {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fmt.Println("[\"" + strings.Join(names, "\", \"") + "\"]")
}
