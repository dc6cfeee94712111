//go:build !javascript
// +build !javascript

package highlight

import (
	"github.com/alecthomas/chroma/lexers"
	"golang.org/x/text/cases"
)

func foldLanguage(language string) string {
	return cases.Fold().String(language)
}

// resolveAlias 使用 chroma 的词法分析器注册表将别名或文件名（比如 python3、main.go）解析为规范名称。
func resolveAlias(language string) string {
	lexer := lexers.Get(language)
	if nil == lexer {
		return ""
	}
	return foldLanguage(lexer.Config().Name)
}
