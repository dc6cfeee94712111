//go:build javascript
// +build javascript

package highlight

import "strings"

func foldLanguage(language string) string {
	return strings.ToLower(language)
}

// resolveAlias 在浏览器中不加载 chroma 词法分析器注册表，仅支持内置别名。
func resolveAlias(language string) string {
	return ""
}
