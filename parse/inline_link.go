package parse

import (
	"github.com/pafthang/dmd/ast"
)

// buildLink 构造链接 [text](url)，链接文本按字面保存，不再继续解析。
func buildLink(t *Tree, match []string, depth int) *ast.Node {
	return &ast.Node{Type: ast.NodeLink, Tokens: []byte(match[1]), LinkDest: []byte(match[2])}
}

// buildAutoLink 构造自动链接，地址延续到下一个空白字符。
func buildAutoLink(t *Tree, match []string, depth int) *ast.Node {
	return &ast.Node{Type: ast.NodeAutoLink, Tokens: []byte(match[1]), LinkDest: []byte(match[1])}
}
