package parse

import (
	"strings"

	"github.com/pafthang/dmd/ast"
)

// parseInline 解析行级内容 text。
//
// 按规则表顺序取第一条在 text 中任意位置匹配的规则，将 text 切分为前段、匹配段和后段，
// 前后两段再使用完整的规则表递归解析。没有规则匹配时按换行拆分为文本节点和换行节点。
// 相邻的文本节点会被合并。
func (t *Tree) parseInline(text string, depth int) (ret []*ast.Node) {
	if "" == text {
		return
	}
	if depth > t.ParseOption.maxNestingDepth() {
		return textNodes(text)
	}

	for _, rule := range inlineRules {
		loc := rule.pattern.FindStringSubmatchIndex(text)
		if nil == loc {
			continue
		}

		node := rule.build(t, submatches(text, loc), depth)
		ret = appendInline(ret, t.parseInline(text[:loc[0]], depth)...)
		ret = appendInline(ret, node)
		ret = appendInline(ret, t.parseInline(text[loc[1]:], depth)...)
		return
	}
	return textNodes(text)
}

// submatches 将 FindStringSubmatchIndex 的结果转换为字符串，未参与匹配的分组为空串。
func submatches(text string, loc []int) (ret []string) {
	ret = make([]string, len(loc)/2)
	for i := range ret {
		if start := loc[2*i]; 0 <= start {
			ret[i] = text[start:loc[2*i+1]]
		}
	}
	return
}

// textNodes 将 text 按换行拆分为文本节点和换行节点。
func textNodes(text string) (ret []*ast.Node) {
	for i, line := range strings.Split(text, "\n") {
		if 0 < i {
			ret = append(ret, &ast.Node{Type: ast.NodeLineBreak})
		}
		if "" != line {
			ret = append(ret, newText(line))
		}
	}
	return
}

func newText(text string) *ast.Node {
	return &ast.Node{Type: ast.NodeText, Tokens: []byte(text)}
}

// appendInline 追加节点，如果追加的文本节点紧跟在文本节点之后则合并到前一个节点中。
func appendInline(nodes []*ast.Node, appends ...*ast.Node) []*ast.Node {
	for _, n := range appends {
		if nil == n || (ast.NodeText == n.Type && 1 > len(n.Tokens)) {
			continue
		}
		if last := len(nodes) - 1; 0 <= last && ast.NodeText == n.Type && ast.NodeText == nodes[last].Type {
			nodes[last].Tokens = append(nodes[last].Tokens, n.Tokens...)
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes
}
