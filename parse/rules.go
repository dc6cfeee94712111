package parse

import (
	"regexp"

	"github.com/pafthang/dmd/ast"
)

// inlineRule 描述了一条行级规则：模式以及匹配后构造节点的函数。
// match 为完整匹配和各个分组，未参与匹配的分组为空串；depth 为当前嵌套深度。
type inlineRule struct {
	name    string
	pattern *regexp.Regexp
	build   func(t *Tree, match []string, depth int) *ast.Node
}

// inlineRules 按优先级从高到低排列，构建后只读，所有解析共享。
//
// 标题、小字、块引用和列表标记只在块级识别，不在这里出现。
// 包裹型规则的构造函数会递归引用规则表，所以在 init 中初始化。
var inlineRules []*inlineRule

func init() {
	inlineRules = []*inlineRule{
		{"escape", regexp.MustCompile("\\\\([\\\\*_~|`\\[\\]])"), buildEscape},
		{"spoiler", regexp.MustCompile(`\|\|(.+?)\|\|`), wrap(ast.NodeSpoiler)},
		{"codeBlock", regexp.MustCompile("```(?:(\\w+)\\n)?([\\s\\S]+?)```"), buildInlineCodeBlock},
		{"inlineCode", regexp.MustCompile("`([^`]+)`"), buildInlineCode},
		{"underlineBoldItalic", regexp.MustCompile(`__\*\*\*(.+?)\*\*\*__`), wrap(ast.NodeUnderlineBoldItalic)},
		{"underlineBold", regexp.MustCompile(`__\*\*(.+?)\*\*__`), wrap(ast.NodeUnderlineBold)},
		{"underlineItalic", regexp.MustCompile(`__\*(.+?)\*__`), wrap(ast.NodeUnderlineItalic)},
		{"underline", regexp.MustCompile(`__(.+?)__`), wrap(ast.NodeUnderline)},
		{"boldItalic", regexp.MustCompile(`\*\*\*(.+?)\*\*\*`), wrap(ast.NodeBoldItalic)},
		{"bold", regexp.MustCompile(`\*\*(.+?)\*\*`), wrap(ast.NodeBold)},
		{"italic", regexp.MustCompile(`(?:\*|_)(.+?)(?:\*|_)`), wrap(ast.NodeItalic)},
		{"strikethrough", regexp.MustCompile(`~~(.+?)~~`), wrap(ast.NodeStrikethrough)},
		{"link", regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`), buildLink},
		{"autoLink", regexp.MustCompile(`(https?://[^\s]+)`), buildAutoLink},
		{"userMention", regexp.MustCompile(`<@!?(\d+)>`), mention(ast.NodeUserMention)},
		{"channelMention", regexp.MustCompile(`<#(\d+)>`), mention(ast.NodeChannelMention)},
		{"roleMention", regexp.MustCompile(`<@&(\d+)>`), mention(ast.NodeRoleMention)},
		{"customEmoji", regexp.MustCompile(`<(a)?:(\w+):(\d+)>`), buildCustomEmoji},
		{"timestamp", regexp.MustCompile(`<t:(\d+)(?::([tTdDfFR]))?>`), buildTimestamp},
		{"colonToken", regexp.MustCompile(`:(\w+):`), buildLiteral},
	}
}

// wrap 返回包裹型规则的构造函数，分组 1 作为子内容继续解析。
func wrap(typ ast.NodeType) func(t *Tree, match []string, depth int) *ast.Node {
	return func(t *Tree, match []string, depth int) *ast.Node {
		ret := &ast.Node{Type: typ}
		ret.AppendChildren(t.parseInline(match[1], depth+1))
		return ret
	}
}

func buildEscape(t *Tree, match []string, depth int) *ast.Node {
	return newText(match[1])
}

// buildLiteral 原样保留匹配内容，比如 Unicode 表情别名 :smile:。
func buildLiteral(t *Tree, match []string, depth int) *ast.Node {
	return newText(match[0])
}
