package parse

import (
	"strconv"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/pafthang/dmd/ast"
)

// DefaultTimestampFormat 是时间戳未指定格式时使用的格式，即短日期时间。
const DefaultTimestampFormat = 'f'

// mention 返回提及的构造函数。提及不解析 ID 对应的对象，展示时使用固定的占位文本，ID 原样保存仅用于格式化输出。
func mention(typ ast.NodeType) func(t *Tree, match []string, depth int) *ast.Node {
	return func(t *Tree, match []string, depth int) *ast.Node {
		return &ast.Node{Type: typ, Tokens: []byte(match[1])}
	}
}

// buildCustomEmoji 构造自定义表情 <:name:id> 或者动态表情 <a:name:id>。ID 超出雪花 ID 范围或者为 0、空雪花 ID 时按字面文本输出。
func buildCustomEmoji(t *Tree, match []string, depth int) *ast.Node {
	id, err := discord.ParseSnowflake(match[3])
	if nil != err || !id.IsValid() {
		return newText(match[0])
	}
	return &ast.Node{
		Type:          ast.NodeCustomEmoji,
		Tokens:        []byte(match[2]),
		EmojiID:       discord.EmojiID(id),
		EmojiAnimated: "a" == match[1],
	}
}

// buildTimestamp 构造时间戳 <t:unix> 或者 <t:unix:format>。秒数超出 int64 范围时按字面文本输出。
func buildTimestamp(t *Tree, match []string, depth int) *ast.Node {
	unix, err := strconv.ParseInt(match[1], 10, 64)
	if nil != err {
		return newText(match[0])
	}

	format := byte(DefaultTimestampFormat)
	if "" != match[2] {
		format = match[2][0]
	}
	return &ast.Node{Type: ast.NodeTimestamp, TimestampUnix: unix, TimestampFormat: format}
}
