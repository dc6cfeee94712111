package render

import (
	"encoding/json"

	"github.com/alecthomas/chroma"
	"github.com/pafthang/dmd/ast"
	"github.com/pafthang/dmd/parse"
)

// JSONNode 描述了 JSON 渲染输出的节点结构，字段按节点类型取舍，零值不输出。
type JSONNode struct {
	ID       string      `json:"id"`
	Type     string      `json:"type"`
	Text     string      `json:"text,omitempty"`
	Level    int         `json:"level,omitempty"`
	Language string      `json:"language,omitempty"`
	Tokens   []JSONToken `json:"tokens,omitempty"`
	URL      string      `json:"url,omitempty"`
	Hard     bool        `json:"hardBreak,omitempty"`
	EmojiID  string      `json:"emojiId,omitempty"`
	Animated bool        `json:"animated,omitempty"`
	Unix     *int64      `json:"unix,omitempty"`
	Format   string      `json:"format,omitempty"`
	Display  string      `json:"display,omitempty"`
	Children []*JSONNode `json:"children,omitempty"`
}

// JSONToken 描述了代码块语法高亮结果中的一个 Token。
type JSONToken struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// JSONRenderer 描述了 JSON 渲染器。
type JSONRenderer struct {
	*BaseRenderer
}

// NewJSONRenderer 创建一个 JSON 渲染器。
func NewJSONRenderer(tree *parse.Tree, options *Options) *JSONRenderer {
	return &JSONRenderer{NewBaseRenderer(tree, options)}
}

// Render 渲染 JSON。
func (r *JSONRenderer) Render() (output []byte) {
	output, err := json.Marshal(NewJSONNode(r.Tree.Root, r.Options))
	if nil != err {
		// JSONNode 只包含可序列化的字段
		panic(err)
	}
	return
}

// NewJSONNode 将节点 n 及其后代转换为 JSONNode。
func NewJSONNode(n *ast.Node, options *Options) (ret *JSONNode) {
	if nil == options {
		options = NewOptions()
	}

	ret = &JSONNode{ID: n.ID, Type: n.Type.String()}
	switch n.Type {
	case ast.NodeText, ast.NodeInlineCode, ast.NodeLink, ast.NodeAutoLink:
		ret.Text = n.TokensStr()
		ret.URL = string(n.LinkDest)
	case ast.NodeHeading:
		ret.Level = n.HeadingLevel
	case ast.NodeCodeBlock:
		ret.Text = n.TokensStr()
		ret.Language = string(n.CodeBlockInfo)
		ret.Tokens = jsonTokens(n.CodeTokens)
	case ast.NodeParagraphLine:
		ret.Hard = n.HardBreak
	case ast.NodeUserMention, ast.NodeChannelMention, ast.NodeRoleMention:
		ret.Display = mentionTexts[n.Type]
	case ast.NodeCustomEmoji:
		ret.Text = n.TokensStr()
		ret.EmojiID = n.EmojiID.String()
		ret.Animated = n.EmojiAnimated
		ret.Display = ":" + n.TokensStr() + ":"
	case ast.NodeTimestamp:
		unix := n.TimestampUnix
		ret.Unix = &unix
		ret.Format = string(n.TimestampFormat)
		ret.Display = TimestampText(n, options.TimestampLocation)
	}

	for c := n.FirstChild; nil != c; c = c.Next {
		ret.Children = append(ret.Children, NewJSONNode(c, options))
	}
	return
}

func jsonTokens(tokens []chroma.Token) (ret []JSONToken) {
	for _, token := range tokens {
		ret = append(ret, JSONToken{Type: token.Type.String(), Value: token.Value})
	}
	return
}
