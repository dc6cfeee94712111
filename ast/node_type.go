package ast

// NodeType 描述了节点类型。
type NodeType int

// 块级节点。
const (
	NodeDocument        NodeType = iota // 根
	NodeHeading                         // 标题 # ## ###
	NodeSubtext                         // 小字 -#
	NodeBlockquote                      // 块引用 > 或者 >>>
	NodeCodeBlock                       // 代码块 ```
	NodeList                            // 列表森林
	NodeListItem                        // 列表项
	NodeListItemContent                 // 列表项行内内容
	NodeParagraph                       // 段落
	NodeParagraphLine                   // 段落行
	NodeGap                             // 空行间隔
)

// 行级节点。
const (
	NodeText                    NodeType = 100 + iota // 文本
	NodeBold                                          // 粗体 **
	NodeItalic                                        // 斜体 * _
	NodeBoldItalic                                    // 粗斜体 ***
	NodeUnderline                                     // 下划线 __
	NodeUnderlineBold                                 // 下划线粗体 __**
	NodeUnderlineItalic                               // 下划线斜体 __*
	NodeUnderlineBoldItalic                           // 下划线粗斜体 __***
	NodeStrikethrough                                 // 删除线 ~~
	NodeSpoiler                                       // 剧透 ||
	NodeInlineCode                                    // 行内代码 `
	NodeLink                                          // 链接 [text](url)
	NodeAutoLink                                      // 自动链接 https://
	NodeUserMention                                   // 用户提及 <@id>
	NodeChannelMention                                // 频道提及 <#id>
	NodeRoleMention                                   // 角色提及 <@&id>
	NodeCustomEmoji                                   // 自定义表情 <:name:id>
	NodeTimestamp                                     // 时间戳 <t:unix:f>
	NodeLineBreak                                     // 换行
)

var nodeTypeNames = map[NodeType]string{
	NodeDocument:            "NodeDocument",
	NodeHeading:             "NodeHeading",
	NodeSubtext:             "NodeSubtext",
	NodeBlockquote:          "NodeBlockquote",
	NodeCodeBlock:           "NodeCodeBlock",
	NodeList:                "NodeList",
	NodeListItem:            "NodeListItem",
	NodeListItemContent:     "NodeListItemContent",
	NodeParagraph:           "NodeParagraph",
	NodeParagraphLine:       "NodeParagraphLine",
	NodeGap:                 "NodeGap",
	NodeText:                "NodeText",
	NodeBold:                "NodeBold",
	NodeItalic:              "NodeItalic",
	NodeBoldItalic:          "NodeBoldItalic",
	NodeUnderline:           "NodeUnderline",
	NodeUnderlineBold:       "NodeUnderlineBold",
	NodeUnderlineItalic:     "NodeUnderlineItalic",
	NodeUnderlineBoldItalic: "NodeUnderlineBoldItalic",
	NodeStrikethrough:       "NodeStrikethrough",
	NodeSpoiler:             "NodeSpoiler",
	NodeInlineCode:          "NodeInlineCode",
	NodeLink:                "NodeLink",
	NodeAutoLink:            "NodeAutoLink",
	NodeUserMention:         "NodeUserMention",
	NodeChannelMention:      "NodeChannelMention",
	NodeRoleMention:         "NodeRoleMention",
	NodeCustomEmoji:         "NodeCustomEmoji",
	NodeTimestamp:           "NodeTimestamp",
	NodeLineBreak:           "NodeLineBreak",
}

var nodeTypeValues = func() map[string]NodeType {
	ret := make(map[string]NodeType, len(nodeTypeNames))
	for t, name := range nodeTypeNames {
		ret[name] = t
	}
	return ret
}()

func (typ NodeType) String() string {
	if name, ok := nodeTypeNames[typ]; ok {
		return name
	}
	return "NodeUnknown"
}

// Str2NodeType 将节点类型名转换为节点类型，未知名称返回 -1。
func Str2NodeType(nodeTypeStr string) NodeType {
	if typ, ok := nodeTypeValues[nodeTypeStr]; ok {
		return typ
	}
	return -1
}
