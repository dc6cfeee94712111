package render

import (
	"time"

	"github.com/pafthang/dmd/ast"
)

// RelativeTimestampText 是相对时间格式 R 的占位文本，不计算实际经过的时间。
const RelativeTimestampText = "in a moment"

var timestampLayouts = map[byte]string{
	't': "15:04",
	'T': "15:04:05",
	'd': "01/02/2006",
	'D': "January 2, 2006",
	'f': "January 2, 2006 15:04",
	'F': "Monday, January 2, 2006 15:04",
}

// TimestampText 返回时间戳节点 n 在时区 location 下的展示文本。location 为 nil 时使用 UTC。
func TimestampText(n *ast.Node, location *time.Location) string {
	if 'R' == n.TimestampFormat {
		return RelativeTimestampText
	}
	if nil == location {
		location = time.UTC
	}

	layout, ok := timestampLayouts[n.TimestampFormat]
	if !ok {
		layout = timestampLayouts['f']
	}
	return time.Unix(n.TimestampUnix, 0).In(location).Format(layout)
}
