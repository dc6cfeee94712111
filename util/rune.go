package util

import "unicode/utf8"

// TabWidth 是计算缩进宽度时一个制表符占用的列数。
const TabWidth = 4

// IndentWidth 返回 line 行首空白（空格和制表符）的列宽以及空白所占的字节数。
func IndentWidth(line string) (width, size int) {
	for ; size < len(line); size++ {
		switch line[size] {
		case ' ':
			width++
		case '\t':
			width += TabWidth - width%TabWidth
		default:
			return
		}
	}
	return
}

// RuneCount 返回 str 的字符数。
func RuneCount(str string) int {
	return utf8.RuneCountInString(str)
}
