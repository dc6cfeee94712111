package parse

import (
	"regexp"

	"github.com/pafthang/dmd/ast"
)

var (
	headingRegexp = regexp.MustCompile(`^(#{1,3}) (.+)$`)
	subtextRegexp = regexp.MustCompile(`^-# (.+)$`)
)

// HeadingStart 判断标题（#、##、###）是否开始，# 后面的空格是必须的。
func HeadingStart(context *Context) bool {
	match := headingRegexp.FindStringSubmatch(context.currentLine)
	if nil == match {
		return false
	}

	heading := &ast.Node{Type: ast.NodeHeading, HeadingLevel: len(match[1])}
	heading.AppendChildren(context.Tree.parseInline(match[2], context.depth))
	context.addBlock(heading)
	return true
}

// SubtextStart 判断小字（-# ）是否开始。
func SubtextStart(context *Context) bool {
	match := subtextRegexp.FindStringSubmatch(context.currentLine)
	if nil == match {
		return false
	}

	subtext := &ast.Node{Type: ast.NodeSubtext}
	subtext.AppendChildren(context.Tree.parseInline(match[1], context.depth))
	context.addBlock(subtext)
	return true
}
