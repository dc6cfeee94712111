package ast

// WalkStatus 描述了遍历状态。
type WalkStatus int

const (
	// WalkStop 意味着不需要继续遍历。
	WalkStop WalkStatus = iota
	// WalkSkipChildren 意味着不要遍历子节点。
	WalkSkipChildren
	// WalkContinue 意味着继续遍历。
	WalkContinue
)

// Walker 函数定义了遍历节点时需要执行的函数，entering 为 true 表示进入节点，为 false 表示离开节点。
type Walker func(n *Node, entering bool) WalkStatus

// Walk 使用深度优先算法遍历指定的树节点 n。
func Walk(n *Node, walker Walker) {
	walk(n, walker)
}

func walk(n *Node, walker Walker) WalkStatus {
	status := walker(n, true)
	if WalkStop == status {
		return WalkStop
	}

	if WalkSkipChildren != status {
		for c := n.FirstChild; nil != c; {
			next := c.Next
			if WalkStop == walk(c, walker) {
				return WalkStop
			}
			c = next
		}
	}
	return walker(n, false)
}
