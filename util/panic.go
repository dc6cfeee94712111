//go:build !javascript
// +build !javascript

package util

import (
	"runtime/debug"

	"github.com/pkg/errors"
)

// RecoverPanic 恢复 panic 并将其转换为 err，err 为 nil 时仅恢复。
func RecoverPanic(err *error) {
	if e := recover(); nil != e {
		stack := debug.Stack()
		if nil != err {
			*err = errors.Errorf("panic recovered: %s\n\t%s", panicMsg(e), stack)
		}
	}
}

func panicMsg(e interface{}) string {
	switch x := e.(type) {
	case error:
		return x.Error()
	case string:
		return x
	default:
		return "unknown panic"
	}
}
