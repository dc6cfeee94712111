//go:build javascript
// +build javascript

package util

import "github.com/pkg/errors"

// RecoverPanic 恢复 panic 并将其转换为 err，浏览器中不输出调用栈。
func RecoverPanic(err *error) {
	if e := recover(); nil != e {
		if nil != err {
			*err = errors.Errorf("panic recovered: %v", e)
		}
	}
}
