//go:build !javascript
// +build !javascript

package util

import "unsafe"

// BytesToStr 快速转换 []byte 为 string，返回值与 bytes 共享内存，调用方不能再修改 bytes。
func BytesToStr(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

// StrToBytes 快速转换 string 为 []byte，返回值与 str 共享只读内存，不能写入。
// 返回切片的容量等于长度，append 时总会重新分配。
func StrToBytes(str string) []byte {
	x := (*[2]uintptr)(unsafe.Pointer(&str))
	h := [3]uintptr{x[0], x[1], x[1]}
	return *(*[]byte)(unsafe.Pointer(&h))
}
