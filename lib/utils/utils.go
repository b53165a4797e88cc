package utils

import (
	"bytes"
	"reflect"
)

// Equals 严格相等：动态类型相同且 == 成立
// []byte 按内容比较，不可比较的值（切片、map、函数等）一律视为不相等
func Equals(a interface{}, b interface{}) bool {
	sliceA, okA := a.([]byte)
	sliceB, okB := b.([]byte)
	if okA && okB {
		return BytesEquals(sliceA, sliceB)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	// 结构体里可能嵌着装了切片的 interface 字段，需要按值判断
	if !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

// BytesEquals 检查两个字节切片是否相等，nil 与空切片不相等
func BytesEquals(a []byte, b []byte) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return bytes.Equal(a, b)
}

// ConvertRange 把两端都包含、支持负数下标的区间转换成 Go 切片的 [start, end)
// -1 => size-1
// [0, 10] => [0, 11)
// 越界的起点或整体为空返回 -1, -1
func ConvertRange(start int64, end int64, size int64) (int, int) {
	if start < -size {
		return -1, -1
	} else if start < 0 {
		start = size + start
	} else if start >= size {
		return -1, -1
	}
	if end < -size {
		return -1, -1
	} else if end < 0 {
		end = size + end + 1
	} else if end < size {
		end = end + 1
	} else {
		end = size
	}
	if start >= end {
		return -1, -1
	}
	return int(start), int(end)
}
