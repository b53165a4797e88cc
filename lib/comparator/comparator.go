package comparator

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Func 三路比较函数
// a < b 返回 -1，a == b 返回 0，a > b 返回 1
type Func[T any] func(a, b T) int

// Ordered 有序类型的升序比较
func Ordered[T constraints.Ordered](a, b T) int {
	if a == b {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// Default 未指定比较函数时使用的默认数值升序比较
// 只支持底层类型为整数、浮点数或字符串的类型，其他类型直接 panic
func Default[T any](a, b T) int {
	va := reflect.ValueOf(a)
	vb := reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		panic(fmt.Sprintf("comparator: no default ordering for %T", a))
	}
	switch va.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Ordered(va.Int(), vb.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Ordered(va.Uint(), vb.Uint())
	case reflect.Float32, reflect.Float64:
		return Ordered(va.Float(), vb.Float())
	case reflect.String:
		return Ordered(va.String(), vb.String())
	}
	panic(fmt.Sprintf("comparator: no default ordering for %T", a))
}

// Comparator 包装一个三路比较函数，并派生出各种比较谓词
// 同一个 Comparator 可以被多处共享，但 Reverse 会影响所有持有者
type Comparator[T any] struct {
	compare  Func[T]
	reversed bool
}

// New 创建比较器，fn 为 nil 时使用 Default
func New[T any](fn Func[T]) *Comparator[T] {
	if fn == nil {
		fn = Default[T]
	}
	return &Comparator[T]{compare: fn}
}

// Compare 返回 a 与 b 的三路比较结果，已考虑反转状态
func (c *Comparator[T]) Compare(a, b T) int {
	if c.reversed {
		return c.compare(b, a)
	}
	return c.compare(a, b)
}

// Equal 判断 a 和 b 是否相等
func (c *Comparator[T]) Equal(a, b T) bool {
	return c.Compare(a, b) == 0
}

// LessThan 判断 a 是否小于 b
func (c *Comparator[T]) LessThan(a, b T) bool {
	return c.Compare(a, b) < 0
}

// GreaterThan 判断 a 是否大于 b
func (c *Comparator[T]) GreaterThan(a, b T) bool {
	return c.Compare(a, b) > 0
}

func (c *Comparator[T]) LessThanOrEqual(a, b T) bool {
	return c.LessThan(a, b) || c.Equal(a, b)
}

func (c *Comparator[T]) GreaterThanOrEqual(a, b T) bool {
	return c.GreaterThan(a, b) || c.Equal(a, b)
}

// Reverse 反转比较顺序，之后的比较都等价于 compare(b, a)
// 调用两次恢复原顺序
func (c *Comparator[T]) Reverse() {
	c.reversed = !c.reversed
}
