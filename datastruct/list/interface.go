package list

import "iter"

// Expected 检查给定项是否符合期望
type Expected[T any] func(a T) bool

// Consumer 遍历链表，返回 false 时停止遍历
type Consumer[T any] func(i int, v T) bool

// Pattern 按字段名匹配值的部分模式，只比较列出的字段
type Pattern map[string]any

type List[T any] interface {
	Head() *Node[T]
	Tail() *Node[T]
	Prepend(val T) *LinkedList[T]
	Append(val T) *LinkedList[T]
	Delete(val T) *Node[T]
	DeleteHead() *Node[T]
	DeleteTail() *Node[T]
	FindBy(expected Expected[T]) *Node[T]
	FindMatching(pattern Pattern) *Node[T]
	FromSlice(vals []T) *LinkedList[T]
	ToSlice() []*Node[T]
	Reverse() *LinkedList[T]
	Iterator() *Iterator[T]
	All() iter.Seq[*Node[T]]
	Values() iter.Seq[T]
	Get(index int) (T, bool)
	Len() int
	IsEmpty() bool
	Clear()
	ForEach(consumer Consumer[T])
	Contains(expected Expected[T]) bool
	Range(start int64, stop int64) []T
	String() string
}
