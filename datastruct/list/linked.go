package list

import (
	"fmt"
	"strings"

	"linkedList/lib/comparator"
	"linkedList/lib/utils"
)

// Node 单链表节点，值在创建后不可修改
type Node[T any] struct {
	val  T
	next *Node[T]
}

func (n *Node[T]) Value() T {
	return n.val
}

// Next 返回下一个节点，尾节点返回 nil
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

func (n *Node[T]) String() string {
	return fmt.Sprint(n.val)
}

// LinkedList 单链表
// head 为 nil 当且仅当 tail 为 nil，即链表为空
type LinkedList[T any] struct {
	head    *Node[T]
	tail    *Node[T]
	size    int
	compare *comparator.Comparator[T]
}

var _ List[int] = (*LinkedList[int])(nil)

// New 创建链表，可以传入一个比较函数，不传时按数值升序比较
// 每个链表持有自己的 Comparator，互不影响
func New[T any](compare ...comparator.Func[T]) *LinkedList[T] {
	var fn comparator.Func[T]
	if len(compare) > 0 {
		fn = compare[0]
	}
	return &LinkedList[T]{compare: comparator.New(fn)}
}

// Make 使用默认比较函数构造链表并依次追加 vals
func Make[T any](vals ...T) *LinkedList[T] {
	list := New[T]()
	for _, v := range vals {
		list.Append(v)
	}
	return list
}

func (list *LinkedList[T]) Head() *Node[T] {
	return list.head
}

func (list *LinkedList[T]) Tail() *Node[T] {
	return list.tail
}

// Prepend 在表头插入
func (list *LinkedList[T]) Prepend(val T) *LinkedList[T] {
	n := &Node[T]{val: val, next: list.head}
	list.head = n
	if list.tail == nil {
		list.tail = n
	}
	list.size++
	return list
}

// Append 在表尾插入
func (list *LinkedList[T]) Append(val T) *LinkedList[T] {
	n := &Node[T]{val: val}
	if list.tail == nil {
		// empty list
		list.head = n
	} else {
		list.tail.next = n
	}
	list.tail = n
	list.size++
	return list
}

// unlink 移除 n，prev 为 n 的前驱，n 为表头时 prev 为 nil
func (list *LinkedList[T]) unlink(prev, n *Node[T]) {
	if prev == nil {
		list.head = n.next
	} else {
		prev.next = n.next
	}
	if list.tail == n {
		list.tail = prev
	}
	// for gc
	n.next = nil
	list.size--
}

// Delete 删除所有与 val 相等的节点（由比较器判断），返回最后删除的节点
// 没有匹配时返回 nil
func (list *LinkedList[T]) Delete(val T) *Node[T] {
	var deleted *Node[T]
	var prev *Node[T]
	n := list.head
	for n != nil {
		next := n.next
		if list.compare.Equal(n.val, val) {
			list.unlink(prev, n)
			deleted = n
		} else {
			prev = n
		}
		n = next
	}
	return deleted
}

// DeleteHead 删除并返回表头，空链表返回 nil
func (list *LinkedList[T]) DeleteHead() *Node[T] {
	if list.head == nil {
		return nil
	}
	n := list.head
	list.unlink(nil, n)
	return n
}

// DeleteTail 删除并返回表尾，需要从表头找到新的表尾
func (list *LinkedList[T]) DeleteTail() *Node[T] {
	if list.tail == nil {
		return nil
	}
	var prev *Node[T]
	n := list.head
	for n != list.tail {
		prev = n
		n = n.next
	}
	list.unlink(prev, n)
	return n
}

// FindBy 返回第一个满足 expected 的节点
func (list *LinkedList[T]) FindBy(expected Expected[T]) *Node[T] {
	for n := list.head; n != nil; n = n.next {
		if expected(n.val) {
			return n
		}
	}
	return nil
}

// FindMatching 返回第一个在 pattern 列出的所有字段上都严格相等的节点
// 字段按名称或 `list` 标签查找，pattern 为空时匹配表头
func (list *LinkedList[T]) FindMatching(pattern Pattern) *Node[T] {
	return list.FindBy(func(v T) bool {
		return matches(v, pattern)
	})
}

// Clear 释放所有节点
func (list *LinkedList[T]) Clear() {
	for list.head != nil {
		n := list.head
		list.head = n.next
		n.next = nil
	}
	list.tail = nil
	list.size = 0
}

// FromSlice 丢弃原有节点，按顺序用 vals 重建链表
func (list *LinkedList[T]) FromSlice(vals []T) *LinkedList[T] {
	list.Clear()
	for _, v := range vals {
		list.Append(v)
	}
	return list
}

// ToSlice 返回从表头到表尾的节点快照
func (list *LinkedList[T]) ToSlice() []*Node[T] {
	nodes := make([]*Node[T], 0, list.size)
	for n := list.head; n != nil; n = n.next {
		nodes = append(nodes, n)
	}
	return nodes
}

// ValuesOf 取出节点中的值
func ValuesOf[T any](nodes []*Node[T]) []T {
	vals := make([]T, len(nodes))
	for i, n := range nodes {
		vals[i] = n.val
	}
	return vals
}

// Reverse 原地反转所有指针并交换表头表尾
func (list *LinkedList[T]) Reverse() *LinkedList[T] {
	var prev *Node[T]
	n := list.head
	for n != nil {
		next := n.next
		n.next = prev
		prev = n
		n = next
	}
	list.head, list.tail = list.tail, list.head
	return list
}

// Get 返回下标 index 处的值，越界时返回 false
func (list *LinkedList[T]) Get(index int) (val T, ok bool) {
	if index < 0 || index >= list.size {
		return val, false
	}
	n := list.head
	for i := 0; i < index; i++ {
		n = n.next
	}
	return n.val, true
}

func (list *LinkedList[T]) Len() int {
	return list.size
}

func (list *LinkedList[T]) IsEmpty() bool {
	return list.head == nil
}

// ForEach 遍历链表，consumer 返回 false 时停止
func (list *LinkedList[T]) ForEach(consumer Consumer[T]) {
	i := 0
	for n := list.head; n != nil; n = n.next {
		if !consumer(i, n.val) {
			break
		}
		i++
	}
}

// Contains 查看是否存在满足 expected 的值
func (list *LinkedList[T]) Contains(expected Expected[T]) bool {
	return list.FindBy(expected) != nil
}

// Range 返回下标在 [start, stop] 内的值，两端都包含，负数从表尾倒数
func (list *LinkedList[T]) Range(start int64, stop int64) []T {
	from, to := utils.ConvertRange(start, stop, int64(list.size))
	if from < 0 {
		return []T{}
	}
	slice := make([]T, 0, to-from)
	list.ForEach(func(i int, v T) bool {
		if i >= to {
			return false
		}
		if i >= from {
			slice = append(slice, v)
		}
		return true
	})
	return slice
}

// String 以逗号连接每个值的文本形式，空链表返回空串
func (list *LinkedList[T]) String() string {
	var sb strings.Builder
	for n := list.head; n != nil; n = n.next {
		if n != list.head {
			sb.WriteByte(',')
		}
		sb.WriteString(n.String())
	}
	return sb.String()
}
