package list

import "iter"

// Iterator 单向迭代器，只能走一遍
// 遍历期间修改链表的行为未定义
type Iterator[T any] struct {
	node *Node[T]
}

// Iterator 返回一个从表头开始的新迭代器
func (list *LinkedList[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{node: list.head}
}

// Next 返回当前节点并前进一位，走到链表末尾后返回 nil, false
// 只看链表结构，不看节点的值，零值节点照常返回
func (it *Iterator[T]) Next() (*Node[T], bool) {
	if it.node == nil {
		return nil, false
	}
	n := it.node
	it.node = n.next
	return n, true
}

// All 从表头到表尾依次产出节点，可用于 for range
func (list *LinkedList[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		it := list.Iterator()
		for n, ok := it.Next(); ok; n, ok = it.Next() {
			if !yield(n) {
				return
			}
		}
	}
}

// Values 从表头到表尾依次产出值
func (list *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range list.All() {
			if !yield(n.val) {
				return
			}
		}
	}
}
