package list

import "iter"

// Iterator is a forward cursor on a node of a List. It does not own the
// node: after the node is removed, reading through the iterator is
// undefined.
//
// Iterators are comparable; two iterators are equal when they point to the
// same node or are both at the end.
type Iterator[T any] struct {
	n *node[T]
}

// Begin returns an iterator at the first node, or End() for an empty list.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head}
}

func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// Value returns a pointer to the value at the iterator.
func (it Iterator[T]) Value() (*T, error) {
	if it.n == nil {
		return nil, ErrOutOfRange
	}
	return &it.n.value, nil
}

// Next advances the iterator. It is a no-op at the end.
func (it *Iterator[T]) Next() {
	if it.n != nil {
		it.n = it.n.next
	}
}

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.n == other.n
}

func (it Iterator[T]) AtEnd() bool {
	return it.n == nil
}

// InsertAfter inserts v after the node at it. At the end iterator v is
// appended instead.
func (l *List[T]) InsertAfter(it Iterator[T], v T) {
	if it.n == nil {
		l.PushBack(v)
		return
	}
	n := &node[T]{value: v, next: it.n.next}
	it.n.next = n
	if n.next == nil {
		l.tail = n
	}
}

// EraseAfter removes the node following it. It does nothing at the end
// iterator or when it is at the last node.
//
// Other iterators pointing at the removed node are not updated.
func (l *List[T]) EraseAfter(it Iterator[T]) {
	if it.n == nil || it.n.next == nil {
		return
	}
	removed := it.n.next
	it.n.next = removed.next
	if removed == l.tail {
		l.tail = it.n
	}
	removed.next = nil
}

// All iterates over the values from front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Slice returns the values in order.
func (l *List[T]) Slice() []T {
	s := []T{}
	for v := range l.All() {
		s = append(s, v)
	}
	return s
}
