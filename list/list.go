// Package list implements a generic singly-linked list.
//
// A List owns a chain of nodes from head to tail. Only head owns the chain;
// tail is an alias of the last node kept so that PushBack is O(1). The zero
// List is an empty list ready to use.
//
// A List is not safe for concurrent use.
package list

import "github.com/goose-lang/std"

type node[T any] struct {
	value T
	next  *node[T]
}

type List[T any] struct {
	head *node[T]
	tail *node[T]
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// NewSized returns a list of n zero values.
func NewSized[T any](n int) (*List[T], error) {
	if n < 0 {
		return nil, ErrInvalidArgument
	}
	l := New[T]()
	var zero T
	for range n {
		l.PushBack(zero)
	}
	return l, nil
}

func (l *List[T]) Empty() bool {
	return l.head == nil
}

// Size counts the nodes; it is O(n).
func (l *List[T]) Size() int {
	n := 0
	for cur := l.head; cur != nil; cur = cur.next {
		n++
	}
	return n
}

func (l *List[T]) PushFront(v T) {
	l.head = &node[T]{value: v, next: l.head}
	if l.tail == nil {
		l.tail = l.head
	}
}

func (l *List[T]) PushBack(v T) {
	n := &node[T]{value: v}
	if l.tail == nil {
		l.head = n
		l.tail = n
		return
	}
	l.tail.next = n
	l.tail = n
}

func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	n.next = nil
	return n.value, nil
}

// PopBack removes the last element. There is no back pointer, so it walks
// the chain to find the new tail.
func (l *List[T]) PopBack() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	if l.head == l.tail {
		v := l.head.value
		l.head, l.tail = nil, nil
		return v, nil
	}
	prev := l.head
	for prev.next != l.tail {
		// tail must be reachable from head
		std.Assert(prev.next != nil)
		prev = prev.next
	}
	v := l.tail.value
	prev.next = nil
	l.tail = prev
	return v, nil
}

// Front returns a pointer to the first value, which may be assigned through.
func (l *List[T]) Front() (*T, error) {
	if l.head == nil {
		return nil, ErrEmptyContainer
	}
	return &l.head.value, nil
}

// Back returns a pointer to the last value, which may be assigned through.
func (l *List[T]) Back() (*T, error) {
	if l.tail == nil {
		return nil, ErrEmptyContainer
	}
	return &l.tail.value, nil
}

// InsertFront is PushFront.
func (l *List[T]) InsertFront(v T) {
	l.PushFront(v)
}

// EraseFront removes the first element. Unlike PopFront it does nothing on
// an empty list.
func (l *List[T]) EraseFront() {
	if l.head == nil {
		return
	}
	_, _ = l.PopFront()
}

func (l *List[T]) Clear() {
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.next = nil
	}
	l.tail = nil
}
