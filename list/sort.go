package list

import "cmp"

// Sort sorts l in ascending order. See SortFunc.
func Sort[T cmp.Ordered](l *List[T]) {
	l.SortFunc(cmp.Compare[T])
}

// SortFunc sorts l in ascending order as determined by cmp, using selection
// sort. Values move between nodes; nodes are never relinked, so head, tail
// and iterators keep referring to the same nodes.
//
// The sort is stable.
func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	for pos := l.head; pos != nil; pos = pos.next {
		least := pos
		for n := pos.next; n != nil; n = n.next {
			if cmp(n.value, least.value) < 0 {
				least = n
			}
		}
		rotate(pos, least)
	}
}

// rotate moves the value at to into from, shifting every value in between
// one node forward. to must be reachable from from.
func rotate[T any](from, to *node[T]) {
	for n := from; n != to; n = n.next {
		swap(&n.value, &to.value)
	}
}

func swap[T any](x *T, y *T) {
	old_y := *y
	*y = *x
	*x = old_y
}

// InsertSorted inserts v into the ascending list l, after any values equal
// to v. The result is unspecified when l is not sorted.
func InsertSorted[T cmp.Ordered](l *List[T], v T) {
	l.InsertSortedFunc(v, cmp.Compare[T])
}

// InsertSortedFunc is InsertSorted ordered by cmp.
func (l *List[T]) InsertSortedFunc(v T, cmp func(a, b T) int) {
	if l.head == nil || cmp(l.head.value, v) > 0 {
		l.PushFront(v)
		return
	}
	prev := l.head
	for prev.next != nil && cmp(prev.next.value, v) <= 0 {
		prev = prev.next
	}
	l.InsertAfter(Iterator[T]{n: prev}, v)
}

func IsSorted[T cmp.Ordered](l *List[T]) bool {
	return l.IsSortedFunc(cmp.Compare[T])
}

func (l *List[T]) IsSortedFunc(cmp func(a, b T) int) bool {
	if l.head == nil {
		return true
	}
	for n := l.head; n.next != nil; n = n.next {
		if cmp(n.next.value, n.value) < 0 {
			return false
		}
	}
	return true
}
