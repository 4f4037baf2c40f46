package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// checkInvariants verifies that head and tail agree and that tail is the
// node reached after Size() steps.
func checkInvariants[T any](t *testing.T, l *List[T]) {
	t.Helper()
	if l.head == nil || l.tail == nil {
		assert.Nil(t, l.head, "head set without tail")
		assert.Nil(t, l.tail, "tail set without head")
		return
	}
	size := l.Size()
	n := l.head
	for range size - 1 {
		n = n.next
	}
	assert.Same(t, l.tail, n, "tail is not the last node")
	assert.Nil(t, l.tail.next, "tail has a successor")
}

func TestInvariantsAfterMutations(t *testing.T) {
	l := New[int]()
	checkInvariants(t, l)

	l.PushBack(1)
	checkInvariants(t, l)
	l.PushFront(0)
	l.PushBack(2)
	checkInvariants(t, l)

	_, _ = l.PopBack()
	checkInvariants(t, l)
	_, _ = l.PopFront()
	checkInvariants(t, l)
	_, _ = l.PopFront()
	checkInvariants(t, l)
	assert.Nil(t, l.head)
}

func TestInsertAfterUpdatesTail(t *testing.T) {
	assert := assert.New(t)

	l := New[int]()
	l.PushBack(1)
	l.InsertAfter(l.Begin(), 2)
	assert.Equal(2, l.tail.value)
	checkInvariants(t, l)

	l.InsertAfter(l.End(), 3)
	assert.Equal(3, l.tail.value)
	checkInvariants(t, l)
}

func TestEraseAfterUpdatesTail(t *testing.T) {
	assert := assert.New(t)

	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.EraseAfter(l.Begin())
	assert.Same(l.head, l.tail)
	checkInvariants(t, l)

	// a push after erasing the tail must not resurrect the removed node
	l.PushBack(3)
	assert.Equal([]int{1, 3}, l.Slice())
	checkInvariants(t, l)
}

func TestSortKeepsNodes(t *testing.T) {
	assert := assert.New(t)

	l := New[int]()
	for _, v := range []int{3, 1, 2} {
		l.PushBack(v)
	}
	head, tail := l.head, l.tail
	Sort(l)
	assert.Same(head, l.head)
	assert.Same(tail, l.tail)
	assert.Equal([]int{1, 2, 3}, l.Slice())
}

func TestRotate(t *testing.T) {
	assert := assert.New(t)

	l := New[string]()
	for _, v := range []string{"a", "b", "c", "d"} {
		l.PushBack(v)
	}
	rotate(l.head, l.tail)
	assert.Equal([]string{"d", "a", "b", "c"}, l.Slice())

	rotate(l.head, l.head)
	assert.Equal([]string{"d", "a", "b", "c"}, l.Slice())
}

func TestSwap(t *testing.T) {
	x, y := 1, 2
	swap(&x, &y)
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
}

func TestMoveFromSelfReleasesChain(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)
	first := l.head
	l.MoveFrom(l)
	assert.Nil(t, l.head)
	assert.Nil(t, l.tail)
	assert.Nil(t, first.next, "cleared nodes keep no links")
}

func TestDeleteKeepsTail(t *testing.T) {
	l := New[int]()
	for _, v := range []int{1, 2, 1, 3, 1} {
		l.PushBack(v)
	}
	assert.Equal(t, 3, Delete(l, 1))
	checkInvariants(t, l)
	assert.Equal(t, 3, l.tail.value)
}
