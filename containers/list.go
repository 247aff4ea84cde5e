package containers

import (
	"unsafe"

	"github.com/clapdb/arena"
)

// listNode is an intrusive doubly linked list node, allocated from the
// list's AllocationResource rather than the Go heap — the arena-backed
// equivalent of container/list.Element.
type listNode[T any] struct {
	next, prev *listNode[T]
	value      T
}

// List is a doubly linked list whose nodes are allocated from an
// arena.AllocationResource, in the style of the standard library's
// container/list but sourcing storage from the arena instead of new.
type List[T any] struct {
	res    arena.AllocationResource
	root   listNode[T] // sentinel; root.next is the head, root.prev is the tail
	length int
}

// NewList creates an empty List backed by res.
func NewList[T any](res arena.AllocationResource) *List[T] {
	l := &List[T]{res: res}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.length }

// PushBack allocates a new node for value from the arena and appends it.
func (l *List[T]) PushBack(value T) {
	n := l.allocNode()
	n.value = value
	last := l.root.prev
	n.prev = last
	n.next = &l.root
	last.next = n
	l.root.prev = n
	l.length++
}

// PushFront allocates a new node for value from the arena and prepends it.
func (l *List[T]) PushFront(value T) {
	n := l.allocNode()
	n.value = value
	first := l.root.next
	n.next = first
	n.prev = &l.root
	first.prev = n
	l.root.next = n
	l.length++
}

// Each calls fn with every element's value, front to back.
func (l *List[T]) Each(fn func(T)) {
	for n := l.root.next; n != &l.root; n = n.next {
		fn(n.value)
	}
}

// allocNode reserves a single zero-valued node from the arena resource.
// Nodes are never individually freed; the list relies entirely on the
// arena's bulk reclamation.
func (l *List[T]) allocNode() *listNode[T] {
	var zero listNode[T]
	size := int(unsafe.Sizeof(zero))
	align := unsafe.Alignof(zero)
	p := l.res.Allocate(size, align)
	clear(unsafe.Slice((*byte)(p), size))
	return (*listNode[T])(p)
}
