// Package refreg tracks how many external holders reference each dynstr
// instance. The registry is a singly linked list of counter nodes in
// insertion order; nodes hold non-owning back-references and the registry
// never mutates or frees the strings it tracks.
//
// Registration is append-only: registering the same target twice yields two
// nodes, not one node with a higher count. Every checkout is a separate
// record; deduplication is deliberately not performed.
//
// A single list-wide mutex guards the head pointer, the links, and the
// counters. Concurrent Register/Deregister calls on the same list are safe.
package refreg

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rawbytedev/dynstr"
)

var (
	ErrNilTarget     = errors.New("nil target")
	ErrNotRegistered = errors.New("target not registered")
)

// Node is one bookkeeping record: a weak back-reference to the tracked
// instance, the instance's stable handle, and an occurrence counter.
type Node struct {
	target *dynstr.Str
	handle uuid.UUID
	count  uint64
	next   *Node
}

// Target returns the tracked instance.
func (n *Node) Target() *dynstr.Str { return n.target }

// Count returns the node's occurrence counter.
func (n *Node) Count() uint64 { return n.count }

// List is a reference registry. The zero value is empty and ready to use;
// New is provided for symmetry with the rest of the API.
type List struct {
	mu   sync.Mutex
	head *Node
	size int
}

func New() *List {
	return &List{}
}

// Register appends a new counter node for target at the tail of the list.
// An existing node for the same target is NOT reused; callers that register
// twice get two nodes and must deregister twice.
func (l *List) Register(target *dynstr.Str) error {
	if target == nil {
		return ErrNilTarget
	}
	node := &Node{target: target, handle: target.Handle(), count: 1}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.head == nil {
		l.head = node
	} else {
		tail := l.head
		for tail.next != nil {
			tail = tail.next
		}
		tail.next = node
	}
	l.size++
	return nil
}

// Deregister unlinks and drops the first node whose target matches by
// identity, scanning from the head. The tracked instance itself is left
// untouched. Returns ErrNotRegistered when the list is empty or no node
// matches.
func (l *List) Deregister(target *dynstr.Str) error {
	if target == nil {
		return ErrNilTarget
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.head == nil {
		return ErrNotRegistered
	}
	if l.head.target == target {
		l.head = l.head.next
		l.size--
		return nil
	}
	prev := l.head
	for cur := l.head.next; cur != nil; cur = cur.next {
		if cur.target == target {
			prev.next = cur.next
			l.size--
			return nil
		}
		prev = cur
	}
	return ErrNotRegistered
}

// Refs returns the number of nodes currently tracking target.
func (l *List) Refs(target *dynstr.Str) int {
	if target == nil {
		return 0
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.target == target {
			n++
		}
	}
	return n
}

// Len returns the number of nodes in the list.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.size
}

// Counts returns a snapshot of total occurrence counts keyed by each
// target's stable handle, in no particular order.
func (l *List) Counts() map[uuid.UUID]uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[uuid.UUID]uint64, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out[cur.handle] += cur.count
	}
	return out
}

// Each calls fn for every node in insertion order. fn must not call back
// into the list.
func (l *List) Each(fn func(n *Node)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for cur := l.head; cur != nil; cur = cur.next {
		fn(cur)
	}
}
