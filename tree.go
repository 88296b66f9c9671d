package softheap

import "golang.org/x/exp/constraints"

// tree wraps one root-list entry. It owns root exclusively; prev, next and
// sufmin are non-owning links within the forest's root list.
type tree[K constraints.Ordered, V any] struct {
	root *node[K, V]
	rank int

	prev, next *tree[K, V]
	sufmin     *tree[K, V]
}

func makeTree[K constraints.Ordered, V any](x *node[K, V]) *tree[K, V] {
	t := &tree[K, V]{root: x, rank: x.rank}
	t.sufmin = t
	return t
}

// insertTree splices inserted immediately before successor in h's root
// list. successor must be non-nil; use appendTree to add a tree after the
// current last entry.
func insertTree[K constraints.Ordered, V any](h *Heap[K, V], inserted, successor *tree[K, V]) {
	inserted.prev = successor.prev
	inserted.next = successor
	if successor.prev != nil {
		successor.prev.next = inserted
	} else {
		h.first = inserted
	}
	successor.prev = inserted
}

// appendTree adds t after tail, the current last tree of h's root list (nil
// if h is empty). Callers that walk the list while appending should thread
// the running tail through rather than recomputing it each time.
func appendTree[K constraints.Ordered, V any](h *Heap[K, V], t, tail *tree[K, V]) {
	t.prev, t.next = tail, nil
	if tail != nil {
		tail.next = t
	} else {
		h.first = t
	}
}

// removeTree unlinks removed from h's root list.
func removeTree[K constraints.Ordered, V any](h *Heap[K, V], removed *tree[K, V]) {
	if removed.prev != nil {
		removed.prev.next = removed.next
	} else {
		h.first = removed.next
	}
	if removed.next != nil {
		removed.next.prev = removed.prev
	}
	removed.prev, removed.next = nil, nil
}

// updateSuffixMin walks backward from t to the head of the root list,
// refreshing each visited tree's sufmin pointer.
func updateSuffixMin[K constraints.Ordered, V any](t *tree[K, V]) {
	for cur := t; cur != nil; cur = cur.prev {
		if cur.next == nil || cur.root.ckey <= cur.next.sufmin.root.ckey {
			cur.sufmin = cur
		} else {
			cur.sufmin = cur.next.sufmin
		}
	}
}
