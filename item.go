package softheap

import "golang.org/x/exp/constraints"

// item is one original element, held in the doubly-linked list owned by
// the node that currently carries it. Its key and value never change after
// insertion; only the node it sits in, and that node's ckey, evolve.
type item[K constraints.Ordered, V any] struct {
	key   K
	value V

	prev, next *item[K, V]
}

// appendItem adds it to the tail of x's item list. Used only at node
// creation, where a fresh node starts life holding exactly one item.
func appendItem[K constraints.Ordered, V any](x *node[K, V], it *item[K, V]) {
	it.prev, it.next = x.last, nil
	if x.last != nil {
		x.last.next = it
	} else {
		x.first = it
	}
	x.last = it
	x.nelems++
}

// moveList transfers src's entire item list to the tail of dst's list and
// leaves src holding no items. Both node's ckeys are left untouched; the
// caller (sift) is responsible for updating dst.ckey.
func moveList[K constraints.Ordered, V any](src, dst *node[K, V]) {
	if src.first == nil {
		return
	}
	if dst.last != nil {
		dst.last.next = src.first
		src.first.prev = dst.last
	} else {
		dst.first = src.first
	}
	dst.last = src.last
	dst.nelems += src.nelems
	src.first, src.last, src.nelems = nil, nil, 0
}

// extractElem removes and returns the head item of x's list.
func extractElem[K constraints.Ordered, V any](x *node[K, V]) (K, V) {
	assertf(x.first != nil, "extractElem called on an empty item list")
	it := x.first
	x.first = it.next
	if x.first != nil {
		x.first.prev = nil
	} else {
		x.last = nil
	}
	x.nelems--
	it.next = nil
	return it.key, it.value
}
