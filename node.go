package softheap

import "golang.org/x/exp/constraints"

// node is a heap-ordered binary tree node. Every item in its list shares
// the node's ckey as an upper bound on the item's original key; ckey is
// monotone non-decreasing over the node's lifetime.
type node[K constraints.Ordered, V any] struct {
	ckey K
	rank int
	size int

	nelems      int
	first, last *item[K, V]

	left, right *node[K, V]
}

// makeNode creates a singleton rank-0 node holding one item. Rank-0 nodes
// always have size 1.
func makeNode[K constraints.Ordered, V any](key K, value V) *node[K, V] {
	x := &node[K, V]{ckey: key, size: 1}
	appendItem(x, &item[K, V]{key: key, value: value})
	return x
}

func (x *node[K, V]) leaf() bool {
	return x.left == nil && x.right == nil
}

// sift repairs a size-deficient non-leaf node by repeatedly pulling items
// from the child of smaller ckey. It terminates when x is no longer
// deficient or has no children left to pull from.
func sift[K constraints.Ordered, V any](x *node[K, V]) {
	for x.nelems < x.size && !x.leaf() {
		if x.left == nil || (x.right != nil && x.right.ckey < x.left.ckey) {
			x.left, x.right = x.right, x.left
		}
		moveList(x.left, x)
		x.ckey = x.left.ckey
		if x.left.leaf() {
			x.left = nil
		} else {
			sift(x.left)
		}
	}
}
