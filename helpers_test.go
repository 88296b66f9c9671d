package softheap

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

// Test items are tagged with a uuid so that corruption-bound and
// multiset-preservation checks can track a specific inserted element even
// when two elements share the same key, without teaching the library
// itself about identity.
type taggedHeap = Heap[int, uuid.UUID]

func newTaggedHeap(t *testing.T, epsilon float64) *taggedHeap {
	t.Helper()
	h, err := NewEmpty[int, uuid.UUID](epsilon)
	require.NoError(t, err)
	return h
}

// originals maps an inserted item's identity to the key it was inserted
// with, so that tests can ask "is this particular item corrupted" even
// after duplicate keys muddy a plain value comparison.
type originals map[uuid.UUID]int

func insertTracked(h *taggedHeap, orig originals, key int) {
	id := uuid.New()
	orig[id] = key
	h.Insert(key, id)
}

// checkHeapOrder verifies property 1: ckey(parent) <= ckey(child) for every
// parent-child pair in every tree of h.
func checkHeapOrder[K constraints.Ordered, V any](t *testing.T, h *Heap[K, V]) {
	t.Helper()
	for tr := h.first; tr != nil; tr = tr.next {
		checkNodeHeapOrder(t, tr.root)
	}
}

func checkNodeHeapOrder[K constraints.Ordered, V any](t *testing.T, x *node[K, V]) {
	t.Helper()
	if x == nil {
		return
	}
	if x.left != nil {
		require.LessOrEqualf(t, x.ckey, x.left.ckey, "heap order violated between parent and left child")
		checkNodeHeapOrder(t, x.left)
	}
	if x.right != nil {
		require.LessOrEqualf(t, x.ckey, x.right.ckey, "heap order violated between parent and right child")
		checkNodeHeapOrder(t, x.right)
	}
}

// checkRankMonotonic verifies property 3: ranks strictly increase along the
// root list.
func checkRankMonotonic[K constraints.Ordered, V any](t *testing.T, h *Heap[K, V]) {
	t.Helper()
	for tr := h.first; tr != nil && tr.next != nil; tr = tr.next {
		require.Lessf(t, tr.rank, tr.next.rank, "root list ranks not strictly increasing")
		require.Equalf(t, tr.root.rank, tr.rank, "tree.rank disagrees with tree.root.rank")
	}
}

// checkSufmin verifies property 4: every tree's sufmin points at the
// minimum-ckey root among itself and all successors.
func checkSufmin[K constraints.Ordered, V any](t *testing.T, h *Heap[K, V]) {
	t.Helper()
	for tr := h.first; tr != nil; tr = tr.next {
		min := tr
		for u := tr; u != nil; u = u.next {
			if u.root.ckey < min.root.ckey {
				min = u
			}
		}
		require.Samef(t, min, tr.sufmin, "sufmin mismatch at rank %d", tr.rank)
	}
}

// checkCkeyUpperBound verifies property 2: every remaining item's ckey
// dominates (is >= to) the original key it was inserted with.
func checkCkeyUpperBound(t *testing.T, h *taggedHeap, orig originals) {
	t.Helper()
	for tr := h.first; tr != nil; tr = tr.next {
		checkNodeCkeyUpperBound(t, tr.root, orig)
	}
}

func checkNodeCkeyUpperBound(t *testing.T, x *node[int, uuid.UUID], orig originals) {
	t.Helper()
	if x == nil {
		return
	}
	for it := x.first; it != nil; it = it.next {
		require.GreaterOrEqualf(t, x.ckey, orig[it.value], "ckey does not dominate original key")
	}
	checkNodeCkeyUpperBound(t, x.left, orig)
	checkNodeCkeyUpperBound(t, x.right, orig)
}

// countCorrupted counts items still in h whose ckey strictly exceeds their
// original key.
func countCorrupted(h *taggedHeap, orig originals) int {
	n := 0
	for tr := h.first; tr != nil; tr = tr.next {
		n += countCorruptedNode(tr.root, orig)
	}
	return n
}

func countCorruptedNode(x *node[int, uuid.UUID], orig originals) int {
	if x == nil {
		return 0
	}
	n := 0
	for it := x.first; it != nil; it = it.next {
		if x.ckey > orig[it.value] {
			n++
		}
	}
	return n + countCorruptedNode(x.left, orig) + countCorruptedNode(x.right, orig)
}
