package softheap

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Heap is a soft heap: an approximate min-priority queue over keys of type
// K carrying payloads of type V. See the package doc for the error-rate
// guarantee. The zero value is not usable; construct with NewEmpty or New.
type Heap[K constraints.Ordered, V any] struct {
	first *tree[K, V]
	rank  int // rank of the last tree in the root list, or -1 if empty

	epsilon float64
	r       int // error rank: max(5, ceil(log2(1/epsilon))+5)
}

// errorRank computes r = max(5, ceil(log2(1/epsilon))+5): the rank below
// which nodes are guaranteed not to have grown past a single item. r must
// grow as epsilon shrinks and must never fall below 5.
func errorRank(epsilon float64) int {
	r := int(math.Ceil(math.Log2(1/epsilon))) + 5
	if r < 5 {
		r = 5
	}
	return r
}

// NewEmpty creates an empty soft heap with the given error rate. epsilon
// must satisfy 0 < epsilon < 1.
func NewEmpty[K constraints.Ordered, V any](epsilon float64) (*Heap[K, V], error) {
	if err := validateEpsilon(epsilon); err != nil {
		return nil, err
	}
	return &Heap[K, V]{rank: -1, epsilon: epsilon, r: errorRank(epsilon)}, nil
}

// New creates a soft heap containing a single element (key, value).
func New[K constraints.Ordered, V any](key K, value V, epsilon float64) (*Heap[K, V], error) {
	h, err := NewEmpty[K, V](epsilon)
	if err != nil {
		return nil, err
	}
	h.Insert(key, value)
	return h, nil
}

// Empty reports whether h holds no elements.
func (h *Heap[K, V]) Empty() bool {
	return h.first == nil
}

// Insert adds (key, value) to h. Semantically this is Meld(h,
// singleton(key, value, h.epsilon)); an empty heap is special-cased to
// avoid allocating a throwaway heap.
func (h *Heap[K, V]) Insert(key K, value V) {
	if h.first == nil {
		h.first = makeTree(makeNode[K, V](key, value))
		h.rank = 0
		return
	}

	singleton := &Heap[K, V]{
		first:   makeTree(makeNode[K, V](key, value)),
		rank:    0,
		epsilon: h.epsilon,
		r:       h.r,
	}
	merged, err := Meld(h, singleton)
	if err != nil {
		// Both heaps share h.epsilon by construction; a mismatch here
		// would mean epsilonCompatible rejected a value against itself.
		panic(errors.Wrap(err, "softheap: insert"))
	}
	*h = *merged
}

// ExtractMin removes and returns the element of minimum ckey in h.
func (h *Heap[K, V]) ExtractMin() (K, V, error) {
	key, value, _, err := h.extractMin()
	return key, value, err
}

// ExtractMinWithCkey removes and returns the element of minimum ckey in h,
// along with the ckey it was traveling under (an upper bound on its
// original key; equal to it unless the element is corrupted).
func (h *Heap[K, V]) ExtractMinWithCkey() (key K, value V, ckey K, err error) {
	return h.extractMin()
}

// extractMin removes the minimum-ckey element, then repairs whichever tree
// it came from: a deficient non-leaf is sifted, while a leaf left with no
// items is pruned from the root list.
func (h *Heap[K, V]) extractMin() (key K, value V, ckey K, err error) {
	if h.first == nil {
		err = errors.Wrap(ErrEmptyHeap, "extract_min")
		return
	}

	t := h.first.sufmin
	x := t.root
	key, value = extractElem(x)
	ckey = x.ckey

	if x.nelems <= x.size/2 {
		if !x.leaf() {
			sift(x)
			updateSuffixMin(t)
		} else if x.nelems == 0 {
			prevT, nextT := t.prev, t.next
			removeTree(h, t)
			if nextT == nil {
				if prevT == nil {
					h.rank = -1
				} else {
					h.rank = prevT.rank
				}
			}
			if prevT != nil {
				updateSuffixMin(prevT)
			}
		}
	}
	return
}

// Destroy releases h's forest. In a garbage-collected runtime this is not
// required for correctness, but it walks and unlinks every owned node and
// tree post-order so that a destroyed heap's shape cannot be mistaken for a
// live one and cycles, if any crept in through a bug, are broken rather
// than pinned in memory.
func (h *Heap[K, V]) Destroy() {
	for t := h.first; t != nil; {
		next := t.next
		destroyNode(t.root)
		t.root, t.prev, t.next, t.sufmin = nil, nil, nil, nil
		t = next
	}
	*h = Heap[K, V]{rank: -1}
}

func destroyNode[K constraints.Ordered, V any](x *node[K, V]) {
	if x == nil {
		return
	}
	destroyNode(x.left)
	destroyNode(x.right)
	x.left, x.right = nil, nil
	x.first, x.last = nil, nil
}
