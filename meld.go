package softheap

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Meld unions p and q into a single heap and returns it. Both p and q are
// consumed: neither handle may be used again after the call, only the
// returned one. The other input is zeroed to make accidental reuse
// observable.
func Meld[K constraints.Ordered, V any](p, q *Heap[K, V]) (*Heap[K, V], error) {
	if p == q {
		return p, nil
	}
	if !epsilonCompatible(p.epsilon, q.epsilon) {
		return nil, errors.Wrapf(ErrEpsilonMismatch, "p.epsilon=%g q.epsilon=%g", p.epsilon, q.epsilon)
	}

	l, h := p, q
	if l.rank > h.rank {
		l, h = h, l
	}
	dead := p
	if dead == h {
		dead = q
	}

	mergeInto(l, h)
	if cur := repeatedCombine(h, l.rank, h.r); cur != nil {
		updateSuffixMin(cur)
	}

	*dead = Heap[K, V]{rank: -1}
	return h, nil
}

// mergeInto walks l's root list and splices each of its trees into h's
// root list at the position that keeps h sorted by strictly increasing
// rank. After this, h's list holds the union of both, still sorted,
// possibly with up to three trees sharing a rank at any position.
func mergeInto[K constraints.Ordered, V any](l, h *Heap[K, V]) {
	var tail *tree[K, V]
	for t := h.first; t != nil; t = t.next {
		tail = t
	}

	hc := h.first
	lc := l.first
	for lc != nil {
		next := lc.next
		lc.prev, lc.next = nil, nil

		for hc != nil && hc.rank < lc.rank {
			hc = hc.next
		}
		if hc == nil {
			appendTree(h, lc, tail)
			tail = lc
		} else {
			insertTree(h, lc, hc)
		}
		lc = next
	}
}

// repeatedCombine walks h from the head, combining equal-rank trees until
// no further carry can occur below lRank. It returns the cursor's final
// resting tree (for refreshing sufmin), or nil if h is empty.
func repeatedCombine[K constraints.Ordered, V any](h *Heap[K, V], lRank, r int) *tree[K, V] {
	cur := h.first
	if cur == nil {
		return nil
	}

loop:
	for cur.next != nil {
		two := cur.rank == cur.next.rank
		three := two && cur.next.next != nil && cur.rank == cur.next.next.rank

		switch {
		case !two:
			if cur.rank > lRank {
				break loop
			}
			cur = cur.next
		case !three:
			combined := combine(cur.root, cur.next.root, r)
			cur.root = combined
			cur.rank = combined.rank
			removeTree(h, cur.next)
		default:
			// Three trees of equal rank: combining the first two would
			// produce a carry equal to the third, breaking rank
			// monotonicity. Skip ahead and combine the second and third
			// instead, leaving the first alone.
			cur = cur.next
		}
	}

	if cur.rank > h.rank {
		h.rank = cur.rank
	}
	return cur
}
