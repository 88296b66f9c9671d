package softheap

import "golang.org/x/exp/constraints"

// combine merges two equal-rank nodes x and y into a freshly allocated
// parent of rank x.rank+1. r is the heap's error rank: sizes stay pinned at
// 1 through rank r, then grow by a 3/2 factor so that only nodes above rank
// r can ever carry more than one item's worth of corruption risk.
func combine[K constraints.Ordered, V any](x, y *node[K, V], r int) *node[K, V] {
	assertf(x.rank == y.rank, "combine requires equal rank nodes, got %d and %d", x.rank, y.rank)
	assertf(x.size == y.size, "combine requires equal size siblings, got %d and %d", x.size, y.size)

	z := &node[K, V]{rank: x.rank + 1, left: x, right: y}
	if z.rank <= r {
		z.size = 1
	} else {
		z.size = ceilDiv(3*x.size+1, 2)
	}
	sift(z)
	return z
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
