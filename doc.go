// Package softheap implements a soft heap: an approximate min-priority
// queue in the style of Chazelle, reformulated over binary trees by
// Kaplan and Zwick.
//
// A soft heap is parameterized by an error rate epsilon in (0,1). Over any
// sequence of operations containing n inserts, at most floor(epsilon*n)
// elements become corrupted: their working key (ckey) is allowed to drift
// above their original key so that Insert, Meld and ExtractMin all run in
// amortized O(log(1/epsilon)) time. ExtractMin therefore returns the
// element of minimum ckey, not necessarily the element of minimum original
// key.
//
// The heap is a forest of binary trees held in a root list sorted by
// strictly increasing rank, mirroring a binomial heap's carry-propagating
// meld. Each tree also caches a pointer to the minimum-ckey tree among
// itself and every tree after it in the list (sufmin), so ExtractMin always
// has O(1) access to the globally minimum root.
//
// Keys may be any ordered type; an arbitrary payload travels alongside each
// key. The heap is not safe for concurrent use, does not support
// decrease-key or delete-by-handle, and does not persist across process
// restarts.
package softheap
