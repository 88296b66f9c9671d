package softheap

import "github.com/pkg/errors"

// Sentinel errors for caller misuse: bad constructor arguments, draining an
// empty heap, or melding heaps built with incompatible error rates. Wrap
// with errors.Wrapf to attach the offending value without losing Is/As
// compatibility with these sentinels.
var (
	// ErrInvalidEpsilon is returned when epsilon is not in (0,1).
	ErrInvalidEpsilon = errors.New("softheap: epsilon must satisfy 0 < epsilon < 1")

	// ErrEmptyHeap is returned by operations that require a nonempty heap.
	ErrEmptyHeap = errors.New("softheap: heap is empty")

	// ErrEpsilonMismatch is returned by Meld when the two heaps' epsilon
	// values disagree by more than epsilonTolerance in relative terms.
	ErrEpsilonMismatch = errors.New("softheap: cannot meld heaps with incompatible epsilon")
)

// epsilonTolerance is the relative tolerance allowed between two heaps'
// epsilon values during Meld.
const epsilonTolerance = 1e-3

func validateEpsilon(epsilon float64) error {
	if epsilon <= 0 || epsilon >= 1 {
		return errors.Wrapf(ErrInvalidEpsilon, "got %g", epsilon)
	}
	return nil
}

func epsilonCompatible(a, b float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	denom := a
	if b > denom {
		denom = b
	}
	if denom == 0 {
		return diff <= epsilonTolerance
	}
	return diff/denom <= epsilonTolerance
}
