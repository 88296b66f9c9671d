package softheap

import "fmt"

// assertf enforces an internal consistency condition: one that should never
// fail if the forest maintenance below is implemented correctly. It always
// panics on violation; unlike the sentinel errors in errors.go, these never
// originate from caller input.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(fmt.Sprintf("softheap: internal invariant violated: "+format, args...))
	}
}
