package domain

// RecursionBudget is the operator-chosen number of extra nested
// re-invocations of an already running script. It is negotiated once per
// session and never asked again.
type RecursionBudget struct {
	MaxDepth int
	IsSet    bool
}

// Set fixes the budget. Later calls are ignored.
func (b *RecursionBudget) Set(depth int) {
	if b.IsSet {
		return
	}
	b.MaxDepth = depth
	b.IsSet = true
}

// ValidBudget reports whether depth is an acceptable operator answer.
func ValidBudget(depth int) bool {
	return depth >= MinRecursionBudget && depth <= MaxRecursionBudget
}
