package symtab

import "github.com/stackb/java-symtab/pkg/javasym"

// MergeMethods combines two method candidate lists into one, with the
// first list shadowing the second.  Both input lists must already be
// internally free of override-equivalent pairs.  Elements of other
// that are override-equivalent to any element of mine are dropped; the
// rest are appended after mine, in their original order.
func (h Hierarchy) MergeMethods(mine, other []*javasym.Method) []*javasym.Method {
	if len(other) == 0 {
		return mine
	}

	shadowed := make([]bool, len(other))
	dropped := 0
	for _, m1 := range mine {
		for i, m2 := range other {
			if !shadowed[i] && h.OverrideEquivalent(m1, m2) {
				shadowed[i] = true
				dropped++
			}
		}
	}

	if dropped == 0 && len(mine) == 0 {
		return other
	}

	result := make([]*javasym.Method, 0, len(mine)+len(other)-dropped)
	result = append(result, mine...)
	for i, m2 := range other {
		if !shadowed[i] {
			result = append(result, m2)
		}
	}
	return result
}
