package javasym

// SuperTypes enumerates the direct strict supertypes of a class:
// superclass and/or superinterfaces, excluding the class itself.
type SuperTypes func(*Class) []*Class

// DirectStrictSupertypes is the default SuperTypes enumerator, reading
// the declared supertype edges.
func DirectStrictSupertypes(c *Class) []*Class { return c.Supertypes }

// IsSubtype reports whether sub is a subtype of sup, i.e. sup is
// reachable from sub over supertype edges (reflexively).
func IsSubtype(sub, sup *Class) bool {
	if sub == nil || sup == nil {
		return false
	}
	if sub == sup {
		return true
	}
	for _, next := range sub.Supertypes {
		if IsSubtype(next, sup) {
			return true
		}
	}
	return false
}
