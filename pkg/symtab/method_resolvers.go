package symtab

import (
	"fmt"

	"github.com/stackb/java-symtab/pkg/javasym"
	"github.com/stackb/java-symtab/pkg/resolver"
)

// OwnMethodResolver resolves every method reachable from t (declared
// or inherited) that is accessible to t's own nest, taking care of
// hiding and overriding: for each group of override-equivalent
// signatures, only the nearest declaration survives.
func (h Hierarchy) OwnMethodResolver(t *javasym.Class) resolver.NameResolver[*javasym.Method] {
	nestRoot := t.NestRoot()
	return resolver.HereFn(fmt.Sprintf("methods of %s", t), func(name string) []*javasym.Method {
		// protected methods are in: t is related to its ancestors
		return h.mostSpecificMethods(t, func(m *javasym.Method) bool {
			return m.Name == name && isAccessibleInNest(nestRoot, m, true)
		})
	})
}

// StaticImportMethodResolver resolves static methods of container with
// the given name, as seen from a static-import context in the given
// package.  A static-import context has no subtype relation to the
// imported class, so accessibility reduces to package equality.
//
// Importing a static protected method may technically be valid inside
// some classes of the importing file; this test makes it not in scope
// there.  But the method is also visible in those classes as an
// inherited member, so it is in scope in the relevant contexts anyway.
func (h Hierarchy) StaticImportMethodResolver(container *javasym.Class, accessPackageName, name string) resolver.NameResolver[*javasym.Method] {
	return resolver.HereFn(fmt.Sprintf("static methods w/ name %s of %s", name, container), func(simpleName string) []*javasym.Method {
		return h.mostSpecificMethods(container, func(m *javasym.Method) bool {
			return m.Mods.IsStatic() &&
				m.Name == simpleName &&
				IsAccessibleIn(nil, accessPackageName, m, false)
		})
	})
}

// mostSpecificMethods streams the matching methods of t and its strict
// supertype closure, nearer scopes first, reducing override-equivalent
// groups to their most specific member with MergeMethods.  Diamond
// re-visits collapse because a method is override-equivalent to
// itself.
func (h Hierarchy) mostSpecificMethods(t *javasym.Class, pred func(*javasym.Method) bool) []*javasym.Method {
	result := t.DeclaredMethods(pred)
	for _, next := range h.Supers(t) {
		result = h.MergeMethods(result, h.mostSpecificMethods(next, pred))
	}
	return result
}
