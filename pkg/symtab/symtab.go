// Package symtab builds name resolvers for java class-hierarchy
// scopes: given a class node, which simple names (fields, nested
// types, methods) are visible there, after shadowing, hiding,
// override-equivalence collapse, and the four-level accessibility
// rules have been applied.
package symtab

import (
	"github.com/stackb/java-symtab/pkg/javasym"
	"github.com/stackb/java-symtab/pkg/resolver"
)

// ClassResolver loads classes by qualified name.  Implementations are
// supplied by the caller (e.g. a classpath registry).
type ClassResolver interface {
	// ResolveFromCanonicalName resolves a dotted name like
	// "p.Outer.Inner".
	ResolveFromCanonicalName(name string) (*javasym.Class, bool)
	// ResolveFromBinaryName resolves a JVM name like "p.Outer$Inner".
	ResolveFromBinaryName(name string) (*javasym.Class, bool)
}

// Hierarchy bundles the collaborator capabilities the resolver
// factories consult: supertype enumeration, the subtype test, and the
// override-equivalence test.  Pass it explicitly; there is no
// process-wide default.
type Hierarchy struct {
	// Supers yields the ordered direct strict supertypes of a class.
	Supers javasym.SuperTypes
	// IsSubtype reports whether sub is a (reflexive) subtype of sup.
	IsSubtype func(sub, sup *javasym.Class) bool
	// OverrideEquivalent reports whether two methods have the same
	// erased signature per the override rules.
	OverrideEquivalent func(a, b *javasym.Method) bool
}

// NewHierarchy returns a Hierarchy backed by the declared supertype
// edges and erased-signature equivalence.
func NewHierarchy() Hierarchy {
	return Hierarchy{
		Supers:             javasym.DirectStrictSupertypes,
		IsSubtype:          javasym.IsSubtype,
		OverrideEquivalent: javasym.AreOverrideEquivalent,
	}
}

// Types builds shadow-chain accumulators for member type walks.
var Types = resolver.NewShadowChainBuilder("types", func(c *javasym.Class) string { return c.Name })

// Vars builds shadow-chain accumulators for field walks.
var Vars = resolver.NewShadowChainBuilder("fields", func(f *javasym.Field) string { return f.Name })

// PrependPackageName prepends the package name, handling the default
// package.
func PrependPackageName(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}
