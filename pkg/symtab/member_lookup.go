package symtab

import (
	"github.com/stackb/java-symtab/pkg/collections"
	"github.com/stackb/java-symtab/pkg/javasym"
	"github.com/stackb/java-symtab/pkg/resolver"
)

// MemberClassResolver produces a resolver for member classes with the
// given name declared or inherited by c.  Each access may perform a
// hierarchy traversal, but this handles hidden and ambiguous
// declarations nicely.
//
// access is the class establishing the context of the reference (used
// for private and protected access decisions); it may be nil for an
// unrelated context such as a static import.
func (h Hierarchy) MemberClassResolver(c *javasym.Class, accessPackageName string, access *javasym.Class, name string) resolver.NameResolver[*javasym.Class] {
	return namedMemberResolver(h, c, access, accessPackageName, name,
		(*javasym.Class).DeclaredType,
		func(t *javasym.Class) javasym.Decl { return t },
		Types)
}

// MemberFieldResolver produces a resolver for member fields with the
// given name declared or inherited by c.
func (h Hierarchy) MemberFieldResolver(c *javasym.Class, accessPackageName string, access *javasym.Class, name string) resolver.NameResolver[*javasym.Field] {
	return namedMemberResolver(h, c, access, accessPackageName, name,
		(*javasym.Class).DeclaredField,
		func(f *javasym.Field) javasym.Decl { return f },
		Vars)
}

func namedMemberResolver[T comparable](h Hierarchy,
	c *javasym.Class,
	access *javasym.Class,
	accessPackageName string,
	name string,
	getter func(*javasym.Class, string) (T, bool),
	declOf func(T) javasym.Decl,
	chain *resolver.ShadowChainBuilder[T],
) resolver.NameResolver[T] {
	if found, ok := getter(c, name); ok {
		// fast path: an entity's own declared members are always in
		// scope at the point of declaration, no accessibility check
		return resolver.Singleton(name, found)
	}

	var nestRoot *javasym.Class
	if access != nil {
		nestRoot = access.NestRoot()
	}
	isAccessible := func(s T) bool {
		decl := declOf(s)
		return IsAccessibleIn(nestRoot, accessPackageName, decl, access != nil && h.IsSubtype(access, decl.EnclosingClass()))
	}

	builder := chain.NewResolverBuilder()

	for _, next := range h.Supers(c) {
		walkForSingleName(h, next, isAccessible, name, getter, builder, collections.EmptyStringSet)
	}

	return builder.Build()
}

func walkForSingleName[T comparable](h Hierarchy,
	t *javasym.Class,
	isAccessible func(T) bool,
	name string,
	getter func(*javasym.Class, string) (T, bool),
	builder *resolver.ResolverBuilder[T],
	hidden *collections.PersistentStringSet) {

	if decl, ok := getter(t, name); ok {
		hidden = processDeclarations(builder, hidden, isAccessible, []T{decl})
	}

	if !hidden.IsEmpty() {
		// found it in this branch: here the hidden set is either empty
		// or holds the one name
		return
	}

	// depth first
	for _, next := range h.Supers(t) {
		walkForSingleName(h, next, isAccessible, name, getter, builder, hidden)
	}
}
