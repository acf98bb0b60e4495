package symtab

import (
	"github.com/stackb/java-symtab/pkg/collections"
	"github.com/stackb/java-symtab/pkg/javasym"
	"github.com/stackb/java-symtab/pkg/resolver"
)

// InheritedMembersResolvers walks the full strict-supertype closure of
// t and returns resolvers for the member types and fields t inherits.
// t's own declarations are not included; the caller layers those
// separately.
//
// Methods are not processed this way: they are resolved on demand by
// OwnMethodResolver, because overloads cannot be deduplicated by
// name alone and usually only a subset of methods is used in a
// subclass.
func (h Hierarchy) InheritedMembersResolvers(t *javasym.Class) (types resolver.NameResolver[*javasym.Class], fields resolver.NameResolver[*javasym.Field]) {
	nestRoot := t.NestRoot()

	typeBuilder := Types.NewResolverBuilder()
	fieldBuilder := Vars.NewResolverBuilder()

	// t is by definition related to its ancestors, so protected
	// members are in.
	isTypeAccessible := func(c *javasym.Class) bool { return isAccessibleInNest(nestRoot, c, true) }
	isFieldAccessible := func(f *javasym.Field) bool { return isAccessibleInNest(nestRoot, f, true) }

	for _, next := range h.Supers(t) {
		h.walkSelf(next, isFieldAccessible, isTypeAccessible, fieldBuilder, typeBuilder, collections.EmptyStringSet, collections.EmptyStringSet)
	}

	// If t is an interface, Object won't have been visited.  This is
	// fine because Object has no fields or nested types in any known
	// version of the JDK.

	return typeBuilder.Build(), fieldBuilder.Build()
}

// VisibleMembersResolvers walks t and its full strict-supertype
// closure from the point of view of an arbitrary viewer class,
// returning resolvers for the member types and fields of t visible to
// that viewer.  Unlike InheritedMembersResolvers, t's own declarations
// take part in the walk: they hide same-named inherited declarations
// even when they are themselves inaccessible to the viewer.  viewer
// may be nil for a context with no class (then only public and
// same-package members are visible).
func (h Hierarchy) VisibleMembersResolvers(t *javasym.Class, viewer *javasym.Class, viewerPackage string) (types resolver.NameResolver[*javasym.Class], fields resolver.NameResolver[*javasym.Field]) {
	var nestRoot *javasym.Class
	if viewer != nil {
		nestRoot = viewer.NestRoot()
	}
	related := func(decl javasym.Decl) bool {
		return viewer != nil && h.IsSubtype(viewer, decl.EnclosingClass())
	}

	typeBuilder := Types.NewResolverBuilder()
	fieldBuilder := Vars.NewResolverBuilder()

	isTypeAccessible := func(c *javasym.Class) bool { return IsAccessibleIn(nestRoot, viewerPackage, c, related(c)) }
	isFieldAccessible := func(f *javasym.Field) bool { return IsAccessibleIn(nestRoot, viewerPackage, f, related(f)) }

	h.walkSelf(t, isFieldAccessible, isTypeAccessible, fieldBuilder, typeBuilder, collections.EmptyStringSet, collections.EmptyStringSet)

	return typeBuilder.Build(), fieldBuilder.Build()
}

func (h Hierarchy) walkSelf(t *javasym.Class,
	isFieldAccessible func(*javasym.Field) bool,
	isTypeAccessible func(*javasym.Class) bool,
	fields *resolver.ResolverBuilder[*javasym.Field],
	types *resolver.ResolverBuilder[*javasym.Class],
	// persistent because they may differ in every path of the recursion
	hiddenFields, hiddenTypes *collections.PersistentStringSet) {

	// This process may recurse several times into the same interface
	// when it is reachable from several paths, because the set of
	// hidden declarations depends on the full path and may be
	// different each time.  The accumulator rejects duplicates, so
	// re-visits stay correct without a recursion guard.

	hiddenTypesInSup := processDeclarations(types, hiddenTypes, isTypeAccessible, t.DeclaredTypes())
	hiddenFieldsInSup := processDeclarations(fields, hiddenFields, isFieldAccessible, t.DeclaredFields())

	// depth first
	for _, next := range h.Supers(t) {
		h.walkSelf(next, isFieldAccessible, isTypeAccessible, fields, types, hiddenFieldsInSup, hiddenTypesInSup)
	}
}

// processDeclarations folds one node's declarations into the
// accumulator.  A name already hidden on this path is skipped outright
// (even if the nearer declaration was inaccessible); otherwise the
// name becomes hidden for deeper recursion and the declaration is
// appended when accessible.
func processDeclarations[T comparable](
	builder *resolver.ResolverBuilder[T],
	hidden *collections.PersistentStringSet,
	isAccessible func(T) bool,
	decls []T,
) *collections.PersistentStringSet {
	for _, decl := range decls {
		name := builder.SimpleName(decl)
		if hidden.Has(name) {
			continue
		}

		hidden = hidden.Plus(name)

		if isAccessible(decl) {
			builder.AppendIfAbsent(decl)
		}
	}
	return hidden
}
