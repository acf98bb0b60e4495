package resolver

import "fmt"

// ShadowChainBuilder creates the accumulators threaded through
// hierarchy walks over declarations of type T.  The builder itself is
// stateless and may be shared; the ResolverBuilder values it creates
// must not be.
type ShadowChainBuilder[T comparable] struct {
	kind   string
	nameOf func(T) string
}

// NewShadowChainBuilder constructs a builder for declarations whose
// simple name is computed by nameOf.  kind names the declaration space
// in resolver descriptions.
func NewShadowChainBuilder[T comparable](kind string, nameOf func(T) string) *ShadowChainBuilder[T] {
	return &ShadowChainBuilder[T]{kind: kind, nameOf: nameOf}
}

// NewResolverBuilder returns a fresh accumulator for one walk
// invocation.
func (b *ShadowChainBuilder[T]) NewResolverBuilder() *ResolverBuilder[T] {
	return &ResolverBuilder[T]{
		chain:  b,
		seen:   make(map[T]struct{}),
		byName: make(map[string][]T),
	}
}

// ResolverBuilder accumulates the survivors of one hierarchy walk,
// grouped by simple name with nearer declarations first.  It is local
// to one walk invocation: callers must not retain it after Build, nor
// share it across concurrent walks.
type ResolverBuilder[T comparable] struct {
	chain  *ShadowChainBuilder[T]
	seen   map[T]struct{}
	byName map[string][]T
	count  int
}

// SimpleName returns the name the chain indexes the declaration by.
func (rb *ResolverBuilder[T]) SimpleName(decl T) string {
	return rb.chain.nameOf(decl)
}

// AppendIfAbsent records a surviving declaration.  Appending the same
// declaration twice is a no-op, which collapses re-visits of one node
// reached through different diamond paths.
func (rb *ResolverBuilder[T]) AppendIfAbsent(decl T) {
	if _, ok := rb.seen[decl]; ok {
		return
	}
	rb.seen[decl] = struct{}{}
	name := rb.SimpleName(decl)
	rb.byName[name] = append(rb.byName[name], decl)
	rb.count++
}

// Len returns the number of declarations appended so far.
func (rb *ResolverBuilder[T]) Len() int { return rb.count }

// Build freezes the accumulated declarations into an immutable
// resolver.
func (rb *ResolverBuilder[T]) Build() NameResolver[T] {
	if rb.count == 0 {
		return Empty[T]()
	}
	return &groupResolver[T]{kind: rb.chain.kind, byName: rb.byName}
}

type groupResolver[T comparable] struct {
	kind   string
	byName map[string][]T
}

// ResolveHere implements part of the NameResolver interface.
func (r *groupResolver[T]) ResolveHere(name string) []T {
	return r.byName[name]
}

// ResolveFirst implements part of the NameResolver interface.
func (r *groupResolver[T]) ResolveFirst(name string) (T, bool) {
	if values := r.byName[name]; len(values) > 0 {
		return values[0], true
	}
	var zero T
	return zero, false
}

// String implements the fmt.Stringer interface.
func (r *groupResolver[T]) String() string {
	return fmt.Sprintf("GroupResolver(%s, %d names)", r.kind, len(r.byName))
}
