// Package resolver provides the name resolution contract produced by
// hierarchy walks: resolvers map a simple name to the candidates
// visible at one scope, and shadow-chain builders accumulate the
// survivors of a walk.
package resolver

import "fmt"

// NameResolver resolves a simple name to declarations of type T
// visible at some scope.
type NameResolver[T any] interface {
	fmt.Stringer

	// ResolveHere returns every candidate visible for the name at this
	// scope, nearest declaration first.  An empty result means the
	// name is not found here; that is not an error.
	ResolveHere(name string) []T

	// ResolveFirst returns the first candidate for the name, when only
	// one result is meaningful.
	ResolveFirst(name string) (T, bool)
}

type emptyResolver[T any] struct{}

// Empty returns a resolver that resolves nothing.
func Empty[T any]() NameResolver[T] {
	return emptyResolver[T]{}
}

// ResolveHere implements part of the NameResolver interface.
func (emptyResolver[T]) ResolveHere(name string) []T { return nil }

// ResolveFirst implements part of the NameResolver interface.
func (emptyResolver[T]) ResolveFirst(name string) (T, bool) {
	var zero T
	return zero, false
}

// String implements the fmt.Stringer interface.
func (emptyResolver[T]) String() string { return "EmptyResolver" }

type singletonResolver[T any] struct {
	name  string
	value T
}

// Singleton returns a resolver holding exactly one declaration under
// the given name.
func Singleton[T any](name string, value T) NameResolver[T] {
	return &singletonResolver[T]{name: name, value: value}
}

// ResolveHere implements part of the NameResolver interface.
func (r *singletonResolver[T]) ResolveHere(name string) []T {
	if name == r.name {
		return []T{r.value}
	}
	return nil
}

// ResolveFirst implements part of the NameResolver interface.
func (r *singletonResolver[T]) ResolveFirst(name string) (T, bool) {
	if name == r.name {
		return r.value, true
	}
	var zero T
	return zero, false
}

// String implements the fmt.Stringer interface.
func (r *singletonResolver[T]) String() string {
	return fmt.Sprintf("SingletonResolver(%s)", r.name)
}
