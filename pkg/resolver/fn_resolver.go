package resolver

type firstFnResolver[T any] struct {
	desc string
	fn   func(name string) (T, bool)
}

// FirstFn adapts a resolve-first function into a NameResolver.  Used
// for scopes where at most one declaration can match a name, such as
// package lookups.
func FirstFn[T any](desc string, fn func(name string) (T, bool)) NameResolver[T] {
	return &firstFnResolver[T]{desc: desc, fn: fn}
}

// ResolveHere implements part of the NameResolver interface.
func (r *firstFnResolver[T]) ResolveHere(name string) []T {
	if value, ok := r.fn(name); ok {
		return []T{value}
	}
	return nil
}

// ResolveFirst implements part of the NameResolver interface.
func (r *firstFnResolver[T]) ResolveFirst(name string) (T, bool) {
	return r.fn(name)
}

// String implements the fmt.Stringer interface.
func (r *firstFnResolver[T]) String() string { return r.desc }

type hereFnResolver[T any] struct {
	desc string
	fn   func(name string) []T
}

// HereFn adapts a resolve-all function into a NameResolver.  Used for
// scopes computed on demand, such as method lookups.
func HereFn[T any](desc string, fn func(name string) []T) NameResolver[T] {
	return &hereFnResolver[T]{desc: desc, fn: fn}
}

// ResolveHere implements part of the NameResolver interface.
func (r *hereFnResolver[T]) ResolveHere(name string) []T {
	return r.fn(name)
}

// ResolveFirst implements part of the NameResolver interface.
func (r *hereFnResolver[T]) ResolveFirst(name string) (T, bool) {
	if values := r.fn(name); len(values) > 0 {
		return values[0], true
	}
	var zero T
	return zero, false
}

// String implements the fmt.Stringer interface.
func (r *hereFnResolver[T]) String() string { return r.desc }
