package javasym

// Decl is a declaration with an access level: a field, a nested type,
// or a method.  Accessibility checks only need these four capabilities.
type Decl interface {
	// SimpleName returns the name the declaration is known by at its
	// point of declaration.
	SimpleName() string
	// Modifiers returns the declared modifier bits.
	Modifiers() Modifiers
	// EnclosingClass returns the class the declaration appears in, or
	// nil for a top-level class.
	EnclosingClass() *Class
	// PackageName returns the package the declaration was made in.
	PackageName() string
}
