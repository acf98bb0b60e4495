package javasym

// Class is a node in the supertype graph: a class, interface, or enum
// together with its declared members.  Class values are compared by
// pointer identity, so a *Class is usable as a map key for
// "already appended" checks during hierarchy walks.
type Class struct {
	// Name is the simple name.
	Name string
	// Package is the declaring package, "" for the default package.
	Package string
	// Mods are the declared modifier bits.
	Mods Modifiers
	// Enclosing is the lexically enclosing class, nil for a top-level
	// class.
	Enclosing *Class
	// Supertypes are the direct strict supertypes in declaration
	// order, superclass first.  The induced graph may contain diamonds
	// but must be acyclic.
	Supertypes []*Class

	types   []*Class
	fields  []*Field
	methods []*Method
}

// NewClass constructs a top-level class symbol.
func NewClass(pkg, name string, mods Modifiers) *Class {
	return &Class{Name: name, Package: pkg, Mods: mods}
}

// DeclareType appends a nested type declaration and links it to this
// class.
func (c *Class) DeclareType(nested *Class) *Class {
	nested.Enclosing = c
	nested.Package = c.Package
	c.types = append(c.types, nested)
	return nested
}

// DeclareField appends a field declaration and links it to this class.
func (c *Class) DeclareField(f *Field) *Field {
	f.Owner = c
	c.fields = append(c.fields, f)
	return f
}

// DeclareMethod appends a method declaration and links it to this
// class.
func (c *Class) DeclareMethod(m *Method) *Method {
	m.Owner = c
	c.methods = append(c.methods, m)
	return m
}

// DeclaredTypes returns the nested types declared by this class, in
// declaration order.
func (c *Class) DeclaredTypes() []*Class { return c.types }

// DeclaredFields returns the fields declared by this class, in
// declaration order.
func (c *Class) DeclaredFields() []*Field { return c.fields }

// DeclaredMethods returns the methods declared by this class matching
// the predicate, in declaration order.  A nil predicate matches all.
func (c *Class) DeclaredMethods(pred func(*Method) bool) []*Method {
	if pred == nil {
		return c.methods
	}
	var matched []*Method
	for _, m := range c.methods {
		if pred(m) {
			matched = append(matched, m)
		}
	}
	return matched
}

// DeclaredType looks up a nested type declared directly by this class.
func (c *Class) DeclaredType(name string) (*Class, bool) {
	for _, t := range c.types {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// DeclaredField looks up a field declared directly by this class.
func (c *Class) DeclaredField(name string) (*Field, bool) {
	for _, f := range c.fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// NestRoot returns the top-level class enclosing this one, or the
// class itself if it is top-level.  Members of classes sharing a nest
// root are mutually private-accessible.
func (c *Class) NestRoot() *Class {
	root := c
	for root.Enclosing != nil {
		root = root.Enclosing
	}
	return root
}

// CanonicalName returns the dotted name, e.g. "p.Outer.Inner".
func (c *Class) CanonicalName() string {
	if c.Enclosing != nil {
		return c.Enclosing.CanonicalName() + "." + c.Name
	}
	if c.Package == "" {
		return c.Name
	}
	return c.Package + "." + c.Name
}

// BinaryName returns the JVM name, e.g. "p.Outer$Inner".
func (c *Class) BinaryName() string {
	if c.Enclosing != nil {
		return c.Enclosing.BinaryName() + "$" + c.Name
	}
	if c.Package == "" {
		return c.Name
	}
	return c.Package + "." + c.Name
}

// SimpleName implements part of the Decl interface.
func (c *Class) SimpleName() string { return c.Name }

// Modifiers implements part of the Decl interface.
func (c *Class) Modifiers() Modifiers { return c.Mods }

// EnclosingClass implements part of the Decl interface.
func (c *Class) EnclosingClass() *Class { return c.Enclosing }

// PackageName implements part of the Decl interface.
func (c *Class) PackageName() string { return c.Package }

// String implements fmt.Stringer.
func (c *Class) String() string { return c.CanonicalName() }
