package javasym

import "fmt"

// Field is a field declaration.
type Field struct {
	// Name is the simple name.
	Name string
	// Mods are the declared modifier bits.
	Mods Modifiers
	// Type is the declared type name as written in source.
	Type string
	// Owner is the declaring class.
	Owner *Class
}

// NewField constructs an unattached field declaration.
func NewField(name, typeName string, mods Modifiers) *Field {
	return &Field{Name: name, Type: typeName, Mods: mods}
}

// SimpleName implements part of the Decl interface.
func (f *Field) SimpleName() string { return f.Name }

// Modifiers implements part of the Decl interface.
func (f *Field) Modifiers() Modifiers { return f.Mods }

// EnclosingClass implements part of the Decl interface.
func (f *Field) EnclosingClass() *Class { return f.Owner }

// PackageName implements part of the Decl interface.
func (f *Field) PackageName() string {
	if f.Owner == nil {
		return ""
	}
	return f.Owner.Package
}

// String implements fmt.Stringer.
func (f *Field) String() string {
	if f.Owner == nil {
		return f.Name
	}
	return fmt.Sprintf("%s#%s", f.Owner.CanonicalName(), f.Name)
}
