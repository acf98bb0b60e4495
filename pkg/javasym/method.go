package javasym

import (
	"fmt"
	"strings"
)

// Method is a method declaration.  Params holds the erased parameter
// type names; two methods with the same name and erased parameter
// list occupy the same inheritance slot.
type Method struct {
	// Name is the simple name.
	Name string
	// Mods are the declared modifier bits.
	Mods Modifiers
	// Params are the erased parameter type names, in order.
	Params []string
	// Return is the declared return type name.
	Return string
	// Owner is the declaring class.
	Owner *Class
}

// NewMethod constructs an unattached method declaration.
func NewMethod(name string, mods Modifiers, params ...string) *Method {
	return &Method{Name: name, Mods: mods, Params: params}
}

// AreOverrideEquivalent reports whether two method signatures have the
// same erased name/parameter signature, i.e. whether a nearer one
// replaces a farther one during inheritance.
func AreOverrideEquivalent(a, b *Method) bool {
	if a.Name != b.Name || len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if a.Params[i] != b.Params[i] {
			return false
		}
	}
	return true
}

// SimpleName implements part of the Decl interface.
func (m *Method) SimpleName() string { return m.Name }

// Modifiers implements part of the Decl interface.
func (m *Method) Modifiers() Modifiers { return m.Mods }

// EnclosingClass implements part of the Decl interface.
func (m *Method) EnclosingClass() *Class { return m.Owner }

// PackageName implements part of the Decl interface.
func (m *Method) PackageName() string {
	if m.Owner == nil {
		return ""
	}
	return m.Owner.Package
}

// String implements fmt.Stringer.
func (m *Method) String() string {
	owner := ""
	if m.Owner != nil {
		owner = m.Owner.CanonicalName()
	}
	return fmt.Sprintf("%s#%s(%s)", owner, m.Name, strings.Join(m.Params, ","))
}
