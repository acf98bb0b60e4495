package javasym

import "strings"

// Modifiers is a bitset of java declaration modifiers.
type Modifiers uint32

const (
	Public Modifiers = 1 << iota
	Protected
	Private
	Static
	Final
	Abstract
	Interface
	Enum
)

// PackagePrivate is the access level of a declaration carrying none of
// the public/protected/private bits.
const PackagePrivate Modifiers = 0

// AccessMask selects the access-level bits of a modifier set.
const AccessMask = Public | Protected | Private

// Access returns the access-level bits only.  A well-formed declaration
// has at most one of them set.
func (m Modifiers) Access() Modifiers {
	return m & AccessMask
}

func (m Modifiers) IsPublic() bool    { return m&Public != 0 }
func (m Modifiers) IsProtected() bool { return m&Protected != 0 }
func (m Modifiers) IsPrivate() bool   { return m&Private != 0 }
func (m Modifiers) IsStatic() bool    { return m&Static != 0 }
func (m Modifiers) IsFinal() bool     { return m&Final != 0 }
func (m Modifiers) IsAbstract() bool  { return m&Abstract != 0 }
func (m Modifiers) IsInterface() bool { return m&Interface != 0 }
func (m Modifiers) IsEnum() bool      { return m&Enum != 0 }

var modifierNames = []struct {
	bit  Modifiers
	name string
}{
	{Public, "public"},
	{Protected, "protected"},
	{Private, "private"},
	{Static, "static"},
	{Final, "final"},
	{Abstract, "abstract"},
	{Interface, "interface"},
	{Enum, "enum"},
}

// ParseModifier maps a java modifier keyword to its bit.  Unknown
// keywords (annotations, sealed, etc.) report false.
func ParseModifier(keyword string) (Modifiers, bool) {
	for _, m := range modifierNames {
		if m.name == keyword {
			return m.bit, true
		}
	}
	return 0, false
}

// String implements fmt.Stringer.
func (m Modifiers) String() string {
	var names []string
	for _, entry := range modifierNames {
		if m&entry.bit != 0 {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, " ")
}
