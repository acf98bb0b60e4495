package symtab

import (
	"log"

	"github.com/stackb/java-symtab/pkg/javasym"
)

// IsAccessibleIn reports whether the declaration is accessible in some
// type T, given the nest root of T, T's package, and whether T is a
// subtype of the class declaring the member.  This is a general
// purpose accessibility check, albeit a bit low-level (subtyping only
// needs to be computed once by the caller).
func IsAccessibleIn(nestRoot *javasym.Class, packageName string, decl javasym.Decl, ownerIsSupertypeOfContext bool) bool {
	switch decl.Modifiers().Access() {
	case javasym.Public:
		return true
	case javasym.Private:
		return nestRoot != nil && nestRoot == nestRootOf(decl)
	case javasym.Protected:
		if ownerIsSupertypeOfContext {
			return true
		}
		fallthrough
	case javasym.PackagePrivate:
		return decl.PackageName() == packageName
	default:
		log.Panicf("invalid access modifiers: %s on %v", decl.Modifiers(), decl)
		return false
	}
}

// isAccessibleInNest is IsAccessibleIn viewed from the nest root
// itself.
func isAccessibleInNest(nestRoot *javasym.Class, decl javasym.Decl, ownerIsSupertypeOfContext bool) bool {
	return IsAccessibleIn(nestRoot, nestRoot.Package, decl, ownerIsSupertypeOfContext)
}

func nestRootOf(decl javasym.Decl) *javasym.Class {
	enclosing := decl.EnclosingClass()
	if enclosing == nil {
		return nil
	}
	return enclosing.NestRoot()
}

// CanBeImportedIn reports whether the declaration can be imported in a
// file of the given package.  This is not a general purpose
// accessibility check and is only appropriate for imports.
//
// Protected members are considered inaccessible outside the package
// they were declared in, which is an approximation but won't cause
// problems in practice.  In another package the name is accessible
// only inside classes that inherit from the declaring class, and
// inheriting from a class makes its static members accessible via
// simple name too, so those usages are picked up by the inherited
// member resolvers instead.
func CanBeImportedIn(thisPackage string, decl javasym.Decl) bool {
	mods := decl.Modifiers()
	if mods.IsPublic() {
		return true
	}
	if mods.IsPrivate() {
		return false
	}
	// package private, or protected
	return decl.PackageName() == thisPackage
}
