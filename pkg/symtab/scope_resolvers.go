package symtab

import (
	"fmt"

	"github.com/stackb/java-symtab/pkg/javasym"
	"github.com/stackb/java-symtab/pkg/resolver"
)

// PackageResolver resolves type names declared in a single package by
// binary name.  No accessibility filter is applied: package-qualified
// access is gated by the caller's own package check.
func PackageResolver(classes ClassResolver, packageName string) resolver.NameResolver[*javasym.Class] {
	return resolver.FirstFn(fmt.Sprintf("PackageResolver(%s)", packageName), func(simpleName string) (*javasym.Class, bool) {
		return classes.ResolveFromBinaryName(PrependPackageName(packageName, simpleName))
	})
}

// ImportedOnDemand resolves type names through on-demand imports.  The
// configured entries are tried in order; each may name a package or a
// type, so lookup is by canonical name.  The first entry yielding a
// class importable in thisPackage wins silently: ambiguous on-demand
// imports are not diagnosed here.
func ImportedOnDemand(packagesAndTypes []string, classes ClassResolver, thisPackage string) resolver.NameResolver[*javasym.Class] {
	return resolver.FirstFn(fmt.Sprintf("ImportOnDemandResolver(%v)", packagesAndTypes), func(simpleName string) (*javasym.Class, bool) {
		for _, pack := range packagesAndTypes {
			name := PrependPackageName(pack, simpleName)
			if sym, ok := classes.ResolveFromCanonicalName(name); ok && CanBeImportedIn(thisPackage, sym) {
				return sym, true
			}
		}
		return nil, false
	})
}
