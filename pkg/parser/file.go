package parser

import "github.com/stackb/java-symtab/pkg/javasym"

// Import is one import declaration of a compilation unit.
type Import struct {
	// Name is the imported name: a type or package canonical name, or
	// for static imports a member's qualified name.
	Name string
	// OnDemand reports a trailing ".*".
	OnDemand bool
	// Static reports a static import.
	Static bool
}

// File is the relevant content of one parsed compilation unit.
type File struct {
	// Filename is the source path the unit was read from.
	Filename string
	// Package is the declared package, "" for the default package.
	Package string
	// Imports are the import declarations, in order.
	Imports []Import
	// Types are the top-level types declared in the unit.
	Types []*javasym.Class

	// superNames maps each declared type, including nested ones, to
	// the supertype names written in source.
	superNames map[*javasym.Class][]string
}

func newFile(filename string) *File {
	return &File{
		Filename:   filename,
		superNames: make(map[*javasym.Class][]string),
	}
}

// SuperNames returns the declared supertype names of a type of this
// file, as written in source (possibly qualified, generics erased).
func (f *File) SuperNames(c *javasym.Class) []string {
	return f.superNames[c]
}

// EachType visits every type declared in the file, nested types
// included, parents before children.
func (f *File) EachType(visit func(c *javasym.Class) error) error {
	var walk func(types []*javasym.Class) error
	walk = func(types []*javasym.Class) error {
		for _, t := range types {
			if err := visit(t); err != nil {
				return err
			}
			if err := walk(t.DeclaredTypes()); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(f.Types)
}
