// Package classpath locates java classes: a trie-backed registry
// indexes parsed classes by canonical name, and a source path
// enumerates the .java files the registry is populated from.
package classpath

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dghubble/trie"

	"github.com/stackb/java-symtab/pkg/javasym"
)

// ErrDuplicateClass is wrapped by Put when a canonical name is
// registered twice.
var ErrDuplicateClass = fmt.Errorf("duplicate class registration")

// Registry indexes classes by canonical name using a trie.  It
// implements the symtab.ClassResolver collaborator.
type Registry struct {
	classes *trie.PathTrie
	size    int
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		classes: trie.NewPathTrieWithConfig(&trie.PathTrieConfig{
			Segmenter: nameSegmenter,
		}),
	}
}

// Put registers a class under its canonical name.  Registering two
// classes under the same name is an error.
func (r *Registry) Put(c *javasym.Class) error {
	name := c.CanonicalName()
	if existing := r.classes.Get(name); existing != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateClass, name)
	}
	r.classes.Put(name, c)
	r.size++
	return nil
}

// ResolveFromCanonicalName implements part of the
// symtab.ClassResolver interface.
func (r *Registry) ResolveFromCanonicalName(name string) (*javasym.Class, bool) {
	value := r.classes.Get(name)
	if value == nil {
		return nil, false
	}
	return value.(*javasym.Class), true
}

// ResolveFromBinaryName implements part of the symtab.ClassResolver
// interface.  Binary nesting separators translate to canonical dots.
func (r *Registry) ResolveFromBinaryName(name string) (*javasym.Class, bool) {
	return r.ResolveFromCanonicalName(strings.ReplaceAll(name, "$", "."))
}

// Len returns the number of registered classes.
func (r *Registry) Len() int { return r.size }

// Classes returns all registered classes sorted by canonical name.
func (r *Registry) Classes() (all []*javasym.Class) {
	r.classes.Walk(func(key string, value interface{}) error {
		all = append(all, value.(*javasym.Class))
		return nil
	})
	sort.Slice(all, func(i, j int) bool {
		return all[i].CanonicalName() < all[j].CanonicalName()
	})
	return
}

// nameSegmenter segments string key paths by dot separators. For
// example, ".a.b.c" -> (".a", 2), (".b", 4), (".c", -1) in successive
// calls. It does not allocate any heap memory.
func nameSegmenter(path string, start int) (segment string, next int) {
	if len(path) == 0 || start < 0 || start > len(path)-1 {
		return "", -1
	}
	end := strings.IndexRune(path[start+1:], '.') // next '.' after 0th rune
	if end == -1 {
		return path[start:], -1
	}
	return path[start : start+end+1], start + end + 1
}
