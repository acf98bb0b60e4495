// Package provider populates a class registry from java sources and
// links the declared supertype names into a class graph the symtab
// resolvers can walk.
package provider

import (
	"context"
	"strings"

	"github.com/pcj/mobyprogress"
	"github.com/rs/zerolog"

	"github.com/stackb/java-symtab/pkg/classpath"
	"github.com/stackb/java-symtab/pkg/javasym"
	"github.com/stackb/java-symtab/pkg/parser"
	"github.com/stackb/java-symtab/pkg/symtab"
)

// objectClassName is the universal root of the supertype graph.
const objectClassName = "java.lang.Object"

// SourceProviderOption configures a SourceProvider.
type SourceProviderOption func(*SourceProvider) *SourceProvider

// WithProgress sets a progress output written while indexing.
func WithProgress(output mobyprogress.Output) SourceProviderOption {
	return func(p *SourceProvider) *SourceProvider {
		p.progress = output
		return p
	}
}

// WithImplicitImports sets the packages implicitly imported on demand
// by every compilation unit.  The default is java.lang.
func WithImplicitImports(packages ...string) SourceProviderOption {
	return func(p *SourceProvider) *SourceProvider {
		p.implicitImports = packages
		return p
	}
}

// SourceProvider scans a source path, parses each compilation unit,
// registers the declared types, and links supertype names to class
// symbols.
type SourceProvider struct {
	logger          zerolog.Logger
	progress        mobyprogress.Output
	parser          *parser.Parser
	registry        *classpath.Registry
	implicitImports []string
	files           []*parser.File
	object          *javasym.Class
}

// NewSourceProvider constructs a SourceProvider over the given
// registry.
func NewSourceProvider(logger zerolog.Logger, registry *classpath.Registry, options ...SourceProviderOption) *SourceProvider {
	p := &SourceProvider{
		logger:          logger,
		registry:        registry,
		implicitImports: []string{"java.lang"},
	}
	for _, opt := range options {
		p = opt(p)
	}
	p.parser = parser.NewParser(parser.WithLogger(logger))
	return p
}

// Files returns the parsed compilation units, in scan order.
func (p *SourceProvider) Files() []*parser.File { return p.files }

// Registry returns the registry being populated.
func (p *SourceProvider) Registry() *classpath.Registry { return p.registry }

// Load scans, parses, registers and links every source file on the
// path.
func (p *SourceProvider) Load(ctx context.Context, path *classpath.SourcePath) error {
	var sources []classpath.SourceFile
	if err := path.Scan(func(file classpath.SourceFile) error {
		sources = append(sources, file)
		return nil
	}); err != nil {
		return err
	}

	for i, src := range sources {
		p.writeParseProgress(i+1, len(sources))
		file, err := p.parser.ParseFile(ctx, src.Path, src.Data)
		if err != nil {
			return err
		}
		p.files = append(p.files, file)
	}

	p.register()
	p.link()
	return nil
}

// register puts every declared type into the registry.  A duplicate
// canonical name keeps the first registration.
func (p *SourceProvider) register() {
	for _, file := range p.files {
		file.EachType(func(c *javasym.Class) error {
			if err := p.registry.Put(c); err != nil {
				p.logger.Warn().Err(err).Str("file", file.Filename).Msg("skipping type")
			}
			return nil
		})
	}
}

// link resolves every declared supertype name to a class symbol.  A
// class with no resolvable superclass extends Object.
func (p *SourceProvider) link() {
	p.object = p.ensureObject()

	for _, file := range p.files {
		file.EachType(func(c *javasym.Class) error {
			p.linkType(file, c)
			return nil
		})
	}
}

func (p *SourceProvider) linkType(file *parser.File, c *javasym.Class) {
	var supers []*javasym.Class
	for _, name := range file.SuperNames(c) {
		super, ok := p.resolveTypeName(file, c, name)
		if !ok {
			p.logger.Debug().
				Str("file", file.Filename).
				Str("type", c.CanonicalName()).
				Str("supertype", name).
				Msg("unresolved supertype name")
			continue
		}
		if javasym.IsSubtype(super, c) {
			// invalid source can declare a cycle; drop the closing edge
			// so the graph honors the acyclicity the walkers rely on
			p.logger.Warn().
				Str("file", file.Filename).
				Str("type", c.CanonicalName()).
				Str("supertype", super.CanonicalName()).
				Msg("dropping cyclic supertype edge")
			continue
		}
		supers = append(supers, super)
	}

	if c != p.object && !c.Mods.IsInterface() && !hasSuperclass(supers) {
		supers = append([]*javasym.Class{p.object}, supers...)
	}
	c.Supertypes = supers
}

func hasSuperclass(supers []*javasym.Class) bool {
	for _, s := range supers {
		if !s.Mods.IsInterface() {
			return true
		}
	}
	return false
}

// resolveTypeName maps a supertype name written in source to a
// registered class: qualified names first, then the enclosing nest,
// the unit's own top-level types, explicit imports, the unit's
// package, and finally on-demand and implicit imports.
func (p *SourceProvider) resolveTypeName(file *parser.File, from *javasym.Class, name string) (*javasym.Class, bool) {
	if strings.Contains(name, ".") {
		if c, ok := p.registry.ResolveFromCanonicalName(name); ok {
			return c, true
		}
		return p.registry.ResolveFromCanonicalName(symtab.PrependPackageName(file.Package, name))
	}

	for scope := from; scope != nil; scope = scope.Enclosing {
		if scope.Name == name {
			return scope, true
		}
		if t, ok := scope.DeclaredType(name); ok {
			return t, true
		}
	}

	for _, t := range file.Types {
		if t.Name == name {
			return t, true
		}
	}

	for _, imp := range file.Imports {
		if imp.Static || imp.OnDemand {
			continue
		}
		if imp.Name == name || strings.HasSuffix(imp.Name, "."+name) {
			if c, ok := p.registry.ResolveFromCanonicalName(imp.Name); ok {
				return c, true
			}
		}
	}

	if c, ok := p.registry.ResolveFromCanonicalName(symtab.PrependPackageName(file.Package, name)); ok {
		return c, true
	}

	var onDemand []string
	for _, imp := range file.Imports {
		if imp.OnDemand && !imp.Static {
			onDemand = append(onDemand, imp.Name)
		}
	}
	onDemand = append(onDemand, p.implicitImports...)

	return symtab.ImportedOnDemand(onDemand, p.registry, file.Package).ResolveFirst(name)
}

func (p *SourceProvider) ensureObject() *javasym.Class {
	if c, ok := p.registry.ResolveFromCanonicalName(objectClassName); ok {
		return c
	}
	object := javasym.NewClass("java.lang", "Object", javasym.Public)
	if err := p.registry.Put(object); err != nil {
		p.logger.Warn().Err(err).Msg("registering Object")
	}
	return object
}
