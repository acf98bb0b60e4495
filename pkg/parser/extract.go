package parser

import (
	"github.com/rs/zerolog"
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/stackb/java-symtab/pkg/javasym"
)

// extractor walks one parse tree, collecting declarations into its
// file.  Anonymous and local classes are not visited: they declare no
// member visible by simple name outside their body.
type extractor struct {
	src    []byte
	file   *File
	logger zerolog.Logger
}

func (ex *extractor) program(root *sitter.Node) {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		switch node.Type() {
		case "package_declaration":
			ex.file.Package = ex.packageName(node)
		case "import_declaration":
			ex.file.Imports = append(ex.file.Imports, ex.importDecl(node))
		case "class_declaration", "interface_declaration", "enum_declaration":
			if t := ex.typeDecl(node); t != nil {
				t.Package = ex.file.Package
				ex.file.Types = append(ex.file.Types, t)
			}
		}
	}
}

func (ex *extractor) packageName(node *sitter.Node) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "identifier", "scoped_identifier":
			return child.Content(ex.src)
		}
	}
	return ""
}

func (ex *extractor) importDecl(node *sitter.Node) Import {
	var imp Import
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "static":
			imp.Static = true
		case "asterisk":
			imp.OnDemand = true
		case "identifier", "scoped_identifier":
			imp.Name = child.Content(ex.src)
		}
	}
	return imp
}

func (ex *extractor) typeDecl(node *sitter.Node) *javasym.Class {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		ex.logger.Debug().Str("file", ex.file.Filename).Str("node", node.Type()).Msg("skipping unnamed type declaration")
		return nil
	}

	mods := ex.modifiers(node)
	switch node.Type() {
	case "interface_declaration":
		mods |= javasym.Interface | javasym.Abstract
	case "enum_declaration":
		mods |= javasym.Enum | javasym.Final
	}

	c := &javasym.Class{Name: nameNode.Content(ex.src), Mods: mods}

	var supers []string
	if sc := node.ChildByFieldName("superclass"); sc != nil {
		// 'extends' with a single type
		for i := 0; i < int(sc.NamedChildCount()); i++ {
			supers = append(supers, ex.erasedTypeName(sc.NamedChild(i)))
		}
	}
	if si := node.ChildByFieldName("interfaces"); si != nil {
		// 'implements' with a type list
		supers = append(supers, ex.typeList(si)...)
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		// 'extends' of an interface declaration
		if child := node.NamedChild(i); child.Type() == "extends_interfaces" {
			supers = append(supers, ex.typeList(child)...)
		}
	}
	if len(supers) > 0 {
		ex.file.superNames[c] = supers
	}

	if body := node.ChildByFieldName("body"); body != nil {
		ex.typeBody(c, body)
	}
	return c
}

func (ex *extractor) typeBody(c *javasym.Class, body *sitter.Node) {
	for i := 0; i < int(body.NamedChildCount()); i++ {
		node := body.NamedChild(i)
		switch node.Type() {
		case "field_declaration", "constant_declaration":
			ex.fieldDecl(c, node)
		case "method_declaration":
			ex.methodDecl(c, node)
		case "class_declaration", "interface_declaration", "enum_declaration":
			if nested := ex.typeDecl(node); nested != nil {
				c.DeclareType(nested)
			}
		case "enum_constant":
			// implicitly public static final fields of the enum type
			if name := node.ChildByFieldName("name"); name != nil {
				c.DeclareField(javasym.NewField(name.Content(ex.src), c.Name, javasym.Public|javasym.Static|javasym.Final))
			}
		case "enum_body_declarations":
			ex.typeBody(c, node)
		}
	}
}

func (ex *extractor) fieldDecl(c *javasym.Class, node *sitter.Node) {
	mods := ex.modifiers(node)
	if c.Mods.IsInterface() {
		// interface fields are implicitly public constants
		mods |= javasym.Public | javasym.Static | javasym.Final
	}
	typeName := ex.erasedTypeName(node.ChildByFieldName("type"))
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		if name := child.ChildByFieldName("name"); name != nil {
			c.DeclareField(javasym.NewField(name.Content(ex.src), typeName, mods))
		}
	}
}

func (ex *extractor) methodDecl(c *javasym.Class, node *sitter.Node) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	mods := ex.modifiers(node)
	if c.Mods.IsInterface() && mods.Access() == javasym.PackagePrivate {
		// interface methods are implicitly public
		mods |= javasym.Public
	}
	m := javasym.NewMethod(nameNode.Content(ex.src), mods)
	m.Return = ex.erasedTypeName(node.ChildByFieldName("type"))
	if params := node.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.NamedChildCount()); i++ {
			child := params.NamedChild(i)
			switch child.Type() {
			case "formal_parameter":
				m.Params = append(m.Params, ex.erasedTypeName(child.ChildByFieldName("type")))
			case "spread_parameter":
				// varargs erase to an array parameter
				m.Params = append(m.Params, ex.erasedTypeName(child.NamedChild(0))+"[]")
			}
		}
	}
	c.DeclareMethod(m)
}

func (ex *extractor) modifiers(node *sitter.Node) javasym.Modifiers {
	var mods javasym.Modifiers
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() != "modifiers" {
			continue
		}
		for j := 0; j < int(child.ChildCount()); j++ {
			if bit, ok := javasym.ParseModifier(child.Child(j).Type()); ok {
				mods |= bit
			}
		}
	}
	return mods
}

// typeList collects the erased type names under an 'implements' or
// interface 'extends' clause.
func (ex *extractor) typeList(node *sitter.Node) (names []string) {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "type_list" {
			names = append(names, ex.typeList(child)...)
			continue
		}
		names = append(names, ex.erasedTypeName(child))
	}
	return
}

// erasedTypeName returns the type name as written, with type arguments
// dropped.
func (ex *extractor) erasedTypeName(node *sitter.Node) string {
	if node == nil {
		return ""
	}
	switch node.Type() {
	case "generic_type":
		return ex.erasedTypeName(node.NamedChild(0))
	case "array_type":
		element := ex.erasedTypeName(node.ChildByFieldName("element"))
		if dims := node.ChildByFieldName("dimensions"); dims != nil {
			return element + dims.Content(ex.src)
		}
		return element
	default:
		return node.Content(ex.src)
	}
}
