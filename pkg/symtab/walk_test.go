package symtab

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stackb/java-symtab/pkg/javasym"
)

func fieldStrings(fields []*javasym.Field) []string {
	var names []string
	for _, f := range fields {
		names = append(names, f.String())
	}
	return names
}

func classStrings(classes []*javasym.Class) []string {
	var names []string
	for _, c := range classes {
		names = append(names, c.CanonicalName())
	}
	return names
}

func TestInheritedMembersResolversFields(t *testing.T) {
	h := NewHierarchy()

	t.Run("public and protected inherited, private filtered", func(t *testing.T) {
		a := javasym.NewClass("p1", "A", javasym.Public)
		a.DeclareField(javasym.NewField("pub", "int", javasym.Public))
		a.DeclareField(javasym.NewField("prot", "int", javasym.Protected))
		a.DeclareField(javasym.NewField("priv", "int", javasym.Private))
		b := javasym.NewClass("p2", "B", javasym.Public)
		b.Supertypes = []*javasym.Class{a}

		_, fields := h.InheritedMembersResolvers(b)

		if diff := cmp.Diff([]string{"p1.A#pub"}, fieldStrings(fields.ResolveHere("pub"))); diff != "" {
			t.Errorf("pub (-want +got):\n%s", diff)
		}
		// b is a subtype of a, so protected is in even across packages
		if diff := cmp.Diff([]string{"p1.A#prot"}, fieldStrings(fields.ResolveHere("prot"))); diff != "" {
			t.Errorf("prot (-want +got):\n%s", diff)
		}
		if got := fields.ResolveHere("priv"); got != nil {
			t.Errorf("priv: want empty, got %v", fieldStrings(got))
		}
	})

	t.Run("nearer declaration hides farther", func(t *testing.T) {
		a := javasym.NewClass("p1", "A", javasym.Public)
		a.DeclareField(javasym.NewField("x", "int", javasym.Public))
		b := javasym.NewClass("p1", "B", javasym.Public)
		b.DeclareField(javasym.NewField("x", "long", javasym.Public))
		b.Supertypes = []*javasym.Class{a}
		c := javasym.NewClass("p1", "C", javasym.Public)
		c.Supertypes = []*javasym.Class{b}

		_, fields := h.InheritedMembersResolvers(c)

		if diff := cmp.Diff([]string{"p1.B#x"}, fieldStrings(fields.ResolveHere("x"))); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})

	t.Run("inaccessible nearer declaration still hides", func(t *testing.T) {
		// A (p1) declares public x; B (p2) extends A and declares
		// private x.  From C's scope the private B.x is not visible,
		// but it still hides A.x: the result is empty, not A.x.
		a := javasym.NewClass("p1", "A", javasym.Public)
		a.DeclareField(javasym.NewField("x", "int", javasym.Public))
		b := javasym.NewClass("p2", "B", javasym.Public)
		b.DeclareField(javasym.NewField("x", "int", javasym.Private))
		b.Supertypes = []*javasym.Class{a}
		c := javasym.NewClass("p2", "C", javasym.Public)
		c.Supertypes = []*javasym.Class{b}

		_, fields := h.InheritedMembersResolvers(c)

		if got := fields.ResolveHere("x"); got != nil {
			t.Errorf("want empty, got %v", fieldStrings(got))
		}
	})

	t.Run("diamond contributes one declaration", func(t *testing.T) {
		i0 := javasym.NewClass("p1", "I0", javasym.Public|javasym.Interface|javasym.Abstract)
		i0.DeclareField(javasym.NewField("F", "int", javasym.Public|javasym.Static|javasym.Final))
		i1 := javasym.NewClass("p1", "I1", javasym.Public|javasym.Interface|javasym.Abstract)
		i1.Supertypes = []*javasym.Class{i0}
		i2 := javasym.NewClass("p1", "I2", javasym.Public|javasym.Interface|javasym.Abstract)
		i2.Supertypes = []*javasym.Class{i0}
		c := javasym.NewClass("p1", "C", javasym.Public)
		c.Supertypes = []*javasym.Class{i1, i2}

		_, fields := h.InheritedMembersResolvers(c)

		if diff := cmp.Diff([]string{"p1.I0#F"}, fieldStrings(fields.ResolveHere("F"))); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})

	t.Run("hiding does not leak across sibling branches", func(t *testing.T) {
		// T implements I (declares x) and extends B whose superclass D
		// also declares x.  The I branch claims x first, but that must
		// not hide D.x reached through the unrelated B branch: both
		// survive as an ambiguous inherited field.
		i := javasym.NewClass("p1", "I", javasym.Public|javasym.Interface|javasym.Abstract)
		i.DeclareField(javasym.NewField("x", "int", javasym.Public|javasym.Static|javasym.Final))
		d := javasym.NewClass("p1", "D", javasym.Public)
		d.DeclareField(javasym.NewField("x", "long", javasym.Public))
		b := javasym.NewClass("p1", "B", javasym.Public)
		b.Supertypes = []*javasym.Class{d}
		tt := javasym.NewClass("p1", "T", javasym.Public)
		tt.Supertypes = []*javasym.Class{i, b}

		_, fields := h.InheritedMembersResolvers(tt)

		if diff := cmp.Diff([]string{"p1.I#x", "p1.D#x"}, fieldStrings(fields.ResolveHere("x"))); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})
}

func TestInheritedMembersResolversTypes(t *testing.T) {
	h := NewHierarchy()

	a := javasym.NewClass("p1", "A", javasym.Public)
	a.DeclareType(&javasym.Class{Name: "N", Mods: javasym.Public})
	a.DeclareType(&javasym.Class{Name: "P", Mods: javasym.Private})
	b := javasym.NewClass("p2", "B", javasym.Public)
	b.DeclareType(&javasym.Class{Name: "N", Mods: javasym.Protected})
	b.Supertypes = []*javasym.Class{a}
	c := javasym.NewClass("p2", "C", javasym.Public)
	c.Supertypes = []*javasym.Class{b}

	types, _ := h.InheritedMembersResolvers(c)

	if diff := cmp.Diff([]string{"p2.B.N"}, classStrings(types.ResolveHere("N"))); diff != "" {
		t.Errorf("N (-want +got):\n%s", diff)
	}
	if got := types.ResolveHere("P"); got != nil {
		t.Errorf("P: want empty, got %v", classStrings(got))
	}
}

func TestVisibleMembersResolvers(t *testing.T) {
	h := NewHierarchy()

	a := javasym.NewClass("p1", "A", javasym.Public)
	a.DeclareField(javasym.NewField("x", "int", javasym.Public))
	a.DeclareField(javasym.NewField("prot", "int", javasym.Protected))
	b := javasym.NewClass("p2", "B", javasym.Public)
	b.DeclareField(javasym.NewField("x", "int", javasym.Private))
	b.Supertypes = []*javasym.Class{a}

	t.Run("inaccessible own declaration hides inherited", func(t *testing.T) {
		// an unrelated viewer in p2: B.x is private to B's nest, yet
		// hides the public A.x
		viewer := javasym.NewClass("p2", "Unrelated", javasym.Public)

		_, fields := h.VisibleMembersResolvers(b, viewer, "p2")

		if got := fields.ResolveHere("x"); got != nil {
			t.Errorf("x: want empty, got %v", fieldStrings(got))
		}
		// protected in another package, viewer unrelated
		if got := fields.ResolveHere("prot"); got != nil {
			t.Errorf("prot: want empty, got %v", fieldStrings(got))
		}
	})

	t.Run("subtype viewer sees protected", func(t *testing.T) {
		viewer := javasym.NewClass("p3", "Sub", javasym.Public)
		viewer.Supertypes = []*javasym.Class{b}

		_, fields := h.VisibleMembersResolvers(b, viewer, "p3")

		if diff := cmp.Diff([]string{"p1.A#prot"}, fieldStrings(fields.ResolveHere("prot"))); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})

	t.Run("same nest viewer sees private", func(t *testing.T) {
		_, fields := h.VisibleMembersResolvers(b, b, "p2")

		if diff := cmp.Diff([]string{"p2.B#x"}, fieldStrings(fields.ResolveHere("x"))); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})
}
