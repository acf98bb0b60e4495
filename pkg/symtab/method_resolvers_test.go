package symtab

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/stackb/java-symtab/pkg/javasym"
)

func TestOwnMethodResolver(t *testing.T) {
	h := NewHierarchy()

	t.Run("override keeps nearest declaration", func(t *testing.T) {
		a := javasym.NewClass("p1", "A", javasym.Public)
		a.DeclareMethod(javasym.NewMethod("m", javasym.Public, "int"))
		a.DeclareMethod(javasym.NewMethod("m", javasym.Public, "String"))
		b := javasym.NewClass("p1", "B", javasym.Public)
		b.DeclareMethod(javasym.NewMethod("m", javasym.Public, "int"))
		b.Supertypes = []*javasym.Class{a}

		got := methodStrings(h.OwnMethodResolver(b).ResolveHere("m"))
		want := []string{"p1.B#m(int)", "p1.A#m(String)"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})

	t.Run("diamond interface default collapses", func(t *testing.T) {
		i1 := javasym.NewClass("p1", "I1", javasym.Public|javasym.Interface|javasym.Abstract)
		i1.DeclareMethod(javasym.NewMethod("m", javasym.Public))
		i2 := javasym.NewClass("p1", "I2", javasym.Public|javasym.Interface|javasym.Abstract)
		i2.DeclareMethod(javasym.NewMethod("m", javasym.Public))
		c := javasym.NewClass("p1", "C", javasym.Public)
		c.Supertypes = []*javasym.Class{i1, i2}

		got := methodStrings(h.OwnMethodResolver(c).ResolveHere("m"))
		if diff := cmp.Diff([]string{"p1.I1#m()"}, got); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})

	t.Run("identity equivalence keeps both branches", func(t *testing.T) {
		// with a relation that only collapses the same declaration,
		// diamond re-visits still dedup but sibling signatures survive
		hid := NewHierarchy()
		hid.OverrideEquivalent = func(m1, m2 *javasym.Method) bool { return m1 == m2 }

		i1 := javasym.NewClass("p1", "I1", javasym.Public|javasym.Interface|javasym.Abstract)
		i1.DeclareMethod(javasym.NewMethod("m", javasym.Public))
		i2 := javasym.NewClass("p1", "I2", javasym.Public|javasym.Interface|javasym.Abstract)
		i2.DeclareMethod(javasym.NewMethod("m", javasym.Public))
		c := javasym.NewClass("p1", "C", javasym.Public)
		c.Supertypes = []*javasym.Class{i1, i2}

		got := methodStrings(hid.OwnMethodResolver(c).ResolveHere("m"))
		want := []string{"p1.I1#m()", "p1.I2#m()"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})

	t.Run("private inherited method excluded", func(t *testing.T) {
		a := javasym.NewClass("p1", "A", javasym.Public)
		a.DeclareMethod(javasym.NewMethod("m", javasym.Private))
		b := javasym.NewClass("p1", "B", javasym.Public)
		b.Supertypes = []*javasym.Class{a}

		if got := h.OwnMethodResolver(b).ResolveHere("m"); got != nil {
			t.Errorf("want empty, got %v", methodStrings(got))
		}
	})

	t.Run("own private method included", func(t *testing.T) {
		b := javasym.NewClass("p1", "B", javasym.Public)
		b.DeclareMethod(javasym.NewMethod("n", javasym.Private))

		got := methodStrings(h.OwnMethodResolver(b).ResolveHere("n"))
		if diff := cmp.Diff([]string{"p1.B#n()"}, got); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})
}

func TestStaticImportMethodResolver(t *testing.T) {
	h := NewHierarchy()

	container := javasym.NewClass("p1", "Util", javasym.Public)
	container.DeclareMethod(javasym.NewMethod("of", javasym.Public|javasym.Static, "int"))
	container.DeclareMethod(javasym.NewMethod("of", javasym.PackagePrivate|javasym.Static, "long"))
	container.DeclareMethod(javasym.NewMethod("of", javasym.Protected|javasym.Static, "String"))
	container.DeclareMethod(javasym.NewMethod("of", javasym.Public, "double")) // not static

	for name, tc := range map[string]struct {
		accessPackage string
		want          []string
	}{
		"same package sees package and protected": {
			accessPackage: "p1",
			want:          []string{"p1.Util#of(int)", "p1.Util#of(long)", "p1.Util#of(String)"},
		},
		"different package sees public only": {
			accessPackage: "p2",
			want:          []string{"p1.Util#of(int)"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			r := h.StaticImportMethodResolver(container, tc.accessPackage, "of")
			got := methodStrings(r.ResolveHere("of"))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}

	t.Run("inherited statics resolve through the container", func(t *testing.T) {
		base := javasym.NewClass("p1", "Base", javasym.Public)
		inherited := base.DeclareMethod(javasym.NewMethod("of", javasym.Public|javasym.Static))
		sub := javasym.NewClass("p1", "Sub", javasym.Public)
		sub.Supertypes = []*javasym.Class{base}

		r := h.StaticImportMethodResolver(sub, "p2", "of")
		got, ok := r.ResolveFirst("of")
		if !ok || got != inherited {
			t.Errorf("ResolveFirst(of): want %v, got %v (%t)", inherited, got, ok)
		}
	})
}
