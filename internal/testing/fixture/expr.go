// Package fixture builds expressions for tests. Any failure ends the
// test through Fatal on the given testing.TB.
package fixture

import (
	"strings"
	"testing"

	"github.com/altanh/coegg"
	"github.com/altanh/coegg/symbol"
)

// CanonicalText is the rendering of the expression built by Canonical.
const CanonicalText = "(d (c a (b a)))"

// Insert interns op and inserts it into b.
func Insert(t testing.TB, b *coegg.Builder, op string, children ...coegg.Id) coegg.Id {
	t.Helper()

	id, err := b.InsertText(op, children)
	if err != nil {
		t.Fatalf("error[%s] inserting %s%v", err, op, children)
	}
	return id
}

// Build builds b rooted at root.
func Build(t testing.TB, b *coegg.Builder, root coegg.Id) *coegg.RExpr {
	t.Helper()

	expr, err := b.Build(root)
	if err != nil {
		t.Fatalf("error[%s] building root %d", err, root)
	}
	return expr
}

// Canonical builds a, b(a), c(a, b), d(c) rooted at d.
func Canonical(t testing.TB) *coegg.RExpr {
	t.Helper()

	b := coegg.NewBuilder(symbol.NewTable())
	a := Insert(t, b, "a")
	bb := Insert(t, b, "b", a)
	c := Insert(t, b, "c", a, bb)
	d := Insert(t, b, "d", c)
	return Build(t, b, d)
}

// Chain builds a leaf x wrapped depth times in f and returns it with
// its expected rendering.
func Chain(t testing.TB, depth int) (*coegg.RExpr, string) {
	t.Helper()

	var (
		syms = symbol.NewTable()
		f    = syms.Intern("f")
		b    = coegg.NewBuilder(syms)
	)
	b.Grow(depth + 1)

	id := Insert(t, b, "x")
	for i := 0; i < depth; i++ {
		next, err := b.Insert(f, []coegg.Id{id})
		if err != nil {
			t.Fatalf("error[%s] inserting link %d", err, i)
		}
		id = next
	}

	want := strings.Repeat("(f ", depth) + "x" + strings.Repeat(")", depth)
	return Build(t, b, id), want
}
