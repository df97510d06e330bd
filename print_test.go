package coegg_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/altanh/coegg"
	"github.com/altanh/coegg/errors"
	"github.com/altanh/coegg/internal/testing/fixture"
	"github.com/altanh/coegg/symbol"
	"github.com/chzyer/test"
)

func TestPrintCanonical(t *testing.T) {
	defer test.New(t)

	expr := fixture.Canonical(t)
	test.Equal(expr.Root(), coegg.Id(3))
	test.Equal(expr.String(), fixture.CanonicalText)
}

func TestPrintShapes(t *testing.T) {
	for _, testcase := range []struct {
		name     string
		build    func(t *testing.T, b *coegg.Builder) coegg.Id
		expected string
	}{
		{
			name: "single leaf",
			build: func(t *testing.T, b *coegg.Builder) coegg.Id {
				return fixture.Insert(t, b, "x")
			},
			expected: "x",
		},
		{
			name: "leaf keeps its text",
			build: func(t *testing.T, b *coegg.Builder) coegg.Id {
				return fixture.Insert(t, b, "?x-1.5")
			},
			expected: "?x-1.5",
		},
		{
			name: "children in order",
			build: func(t *testing.T, b *coegg.Builder) coegg.Id {
				z := fixture.Insert(t, b, "z")
				y := fixture.Insert(t, b, "y")
				x := fixture.Insert(t, b, "x")
				return fixture.Insert(t, b, "f", x, y, z)
			},
			expected: "(f x y z)",
		},
		{
			name: "repeated child",
			build: func(t *testing.T, b *coegg.Builder) coegg.Id {
				x := fixture.Insert(t, b, "x")
				y := fixture.Insert(t, b, "y")
				return fixture.Insert(t, b, "f", x, y, x)
			},
			expected: "(f x y x)",
		},
		{
			name: "structurally equal children",
			build: func(t *testing.T, b *coegg.Builder) coegg.Id {
				x1 := fixture.Insert(t, b, "x")
				y := fixture.Insert(t, b, "y")
				x2 := fixture.Insert(t, b, "x")
				return fixture.Insert(t, b, "f", x1, y, x2)
			},
			expected: "(f x y x)",
		},
		{
			name: "nested",
			build: func(t *testing.T, b *coegg.Builder) coegg.Id {
				one := fixture.Insert(t, b, "1")
				two := fixture.Insert(t, b, "2")
				add := fixture.Insert(t, b, "+", one, two)
				neg := fixture.Insert(t, b, "neg", add)
				return fixture.Insert(t, b, "*", neg, add, two)
			},
			expected: "(* (neg (+ 1 2)) (+ 1 2) 2)",
		},
	} {
		b := coegg.NewBuilder(symbol.NewTable())
		root := testcase.build(t, b)
		expr := fixture.Build(t, b, root)

		if got := expr.String(); got != testcase.expected {
			t.Errorf("%s: Values differ: '%s' != '%s'", testcase.name, got, testcase.expected)
		}
	}
}

func TestPrintIsDeterministic(t *testing.T) {
	defer test.New(t)

	expr := fixture.Canonical(t)
	first, err := expr.MarshalText()
	test.Nil(err)
	second, err := expr.MarshalText()
	test.Nil(err)

	test.EqualBytes(second, first)
	test.Equal(expr.Len(), 4)
}

func TestPrintWriteTo(t *testing.T) {
	defer test.New(t)

	var buf bytes.Buffer
	n, err := fixture.Canonical(t).WriteTo(&buf)
	test.Nil(err)
	test.Equal(n, int64(len(fixture.CanonicalText)))
	test.Equal(buf.String(), fixture.CanonicalText)
}

func TestPrintDeepChain(t *testing.T) {
	expr, want := fixture.Chain(t, 100000)

	text, err := expr.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(text) != want {
		t.Fatalf("deep chain rendered %d bytes, want %d", len(text), len(want))
	}
}

func TestPrintConcurrent(t *testing.T) {
	expr, want := fixture.Chain(t, 64)

	var (
		wg   sync.WaitGroup
		errs = make(chan string, 16)
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if got := expr.String(); got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("concurrent render differs: %s", got)
	}
}

func TestPrintZeroValue(t *testing.T) {
	defer test.New(t)

	var expr coegg.RExpr
	_, err := expr.MarshalText()
	test.Equal(err, errors.ErrOutOfBounds)

	var buf bytes.Buffer
	n, err := expr.WriteTo(&buf)
	test.Equal(err, errors.ErrOutOfBounds)
	test.Equal(n, int64(0))

	defer func() {
		r := recover()
		rerr, ok := r.(error)
		test.True(ok)
		test.True(errors.Is(rerr, errors.ErrOutOfBounds))
	}()
	_ = expr.String()
}

func TestPrintUnknownSymbol(t *testing.T) {
	defer test.New(t)

	b := coegg.NewBuilder(symbol.NewTable())
	x := fixture.Insert(t, b, "x")
	f, err := b.Insert(symbol.Symbol(99), []coegg.Id{x})
	test.Nil(err)

	_, err = fixture.Build(t, b, f).MarshalText()
	test.Equal(err, errors.ErrUnknownSymbol)
	test.CheckError(err, "unknown symbol 99")
}

func TestPrintStringPanicsOnUnknownSymbol(t *testing.T) {
	defer test.New(t)

	b := coegg.NewBuilder(symbol.NewTable())
	x := fixture.Insert(t, b, "x")
	f, err := b.Insert(symbol.Symbol(5), []coegg.Id{x})
	test.Nil(err)
	expr := fixture.Build(t, b, f)

	defer func() {
		r := recover()
		rerr, ok := r.(error)
		test.True(ok)
		test.True(errors.Is(rerr, errors.ErrUnknownSymbol))
	}()
	_ = expr.String()
	t.Error("expected String to panic")
}

func BenchmarkMarshalText(b *testing.B) {
	expr, _ := fixture.Chain(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := expr.MarshalText(); err != nil {
			b.Fatal(err)
		}
	}
}
