package coegg

import (
	"math"
	"slices"

	"github.com/altanh/coegg/errors"
	"github.com/altanh/coegg/symbol"
)

const logNS = "coegg.Builder"

// Builder accumulates the nodes of one expression. A node may only refer
// to nodes inserted before it. A Builder is not safe for concurrent use
// and can be built only once.
type Builder struct {
	syms  symbol.Interner
	nodes []ENode
	built bool
	logf  LogFn
}

// NewBuilder creates an empty builder whose symbols come from syms.
func NewBuilder(syms symbol.Interner) *Builder {
	return &Builder{
		syms: syms,
		logf: NewLog(logNS, false),
	}
}

// SetDebug enables or disables logging of inserts and builds.
func (b *Builder) SetDebug(d bool) {
	b.logf = NewLog(logNS, d)
}

// Grow reserves room for n more nodes.
func (b *Builder) Grow(n int) {
	if n > 0 && !b.built {
		b.nodes = slices.Grow(b.nodes, n)
	}
}

// Len returns the number of nodes inserted so far.
func (b *Builder) Len() int { return len(b.nodes) }

// Symbols returns the builder's interner.
func (b *Builder) Symbols() symbol.Interner { return b.syms }

// Insert appends a node applying sym to children and returns its id,
// which is always the number of nodes inserted before it. Every child
// must be an id already returned by this builder; otherwise nothing is
// inserted and an out of bounds error is returned.
func (b *Builder) Insert(sym symbol.Symbol, children []Id) (Id, error) {
	if b.built {
		return 0, errors.NewBuilderDoneError()
	}
	if uint64(len(b.nodes)) > math.MaxUint32 {
		return 0, errors.NewTooManyNodesError(len(b.nodes))
	}
	for _, child := range children {
		if int(child) >= len(b.nodes) {
			b.logf("insert rejected: child %d, %d nodes", child, len(b.nodes))
			return 0, errors.NewOutOfBoundsError(uint32(child), len(b.nodes))
		}
	}

	id := Id(len(b.nodes))
	b.nodes = append(b.nodes, ENode{
		Symbol:   sym,
		Children: slices.Clone(children),
	})
	b.logf("insert %d: symbol %d, children %v", id, sym, children)
	return id, nil
}

// InsertText interns op and inserts it like Insert. It fails if the
// builder was created without an interner.
func (b *Builder) InsertText(op string, children []Id) (Id, error) {
	if b.built {
		return 0, errors.NewBuilderDoneError()
	}
	if b.syms == nil {
		return 0, errors.NewNoInternerError()
	}
	return b.Insert(b.syms.Intern(op), children)
}

// Build freezes the inserted nodes into an expression rooted at root.
// The builder hands its nodes over and cannot be used afterwards.
func (b *Builder) Build(root Id) (*RExpr, error) {
	if b.built {
		return nil, errors.NewBuilderDoneError()
	}
	if int(root) >= len(b.nodes) {
		return nil, errors.NewOutOfBoundsError(uint32(root), len(b.nodes))
	}

	expr := &RExpr{
		root:  root,
		nodes: b.nodes,
		syms:  b.syms,
	}
	b.nodes = nil
	b.built = true
	b.logf("build: root %d, %d nodes", root, len(expr.nodes))
	return expr, nil
}
