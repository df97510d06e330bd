// Package coegg builds immutable recursive expressions: trees of
// operator applications stored in a single insertion-ordered node
// sequence, meant as the term representation of a rewriting engine.
//
// Nodes are appended through a Builder, which hands out dense ids and
// only accepts children that were inserted before their parent. Build
// freezes the sequence into an RExpr anchored at a root id. An RExpr never
// changes afterwards and renders as a fully parenthesized S-expression.
package coegg

import (
	"fmt"
	"io"
	"slices"

	"github.com/altanh/coegg/errors"
	"github.com/altanh/coegg/symbol"
)

type (
	// Id is the position of a node in the sequence that produced it.
	Id uint32

	// ENode is one operator applied to earlier nodes.
	ENode struct {
		Symbol   symbol.Symbol
		Children []Id
	}

	// RExpr is a built expression. It is read only and safe for
	// concurrent use.
	RExpr struct {
		root  Id
		nodes []ENode
		syms  symbol.Interner
	}
)

// IsLeaf reports whether the node has no children.
func (n ENode) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsEqual reports whether both nodes apply the same symbol to the same
// children, in the same order.
func (n ENode) IsEqual(other ENode) bool {
	return n.Symbol == other.Symbol && slices.Equal(n.Children, other.Children)
}

func (n ENode) clone() ENode {
	return ENode{
		Symbol:   n.Symbol,
		Children: slices.Clone(n.Children),
	}
}

// Root returns the id of the root node.
func (e *RExpr) Root() Id { return e.root }

// Len returns the number of nodes in the expression.
func (e *RExpr) Len() int { return len(e.nodes) }

// Symbols returns the interner the expression's symbols come from.
func (e *RExpr) Symbols() symbol.Interner { return e.syms }

// Node returns a copy of the node stored at id.
func (e *RExpr) Node(id Id) (ENode, error) {
	if int(id) >= len(e.nodes) {
		return ENode{}, errors.NewOutOfBoundsError(uint32(id), len(e.nodes))
	}
	return e.nodes[id].clone(), nil
}

// IsEqual reports whether both expressions have the same root and the
// same node sequence. Symbols are compared by the text they resolve to,
// so expressions built over different interners can be equal. A symbol
// that does not resolve is never equal to anything.
func (e *RExpr) IsEqual(other *RExpr) bool {
	if e == other {
		return true
	}
	if e == nil || other == nil {
		return false
	}
	if e.root != other.root || len(e.nodes) != len(other.nodes) {
		return false
	}
	for i := range e.nodes {
		n, o := e.nodes[i], other.nodes[i]
		if !slices.Equal(n.Children, o.Children) {
			return false
		}
		if !e.sameSymbol(n.Symbol, other, o.Symbol) {
			return false
		}
	}
	return true
}

func (e *RExpr) sameSymbol(sym symbol.Symbol, other *RExpr, osym symbol.Symbol) bool {
	text, err := e.text(sym)
	if err != nil {
		return false
	}
	otext, err := other.text(osym)
	if err != nil {
		return false
	}
	return text == otext
}

// Dump writes the node sequence to w, one node per line. Nothing is
// written if a symbol cannot be resolved.
func (e *RExpr) Dump(w io.Writer) error {
	var buf []byte
	for i, node := range e.nodes {
		text, err := e.text(node.Symbol)
		if err != nil {
			return err
		}
		buf = fmt.Appendf(buf, "%d: %s", i, text)
		for _, child := range node.Children {
			buf = fmt.Appendf(buf, " %d", child)
		}
		if Id(i) == e.root {
			buf = append(buf, " <- root"...)
		}
		buf = append(buf, '\n')
	}
	_, err := w.Write(buf)
	return err
}

func (e *RExpr) text(sym symbol.Symbol) (string, error) {
	if e.syms == nil {
		return "", errors.NewUnknownSymbolError(uint32(sym))
	}
	text, ok := e.syms.Lookup(sym)
	if !ok {
		return "", errors.NewUnknownSymbolError(uint32(sym))
	}
	return text, nil
}
