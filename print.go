package coegg

import (
	"io"

	"github.com/altanh/coegg/errors"
)

// frame is a node being printed and the index of its next child.
type frame struct {
	id   Id
	next int
}

// MarshalText renders the expression as an S-expression: a leaf is its
// operator text, any other node is "(" op, then " " and each child in
// insertion order, then ")".
func (e *RExpr) MarshalText() ([]byte, error) {
	return e.appendText(make([]byte, 0, 4*len(e.nodes)))
}

// WriteTo writes the rendered expression to w.
func (e *RExpr) WriteTo(w io.Writer) (int64, error) {
	text, err := e.MarshalText()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(text)
	return int64(n), err
}

// String renders the expression. It panics where MarshalText fails: on a
// symbol the interner does not know, which Insert does not check, or on a
// node that does not exist, which only a zero RExpr can refer to.
func (e *RExpr) String() string {
	text, err := e.MarshalText()
	if err != nil {
		panic(err)
	}
	return string(text)
}

// appendText walks the tree depth first with an explicit stack so the
// depth of an expression is not bounded by the goroutine stack.
func (e *RExpr) appendText(buf []byte) ([]byte, error) {
	if int(e.root) >= len(e.nodes) {
		return nil, errors.NewOutOfBoundsError(uint32(e.root), len(e.nodes))
	}

	stack := []frame{{id: e.root}}
	for len(stack) > 0 {
		top := len(stack) - 1
		cur := stack[top]
		node := &e.nodes[cur.id]

		if cur.next == 0 {
			text, err := e.text(node.Symbol)
			if err != nil {
				return nil, err
			}
			if node.IsLeaf() {
				buf = append(buf, text...)
				stack = stack[:top]
				continue
			}
			buf = append(buf, '(')
			buf = append(buf, text...)
		}

		if cur.next == len(node.Children) {
			buf = append(buf, ')')
			stack = stack[:top]
			continue
		}

		child := node.Children[cur.next]
		if int(child) >= len(e.nodes) {
			return nil, errors.NewOutOfBoundsError(uint32(child), len(e.nodes))
		}
		if child >= cur.id {
			return nil, errors.NewForwardRefError(uint32(cur.id), uint32(child))
		}
		stack[top].next++
		buf = append(buf, ' ')
		stack = append(stack, frame{id: child})
	}
	return buf, nil
}
