// Package errors defines the failures reported while building and
// rendering recursive expressions.
//
// Every error is a logex trace error: it remembers the call site that
// produced it, and logex.DecodeError prints that trace. Use Is to classify
// an error against one of the exported sentinels.
package errors

import (
	goerrors "errors"

	"github.com/chzyer/logex"
)

var (
	ErrOutOfBounds   = logex.Define("id %d out of bounds (%d nodes)")
	ErrForwardRef    = logex.Define("node %d refers forward to %d")
	ErrBuilderDone   = logex.Define("builder already built")
	ErrTooManyNodes  = logex.Define("id space exhausted at %d nodes")
	ErrUnknownSymbol = logex.Define("unknown symbol %d")
	ErrGrammar       = logex.Define("invalid output grammar: %v")
	ErrNoInterner    = logex.Define("builder has no symbol interner")
)

// NewOutOfBoundsError reports a reference to id in a sequence of length
// nodes.
func NewOutOfBoundsError(id uint32, length int) error {
	return ErrOutOfBounds.Format(id, length)
}

// NewForwardRefError reports a node whose child does not precede it.
func NewForwardRefError(parent, child uint32) error {
	return ErrForwardRef.Format(parent, child)
}

func NewBuilderDoneError() error {
	return logex.TraceError(ErrBuilderDone)
}

func NewNoInternerError() error {
	return logex.TraceError(ErrNoInterner)
}

func NewTooManyNodesError(length int) error {
	return ErrTooManyNodes.Format(length)
}

func NewUnknownSymbolError(sym uint32) error {
	return ErrUnknownSymbol.Format(sym)
}

func NewGrammarError(err error) error {
	return ErrGrammar.Format(err)
}

// Is reports whether err, or any error it wraps, was created from target.
func Is(err, target error) bool {
	for err != nil {
		if logex.Equal(err, target) {
			return true
		}
		err = goerrors.Unwrap(err)
	}
	return false
}
