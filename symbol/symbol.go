// Package symbol interns operator text into small comparable handles.
package symbol

import (
	"sync"

	"github.com/altanh/coegg/errors"
)

type (
	// Symbol is an interned operator name. Symbols are only meaningful
	// to the Interner that produced them.
	Symbol uint32

	// Interner maps text to symbols and back.
	Interner interface {
		Intern(text string) Symbol
		Lookup(sym Symbol) (string, bool)
	}

	// Table is an Interner backed by a map and a dense slice of names.
	// It is safe for concurrent use.
	Table struct {
		mu    sync.RWMutex
		ids   map[string]Symbol
		names []string
	}
)

// None never names interned text.
const None Symbol = 0

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		ids:   make(map[string]Symbol),
		names: []string{""},
	}
}

// Intern returns the symbol for text, allocating the next free one the
// first time text is seen.
func (t *Table) Intern(text string) Symbol {
	t.mu.RLock()
	sym, ok := t.ids[text]
	t.mu.RUnlock()
	if ok {
		return sym
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// another writer may have won the race
	if sym, ok := t.ids[text]; ok {
		return sym
	}

	sym = Symbol(len(t.names))
	t.ids[text] = sym
	t.names = append(t.names, text)
	return sym
}

// Lookup returns the text sym was interned from.
func (t *Table) Lookup(sym Symbol) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if sym == None || int(sym) >= len(t.names) {
		return "", false
	}
	return t.names[sym], true
}

// MustLookup is like Lookup but panics if sym is unknown.
func (t *Table) MustLookup(sym Symbol) string {
	text, ok := t.Lookup(sym)
	if !ok {
		panic(errors.NewUnknownSymbolError(uint32(sym)))
	}
	return text
}

// Len returns the number of interned symbols.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.names) - 1
}
