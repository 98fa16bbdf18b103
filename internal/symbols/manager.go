// Package symbols provides the label table of an assembled program.
package symbols

import (
	"cmp"
	"maps"
	"slices"

	"github.com/retroenv/retrogolib/set"
)

// Kind defines what a label is bound to.
type Kind uint8

// All symbol kinds.
const (
	AddressKind  Kind = iota + 1 // offset inside the assembled image
	ConstantKind                 // literal value of an assignment
)

// Symbol is a label bound to an address or a constant value.
type Symbol struct {
	Name    string
	Kind    Kind
	Address uint16 // set for AddressKind
	Value   string // operand literal, set for ConstantKind
	Line    int    // line number of the definition
}

// IsAddress returns whether the symbol is bound to an address.
func (s Symbol) IsAddress() bool {
	return s.Kind == AddressKind
}

// IsConstant returns whether the symbol is bound to a constant value.
func (s Symbol) IsConstant() bool {
	return s.Kind == ConstantKind
}

// Redefinition records a label that was defined more than once.
type Redefinition struct {
	Previous Symbol
	Current  Symbol
}

// Builder collects symbol definitions. It is the only mutable form of the
// label table, Freeze converts it into a read-only Table.
type Builder struct {
	items         map[string]Symbol
	redefinitions []Redefinition
	frozen        bool
}

// NewBuilder creates a new empty symbol table builder.
func NewBuilder() *Builder {
	return &Builder{
		items: make(map[string]Symbol),
	}
}

// Define binds the symbol name. A later definition of the same name
// overrides the earlier one, the returned bool reports whether the name
// was defined before.
func (b *Builder) Define(sym Symbol) (Symbol, bool) {
	if b.frozen {
		panic("symbols: define on frozen builder")
	}

	previous, ok := b.items[sym.Name]
	if ok {
		b.redefinitions = append(b.redefinitions, Redefinition{
			Previous: previous,
			Current:  sym,
		})
	}
	b.items[sym.Name] = sym
	return previous, ok
}

// Get returns the symbol for the given name.
func (b *Builder) Get(name string) (Symbol, bool) {
	sym, ok := b.items[name]
	return sym, ok
}

// Freeze returns the completed read-only table. The builder can not be
// used for further definitions afterwards.
func (b *Builder) Freeze() Table {
	b.frozen = true
	return Table{
		items:         maps.Clone(b.items),
		redefinitions: append([]Redefinition(nil), b.redefinitions...),
	}
}

// Table is a completed, read-only label table.
type Table struct {
	items         map[string]Symbol
	redefinitions []Redefinition
}

// Get returns the symbol for the given name.
func (t Table) Get(name string) (Symbol, bool) {
	sym, ok := t.items[name]
	return sym, ok
}

// Has returns whether a symbol with the given name exists.
func (t Table) Has(name string) bool {
	_, ok := t.items[name]
	return ok
}

// Len returns the number of symbols in the table.
func (t Table) Len() int {
	return len(t.items)
}

// Redefinitions returns all label definitions that overrode an earlier one.
func (t Table) Redefinitions() []Redefinition {
	return append([]Redefinition(nil), t.redefinitions...)
}

// Sorted returns all symbols, address labels sorted by address first
// followed by the constants, each group sorted by name.
func (t Table) Sorted() []Symbol {
	items := make([]Symbol, 0, len(t.items))
	for _, item := range t.items {
		items = append(items, item)
	}
	slices.SortFunc(items, func(a, b Symbol) int {
		if a.Kind != b.Kind {
			return cmp.Compare(a.Kind, b.Kind)
		}
		if a.IsAddress() && a.Address != b.Address {
			return cmp.Compare(a.Address, b.Address)
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return items
}

// Addresses returns the set of all addresses that have a label.
func (t Table) Addresses() set.Set[uint16] {
	addresses := set.New[uint16]()
	for _, item := range t.items {
		if item.IsAddress() {
			addresses.Add(item.Address)
		}
	}
	return addresses
}
