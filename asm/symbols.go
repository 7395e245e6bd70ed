package asm

import "github.com/maxgmr/mfs16go/encoder"

// Variable is a named value bound by `name = literal;`, per spec.md §3.
type Variable struct {
	Width encoder.Width
	Value uint64
}

// SymbolTable holds the variable and label bindings built during pass 1
// and consumed during pass 2, matching spec.md §3's assembler symbol
// tables and the teacher's parser.SymbolTable split between variables
// and labels.
type SymbolTable struct {
	Variables map[string]Variable
	// Labels maps a label name to its resolved address. A label present
	// in the map with ok=false in labelResolved has been declared but not
	// yet resolved (never happens after pass 1 completes without error,
	// but the two-step state models spec.md §3's "optional resolved
	// address").
	Labels map[string]uint32
	// labelResolved tracks which entries in Labels are final, since the
	// zero value of uint32 is a legitimate address.
	labelResolved map[string]bool
	// DeclTokens records the token index of every label declaration (the
	// `ident:` token itself), so pass-2 rewriting skips substituting the
	// declaration site itself, per spec.md §3/§9.
	DeclTokens map[int]bool
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		Variables:     map[string]Variable{},
		Labels:        map[string]uint32{},
		labelResolved: map[string]bool{},
		DeclTokens:    map[int]bool{},
	}
}

// DeclareLabel records a label at addr. Re-declaration is a pass-1 error.
func (st *SymbolTable) DeclareLabel(name string, addr uint32) bool {
	if st.labelResolved[name] {
		return false
	}
	st.Labels[name] = addr
	st.labelResolved[name] = true
	return true
}

// ResolveLabel returns a label's address, if known.
func (st *SymbolTable) ResolveLabel(name string) (uint32, bool) {
	_, ok := st.labelResolved[name]
	if !ok {
		return 0, false
	}
	return st.Labels[name], ok
}

// SetVariable records or overwrites a variable binding.
func (st *SymbolTable) SetVariable(name string, v Variable) { st.Variables[name] = v }

// ResolveVariable returns a variable's value, if bound.
func (st *SymbolTable) ResolveVariable(name string) (Variable, bool) {
	v, ok := st.Variables[name]
	return v, ok
}

// IsKnown reports whether name is bound to either a variable or a
// resolved label.
func (st *SymbolTable) IsKnown(name string) bool {
	if _, ok := st.Variables[name]; ok {
		return true
	}
	return st.labelResolved[name]
}
