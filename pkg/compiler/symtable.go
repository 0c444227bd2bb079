package compiler

import (
	"fmt"
	"sort"
	"strings"
)

// SymbolTable maps names bound by let statements to their values.
// There is a single flat namespace; binding an existing name overwrites it.
type SymbolTable struct {
	vars map[string]Value
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{vars: make(map[string]Value)}
}

// Bind associates name with v, replacing any previous binding.
func (s *SymbolTable) Bind(name string, v Value) {
	s.vars[name] = v
}

// Lookup returns the value bound to name and whether it was found.
func (s *SymbolTable) Lookup(name string) (Value, bool) {
	v, ok := s.vars[name]
	return v, ok
}

func (s *SymbolTable) Len() int {
	return len(s.vars)
}

// Names returns the bound names in sorted order.
func (s *SymbolTable) Names() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns a deterministically ordered dump of the table.
func (s *SymbolTable) String() string {
	if len(s.vars) == 0 {
		return "Symbols: (empty)\n"
	}
	var sb strings.Builder
	sb.WriteString("Symbols:\n")
	for _, name := range s.Names() {
		fmt.Fprintf(&sb, "  %-20s  %s\n", name, s.vars[name])
	}
	return sb.String()
}
