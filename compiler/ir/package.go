package ir

import "strings"

// Package is the translation unit's complete output: every global
// variable and function the Module compiled, each in declaration
// order.
type Package struct {
	Name    string
	Globals []*GlobalVariable
	Funcs   []*Function
}

func (p *Package) String() string {
	parts := make([]string, 0, len(p.Globals)+len(p.Funcs))
	for _, g := range p.Globals {
		parts = append(parts, "global "+g.Typ.String()+" "+g.Name)
	}
	for _, f := range p.Funcs {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, "\n\n")
}
