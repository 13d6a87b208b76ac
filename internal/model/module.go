package model

import "sort"

// ModuleDescriptor is a third-party module discovered in a build descriptor.
type ModuleDescriptor struct {
	Name string
	File Path
}

// ModuleSet is a set of module identifiers.
type ModuleSet map[string]struct{}

// NewModuleSet returns a set holding names.
func NewModuleSet(names ...string) ModuleSet {
	s := make(ModuleSet, len(names))
	for _, n := range names {
		s.Add(n)
	}

	return s
}

// Add records name. Adding an existing name is a no-op.
func (s ModuleSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name is in the set.
func (s ModuleSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of identifiers.
func (s ModuleSet) Len() int {
	return len(s)
}

// Union adds every identifier of other.
func (s ModuleSet) Union(other ModuleSet) {
	for n := range other {
		s.Add(n)
	}
}

// Sorted returns the identifiers in lexical order.
func (s ModuleSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}

	sort.Strings(out)

	return out
}

// CompanionDecision is the outcome of resolving an optional third-party family
// (for example OpenEXR with its Imath companion).
type CompanionDecision struct {
	Name        string
	Flag        Definition
	Primary     ModuleSet
	Secondary   ModuleSet
	Modules     []string
	Diagnostics []string
}
