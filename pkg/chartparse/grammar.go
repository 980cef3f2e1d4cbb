package chartparse

// Grammar is a read-only container of Rules plus a left-corner index
// used to restrict top-down spawning to rules whose first daughter
// could plausibly match a given completed category's name. The index
// is an optimisation (spec.md §9: "left-corner spawning is an
// optimisation, not a semantic commitment") — Spawn always yields
// exactly the same set of edges a full linear scan would, just faster
// for grammars with many rules.
//
// A Grammar is immutable after construction and may be shared freely
// across chart runs and, if the optional disjoint-cell parallelism of
// internal/parallel is used, across goroutines.
type Grammar struct {
	Rules []Rule

	// leftCornerIndex maps a left-corner category name to the indices
	// into Rules whose RHS[0] has that name. Actual feature
	// compatibility is still checked at spawn time, since that
	// depends on the runtime bindings of the completed category, not
	// just its name.
	leftCornerIndex map[string][]int
}

// NewGrammar builds a Grammar from a rule list, precomputing the
// left-corner index.
func NewGrammar(rules []Rule) *Grammar {
	cp := make([]Rule, len(rules))
	copy(cp, rules)

	idx := make(map[string][]int, len(cp))
	for i, r := range cp {
		name := r.LeftCorner().Name
		idx[name] = append(idx[name], i)
	}

	return &Grammar{Rules: cp, leftCornerIndex: idx}
}

// RulesWithLeftCorner returns the indices (stable, in grammar order)
// of rules whose first right-hand daughter shares lc's name.
func (g *Grammar) RulesWithLeftCorner(lc Category) []int {
	return g.leftCornerIndex[lc.Name]
}
