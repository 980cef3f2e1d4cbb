package chartparse

import "sort"

// Rule is one production of a context-free grammar: a left-hand
// category, an ordered sequence of right-hand daughter categories, and
// a precomputed constraint descriptor recording, for each feature name
// re-entrant in the rule, the positions at which it appears.
//
// A re-entrancy is a bare feature name (no bound value) appearing at
// more than one position of the rule's daughters, or shared between a
// daughter and the mother; it declares that those positions must carry
// the same atomic value once observed, without committing to which
// value. Re-entrancy names are distinct from plain k:v bindings, which
// live inside the Category values themselves.
//
// A lexical rule has exactly one daughter, which is a terminal symbol
// (a word, not a nonterminal category name). A terminal is a symbol
// that no rule has on its left-hand side; neither Rule nor Grammar
// records which symbols those are.
type Rule struct {
	LHS Category
	RHS []Category

	// constraints is (lhsKeys, rhsKeys) as described in spec.md §3:
	// lhsKeys is the set of re-entrant feature names mentioned on the
	// mother; rhsKeys[i] is the set mentioned on the i-th daughter.
	// Re-entrancy names that appear only on the mother are discarded
	// at construction time, since they would be no-ops (nothing to
	// percolate them from).
	constraints constraintSet
}

// constraintSet is Rule's precomputed re-entrancy descriptor; Edge
// carries the same two fields in its own edgeConstraints type. lhsKeys
// and rhsKeys are each sorted for determinism.
type constraintSet struct {
	lhsKeys []string
	rhsKeys [][]string
}

// NewRule builds a Rule from a mother category, daughter categories,
// and the bare re-entrancy names declared at each position (one list
// for the mother plus one per RHS position, matching the shape used by
// the text-format reader in pkg/chartparse/text).
//
// mother is the set of re-entrancy names declared on the mother side
// of the rule; daughters[i] is the set declared on the i-th daughter.
// Re-entrancy names are only meaningful if they recur across at least
// two positions counting the mother; names present at exactly one
// position overall are dropped (they can never receive a value from
// anywhere else to percolate).
func NewRule(lhs Category, rhs []Category, mother []string, daughters [][]string) Rule {
	counts := map[string]int{}
	for _, k := range mother {
		counts[k]++
	}
	for _, ks := range daughters {
		seen := map[string]bool{}
		for _, k := range ks {
			if !seen[k] {
				counts[k]++
				seen[k] = true
			}
		}
	}
	keep := func(k string) bool { return counts[k] > 1 }

	lhsKeys := filterSortedUnique(mother, keep)
	rhsKeys := make([][]string, len(daughters))
	for i, ks := range daughters {
		rhsKeys[i] = filterSortedUnique(ks, keep)
	}

	rhsCopy := make([]Category, len(rhs))
	copy(rhsCopy, rhs)

	return Rule{
		LHS: lhs,
		RHS: rhsCopy,
		constraints: constraintSet{
			lhsKeys: lhsKeys,
			rhsKeys: rhsKeys,
		},
	}
}

func filterSortedUnique(in []string, keep func(string) bool) []string {
	seen := map[string]bool{}
	var out []string
	for _, k := range in {
		if !keep(k) || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// IsLexical reports whether the rule has a single daughter, as every
// lexical (preterminal -> word) rule does. It does not check that the
// daughter is a terminal, so a unary phrase rule such as Vp -> v also
// reports true.
func (r Rule) IsLexical() bool {
	return len(r.RHS) == 1
}

// LeftCorner returns the rule's first right-hand daughter category,
// used by Grammar's left-corner index to restrict top-down spawning.
func (r Rule) LeftCorner() Category {
	return r.RHS[0]
}
