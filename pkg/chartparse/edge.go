package chartparse

import "strconv"

// Edge is an assertion about some span of the input FSM: a left and
// right boundary, a label, and a sequence of still-needed daughter
// categories. An edge with no needs is complete; otherwise it is
// partial.
//
// Edge is immutable. Percolate returns fresh label, needed and
// constraint values, and the chart's fundamental-rule application
// builds a new Edge from them rather than mutating one in place.
type Edge struct {
	Label  Category
	Left   int
	Right  int
	Needed []Category

	constraints edgeConstraints
}

// edgeConstraints is the suffix of a rule's per-position re-entrancy
// sets that still applies to an edge: one entry per daughter position
// still to be consumed. lhsKeys (the mother's re-entrant feature
// names) is carried unchanged for as long as any remaining daughter
// might still reference it.
type edgeConstraints struct {
	lhsKeys []string
	rhsKeys [][]string
}

func emptyConstraints() edgeConstraints {
	return edgeConstraints{}
}

// NewLexicalEdge builds a complete seed edge for a single FSM arc
// labelled word, spanning [left, right).
func NewLexicalEdge(word Category, left, right int) Edge {
	return Edge{Label: word, Left: left, Right: right, constraints: emptyConstraints()}
}

// NewSpawnedEdge builds a fresh partial edge predicting rule's
// right-hand side at position i (left == right == i), as produced by
// Chart.spawn.
func NewSpawnedEdge(rule Rule, i int) Edge {
	needed := make([]Category, len(rule.RHS))
	copy(needed, rule.RHS)
	return Edge{
		Label:  rule.LHS,
		Left:   i,
		Right:  i,
		Needed: needed,
		constraints: edgeConstraints{
			lhsKeys: rule.constraints.lhsKeys,
			rhsKeys: rule.constraints.rhsKeys,
		},
	}
}

// Complete reports whether the edge has no outstanding daughter needs.
func (e Edge) Complete() bool { return len(e.Needed) == 0 }

// Partial reports whether the edge is awaiting one or more daughters.
func (e Edge) Partial() bool { return len(e.Needed) > 0 }

// mustKnownState panics if an edge is somehow neither complete nor
// partial. Complete and Partial are complementary by construction (an
// edge is complete iff Needed is empty), so this can only fire on a
// corrupted Edge value; it exists to make that invariant violation
// loud rather than silently misroute the edge, matching the "internal
// invariant violation, must be unreachable" error kind for this
// condition.
func (e Edge) mustKnownState() {
	if e.Complete() == e.Partial() {
		panic("chartparse: edge is neither complete nor partial")
	}
}

// Equivalent reports whether two edges are interchangeable for chart
// membership: same label, left, right, and needed sequence,
// categorywise. Constraints are deliberately excluded, matching the
// equivalence definition in the source reference.
func (e Edge) Equivalent(other Edge) bool {
	if e.Left != other.Left || e.Right != other.Right {
		return false
	}
	if !e.Label.Equal(other.Label) {
		return false
	}
	return equalCategorySlices(e.Needed, other.Needed, Category.Equal)
}

// LessGeneral reports whether e is strictly less general than other:
// same span, same needed length, e's label is less general than (or
// equal to, with at least one strictly finer needed category than)
// other's, and each of e's needed categories is less general than or
// equal to the corresponding category in other, with at least one
// strict refinement overall.
func (e Edge) LessGeneral(other Edge) bool {
	if e.Left != other.Left || e.Right != other.Right {
		return false
	}
	if len(e.Needed) != len(other.Needed) {
		return false
	}
	if !e.Label.LeqGeneral(other.Label) {
		return false
	}
	strict := e.Label.LessGeneral(other.Label)
	for i := range e.Needed {
		if !e.Needed[i].LeqGeneral(other.Needed[i]) {
			return false
		}
		if e.Needed[i].LessGeneral(other.Needed[i]) {
			strict = true
		}
	}
	if !strict {
		return false
	}
	return !(e.Label.Equal(other.Label) && equalCategorySlices(e.Needed, other.Needed, Category.Equal))
}

// Percolate is called when the edge's first needed daughter (position
// 0) has just been consumed against the completed category cat. It
// returns the mother label with that daughter's atomic features
// copied on (when the rule declares a mother/position-0 re-entrancy),
// the still-needed categories with the same features copied onto
// whichever of them share the re-entrancy name, and the constraint
// descriptor advanced past position 0. Percolate does not know the
// new span, so the caller builds the resulting Edge's Left/Right
// itself (see Chart's fundamental-rule application).
func (e Edge) Percolate(cat Category) (label Category, needed []Category, constraints edgeConstraints) {
	var positionKeys []string
	if len(e.constraints.rhsKeys) > 0 {
		positionKeys = e.constraints.rhsKeys[0]
	}

	newLabel := e.Label
	for _, k := range positionKeys {
		if !containsString(e.constraints.lhsKeys, k) {
			continue
		}
		if v, ok := cat.Binding(k); ok {
			newLabel = newLabel.Extend(k, v)
		}
	}

	restNeeded := e.Needed[1:]
	var restRHSKeys [][]string
	if len(e.constraints.rhsKeys) > 1 {
		restRHSKeys = e.constraints.rhsKeys[1:]
	}

	newNeeded := make([]Category, len(restNeeded))
	copy(newNeeded, restNeeded)
	for j := range newNeeded {
		var keysAtJ []string
		if j < len(restRHSKeys) {
			keysAtJ = restRHSKeys[j]
		}
		for _, k := range positionKeys {
			if !containsString(keysAtJ, k) {
				continue
			}
			if v, ok := cat.Binding(k); ok {
				newNeeded[j] = newNeeded[j].Extend(k, v)
			}
		}
	}

	return newLabel, newNeeded, edgeConstraints{
		lhsKeys: e.constraints.lhsKeys,
		rhsKeys: restRHSKeys,
	}
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

func equalCategorySlices(a, b []Category, eq func(Category, Category) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// String renders the edge as "C(label, left, right)" when complete or
// "P(label, left, right, needed)" when partial, matching the textual
// form used by the source reference.
func (e Edge) String() string {
	e.mustKnownState()
	left, right := strconv.Itoa(e.Left), strconv.Itoa(e.Right)
	if e.Complete() {
		return "C(" + e.Label.String() + ", " + left + ", " + right + ")"
	}
	s := "P(" + e.Label.String() + ", " + left + ", " + right + ", ["
	for i, n := range e.Needed {
		if i > 0 {
			s += " "
		}
		s += n.String()
	}
	return s + "])"
}
