package chartparse

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// predecessor is one recorded route by which an edge was produced via
// the fundamental rule: the complete daughter edge that was consumed,
// and the exact partial "sister" edge it was consumed against. Storing
// the sister alongside the predecessor (rather than re-deriving it
// later by scanning partials for a match) is what makes the forest's
// sister lookup in forest.go a map read instead of a search, and is
// how this implementation guarantees the sister-uniqueness Open
// Question decided in DESIGN.md.
type predecessor struct {
	complete Edge
	sister   Edge
}

// Chart holds the partial and complete edge buckets, the predecessor
// map used to reconstruct the parse forest, and the agenda for one
// parser run. A Chart is owned exclusively by the run that created it;
// it is not safe to share a Chart across concurrent Run calls (the
// grammar it parses against may be shared freely, since Grammar is
// read-only after construction).
type Chart struct {
	grammar      *Grammar
	useFeatures  bool
	finalState   int
	completes    []map[string]Edge
	partials     []map[string]Edge
	prev         map[string][]predecessor
	agenda       []Edge
	log          *zap.SugaredLogger
}

// NewChart allocates a Chart with N+1 buckets for an FSM whose final
// state is N, against the given grammar. useFeatures selects whether
// the category-match predicate used throughout is plain name equality
// or full feature compatibility (spec.md §4.3); log may be nil, in
// which case a no-op logger is used.
func NewChart(grammar *Grammar, finalState int, useFeatures bool, log *zap.SugaredLogger) *Chart {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	n := finalState + 1
	c := &Chart{
		grammar:     grammar,
		useFeatures: useFeatures,
		finalState:  finalState,
		completes:   make([]map[string]Edge, n),
		partials:    make([]map[string]Edge, n),
		prev:        make(map[string][]predecessor),
		log:         log,
	}
	for i := range c.completes {
		c.completes[i] = make(map[string]Edge)
		c.partials[i] = make(map[string]Edge)
	}
	return c
}

// edgeKey is a canonical string identity for an edge under chart
// equivalence (label, left, right, needed — constraints excluded, as
// spec.md's equivalence definition excludes them). Category.String
// renders bindings in sorted order, so equal categories always produce
// identical keys.
func edgeKey(e Edge) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d|%d|%s|%d", e.Left, e.Right, e.Label.String(), len(e.Needed))
	for _, n := range e.Needed {
		b.WriteByte('|')
		b.WriteString(n.String())
	}
	return b.String()
}

// compat is the single category-match predicate used throughout: name
// equality when features are disabled, full feature compatibility
// (fcheck) when enabled.
func (c *Chart) compat(a, b Category) bool {
	if !c.useFeatures {
		return a.Name == b.Name
	}
	return a.Compatible(b)
}

// Run seeds the agenda from fsm's arcs and drains it via incorporate
// until empty. Agenda order does not affect the final chart contents
// (spec.md §5, §8 invariant 6); this implementation uses the same
// last-in-first-out order as the source reference, though nothing
// depends on it.
func (c *Chart) Run(fsm FSM) {
	for a := range fsm.Arcs() {
		word := NewCategory(a.Word, nil)
		if len(c.grammar.RulesWithLeftCorner(word)) == 0 {
			c.log.Warnw("unknown terminal: no rule has this word as a left corner", "word", a.Word)
		}
		c.agenda = append(c.agenda, NewLexicalEdge(word, a.Src, a.Dst))
	}
	c.log.Infow("parse run starting", "final_state", c.finalState, "use_features", c.useFeatures)
	for len(c.agenda) > 0 {
		last := len(c.agenda) - 1
		e := c.agenda[last]
		c.agenda = c.agenda[:last]
		c.log.Debugw("incorporating", "edge", e.String())
		c.incorporate(e)
	}
	c.log.Infow("parse run complete",
		"complete_edges", c.countBucketed(c.completes),
		"partial_edges", c.countBucketed(c.partials))
}

func (c *Chart) countBucketed(buckets []map[string]Edge) int {
	n := 0
	for _, b := range buckets {
		n += len(b)
	}
	return n
}

// Solutions returns the complete edges spanning the whole input
// (left=0, right=finalState) whose label is compatible with top.
func (c *Chart) Solutions(top Category) []Edge {
	var out []Edge
	for _, e := range c.completes[0] {
		if e.Right == c.finalState && c.compat(e.Label, top) {
			out = append(out, e)
		}
	}
	return out
}

// incorporate implements spec.md §4.2: membership-check a new edge
// against the appropriate bucket, and on acceptance trigger spawning
// and/or the fundamental rule.
func (c *Chart) incorporate(e Edge) {
	e.mustKnownState()
	if e.Complete() {
		c.incorporateComplete(e)
		return
	}
	c.incorporatePartial(e)
}

func (c *Chart) incorporateComplete(e Edge) {
	bucket := c.completes[e.Left]
	switch classifyMembership(e, bucket) {
	case membershipPresent, membershipSubsumed:
		return
	case membershipGeneralises:
		c.replace(bucket, e)
	default: // absent or incomparable
		bucket[edgeKey(e)] = e
	}
	c.spawn(e.Label, e.Left)
	c.pairWithPartials(e)
}

func (c *Chart) incorporatePartial(e Edge) {
	bucket := c.partials[e.Right]
	switch classifyMembership(e, bucket) {
	case membershipPresent, membershipSubsumed:
		return
	case membershipGeneralises:
		c.replace(bucket, e)
	default:
		bucket[edgeKey(e)] = e
	}
	c.pairWithCompletes(e)
}

// replace installs e into bucket, removing whichever existing member
// e strictly generalises and transferring that member's predecessor
// routes onto e's key, per spec.md §4.4.
func (c *Chart) replace(bucket map[string]Edge, e Edge) {
	for k, p := range bucket {
		if e.LessGeneral(p) {
			continue
		}
		if p.LessGeneral(e) {
			delete(bucket, k)
			ek := edgeKey(e)
			c.prev[ek] = append(c.prev[ek], c.prev[k]...)
			delete(c.prev, k)
		}
	}
	bucket[edgeKey(e)] = e
}

type membershipResult int

const (
	membershipAbsent membershipResult = iota
	membershipPresent
	membershipSubsumed
	membershipGeneralises
	membershipIncomparable
)

// classifyMembership implements the membership-check table of
// spec.md §4.4.
func classifyMembership(e Edge, bucket map[string]Edge) membershipResult {
	if _, ok := bucket[edgeKey(e)]; ok {
		return membershipPresent
	}
	generalises := false
	for _, p := range bucket {
		if e.LessGeneral(p) {
			return membershipSubsumed
		}
		if p.LessGeneral(e) {
			generalises = true
		}
	}
	if generalises {
		return membershipGeneralises
	}
	return membershipAbsent // Absent and Incomparable are handled identically by callers
}

// spawn implements spec.md §4.3: top-down prediction of a fresh
// partial edge from every rule whose left corner is compatible with
// lc, at cell i. The left-corner index restricts the candidate set;
// the actual compat check (which may involve feature bindings) still
// runs per candidate.
func (c *Chart) spawn(lc Category, i int) {
	for _, ri := range c.grammar.RulesWithLeftCorner(lc) {
		rule := c.grammar.Rules[ri]
		if !c.compat(lc, rule.LeftCorner()) {
			continue
		}
		e := NewSpawnedEdge(rule, i)
		if bucketHasEquivalentOrMoreGeneral(c.partials[i], e) {
			continue
		}
		c.agenda = append(c.agenda, e)
	}
}

func bucketHasEquivalentOrMoreGeneral(bucket map[string]Edge, e Edge) bool {
	if _, ok := bucket[edgeKey(e)]; ok {
		return true
	}
	for _, p := range bucket {
		if e.LessGeneral(p) {
			return true
		}
	}
	return false
}

// pairWithPartials implements the pairwithpartials half of the
// fundamental rule (spec.md §4.3): e is a freshly-accepted complete
// edge; combine it with every partial edge ending where e begins.
func (c *Chart) pairWithPartials(e Edge) {
	for _, p := range c.partials[e.Left] {
		if len(p.Needed) == 0 || !c.compat(e.Label, p.Needed[0]) {
			continue
		}
		c.combine(p, e)
	}
}

// pairWithCompletes implements the pairwithcompletes half of the
// fundamental rule: e is a freshly-accepted partial edge; combine it
// with every complete edge starting where e ends.
func (c *Chart) pairWithCompletes(e Edge) {
	for _, comp := range c.completes[e.Right] {
		if len(e.Needed) == 0 || !c.compat(e.Needed[0], comp.Label) {
			continue
		}
		c.combine(e, comp)
	}
}

// combine builds the result of applying the fundamental rule to
// partial p and complete comp (comp completes p's first need),
// percolating features when enabled, records the predecessor route,
// and enqueues the result.
func (c *Chart) combine(p, comp Edge) {
	result, pred := c.buildCombination(p, comp)
	key := edgeKey(result)
	c.prev[key] = append(c.prev[key], pred)
	c.agenda = append(c.agenda, result)
}
