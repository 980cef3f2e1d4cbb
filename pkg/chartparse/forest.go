package chartparse

import "iter"

// Tree is a single derivation: a label and its ordered children. A
// leaf (lexical or spawned edge with no predecessors) has no
// children.
type Tree struct {
	Label    Category
	Children []Tree
}

// Trees returns a restartable, lazily-evaluated sequence of every
// derivation tree rooted at e. Calling Trees again (or ranging over
// the returned sequence more than once) re-walks the chart from
// scratch; it is a pure function of the chart's current contents, not
// a one-shot generator, which is what lets a caller enumerate a
// prefix of an astronomically large forest without materialising the
// rest.
//
// For an edge with no recorded predecessors (a lexical seed or a
// spawned edge with an empty needed-daughter consumption history), the
// only tree is a leaf Tree(e.Label). Otherwise, for every recorded
// predecessor (the sister partial edge and the complete edge that
// completed it), every combination of a tree rooted at the sister and
// a tree rooted at the complete predecessor yields one tree rooted at
// e, with the sister's children extended by the predecessor's tree.
func (c *Chart) Trees(e Edge) iter.Seq[Tree] {
	return func(yield func(Tree) bool) {
		c.walkTrees(e, yield)
	}
}

func (c *Chart) walkTrees(e Edge, yield func(Tree) bool) bool {
	preds := c.prev[edgeKey(e)]
	if len(preds) == 0 {
		return yield(Tree{Label: e.Label})
	}
	for _, pr := range preds {
		cont := true
		c.walkTrees(pr.sister, func(left Tree) bool {
			c.walkTrees(pr.complete, func(right Tree) bool {
				children := make([]Tree, 0, len(left.Children)+1)
				children = append(children, left.Children...)
				children = append(children, right)
				if !yield(Tree{Label: e.Label, Children: children}) {
					cont = false
					return false
				}
				return true
			})
			return cont
		})
		if !cont {
			return false
		}
	}
	return true
}

// Count returns the exact number of distinct derivation trees rooted
// at e, via the memoised recurrence of spec.md §4.5:
//
//	T(e) = 1                                   if e has no predecessors
//	T(e) = sum over (sister, complete) of
//	       T(sister) * T(complete)              otherwise
//
// The predecessor graph is a DAG (spec.md §9: each non-seed edge has a
// strictly smaller (span, len(needed)) than its sister), so the
// recursion always terminates; Count asserts this by tracking the
// in-progress call stack and panicking if it ever revisits an edge
// still being computed.
func (c *Chart) Count(e Edge) int {
	cache := make(map[string]int)
	inProgress := make(map[string]bool)
	return c.countMemo(e, cache, inProgress)
}

func (c *Chart) countMemo(e Edge, cache map[string]int, inProgress map[string]bool) int {
	key := edgeKey(e)
	if v, ok := cache[key]; ok {
		return v
	}
	if inProgress[key] {
		panic("chartparse: predecessor cycle detected while counting derivations")
	}
	inProgress[key] = true
	defer delete(inProgress, key)

	preds := c.prev[key]
	if len(preds) == 0 {
		cache[key] = 1
		return 1
	}
	total := 0
	for _, pr := range preds {
		total += c.countMemo(pr.sister, cache, inProgress) * c.countMemo(pr.complete, cache, inProgress)
	}
	cache[key] = total
	return total
}
