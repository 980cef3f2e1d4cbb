package chartparse

import (
	"context"
	"sync"

	"github.com/gitrdm/chartparse/internal/parallel"
)

// RunParallel behaves exactly like Run, except that the fundamental
// rule's combine step — computing a candidate result edge's
// percolated label, needed list, and constraints, which is a pure
// function of its two immutable inputs — is submitted to pool for
// every compatible candidate partner of each incorporate call, and
// the call waits for all of them before the next edge is taken from
// the agenda. Insertion into prev and the agenda, which is not
// disjoint across candidates, is serialised behind chartMu exactly as
// spec.md §5 requires ("(b) prev updates are serialised per key").
// The set of edges present in the chart at termination is identical
// to what Run would produce; this only changes how the work to get
// there is scheduled.
//
// pool is owned by the caller: RunParallel does not shut it down.
func (c *Chart) RunParallel(fsm FSM, pool *parallel.WorkerPool) {
	for a := range fsm.Arcs() {
		word := NewCategory(a.Word, nil)
		if len(c.grammar.RulesWithLeftCorner(word)) == 0 {
			c.log.Warnw("unknown terminal: no rule has this word as a left corner", "word", a.Word)
		}
		c.agenda = append(c.agenda, NewLexicalEdge(word, a.Src, a.Dst))
	}
	c.log.Infow("parallel parse run starting", "final_state", c.finalState, "use_features", c.useFeatures)

	var chartMu sync.Mutex
	for len(c.agenda) > 0 {
		last := len(c.agenda) - 1
		e := c.agenda[last]
		c.agenda = c.agenda[:last]
		c.incorporateParallel(e, pool, &chartMu)
	}
	c.log.Infow("parallel parse run complete",
		"complete_edges", c.countBucketed(c.completes),
		"partial_edges", c.countBucketed(c.partials))
}

func (c *Chart) incorporateParallel(e Edge, pool *parallel.WorkerPool, chartMu *sync.Mutex) {
	e.mustKnownState()

	chartMu.Lock()
	if e.Complete() {
		bucket := c.completes[e.Left]
		switch classifyMembership(e, bucket) {
		case membershipPresent, membershipSubsumed:
			chartMu.Unlock()
			return
		case membershipGeneralises:
			c.replace(bucket, e)
		default:
			bucket[edgeKey(e)] = e
		}
		c.spawn(e.Label, e.Left)
		partners := collectValues(c.partials[e.Left])
		chartMu.Unlock()
		c.combineManyParallel(partners, e, true, pool, chartMu)
		return
	}

	bucket := c.partials[e.Right]
	switch classifyMembership(e, bucket) {
	case membershipPresent, membershipSubsumed:
		chartMu.Unlock()
		return
	case membershipGeneralises:
		c.replace(bucket, e)
	default:
		bucket[edgeKey(e)] = e
	}
	partners := collectValues(c.completes[e.Right])
	chartMu.Unlock()
	c.combineManyParallel(partners, e, false, pool, chartMu)
}

func collectValues(m map[string]Edge) []Edge {
	out := make([]Edge, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

// combineManyParallel runs the fundamental rule between e and every
// candidate in partners, dispatching the combine computation for each
// compatible pair through pool. freshIsComplete indicates whether e is
// the complete half of the pairing (partners are partials) or the
// partial half (partners are completes).
func (c *Chart) combineManyParallel(partners []Edge, e Edge, freshIsComplete bool, pool *parallel.WorkerPool, chartMu *sync.Mutex) {
	var wg sync.WaitGroup
	for _, partner := range partners {
		var partial, complete Edge
		if freshIsComplete {
			partial, complete = partner, e
			if len(partial.Needed) == 0 || !c.compat(complete.Label, partial.Needed[0]) {
				continue
			}
		} else {
			partial, complete = e, partner
			if len(partial.Needed) == 0 || !c.compat(partial.Needed[0], complete.Label) {
				continue
			}
		}

		p, comp := partial, complete
		wg.Add(1)
		task := func(ctx context.Context) {
			defer wg.Done()
			result, pred := c.buildCombination(p, comp)
			chartMu.Lock()
			key := edgeKey(result)
			c.prev[key] = append(c.prev[key], pred)
			c.agenda = append(c.agenda, result)
			chartMu.Unlock()
		}
		if err := pool.Submit(context.Background(), task); err != nil {
			// Pool unavailable (shut down mid-run): fall back to
			// running the combination inline so no candidate is lost.
			// task's own deferred wg.Done() still accounts for the
			// wg.Add(1) above.
			task(context.Background())
		}
	}
	wg.Wait()
}

// buildCombination is the pure part of combine: computing the
// percolated result edge and the predecessor record, without touching
// any chart-wide state.
func (c *Chart) buildCombination(p, comp Edge) (Edge, predecessor) {
	var label Category
	var needed []Category
	var constraints edgeConstraints
	if c.useFeatures {
		label, needed, constraints = p.Percolate(comp.Label)
	} else {
		label = p.Label
		needed = make([]Category, len(p.Needed)-1)
		copy(needed, p.Needed[1:])
	}
	result := Edge{
		Label:       label,
		Left:        p.Left,
		Right:       comp.Right,
		Needed:      needed,
		constraints: constraints,
	}
	return result, predecessor{complete: comp, sister: p}
}
