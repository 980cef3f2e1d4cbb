// Package chartparse implements an active bottom-up chart parser for
// context-free grammars with atomic-feature agreement and word-lattice
// input.
//
// Given a Grammar whose productions may carry feature constraints and
// an input FSM (a linear word sequence or a general acyclic word
// lattice), a Chart enumerates every derivation that spans the machine
// from its start state to its accepting state under a designated top
// category, sharing common subderivations in a predecessor-linked
// forest. Individual trees are produced lazily via Trees, and the
// total analysis count under a solution is available in closed form
// via Count without ever materialising the trees themselves.
//
// The four load-bearing pieces are Edge (the span/label/needed
// assertion together with its subsumption and equivalence discipline),
// Chart (the agenda-driven incorporation loop implementing the
// fundamental rule and top-down spawning), feature percolation
// (propagating atomic bindings from a consumed daughter to the mother
// and to later-needed siblings per the rule's re-entrancy descriptor),
// and the forest (lazy tree enumeration plus memoised counting).
package chartparse
