package chartparse

import "errors"

// ErrCyclicFSM is returned by NewLatticeFSM when the supplied arcs
// contain a cycle. A cyclic input FSM would make the chart's buckets
// unbounded, so lattice construction detects and refuses up front
// rather than running the incorporation loop to an edge-count limit.
var ErrCyclicFSM = errors.New("chartparse: input FSM contains a cycle")
