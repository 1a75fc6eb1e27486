package push

import "testing"

// The spec names these instructions GRAPH.ADD, GRAPH.CONNECT, GRAPH.EDGE,
// GRAPH.NEIGHBORS, GRAPH.STATE.GET and GRAPH.STATE.SET; this exercises
// those literal names end to end rather than the more descriptive
// GRAPH.NODE.ADD/GRAPH.EDGE.CONNECT/... names they alias.
func TestRunGraphSpecLiteralNames(t *testing.T) {
	in, st := newTestInterpreter(t)
	prog := mustParse(t, in.Registry,
		"( GRAPH.NEW 1.0 GRAPH.ADD 2.0 GRAPH.ADD 0 1 0.5 GRAPH.CONNECT "+
			"0 1 GRAPH.EDGE 1 3.0 GRAPH.STATE.SET 1 GRAPH.STATE.GET 0 GRAPH.NEIGHBORS )")
	if _, err := run(in, st, prog); err != nil {
		t.Fatal(err)
	}

	neighbors, ok := st.IntVector.Peek()
	if !ok || len(neighbors.IntVec) != 1 || neighbors.IntVec[0] != 1 {
		t.Fatalf("INTVECTOR top = %v, want [1] (node 0's only neighbor)", neighbors)
	}
	state, ok := st.Float.Peek()
	if !ok || state.Float != 3.0 {
		t.Fatalf("FLOAT top = %v, want 3.0 (GRAPH.STATE.GET after GRAPH.STATE.SET)", state)
	}
	weight, ok := st.Float.At(1)
	if !ok || weight.Float != 0.5 {
		t.Fatalf("FLOAT[1] = %v, want 0.5 (GRAPH.EDGE weight)", weight)
	}
}
