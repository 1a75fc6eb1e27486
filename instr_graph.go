package push

// registerGraphInstructions wires the GRAPH stack: the ten generic
// operations (§4.2) plus node/edge construction, lookup and traversal.
// Predecessors/successors/BFS-history are supplemented from
// original_source's push/graph.rs, which exposes them alongside the
// spec's core add/connect/neighbors/state set.
//
// Each descriptive name below (GRAPH.NODE.ADD, GRAPH.EDGE.CONNECT, ...)
// is also registered under spec §4.7's literal name (GRAPH.ADD,
// GRAPH.CONNECT, ...) so programs written directly against the spec's
// vocabulary dispatch correctly.
func registerGraphInstructions(reg *Registry) {
	registerStackFamily(reg, "GRAPH", func(st *State) *Stack[*Graph] { return st.Graph })

	reg.Register("GRAPH.NEW", func(st *State, _ *Registry) {
		st.Graph.Push(newGraph())
	})

	nodeAdd := func(st *State, _ *Registry) {
		f, ok := popFloat(st)
		if !ok {
			return
		}
		g, ok := st.Graph.Peek()
		if !ok {
			st.Float.Push(FloatItem(f))
			return
		}
		id := g.AddNode(f)
		st.Int.Push(IntItem(int64(id)))
	}
	reg.Register("GRAPH.NODE.ADD", nodeAdd)
	reg.Register("GRAPH.ADD", nodeAdd)

	reg.Register("GRAPH.NODECOUNT", func(st *State, _ *Registry) {
		g, ok := st.Graph.Peek()
		if !ok {
			return
		}
		st.Int.Push(IntItem(int64(g.NodeCount())))
	})

	edgeConnect := func(st *State, _ *Registry) {
		if st.Int.Depth() < 2 {
			return
		}
		w, ok := popFloat(st)
		if !ok {
			return
		}
		to, ok := popInt(st)
		if !ok {
			st.Float.Push(FloatItem(w))
			return
		}
		from, ok := popInt(st)
		if !ok {
			st.Int.Push(IntItem(to))
			st.Float.Push(FloatItem(w))
			return
		}
		g, ok := st.Graph.Peek()
		if !ok || !g.Connect(int(from), int(to), w) {
			st.Int.Push(IntItem(from))
			st.Int.Push(IntItem(to))
			st.Float.Push(FloatItem(w))
		}
	}
	reg.Register("GRAPH.EDGE.CONNECT", edgeConnect)
	reg.Register("GRAPH.CONNECT", edgeConnect)

	edgeWeight := func(st *State, _ *Registry) {
		to, ok := popInt(st)
		if !ok {
			return
		}
		from, ok := popInt(st)
		if !ok {
			st.Int.Push(IntItem(to))
			return
		}
		g, ok := st.Graph.Peek()
		if !ok {
			st.Int.Push(IntItem(from))
			st.Int.Push(IntItem(to))
			return
		}
		if w, ok := g.EdgeWeight(int(from), int(to)); ok {
			st.Float.Push(FloatItem(w))
		}
	}
	reg.Register("GRAPH.EDGE.WEIGHT", edgeWeight)
	reg.Register("GRAPH.EDGE", edgeWeight)

	stateGet := func(st *State, _ *Registry) {
		id, ok := popInt(st)
		if !ok {
			return
		}
		g, ok := st.Graph.Peek()
		if !ok {
			st.Int.Push(IntItem(id))
			return
		}
		if s, ok := g.State(int(id)); ok {
			st.Float.Push(FloatItem(s))
		}
	}
	reg.Register("GRAPH.NODE.STATE.GET", stateGet)
	reg.Register("GRAPH.STATE.GET", stateGet)

	stateSet := func(st *State, _ *Registry) {
		s, ok := popFloat(st)
		if !ok {
			return
		}
		id, ok := popInt(st)
		if !ok {
			st.Float.Push(FloatItem(s))
			return
		}
		g, ok := st.Graph.Peek()
		if !ok || !g.SetState(int(id), s) {
			st.Int.Push(IntItem(id))
			st.Float.Push(FloatItem(s))
		}
	}
	reg.Register("GRAPH.NODE.STATE.SET", stateSet)
	reg.Register("GRAPH.STATE.SET", stateSet)

	neighbors := pushNodeSet(func(g *Graph, id int) []int { return g.Neighbors(id) })
	reg.Register("GRAPH.NODE.NEIGHBORS", neighbors)
	reg.Register("GRAPH.NEIGHBORS", neighbors)
	reg.Register("GRAPH.NODE.PREDECESSORS", pushNodeSet(func(g *Graph, id int) []int { return g.Predecessors(id) }))
	reg.Register("GRAPH.NODE.BFS", pushNodeSet(func(g *Graph, id int) []int { return g.BFS(id) }))
}

// pushNodeSet pops a node id, calls f on the top graph, and pushes the
// resulting node ids onto INTVECTOR as one vector.
func pushNodeSet(f func(g *Graph, id int) []int) InstructionFunc {
	return func(st *State, _ *Registry) {
		id, ok := popInt(st)
		if !ok {
			return
		}
		g, ok := st.Graph.Peek()
		if !ok || !g.validNode(int(id)) {
			st.Int.Push(IntItem(id))
			return
		}
		ns := f(g, int(id))
		xs := make([]int64, len(ns))
		for i, n := range ns {
			xs[i] = int64(n)
		}
		st.IntVector.Push(IntVecItem(xs))
	}
}
