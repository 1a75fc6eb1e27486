package push

import "golang.org/x/exp/slices"

// Graph is a labeled directed multigraph used as an associative
// memory. Node identifiers are dense, consecutive integers starting
// at 0; nodes are never removed, so identifiers stay stable for the
// lifetime of the graph.
type Graph struct {
	states []float64
	edges  map[int][]Edge
}

// Edge is one directed, weighted connection out of a node. A pair of
// nodes may be connected by more than one edge (a multigraph), each
// tracked independently.
type Edge struct {
	To     int
	Weight float64
}

func newGraph() *Graph {
	return &Graph{edges: make(map[int][]Edge)}
}

func (g *Graph) clone() *Graph {
	ng := &Graph{
		states: append([]float64(nil), g.states...),
		edges:  make(map[int][]Edge, len(g.edges)),
	}
	for k, v := range g.edges {
		ng.edges[k] = append([]Edge(nil), v...)
	}
	return ng
}

func (g *Graph) equal(o *Graph) bool {
	if len(g.states) != len(o.states) || len(g.edges) != len(o.edges) {
		return false
	}
	for i, s := range g.states {
		if s != o.states[i] {
			return false
		}
	}
	for k, v := range g.edges {
		ov, ok := o.edges[k]
		if !ok || len(v) != len(ov) {
			return false
		}
		for i := range v {
			if v[i] != ov[i] {
				return false
			}
		}
	}
	return true
}

// AddNode appends a node with the given initial state and returns its
// new, dense identifier.
func (g *Graph) AddNode(state float64) int {
	g.states = append(g.states, state)
	return len(g.states) - 1
}

func (g *Graph) NodeCount() int { return len(g.states) }

func (g *Graph) validNode(id int) bool { return id >= 0 && id < len(g.states) }

func (g *Graph) State(id int) (float64, bool) {
	if !g.validNode(id) {
		return 0, false
	}
	return g.states[id], true
}

func (g *Graph) SetState(id int, state float64) bool {
	if !g.validNode(id) {
		return false
	}
	g.states[id] = state
	return true
}

// Connect adds a directed edge from -> to with the given weight.
func (g *Graph) Connect(from, to int, weight float64) bool {
	if !g.validNode(from) || !g.validNode(to) {
		return false
	}
	g.edges[from] = append(g.edges[from], Edge{To: to, Weight: weight})
	return true
}

// EdgeWeight returns the weight of the first edge from -> to, if any.
func (g *Graph) EdgeWeight(from, to int) (float64, bool) {
	for _, e := range g.edges[from] {
		if e.To == to {
			return e.Weight, true
		}
	}
	return 0, false
}

// Neighbors returns the destination of every outgoing edge from id,
// in insertion order.
func (g *Graph) Neighbors(id int) []int {
	es := g.edges[id]
	ns := make([]int, len(es))
	for i, e := range es {
		ns[i] = e.To
	}
	return ns
}

// Predecessors returns every node with an outgoing edge into id, in
// ascending id order.
func (g *Graph) Predecessors(id int) []int {
	var ps []int
	for from, es := range g.edges {
		for _, e := range es {
			if e.To == id {
				ps = append(ps, from)
				break
			}
		}
	}
	slices.Sort(ps)
	return ps
}

// BFS returns node ids reachable from start, in breadth-first visit
// order (start included).
func (g *Graph) BFS(start int) []int {
	if !g.validNode(start) {
		return nil
	}
	visited := map[int]bool{start: true}
	order := []int{start}
	queue := []int{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(id) {
			if !visited[n] {
				visited[n] = true
				order = append(order, n)
				queue = append(queue, n)
			}
		}
	}
	return order
}
