package push

// State is the aggregate Push runtime: every typed stack, the name
// binding table, the name-quote flag, the random source, and the
// active configuration. A State is exclusively owned by its caller
// during a run; nothing here is safe to share across goroutines.
type State struct {
	Bool        *Stack[Item]
	Int         *Stack[Item]
	Float       *Stack[Item]
	Name        *Stack[Item]
	Code        *Stack[Item]
	Exec        *Stack[Item]
	BoolVector  *Stack[Item]
	IntVector   *Stack[Item]
	FloatVector *Stack[Item]
	Index       *Stack[IndexItem]
	Graph       *Stack[*Graph]

	Input  *Queue[Item]
	Output *Queue[Item]

	Bindings      map[string]Item
	QuoteNameFlag bool

	Config Config
	rng    *randSource
}

// NewState builds a State with all stacks empty and cfg's Seed
// feeding the random source. cfg is validated; an invalid
// configuration is reported immediately rather than surfacing later
// as a confusing runtime NOOP.
func NewState(cfg Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	itemEq := func(a, b Item) bool { return Equal(a, b) }
	indexEq := func(a, b IndexItem) bool { return a == b }
	graphEq := func(a, b *Graph) bool { return a.equal(b) }
	return &State{
		Bool:        newStack(itemEq),
		Int:         newStack(itemEq),
		Float:       newStack(itemEq),
		Name:        newStack(itemEq),
		Code:        newStack(itemEq),
		Exec:        newStack(itemEq),
		BoolVector:  newStack(itemEq),
		IntVector:   newStack(itemEq),
		FloatVector: newStack(itemEq),
		Index:       newStack(indexEq),
		Graph:       newStack(graphEq),
		Input:       newQueue[Item](cfg.IOQueueCapacity),
		Output:      newQueue[Item](cfg.IOQueueCapacity),
		Bindings:    make(map[string]Item),
		Config:      cfg,
		rng:         newRandSource(cfg.Seed),
	}, nil
}

// liveItems totals the depth of every Item-valued stack plus the
// index and graph stacks, for GrowthCap enforcement.
func (st *State) liveItems() int {
	n := st.Bool.Depth() + st.Int.Depth() + st.Float.Depth() + st.Name.Depth() +
		st.Code.Depth() + st.Exec.Depth() + st.BoolVector.Depth() +
		st.IntVector.Depth() + st.FloatVector.Depth() + st.Index.Depth() + st.Graph.Depth()
	return n
}

// underGrowthCap reports whether pushing one more item onto any stack
// is still within Config.GrowthCap.
func (st *State) underGrowthCap() bool {
	return st.Config.GrowthCap <= 0 || st.liveItems() < st.Config.GrowthCap
}

// pushExec pushes it onto the execution stack, enforcing the
// max_exec_depth bound of invariant I5: exceeding it silently drops
// the push instead of growing the stack further.
func (st *State) pushExec(it Item) {
	if st.Exec.Depth() >= st.Config.MaxExecDepth {
		return
	}
	st.Exec.Push(it)
}

// pushExecList pushes the elements of a list onto EXEC in reverse
// order, so the original head is executed first -- this is how Push
// unpacks a code block for execution (§4.9).
func (st *State) pushExecList(items []Item) {
	for i := len(items) - 1; i >= 0; i-- {
		st.pushExec(items[i])
	}
}

// stackFor resolves the Item-valued stack named by a canonical
// TYPE.OP instruction prefix. The generic per-type registrations in
// instr_generic.go do not use it; they take an accessor closure.
func (st *State) stackFor(kindName string) (*Stack[Item], bool) {
	switch kindName {
	case "BOOLEAN":
		return st.Bool, true
	case "INTEGER":
		return st.Int, true
	case "FLOAT":
		return st.Float, true
	case "NAME":
		return st.Name, true
	case "CODE":
		return st.Code, true
	case "EXEC":
		return st.Exec, true
	case "BOOLVECTOR":
		return st.BoolVector, true
	case "INTVECTOR":
		return st.IntVector, true
	case "FLOATVECTOR":
		return st.FloatVector, true
	default:
		return nil, false
	}
}
