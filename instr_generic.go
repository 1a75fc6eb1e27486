package push

// registerStackFamily wires up the ten operations Push3 requires
// uniformly across every typed stack: DUP, SWAP, ROT, POP, FLUSH,
// STACKDEPTH, EQUAL, SHOVE, YANK and YANKDUP (§4.2). It is generic
// over the stack's payload type so the same ten closures serve the
// nine Item-valued stacks, the INDEX stack and the GRAPH stack alike.
func registerStackFamily[T any](reg *Registry, prefix string, get func(*State) *Stack[T]) {
	reg.Register(prefix+".DUP", func(st *State, _ *Registry) {
		get(st).Dup()
	})
	reg.Register(prefix+".SWAP", func(st *State, _ *Registry) {
		get(st).Swap()
	})
	reg.Register(prefix+".ROT", func(st *State, _ *Registry) {
		get(st).Rot()
	})
	reg.Register(prefix+".POP", func(st *State, _ *Registry) {
		get(st).Pop()
	})
	reg.Register(prefix+".FLUSH", func(st *State, _ *Registry) {
		get(st).Flush()
	})
	reg.Register(prefix+".STACKDEPTH", func(st *State, _ *Registry) {
		st.Int.Push(IntItem(int64(get(st).Depth())))
	})
	reg.Register(prefix+".EQUAL", func(st *State, _ *Registry) {
		if v, ok := get(st).Equal(); ok {
			st.Bool.Push(BoolItem(v))
		}
	})
	reg.Register(prefix+".SHOVE", func(st *State, _ *Registry) {
		i, ok := popInt(st)
		if !ok {
			return
		}
		get(st).Shove(int(i))
	})
	reg.Register(prefix+".YANK", func(st *State, _ *Registry) {
		i, ok := popInt(st)
		if !ok {
			return
		}
		get(st).Yank(int(i))
	})
	reg.Register(prefix+".YANKDUP", func(st *State, _ *Registry) {
		i, ok := popInt(st)
		if !ok {
			return
		}
		get(st).YankDup(int(i))
	})
}

// popInt pops the top INTEGER, returning false (leaving the stack
// untouched) when empty.
func popInt(st *State) (int64, bool) {
	it, ok := st.Int.Pop()
	if !ok {
		return 0, false
	}
	return it.Int, true
}

// popFloat pops the top FLOAT.
func popFloat(st *State) (float64, bool) {
	it, ok := st.Float.Pop()
	if !ok {
		return 0, false
	}
	return it.Float, true
}

// popBool pops the top BOOLEAN.
func popBool(st *State) (bool, bool) {
	it, ok := st.Bool.Pop()
	if !ok {
		return false, false
	}
	return it.Bool, true
}
