package push

func registerBoolInstructions(reg *Registry) {
	registerStackFamily(reg, "BOOLEAN", func(st *State) *Stack[Item] { return st.Bool })

	reg.Register("BOOLEAN.AND", func(st *State, _ *Registry) {
		binBool(st, func(a, b bool) bool { return a && b })
	})
	reg.Register("BOOLEAN.OR", func(st *State, _ *Registry) {
		binBool(st, func(a, b bool) bool { return a || b })
	})
	reg.Register("BOOLEAN.NOT", func(st *State, _ *Registry) {
		b, ok := popBool(st)
		if !ok {
			return
		}
		st.Bool.Push(BoolItem(!b))
	})
	fromInteger := func(st *State, _ *Registry) {
		i, ok := popInt(st)
		if !ok {
			return
		}
		st.Bool.Push(BoolItem(i != 0))
	}
	reg.Register("BOOLEAN.FROMINTEGER", fromInteger)
	reg.Register("BOOLEAN.FROMINT", fromInteger)
	reg.Register("BOOLEAN.FROMFLOAT", func(st *State, _ *Registry) {
		f, ok := popFloat(st)
		if !ok {
			return
		}
		st.Bool.Push(BoolItem(f != 0))
	})
	reg.Register("BOOLEAN.RAND", func(st *State, _ *Registry) {
		st.Bool.Push(BoolItem(st.rng.Bool()))
	})
}

func binBool(st *State, f func(a, b bool) bool) {
	if st.Bool.Depth() < 2 {
		return
	}
	b, _ := st.Bool.Pop()
	a, _ := st.Bool.Pop()
	st.Bool.Push(BoolItem(f(a.Bool, b.Bool)))
}
