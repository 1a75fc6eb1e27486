package push

func registerNameInstructions(reg *Registry) {
	registerStackFamily(reg, "NAME", func(st *State) *Stack[Item] { return st.Name })

	reg.Register("NAME.QUOTE", func(st *State, _ *Registry) {
		st.QuoteNameFlag = true
	})

	reg.Register("EXEC.DEFINE", func(st *State, _ *Registry) {
		defineFromSource(st, st.Exec)
	})
	reg.Register("CODE.DEFINE", func(st *State, _ *Registry) {
		defineFromSource(st, st.Code)
	})
}

// defineFromSource pops a NAME and binds it to the top of source,
// implementing EXEC.DEFINE / CODE.DEFINE (§4.5). NOOP unless both a
// name and a value are available.
func defineFromSource(st *State, source *Stack[Item]) {
	if st.Name.Depth() < 1 || source.Depth() < 1 {
		return
	}
	n, _ := st.Name.Pop()
	v, _ := source.Pop()
	st.Bindings[n.Name] = clone(v)
}
