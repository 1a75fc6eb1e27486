package push

// registerIndexInstructions wires the counted-loop cursor family. The
// ten generic stack operations (§4.2) apply to INDEX like any other
// stack; the operations below are INDEX-specific (§4.8 as supplemented
// by the destination/flush/pop accessors original_source exposes).
func registerIndexInstructions(reg *Registry) {
	registerStackFamily(reg, "INDEX", func(st *State) *Stack[IndexItem] { return st.Index })

	reg.Register("INDEX.DEFINE", func(st *State, _ *Registry) {
		d, ok := popInt(st)
		if !ok {
			return
		}
		st.Index.Push(newIndex(d))
	})
	reg.Register("INDEX.CURRENT", func(st *State, _ *Registry) {
		ix, ok := st.Index.Peek()
		if !ok {
			return
		}
		st.Int.Push(IntItem(ix.Current))
	})
	reg.Register("INDEX.DESTINATION", func(st *State, _ *Registry) {
		ix, ok := st.Index.Peek()
		if !ok {
			return
		}
		st.Int.Push(IntItem(ix.Destination))
	})
	reg.Register("INDEX.INCREASE", func(st *State, _ *Registry) {
		ix, ok := st.Index.Pop()
		if !ok {
			return
		}
		ix.Current += ix.Step
		st.Index.Push(ix)
	})
	reg.Register("INDEX.DECREASE", func(st *State, _ *Registry) {
		ix, ok := st.Index.Pop()
		if !ok {
			return
		}
		ix.Current -= ix.Step
		st.Index.Push(ix)
	})
	reg.Register("INDEX.LOOP", func(st *State, _ *Registry) {
		if st.Index.Depth() < 1 || st.Exec.Depth() < 1 {
			return
		}
		ix, _ := st.Index.Peek()
		if ix.done() {
			st.Index.Pop()
			return
		}
		body, _ := st.Exec.Peek()
		next := ix
		next.Current += ix.Step
		st.Index.Pop()
		st.Index.Push(next)
		st.pushExec(InstructionItem("INDEX.LOOP"))
		st.pushExec(clone(body))
	})
	reg.Register("INDEX.FLUSH", func(st *State, _ *Registry) {
		st.Index.Flush()
	})
	reg.Register("INDEX.POP", func(st *State, _ *Registry) {
		st.Index.Pop()
	})
}
