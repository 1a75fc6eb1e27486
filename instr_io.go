package push

// registerIOInstructions wires the two bounded FIFO queues (§3): a
// program reads sensor-like values off INPUT and emits results onto
// OUTPUT, both carrying BOOLVECTOR payloads. Queue overflow silently
// drops the oldest entry (Queue in stack.go), never the interpreter step.
func registerIOInstructions(reg *Registry) {
	reg.Register("INPUT.DEQUEUE", func(st *State, _ *Registry) {
		v, ok := st.Input.Dequeue()
		if !ok {
			return
		}
		st.BoolVector.Push(v)
	})
	reg.Register("OUTPUT.ENQUEUE", func(st *State, _ *Registry) {
		v, ok := st.BoolVector.Pop()
		if !ok {
			return
		}
		st.Output.Enqueue(v)
	})
}
