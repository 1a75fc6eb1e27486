package push

import "strconv"

func registerFloatInstructions(reg *Registry) {
	registerStackFamily(reg, "FLOAT", func(st *State) *Stack[Item] { return st.Float })

	reg.Register("FLOAT.+", func(st *State, _ *Registry) {
		binFloat(st, func(a, b float64) float64 { return a + b })
	})
	reg.Register("FLOAT.-", func(st *State, _ *Registry) {
		binFloat(st, func(a, b float64) float64 { return a - b })
	})
	reg.Register("FLOAT.*", func(st *State, _ *Registry) {
		binFloat(st, func(a, b float64) float64 { return a * b })
	})
	reg.Register("FLOAT./", func(st *State, _ *Registry) {
		binFloatGuarded(st, func(a, b float64) (float64, bool) {
			if b == 0 {
				return 0, false
			}
			return a / b, true
		})
	})
	reg.Register("FLOAT.%", func(st *State, _ *Registry) {
		binFloatGuarded(st, func(a, b float64) (float64, bool) {
			if b == 0 {
				return 0, false
			}
			r := a - b*float64(int64(a/b))
			return r, true
		})
	})
	reg.Register("FLOAT.MIN", func(st *State, _ *Registry) {
		binFloat(st, func(a, b float64) float64 {
			if a < b {
				return a
			}
			return b
		})
	})
	reg.Register("FLOAT.MAX", func(st *State, _ *Registry) {
		binFloat(st, func(a, b float64) float64 {
			if a > b {
				return a
			}
			return b
		})
	})
	reg.Register("FLOAT.<", func(st *State, _ *Registry) {
		binFloatBool(st, func(a, b float64) bool { return a < b })
	})
	reg.Register("FLOAT.>", func(st *State, _ *Registry) {
		binFloatBool(st, func(a, b float64) bool { return a > b })
	})
	reg.Register("FLOAT.=", func(st *State, _ *Registry) {
		binFloatBool(st, func(a, b float64) bool { return a == b })
	})
	reg.Register("FLOAT.FROMINTEGER", func(st *State, _ *Registry) {
		i, ok := popInt(st)
		if !ok {
			return
		}
		st.Float.Push(FloatItem(float64(i)))
	})
	reg.Register("FLOAT.FROMBOOLEAN", func(st *State, _ *Registry) {
		b, ok := popBool(st)
		if !ok {
			return
		}
		if b {
			st.Float.Push(FloatItem(1))
		} else {
			st.Float.Push(FloatItem(0))
		}
	})
	reg.Register("FLOAT.FROMSTRING", func(st *State, _ *Registry) {
		n, ok := st.Name.Pop()
		if !ok {
			return
		}
		f, err := strconv.ParseFloat(n.Name, 64)
		if err != nil {
			st.Name.Push(n)
			return
		}
		st.Float.Push(FloatItem(f))
	})
	reg.Register("FLOAT.RAND", func(st *State, _ *Registry) {
		st.Float.Push(FloatItem(st.rng.Normal(st.Config.MeanRandomFloat, st.Config.StdRandomFloat)))
	})
}

func binFloat(st *State, f func(a, b float64) float64) {
	if st.Float.Depth() < 2 {
		return
	}
	b, _ := st.Float.Pop()
	a, _ := st.Float.Pop()
	st.Float.Push(FloatItem(f(a.Float, b.Float)))
}

func binFloatGuarded(st *State, f func(a, b float64) (float64, bool)) {
	if st.Float.Depth() < 2 {
		return
	}
	b, _ := st.Float.Pop()
	a, _ := st.Float.Pop()
	if r, ok := f(a.Float, b.Float); ok {
		st.Float.Push(FloatItem(r))
	} else {
		st.Float.Push(a)
		st.Float.Push(b)
	}
}

func binFloatBool(st *State, f func(a, b float64) bool) {
	if st.Float.Depth() < 2 {
		return
	}
	b, _ := st.Float.Pop()
	a, _ := st.Float.Pop()
	st.Bool.Push(BoolItem(f(a.Float, b.Float)))
}
