package push

import "math"

func registerVectorInstructions(reg *Registry) {
	registerStackFamily(reg, "BOOLVECTOR", func(st *State) *Stack[Item] { return st.BoolVector })
	registerStackFamily(reg, "INTVECTOR", func(st *State) *Stack[Item] { return st.IntVector })
	registerStackFamily(reg, "FLOATVECTOR", func(st *State) *Stack[Item] { return st.FloatVector })

	registerBoolVectorInstructions(reg)
	registerIntVectorInstructions(reg)
	registerFloatVectorInstructions(reg)
}

func registerBoolVectorInstructions(reg *Registry) {
	reg.Register("BOOLVECTOR.ZEROS", func(st *State, _ *Registry) {
		n, ok := popInt(st)
		if !ok || n < 0 {
			return
		}
		st.BoolVector.Push(BoolVecItem(make([]bool, n)))
	})
	reg.Register("BOOLVECTOR.ONES", func(st *State, _ *Registry) {
		n, ok := popInt(st)
		if !ok || n < 0 {
			return
		}
		xs := make([]bool, n)
		for i := range xs {
			xs[i] = true
		}
		st.BoolVector.Push(BoolVecItem(xs))
	})
	reg.Register("BOOLVECTOR.RAND", func(st *State, _ *Registry) {
		s, ok := popFloat(st)
		if !ok {
			return
		}
		n, ok := popInt(st)
		if !ok || n < 0 {
			st.Float.Push(FloatItem(s))
			return
		}
		if s < 0 {
			s = 0
		} else if s > 1 {
			s = 1
		}
		xs := make([]bool, n)
		k := int(math.Round(s * float64(n)))
		for _, p := range st.rng.Positions(int(n), k) {
			xs[p] = true
		}
		st.BoolVector.Push(BoolVecItem(xs))
	})
	reg.Register("BOOLVECTOR.GET", func(st *State, _ *Registry) {
		i, ok := popInt(st)
		if !ok {
			return
		}
		v, ok := st.BoolVector.Pop()
		if !ok {
			st.Int.Push(IntItem(i))
			return
		}
		if len(v.BoolVec) == 0 {
			st.BoolVector.Push(v)
			return
		}
		idx := int(((i % int64(len(v.BoolVec))) + int64(len(v.BoolVec))) % int64(len(v.BoolVec)))
		st.BoolVector.Push(v)
		st.Bool.Push(BoolItem(v.BoolVec[idx]))
	})
	reg.Register("BOOLVECTOR.SET", func(st *State, _ *Registry) {
		val, ok := popBool(st)
		if !ok {
			return
		}
		i, ok := popInt(st)
		if !ok {
			st.Bool.Push(BoolItem(val))
			return
		}
		v, ok := st.BoolVector.Pop()
		if !ok {
			st.Int.Push(IntItem(i))
			st.Bool.Push(BoolItem(val))
			return
		}
		if len(v.BoolVec) == 0 {
			st.BoolVector.Push(v)
			return
		}
		idx := int(((i % int64(len(v.BoolVec))) + int64(len(v.BoolVec))) % int64(len(v.BoolVec)))
		xs := make([]bool, len(v.BoolVec))
		copy(xs, v.BoolVec)
		xs[idx] = val
		st.BoolVector.Push(BoolVecItem(xs))
	})
	reg.Register("BOOLVECTOR.AND", vecOverlapBoolBool(func(a, b bool) bool { return a && b }))
	reg.Register("BOOLVECTOR.OR", vecOverlapBoolBool(func(a, b bool) bool { return a || b }))
	reg.Register("BOOLVECTOR.XOR", vecOverlapBoolBool(func(a, b bool) bool { return a != b }))
}

func registerIntVectorInstructions(reg *Registry) {
	reg.Register("INTVECTOR.ZEROS", func(st *State, _ *Registry) {
		n, ok := popInt(st)
		if !ok || n < 0 {
			return
		}
		st.IntVector.Push(IntVecItem(make([]int64, n)))
	})
	reg.Register("INTVECTOR.ONES", func(st *State, _ *Registry) {
		n, ok := popInt(st)
		if !ok || n < 0 {
			return
		}
		xs := make([]int64, n)
		for i := range xs {
			xs[i] = 1
		}
		st.IntVector.Push(IntVecItem(xs))
	})
	reg.Register("INTVECTOR.RAND", func(st *State, _ *Registry) {
		n, ok := popInt(st)
		if !ok || n < 0 {
			return
		}
		xs := make([]int64, n)
		for i := range xs {
			xs[i] = st.rng.Int(st.Config.MinRandomInt, st.Config.MaxRandomInt)
		}
		st.IntVector.Push(IntVecItem(xs))
	})
	reg.Register("INTVECTOR.GET", func(st *State, _ *Registry) {
		i, ok := popInt(st)
		if !ok {
			return
		}
		v, ok := st.IntVector.Pop()
		if !ok {
			st.Int.Push(IntItem(i))
			return
		}
		if len(v.IntVec) == 0 {
			st.IntVector.Push(v)
			return
		}
		idx := int(((i % int64(len(v.IntVec))) + int64(len(v.IntVec))) % int64(len(v.IntVec)))
		st.IntVector.Push(v)
		st.Int.Push(IntItem(v.IntVec[idx]))
	})
	reg.Register("INTVECTOR.SET", func(st *State, _ *Registry) {
		val, ok := popInt(st)
		if !ok {
			return
		}
		i, ok := popInt(st)
		if !ok {
			st.Int.Push(IntItem(val))
			return
		}
		v, ok := st.IntVector.Pop()
		if !ok {
			st.Int.Push(IntItem(i))
			st.Int.Push(IntItem(val))
			return
		}
		if len(v.IntVec) == 0 {
			st.IntVector.Push(v)
			return
		}
		idx := int(((i % int64(len(v.IntVec))) + int64(len(v.IntVec))) % int64(len(v.IntVec)))
		xs := make([]int64, len(v.IntVec))
		copy(xs, v.IntVec)
		xs[idx] = val
		st.IntVector.Push(IntVecItem(xs))
	})
	reg.Register("INTVECTOR.+", vecOverlapIntInt(saturatingAdd))
	reg.Register("INTVECTOR.-", vecOverlapIntInt(saturatingSub))
	reg.Register("INTVECTOR.*", vecOverlapIntInt(saturatingMul))
}

func registerFloatVectorInstructions(reg *Registry) {
	reg.Register("FLOATVECTOR.ZEROS", func(st *State, _ *Registry) {
		n, ok := popInt(st)
		if !ok || n < 0 {
			return
		}
		st.FloatVector.Push(FloatVecItem(make([]float64, n)))
	})
	reg.Register("FLOATVECTOR.ONES", func(st *State, _ *Registry) {
		n, ok := popInt(st)
		if !ok || n < 0 {
			return
		}
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = 1
		}
		st.FloatVector.Push(FloatVecItem(xs))
	})
	reg.Register("FLOATVECTOR.RAND", func(st *State, _ *Registry) {
		n, ok := popInt(st)
		if !ok || n < 0 {
			return
		}
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = st.rng.Normal(st.Config.MeanRandomFloat, st.Config.StdRandomFloat)
		}
		st.FloatVector.Push(FloatVecItem(xs))
	})
	reg.Register("FLOATVECTOR.GET", func(st *State, _ *Registry) {
		i, ok := popInt(st)
		if !ok {
			return
		}
		v, ok := st.FloatVector.Pop()
		if !ok {
			st.Int.Push(IntItem(i))
			return
		}
		if len(v.FloatVec) == 0 {
			st.FloatVector.Push(v)
			return
		}
		idx := int(((i % int64(len(v.FloatVec))) + int64(len(v.FloatVec))) % int64(len(v.FloatVec)))
		st.FloatVector.Push(v)
		st.Float.Push(FloatItem(v.FloatVec[idx]))
	})
	reg.Register("FLOATVECTOR.SET", func(st *State, _ *Registry) {
		val, ok := popFloat(st)
		if !ok {
			return
		}
		i, ok := popInt(st)
		if !ok {
			st.Float.Push(FloatItem(val))
			return
		}
		v, ok := st.FloatVector.Pop()
		if !ok {
			st.Int.Push(IntItem(i))
			st.Float.Push(FloatItem(val))
			return
		}
		if len(v.FloatVec) == 0 {
			st.FloatVector.Push(v)
			return
		}
		idx := int(((i % int64(len(v.FloatVec))) + int64(len(v.FloatVec))) % int64(len(v.FloatVec)))
		xs := make([]float64, len(v.FloatVec))
		copy(xs, v.FloatVec)
		xs[idx] = val
		st.FloatVector.Push(FloatVecItem(xs))
	})
	reg.Register("FLOATVECTOR.+", vecOverlapFloatFloat(func(a, b float64) float64 { return a + b }))
	reg.Register("FLOATVECTOR.-", vecOverlapFloatFloat(func(a, b float64) float64 { return a - b }))
	reg.Register("FLOATVECTOR.*", vecOverlapFloatFloat(func(a, b float64) float64 { return a * b }))
}

// overlapRange computes the offset-overlap window shared by every
// binary vector operation: a is the top vector (length la), b is the
// one below it (length lb), and o is the INTEGER offset popped first.
// The overlap pairs b[i] with a[i-o] for i in [max(0,o), min(lb, la+o)-1].
func overlapRange(la, lb int, o int64) (lo, hi int) {
	lo = int(o)
	if lo < 0 {
		lo = 0
	}
	hi = lb
	if v := la + int(o); v < hi {
		hi = v
	}
	return lo, hi
}

func vecOverlapBoolBool(f func(a, b bool) bool) InstructionFunc {
	return func(st *State, _ *Registry) {
		o, ok := popInt(st)
		if !ok {
			return
		}
		if st.BoolVector.Depth() < 2 {
			st.Int.Push(IntItem(o))
			return
		}
		a, _ := st.BoolVector.Pop()
		b, _ := st.BoolVector.Pop()
		lo, hi := overlapRange(len(a.BoolVec), len(b.BoolVec), o)
		if lo >= hi {
			st.BoolVector.Push(b)
			st.BoolVector.Push(a)
			st.Int.Push(IntItem(o))
			return
		}
		out := make([]bool, hi-lo)
		for i := lo; i < hi; i++ {
			out[i-lo] = f(a.BoolVec[i-int(o)], b.BoolVec[i])
		}
		st.BoolVector.Push(BoolVecItem(out))
	}
}

func vecOverlapIntInt(f func(a, b int64) int64) InstructionFunc {
	return func(st *State, _ *Registry) {
		o, ok := popInt(st)
		if !ok {
			return
		}
		if st.IntVector.Depth() < 2 {
			st.Int.Push(IntItem(o))
			return
		}
		a, _ := st.IntVector.Pop()
		b, _ := st.IntVector.Pop()
		lo, hi := overlapRange(len(a.IntVec), len(b.IntVec), o)
		if lo >= hi {
			st.IntVector.Push(b)
			st.IntVector.Push(a)
			st.Int.Push(IntItem(o))
			return
		}
		out := make([]int64, hi-lo)
		for i := lo; i < hi; i++ {
			out[i-lo] = f(a.IntVec[i-int(o)], b.IntVec[i])
		}
		st.IntVector.Push(IntVecItem(out))
	}
}

func vecOverlapFloatFloat(f func(a, b float64) float64) InstructionFunc {
	return func(st *State, _ *Registry) {
		o, ok := popInt(st)
		if !ok {
			return
		}
		if st.FloatVector.Depth() < 2 {
			st.Int.Push(IntItem(o))
			return
		}
		a, _ := st.FloatVector.Pop()
		b, _ := st.FloatVector.Pop()
		lo, hi := overlapRange(len(a.FloatVec), len(b.FloatVec), o)
		if lo >= hi {
			st.FloatVector.Push(b)
			st.FloatVector.Push(a)
			st.Int.Push(IntItem(o))
			return
		}
		out := make([]float64, hi-lo)
		for i := lo; i < hi; i++ {
			out[i-lo] = f(a.FloatVec[i-int(o)], b.FloatVec[i])
		}
		st.FloatVector.Push(FloatVecItem(out))
	}
}
