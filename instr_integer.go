package push

import (
	"math"
	"strconv"
)

func registerIntInstructions(reg *Registry) {
	registerStackFamily(reg, "INTEGER", func(st *State) *Stack[Item] { return st.Int })

	reg.Register("INTEGER.+", func(st *State, _ *Registry) {
		binInt(st, saturatingAdd)
	})
	reg.Register("INTEGER.-", func(st *State, _ *Registry) {
		binInt(st, saturatingSub)
	})
	reg.Register("INTEGER.*", func(st *State, _ *Registry) {
		binInt(st, saturatingMul)
	})
	reg.Register("INTEGER./", func(st *State, _ *Registry) {
		binIntGuarded(st, func(a, b int64) (int64, bool) {
			if b == 0 {
				return 0, false
			}
			if a == math.MinInt64 && b == -1 {
				return math.MaxInt64, true
			}
			return a / b, true
		})
	})
	reg.Register("INTEGER.%", func(st *State, _ *Registry) {
		binIntGuarded(st, func(a, b int64) (int64, bool) {
			if b == 0 {
				return 0, false
			}
			return a % b, true
		})
	})
	reg.Register("INTEGER.MIN", func(st *State, _ *Registry) {
		binInt(st, func(a, b int64) int64 {
			if a < b {
				return a
			}
			return b
		})
	})
	reg.Register("INTEGER.MAX", func(st *State, _ *Registry) {
		binInt(st, func(a, b int64) int64 {
			if a > b {
				return a
			}
			return b
		})
	})
	reg.Register("INTEGER.<", func(st *State, _ *Registry) {
		binIntBool(st, func(a, b int64) bool { return a < b })
	})
	reg.Register("INTEGER.>", func(st *State, _ *Registry) {
		binIntBool(st, func(a, b int64) bool { return a > b })
	})
	reg.Register("INTEGER.=", func(st *State, _ *Registry) {
		binIntBool(st, func(a, b int64) bool { return a == b })
	})
	reg.Register("INTEGER.FROMFLOAT", func(st *State, _ *Registry) {
		f, ok := popFloat(st)
		if !ok {
			return
		}
		st.Int.Push(IntItem(saturatingFloatToInt(f)))
	})
	reg.Register("INTEGER.FROMBOOLEAN", func(st *State, _ *Registry) {
		b, ok := popBool(st)
		if !ok {
			return
		}
		if b {
			st.Int.Push(IntItem(1))
		} else {
			st.Int.Push(IntItem(0))
		}
	})
	reg.Register("INTEGER.FROMSTRING", func(st *State, _ *Registry) {
		n, ok := st.Name.Pop()
		if !ok {
			return
		}
		i, err := strconv.ParseInt(n.Name, 10, 64)
		if err != nil {
			st.Name.Push(n)
			return
		}
		st.Int.Push(IntItem(i))
	})
	reg.Register("INTEGER.RAND", func(st *State, _ *Registry) {
		st.Int.Push(IntItem(st.rng.Int(st.Config.MinRandomInt, st.Config.MaxRandomInt)))
	})
}

func binInt(st *State, f func(a, b int64) int64) {
	if st.Int.Depth() < 2 {
		return
	}
	b, _ := st.Int.Pop()
	a, _ := st.Int.Pop()
	st.Int.Push(IntItem(f(a.Int, b.Int)))
}

// binIntGuarded leaves both operands on the stack (a true NOOP) when
// f reports failure, e.g. division or modulo by zero.
func binIntGuarded(st *State, f func(a, b int64) (int64, bool)) {
	if st.Int.Depth() < 2 {
		return
	}
	b, _ := st.Int.Pop()
	a, _ := st.Int.Pop()
	if r, ok := f(a.Int, b.Int); ok {
		st.Int.Push(IntItem(r))
	} else {
		st.Int.Push(a)
		st.Int.Push(b)
	}
}

func binIntBool(st *State, f func(a, b int64) bool) {
	if st.Int.Depth() < 2 {
		return
	}
	b, _ := st.Int.Pop()
	a, _ := st.Int.Pop()
	st.Bool.Push(BoolItem(f(a.Int, b.Int)))
}

func saturatingAdd(a, b int64) int64 {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		if b > 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return c
}

func saturatingSub(a, b int64) int64 {
	c := a - b
	if (b < 0 && c < a) || (b > 0 && c > a) {
		if b < 0 {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return c
}

func saturatingMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	if (a == math.MinInt64 && b == -1) || (a == -1 && b == math.MinInt64) {
		return math.MaxInt64
	}
	c := a * b
	if c/b != a {
		if (a > 0) == (b > 0) {
			return math.MaxInt64
		}
		return math.MinInt64
	}
	return c
}

func saturatingFloatToInt(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}
