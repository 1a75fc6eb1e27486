package push

// pushChecked pushes it onto dst, honoring the max_points_in_program
// budget of §4.4: a push that would introduce a code item over budget
// is a silent NOOP rather than an error.
func pushChecked(st *State, dst *Stack[Item], it Item) {
	if it.Points() > st.Config.MaxPointsInProgram {
		return
	}
	if !st.underGrowthCap() {
		return
	}
	dst.Push(it)
}

func asList(it Item) []Item {
	if it.Kind == KindList {
		return it.List
	}
	return []Item{it}
}

func registerCodeExecInstructions(reg *Registry) {
	registerStackFamily(reg, "CODE", func(st *State) *Stack[Item] { return st.Code })
	registerStackFamily(reg, "EXEC", func(st *State) *Stack[Item] { return st.Exec })

	reg.Register("CODE.QUOTE", func(st *State, _ *Registry) {
		it, ok := st.Exec.Pop()
		if !ok {
			return
		}
		pushChecked(st, st.Code, it)
	})

	reg.Register("CODE.DO", func(st *State, _ *Registry) {
		it, ok := st.Code.Peek()
		if !ok {
			return
		}
		st.pushExec(clone(it))
	})
	reg.Register("CODE.DO*", func(st *State, _ *Registry) {
		it, ok := st.Code.Pop()
		if !ok {
			return
		}
		st.pushExec(it)
	})

	reg.Register("CODE.IF", registerBranch(func(st *State) *Stack[Item] { return st.Code }))
	reg.Register("EXEC.IF", registerBranch(func(st *State) *Stack[Item] { return st.Exec }))

	reg.Register("CODE.DO*RANGE", doRange(func(st *State) (Item, bool) { return st.Code.Pop() }))
	reg.Register("EXEC.DO*RANGE", doRange(func(st *State) (Item, bool) { return st.Exec.Pop() }))

	reg.Register("CODE.DO*COUNT", doCount(func(st *State) (Item, bool) { return st.Code.Pop() }))
	reg.Register("EXEC.DO*COUNT", doCount(func(st *State) (Item, bool) { return st.Exec.Pop() }))

	reg.Register("CODE.DO*TIMES", doTimes(func(st *State) (Item, bool) { return st.Code.Pop() }))
	reg.Register("EXEC.DO*TIMES", doTimes(func(st *State) (Item, bool) { return st.Exec.Pop() }))

	reg.Register("EXEC.K", func(st *State, _ *Registry) {
		if st.Exec.Depth() < 2 {
			return
		}
		a, _ := st.Exec.Pop()
		_, _ = st.Exec.Pop()
		st.pushExec(a)
	})
	reg.Register("EXEC.S", func(st *State, _ *Registry) {
		if st.Exec.Depth() < 3 {
			return
		}
		a, _ := st.Exec.Pop()
		b, _ := st.Exec.Pop()
		c, _ := st.Exec.Pop()
		// a c (b c)
		bc := ListItem([]Item{b, clone(c)})
		st.pushExec(bc)
		st.pushExec(c)
		st.pushExec(a)
	})
	reg.Register("EXEC.Y", func(st *State, _ *Registry) {
		a, ok := st.Exec.Pop()
		if !ok {
			return
		}
		cont := ListItem([]Item{InstructionItem("EXEC.Y"), clone(a)})
		st.pushExec(cont)
		st.pushExec(a)
	})

	reg.Register("CODE.LENGTH", func(st *State, _ *Registry) {
		it, ok := st.Code.Pop()
		if !ok {
			return
		}
		st.Int.Push(IntItem(int64(len(asList(it)))))
	})
	reg.Register("CODE.NTH", func(st *State, _ *Registry) {
		i, ok := popInt(st)
		if !ok {
			return
		}
		it, ok := st.Code.Pop()
		if !ok {
			st.Int.Push(IntItem(i))
			return
		}
		xs := asList(it)
		if len(xs) == 0 {
			return
		}
		idx := int(((i % int64(len(xs))) + int64(len(xs))) % int64(len(xs)))
		st.Code.Push(clone(xs[idx]))
	})
	reg.Register("CODE.CAR", func(st *State, _ *Registry) {
		it, ok := st.Code.Pop()
		if !ok {
			return
		}
		xs := asList(it)
		if len(xs) == 0 {
			return
		}
		st.Code.Push(clone(xs[0]))
	})
	reg.Register("CODE.CDR", func(st *State, _ *Registry) {
		it, ok := st.Code.Pop()
		if !ok {
			return
		}
		xs := asList(it)
		if len(xs) == 0 {
			st.Code.Push(ListItem(nil))
			return
		}
		rest := make([]Item, len(xs)-1)
		for i, x := range xs[1:] {
			rest[i] = clone(x)
		}
		pushChecked(st, st.Code, ListItem(rest))
	})
	reg.Register("CODE.CONS", func(st *State, _ *Registry) {
		if st.Code.Depth() < 2 {
			return
		}
		lst, _ := st.Code.Pop()
		head, _ := st.Code.Pop()
		xs := asList(lst)
		result := make([]Item, 0, len(xs)+1)
		result = append(result, clone(head))
		for _, x := range xs {
			result = append(result, clone(x))
		}
		pushChecked(st, st.Code, ListItem(result))
	})
	reg.Register("CODE.APPEND", func(st *State, _ *Registry) {
		if st.Code.Depth() < 2 {
			return
		}
		b, _ := st.Code.Pop()
		a, _ := st.Code.Pop()
		result := append(append([]Item{}, asList(a)...), asList(b)...)
		pushChecked(st, st.Code, ListItem(result))
	})
	reg.Register("CODE.LIST", func(st *State, _ *Registry) {
		if st.Code.Depth() < 2 {
			return
		}
		b, _ := st.Code.Pop()
		a, _ := st.Code.Pop()
		pushChecked(st, st.Code, ListItem([]Item{a, b}))
	})
	reg.Register("CODE.MEMBER", func(st *State, _ *Registry) {
		if st.Code.Depth() < 2 {
			return
		}
		x, _ := st.Code.Pop()
		lst, _ := st.Code.Pop()
		found := false
		for _, e := range asList(lst) {
			if Equal(e, x) {
				found = true
				break
			}
		}
		st.Bool.Push(BoolItem(found))
	})
	reg.Register("CODE.CONTAINS", func(st *State, _ *Registry) {
		if st.Code.Depth() < 2 {
			return
		}
		needle, _ := st.Code.Pop()
		hay, _ := st.Code.Pop()
		st.Bool.Push(BoolItem(containsDeep(hay, needle)))
	})
	reg.Register("CODE.POSITION", func(st *State, _ *Registry) {
		if st.Code.Depth() < 2 {
			return
		}
		x, _ := st.Code.Pop()
		lst, _ := st.Code.Pop()
		pos := int64(-1)
		for i, e := range asList(lst) {
			if Equal(e, x) {
				pos = int64(i)
				break
			}
		}
		st.Int.Push(IntItem(pos))
	})
	reg.Register("CODE.EXTRACT", func(st *State, _ *Registry) {
		i, ok := popInt(st)
		if !ok {
			return
		}
		it, ok := st.Code.Pop()
		if !ok {
			st.Int.Push(IntItem(i))
			return
		}
		points := enumeratePoints(it)
		idx := int(((i % int64(len(points))) + int64(len(points))) % int64(len(points)))
		st.Code.Push(clone(points[idx]))
	})
	reg.Register("CODE.INSERT", func(st *State, _ *Registry) {
		i, ok := popInt(st)
		if !ok {
			return
		}
		if st.Code.Depth() < 2 {
			st.Int.Push(IntItem(i))
			return
		}
		repl, _ := st.Code.Pop()
		tree, _ := st.Code.Pop()
		n := tree.Points()
		idx := int(((i % int64(n)) + int64(n)) % int64(n))
		result, _ := replaceAtPoint(tree, idx, repl)
		pushChecked(st, st.Code, result)
	})
	reg.Register("CODE.SUBSTITUTE", func(st *State, _ *Registry) {
		if st.Code.Depth() < 3 {
			return
		}
		replacement, _ := st.Code.Pop()
		target, _ := st.Code.Pop()
		tree, _ := st.Code.Pop()
		pushChecked(st, st.Code, substitute(tree, target, replacement))
	})

	reg.Register("CODE.RAND", func(st *State, _ *Registry) {
		pushChecked(st, st.Code, randomCode(st, reg))
	})
}

func registerBranch(source func(*State) *Stack[Item]) InstructionFunc {
	return func(st *State, _ *Registry) {
		src := source(st)
		if st.Bool.Depth() < 1 || src.Depth() < 2 {
			return
		}
		cond, _ := st.Bool.Pop()
		whenTrue, _ := src.Pop()
		whenFalse, _ := src.Pop()
		if cond.Bool {
			st.pushExec(whenTrue)
		} else {
			st.pushExec(whenFalse)
		}
	}
}

// doRange implements CODE.DO*RANGE/EXEC.DO*RANGE (§4.4). popBody is
// only consulted for a fresh, top-level call: the continuation it
// builds always recurses through EXEC.DO*RANGE and carries the body
// along as its own trailing element, so every subsequent iteration
// finds the body already waiting on EXEC regardless of whether the
// loop was originally opened via CODE or EXEC.
func doRange(popBody func(*State) (Item, bool)) InstructionFunc {
	return func(st *State, _ *Registry) {
		if st.Int.Depth() < 2 {
			return
		}
		d, _ := popInt(st)
		c, _ := popInt(st)
		body, ok := popBody(st)
		if !ok {
			// Restore both INTEGER operands: a NOOP must leave every
			// stack exactly as it found it (§4.4, I4).
			st.Int.Push(IntItem(c))
			st.Int.Push(IntItem(d))
			return
		}
		invokeRange(st, c, d, body)
	}
}

func doCount(popBody func(*State) (Item, bool)) InstructionFunc {
	return func(st *State, _ *Registry) {
		n, ok := popInt(st)
		if !ok {
			return
		}
		if n < 1 {
			st.Int.Push(IntItem(n))
			return
		}
		body, ok := popBody(st)
		if !ok {
			st.Int.Push(IntItem(n))
			return
		}
		invokeRange(st, 0, n-1, body)
	}
}

func doTimes(popBody func(*State) (Item, bool)) InstructionFunc {
	return func(st *State, _ *Registry) {
		n, ok := popInt(st)
		if !ok {
			return
		}
		if n < 1 {
			st.Int.Push(IntItem(n))
			return
		}
		body, ok := popBody(st)
		if !ok {
			st.Int.Push(IntItem(n))
			return
		}
		wrapped := ListItem([]Item{InstructionItem("INTEGER.POP"), body})
		invokeRange(st, 0, n-1, wrapped)
	}
}

// invokeRange pushes c onto INTEGER then, unless c has reached d,
// re-pushes a recursive ( (c±1) d EXEC.DO*RANGE B ) continuation onto
// EXEC followed by B itself so B executes before the recursive step.
func invokeRange(st *State, c, d int64, body Item) {
	st.Int.Push(IntItem(c))
	if c == d {
		st.pushExec(body)
		return
	}
	step := int64(1)
	if d < c {
		step = -1
	}
	cont := ListItem([]Item{
		IntItem(c + step),
		IntItem(d),
		InstructionItem("EXEC.DO*RANGE"),
		clone(body),
	})
	pushChecked(st, st.Exec, cont)
	st.pushExec(body)
}

func enumeratePoints(it Item) []Item {
	if it.Kind != KindList {
		return []Item{it}
	}
	points := []Item{it}
	for _, c := range it.List {
		points = append(points, enumeratePoints(c)...)
	}
	return points
}

// replaceAtPoint walks a pre-order traversal of tree, replacing the
// idx-th point (0 = the root itself) with repl. remaining is the
// count still to skip, threaded through the recursion.
func replaceAtPoint(tree Item, idx int, repl Item) (Item, int) {
	if idx == 0 {
		return clone(repl), -1
	}
	remaining := idx - 1
	if tree.Kind != KindList {
		return tree, remaining
	}
	xs := make([]Item, len(tree.List))
	copy(xs, tree.List)
	for i, c := range xs {
		if remaining < 0 {
			break
		}
		var replaced Item
		replaced, remaining = replaceAtPoint(c, remaining, repl)
		xs[i] = replaced
	}
	return ListItem(xs), remaining
}

func containsDeep(hay, needle Item) bool {
	if Equal(hay, needle) {
		return true
	}
	if hay.Kind != KindList {
		return false
	}
	for _, c := range hay.List {
		if containsDeep(c, needle) {
			return true
		}
	}
	return false
}

func substitute(tree, target, replacement Item) Item {
	if Equal(tree, target) {
		return clone(replacement)
	}
	if tree.Kind != KindList {
		return tree
	}
	xs := make([]Item, len(tree.List))
	for i, c := range tree.List {
		xs[i] = substitute(c, target, replacement)
	}
	return ListItem(xs)
}

// randomCode builds a small, flat random program bounded by
// max_points_in_random_expression, drawing each atom from one of four
// kinds: a BOOLEAN, INTEGER or FLOAT literal, or an instruction name
// known to reg. It backs CODE.RAND, the single-instruction analogue of
// the ERC generation used by (out of scope) evolutionary search.
func randomCode(st *State, reg *Registry) Item {
	// The enclosing list is itself one point, leaving limit-1 for atoms.
	limit := st.Config.MaxPointsInRandomExpression - 1
	n := 0
	if limit >= 1 {
		n = int(st.rng.Int(1, int64(limit)))
	}
	names := reg.Names()
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		switch st.rng.Int(0, 3) {
		case 0:
			items = append(items, BoolItem(st.rng.Bool()))
		case 1:
			items = append(items, IntItem(st.rng.Int(st.Config.MinRandomInt, st.Config.MaxRandomInt)))
		case 2:
			items = append(items, FloatItem(st.rng.Normal(st.Config.MeanRandomFloat, st.Config.StdRandomFloat)))
		default:
			if len(names) == 0 {
				items = append(items, BoolItem(st.rng.Bool()))
				continue
			}
			items = append(items, InstructionItem(names[st.rng.Int(0, int64(len(names)-1))]))
		}
	}
	return ListItem(items)
}
