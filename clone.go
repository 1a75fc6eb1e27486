package push

// clone deep-copies an Item so that mutating one copy's backing slices
// never leaks into a value shared across other stacks. Lists are
// acyclic by construction (the parser cannot build cycles and no
// instruction splices a list into itself), so a plain recursive copy
// terminates.
func clone(it Item) Item {
	switch it.Kind {
	case KindList:
		xs := make([]Item, len(it.List))
		for i, c := range it.List {
			xs[i] = clone(c)
		}
		return ListItem(xs)
	case KindBoolVec:
		xs := make([]bool, len(it.BoolVec))
		copy(xs, it.BoolVec)
		return BoolVecItem(xs)
	case KindIntVec:
		xs := make([]int64, len(it.IntVec))
		copy(xs, it.IntVec)
		return IntVecItem(xs)
	case KindFloatVec:
		xs := make([]float64, len(it.FloatVec))
		copy(xs, it.FloatVec)
		return FloatVecItem(xs)
	default:
		return it
	}
}
