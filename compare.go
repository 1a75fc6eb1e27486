package push

// Equal reports whether two items are structurally identical: same
// Kind and same payload, recursively for lists and element-wise for
// vectors. This backs every T.EQUAL instruction and the CODE/EXEC
// structural operations that need to recognize a repeated sub-list.
func Equal(a, b Item) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindBool:
		return a.Bool == b.Bool
	case KindInt:
		return a.Int == b.Int
	case KindFloat:
		return a.Float == b.Float
	case KindName, KindInstruction:
		return a.Name == b.Name
	case KindList:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !Equal(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	case KindBoolVec:
		return equalSlice(a.BoolVec, b.BoolVec)
	case KindIntVec:
		return equalSlice(a.IntVec, b.IntVec)
	case KindFloatVec:
		return equalSlice(a.FloatVec, b.FloatVec)
	default:
		return false
	}
}

func equalSlice[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
