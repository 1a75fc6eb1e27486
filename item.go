package push

import "strconv"

// Kind identifies the variant carried by an Item. Push models every
// value as a closed tagged sum rather than an open interface hierarchy
// so instruction functions can switch on Kind instead of doing type
// assertions against arbitrary Go types.
type Kind uint8

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindName
	KindInstruction
	KindList
	KindBoolVec
	KindIntVec
	KindFloatVec
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "BOOLEAN"
	case KindInt:
		return "INTEGER"
	case KindFloat:
		return "FLOAT"
	case KindName:
		return "NAME"
	case KindInstruction:
		return "INSTRUCTION"
	case KindList:
		return "CODE"
	case KindBoolVec:
		return "BOOLVECTOR"
	case KindIntVec:
		return "INTVECTOR"
	case KindFloatVec:
		return "FLOATVECTOR"
	default:
		return "UNKNOWN"
	}
}

// Item is the tagged value carried by every Push stack. Only the
// fields matching Kind are meaningful; the rest are zero. List,
// BoolVec, IntVec and FloatVec are treated as immutable once
// constructed and are safe to share between stacks -- operations that
// would mutate them always build a new backing slice.
type Item struct {
	Kind     Kind
	Bool     bool
	Int      int64
	Float    float64
	Name     string // holds the identifier for KindName and KindInstruction
	List     []Item
	BoolVec  []bool
	IntVec   []int64
	FloatVec []float64
}

func BoolItem(b bool) Item     { return Item{Kind: KindBool, Bool: b} }
func IntItem(i int64) Item     { return Item{Kind: KindInt, Int: i} }
func FloatItem(f float64) Item { return Item{Kind: KindFloat, Float: f} }
func NameItem(n string) Item   { return Item{Kind: KindName, Name: n} }
func InstructionItem(n string) Item {
	return Item{Kind: KindInstruction, Name: n}
}
func ListItem(xs []Item) Item { return Item{Kind: KindList, List: xs} }
func BoolVecItem(xs []bool) Item {
	return Item{Kind: KindBoolVec, BoolVec: xs}
}
func IntVecItem(xs []int64) Item {
	return Item{Kind: KindIntVec, IntVec: xs}
}
func FloatVecItem(xs []float64) Item {
	return Item{Kind: KindFloatVec, FloatVec: xs}
}

// Points counts the atoms and list nodes in an item, recursively. An
// empty list still counts as one point (the node itself).
func (it Item) Points() int {
	if it.Kind != KindList {
		return 1
	}
	n := 1
	for _, c := range it.List {
		n += c.Points()
	}
	return n
}

// String renders the item in the parser's canonical surface syntax,
// suitable for the round-trip parse/print/parse property.
func (it Item) String() string {
	switch it.Kind {
	case KindBool:
		if it.Bool {
			return "TRUE"
		}
		return "FALSE"
	case KindInt:
		return strconv.FormatInt(it.Int, 10)
	case KindFloat:
		return formatFloat(it.Float)
	case KindName:
		return it.Name
	case KindInstruction:
		return it.Name
	case KindList:
		s := "("
		for i, c := range it.List {
			if i > 0 {
				s += " "
			}
			s += c.String()
		}
		return s + ")"
	case KindBoolVec:
		return "BOOL" + joinVec(it.BoolVec, func(b bool) string {
			if b {
				return "1"
			}
			return "0"
		})
	case KindIntVec:
		return "INT" + joinVec(it.IntVec, func(i int64) string {
			return strconv.FormatInt(i, 10)
		})
	case KindFloatVec:
		return "FLOAT" + joinVec(it.FloatVec, formatFloat)
	default:
		return "?"
	}
}

func joinVec[T any](xs []T, f func(T) string) string {
	s := "["
	for i, x := range xs {
		if i > 0 {
			s += ","
		}
		s += f(x)
	}
	return s + "]"
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return s
		}
	}
	return s + ".0"
}
