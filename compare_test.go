package push

import "testing"

func TestEqual(t *testing.T) {
	testCases := []struct {
		name     string
		l, r     Item
		expected bool
	}{
		{"bool same", BoolItem(true), BoolItem(true), true},
		{"bool diff", BoolItem(true), BoolItem(false), false},
		{"int same", IntItem(5), IntItem(5), true},
		{"int diff", IntItem(5), IntItem(6), false},
		{"float same", FloatItem(1.5), FloatItem(1.5), true},
		{"int vs float", IntItem(1), FloatItem(1), false},
		{"name same", NameItem("foo"), NameItem("foo"), true},
		{"name vs instruction", NameItem("FOO"), InstructionItem("FOO"), false},
		{"empty lists", ListItem(nil), ListItem(nil), true},
		{
			"nested lists equal",
			ListItem([]Item{IntItem(1), ListItem([]Item{BoolItem(true)})}),
			ListItem([]Item{IntItem(1), ListItem([]Item{BoolItem(true)})}),
			true,
		},
		{
			"nested lists differ",
			ListItem([]Item{IntItem(1), ListItem([]Item{BoolItem(true)})}),
			ListItem([]Item{IntItem(1), ListItem([]Item{BoolItem(false)})}),
			false,
		},
		{"boolvec same", BoolVecItem([]bool{true, false}), BoolVecItem([]bool{true, false}), true},
		{"boolvec diff length", BoolVecItem([]bool{true}), BoolVecItem([]bool{true, false}), false},
		{"intvec same", IntVecItem([]int64{1, 2, 3}), IntVecItem([]int64{1, 2, 3}), true},
		{"floatvec same", FloatVecItem([]float64{1, 2}), FloatVecItem([]float64{1, 2}), true},
		{"floatvec diff", FloatVecItem([]float64{1, 2}), FloatVecItem([]float64{1, 3}), false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Equal(tc.l, tc.r); got != tc.expected {
				t.Errorf("Equal(%v, %v): got %v, expected %v", tc.l, tc.r, got, tc.expected)
			}
			if got := Equal(tc.r, tc.l); got != tc.expected {
				t.Errorf("Equal is not symmetric for (%v, %v)", tc.l, tc.r)
			}
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	original := ListItem([]Item{IntItem(1), BoolVecItem([]bool{true, false})})
	cloned := clone(original)
	if !Equal(original, cloned) {
		t.Fatalf("clone changed value: %v vs %v", original, cloned)
	}
	cloned.List[1].BoolVec[0] = false
	if original.List[1].BoolVec[0] != true {
		t.Fatalf("mutating a clone's vector mutated the original")
	}
}
