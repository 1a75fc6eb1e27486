package push

import (
	"math"
	"testing"
)

func TestSaturatingMulMinInt64TimesNegOne(t *testing.T) {
	if got := saturatingMul(math.MinInt64, -1); got != math.MaxInt64 {
		t.Fatalf("saturatingMul(MinInt64, -1) = %d, want MaxInt64", got)
	}
	if got := saturatingMul(-1, math.MinInt64); got != math.MaxInt64 {
		t.Fatalf("saturatingMul(-1, MinInt64) = %d, want MaxInt64", got)
	}
}

func TestRunIntegerDivideMinInt64ByNegOneSaturates(t *testing.T) {
	in, st := newTestInterpreter(t)
	st.Int.Push(IntItem(math.MinInt64))
	st.Int.Push(IntItem(-1))
	prog := mustParse(t, in.Registry, "( INTEGER./ )")
	if _, err := run(in, st, prog); err != nil {
		t.Fatal(err)
	}
	top, ok := st.Int.Peek()
	if !ok || top.Int != math.MaxInt64 {
		t.Fatalf("INTEGER top = %v, want MaxInt64 (MinInt64 / -1 must saturate)", top)
	}
}

func TestRunIntegerMultiplyMinInt64ByNegOneSaturates(t *testing.T) {
	in, st := newTestInterpreter(t)
	st.Int.Push(IntItem(math.MinInt64))
	st.Int.Push(IntItem(-1))
	prog := mustParse(t, in.Registry, "( INTEGER.* )")
	if _, err := run(in, st, prog); err != nil {
		t.Fatal(err)
	}
	top, ok := st.Int.Peek()
	if !ok || top.Int != math.MaxInt64 {
		t.Fatalf("INTEGER top = %v, want MaxInt64 (MinInt64 * -1 must saturate)", top)
	}
}
