package push

import (
	"context"
	"testing"
)

func newTestInterpreter(t *testing.T) (*Interpreter, *State) {
	t.Helper()
	reg := NewRegistry()
	LoadDefaults(reg)
	st, err := NewState(DefaultConfig())
	if err != nil {
		t.Fatalf("NewState: %v", err)
	}
	return NewInterpreter(reg), st
}

func mustParse(t *testing.T, reg *Registry, src string) Item {
	t.Helper()
	it, err := Parse(src, reg)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	return it
}

func TestRunSimpleArithmetic(t *testing.T) {
	in, st := newTestInterpreter(t)
	prog := mustParse(t, in.Registry, "( 2 3 INTEGER.+ )")
	outcome, err := in.Run(context.Background(), st, prog)
	if err != nil || outcome != OutcomeCompleted {
		t.Fatalf("Run: outcome=%v err=%v", outcome, err)
	}
	top, ok := st.Int.Peek()
	if !ok || top.Int != 5 {
		t.Fatalf("INTEGER top = %v, want 5", top)
	}
}

func TestRunBooleanAnd(t *testing.T) {
	in, st := newTestInterpreter(t)
	prog := mustParse(t, in.Registry, "( TRUE FALSE BOOLEAN.AND )")
	if _, err := run(in, st, prog); err != nil {
		t.Fatal(err)
	}
	top, ok := st.Bool.Peek()
	if !ok || top.Bool != false {
		t.Fatalf("BOOLEAN top = %v, want FALSE", top)
	}
}

func TestRunDivisionByZeroIsNoop(t *testing.T) {
	in, st := newTestInterpreter(t)
	prog := mustParse(t, in.Registry, "( 7 0 INTEGER./ )")
	if _, err := run(in, st, prog); err != nil {
		t.Fatal(err)
	}
	if st.Int.Depth() != 2 {
		t.Fatalf("INTEGER depth = %d, want 2 (noop should leave both operands)", st.Int.Depth())
	}
	a, _ := st.Int.At(0)
	b, _ := st.Int.At(1)
	if a.Int != 0 || b.Int != 7 {
		t.Fatalf("INTEGER stack = [%v, %v], want [0, 7] top-first", a, b)
	}
}

func TestRunBoolVectorAndOffsetOverlap(t *testing.T) {
	in, st := newTestInterpreter(t)
	prog := mustParse(t, in.Registry, "( BOOL[1,1,0,1] BOOL[1,0,1] 1 BOOLVECTOR.AND )")
	if _, err := run(in, st, prog); err != nil {
		t.Fatal(err)
	}
	top, ok := st.BoolVector.Peek()
	if !ok {
		t.Fatal("BOOLVECTOR empty")
	}
	// b = [1,1,0,1] (len 4), a = [1,0,1] (len 3), offset = 1.
	// overlap i in [max(0,1), min(4,3+1)-1] = [1,3], pairing b[i] with a[i-1];
	// the result has exactly the overlap's length (3), not b's.
	want := []bool{
		true,  // b[1]=1 & a[0]=1
		false, // b[2]=0 & a[1]=0
		true,  // b[3]=1 & a[2]=1
	}
	if len(top.BoolVec) != len(want) {
		t.Fatalf("result length = %d, want %d", len(top.BoolVec), len(want))
	}
	for i, w := range want {
		if top.BoolVec[i] != w {
			t.Errorf("result[%d] = %v, want %v", i, top.BoolVec[i], w)
		}
	}
}

func TestRunExecDoRange(t *testing.T) {
	in, st := newTestInterpreter(t)
	// EXEC.DO*RANGE steals its body straight off EXEC, so the body
	// must appear textually AFTER the instruction: it has to still be
	// sitting unclaimed on EXEC when DO*RANGE's own turn comes.
	// Accumulate the loop counter 0..3 into INTEGER via INTEGER.+.
	prog := mustParse(t, in.Registry, "( 0 0 3 EXEC.DO*RANGE ( INTEGER.+ ) )")
	st.Config.MaxSteps = 1000
	if _, err := run(in, st, prog); err != nil {
		t.Fatal(err)
	}
	top, ok := st.Int.Peek()
	if !ok {
		t.Fatal("INTEGER empty")
	}
	if top.Int != 0+1+2+3 {
		t.Fatalf("accumulated total = %d, want 6", top.Int)
	}
}

func TestRunExecKKeepsFirstArgument(t *testing.T) {
	in, st := newTestInterpreter(t)
	// EXEC.K a b -> a. a and b are written after the instruction (they're
	// stolen straight off EXEC), so 1 is "a" and 2 is "b"; the result must
	// be 1, not 2.
	prog := mustParse(t, in.Registry, "( EXEC.K 1 2 )")
	if _, err := run(in, st, prog); err != nil {
		t.Fatal(err)
	}
	top, ok := st.Int.Peek()
	if !ok || top.Int != 1 {
		t.Fatalf("INTEGER top = %v, want 1 (EXEC.K a b -> a)", top)
	}
}

func TestRunCodeIfBranches(t *testing.T) {
	in, st := newTestInterpreter(t)
	// CODE.QUOTE also steals its argument off EXEC, so it too must
	// precede the block it captures. Quoting (2) then (1) leaves (1)
	// on top of CODE, which CODE.IF treats as the true branch.
	prog := mustParse(t, in.Registry, "( CODE.QUOTE ( 2 ) CODE.QUOTE ( 1 ) TRUE CODE.IF )")
	if _, err := run(in, st, prog); err != nil {
		t.Fatal(err)
	}
	top, ok := st.Int.Peek()
	if !ok || top.Int != 1 {
		t.Fatalf("INTEGER top = %v, want 1 (true branch)", top)
	}
}

func TestRunCodeIfFalseBranch(t *testing.T) {
	in, st := newTestInterpreter(t)
	prog := mustParse(t, in.Registry, "( CODE.QUOTE ( 2 ) CODE.QUOTE ( 1 ) FALSE CODE.IF )")
	if _, err := run(in, st, prog); err != nil {
		t.Fatal(err)
	}
	top, ok := st.Int.Peek()
	if !ok || top.Int != 2 {
		t.Fatalf("INTEGER top = %v, want 2 (false branch)", top)
	}
}

func TestRunFactorialViaExecDoRange(t *testing.T) {
	in, st := newTestInterpreter(t)
	prog := mustParse(t, in.Registry, "( 1 1 5 EXEC.DO*RANGE ( INTEGER.* ) )")
	if _, err := run(in, st, prog); err != nil {
		t.Fatal(err)
	}
	top, ok := st.Int.Peek()
	if !ok || top.Int != 120 {
		t.Fatalf("factorial result = %v, want 120", top)
	}
}

func TestRunUnboundNamePushesToNameStack(t *testing.T) {
	in, st := newTestInterpreter(t)
	prog := mustParse(t, in.Registry, "( FOO )")
	if _, err := run(in, st, prog); err != nil {
		t.Fatal(err)
	}
	top, ok := st.Name.Peek()
	if !ok || top.Name != "FOO" {
		t.Fatalf("NAME top = %v, want FOO", top)
	}
}

func TestRunDefineAndResolveName(t *testing.T) {
	in, st := newTestInterpreter(t)
	// EXEC.DEFINE steals its value off EXEC too, so it precedes the
	// value in program text: NAME.QUOTE FOO binds the identifier,
	// EXEC.DEFINE 42 captures the literal that follows it, and the
	// trailing FOO resolves through the binding.
	prog := mustParse(t, in.Registry, "( NAME.QUOTE FOO EXEC.DEFINE 42 FOO )")
	if _, err := run(in, st, prog); err != nil {
		t.Fatal(err)
	}
	top, ok := st.Int.Peek()
	if !ok || top.Int != 42 {
		t.Fatalf("INTEGER top = %v, want 42 (FOO resolved to bound value)", top)
	}
}

func TestRunIntegerEqualConsumesBothOperands(t *testing.T) {
	in, st := newTestInterpreter(t)
	prog := mustParse(t, in.Registry, "( 1 1 INTEGER.EQUAL )")
	if _, err := run(in, st, prog); err != nil {
		t.Fatal(err)
	}
	if depth := st.Int.Depth(); depth != 0 {
		t.Fatalf("INTEGER depth = %d, want 0 (EQUAL must pop both operands)", depth)
	}
	top, ok := st.Bool.Peek()
	if !ok || top.Bool != true {
		t.Fatalf("BOOLEAN top = %v, want true", top)
	}
}

func TestRunIntegerEqualUnderflowIsNoop(t *testing.T) {
	in, st := newTestInterpreter(t)
	prog := mustParse(t, in.Registry, "( 1 INTEGER.EQUAL )")
	if _, err := run(in, st, prog); err != nil {
		t.Fatal(err)
	}
	if depth := st.Int.Depth(); depth != 1 {
		t.Fatalf("INTEGER depth = %d, want 1 (underflow must leave the lone operand)", depth)
	}
	if depth := st.Bool.Depth(); depth != 0 {
		t.Fatalf("BOOLEAN depth = %d, want 0 (underflow must not push a result)", depth)
	}
}

func TestRunStepBudgetStopsInfiniteLoop(t *testing.T) {
	in, st := newTestInterpreter(t)
	st.Config.MaxSteps = 50
	// EXEC.Y unconditionally reschedules itself against its argument,
	// so this never terminates on its own -- exactly what the step
	// budget exists to bound.
	prog := mustParse(t, in.Registry, "( EXEC.Y ( ) )")
	outcome, err := in.Run(context.Background(), st, prog)
	if err != nil {
		t.Fatal(err)
	}
	if outcome != OutcomeStepBudgetExhausted {
		t.Fatalf("outcome = %v, want step-budget-exhausted", outcome)
	}
}

func run(in *Interpreter, st *State, prog Item) (Outcome, error) {
	return in.Run(context.Background(), st, prog)
}
