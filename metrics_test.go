package push

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsObserveRun(t *testing.T) {
	in, st := newTestInterpreter(t)
	in.Metrics = NewMetrics()
	prog := mustParse(t, in.Registry, "( 2 3 INTEGER.+ 4 INTEGER.* )")

	outcome, err := in.Run(context.Background(), st, prog)
	if err != nil || outcome != OutcomeCompleted {
		t.Fatalf("Run: outcome=%v err=%v", outcome, err)
	}

	if got := testutil.ToFloat64(in.Metrics.StepsTotal); got == 0 {
		t.Errorf("StepsTotal = %v, want > 0 after a completed run", got)
	}
	if got := testutil.ToFloat64(in.Metrics.StackDepth.WithLabelValues("integer")); got != 1 {
		t.Errorf("StackDepth[integer] = %v, want 1", got)
	}
}

func TestMetricsObserveBudgetStop(t *testing.T) {
	in, st := newTestInterpreter(t)
	in.Metrics = NewMetrics()
	st.Config.MaxSteps = 1
	prog := mustParse(t, in.Registry, "( 1 2 INTEGER.+ 3 INTEGER.+ 4 INTEGER.+ )")

	outcome, err := in.Run(context.Background(), st, prog)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if outcome == OutcomeCompleted {
		t.Fatalf("Run: outcome=%v, want a budget stop with MaxSteps=1", outcome)
	}

	total := testutil.ToFloat64(in.Metrics.BudgetStops.WithLabelValues("steps"))
	if total == 0 {
		t.Errorf("BudgetStops[steps] = %v, want > 0 after a step-budget stop", total)
	}
}
