package push

import (
	"context"
	"time"

	"github.com/itchyny/timefmt-go"
	"go.uber.org/zap"
)

// Outcome reports how a Run call ended. Exhausting a budget is not a
// failure (§7): the interpreter simply stops with whatever state it
// has accumulated so far, and the caller decides what that means.
type Outcome int

const (
	OutcomeCompleted Outcome = iota
	OutcomeStepBudgetExhausted
	OutcomeTimeBudgetExhausted
	OutcomeCanceled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeStepBudgetExhausted:
		return "step-budget-exhausted"
	case OutcomeTimeBudgetExhausted:
		return "time-budget-exhausted"
	case OutcomeCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Interpreter drives Push programs against a Registry. Metrics and a
// logger are both optional; an Interpreter built by NewInterpreter
// with neither set still runs programs, it just doesn't report
// anything about them. The zero value has no Registry and no logger
// and cannot run programs.
type Interpreter struct {
	Registry *Registry
	Metrics  *Metrics
	log      *zap.Logger
}

func NewInterpreter(reg *Registry) *Interpreter {
	return &Interpreter{Registry: reg, log: zap.NewNop()}
}

// SetLogger installs a structured logger that traces every dispatch
// step at debug level. Left unset, dispatch is silent.
func (in *Interpreter) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	in.log = l
}

// Run unpacks program onto st.Exec and dispatches it to exhaustion
// per §4.9: atoms push to their native stack, an InstructionRef looks
// itself up in the Registry and runs, a List unpacks onto EXEC in
// reverse so its head executes first, and a Name resolves against
// st.Bindings (§4.5). It stops early -- without error -- when
// st.Config.MaxSteps or st.Config.EvalTimeLimit is exceeded, or when
// ctx is canceled.
func (in *Interpreter) Run(ctx context.Context, st *State, program Item) (Outcome, error) {
	if program.Kind == KindList {
		st.pushExecList(program.List)
	} else {
		st.pushExec(program)
	}

	start := time.Now()
	if ce := in.log.Check(zap.DebugLevel, "run start"); ce != nil {
		ce.Write(zap.String("started_at", timefmt.Format(start, "%Y-%m-%dT%H:%M:%S%z")))
	}
	steps := 0
	for {
		select {
		case <-ctx.Done():
			return OutcomeCanceled, nil
		default:
		}
		if st.Config.MaxSteps > 0 && steps >= st.Config.MaxSteps {
			in.finish(st, "steps")
			return OutcomeStepBudgetExhausted, nil
		}
		if st.Config.EvalTimeLimit > 0 && time.Since(start) > st.Config.EvalTimeLimit {
			in.finish(st, "time")
			return OutcomeTimeBudgetExhausted, nil
		}
		it, ok := st.Exec.Pop()
		if !ok {
			if in.Metrics != nil {
				in.Metrics.observeFinal(st)
			}
			return OutcomeCompleted, nil
		}
		steps++
		if in.Metrics != nil {
			in.Metrics.StepsTotal.Inc()
		}
		if ce := in.log.Check(zap.DebugLevel, "dispatch"); ce != nil {
			ce.Write(zap.String("kind", it.Kind.String()), zap.String("item", it.String()))
		}
		in.dispatch(st, it)
	}
}

func (in *Interpreter) finish(st *State, budget string) {
	if in.Metrics == nil {
		return
	}
	in.Metrics.BudgetStops.WithLabelValues(budget).Inc()
	in.Metrics.observeFinal(st)
}

func (in *Interpreter) dispatch(st *State, it Item) {
	switch it.Kind {
	case KindBool:
		st.Bool.Push(it)
	case KindInt:
		st.Int.Push(it)
	case KindFloat:
		st.Float.Push(it)
	case KindBoolVec:
		st.BoolVector.Push(it)
	case KindIntVec:
		st.IntVector.Push(it)
	case KindFloatVec:
		st.FloatVector.Push(it)
	case KindList:
		st.pushExecList(it.List)
	case KindInstruction:
		fn, ok := in.Registry.Lookup(it.Name)
		if !ok {
			in.log.Info("unknown instruction, treated as noop", zap.String("name", it.Name))
			return
		}
		fn(st, in.Registry)
	case KindName:
		in.dispatchName(st, it)
	}
}

// dispatchName implements §4.5's resolution order: a pending
// NAME.QUOTE always wins and consumes its flag, otherwise a bound
// name pushes its value onto EXEC for further dispatch, and an
// unbound name is pushed onto NAME literally.
func (in *Interpreter) dispatchName(st *State, it Item) {
	if st.QuoteNameFlag {
		st.QuoteNameFlag = false
		st.Name.Push(it)
		return
	}
	if bound, ok := st.Bindings[it.Name]; ok {
		st.pushExec(clone(bound))
		return
	}
	st.Name.Push(it)
}
