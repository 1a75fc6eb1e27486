package push

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the counters and gauges an Interpreter reports into.
// NewMetrics builds a private prometheus.Registry rather than
// registering against prometheus's global DefaultRegisterer, so
// embedding push inside a larger service never risks a
// duplicate-registration panic against metrics the host already owns.
type Metrics struct {
	Registry    *prometheus.Registry
	StepsTotal  prometheus.Counter
	BudgetStops *prometheus.CounterVec
	StackDepth  *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		StepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "push_interpreter_steps_total",
			Help: "EXEC dispatch steps executed across every Run sharing this Metrics.",
		}),
		BudgetStops: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "push_interpreter_budget_stops_total",
			Help: "Runs that ended by exhausting a budget, labeled by which one.",
		}, []string{"budget"}),
		StackDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "push_interpreter_stack_depth",
			Help: "Depth of each typed stack at the end of the most recent Run.",
		}, []string{"stack"}),
	}
	reg.MustRegister(m.StepsTotal, m.BudgetStops, m.StackDepth)
	return m
}

func (m *Metrics) observeFinal(st *State) {
	m.StackDepth.WithLabelValues("bool").Set(float64(st.Bool.Depth()))
	m.StackDepth.WithLabelValues("integer").Set(float64(st.Int.Depth()))
	m.StackDepth.WithLabelValues("float").Set(float64(st.Float.Depth()))
	m.StackDepth.WithLabelValues("name").Set(float64(st.Name.Depth()))
	m.StackDepth.WithLabelValues("code").Set(float64(st.Code.Depth()))
	m.StackDepth.WithLabelValues("exec").Set(float64(st.Exec.Depth()))
	m.StackDepth.WithLabelValues("boolvector").Set(float64(st.BoolVector.Depth()))
	m.StackDepth.WithLabelValues("intvector").Set(float64(st.IntVector.Depth()))
	m.StackDepth.WithLabelValues("floatvector").Set(float64(st.FloatVector.Depth()))
	m.StackDepth.WithLabelValues("index").Set(float64(st.Index.Depth()))
	m.StackDepth.WithLabelValues("graph").Set(float64(st.Graph.Depth()))
}
