package push

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// InstructionFunc implements one instruction. It receives the mutable
// Push State and a read-only view of the registry it was dispatched
// from, so instructions like EXEC.DEFINE or CODE.DO*RANGE can resolve
// or synthesize other instruction references without being able to
// mutate the instruction set mid-run.
type InstructionFunc func(st *State, reg *Registry)

// Registry maps canonical, uppercase instruction names to their
// implementations. It is read-only for the duration of an
// interpreter run: instructions may look themselves up in it, but
// Register is only meant to be called during setup.
type Registry struct {
	fns map[string]InstructionFunc
	log *zap.Logger
}

// NewRegistry returns an empty registry. Use LoadDefaults to populate
// it with the standard Push3 instruction set.
func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]InstructionFunc), log: zap.NewNop()}
}

// SetLogger installs a structured logger used to report shadowed
// registrations; a nil logger logs nothing.
func (r *Registry) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	r.log = l
}

// Register adds or replaces the instruction bound to name. Shadowing
// a default instruction is permitted, and reported to the registry's
// logger rather than treated as an error.
func (r *Registry) Register(name string, fn InstructionFunc) {
	canon := strings.ToUpper(name)
	if _, exists := r.fns[canon]; exists {
		r.log.Info("shadowing existing instruction", zap.String("name", canon))
	}
	r.fns[canon] = fn
}

// Lookup returns the instruction bound to name (case-insensitive) and
// whether it was found.
func (r *Registry) Lookup(name string) (InstructionFunc, bool) {
	fn, ok := r.fns[strings.ToUpper(name)]
	return fn, ok
}

// Has reports whether name is a registered instruction.
func (r *Registry) Has(name string) bool {
	_, ok := r.fns[strings.ToUpper(name)]
	return ok
}

// Check walks program looking for InstructionRef items unregistered
// in r, returning the first as an *UnknownInstructionError. It's for
// callers who run a parsed program against a narrower registry than
// the one that parsed it -- e.g. a restricted instruction set for a
// particular evolutionary run (see LoadDefaults) -- so a missing
// instruction surfaces as an explicit error up front instead of a
// silent NOOP buried somewhere in the run.
func (r *Registry) Check(program Item) error {
	if program.Kind == KindInstruction && !r.Has(program.Name) {
		return &UnknownInstructionError{Name: program.Name}
	}
	if program.Kind == KindList {
		for _, c := range program.List {
			if err := r.Check(c); err != nil {
				return err
			}
		}
	}
	return nil
}

// Names returns every registered instruction name, sorted, primarily
// for documentation and deterministic test output.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.fns))
	for n := range r.fns {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
