package push

import "fmt"

// ParseError is returned by Parse for malformed source: unbalanced
// parentheses, a malformed vector literal, or a numeric literal out
// of range. No partial state is ever committed alongside it.
type ParseError struct {
	Offset  int
	Message string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("push: parse error at offset %d: %s", err.Offset, err.Message)
}

func newParseError(offset int, format string, args ...interface{}) *ParseError {
	return &ParseError{Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// ConfigError reports one invalid configuration option, discovered at
// state construction time.
type ConfigError struct {
	Option string
	Reason string
}

func (err *ConfigError) Error() string {
	return fmt.Sprintf("push: invalid configuration %q: %s", err.Option, err.Reason)
}

// UnknownInstructionError is returned by Registry.Check when a
// program references an instruction the registry has never heard of
// -- typically because it was parsed against a broader registry than
// the one it's about to run against (see LoadDefaults's note on
// restricted instruction sets). Dispatch itself never returns this:
// an instruction unresolved at run time is a silent NOOP.
type UnknownInstructionError struct {
	Name string
}

func (err *UnknownInstructionError) Error() string {
	return fmt.Sprintf("push: unknown instruction: %s", err.Name)
}
