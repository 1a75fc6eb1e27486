package push

// LoadDefaults populates reg with the full standard instruction set:
// the type families (§4.2-4.8), the CODE/EXEC reflective core, and
// I/O. Callers that want a restricted instruction set for a
// particular evolutionary run can start from an empty *Registry and
// call only the families they need instead.
func LoadDefaults(reg *Registry) {
	registerBoolInstructions(reg)
	registerIntInstructions(reg)
	registerFloatInstructions(reg)
	registerNameInstructions(reg)
	registerCodeExecInstructions(reg)
	registerVectorInstructions(reg)
	registerIndexInstructions(reg)
	registerGraphInstructions(reg)
	registerIOInstructions(reg)
}
