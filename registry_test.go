package push

import "testing"

func TestRegistryCheckFindsUnknownInstruction(t *testing.T) {
	reg := NewRegistry()
	LoadDefaults(reg)
	program := ListItem([]Item{
		IntItem(1),
		IntItem(2),
		InstructionItem("INTEGER.+"),
		InstructionItem("NOT.A.REAL.INSTRUCTION"),
	})
	err := reg.Check(program)
	if err == nil {
		t.Fatal("Check: want error for unregistered instruction, got nil")
	}
	unknown, ok := err.(*UnknownInstructionError)
	if !ok {
		t.Fatalf("Check: got %T, want *UnknownInstructionError", err)
	}
	if unknown.Name != "NOT.A.REAL.INSTRUCTION" {
		t.Fatalf("Check: name = %q, want NOT.A.REAL.INSTRUCTION", unknown.Name)
	}
}

func TestRegistryCheckAcceptsFullyKnownProgram(t *testing.T) {
	reg := NewRegistry()
	LoadDefaults(reg)
	prog := mustParse(t, reg, "( 1 2 INTEGER.+ CODE.QUOTE ( TRUE BOOLEAN.NOT ) )")
	if err := reg.Check(prog); err != nil {
		t.Fatalf("Check: unexpected error %v", err)
	}
}
