package cpu

import (
	"errors"
	"fmt"
)

// ErrEndOfInstructions is returned when the run loop fetches an all-zero
// word, the convention used to detect a program that fell off the end of
// its own code into zero-filled memory instead of calling exit.
var ErrEndOfInstructions = errors.New("cpu: ran out of instructions; missing exit syscall")

// InvalidOpcodeError reports that the low 7 bits of a fetched word did not
// match any recognised opcode.
type InvalidOpcodeError struct {
	Opcode uint32
}

func (e *InvalidOpcodeError) Error() string {
	return fmt.Sprintf("cpu: invalid opcode %#07b", e.Opcode)
}

// InvalidInstFormatError reports that an opcode was recognised but its
// funct3/funct7 combination is undefined. The decoded fields are preserved
// for diagnostics.
type InvalidInstFormatError struct {
	Format FormatKind
	Funct3 uint32
	Funct7 uint32 // meaningful only when Format == FormatR
}

func (e *InvalidInstFormatError) Error() string {
	switch e.Format {
	case FormatR:
		return fmt.Sprintf("cpu: invalid R-format instruction: funct3=%#03b funct7=%#07b", e.Funct3, e.Funct7)
	default:
		return fmt.Sprintf("cpu: invalid %s-format instruction: funct3=%#03b", e.Format, e.Funct3)
	}
}

// InvalidPCError reports that a fetch would read at or past the end of
// memory.
type InvalidPCError struct {
	PC      uint32
	MemSize uint32
}

func (e *InvalidPCError) Error() string {
	return fmt.Sprintf("cpu: program counter %d beyond memory size %dB", e.PC, e.MemSize)
}
