package cpu

// Tracer observes the run loop without influencing it. CPU never imports a
// logging library directly (see SPEC_FULL.md §5.2); cmd/rv32i wires a real
// implementation, tests and library users can pass NopTracer{}.
type Tracer interface {
	// TraceCycle is called once per successfully decoded and executed
	// instruction, after execute has run, and once for the exit ecall that
	// ends the run (which is not executed).
	TraceCycle(cycle uint64, pc uint32, inst Instruction, regs [NumRegisters]uint32)
	// TraceFault is called once, in place of TraceCycle, when the run loop
	// stops on a fatal error.
	TraceFault(cycle uint64, err error, regs [NumRegisters]uint32)
}

// NopTracer discards every trace event.
type NopTracer struct{}

func (NopTracer) TraceCycle(uint64, uint32, Instruction, [NumRegisters]uint32) {}
func (NopTracer) TraceFault(uint64, error, [NumRegisters]uint32)              {}

// CPU owns a Memory, a register file and a program counter, and runs the
// fetch/decode/execute loop over them. CPU is not goroutine-safe; a single
// goroutine should drive it for its whole lifetime.
type CPU struct {
	Mem   Memory
	Regs  Registers
	PC    ProgramCounter
	Cycle uint64

	Tracer Tracer
}

// New returns a CPU with its implicit initial state: all registers zero
// except r2 (= MemorySize), PC = 0, memory zeroed.
func New() *CPU {
	return &CPU{
		Regs:   NewRegisters(),
		Tracer: NopTracer{},
	}
}

// snapshot copies the current register file for a trace callback; Tracer
// implementations must not retain a reference into live CPU state.
func (c *CPU) snapshot() [NumRegisters]uint32 {
	var out [NumRegisters]uint32
	for i := uint32(0); i < NumRegisters; i++ {
		out[i] = c.Regs.Read(i)
	}
	return out
}

// Run loads program at offset 0 and executes it until it calls the exit
// syscall (in which case it returns the exit code) or a fatal error occurs
// (InvalidOpcodeError, InvalidInstFormatError, InvalidPCError or
// ErrEndOfInstructions).
func (c *CPU) Run(program []byte) (uint8, error) {
	c.Mem.LoadProgram(program)
	if c.Tracer == nil {
		c.Tracer = NopTracer{}
	}
	for {
		word, pcAtFetch, err := c.fetch()
		if err != nil {
			c.Tracer.TraceFault(c.Cycle, err, c.snapshot())
			return 0, err
		}
		if word == 0 {
			c.Tracer.TraceFault(c.Cycle, ErrEndOfInstructions, c.snapshot())
			return 0, ErrEndOfInstructions
		}

		inst, sys, err := Decode(word, c.Regs.Read(17), c.Regs.Read(10))
		if err != nil {
			c.Tracer.TraceFault(c.Cycle, err, c.snapshot())
			return 0, err
		}

		if sys.Kind == SysCallExit {
			c.Tracer.TraceCycle(c.Cycle, pcAtFetch, inst, c.snapshot())
			return sys.Code, nil
		}

		execute(inst, &c.Regs, &c.Mem, &c.PC)
		c.Tracer.TraceCycle(c.Cycle, pcAtFetch, inst, c.snapshot())
		c.Cycle++
	}
}

// fetch reads the 32-bit word at PC and advances PC by 4, returning both
// the word and the address it was read from (for tracing).
func (c *CPU) fetch() (word uint32, pcAtFetch uint32, err error) {
	pcAtFetch, err = c.PC.Inc()
	if err != nil {
		return 0, 0, err
	}
	word = c.Mem.Read(pcAtFetch, 4, true)
	return word, pcAtFetch, nil
}
