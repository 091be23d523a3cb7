package cpu

// ProgramCounter is the single word tracking the address of the next
// instruction to fetch.
type ProgramCounter struct {
	addr uint32
}

// Get returns the current program counter value.
func (pc *ProgramCounter) Get() uint32 {
	return pc.addr
}

// Set assigns addr directly. There is no bounds check here: bounds are
// enforced at fetch time by Inc.
func (pc *ProgramCounter) Set(addr uint32) {
	pc.addr = addr
}

// Inc returns the pre-increment program counter and advances it by 4 (the
// width of every RV32I instruction). If the pre-increment value would read
// at or past the end of memory, Inc returns InvalidPC instead and leaves
// the advance applied — the caller is expected to stop running regardless.
func (pc *ProgramCounter) Inc() (uint32, error) {
	addr := pc.addr
	pc.addr += 4
	if addr > MemorySize-4 {
		return 0, &InvalidPCError{PC: addr, MemSize: MemorySize}
	}
	return addr, nil
}
