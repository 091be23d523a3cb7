package cpu

import "fmt"

// String renders inst as a single line of assembly-like text for trace and
// error output. It is not a general disassembler: operand order follows
// whichever format produced the instruction, nothing more.
func (inst Instruction) String() string {
	switch inst.Format {
	case FormatR:
		return fmt.Sprintf("%s x%d, x%d, x%d", inst.Op, inst.Rd, inst.Rs1, inst.Rs2)
	case FormatI:
		switch inst.Op {
		case JALR:
			return fmt.Sprintf("jalr x%d, %d(x%d)", inst.Rd, int32(inst.Imm), inst.Rs1)
		case LB, LH, LW, LBU, LHU:
			return fmt.Sprintf("%s x%d, %d(x%d)", inst.Op, inst.Rd, int32(inst.Imm), inst.Rs1)
		default:
			return fmt.Sprintf("%s x%d, x%d, %d", inst.Op, inst.Rd, inst.Rs1, int32(inst.Imm))
		}
	case FormatS:
		return fmt.Sprintf("%s x%d, %d(x%d)", inst.Op, inst.Rs2, int32(inst.Imm), inst.Rs1)
	case FormatB:
		return fmt.Sprintf("%s x%d, x%d, %d", inst.Op, inst.Rs1, inst.Rs2, int32(inst.Imm))
	case FormatU:
		return fmt.Sprintf("%s x%d, %#x", inst.Op, inst.Rd, inst.Imm)
	case FormatJ:
		return fmt.Sprintf("%s x%d, %d", inst.Op, inst.Rd, int32(inst.Imm))
	default:
		return inst.Op.String()
	}
}
