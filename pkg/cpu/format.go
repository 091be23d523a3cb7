package cpu

// FormatKind identifies which of the six RV32I field layouts an
// instruction word was decoded with.
type FormatKind int

const (
	FormatR FormatKind = iota
	FormatI
	FormatS
	FormatB
	FormatU
	FormatJ
)

func (k FormatKind) String() string {
	switch k {
	case FormatR:
		return "R"
	case FormatI:
		return "I"
	case FormatS:
		return "S"
	case FormatB:
		return "B"
	case FormatU:
		return "U"
	case FormatJ:
		return "J"
	default:
		return "?"
	}
}

// bits extracts the inclusive bit range [lo, hi] from v and right-aligns
// it, zero-extended.
func bits(v uint32, lo, hi uint) uint32 {
	width := hi - lo + 1
	mask := uint32(1)<<width - 1
	return (v >> lo) & mask
}

// signExtend treats the low `width` bits of v as a signed integer and
// widens it to a full 32-bit two's-complement value.
func signExtend(v uint32, width uint) uint32 {
	shift := 32 - width
	return uint32(int32(v<<shift) >> shift)
}

const opcodeMask = 0x7f

func opcode(inst uint32) uint32 { return inst & opcodeMask }

// rFields decodes the R-format register/funct fields shared by R, S and B
// formats' rs1/rs2/funct3.
type rFields struct {
	rd     uint32
	funct3 uint32
	rs1    uint32
	rs2    uint32
	funct7 uint32
}

func decodeR(inst uint32) rFields {
	return rFields{
		rd:     bits(inst, 7, 11),
		funct3: bits(inst, 12, 14),
		rs1:    bits(inst, 15, 19),
		rs2:    bits(inst, 20, 24),
		funct7: bits(inst, 25, 31),
	}
}

type iFields struct {
	rd     uint32
	funct3 uint32
	rs1    uint32
	imm    uint32
}

func decodeI(inst uint32) iFields {
	return iFields{
		rd:     bits(inst, 7, 11),
		funct3: bits(inst, 12, 14),
		rs1:    bits(inst, 15, 19),
		imm:    signExtend(bits(inst, 20, 31), 12),
	}
}

type sFields struct {
	funct3 uint32
	rs1    uint32
	rs2    uint32
	imm    uint32
}

func decodeS(inst uint32) sFields {
	raw := (bits(inst, 25, 31) << 5) | bits(inst, 7, 11)
	return sFields{
		funct3: bits(inst, 12, 14),
		rs1:    bits(inst, 15, 19),
		rs2:    bits(inst, 20, 24),
		imm:    signExtend(raw, 12),
	}
}

type bFields struct {
	funct3 uint32
	rs1    uint32
	rs2    uint32
	imm    uint32
}

func decodeB(inst uint32) bFields {
	raw := (bits(inst, 31, 31) << 12) |
		(bits(inst, 7, 7) << 11) |
		(bits(inst, 25, 30) << 5) |
		(bits(inst, 8, 11) << 1)
	return bFields{
		funct3: bits(inst, 12, 14),
		rs1:    bits(inst, 15, 19),
		rs2:    bits(inst, 20, 24),
		imm:    signExtend(raw, 13),
	}
}

type uFields struct {
	rd  uint32
	imm uint32
}

// decodeU returns the 20-bit immediate un-shifted, sign-extended over 20
// bits; execute applies the implicit <<12.
func decodeU(inst uint32) uFields {
	return uFields{
		rd:  bits(inst, 7, 11),
		imm: signExtend(bits(inst, 12, 31), 20),
	}
}

type jFields struct {
	rd  uint32
	imm uint32
}

func decodeJ(inst uint32) jFields {
	raw := (bits(inst, 31, 31) << 20) |
		(bits(inst, 12, 19) << 12) |
		(bits(inst, 20, 20) << 11) |
		(bits(inst, 21, 30) << 1)
	return jFields{
		rd:  bits(inst, 7, 11),
		imm: signExtend(raw, 21),
	}
}
