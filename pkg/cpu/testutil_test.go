package cpu

import (
	"encoding/binary"
	"fmt"
	"testing"
)

// assert mirrors the small helper KTStephano-GVM's vm_test.go uses: a
// single failure point with a formatted message, instead of pulling in an
// assertion library for a handful of checks.
func assert(t *testing.T, cond bool, format string, args ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(format, args...)
	}
}

// The following encodeXXX helpers are a hand-rolled, test-only assembler:
// just enough to build the literal instruction words spec.md's end-to-end
// scenarios describe. They are not a general assembler.

func encodeR(opcode, funct3, funct7, rd, rs1, rs2 uint32) uint32 {
	return opcode | rd<<7 | funct3<<12 | rs1<<15 | rs2<<20 | funct7<<25
}

func encodeI(opcode, funct3, rd, rs1 uint32, imm int32) uint32 {
	return opcode | rd<<7 | funct3<<12 | rs1<<15 | (uint32(imm)&0xfff)<<20
}

func encodeS(opcode, funct3, rs1, rs2 uint32, imm int32) uint32 {
	u := uint32(imm) & 0xfff
	return opcode | (u&0x1f)<<7 | funct3<<12 | rs1<<15 | rs2<<20 | (u>>5)<<25
}

func encodeB(funct3, rs1, rs2 uint32, imm int32) uint32 {
	const opcode = 0b1100011
	u := uint32(imm) & 0x1fff
	bit11 := (u >> 11) & 1
	bit12 := (u >> 12) & 1
	bits4_1 := (u >> 1) & 0xf
	bits10_5 := (u >> 5) & 0x3f
	return opcode | bit11<<7 | bits4_1<<8 | funct3<<12 | rs1<<15 | rs2<<20 | bits10_5<<25 | bit12<<31
}

func encodeU(opcode, rd uint32, imm uint32) uint32 {
	return opcode | rd<<7 | (imm&0xfffff)<<12
}

func encodeJ(rd uint32, imm int32) uint32 {
	const opcode = 0b1101111
	u := uint32(imm) & 0x1fffff
	bit11 := (u >> 11) & 1
	bits19_12 := (u >> 12) & 0xff
	bit20 := (u >> 20) & 1
	bits10_1 := (u >> 1) & 0x3ff
	return opcode | rd<<7 | bits19_12<<12 | bit11<<20 | bits10_1<<21 | bit20<<31
}

func addi(rd, rs1 uint32, imm int32) uint32 { return encodeI(0b0010011, 0x0, rd, rs1, imm) }
func add(rd, rs1, rs2 uint32) uint32        { return encodeR(0b0110011, 0x0, 0x00, rd, rs1, rs2) }
func lb(rd, rs1 uint32, imm int32) uint32   { return encodeI(0b0000011, 0x0, rd, rs1, imm) }
func lbu(rd, rs1 uint32, imm int32) uint32  { return encodeI(0b0000011, 0x4, rd, rs1, imm) }
func sb(rs1, rs2 uint32, imm int32) uint32  { return encodeS(0b0100011, 0x0, rs1, rs2, imm) }
func beq(rs1, rs2 uint32, imm int32) uint32 { return encodeB(0x0, rs1, rs2, imm) }
func ecall() uint32                         { return 0b1110011 }

// asBytes packs a sequence of instruction words into a little-endian flat
// image suitable for CPU.Run.
func asBytes(words ...uint32) []byte {
	out := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(out[4*i:], w)
	}
	return out
}

func mustDecode(t *testing.T, word, a7, a10 uint32) Instruction {
	t.Helper()
	inst, _, err := Decode(word, a7, a10)
	if err != nil {
		t.Fatalf("decode(%#08x): %v", word, fmt.Errorf("%w", err))
	}
	return inst
}
