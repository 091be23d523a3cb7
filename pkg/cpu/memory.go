package cpu

import "encoding/binary"

// MemorySize is the size, in bytes, of the simulated address space.
const MemorySize = 131072 // 128 KiB

// Memory is a fixed-size, zero-initialised, little-endian byte array. It
// never grows: LoadProgram copies a flat image into the front of the array
// and zeroes the rest.
type Memory struct {
	bytes [MemorySize]byte
}

// Read reads size (1, 2 or 4) bytes starting at addr in little-endian
// order. When size is 4, unsigned is ignored. When size is smaller, the
// narrow value is sign-extended unless unsigned is true.
//
// addr+size must not exceed MemorySize; violating this is a precondition
// error and panics, mirroring the bounds-checked slice indexing a
// well-formed decode/execute pipeline should never trigger.
func (m *Memory) Read(addr uint32, size uint32, unsigned bool) uint32 {
	end := uint64(addr) + uint64(size)
	if end > MemorySize {
		panic("cpu: memory read out of range")
	}
	switch size {
	case 1:
		v := m.bytes[addr]
		if unsigned {
			return uint32(v)
		}
		return uint32(int32(int8(v)))
	case 2:
		v := binary.LittleEndian.Uint16(m.bytes[addr:end])
		if unsigned {
			return uint32(v)
		}
		return uint32(int32(int16(v)))
	case 4:
		return binary.LittleEndian.Uint32(m.bytes[addr:end])
	default:
		panic("cpu: invalid memory access size")
	}
}

// Write stores the low size bytes of value to addr, little-endian. Upper
// bytes of value are silently truncated when size < 4.
func (m *Memory) Write(addr uint32, size uint32, value uint32) {
	end := uint64(addr) + uint64(size)
	if end > MemorySize {
		panic("cpu: memory write out of range")
	}
	switch size {
	case 1:
		m.bytes[addr] = byte(value)
	case 2:
		binary.LittleEndian.PutUint16(m.bytes[addr:end], uint16(value))
	case 4:
		binary.LittleEndian.PutUint32(m.bytes[addr:end], value)
	default:
		panic("cpu: invalid memory access size")
	}
}

// LoadProgram copies program to offset 0 and zeroes the remainder of the
// backing array. program must not be longer than MemorySize.
func (m *Memory) LoadProgram(program []byte) {
	if len(program) > MemorySize {
		panic("cpu: program image larger than memory")
	}
	var fresh [MemorySize]byte
	m.bytes = fresh
	copy(m.bytes[:], program)
}
