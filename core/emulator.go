package core

// Emulator decodes and executes one 8086-family instruction per call to
// Emulate. It is a plain value type owning only its ModR/M decode scratch;
// the register file, memory, I/O, and byte source are all borrowed
// references supplied by the host.
type Emulator struct {
	regs        *RegisterFile
	instrStream ByteSource
	mem         MemoryPort
	io          IOPort

	instrLength int
	opcode      uint8
	modrm       ModRM
}

// New constructs an Emulator over a borrowed register file. Attach the
// instruction stream, memory, and I/O ports with SetInstructionStream,
// SetMemory, and SetIO before calling Emulate.
func New(registers *RegisterFile) *Emulator {
	return &Emulator{regs: registers}
}

// SetInstructionStream attaches the byte FIFO the core pops opcode,
// ModR/M, displacement, and immediate bytes from.
func (e *Emulator) SetInstructionStream(src ByteSource) {
	e.instrStream = src
}

// SetMemory attaches the 20-bit physical memory port.
func (e *Emulator) SetMemory(m MemoryPort) {
	e.mem = m
}

// SetIO attaches the 16-bit I/O port.
func (e *Emulator) SetIO(io IOPort) {
	e.io = io
}

// Emulate decodes and executes exactly one instruction, returning the
// number of bytes popped from the instruction stream for it. Unrecognized
// opcodes and reserved sub-opcodes are no-ops that still return the bytes
// already consumed.
func (e *Emulator) Emulate() int {
	e.instrLength = 0

	e.opcode = e.fetchByte()
	if h := opcodeTable[e.opcode]; h != nil {
		h(e)
	}

	return e.instrLength
}

// decode reads a ModR/M byte (plus any implied displacement) at the given
// width and stashes the result for the current handler to consult.
func (e *Emulator) decode(width int) ModRM {
	e.modrm = decodeModRM(width, e.regs, e.fetchByte)
	return e.modrm
}

// defaultSegment picks DS or SS for a memory operand: BP as base (or an
// explicit stack access) selects SS, everything else defaults to DS. This
// core implements no segment-override prefixes.
func (e *Emulator) defaultSegment(stack bool) int {
	if stack || e.modrm.UsesBPAsBase {
		return SS
	}
	return DS
}

// operandAddress computes the physical address of the current ModR/M
// memory operand.
func (e *Emulator) operandAddress(stack bool) uint32 {
	seg := e.regs.GetSeg(e.defaultSegment(stack))
	return PhysicalAddress(seg, e.modrm.EffectiveAddress)
}

// readOperand reads the current ModR/M r/m operand: a register read if
// Kind == RMReg, else a memory read through the default segment. The
// stack parameter is unused by any handler in this core — PUSH, POP,
// PUSHF, and POPF address SS:SP directly instead of routing through a
// ModR/M operand, so it is always false at every call site. It is kept so
// the read/write operand path has a uniform signature regardless.
func (e *Emulator) readOperand(width int, stack bool) uint16 {
	if e.modrm.Kind == RMReg {
		return e.getReg(width, e.modrm.RMReg)
	}
	addr := e.operandAddress(stack)
	if width == Width8 {
		return uint16(e.mem.ReadByte(addr))
	}
	return e.mem.ReadWord(addr)
}

// commitOperand writes val to the current ModR/M r/m operand, register or
// memory. See readOperand for the stack parameter's status.
func (e *Emulator) commitOperand(width int, val uint16, stack bool) {
	if e.modrm.Kind == RMReg {
		e.setReg(width, e.modrm.RMReg, val)
		return
	}
	addr := e.operandAddress(stack)
	if width == Width8 {
		e.mem.WriteByte(addr, uint8(val))
		return
	}
	e.mem.WriteWord(addr, val)
}

// PeekMemory reads a single byte through the attached memory port without
// otherwise affecting emulator state, for diagnostic and debugger use.
func (e *Emulator) PeekMemory(addr uint32) uint8 {
	return e.mem.ReadByte(addr)
}

// getReg/setReg read and write a general register by index at the given
// width, using the 8-bit or 16-bit view as appropriate.
func (e *Emulator) getReg(width int, reg int) uint16 {
	if width == Width8 {
		return uint16(e.regs.Get8(reg))
	}
	return e.regs.Get16(reg)
}

func (e *Emulator) setReg(width int, reg int, val uint16) {
	if width == Width8 {
		e.regs.Set8(reg, uint8(val))
		return
	}
	e.regs.Set16(reg, val)
}

// pushWord decrements SP by 2, then writes val at SS:SP — decrement
// first, then write.
func (e *Emulator) pushWord(val uint16) {
	sp := e.regs.Get16(SP) - 2
	e.regs.Set16(SP, sp)
	addr := PhysicalAddress(e.regs.GetSeg(SS), sp)
	e.mem.WriteWord(addr, val)
}

// popWord reads the word at SS:SP, then increments SP by 2 — read first,
// then increment.
func (e *Emulator) popWord() uint16 {
	sp := e.regs.Get16(SP)
	addr := PhysicalAddress(e.regs.GetSeg(SS), sp)
	val := e.mem.ReadWord(addr)
	e.regs.Set16(SP, sp+2)
	return val
}
