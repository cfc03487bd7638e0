package core

// xchgRM8/16 implement 0x86/0x87: XCHG r, r/m. Both operands are read
// before either is written.
func xchgRM8(e *Emulator) {
	e.decode(Width8)
	v1 := e.readOperand(Width8, false)
	v2 := e.getReg(Width8, e.modrm.Reg)
	e.commitOperand(Width8, v2, false)
	e.setReg(Width8, e.modrm.Reg, v1)
}

func xchgRM16(e *Emulator) {
	e.decode(Width16)
	v1 := e.readOperand(Width16, false)
	v2 := e.getReg(Width16, e.modrm.Reg)
	e.commitOperand(Width16, v2, false)
	e.setReg(Width16, e.modrm.Reg, v1)
}

// xchgAX implements 0x90-0x97: XCHG AX, r. 0x90 swaps AX with itself, a
// no-op by construction rather than a special case.
func xchgAX(e *Emulator) {
	reg := regFromOpcodeLow3(e.opcode)
	v1 := e.regs.Get16(AX)
	v2 := e.regs.Get16(reg)
	e.regs.Set16(AX, v2)
	e.regs.Set16(reg, v1)
}
