package core

// movRegRM8/16 implement 0x88/0x89: MOV r/m, r — direction "to r/m", with
// width selected by the opcode's low bit.
func movRegRM8(e *Emulator) {
	e.decode(Width8)
	val := e.getReg(Width8, e.modrm.Reg)
	e.commitOperand(Width8, val, false)
}

func movRegRM16(e *Emulator) {
	e.decode(Width16)
	val := e.getReg(Width16, e.modrm.Reg)
	e.commitOperand(Width16, val, false)
}

// movRMReg8/16 implement 0x8A/0x8B: MOV r, r/m — direction "to r".
func movRMReg8(e *Emulator) {
	e.decode(Width8)
	val := e.readOperand(Width8, false)
	e.setReg(Width8, e.modrm.Reg, val)
}

func movRMReg16(e *Emulator) {
	e.decode(Width16)
	val := e.readOperand(Width16, false)
	e.setReg(Width16, e.modrm.Reg, val)
}

// movImm8/16 implement 0xC6/0xC7: MOV r/m, imm. Only raw reg field 0 is a
// valid encoding; any other value is reserved and left a no-op (the ModR/M
// byte is still consumed).
func movImm8(e *Emulator) {
	e.decode(Width8)
	if e.modrm.RawReg != 0 {
		return
	}
	e.commitOperand(Width8, uint16(e.fetchByte()), false)
}

func movImm16(e *Emulator) {
	e.decode(Width16)
	if e.modrm.RawReg != 0 {
		return
	}
	e.commitOperand(Width16, e.fetch16(), false)
}

// movRegImm8/16 implement 0xB0-0xB7/0xB8-0xBF: MOV r, imm, register
// encoded in the opcode's low 3 bits.
func movRegImm8(e *Emulator) {
	reg := regFromOpcodeLow3(e.opcode)
	e.regs.Set8(reg, e.fetchByte())
}

func movRegImm16(e *Emulator) {
	reg := regFromOpcodeLow3(e.opcode)
	e.regs.Set16(reg, e.fetch16())
}

// movAccumLoad8/16/movAccumStore8/16 implement 0xA0-0xA3: MOV AL/AX <->
// [disp16], always addressed under DS.
func movAccumLoad8(e *Emulator) {
	disp := e.fetch16()
	addr := PhysicalAddress(e.regs.GetSeg(DS), disp)
	e.regs.Set8(AL, e.mem.ReadByte(addr))
}

func movAccumLoad16(e *Emulator) {
	disp := e.fetch16()
	addr := PhysicalAddress(e.regs.GetSeg(DS), disp)
	e.regs.Set16(AX, e.mem.ReadWord(addr))
}

func movAccumStore8(e *Emulator) {
	disp := e.fetch16()
	val := e.regs.Get8(AL)
	addr := PhysicalAddress(e.regs.GetSeg(DS), disp)
	e.mem.WriteByte(addr, val)
}

func movAccumStore16(e *Emulator) {
	disp := e.fetch16()
	val := e.regs.Get16(AX)
	addr := PhysicalAddress(e.regs.GetSeg(DS), disp)
	e.mem.WriteWord(addr, val)
}

// movSegFromRM implements 0x8E: MOV sreg, r/m. Bit 2 set in the raw reg
// field is reserved and left a no-op.
func movSegFromRM(e *Emulator) {
	e.decode(Width16)
	if e.modrm.RawReg&(1<<2) != 0 {
		return
	}
	val := e.readOperand(Width16, false)
	e.regs.SetSeg(int(e.modrm.RawReg), val)
}

// movRMFromSeg implements 0x8C: MOV r/m, sreg.
func movRMFromSeg(e *Emulator) {
	e.decode(Width16)
	if e.modrm.RawReg&(1<<2) != 0 {
		return
	}
	val := e.regs.GetSeg(int(e.modrm.RawReg))
	e.commitOperand(Width16, val, false)
}
