package core

// inImm8/inImm16 implement 0xE4/0xE5: IN AL/AX, imm8 — the immediate names
// a single port number, zero-extended to the 16-bit port space.
func inImm8(e *Emulator) {
	port := uint16(e.fetchByte())
	e.regs.Set8(AL, e.io.ReadByte(port))
}

func inImm16(e *Emulator) {
	port := uint16(e.fetchByte())
	e.regs.Set16(AX, e.io.ReadWord(port))
}

// inDX8/inDX16 implement 0xEC/0xED: IN AL/AX, DX — the port comes from the
// DX register rather than an immediate.
func inDX8(e *Emulator) {
	port := e.regs.Get16(DX)
	e.regs.Set8(AL, e.io.ReadByte(port))
}

func inDX16(e *Emulator) {
	port := e.regs.Get16(DX)
	e.regs.Set16(AX, e.io.ReadWord(port))
}

// outImm8/outImm16 implement 0xE6/0xE7: OUT imm8, AL/AX.
func outImm8(e *Emulator) {
	port := uint16(e.fetchByte())
	e.io.WriteByte(port, e.regs.Get8(AL))
}

func outImm16(e *Emulator) {
	port := uint16(e.fetchByte())
	e.io.WriteWord(port, e.regs.Get16(AX))
}

// outDX8/outDX16 implement 0xEE/0xEF: OUT DX, AL/AX.
func outDX8(e *Emulator) {
	port := e.regs.Get16(DX)
	e.io.WriteByte(port, e.regs.Get8(AL))
}

func outDX16(e *Emulator) {
	port := e.regs.Get16(DX)
	e.io.WriteWord(port, e.regs.Get16(AX))
}
