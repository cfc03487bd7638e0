package core

// xlat implements 0xD7: AL = [DS:BX+AL]. The table index wraps modulo
// 65536 by plain uint16 addition, matching the rest of this core's
// effective-address arithmetic.
func xlat(e *Emulator) {
	index := e.regs.Get16(BX) + uint16(e.regs.Get8(AL))
	addr := PhysicalAddress(e.regs.GetSeg(DS), index)
	e.regs.Set8(AL, e.mem.ReadByte(addr))
}

// lea implements 0x8D: LOAD the ModR/M operand's effective address, not its
// value, into the destination register. When the r/m encodes a register
// rather than a memory operand there is no effective address to take; this
// core copies the register's own value instead of rejecting the encoding.
func lea(e *Emulator) {
	e.decode(Width16)
	var val uint16
	if e.modrm.Kind == RMReg {
		val = e.regs.Get16(e.modrm.RMReg)
	} else {
		val = e.modrm.EffectiveAddress
	}
	e.regs.Set16(e.modrm.Reg, val)
}

// loadFarPointer is shared by LDS and LES: read a 32-bit far pointer
// (offset then segment, low word first) out of memory and load the offset
// into the ModR/M reg field and the segment into destSeg. A register r/m
// has no memory to read from, so the ModR/M byte is consumed and the
// instruction otherwise does nothing. The far pointer is always read from
// DS:ea, even when the effective address uses BP as a base (which would
// otherwise default to SS for a plain operand read).
func loadFarPointer(e *Emulator, destSeg int) {
	e.decode(Width16)
	if e.modrm.Kind == RMReg {
		return
	}
	addr := PhysicalAddress(e.regs.GetSeg(DS), e.modrm.EffectiveAddress)
	offset := e.mem.ReadWord(addr)
	segment := e.mem.ReadWord(addr + 2)
	e.regs.Set16(e.modrm.Reg, offset)
	e.regs.SetSeg(destSeg, segment)
}

// lds implements 0xC5: LDS r, m32 (loads DS).
func lds(e *Emulator) {
	loadFarPointer(e, DS)
}

// les implements 0xC4: LES r, m32 (loads ES).
func les(e *Emulator) {
	loadFarPointer(e, ES)
}

// lahf implements 0x9F: AH = low byte of the flags word.
func lahf(e *Emulator) {
	e.regs.Set8(AH, uint8(e.regs.GetFlags()&0xFF))
}

// sahf implements 0x9E: the low byte of the flags word is replaced by AH,
// the high byte left untouched.
func sahf(e *Emulator) {
	flags := e.regs.GetFlags()
	flags = (flags &^ 0xFF) | uint16(e.regs.Get8(AH))
	e.regs.SetFlags(flags)
}
