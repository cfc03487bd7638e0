package core

// aluFn is the shape shared by addWithCarry and subWithBorrow: apply an ALU
// op at the given width to v1/v2 with an explicit carry-in, returning the
// result and the full flags word it produces.
type aluFn func(width int, v1, v2, carryIn, oldFlags uint16) aluResult

// aluToRM applies op to the current ModR/M r/m operand (dest) and the reg
// field (source), writing the result back to r/m. This is the "to r/m"
// direction used by ADD/ADC/SUB/SBB's *0 and *1 opcodes.
func aluToRM(e *Emulator, width int, op aluFn, carry uint16) {
	e.decode(width)
	v1 := e.readOperand(width, false)
	v2 := e.getReg(width, e.modrm.Reg)
	r := op(width, v1, v2, carry, e.regs.GetFlags())
	e.regs.SetFlags(r.flags)
	e.commitOperand(width, r.result, false)
}

// aluToReg applies op to the reg field (dest) and the r/m operand (source),
// the "to reg" direction used by ADD/ADC/SUB/SBB's *2 and *3 opcodes. The
// reg field is v1 (dest) and the r/m operand is v2 (source), the reverse of
// aluToRM's operand order, since SUB/SBB are not commutative.
func aluToReg(e *Emulator, width int, op aluFn, carry uint16) {
	e.decode(width)
	v1 := e.getReg(width, e.modrm.Reg)
	v2 := e.readOperand(width, false)
	r := op(width, v1, v2, carry, e.regs.GetFlags())
	e.regs.SetFlags(r.flags)
	e.setReg(width, e.modrm.Reg, r.result)
}

// aluAccumImm applies op to the accumulator (AL or AX) and a fetched
// immediate of matching width, the *4/*5 opcodes.
func aluAccumImm(e *Emulator, width int, op aluFn, carry uint16) {
	var v1 uint16
	if width == Width8 {
		v1 = uint16(e.regs.Get8(AL))
	} else {
		v1 = e.regs.Get16(AX)
	}
	var v2 uint16
	if width == Width8 {
		v2 = uint16(e.fetchByte())
	} else {
		v2 = e.fetch16()
	}
	r := op(width, v1, v2, carry, e.regs.GetFlags())
	e.regs.SetFlags(r.flags)
	if width == Width8 {
		e.regs.Set8(AL, uint8(r.result))
	} else {
		e.regs.Set16(AX, r.result)
	}
}

func add00(e *Emulator) { aluToRM(e, Width8, addWithCarry, 0) }
func add01(e *Emulator) { aluToRM(e, Width16, addWithCarry, 0) }
func add02(e *Emulator) { aluToReg(e, Width8, addWithCarry, 0) }
func add03(e *Emulator) { aluToReg(e, Width16, addWithCarry, 0) }
func add04(e *Emulator) { aluAccumImm(e, Width8, addWithCarry, 0) }
func add05(e *Emulator) { aluAccumImm(e, Width16, addWithCarry, 0) }

func adc10(e *Emulator) { aluToRM(e, Width8, addWithCarry, carryIn(e.regs.GetFlags())) }
func adc11(e *Emulator) { aluToRM(e, Width16, addWithCarry, carryIn(e.regs.GetFlags())) }
func adc12(e *Emulator) { aluToReg(e, Width8, addWithCarry, carryIn(e.regs.GetFlags())) }
func adc13(e *Emulator) { aluToReg(e, Width16, addWithCarry, carryIn(e.regs.GetFlags())) }
func adc14(e *Emulator) { aluAccumImm(e, Width8, addWithCarry, carryIn(e.regs.GetFlags())) }

// adc0x15EightBitALUBug implements opcode 0x15, ADC AX, imm16, by running
// the 16-bit accumulator and immediate through the 8-bit ALU path rather
// than the 16-bit one. The result keeps only the low 8 bits (zero-extended
// into AX) and the flags are derived from bit 7 of the full operands
// rather than bit 15. A real 8086 performs a full 16-bit ADC here; this
// core keeps the narrow ALU call as a named deviation rather than silently
// widening it to a correct 16-bit ADC.
func adc0x15EightBitALUBug(e *Emulator) {
	v1 := e.regs.Get16(AX)
	v2 := e.fetch16()
	r := addWithCarry(Width8, v1, v2, carryIn(e.regs.GetFlags()), e.regs.GetFlags())
	e.regs.SetFlags(r.flags)
	e.regs.Set16(AX, r.result)
}

func sub28(e *Emulator) { aluToRM(e, Width8, subWithBorrow, 0) }
func sub29(e *Emulator) { aluToRM(e, Width16, subWithBorrow, 0) }
func sub2a(e *Emulator) { aluToReg(e, Width8, subWithBorrow, 0) }
func sub2b(e *Emulator) { aluToReg(e, Width16, subWithBorrow, 0) }
func sub2c(e *Emulator) { aluAccumImm(e, Width8, subWithBorrow, 0) }
func sub2d(e *Emulator) { aluAccumImm(e, Width16, subWithBorrow, 0) }

func sbb18(e *Emulator) { aluToRM(e, Width8, subWithBorrow, carryIn(e.regs.GetFlags())) }
func sbb19(e *Emulator) { aluToRM(e, Width16, subWithBorrow, carryIn(e.regs.GetFlags())) }
func sbb1a(e *Emulator) { aluToReg(e, Width8, subWithBorrow, carryIn(e.regs.GetFlags())) }
func sbb1b(e *Emulator) { aluToReg(e, Width16, subWithBorrow, carryIn(e.regs.GetFlags())) }
func sbb1c(e *Emulator) { aluAccumImm(e, Width8, subWithBorrow, carryIn(e.regs.GetFlags())) }
func sbb1d(e *Emulator) { aluAccumImm(e, Width16, subWithBorrow, carryIn(e.regs.GetFlags())) }

// groupImmALU implements the shared body of the 0x80/0x81/0x83 immediate
// arithmetic group: decode a ModR/M r/m operand, dispatch on its raw reg
// field to pick ADD/ADC/SBB/SUB, fetch an immediate using fetchImm, apply
// the op, and write the result back. Any raw reg field outside
// {subADD, subADC, subSBB, subSUB} returns after the ModR/M decode: no
// immediate is fetched and no write is performed.
func groupImmALU(e *Emulator, width int, fetchImm func(*Emulator) uint16) {
	e.decode(width)
	var op aluFn
	var carry uint16
	switch e.modrm.RawReg {
	case subADD:
		op, carry = addWithCarry, 0
	case subADC:
		op, carry = addWithCarry, carryIn(e.regs.GetFlags())
	case subSBB:
		op, carry = subWithBorrow, carryIn(e.regs.GetFlags())
	case subSUB:
		op, carry = subWithBorrow, 0
	default:
		return
	}
	v1 := e.readOperand(width, false)
	v2 := fetchImm(e)
	r := op(width, v1, v2, carry, e.regs.GetFlags())
	e.regs.SetFlags(r.flags)
	e.commitOperand(width, r.result, false)
}

// group80 implements 0x80: the immediate group at 8-bit width with an
// 8-bit immediate.
func group80(e *Emulator) {
	groupImmALU(e, Width8, func(e *Emulator) uint16 { return uint16(e.fetchByte()) })
}

// group81 implements 0x81: the immediate group at 16-bit width with a
// 16-bit immediate.
func group81(e *Emulator) {
	groupImmALU(e, Width16, func(e *Emulator) uint16 { return e.fetch16() })
}

// group83 implements 0x83: the immediate group at 16-bit width with a
// sign-extended 8-bit immediate.
func group83(e *Emulator) {
	groupImmALU(e, Width16, func(e *Emulator) uint16 {
		return uint16(int16(int8(e.fetchByte())))
	})
}

// incRM8 implements 0xFE: INC r/m, 8-bit. Only sub-opcode 0 is a valid
// encoding here (the full ISA's 0xFE /1 is DEC, out of scope); any other
// raw reg field leaves the ModR/M byte consumed and does nothing.
func incRM8(e *Emulator) {
	e.decode(Width8)
	if e.modrm.RawReg != 0 {
		return
	}
	v := e.readOperand(Width8, false)
	result, flags := incFlags(Width8, v, e.regs.GetFlags())
	e.regs.SetFlags(flags)
	e.commitOperand(Width8, result, false)
}

// incRM16 implements the 16-bit INC r/m carried by 0xFF /0. Unlike incRM8
// it does not decode its own ModR/M byte: groupFF has already decoded the
// operand and dispatched here by raw reg field.
func incRM16(e *Emulator) {
	v := e.readOperand(Width16, false)
	result, flags := incFlags(Width16, v, e.regs.GetFlags())
	e.regs.SetFlags(flags)
	e.commitOperand(Width16, result, false)
}

// incReg implements 0x40-0x47: INC r, 16-bit, register encoded in the
// opcode's low 3 bits.
func incReg(e *Emulator) {
	reg := regFromOpcodeLow3(e.opcode)
	v := e.regs.Get16(reg)
	result, flags := incFlags(Width16, v, e.regs.GetFlags())
	e.regs.SetFlags(flags)
	e.regs.Set16(reg, result)
}
