package core

// Operand width, in bits. ModR/M decoding and the ALU are both
// parameterized by this rather than duplicating logic per width.
const (
	Width8  = 8
	Width16 = 16
)

// RMKind distinguishes a register r/m operand from a memory r/m operand.
type RMKind int

const (
	RMReg RMKind = iota
	RMMem
)

// ModRM is the decoded form of a ModR/M byte plus any displacement bytes
// it implies. It is a value scoped to a single decode call: each handler
// decodes fresh rather than sharing mutable scratch across instructions.
type ModRM struct {
	Mod, RawReg, RM  uint8
	Kind             RMKind
	RMReg            int // valid when Kind == RMReg: register index at the decode width
	EffectiveAddress uint16
	UsesBPAsBase     bool
	Reg              int // the middle field's register, at the decode width
}

// baseIndexSum computes the classical 8086 base/index table for a given
// r/m field and mod, returning the base/index sum (pre-displacement), and
// whether BP is used as a base (for SS default-segment selection), and
// whether r/m==110,mod==00 takes a direct 16-bit displacement with no base.
func baseIndexSum(regs *RegisterFile, rm uint8, mod uint8) (sum uint16, usesBP bool, directDisp bool) {
	switch rm {
	case 0b000:
		return regs.Get16(BX) + regs.Get16(SI), false, false
	case 0b001:
		return regs.Get16(BX) + regs.Get16(DI), false, false
	case 0b010:
		return regs.Get16(BP) + regs.Get16(SI), true, false
	case 0b011:
		return regs.Get16(BP) + regs.Get16(DI), true, false
	case 0b100:
		return regs.Get16(SI), false, false
	case 0b101:
		return regs.Get16(DI), false, false
	case 0b110:
		if mod == 0b00 {
			return 0, false, true
		}
		return regs.Get16(BP), true, false
	case 0b111:
		return regs.Get16(BX), false, false
	}
	panic("core: unreachable r/m value")
}

// regAt gives the register selected by a 3-bit field. The AX..DI and
// AL..BH enumerations share the same 0-7 numbering, so the same index
// resolves to the correct register regardless of width; callers pick the
// width-appropriate view (getReg/setReg, Get8/Get16) themselves.
func regAt(field uint8) int {
	return int(field & 0x7)
}

// decodeModRM reads the ModR/M byte (via fetch) plus any implied
// displacement bytes, and returns the decoded addressing-mode result.
func decodeModRM(width int, regs *RegisterFile, fetch func() uint8) ModRM {
	b := fetch()
	mod := (b >> 6) & 0x3
	rawReg := (b >> 3) & 0x7
	rm := b & 0x7

	m := ModRM{
		Mod:    mod,
		RawReg: rawReg,
		RM:     rm,
		Reg:    regAt(rawReg),
	}

	if mod == 0b11 {
		m.Kind = RMReg
		m.RMReg = regAt(rm)
		return m
	}

	m.Kind = RMMem
	sum, usesBP, directDisp := baseIndexSum(regs, rm, mod)
	m.UsesBPAsBase = usesBP

	var disp uint16
	switch {
	case directDisp:
		disp = uint16(fetch()) | uint16(fetch())<<8
		m.EffectiveAddress = disp
		return m
	case mod == 0b00:
		disp = 0
	case mod == 0b01:
		// Sign-extend the 8-bit displacement to 16 bits before adding.
		d8 := int8(fetch())
		disp = uint16(int16(d8))
	case mod == 0b10:
		disp = uint16(fetch()) | uint16(fetch())<<8
	}

	// The base/index sum wraps at 16 bits before segment translation.
	m.EffectiveAddress = sum + disp
	return m
}
