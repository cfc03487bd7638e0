package core

import "math/bits"

// aluOp is a wide (>=32-bit) pure arithmetic operation over unsigned
// operands and a carry-in, mirroring the source's
// std::function<uint32_t(uint32_t, uint32_t, uint32_t)>.
type aluOp func(a, b, c uint32) uint32

func addOp(a, b, c uint32) uint32 { return a + b + c }
func subOp(a, b, c uint32) uint32 { return a - b - c }

// aluResult is the outcome of one width-parametric ALU evaluation: the
// truncated result and the full flags word to commit.
type aluResult struct {
	result uint16
	flags  uint16
}

// evalALU runs op over v1/v2/carryIn at the given width (8 or 16),
// truncates the result, and derives the full flag set it implies.
// oldFlags supplies the bits this core does not define, which are
// preserved unchanged.
func evalALU(width int, v1, v2, carryIn uint16, op aluOp, oldFlags uint16) aluResult {
	result32 := op(uint32(v1), uint32(v2), uint32(carryIn))
	nibble := op(uint32(v1)&0xF, uint32(v2)&0xF, 0)

	signBit := uint(width - 1)
	carryBit := uint(width)
	mask := uint32(1)<<uint(width) - 1
	truncated := result32 & mask

	flags := oldFlags &^ definedFlags

	if nibble&(1<<4) != 0 {
		flags |= FlagAF
	}
	if result32&(1<<carryBit) != 0 {
		flags |= FlagCF
	}
	if truncated&(1<<signBit) != 0 {
		flags |= FlagSF
	}
	if truncated == 0 {
		flags |= FlagZF
	}
	if bits.OnesCount8(uint8(truncated))%2 == 0 {
		flags |= FlagPF
	}
	// Overflow uses the same sign-comparison predicate for add and sub
	// alike: operands agreeing in sign but disagreeing with the result.
	v1Sign := v1 & (1 << signBit)
	v2Sign := v2 & (1 << signBit)
	resSign := uint16(result32) & (1 << signBit)
	if v1Sign == v2Sign && v1Sign != resSign {
		flags |= FlagOF
	}

	return aluResult{result: uint16(truncated), flags: flags}
}

// addWithCarry computes v1 + v2 + carryIn at the given width and returns
// the truncated result plus the derived flags word.
func addWithCarry(width int, v1, v2, carryIn, oldFlags uint16) aluResult {
	return evalALU(width, v1, v2, carryIn, addOp, oldFlags)
}

// subWithBorrow computes v1 - v2 - carryIn at the given width and returns
// the truncated result plus the derived flags word.
func subWithBorrow(width int, v1, v2, carryIn, oldFlags uint16) aluResult {
	return evalALU(width, v1, v2, carryIn, subOp, oldFlags)
}

// incFlags runs addWithCarry(v, 1, 0) and folds only the flags INC defines
// (OF, SF, ZF, AF, PF) into oldFlags, leaving CF (and everything else)
// untouched, since INC never affects carry.
func incFlags(width int, v, oldFlags uint16) (result uint16, flags uint16) {
	const incMask = FlagOF | FlagSF | FlagZF | FlagAF | FlagPF
	r := addWithCarry(width, v, 1, 0, oldFlags)
	flags = (oldFlags &^ incMask) | (r.flags & incMask)
	return r.result, flags
}

func boolToU16(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

func carryIn(flags uint16) uint16 {
	return boolToU16(flags&FlagCF != 0)
}
