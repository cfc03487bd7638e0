package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEmulator wires a fresh Emulator over a byte-slice instruction
// stream, a 1MB linear memory, and a 64K linear I/O space, mirroring how a
// host assembles the collaborators Emulate needs.
func newTestEmulator(image []byte) (*Emulator, *RegisterFile) {
	regs := NewRegisterFile()
	e := New(regs)
	e.SetInstructionStream(NewSliceByteSource(image))
	e.SetMemory(NewLinearMemory())
	e.SetIO(NewLinearIO())
	return e, regs
}

func TestMovAXImmediate(t *testing.T) {
	// B8 34 12: MOV AX, 0x1234
	e, regs := newTestEmulator([]byte{0xB8, 0x34, 0x12})

	n := e.Emulate()

	assert.Equal(t, 3, n)
	assert.Equal(t, uint16(0x1234), regs.Get16(AX))
}

func TestMovALImmediate(t *testing.T) {
	// B0 05: MOV AL, 0x05
	e, regs := newTestEmulator([]byte{0xB0, 0x05})

	n := e.Emulate()

	assert.Equal(t, 2, n)
	assert.Equal(t, uint8(0x05), regs.Get8(AL))
}

func TestMovRegImmSelectsRegisterFromOpcodeLow3Bits(t *testing.T) {
	// BB 00 01: MOV BX, 0x0100
	e, regs := newTestEmulator([]byte{0xBB, 0x00, 0x01})

	e.Emulate()

	assert.Equal(t, uint16(0x0100), regs.Get16(BX))
}

func TestAddALALOverflowSetsCarryAndZero(t *testing.T) {
	// 00 C0: ADD AL, AL
	e, regs := newTestEmulator([]byte{0x00, 0xC0})
	regs.Set8(AL, 0x80)

	e.Emulate()

	assert.Equal(t, uint8(0), regs.Get8(AL))
	flags := regs.GetFlags()
	assert.NotZero(t, flags&FlagCF)
	assert.NotZero(t, flags&FlagZF)
	assert.NotZero(t, flags&FlagOF, "0x80+0x80 crosses the signed range: both operands negative, result positive")
}

func TestSubAXOneUnderflow(t *testing.T) {
	// 2D 01 00: SUB AX, 1
	e, regs := newTestEmulator([]byte{0x2D, 0x01, 0x00})
	regs.Set16(AX, 0)

	e.Emulate()

	assert.Equal(t, uint16(0xFFFF), regs.Get16(AX))
	flags := regs.GetFlags()
	assert.NotZero(t, flags&FlagCF)
	assert.NotZero(t, flags&FlagSF)
	assert.Zero(t, flags&FlagZF)
}

func TestSubRegFromRMKeepsRegAsDestination(t *testing.T) {
	// 2A C8: SUB CL, AL (mod=11, reg=CL, rm=AL) — CL is the destination,
	// AL is the source, so the result must be CL-AL, not AL-CL.
	e, regs := newTestEmulator([]byte{0x2A, 0xC8})
	regs.Set8(CL, 5)
	regs.Set8(AL, 3)

	e.Emulate()

	assert.Equal(t, uint8(2), regs.Get8(CL))
	assert.Equal(t, uint8(3), regs.Get8(AL), "the r/m source operand must be left unmodified")
}

func TestSbbRegFromRMKeepsRegAsDestination(t *testing.T) {
	// 1A C8: SBB CL, AL with carry-in set — CL is the destination.
	e, regs := newTestEmulator([]byte{0x1A, 0xC8})
	regs.Set8(CL, 5)
	regs.Set8(AL, 3)
	regs.SetFlags(FlagCF)

	e.Emulate()

	assert.Equal(t, uint8(1), regs.Get8(CL), "5 - 3 - carry-in(1) = 1")
}

func TestPushPopRoundTrip(t *testing.T) {
	// B8 78 56: MOV AX, 0x5678
	// 50:       PUSH AX
	// B8 00 00: MOV AX, 0
	// 58:       POP AX
	e, regs := newTestEmulator([]byte{
		0xB8, 0x78, 0x56,
		0x50,
		0xB8, 0x00, 0x00,
		0x58,
	})
	regs.Set16(SP, 0x0100)

	for i := 0; i < 4; i++ {
		e.Emulate()
	}

	assert.Equal(t, uint16(0x5678), regs.Get16(AX))
	assert.Equal(t, uint16(0x0100), regs.Get16(SP), "SP must return to its starting value after a balanced push/pop")
}

func TestLeaBPPlusSIPlusDisp(t *testing.T) {
	// 8D 42 10: LEA AX, [BP+SI+0x10]
	e, regs := newTestEmulator([]byte{0x8D, 0x42, 0x10})
	regs.Set16(BP, 0x0200)
	regs.Set16(SI, 0x0004)

	e.Emulate()

	assert.Equal(t, uint16(0x0214), regs.Get16(AX), "LEA computes the offset only; it must not add a segment base")
}

func TestLdsReadsFarPointerFromDSEvenWithBPBase(t *testing.T) {
	// C5 5E 10: LDS BX, [BP+0x10]
	e, regs := newTestEmulator([]byte{0xC5, 0x5E, 0x10})
	regs.Set16(BP, 0x0300)
	regs.SetSeg(DS, 0)
	regs.SetSeg(SS, 0x1000)

	offsetAddr := PhysicalAddress(0, 0x0310)
	e.mem.WriteWord(offsetAddr, 0x1234)
	e.mem.WriteWord(offsetAddr+2, 0x0050)

	e.Emulate()

	assert.Equal(t, uint16(0x1234), regs.Get16(BX), "must read the far pointer from DS:ea, not SS:ea, even though BP is the base register")
	assert.Equal(t, uint16(0x0050), regs.GetSeg(DS))
}

func TestAdcWithCarryIn(t *testing.T) {
	// 10 C0: ADC AL, AL
	e, regs := newTestEmulator([]byte{0x10, 0xC0})
	regs.Set8(AL, 0x01)
	regs.SetFlags(FlagCF)

	e.Emulate()

	assert.Equal(t, uint8(0x03), regs.Get8(AL), "1+1+carry-in must fold the incoming carry into the sum")
}

func TestAdc0x15EightBitALUBugTruncatesToByte(t *testing.T) {
	// 15 FF 00: ADC AX, 0x00FF
	e, regs := newTestEmulator([]byte{0x15, 0xFF, 0x00})
	regs.Set16(AX, 0x1201)

	e.Emulate()

	// 0x01 + 0xFF run through the 8-bit path wraps to 0x00, zero-extended
	// into AX rather than correctly carrying into the high byte as a true
	// 16-bit ADC would (which would give 0x1300).
	assert.Equal(t, uint16(0x0000), regs.Get16(AX))
	assert.NotZero(t, regs.GetFlags()&FlagCF)
}

func TestXchgAXIsSelfSwapNoop(t *testing.T) {
	// 90: XCHG AX, AX
	e, regs := newTestEmulator([]byte{0x90})
	regs.Set16(AX, 0xBEEF)

	e.Emulate()

	assert.Equal(t, uint16(0xBEEF), regs.Get16(AX))
}

func TestIncRM16ViaGroupFF(t *testing.T) {
	// FF 00: INC word ptr [BX+SI]
	e, regs := newTestEmulator([]byte{0xFF, 0x00})
	regs.Set16(BX, 0)
	regs.Set16(SI, 0)

	e.Emulate()

	assert.Equal(t, uint16(1), e.mem.ReadWord(0))
}

func TestGroup80UnrecognizedSubOpcodeIsNoopWithoutFetchingImmediate(t *testing.T) {
	// 80 F0 7F: the 0x80 immediate group, raw reg field 6 (XOR, out of
	// scope) against AL, immediate 0x7F.
	e, regs := newTestEmulator([]byte{0x80, 0xF0, 0x7F})
	regs.Set8(AL, 0x11)

	n := e.Emulate()

	assert.Equal(t, 2, n, "a reserved sub-opcode consumes only the opcode and ModR/M bytes; the immediate is not fetched")
	assert.Equal(t, uint8(0x11), regs.Get8(AL), "an unrecognized sub-opcode must not modify its operand")
}

func TestInOutRoundTripThroughIOPort(t *testing.T) {
	// E6 10: OUT 0x10, AL
	// E4 10: IN AL, 0x10
	e, regs := newTestEmulator([]byte{0xE6, 0x10, 0xE4, 0x10})
	regs.Set8(AL, 0x99)

	e.Emulate()
	regs.Set8(AL, 0)
	e.Emulate()

	assert.Equal(t, uint8(0x99), regs.Get8(AL))
}

func TestUnrecognizedOpcodeIsNoopButConsumesOneByte(t *testing.T) {
	// 0xF1 is not wired in the opcode table at all.
	e, regs := newTestEmulator([]byte{0xF1})
	before := *regs

	n := e.Emulate()

	require.Equal(t, 1, n)
	assert.Equal(t, before, *regs)
}
