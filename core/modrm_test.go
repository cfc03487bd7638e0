package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bytesFetcher(data []byte) func() uint8 {
	i := 0
	return func() uint8 {
		b := data[i]
		i++
		return b
	}
}

func TestDecodeModRMRegisterMode(t *testing.T) {
	regs := NewRegisterFile()
	// mod=11, reg=001, rm=010 -> register/register, no displacement bytes.
	m := decodeModRM(Width16, regs, bytesFetcher([]byte{0b11_001_010}))

	assert.Equal(t, RMReg, m.Kind)
	assert.Equal(t, CX, m.Reg)
	assert.Equal(t, DX, m.RMReg)
}

func TestDecodeModRMDirectAddressHasNoBase(t *testing.T) {
	// mod=00, rm=110 is the direct-address special case: a 16-bit
	// displacement with no base/index contribution at all.
	regs := NewRegisterFile()
	m := decodeModRM(Width16, regs, bytesFetcher([]byte{0b00_000_110, 0x34, 0x12}))

	assert.Equal(t, RMMem, m.Kind)
	assert.False(t, m.UsesBPAsBase)
	assert.Equal(t, uint16(0x1234), m.EffectiveAddress)
}

func TestDecodeModRMByteDisplacementSignExtends(t *testing.T) {
	regs := NewRegisterFile()
	regs.Set16(BX, 0x0010)
	// mod=01, rm=111 -> [BX] + disp8; 0xFF sign-extends to -1.
	m := decodeModRM(Width16, regs, bytesFetcher([]byte{0b01_000_111, 0xFF}))

	assert.Equal(t, uint16(0x000F), m.EffectiveAddress)
}

func TestDecodeModRMBPAsBaseSelectsStackSegment(t *testing.T) {
	regs := NewRegisterFile()
	// mod=10, rm=010 -> [BP+SI]+disp16, which marks UsesBPAsBase.
	m := decodeModRM(Width16, regs, bytesFetcher([]byte{0b10_000_010, 0x00, 0x00}))

	assert.True(t, m.UsesBPAsBase)
}

func TestDecodeModRMWidth8SelectsByteRegisters(t *testing.T) {
	regs := NewRegisterFile()
	// mod=11, reg=100, rm=000 at 8-bit width selects AH/AL, not SP/AX.
	m := decodeModRM(Width8, regs, bytesFetcher([]byte{0b11_100_000}))

	assert.Equal(t, AH, m.Reg)
	assert.Equal(t, AL, m.RMReg)
}

func TestPhysicalAddressWrapsAt20Bits(t *testing.T) {
	// (0xFFFF<<4)+0xFFFF = 0x10FFEF, which exceeds the 20-bit physical
	// address space and must wrap rather than overflow uint32 unmasked.
	addr := PhysicalAddress(0xFFFF, 0xFFFF)
	assert.Equal(t, uint32(0xFFEF), addr)
}
