package core

// Opcode bytes for the mnemonics this core implements, grouped by
// mnemonic family.
const (
	opMOV88 = 0x88
	opMOV89 = 0x89
	opMOV8A = 0x8A
	opMOV8B = 0x8B
	opMOVC6 = 0xC6
	opMOVC7 = 0xC7
	opMOVA0 = 0xA0
	opMOVA1 = 0xA1
	opMOVA2 = 0xA2
	opMOVA3 = 0xA3
	opMOV8E = 0x8E
	opMOV8C = 0x8C

	opPUSHPOPFF = 0xFF
	opPOP8F     = 0x8F

	opXCHG86 = 0x86
	opXCHG87 = 0x87

	opINE4 = 0xE4
	opINE5 = 0xE5
	opINEC = 0xEC
	opINED = 0xED

	opOUTE6 = 0xE6
	opOUTE7 = 0xE7
	opOUTEE = 0xEE
	opOUTEF = 0xEF

	opXLATD7 = 0xD7
	opLEA8D  = 0x8D
	opLDSC5  = 0xC5
	opLESC4  = 0xC4
	opLAHF9F = 0x9F
	opSAHF9E = 0x9E
	opPUSHF9C = 0x9C
	opPOPF9D  = 0x9D

	opADD00 = 0x00
	opADD01 = 0x01
	opADD02 = 0x02
	opADD03 = 0x03
	opADD04 = 0x04
	opADD05 = 0x05

	opADC10 = 0x10
	opADC11 = 0x11
	opADC12 = 0x12
	opADC13 = 0x13
	opADC14 = 0x14
	opADC15 = 0x15

	opSUB28 = 0x28
	opSUB29 = 0x29
	opSUB2A = 0x2A
	opSUB2B = 0x2B
	opSUB2C = 0x2C
	opSUB2D = 0x2D

	opSBB18 = 0x18
	opSBB19 = 0x19
	opSBB1A = 0x1A
	opSBB1B = 0x1B
	opSBB1C = 0x1C
	opSBB1D = 0x1D

	opINCFE = 0xFE

	opGroup80 = 0x80
	opGroup81 = 0x81
	opGroup82 = 0x82
	opGroup83 = 0x83
)

// Sub-opcodes (the ModR/M raw reg field) for the 0x80-0x83 immediate
// arithmetic group. 1, 4, 6, 7 (OR/AND/XOR/CMP in the full ISA) are out of
// scope and are no-ops here.
const (
	subADD = 0
	subADC = 2
	subSBB = 3
	subSUB = 5
)

// regFromOpcodeLow3 extracts the register encoded in an opcode's low 3
// bits, used by the B0-BF/B8-BF/50-57/58-5F/90-97/40-47 families.
func regFromOpcodeLow3(opcode uint8) int {
	return int(opcode & 0x7)
}

// segFromPushPopSR extracts the 2-bit segment selector from bits 4:3 of a
// PUSH/POP sr opcode (0x06/0x0E/0x16/0x1E, 0x07/0x0F/0x17/0x1F).
func segFromPushPopSR(opcode uint8) int {
	return int((opcode >> 3) & 0x3)
}
