package core

// opcodeTable maps each opcode byte to the handler that implements it.
// Entries left nil are unimplemented opcodes and are no-ops in Emulate.
var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]func(*Emulator) {
	var t [256]func(*Emulator)

	t[opMOV88] = movRegRM8
	t[opMOV89] = movRegRM16
	t[opMOV8A] = movRMReg8
	t[opMOV8B] = movRMReg16
	t[opMOVC6] = movImm8
	t[opMOVC7] = movImm16
	t[opMOVA0] = movAccumLoad8
	t[opMOVA1] = movAccumLoad16
	t[opMOVA2] = movAccumStore8
	t[opMOVA3] = movAccumStore16
	t[opMOV8E] = movSegFromRM
	t[opMOV8C] = movRMFromSeg
	for op := 0xB0; op <= 0xB7; op++ {
		t[op] = movRegImm8
	}
	for op := 0xB8; op <= 0xBF; op++ {
		t[op] = movRegImm16
	}

	t[opPUSHPOPFF] = groupFF
	t[opPOP8F] = popRM
	for op := 0x50; op <= 0x57; op++ {
		t[op] = pushReg
	}
	for op := 0x58; op <= 0x5F; op++ {
		t[op] = popReg
	}
	t[0x06] = pushSeg
	t[0x0E] = pushSeg
	t[0x16] = pushSeg
	t[0x1E] = pushSeg
	t[0x07] = popSeg
	t[0x0F] = popSeg
	t[0x17] = popSeg
	t[0x1F] = popSeg
	t[opPUSHF9C] = pushFlags
	t[opPOPF9D] = popFlags

	t[opXCHG86] = xchgRM8
	t[opXCHG87] = xchgRM16
	for op := 0x90; op <= 0x97; op++ {
		t[op] = xchgAX
	}

	t[opINE4] = inImm8
	t[opINE5] = inImm16
	t[opINEC] = inDX8
	t[opINED] = inDX16
	t[opOUTE6] = outImm8
	t[opOUTE7] = outImm16
	t[opOUTEE] = outDX8
	t[opOUTEF] = outDX16

	t[opXLATD7] = xlat
	t[opLEA8D] = lea
	t[opLDSC5] = lds
	t[opLESC4] = les
	t[opLAHF9F] = lahf
	t[opSAHF9E] = sahf

	t[opADD00] = add00
	t[opADD01] = add01
	t[opADD02] = add02
	t[opADD03] = add03
	t[opADD04] = add04
	t[opADD05] = add05

	t[opADC10] = adc10
	t[opADC11] = adc11
	t[opADC12] = adc12
	t[opADC13] = adc13
	t[opADC14] = adc14
	t[opADC15] = adc0x15EightBitALUBug

	t[opSUB28] = sub28
	t[opSUB29] = sub29
	t[opSUB2A] = sub2a
	t[opSUB2B] = sub2b
	t[opSUB2C] = sub2c
	t[opSUB2D] = sub2d

	t[opSBB18] = sbb18
	t[opSBB19] = sbb19
	t[opSBB1A] = sbb1a
	t[opSBB1B] = sbb1b
	t[opSBB1C] = sbb1c
	t[opSBB1D] = sbb1d

	t[opGroup80] = group80
	t[opGroup81] = group81
	t[opGroup82] = group80
	t[opGroup83] = group83

	t[opINCFE] = incRM8
	for op := 0x40; op <= 0x47; op++ {
		t[op] = incReg
	}

	return t
}
