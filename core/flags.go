package core

// FLAGS bit positions used by this core. Bits outside this set are
// preserved across every operation that does not define them.
const (
	FlagCF uint16 = 1 << 0  // Carry
	FlagPF uint16 = 1 << 2  // Parity (even parity of low 8 result bits)
	FlagAF uint16 = 1 << 4  // Auxiliary carry (nibble carry/borrow)
	FlagZF uint16 = 1 << 6  // Zero
	FlagSF uint16 = 1 << 7  // Sign
	FlagOF uint16 = 1 << 11 // Overflow
)

// definedFlags is the mask of bits this core computes; all others are left
// as-is by any flag-updating operation.
const definedFlags = FlagCF | FlagPF | FlagAF | FlagZF | FlagSF | FlagOF
