package core

// ByteSource is the abstract instruction prefetch queue the host attaches
// via Emulator.SetInstructionStream. Pop must succeed synchronously; the
// host guarantees enough bytes are enqueued before calling Emulate.
type ByteSource interface {
	Pop() uint8
}

// SliceByteSource is a reference ByteSource backed by an in-memory byte
// slice, standing in for an external prefetch-queue producer.
type SliceByteSource struct {
	data []byte
	pos  int
}

// NewSliceByteSource wraps data as a sequential ByteSource.
func NewSliceByteSource(data []byte) *SliceByteSource {
	return &SliceByteSource{data: data}
}

// Pop returns the next byte and advances the cursor. Popping past the end
// panics rather than returning a defined value: unlike memory/IO ports,
// the prefetch queue is not a total function, and keeping it fed is the
// host's responsibility.
func (s *SliceByteSource) Pop() uint8 {
	if s.pos >= len(s.data) {
		panic("core: SliceByteSource exhausted")
	}
	b := s.data[s.pos]
	s.pos++
	return b
}

// Remaining reports how many bytes are still queued.
func (s *SliceByteSource) Remaining() int {
	return len(s.data) - s.pos
}

// fetchByte pops one byte and counts it toward the current instruction's
// length.
func (e *Emulator) fetchByte() uint8 {
	e.instrLength++
	return e.instrStream.Pop()
}

// fetch16 pops two bytes and assembles them little-endian, low byte first.
func (e *Emulator) fetch16() uint16 {
	lo := e.fetchByte()
	hi := e.fetchByte()
	return uint16(lo) | uint16(hi)<<8
}
