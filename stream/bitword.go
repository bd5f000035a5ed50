package stream

// BitWord holds the unread bits of the chunks loaded so far. At most 15 bits
// are pending between loads, so a loaded chunk always fits next to them.
type BitWord struct {
	value   uint32
	pending int
}

// Pending returns the number of unread bits.
func (b *BitWord) Pending() int {
	return b.pending
}

// Load appends a chunk below the pending bits.
func (b *BitWord) Load(chunk uint16) {
	if b.pending >= 16 {
		panic("loading a chunk over a full bit word")
	}

	b.value = b.value<<16 | uint32(chunk)
	b.pending += 16
}

// Take removes and returns the n most significant pending bits.
func (b *BitWord) Take(n int) uint16 {
	if n > b.pending {
		panic("taking more bits than pending")
	}

	b.pending -= n
	v := b.value >> uint(b.pending) & (1<<uint(n) - 1)
	b.value &= 1<<uint(b.pending) - 1

	return uint16(v)
}

// Drop discards the pending bits.
func (b *BitWord) Drop() {
	b.value = 0
	b.pending = 0
}
