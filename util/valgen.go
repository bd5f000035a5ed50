// Package valgen provides closures that generate operand stream chunks.
package valgen

// MakeConstGen returns a generator that always yields constant.
func MakeConstGen(constant uint16) func() uint16 {
	return func() uint16 {
		return constant
	}
}

// MakeIncreasingGen returns a generator yielding start+1, start+2, ...
func MakeIncreasingGen(start uint16) func() uint16 {
	current := start
	return func() uint16 {
		current++
		return current
	}
}

// MakeRandomGen returns a deterministic pseudo-random generator. The same
// seed always produces the same sequence.
func MakeRandomGen(seed uint32) func() uint16 {
	state := seed
	return func() uint16 {
		state ^= state << 13
		state ^= state >> 17
		state ^= state << 5
		return uint16(state >> 8)
	}
}

// Take collects the next n values of gen.
func Take(gen func() uint16, n int) []uint16 {
	vals := make([]uint16, n)
	for i := range vals {
		vals[i] = gen()
	}
	return vals
}
