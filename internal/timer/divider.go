// Package timer provides the divider register stub for the emulator.
//
// The machine does not emulate the DIV/TIMA/TAC timer block. The target title
// only samples DIV ($FF04) as an entropy source, so reads are served from an
// injectable Divider instead of a counted-down register. The default source
// is pseudo-random; tests substitute a fixed sequence.
package timer

import "math/rand"

// Divider produces the byte returned by a DIV register read.
type Divider interface {
	Next() uint8
}

// RandomDivider returns pseudo-random bytes, matching the observable behavior
// of sampling a free-running divider at uncorrelated times.
type RandomDivider struct {
	rng *rand.Rand
}

// NewRandomDivider creates a RandomDivider seeded from the given value.
func NewRandomDivider(seed int64) *RandomDivider {
	return &RandomDivider{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next pseudo-random byte.
func (d *RandomDivider) Next() uint8 {
	return uint8(d.rng.Intn(256))
}

// SequenceDivider replays a fixed byte sequence, wrapping at the end.
// Intended for deterministic tests.
type SequenceDivider struct {
	values []uint8
	index  int
}

// NewSequenceDivider creates a SequenceDivider over the given bytes.
// An empty sequence always yields zero.
func NewSequenceDivider(values ...uint8) *SequenceDivider {
	return &SequenceDivider{values: values}
}

// Next returns the next byte in the sequence.
func (d *SequenceDivider) Next() uint8 {
	if len(d.values) == 0 {
		return 0
	}
	v := d.values[d.index]
	d.index = (d.index + 1) % len(d.values)
	return v
}
