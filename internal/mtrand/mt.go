// Package mtrand is the 32-bit Mersenne Twister (MT19937) with the seeding
// and bounded-integer rules of CPython's random module, so that a seeded
// shuffle here visits rows in the same order as random.seed(s);
// random.shuffle(x) does there.
package mtrand

import "math/bits"

const (
	stateLen  = 624
	shift     = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

type MT struct {
	mt  [stateLen]uint32
	pos int
}

// New seeds the generator the way random.seed(seed) does for a
// non-negative int: the value is split into 32-bit words, low word first.
func New(seed uint64) *MT {
	key := []uint32{uint32(seed)}
	if hi := uint32(seed >> 32); hi != 0 {
		key = append(key, hi)
	}
	return newFromKey(key)
}

func newFromKey(key []uint32) *MT {
	r := &MT{}
	r.initByArray(key)
	return r
}

func (r *MT) initGenrand(s uint32) {
	r.mt[0] = s
	for i := 1; i < stateLen; i++ {
		r.mt[i] = 1812433253*(r.mt[i-1]^(r.mt[i-1]>>30)) + uint32(i)
	}
	r.pos = stateLen
}

func (r *MT) initByArray(key []uint32) {
	r.initGenrand(19650218)
	i, j := 1, 0
	for k := max(stateLen, len(key)); k > 0; k-- {
		r.mt[i] = (r.mt[i] ^ ((r.mt[i-1] ^ (r.mt[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= stateLen {
			r.mt[0] = r.mt[stateLen-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k := stateLen - 1; k > 0; k-- {
		r.mt[i] = (r.mt[i] ^ ((r.mt[i-1] ^ (r.mt[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= stateLen {
			r.mt[0] = r.mt[stateLen-1]
			i = 1
		}
	}
	r.mt[0] = upperMask
	r.pos = stateLen
}

func (r *MT) twist() {
	for k := 0; k < stateLen; k++ {
		y := (r.mt[k] & upperMask) | (r.mt[(k+1)%stateLen] & lowerMask)
		v := r.mt[(k+shift)%stateLen] ^ (y >> 1)
		if y&1 != 0 {
			v ^= matrixA
		}
		r.mt[k] = v
	}
	r.pos = 0
}

// Uint32 returns the next tempered 32-bit output.
func (r *MT) Uint32() uint32 {
	if r.pos >= stateLen {
		r.twist()
	}
	y := r.mt[r.pos]
	r.pos++
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Bits returns k random bits (0 < k <= 64), built like getrandbits(k):
// whole words fill from the low end and the last word keeps its top bits.
func (r *MT) Bits(k int) uint64 {
	if k <= 32 {
		return uint64(r.Uint32() >> (32 - k))
	}
	lo := uint64(r.Uint32())
	hi := uint64(r.Uint32() >> (64 - k))
	return hi<<32 | lo
}

// Below returns a uniform integer in [0, n) by rejection on
// bit_length(n) bits. n must be positive.
func (r *MT) Below(n int) int {
	if n <= 0 {
		panic("mtrand: Below called with n <= 0")
	}
	k := bits.Len(uint(n))
	v := r.Bits(k)
	for v >= uint64(n) {
		v = r.Bits(k)
	}
	return int(v)
}

// Perm returns [0, n) shuffled with the Fisher-Yates walk from the top
// index down, as random.shuffle does.
func (r *MT) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	for i := n - 1; i >= 1; i-- {
		j := r.Below(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}
