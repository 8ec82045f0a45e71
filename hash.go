package geom

import (
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a digest of both components for use in custom hash-based
// containers. Vectors that are Equal hash identically; +0 and -0 are
// treated as the same value. The digest is stable within a process only.
func (v Vector2) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	maphash.WriteComparable(&h, canonicalBits(v.x))
	maphash.WriteComparable(&h, canonicalBits(v.y))
	return h.Sum64()
}

func canonicalBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}
