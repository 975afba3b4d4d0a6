package multiset

import (
	"strconv"
	"strings"
)

// Hashed is an unordered, hash-keyed bigram multiset: iteration order
// is unspecified. The hash of a bigram is a deterministic bitwise
// concatenation of its two characters — since Go runes are at most 21
// bits wide, both halves always fit side by side in a uint64, so no
// fallback mixing combiner is ever needed (unlike the wide-character
// case the original C++ design note anticipates).
type Hashed struct {
	table map[uint64]*hashedEntry
	size  int
}

type hashedEntry struct {
	bigram Bigram
	count  int
}

func hashBigram(b Bigram) uint64 {
	return uint64(uint32(b.C1))<<32 | uint64(uint32(b.C2))
}

// HashedEmpty returns a profile with no bigrams.
func HashedEmpty() Hashed { return Hashed{} }

// HashedFromString builds the hashed bigram multiset of s.
func HashedFromString(s string) Hashed {
	runes := []rune(s)
	if len(runes) < 2 {
		return Hashed{}
	}
	p := Hashed{table: make(map[uint64]*hashedEntry, len(runes)-1)}
	for i := 0; i < len(runes)-1; i++ {
		p.add(Bigram{C1: runes[i], C2: runes[i+1]}, 1)
	}
	return p
}

func (p *Hashed) add(b Bigram, count int) {
	if p.table == nil {
		p.table = make(map[uint64]*hashedEntry)
	}
	h := hashBigram(b)
	if e, ok := p.table[h]; ok {
		e.count += count
	} else {
		p.table[h] = &hashedEntry{bigram: b, count: count}
	}
	p.size += count
}

// Size returns the multiset cardinality.
func (p Hashed) Size() int { return p.size }

// Each visits each distinct bigram with its count, in unspecified
// (map iteration) order, stopping early if fn returns false.
func (p Hashed) Each(fn func(b Bigram, count int) bool) {
	for _, e := range p.table {
		if !fn(e.bigram, e.count) {
			return
		}
	}
}

// UnionInPlace merges other into p and returns p; amortised
// O(size(other)).
func (p *Hashed) UnionInPlace(other Hashed) *Hashed {
	if p.size == 0 {
		*p = other
		return p
	}
	for _, e := range other.table {
		p.add(e.bigram, e.count)
	}
	return p
}

// UnionHashed returns a fresh profile equal to the union of first and
// rest.
func UnionHashed(first Hashed, rest ...Hashed) Hashed {
	result := Hashed{table: make(map[uint64]*hashedEntry, len(first.table))}
	for _, e := range first.table {
		result.add(e.bigram, e.count)
	}
	for _, o := range rest {
		for _, e := range o.table {
			result.add(e.bigram, e.count)
		}
	}
	return result
}

// IntersectSizeHashed returns the shared-bigram count, iterating the
// smaller of the two tables.
func IntersectSizeHashed(a, b Hashed) int {
	if len(b.table) < len(a.table) {
		a, b = b, a
	}
	size := 0
	for h, ea := range a.table {
		if eb, ok := b.table[h]; ok {
			if ea.count < eb.count {
				size += ea.count
			} else {
				size += eb.count
			}
		}
	}
	return size
}

// SDCHashed returns the Sørensen–Dice coefficient of a and b.
func SDCHashed(a, b Hashed) float64 {
	isect := IntersectSizeHashed(a, b)
	if isect == 0 {
		return 0
	}
	return 2 * float64(isect) / float64(a.size+b.size)
}

// String renders the profile as
// "unordered_bigram_multiset(size: N, {c1c2, c1c2, ...})", repeating
// each bigram as many times as its count, in whatever order the
// underlying map yields.
func (p Hashed) String() string {
	var sb strings.Builder
	sb.WriteString("unordered_bigram_multiset(size: ")
	sb.WriteString(strconv.Itoa(p.size))
	sb.WriteString(", {")
	first := true
	for _, e := range p.table {
		for k := 0; k < e.count; k++ {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			sb.WriteString(e.bigram.String())
		}
	}
	sb.WriteString("})")
	return sb.String()
}
