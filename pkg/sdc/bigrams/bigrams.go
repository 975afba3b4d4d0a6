// Package bigrams implements the counted bigram-multiset profile of a
// string, and the Sørensen–Dice coefficient (SDC) over such profiles.
//
// A bigram is an ordered pair of adjacent characters (runes, so the
// same type serves both narrow ASCII tokens and wide UTF-8 text, e.g.
// "Sørensen"). A string of length n >= 2 induces n-1 bigrams; shorter
// strings induce none, so single-character strings always have an SDC
// of 0 against anything (including themselves), by construction.
package bigrams

import (
	"sort"
	"strconv"
	"strings"
)

// Bigram is an ordered pair of adjacent characters.
type Bigram struct {
	C1, C2 rune
}

// String renders the bigram as its two characters concatenated.
func (b Bigram) String() string {
	return string(b.C1) + string(b.C2)
}

func less(a, b Bigram) bool {
	if a.C1 != b.C1 {
		return a.C1 < b.C1
	}
	return a.C2 < b.C2
}

// entry pairs a bigram with its multiplicity in a profile.
type entry struct {
	bigram Bigram
	count  int
}

// Profile is a multiset of bigrams, stored as a strictly
// lexicographically ordered run of (bigram, count) entries.
//
// The zero value is a valid empty profile.
type Profile struct {
	entries []entry
	size    int
}

// Empty returns a profile with no bigrams.
func Empty() Profile { return Profile{} }

// FromString builds the bigram profile of s. For a string of n runes,
// size(profile) == max(0, n-1); strings shorter than two characters
// produce an empty profile.
func FromString(s string) Profile {
	runes := []rune(s)
	if len(runes) < 2 {
		return Profile{}
	}

	raw := make([]Bigram, 0, len(runes)-1)
	for i := 0; i < len(runes)-1; i++ {
		raw = append(raw, Bigram{runes[i], runes[i+1]})
	}
	sort.Slice(raw, func(i, j int) bool { return less(raw[i], raw[j]) })

	entries := make([]entry, 0, len(raw))
	entries = append(entries, entry{raw[0], 1})
	for _, bg := range raw[1:] {
		last := &entries[len(entries)-1]
		if last.bigram == bg {
			last.count++
		} else {
			entries = append(entries, entry{bg, 1})
		}
	}

	return Profile{entries: entries, size: len(raw)}
}

// Size returns the multiset cardinality (sum of counts).
func (p Profile) Size() int { return p.size }

// Each visits every distinct bigram in ascending lexicographic order
// with its count, stopping early if fn returns false.
func (p Profile) Each(fn func(b Bigram, count int) bool) {
	for _, e := range p.entries {
		if !fn(e.bigram, e.count) {
			return
		}
	}
}

// Union returns a fresh profile equal to the union of first and rest.
// Variadic-friendly; associativity of multiset union makes argument
// order immaterial to the result.
func Union(first Profile, rest ...Profile) Profile {
	result := first
	for _, other := range rest {
		result = unionOf(result, other)
	}
	return result
}

// UnionInPlace adds all bigrams of other into p (with multiplicities)
// and returns p. Runs in O(size(p) + size(other)) via a merge of the
// two sorted runs.
func (p *Profile) UnionInPlace(other Profile) *Profile {
	if p.size == 0 {
		*p = other
		return p
	}
	*p = unionOf(*p, other)
	return p
}

// unionOf merges two sorted entry runs, summing counts on equal keys.
func unionOf(a, b Profile) Profile {
	if a.size == 0 {
		return b
	}
	if b.size == 0 {
		return a
	}

	merged := make([]entry, 0, len(a.entries)+len(b.entries))
	i, j := 0, 0
	for i < len(a.entries) && j < len(b.entries) {
		ea, eb := a.entries[i], b.entries[j]
		switch {
		case less(ea.bigram, eb.bigram):
			merged = append(merged, ea)
			i++
		case less(eb.bigram, ea.bigram):
			merged = append(merged, eb)
			j++
		default:
			merged = append(merged, entry{ea.bigram, ea.count + eb.count})
			i++
			j++
		}
	}
	merged = append(merged, a.entries[i:]...)
	merged = append(merged, b.entries[j:]...)

	return Profile{entries: merged, size: a.size + b.size}
}

// IntersectSize returns sum(min(count_a(bigram), count_b(bigram))) over
// shared bigrams, without materialising the intersection. Commutative;
// 0 <= IntersectSize(a, b) <= min(a.Size(), b.Size()).
func IntersectSize(a, b Profile) int {
	size := 0
	i, j := 0, 0
	for i < len(a.entries) && j < len(b.entries) {
		ea, eb := a.entries[i], b.entries[j]
		switch {
		case less(ea.bigram, eb.bigram):
			i++
		case less(eb.bigram, ea.bigram):
			j++
		default:
			if ea.count < eb.count {
				size += ea.count
			} else {
				size += eb.count
			}
			i++
			j++
		}
	}
	return size
}

// SDC returns the Sørensen–Dice coefficient of a and b:
//
//	SDC(a, b) = 2*|a ∩ b| / (size(a) + size(b))   if |a ∩ b| > 0
//	          = 0                                  otherwise
//
// This subsumes the empty-profile case (SDC is 0 whenever either
// profile is empty) and always returns a value in [0, 1].
func SDC(a, b Profile) float64 {
	isect := IntersectSize(a, b)
	if isect == 0 {
		return 0
	}
	return 2 * float64(isect) / float64(a.size+b.size)
}

// String renders the profile as "bigrams(size: N, {c1c2: k, ...})",
// with pairs in iteration order. Empty profiles render as
// "bigrams(size: 0, {})".
func (p Profile) String() string {
	var sb strings.Builder
	sb.WriteString("bigrams(size: ")
	sb.WriteString(strconv.Itoa(p.size))
	sb.WriteString(", {")
	for idx, e := range p.entries {
		if idx > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.bigram.String())
		sb.WriteString(": ")
		sb.WriteString(strconv.Itoa(e.count))
	}
	sb.WriteString("})")
	return sb.String()
}
