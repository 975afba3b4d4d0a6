// Package multiset implements the two multiset bigram-profile
// representations described alongside the counted form in
// pkg/sdc/bigrams: an ordered (sorted bag) variant and a hashed
// (map-keyed) variant. Both satisfy the same behavioural contract as
// bigrams.Profile: construct, union, intersection size, SDC.
package multiset

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cognicore/sdc/pkg/sdc/bigrams"
)

// Bigram is re-exported from pkg/sdc/bigrams so callers never need to
// import both packages to build a profile.
type Bigram = bigrams.Bigram

func less(a, b Bigram) bool {
	if a.C1 != b.C1 {
		return a.C1 < b.C1
	}
	return a.C2 < b.C2
}

// Ordered is a sorted-bag bigram multiset: one stored element per
// bigram occurrence, in ascending lexicographic order. Intersection
// size is classic sorted-sequence intersection; min-count-per-key
// emerges naturally from counting matched runs.
type Ordered struct {
	items []Bigram
}

// OrderedEmpty returns a profile with no bigrams.
func OrderedEmpty() Ordered { return Ordered{} }

// OrderedFromString builds the ordered bigram multiset of s.
func OrderedFromString(s string) Ordered {
	runes := []rune(s)
	if len(runes) < 2 {
		return Ordered{}
	}
	items := make([]Bigram, 0, len(runes)-1)
	for i := 0; i < len(runes)-1; i++ {
		items = append(items, Bigram{C1: runes[i], C2: runes[i+1]})
	}
	sort.Slice(items, func(i, j int) bool { return less(items[i], items[j]) })
	return Ordered{items: items}
}

// Size returns the multiset cardinality.
func (p Ordered) Size() int { return len(p.items) }

// Each visits each distinct bigram with its count, in ascending
// lexicographic order, stopping early if fn returns false.
func (p Ordered) Each(fn func(b Bigram, count int) bool) {
	i := 0
	for i < len(p.items) {
		b := p.items[i]
		j := i + 1
		for j < len(p.items) && p.items[j] == b {
			j++
		}
		if !fn(b, j-i) {
			return
		}
		i = j
	}
}

// UnionInPlace merges other into p and returns p.
func (p *Ordered) UnionInPlace(other Ordered) *Ordered {
	*p = unionOrdered(*p, other)
	return p
}

// UnionOrdered returns a fresh profile equal to the union of first and
// rest.
func UnionOrdered(first Ordered, rest ...Ordered) Ordered {
	result := first
	for _, o := range rest {
		result = unionOrdered(result, o)
	}
	return result
}

func unionOrdered(a, b Ordered) Ordered {
	if len(a.items) == 0 {
		return b
	}
	if len(b.items) == 0 {
		return a
	}
	merged := make([]Bigram, 0, len(a.items)+len(b.items))
	i, j := 0, 0
	for i < len(a.items) && j < len(b.items) {
		if less(b.items[j], a.items[i]) {
			merged = append(merged, b.items[j])
			j++
		} else {
			merged = append(merged, a.items[i])
			i++
		}
	}
	merged = append(merged, a.items[i:]...)
	merged = append(merged, b.items[j:]...)
	return Ordered{items: merged}
}

// IntersectSizeOrdered returns the shared-bigram count via classic
// sorted-sequence intersection, without materialising it.
func IntersectSizeOrdered(a, b Ordered) int {
	size := 0
	i, j := 0, 0
	for i < len(a.items) && j < len(b.items) {
		switch {
		case less(a.items[i], b.items[j]):
			i++
		case less(b.items[j], a.items[i]):
			j++
		default:
			ai, bj := i, j
			for ai < len(a.items) && a.items[ai] == a.items[i] {
				ai++
			}
			for bj < len(b.items) && b.items[bj] == b.items[j] {
				bj++
			}
			acount, bcount := ai-i, bj-j
			if acount < bcount {
				size += acount
			} else {
				size += bcount
			}
			i, j = ai, bj
		}
	}
	return size
}

// SDCOrdered returns the Sørensen–Dice coefficient of a and b.
func SDCOrdered(a, b Ordered) float64 {
	isect := IntersectSizeOrdered(a, b)
	if isect == 0 {
		return 0
	}
	return 2 * float64(isect) / float64(len(a.items)+len(b.items))
}

// String renders the profile as
// "bigram_multiset(size: N, {c1c2, c1c2, ...})".
func (p Ordered) String() string {
	var sb strings.Builder
	sb.WriteString("bigram_multiset(size: ")
	sb.WriteString(strconv.Itoa(len(p.items)))
	sb.WriteString(", {")
	for idx, b := range p.items {
		if idx > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.String())
	}
	sb.WriteString("})")
	return sb.String()
}
