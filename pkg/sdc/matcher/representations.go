package matcher

import (
	"github.com/cognicore/sdc/pkg/sdc/bigrams"
	"github.com/cognicore/sdc/pkg/sdc/multiset"
)

// CountedRepresentation backs a matcher with the counted bigram
// profile (pkg/sdc/bigrams): a compact sorted (bigram, count) list.
func CountedRepresentation() Representation[bigrams.Profile] {
	return Representation[bigrams.Profile]{
		FromString: bigrams.FromString,
		Size:       bigrams.Profile.Size,
		Union:      func(a, b bigrams.Profile) bigrams.Profile { return bigrams.Union(a, b) },
		SDC:        bigrams.SDC,
	}
}

// OrderedMultisetRepresentation backs a matcher with the sorted-bag
// multiset representation (pkg/sdc/multiset).
func OrderedMultisetRepresentation() Representation[multiset.Ordered] {
	return Representation[multiset.Ordered]{
		FromString: multiset.OrderedFromString,
		Size:       multiset.Ordered.Size,
		Union:      func(a, b multiset.Ordered) multiset.Ordered { return multiset.UnionOrdered(a, b) },
		SDC:        multiset.SDCOrdered,
	}
}

// HashedMultisetRepresentation backs a matcher with the unordered,
// hash-keyed multiset representation (pkg/sdc/multiset).
func HashedMultisetRepresentation() Representation[multiset.Hashed] {
	return Representation[multiset.Hashed]{
		FromString: multiset.HashedFromString,
		Size:       multiset.Hashed.Size,
		Union:      func(a, b multiset.Hashed) multiset.Hashed { return multiset.UnionHashed(a, b) },
		SDC:        multiset.SDCHashed,
	}
}

// NewCounted constructs an empty matcher using the counted bigram
// profile representation — the default choice absent another reason.
func NewCounted() *Matcher[bigrams.Profile] { return New(CountedRepresentation()) }

// NewOrderedMultiset constructs an empty matcher using the sorted-bag
// multiset representation.
func NewOrderedMultiset() *Matcher[multiset.Ordered] { return New(OrderedMultisetRepresentation()) }

// NewHashedMultiset constructs an empty matcher using the unordered,
// hash-keyed multiset representation.
func NewHashedMultiset() *Matcher[multiset.Hashed] { return New(HashedMultisetRepresentation()) }
