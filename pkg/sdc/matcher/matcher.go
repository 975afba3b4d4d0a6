// Package matcher implements the bigram-profile sequence matcher: an
// upper-triangular matrix over all contiguous sub-sequences of a token
// list, memoising bigram unions and their cardinalities on demand, and
// a lazy match iterator pruning by a provable SDC upper bound.
//
// The matcher is generic over which bigram-profile representation
// backs its cells (the counted form in pkg/sdc/bigrams, or either
// multiset form in pkg/sdc/multiset) — the Go-idiomatic stand-in for
// the C++ original's Bigrams template parameter is a small
// Representation value bundling the three operations (construct from
// string, size, union) the matrix needs plus the SDC the iterator
// needs, rather than a constraint interface, since "construct a new
// value of P from a string" has no natural method-on-P expression.
package matcher

import "github.com/cognicore/sdc/pkg/sdc/sdcerr"

// Representation bundles the operations the matcher needs over a
// bigram-profile type P: build one from a token string, read its
// cardinality, union two of them, and score two of them by SDC.
type Representation[P any] struct {
	FromString func(string) P
	Size       func(P) int
	Union      func(a, b P) P
	SDC        func(a, b P) float64
}

// Matcher owns a token sequence's bigram-profile matrix. It is
// single-owner: no two iterators may be live against the same matcher
// concurrently, and no structural mutation (PushBack, Reserve) is
// permitted while one is.
type Matcher[P any] struct {
	rep      Representation[P]
	mx       [][]cell[P]
	stripIxs map[int]struct{}
	iterLive bool
}

// New constructs an empty matcher for the given bigram-profile
// representation.
func New[P any](rep Representation[P]) *Matcher[P] {
	return &Matcher[P]{rep: rep, stripIxs: make(map[int]struct{})}
}

// Reserve hints that up to n tokens will be appended, so the matrix's
// backing row slice can be pre-allocated. Purely an allocation hint;
// it never changes observable behaviour, and never panics if n is
// exceeded later.
func (m *Matcher[P]) Reserve(n int) {
	if n <= 0 || cap(m.mx) >= n {
		return
	}
	grown := make([][]cell[P], len(m.mx), n)
	copy(grown, m.mx)
	m.mx = grown
}

// Size returns the current token count.
func (m *Matcher[P]) Size() int { return len(m.mx) }

// PushBack appends a pre-built profile as the next token. If strip,
// the new token's index is added to the strip set (it may then never
// be the first or last token of a reported match).
func (m *Matcher[P]) PushBack(p P, strip bool) error {
	if m.iterLive {
		return sdcerr.ErrIteratorLive
	}

	newIx := len(m.mx)
	if strip {
		m.stripIxs[newIx] = struct{}{}
	}

	m.mx = append(m.mx, nil)
	n := len(m.mx)
	m.mx[0] = append(m.mx[0], fullCell(p, m.rep.Size(p)))
	for i := 1; i < n; i++ {
		m.mx[i] = append(m.mx[i], cell[P]{})
	}
	return nil
}

// EmplaceBack is equivalent to PushBack(FromString(s), strip).
func (m *Matcher[P]) EmplaceBack(s string, strip bool) error {
	return m.PushBack(m.rep.FromString(s), strip)
}

// subIx computes the recursive split of the window (i, j) per spec:
// the length-(i+1) window starting at j splits into two adjacent,
// non-overlapping sub-windows (i1, j1) and (i2, j2).
func subIx(i, j int) (i1, j1, i2, j2 int) {
	i1 = i / 2
	j1 = j
	i2 = i - i1 - 1
	j2 = j + i1 + 1
	return
}

func (m *Matcher[P]) cellAt(i, j int) (*cell[P], error) {
	if i < 0 || j < 0 || i+j >= len(m.mx) {
		return nil, sdcerr.ErrCellOutOfRange
	}
	row := m.mx[i]
	if j >= len(row) {
		return nil, sdcerr.ErrCellOutOfRange
	}
	return &row[j], nil
}

// sizeAt returns the cardinality of the sub-sequence profile at
// (i, j), computing and memoising it via the recursive split if it
// isn't already known. Never forces full profile materialisation.
func (m *Matcher[P]) sizeAt(i, j int) (int, error) {
	c, err := m.cellAt(i, j)
	if err != nil {
		return 0, err
	}
	if size, known := c.knownSize(); known {
		return size, nil
	}

	i1, j1, i2, j2 := subIx(i, j)
	s1, err := m.sizeAt(i1, j1)
	if err != nil {
		return 0, err
	}
	s2, err := m.sizeAt(i2, j2)
	if err != nil {
		return 0, err
	}

	result := s1 + s2
	c.setSizeOnly(result)
	return result, nil
}

// profileAt returns the profile of the sub-sequence at (i, j),
// computing and memoising it (overwriting any prior size-only cache)
// via the recursive split if it isn't already full.
func (m *Matcher[P]) profileAt(i, j int) (P, error) {
	c, err := m.cellAt(i, j)
	if err != nil {
		var zero P
		return zero, err
	}
	if c.state == cellFull {
		return c.profile, nil
	}

	i1, j1, i2, j2 := subIx(i, j)
	p1, err := m.profileAt(i1, j1)
	if err != nil {
		var zero P
		return zero, err
	}
	p2, err := m.profileAt(i2, j2)
	if err != nil {
		var zero P
		return zero, err
	}

	result := m.rep.Union(p1, p2)
	c.setFull(result, m.rep.Size(result))
	return result, nil
}

// ProfileAt exposes profileAt for callers that need the materialised
// sub-sequence profile directly (e.g. tests asserting §8 invariants).
func (m *Matcher[P]) ProfileAt(i, j int) (P, error) { return m.profileAt(i, j) }

// SizeAt exposes sizeAt for callers that only need the cardinality.
func (m *Matcher[P]) SizeAt(i, j int) (int, error) { return m.sizeAt(i, j) }

// IsStrip reports whether token index ix is in the strip set.
func (m *Matcher[P]) IsStrip(ix int) bool {
	_, ok := m.stripIxs[ix]
	return ok
}
