package matcher

import (
	"fmt"

	"github.com/cognicore/sdc/pkg/sdc/sdcerr"
)

// Iterator is a lazy cursor over matcher matrix cells (i, j), yielding
// every contiguous token sub-sequence whose SDC against a query
// profile meets a threshold, in ascending lexicographic order of
// (j, i). It holds an exclusive (single-owner) borrow over its
// matcher for its whole life, since dereferencing may mutate cached
// cells; no structural mutation of the matcher is permitted while one
// is live.
type Iterator[P any] struct {
	m          *Matcher[P]
	query      P
	querySize  int
	threshold  float64
	ratioBound float64
	i, j       int
	sdc        float64
	isEnd      bool
}

// Begin starts match enumeration against query profile q and SDC
// threshold theta in (0, 1]. theta <= 0 is rejected since the ratio
// bound and the results would be meaningless; theta > 1 is accepted
// and simply yields no matches (SDC never exceeds 1).
func (m *Matcher[P]) Begin(q P, theta float64) (*Iterator[P], error) {
	if theta <= 0 {
		return nil, sdcerr.ErrInvalidThreshold
	}
	if m.iterLive {
		return nil, sdcerr.ErrIteratorLive
	}

	it := &Iterator[P]{
		m:          m,
		query:      q,
		querySize:  m.rep.Size(q),
		threshold:  theta,
		ratioBound: 2/theta - 1,
	}

	// An empty query has an undefined cardinality ratio; treat it as
	// yielding no matches rather than dividing by zero (open question
	// in spec resolved this way, see SPEC_FULL.md §7).
	if it.querySize == 0 || m.Size() == 0 {
		it.j = m.Size()
		it.isEnd = true
		return it, nil
	}

	m.iterLive = true
	it.advance()
	return it, nil
}

// End returns the sentinel iterator: it carries (i=0, j=Size()) and
// compares equal to any iterator that has reached that position. It
// does not take an exclusive borrow over m, since it never scans.
func (m *Matcher[P]) End() *Iterator[P] {
	return &Iterator[P]{m: m, j: m.Size(), isEnd: true}
}

// IsEnd reports whether the iterator has reached the end sentinel
// position (j >= Size()).
func (it *Iterator[P]) IsEnd() bool { return it.isEnd || it.j >= it.m.Size() }

// Equal defines iterator equality by (i, j) alone, per spec: a
// sentinel equals any iterator that has reached position (_, N).
func (it *Iterator[P]) Equal(other *Iterator[P]) bool {
	if it.IsEnd() && other.IsEnd() {
		return true
	}
	return it.i == other.i && it.j == other.j
}

// advance runs the pruned scan described in spec.md §4.3, starting
// from the iterator's current (i, j), stopping as soon as a match is
// found or the sequence is exhausted.
func (it *Iterator[P]) advance() {
	m := it.m
	n := m.Size()

outer:
	for ; it.j < n; it.j++ {
		if m.IsStrip(it.j) {
			continue outer
		}

		for ; it.i < n-it.j; it.i++ {
			if m.IsStrip(it.j + it.i) {
				continue
			}

			bSize, err := m.sizeAt(it.i, it.j)
			if err != nil {
				continue
			}

			ratio := float64(bSize) / float64(it.querySize)
			subseqShort := ratio < 1.0
			if subseqShort {
				ratio = 1.0 / ratio
			}

			if ratio > it.ratioBound {
				if subseqShort {
					continue // longer window may still satisfy
				}
				break // further extension only grows |B|; stop trying this j
			}

			profile, err := m.profileAt(it.i, it.j)
			if err != nil {
				continue
			}
			it.sdc = m.rep.SDC(profile, it.query)
			if it.sdc < it.threshold {
				continue
			}
			return // match found at (it.i, it.j)
		}

		it.i = 0
	}

	it.j = n
	it.i = 0
	it.isEnd = true
	m.iterLive = false
}

// Next shifts the iterator to the next matching sub-sequence, resuming
// the inner loop from (i+1, j) without rewinding. Returns
// ErrEndIterator if the iterator is already at the end.
func (it *Iterator[P]) Next() error {
	if it.IsEnd() {
		return sdcerr.ErrEndIterator
	}
	it.i++
	it.advance()
	return nil
}

// Profile returns the full profile of the current match,
// materialising it if only its size was cached so far. Returns
// ErrEndIterator if the iterator is at the end.
func (it *Iterator[P]) Profile() (P, error) {
	if it.IsEnd() {
		var zero P
		return zero, sdcerr.ErrEndIterator
	}
	return it.m.profileAt(it.i, it.j)
}

// BeginIdx is the index of the first token in the current match.
func (it *Iterator[P]) BeginIdx() int { return it.j }

// EndIdx is one past the index of the last token in the current match.
func (it *Iterator[P]) EndIdx() int { return it.j + it.i + 1 }

// Length is the number of tokens in the current match.
func (it *Iterator[P]) Length() int { return it.i + 1 }

// SDC is the Sørensen-Dice coefficient of the current match against
// the query (always >= the threshold that started this scan).
func (it *Iterator[P]) SDC() float64 { return it.sdc }

// String renders the current match as
// "match(begin: j, end: j+i+1, size: i+1, SDC: score)".
func (it *Iterator[P]) String() string {
	return fmt.Sprintf("match(begin: %d, end: %d, size: %d, SDC: %v)",
		it.BeginIdx(), it.EndIdx(), it.Length(), it.sdc)
}
