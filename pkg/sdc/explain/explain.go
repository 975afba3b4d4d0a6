// Package explain renders a single sequence match into a structured,
// ULID-identified card, the way pkg/korel/cards rendered ranked
// documents into explainable result cards in the teacher repo.
package explain

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/sdc/pkg/sdc/bigrams"
	"github.com/cognicore/sdc/pkg/sdc/corpus"
)

// Builder mints Cards with monotonically increasing ULIDs, so cards
// built in the same process sort in construction order.
type Builder struct {
	entropy *ulid.MonotonicEntropy
}

// New creates a card builder.
func New() *Builder {
	return &Builder{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Card is a transparent, structured view of one sequence match: where
// it sits in the corpus, how strong it scored, and which bigrams the
// query and the matched span actually shared.
type Card struct {
	ID            string
	Query         string
	MatchedText   string
	Begin, End    int
	Length        int
	SDC           float64
	SharedBigrams []string
	BuiltAt       time.Time
}

// Build renders a corpus.Match against the corpus it was found in
// (tokens, joined verbatim for the matched span) and the query text
// that produced it into an explain Card.
func (b *Builder) Build(query string, tokens []string, m corpus.Match) Card {
	matchedTokens := tokens[m.Begin:m.End]
	shared := sharedBigrams(query, matchedTokens)

	return Card{
		ID:            ulid.MustNew(ulid.Now(), b.entropy).String(),
		Query:         query,
		MatchedText:   strings.Join(matchedTokens, ""),
		Begin:         m.Begin,
		End:           m.End,
		Length:        m.Length,
		SDC:           m.SDC,
		SharedBigrams: shared,
		BuiltAt:       time.Now(),
	}
}

// sharedBigrams lists, in sorted order, the distinct bigrams present
// in both the query and the union of the matched tokens' profiles —
// the same intersection the matcher's SDC score is computed from,
// surfaced here for human inspection.
func sharedBigrams(query string, matched []string) []string {
	pa, pb := bigrams.FromString(query), bigrams.Empty()
	for _, tok := range matched {
		pb.UnionInPlace(bigrams.FromString(tok))
	}

	inB := make(map[bigrams.Bigram]struct{})
	pb.Each(func(bg bigrams.Bigram, count int) bool {
		inB[bg] = struct{}{}
		return true
	})

	var shared []string
	pa.Each(func(bg bigrams.Bigram, count int) bool {
		if _, ok := inB[bg]; ok {
			shared = append(shared, bg.String())
		}
		return true
	})
	return shared
}

// String renders a one-line human summary of a card, in the terse
// form matcher.Iterator.String() uses for a bare match.
func (c Card) String() string {
	return fmt.Sprintf("explain(id: %s, match: %q, SDC: %v)", c.ID, c.MatchedText, c.SDC)
}
