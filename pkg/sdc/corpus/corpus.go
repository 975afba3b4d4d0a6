// Package corpus builds named, persistable token sequences from raw
// text and wires them into a matcher.Matcher of whichever bigram
// representation a config.MatchConfig names — the glue layer between
// the representation-agnostic core (pkg/sdc/matcher) and callers
// (CLIs, the store) that just want to search a blob of text.
package corpus

import (
	"time"
	"unicode"

	"github.com/cognicore/sdc/pkg/sdc/bigrams"
	"github.com/cognicore/sdc/pkg/sdc/config"
	"github.com/cognicore/sdc/pkg/sdc/matcher"
	"github.com/cognicore/sdc/pkg/sdc/multiset"
	"github.com/cognicore/sdc/pkg/sdc/sdcerr"
	"github.com/cognicore/sdc/pkg/sdc/store"
)

// Corpus is a named, ordered token sequence with strip flags and the
// match configuration it should be built with. This is the unit
// pkg/sdc/store persists — never the matcher's live memoised matrix,
// which stays exactly as in-memory and single-owner as the core spec
// requires.
type Corpus struct {
	Name    string
	Tokens  []string
	Strip   []bool
	Config  config.MatchConfig
	BuiltAt time.Time
}

// Tokenize splits text into runs of word characters (letters, digits)
// and runs of everything else; non-word runs are marked strip. This is
// the tokenisation policy the core sequence matcher deliberately
// leaves unspecified — it lives here, in the corpus-building glue, not
// in pkg/sdc/matcher.
func Tokenize(text string) (tokens []string, strip []bool) {
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		start := i
		word := isWordRune(runes[i])
		for i < len(runes) && isWordRune(runes[i]) == word {
			i++
		}
		tokens = append(tokens, string(runes[start:i]))
		strip = append(strip, !word)
	}
	return tokens, strip
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// FromText builds a Corpus named name from raw text using Tokenize,
// additionally marking strip every token equal to one of
// cfg.StripTokens.
func FromText(name, text string, cfg config.MatchConfig) Corpus {
	tokens, strip := Tokenize(text)
	if set := cfg.StripSet(); len(set) > 0 {
		for i, tok := range tokens {
			if _, ok := set[tok]; ok {
				strip[i] = true
			}
		}
	}
	return Corpus{Name: name, Tokens: tokens, Strip: strip, Config: cfg}
}

// ToDefinition converts c to the shape pkg/sdc/store persists.
func (c Corpus) ToDefinition() store.Definition {
	return store.Definition{
		Name:    c.Name,
		Tokens:  c.Tokens,
		Strip:   c.Strip,
		Config:  c.Config,
		BuiltAt: c.BuiltAt,
	}
}

// FromDefinition rebuilds a Corpus from a persisted store.Definition.
func FromDefinition(d store.Definition) Corpus {
	return Corpus{
		Name:    d.Name,
		Tokens:  d.Tokens,
		Strip:   d.Strip,
		Config:  d.Config,
		BuiltAt: d.BuiltAt,
	}
}

// Match is a single reported sub-sequence match, independent of which
// bigram representation produced it.
type Match struct {
	Begin, End, Length int
	SDC                float64
}

// Searcher runs fuzzy queries against a built corpus.
type Searcher interface {
	Size() int
	Search(query string, threshold float64) ([]Match, error)
}

// Build constructs a Searcher for c using the representation named in
// c.Config.Representation (defaulting to the counted form if unset).
func Build(c Corpus) (Searcher, error) {
	switch c.Config.Representation {
	case config.OrderedMultiset:
		return buildOrdered(c)
	case config.HashedMultiset:
		return buildHashed(c)
	case config.Counted, "":
		return buildCounted(c)
	default:
		return nil, sdcerr.ErrInvalidConfig
	}
}

func buildCounted(c Corpus) (Searcher, error) {
	m := matcher.NewCounted()
	if err := pushAll(m, c); err != nil {
		return nil, err
	}
	return countedSearcher{m: m}, nil
}

func buildOrdered(c Corpus) (Searcher, error) {
	m := matcher.NewOrderedMultiset()
	if err := pushAll(m, c); err != nil {
		return nil, err
	}
	return orderedSearcher{m: m}, nil
}

func buildHashed(c Corpus) (Searcher, error) {
	m := matcher.NewHashedMultiset()
	if err := pushAll(m, c); err != nil {
		return nil, err
	}
	return hashedSearcher{m: m}, nil
}

func pushAll[P any](m *matcher.Matcher[P], c Corpus) error {
	m.Reserve(len(c.Tokens))
	for i, tok := range c.Tokens {
		strip := i < len(c.Strip) && c.Strip[i]
		if err := m.EmplaceBack(tok, strip); err != nil {
			return err
		}
	}
	return nil
}

func collect[P any](m *matcher.Matcher[P], query P, threshold float64) ([]Match, error) {
	it, err := m.Begin(query, threshold)
	if err != nil {
		return nil, err
	}

	var out []Match
	for !it.IsEnd() {
		out = append(out, Match{Begin: it.BeginIdx(), End: it.EndIdx(), Length: it.Length(), SDC: it.SDC()})
		if err := it.Next(); err != nil {
			return out, err
		}
	}
	return out, nil
}

type countedSearcher struct{ m *matcher.Matcher[bigrams.Profile] }

func (s countedSearcher) Size() int { return s.m.Size() }

func (s countedSearcher) Search(query string, threshold float64) ([]Match, error) {
	return collect(s.m, bigrams.FromString(query), threshold)
}

type orderedSearcher struct{ m *matcher.Matcher[multiset.Ordered] }

func (s orderedSearcher) Size() int { return s.m.Size() }

func (s orderedSearcher) Search(query string, threshold float64) ([]Match, error) {
	return collect(s.m, multiset.OrderedFromString(query), threshold)
}

type hashedSearcher struct{ m *matcher.Matcher[multiset.Hashed] }

func (s hashedSearcher) Size() int { return s.m.Size() }

func (s hashedSearcher) Search(query string, threshold float64) ([]Match, error) {
	return collect(s.m, multiset.HashedFromString(query), threshold)
}
