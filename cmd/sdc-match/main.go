// Command sdc-match fuzzily matches a query phrase against a corpus
// text file using Sørensen-Dice bigram-profile matching.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/cognicore/sdc/pkg/sdc/config"
	"github.com/cognicore/sdc/pkg/sdc/corpus"
	"github.com/cognicore/sdc/pkg/sdc/explain"
)

func main() {
	corpusPath := flag.String("corpus", "", "path to a text file to search")
	query := flag.String("query", "", "query phrase to match against the corpus")
	configPath := flag.String("config", "", "optional YAML match config file")
	threshold := flag.Float64("threshold", 0, "SDC threshold override (0 uses the config default)")
	flag.Parse()

	if *corpusPath == "" || *query == "" {
		log.Fatal("usage: sdc-match -corpus FILE -query TEXT [-config FILE] [-threshold 0.7]")
	}

	cfg := config.DefaultMatchConfig()
	if *configPath != "" {
		loaded, err := config.LoadMatchConfig(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = *loaded
	}
	if *threshold > 0 {
		cfg.Threshold = *threshold
	}

	text, err := os.ReadFile(*corpusPath)
	if err != nil {
		log.Fatalf("reading corpus: %v", err)
	}

	c := corpus.FromText(*corpusPath, string(text), cfg)
	log.Printf("tokenized corpus into %s tokens", humanize.Comma(int64(len(c.Tokens))))

	searcher, err := corpus.Build(c)
	if err != nil {
		log.Fatalf("building matcher: %v", err)
	}

	matches, err := searcher.Search(*query, cfg.Threshold)
	if err != nil {
		log.Fatalf("searching: %v", err)
	}

	if len(matches) == 0 {
		fmt.Println("no matches found")
		return
	}

	builder := explain.New()
	for _, m := range matches {
		card := builder.Build(*query, c.Tokens, m)
		fmt.Printf("%s  (SDC %s)\n", card.MatchedText, humanize.FormatFloat("#,###.####", card.SDC))
	}
}
