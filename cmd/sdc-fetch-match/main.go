// Command sdc-fetch-match downloads a URL, extracts its visible text,
// and fuzzily matches a query phrase against it.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/net/html"

	"github.com/cognicore/sdc/pkg/sdc/config"
	"github.com/cognicore/sdc/pkg/sdc/corpus"
	"github.com/cognicore/sdc/pkg/sdc/explain"
)

func main() {
	url := flag.String("url", "", "URL to fetch and search")
	query := flag.String("query", "", "query phrase to match against the page text")
	threshold := flag.Float64("threshold", 0.6, "SDC threshold")
	flag.Parse()

	if *url == "" || *query == "" {
		log.Fatal("usage: sdc-fetch-match -url URL -query TEXT [-threshold 0.6]")
	}

	text, err := fetchText(*url)
	if err != nil {
		log.Fatalf("fetching %s: %v", *url, err)
	}

	cfg := config.DefaultMatchConfig()
	cfg.Threshold = *threshold

	c := corpus.FromText(*url, text, cfg)
	log.Printf("extracted %s tokens from %s", humanize.Comma(int64(len(c.Tokens))), *url)

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

func fetchText(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return extractText(string(body))
}

// extractText walks the parsed HTML tree and concatenates text nodes,
// skipping script and style content.
func extractText(rawHTML string) (string, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(strings.Fields(buf.String()), " "), nil
}
