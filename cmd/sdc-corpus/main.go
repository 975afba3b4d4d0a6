// Command sdc-corpus builds, lists, shows and deletes named corpora in
// a SQLite corpus store.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/cognicore/sdc/pkg/sdc/config"
	"github.com/cognicore/sdc/pkg/sdc/corpus"
	"github.com/cognicore/sdc/pkg/sdc/store"
	"github.com/cognicore/sdc/pkg/sdc/store/sqlite"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: sdc-corpus <build|list|show|delete> [flags]")
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "build":
		runBuild(ctx, os.Args[2:])
	case "list":
		runList(ctx, os.Args[2:])
	case "show":
		runShow(ctx, os.Args[2:])
	case "delete":
		runDelete(ctx, os.Args[2:])
	default:
		log.Fatalf("unknown subcommand %q", os.Args[1])
	}
}

func openStore(dbPath string) store.Store {
	s, err := sqlite.Open(context.Background(), dbPath)
	if err != nil {
		log.Fatalf("opening store: %v", err)
	}
	return s
}

func runBuild(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	name := fs.String("name", "", "corpus name to persist under")
	file := fs.String("file", "", "path to the source text file")
	configPath := fs.String("config", "", "optional YAML match config file")
	dbPath := fs.String("db", "sdc-corpus.db", "path to the SQLite store")
	fs.Parse(args)

	if *name == "" || *file == "" {
		log.Fatal("usage: sdc-corpus build -name NAME -file FILE [-config FILE] [-db PATH]")
	}

	cfg := config.DefaultMatchConfig()
	if *configPath != "" {
		loaded, err := config.LoadMatchConfig(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = *loaded
	}

	text, err := os.ReadFile(*file)
	if err != nil {
		log.Fatalf("reading %s: %v", *file, err)
	}

	c := corpus.FromText(*name, string(text), cfg)

	s := openStore(*dbPath)
	defer s.Close()

	if err := s.Save(ctx, c.ToDefinition()); err != nil {
		log.Fatalf("saving corpus: %v", err)
	}

	log.Printf("saved corpus %q with %s tokens to %s", *name, humanize.Comma(int64(len(c.Tokens))), *dbPath)
}

func runList(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	dbPath := fs.String("db", "sdc-corpus.db", "path to the SQLite store")
	fs.Parse(args)

	s := openStore(*dbPath)
	defer s.Close()

	names, err := s.List(ctx)
	if err != nil {
		log.Fatalf("listing corpora: %v", err)
	}
	if len(names) == 0 {
		fmt.Println("no corpora stored")
		return
	}

	for _, name := range names {
		def, ok, err := s.Load(ctx, name)
		if err != nil {
			log.Fatalf("loading %s: %v", name, err)
		}
		if !ok {
			continue
		}
		builtAt := "unknown"
		if !def.BuiltAt.IsZero() {
			builtAt = humanize.Time(def.BuiltAt)
		}
		fmt.Printf("%-20s %8s tokens  built %s\n", name, humanize.Comma(int64(len(def.Tokens))), builtAt)
	}
}

func runShow(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	name := fs.String("name", "", "corpus name to show")
	dbPath := fs.String("db", "sdc-corpus.db", "path to the SQLite store")
	fs.Parse(args)

	if *name == "" {
		log.Fatal("usage: sdc-corpus show -name NAME [-db PATH]")
	}

	s := openStore(*dbPath)
	defer s.Close()

	def, ok, err := s.Load(ctx, *name)
	if err != nil {
		log.Fatalf("loading %s: %v", *name, err)
	}
	if !ok {
		log.Fatalf("corpus %q not found", *name)
	}

	fmt.Printf("name: %s\n", def.Name)
	fmt.Printf("representation: %s\n", def.Config.Representation)
	fmt.Printf("threshold: %v\n", def.Config.Threshold)
	fmt.Printf("tokens: %s\n", humanize.Comma(int64(len(def.Tokens))))
}

func runDelete(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	name := fs.String("name", "", "corpus name to delete")
	dbPath := fs.String("db", "sdc-corpus.db", "path to the SQLite store")
	fs.Parse(args)

	if *name == "" {
		log.Fatal("usage: sdc-corpus delete -name NAME [-db PATH]")
	}

	s := openStore(*dbPath)
	defer s.Close()

	if err := s.Delete(ctx, *name); err != nil {
		log.Fatalf("deleting %s: %v", *name, err)
	}
	log.Printf("deleted corpus %q", *name)
}
