package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/graph-vis/internal/config"
)

func main() {
	var (
		dsn        = flag.String("dsn", "", "Database connection string (defaults to the configured database)")
		all        = flag.Bool("all", false, "Run all seeders")
		only       = flag.String("seeders", "", "Comma-separated seeders to run")
		network    = flag.String("network", "", "Cytoscape .cyjs network export")
		proteinMap = flag.String("protein-map", "", "Domain pair to protein ids map (JSON)")
		sequences  = flag.String("sequences", "", "Protein sequence list (JSON)")
		repeats    = flag.String("repeats", "", "Repeat summary list (JSON)")
		list       = flag.Bool("list", false, "List available seeders")
	)
	flag.Parse()

	if *list {
		fmt.Println("Available seeders:")
		for _, s := range listSeeders() {
			fmt.Printf("  - %s: %s\n", s.Name(), s.Description())
		}
		return
	}

	var names []string
	switch {
	case *all:
		for _, s := range listSeeders() {
			names = append(names, s.Name())
		}
	case *only != "":
		for _, n := range strings.Split(*only, ",") {
			names = append(names, strings.TrimSpace(n))
		}
	default:
		fmt.Println("usage: seed [-dsn <connection-string>] [-all|-seeders network,proteins,repeats] [file flags] [-list]")
		flag.PrintDefaults()
		return
	}

	seeders["network"].(*NetworkSeeder).SetFiles(*network, *proteinMap)
	seeders["proteins"].(*SequenceSeeder).SetFile(*sequences)
	seeders["repeats"].(*RepeatSeeder).SetFile(*repeats)

	if *dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("config load failed: %v", err)
		}
		*dsn = cfg.Database.Dsn()
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	n, err := runSeeders(context.Background(), db, names...)
	if err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	fmt.Printf("%d seeders completed: %s\n", n, strings.Join(names, ", "))
}
