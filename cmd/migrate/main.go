// Command migrate applies the embedded database schema.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/JaimeStill/graph-vis/internal/config"
	"github.com/JaimeStill/graph-vis/internal/migrations"
	"github.com/JaimeStill/graph-vis/pkg/logging"
)

func main() {
	var (
		dbURL   = flag.String("url", "", "pgx5:// database URL (defaults to the configured database)")
		down    = flag.Bool("down", false, "Revert every migration")
		steps   = flag.Int("steps", 0, "Apply n migrations, or revert when negative")
		version = flag.Bool("version", false, "Print the current schema version")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	if *dbURL == "" {
		*dbURL = cfg.Database.MigrationURL()
	}

	m, err := migrations.New(*dbURL, logging.New(&cfg.Logging))
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	switch {
	case *version:
		v, dirty, err := m.Version()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("version %d (dirty: %t)\n", v, dirty)
	case *down:
		err = m.Down()
	case *steps != 0:
		err = m.Steps(*steps)
	default:
		err = m.Up()
	}

	if err != nil {
		log.Fatal(err)
	}
}
