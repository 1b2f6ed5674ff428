package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/tumbleweedd/order_pipeline/internal/config"
	"github.com/tumbleweedd/order_pipeline/pkg/databases/postgres"
)

// The database comes from the usual config; -migrations-path overrides the
// configured directory.
func main() {
	var migrationsPath string

	flag.StringVar(&migrationsPath, "migrations-path", "", "path to migrations")

	cfg := config.InitConfig()

	if migrationsPath == "" {
		migrationsPath = cfg.Postgres.MigrationsPath
	}
	if migrationsPath == "" {
		migrationsPath = os.Getenv("MIGRATIONS_PATH")
		if migrationsPath == "" {
			panic("empty migrations path")
		}
	}

	if err := postgres.RunMigrations(cfg.Postgres.DSN(), migrationsPath); err != nil {
		panic(err)
	}

	fmt.Printf("migrations from %s applied\n", migrationsPath)
}
