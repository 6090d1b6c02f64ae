package main

import (
	"os"
	"path/filepath"

	migrate "github.com/rubenv/sql-migrate"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/config"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/drivers/database"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/drivers/logger"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	db := database.NewPostgresDB(driverConfig)
	defer db.Close()

	wd, err := os.Getwd()
	if err != nil {
		log.Fatalf("Error getting working directory: %v", err)
	}

	migrations := &migrate.FileMigrationSource{
		Dir: filepath.Join(wd, "internal/migration"),
	}

	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}

	log.Infof("Applied %d migrations!", n)
}
