package migration

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/vfg2006/hangar-api/pkg/log"
)

//go:embed sql/*.sql
var embeddedMigrations embed.FS

const migrationsDir = "sql"

// Run aplica as migrações pendentes. ErrNoChange não é tratado como erro.
func Run(db *sql.DB) error {
	if db == nil {
		return errors.New("migration: conexão com o banco é obrigatória")
	}

	migrator, err := newMigrator(db)
	if err != nil {
		return err
	}

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.L.Info("migration: banco já está atualizado")
			return nil
		}
		return fmt.Errorf("erro ao aplicar migrações: %w", err)
	}

	version, dirty, err := migrator.Version()
	if err == nil {
		log.L.WithFields(log.Fields{"version": version, "dirty": dirty}).Info("migration: migrações aplicadas")
	}
	// migrator.Close fecharia o *sql.DB compartilhado

	return nil
}

func newMigrator(db *sql.DB) (*migrate.Migrate, error) {
	sub, err := fs.Sub(embeddedMigrations, migrationsDir)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir migrações: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return nil, fmt.Errorf("erro ao criar fonte de migrações: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar driver de migração: %w", err)
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar migrator: %w", err)
	}

	return migrator, nil
}
