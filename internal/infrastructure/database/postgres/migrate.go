package postgres

import (
	"database/sql"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/takweol/casematch/internal/config"
	"github.com/takweol/casematch/internal/infrastructure/monitoring/logging"
	"github.com/takweol/casematch/pkg/errors"
)

// RunMigrations applies every pending migration under cfg.MigrationPath.
// It opens its own short-lived database/sql connection because the migrate
// driver does not speak pgxpool.
func RunMigrations(cfg config.DatabaseConfig, log logging.Logger) error {
	if cfg.MigrationPath == "" {
		log.Info("no migration path configured, skipping migrations")
		return nil
	}

	db, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return errors.Wrap(err, errors.CodeDatabaseError, "failed to open migration connection")
	}
	defer db.Close()

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return errors.Wrap(err, errors.CodeDatabaseError, "failed to init migration driver")
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+cfg.MigrationPath, cfg.DBName, driver)
	if err != nil {
		return errors.Wrap(err, errors.CodeDatabaseError, "failed to load migrations")
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errors.Wrap(err, errors.CodeDatabaseError, "migration failed")
	}

	version, dirty, _ := m.Version()
	log.Info("migrations applied",
		logging.Any("version", version),
		logging.Bool("dirty", dirty),
	)
	return nil
}
