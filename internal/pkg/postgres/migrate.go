package postgres

import (
	"context"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql драйвер для goose
	"github.com/pressly/goose/v3"
	"pharmago/internal/pkg/config"
	"pharmago/migrations"
	"pharmago/pkg/logger"
)

// ApplyMigrations применяет встроенные goose миграции. Открывает отдельное
// database/sql соединение и закрывает его после выполнения.
func ApplyMigrations(ctx context.Context, log logger.Logger, cfg *config.Database) error {
	db, err := goose.OpenDBWithDriver("pgx", newDsn(cfg))
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close migration connection",
				logger.NewField("error", err),
			)
		}
	}()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	log.Info("database migrations applied")
	return nil
}
