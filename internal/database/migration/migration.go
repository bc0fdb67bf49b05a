package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_companies",
		SQL: `CREATE TABLE IF NOT EXISTS companies (
  company_id    TEXT        PRIMARY KEY,
  name          TEXT        NOT NULL DEFAULT '',
  email         TEXT        NOT NULL DEFAULT '',
  password      TEXT        NOT NULL DEFAULT '',
  address       TEXT        NOT NULL DEFAULT '',
  mobile_number TEXT        NOT NULL DEFAULT '',
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  user_id    TEXT        PRIMARY KEY,
  email      TEXT        NOT NULL UNIQUE,
  password   TEXT        NOT NULL,
  role       TEXT        NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_customers",
		SQL: `CREATE TABLE IF NOT EXISTS customers (
  customer_id   TEXT        PRIMARY KEY,
  name          TEXT        NOT NULL,
  email         TEXT        NOT NULL UNIQUE,
  address       TEXT        NOT NULL,
  mobile_number TEXT        NOT NULL,
  customer_gst  TEXT        NOT NULL,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_items",
		SQL: `CREATE TABLE IF NOT EXISTS items (
  item_id          TEXT        PRIMARY KEY,
  item_name        TEXT        NOT NULL,
  item_price       BIGINT      NOT NULL CHECK (item_price >= 0),
  item_quantity    BIGINT      NOT NULL CHECK (item_quantity >= 0),
  item_description TEXT        NOT NULL DEFAULT '',
  gst              BIGINT      NOT NULL CHECK (gst >= 0),
  company_id       TEXT        NOT NULL,
  created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_quotes",
		SQL: `CREATE TABLE IF NOT EXISTS quotes (
  quote_id     TEXT             PRIMARY KEY,
  quote_number TEXT             NOT NULL,
  quote_item   TEXT             NOT NULL,
  total_amount DOUBLE PRECISION NOT NULL CHECK (total_amount >= 0),
  created_at   TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_invoices",
		SQL: `CREATE TABLE IF NOT EXISTS invoices (
  invoice_id     TEXT             PRIMARY KEY,
  invoice_number TEXT             NOT NULL,
  invoice_item   TEXT             NOT NULL,
  payment_method TEXT             NOT NULL,
  total_amount   DOUBLE PRECISION NOT NULL CHECK (total_amount >= 0),
  created_at     TIMESTAMPTZ      NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_payments",
		SQL: `CREATE TABLE IF NOT EXISTS payments (
  payment_id TEXT        PRIMARY KEY,
  invoice_id TEXT        NOT NULL,
  amount     BIGINT      NOT NULL CHECK (amount >= 0),
  paid_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_write_offs",
		SQL: `CREATE TABLE IF NOT EXISTS write_offs (
  write_off_id TEXT        PRIMARY KEY,
  invoice_id   TEXT        NOT NULL,
  amount       BIGINT      NOT NULL CHECK (amount >= 0),
  reason       TEXT        NOT NULL,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_expenses",
		SQL: `CREATE TABLE IF NOT EXISTS expenses (
  expense_id   TEXT        PRIMARY KEY,
  expense_name TEXT        NOT NULL,
  amount       BIGINT      NOT NULL CHECK (amount >= 0),
  expense_date TEXT        NOT NULL,
  created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_company_settings",
		SQL: `CREATE TABLE IF NOT EXISTS company_settings (
  company_id      TEXT        PRIMARY KEY,
  company_name    TEXT        NOT NULL,
  company_address TEXT        NOT NULL,
  company_gst     TEXT        NOT NULL,
  account_details JSONB,
  created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_items_company_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_items_company_id ON items (company_id);`,
	},
	{
		Name: "create_index_payments_invoice_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_payments_invoice_id ON payments (invoice_id);`,
	},
	{
		Name: "create_index_write_offs_invoice_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_write_offs_invoice_id ON write_offs (invoice_id);`,
	},
}

// EnsureMigrated applies every schema step. Steps are idempotent, so running
// against an already-migrated database only re-checks each object.
func EnsureMigrated(ctx context.Context, db *sql.DB, log *zap.Logger) error {
	start := time.Now()
	log = log.With(zap.String("component", "database"))

	log.Info("db_migration_start", zap.Int("steps", len(steps)))

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := db.ExecContext(ctx, step.SQL); err != nil {
			log.Error("db_migration_failed",
				zap.String("migration_step", step.Name),
				zap.Error(err),
				zap.Duration("duration", time.Since(start)),
			)
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		log.Debug("db_migration_step",
			zap.String("migration_step", step.Name),
			zap.Duration("step_duration", time.Since(stepStart)),
		)
	}

	log.Info("db_migration_success", zap.Duration("duration", time.Since(start)))
	return nil
}
