package postgres

import (
	"context"
	"database/sql"

	"billingapi/internal/model"
	"billingapi/internal/repository"
)

// SettingsPostgres is a PostgreSQL implementation of repository.SettingsRepository.
type SettingsPostgres struct {
	*table[model.Settings]
}

// NewSettingsPostgres creates a new SettingsPostgres repository.
func NewSettingsPostgres(db *sql.DB) *SettingsPostgres {
	return &SettingsPostgres{&table[model.Settings]{
		db:      db,
		name:    "company_settings",
		key:     "company_id",
		columns: []string{"company_id", "company_name", "company_address", "company_gst", "account_details"},
		orderBy: "created_at, company_id",
		search:  []string{"company_name", "company_address", "company_gst"},
		values: func(s *model.Settings) []any {
			return []any{s.CompanyID, s.CompanyName, s.CompanyAddress, s.CompanyGST, nullableJSON(s.AccountDetails)}
		},
		scan: func(sc scanner) (*model.Settings, error) {
			var (
				s       model.Settings
				details []byte
			)
			if err := sc.Scan(&s.CompanyID, &s.CompanyName, &s.CompanyAddress, &s.CompanyGST, &details, &s.CreatedAt); err != nil {
				return nil, err
			}
			if len(details) > 0 {
				s.AccountDetails = details
			}
			return &s, nil
		},
	}}
}

var _ repository.SettingsRepository = (*SettingsPostgres)(nil)

// Upsert inserts settings for a company or replaces the existing row.
func (r *SettingsPostgres) Upsert(ctx context.Context, s *model.Settings) (*model.Settings, error) {
	const q = `
		INSERT INTO company_settings (company_id, company_name, company_address, company_gst, account_details)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (company_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			company_address = EXCLUDED.company_address,
			company_gst = EXCLUDED.company_gst,
			account_details = EXCLUDED.account_details
		RETURNING company_id, company_name, company_address, company_gst, account_details, created_at
	`
	return r.scan(r.db.QueryRowContext(ctx, q, r.values(s)...))
}

// nullableJSON maps an absent JSON document to SQL NULL.
func nullableJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}
