package settings

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"troybbq/internal/pricing"
)

var ErrNotConfigured = errors.New("business rules not configured")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Load(ctx context.Context) (*pricing.RuleConfig, error) {
	var raw []byte

	err := r.db.QueryRow(ctx, `
		SELECT rules FROM settings WHERE id = 1
	`).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotConfigured
	}
	if err != nil {
		return nil, err
	}

	cfg := &pricing.RuleConfig{}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *PostgresRepository) Save(ctx context.Context, cfg pricing.RuleConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO settings (id, rules)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET
			rules = EXCLUDED.rules,
			updated_at = CURRENT_TIMESTAMP
	`, raw)
	return err
}
