package catalog

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"troybbq/internal/pricing"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// MENU ITEMS
// --------------------------------------------------

func (r *PostgresRepository) UpsertItem(ctx context.Context, item MenuItem) error {
	variants, err := json.Marshal(item.Variants)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO menu_items (ref, name, category, variants)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (ref) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			variants = EXCLUDED.variants,
			updated_at = CURRENT_TIMESTAMP
	`, item.Ref, item.Name, item.Category, variants)
	return err
}

func (r *PostgresRepository) ListItems(ctx context.Context) ([]MenuItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ref, name, category, variants, image_url, updated_at
		FROM menu_items
		ORDER BY category, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuItem
	for rows.Next() {
		var item MenuItem
		var variants []byte

		if err := rows.Scan(
			&item.Ref, &item.Name, &item.Category,
			&variants, &item.ImageURL, &item.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(variants, &item.Variants); err != nil {
			item.Variants = []pricing.Variant{}
		}

		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) SetItemImage(ctx context.Context, ref, url string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE menu_items
		SET image_url = $1, updated_at = CURRENT_TIMESTAMP
		WHERE ref = $2
	`, url, ref)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("menu item not found")
	}
	return nil
}

func (r *PostgresRepository) DeleteItem(ctx context.Context, ref string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE ref = $1`, ref)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("menu item not found")
	}
	return nil
}

// --------------------------------------------------
// ADD-ONS
// --------------------------------------------------

func (r *PostgresRepository) UpsertAddOn(ctx context.Context, addon AddOn) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO addons (ref, name, category, active, currency, amount_minor)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (ref) DO UPDATE SET
			name = EXCLUDED.name,
			category = EXCLUDED.category,
			active = EXCLUDED.active,
			currency = EXCLUDED.currency,
			amount_minor = EXCLUDED.amount_minor,
			updated_at = CURRENT_TIMESTAMP
	`, addon.Ref, addon.Name, addon.Category, addon.Active, addon.Currency, addon.AmountMinor)
	return err
}

func (r *PostgresRepository) ListAddOns(ctx context.Context) ([]AddOn, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ref, name, category, active, currency, amount_minor, updated_at
		FROM addons
		ORDER BY category, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addons []AddOn
	for rows.Next() {
		var a AddOn
		if err := rows.Scan(
			&a.Ref, &a.Name, &a.Category, &a.Active,
			&a.Currency, &a.AmountMinor, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		addons = append(addons, a)
	}
	return addons, rows.Err()
}

func (r *PostgresRepository) SetAddOnActive(ctx context.Context, ref string, active bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE addons
		SET active = $1, updated_at = CURRENT_TIMESTAMP
		WHERE ref = $2
	`, active, ref)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("add-on not found")
	}
	return nil
}
