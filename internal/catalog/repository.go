package catalog

import "context"

// Repository defines all database operations for the catalog
type Repository interface {
	UpsertItem(ctx context.Context, item MenuItem) error
	ListItems(ctx context.Context) ([]MenuItem, error)
	SetItemImage(ctx context.Context, ref, url string) error
	DeleteItem(ctx context.Context, ref string) error

	UpsertAddOn(ctx context.Context, addon AddOn) error
	ListAddOns(ctx context.Context) ([]AddOn, error)
	SetAddOnActive(ctx context.Context, ref string, active bool) error
}
