package catalog

import (
	"context"
	"errors"
	"sort"
	"time"
)

type InMemoryRepository struct {
	items  map[string]MenuItem
	addons map[string]AddOn
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		items:  make(map[string]MenuItem),
		addons: make(map[string]AddOn),
	}
}

func (r *InMemoryRepository) UpsertItem(ctx context.Context, item MenuItem) error {
	item.UpdatedAt = time.Now()
	r.items[item.Ref] = item
	return nil
}

func (r *InMemoryRepository) ListItems(ctx context.Context) ([]MenuItem, error) {
	items := make([]MenuItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Ref < items[j].Ref })
	return items, nil
}

func (r *InMemoryRepository) SetItemImage(ctx context.Context, ref, url string) error {
	item, ok := r.items[ref]
	if !ok {
		return errors.New("menu item not found")
	}
	item.ImageURL = &url
	r.items[ref] = item
	return nil
}

func (r *InMemoryRepository) DeleteItem(ctx context.Context, ref string) error {
	if _, ok := r.items[ref]; !ok {
		return errors.New("menu item not found")
	}
	delete(r.items, ref)
	return nil
}

func (r *InMemoryRepository) UpsertAddOn(ctx context.Context, addon AddOn) error {
	addon.UpdatedAt = time.Now()
	r.addons[addon.Ref] = addon
	return nil
}

func (r *InMemoryRepository) ListAddOns(ctx context.Context) ([]AddOn, error) {
	addons := make([]AddOn, 0, len(r.addons))
	for _, a := range r.addons {
		addons = append(addons, a)
	}
	sort.Slice(addons, func(i, j int) bool { return addons[i].Ref < addons[j].Ref })
	return addons, nil
}

func (r *InMemoryRepository) SetAddOnActive(ctx context.Context, ref string, active bool) error {
	a, ok := r.addons[ref]
	if !ok {
		return errors.New("add-on not found")
	}
	a.Active = active
	r.addons[ref] = a
	return nil
}
