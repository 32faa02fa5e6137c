package catalog

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"troybbq/internal/pricing"
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Service struct {
	repo    Repository
	storage Storage
}

func NewService(repo Repository, storage Storage) *Service {
	return &Service{repo: repo, storage: storage}
}

var validCategories = map[string]bool{
	"protein": true,
	"side":    true,
}

// --------------------------------------------------
// Menu items
// --------------------------------------------------

func (s *Service) SaveItem(ctx context.Context, item MenuItem) error {
	if item.Ref == "" || item.Name == "" {
		return errors.New("ref and name are required")
	}
	if !validCategories[item.Category] {
		return errors.New("category must be protein or side")
	}
	if len(item.Variants) == 0 {
		return errors.New("at least one priced variant is required")
	}
	for _, v := range item.Variants {
		if v.AmountMinor <= 0 {
			return errors.New("variant prices must be positive")
		}
	}

	return s.repo.UpsertItem(ctx, item)
}

func (s *Service) ListItems(ctx context.Context) ([]MenuItem, error) {
	return s.repo.ListItems(ctx)
}

func (s *Service) DeleteItem(ctx context.Context, ref string) error {
	return s.repo.DeleteItem(ctx, ref)
}

// UploadItemImage stores a photo for the menu page and records its
// public URL on the item.
func (s *Service) UploadItemImage(
	ctx context.Context,
	ref string,
	file multipart.File,
	filename string,
) (string, error) {

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	key := fmt.Sprintf("items/%s/%s%s", ref, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetItemImage(ctx, ref, url); err != nil {
		return "", err
	}

	return url, nil
}

// --------------------------------------------------
// Add-ons
// --------------------------------------------------

func (s *Service) SaveAddOn(ctx context.Context, addon AddOn) error {
	if addon.Ref == "" || addon.Name == "" {
		return errors.New("ref and name are required")
	}
	if addon.AmountMinor <= 0 {
		return errors.New("add-on price must be positive")
	}
	if addon.Currency == "" {
		addon.Currency = "usd"
	}

	return s.repo.UpsertAddOn(ctx, addon)
}

func (s *Service) ListAddOns(ctx context.Context) ([]AddOn, error) {
	return s.repo.ListAddOns(ctx)
}

func (s *Service) SetAddOnActive(ctx context.Context, ref string, active bool) error {
	return s.repo.SetAddOnActive(ctx, ref, active)
}

// --------------------------------------------------
// Pricing snapshot
// --------------------------------------------------

// Snapshot assembles the immutable catalog view one calculation
// reads from. Fetched once per quote so a concurrent catalog edit
// never produces a half-updated price.
func (s *Service) Snapshot(ctx context.Context) (*pricing.Catalog, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, err
	}
	addons, err := s.repo.ListAddOns(ctx)
	if err != nil {
		return nil, err
	}

	cat := &pricing.Catalog{
		Items:  make(map[string]pricing.Item, len(items)),
		AddOns: make(map[string]pricing.AddOn, len(addons)),
	}
	for _, item := range items {
		cat.Items[item.Ref] = item.toPricing()
	}
	for _, a := range addons {
		cat.AddOns[a.Ref] = a.toPricing()
	}
	return cat, nil
}
