package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"troybbq/internal/pricing"
)

func seedRepo(t *testing.T) *InMemoryRepository {
	t.Helper()
	repo := NewInMemoryRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	items := []MenuItem{
		{Ref: "brisket", Name: "Smoked Brisket", Category: "protein",
			Variants: []pricing.Variant{{Currency: "usd", AmountMinor: 1800}}},
		{Ref: "slaw", Name: "Coleslaw", Category: "side",
			Variants: []pricing.Variant{{Currency: "usd", AmountMinor: 600}}},
	}
	for _, item := range items {
		if err := svc.SaveItem(ctx, item); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	addons := []AddOn{
		{Ref: "cornbread", Name: "Cornbread Tray", Category: "side", Active: true, AmountMinor: 300},
		{Ref: "banana-pudding", Name: "Banana Pudding", Category: "dessert", Active: false, AmountMinor: 500},
	}
	for _, a := range addons {
		if err := svc.SaveAddOn(ctx, a); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	return repo
}

func TestSaveItemValidation(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), nil)
	ctx := context.Background()

	cases := []struct {
		name string
		item MenuItem
	}{
		{"missing ref", MenuItem{Name: "Brisket", Category: "protein",
			Variants: []pricing.Variant{{Currency: "usd", AmountMinor: 100}}}},
		{"bad category", MenuItem{Ref: "brisket", Name: "Brisket", Category: "dessert",
			Variants: []pricing.Variant{{Currency: "usd", AmountMinor: 100}}}},
		{"no variants", MenuItem{Ref: "brisket", Name: "Brisket", Category: "protein"}},
		{"zero price", MenuItem{Ref: "brisket", Name: "Brisket", Category: "protein",
			Variants: []pricing.Variant{{Currency: "usd", AmountMinor: 0}}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := svc.SaveItem(ctx, c.item); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestSnapshotMirrorsRepo(t *testing.T) {
	repo := seedRepo(t)
	svc := NewService(repo, nil)

	cat, err := svc.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cat.Items) != 2 {
		t.Fatalf("expected 2 items in snapshot, got %d", len(cat.Items))
	}
	if cat.Items["brisket"].Variants[0].AmountMinor != 1800 {
		t.Fatalf("brisket price not carried into snapshot")
	}

	// inactive add-ons stay in the snapshot; the engine rejects
	// them with its own code so the customer sees why
	addon, ok := cat.AddOns["banana-pudding"]
	if !ok {
		t.Fatal("inactive add-on missing from snapshot")
	}
	if addon.Active {
		t.Fatal("active flag lost in snapshot")
	}
}

func TestSetAddOnActiveUnknownRef(t *testing.T) {
	svc := NewService(NewInMemoryRepository(), nil)

	if err := svc.SetAddOnActive(context.Background(), "nope", true); err == nil {
		t.Fatal("expected error for unknown add-on")
	}
}

func setupCatalogRouter(repo Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(NewService(repo, nil))
	r.GET("/menu/items", handler.ListItems)
	r.GET("/menu/addons", handler.ListAddOns)
	r.POST("/admin/items", handler.SaveItem)
	r.PATCH("/admin/addons/:ref/active", handler.SetAddOnActive)

	return r
}

func TestListAddOnsHidesInactive(t *testing.T) {
	r := setupCatalogRouter(seedRepo(t))

	req := httptest.NewRequest(http.MethodGet, "/menu/addons", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		AddOns []AddOn `json:"addons"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)

	if len(resp.AddOns) != 1 || resp.AddOns[0].Ref != "cornbread" {
		t.Fatalf("expected only the active add-on, got %+v", resp.AddOns)
	}
}

func TestSaveItemEndpoint(t *testing.T) {
	r := setupCatalogRouter(NewInMemoryRepository())

	body, _ := json.Marshal(MenuItem{
		Ref: "ribs", Name: "St. Louis Ribs", Category: "protein",
		Variants: []pricing.Variant{{Currency: "usd", AmountMinor: 2200}},
	})

	req := httptest.NewRequest(http.MethodPost, "/admin/items", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
}
