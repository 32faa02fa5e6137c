package settings

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

func TestCurrentSeedsDefaults(t *testing.T) {
	svc := NewService(NewInMemoryRepository())

	cfg, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.DeliveryRadiusMiles != 30 {
		t.Fatalf("expected default radius 30, got %v", cfg.DeliveryRadiusMiles)
	}
	if cfg.AppetiteMultipliers["veryHungry"] != 1.5 {
		t.Fatalf("default multipliers missing: %+v", cfg.AppetiteMultipliers)
	}

	// second read comes from the repo, not a fresh seed
	again, err := svc.Current(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.TaxRate != cfg.TaxRate {
		t.Fatalf("seeded config not persisted")
	}
}

func TestUpdateRejectsBadRules(t *testing.T) {
	svc := NewService(NewInMemoryRepository())

	cfg := Defaults()
	cfg.TaxRate = 1.2

	err := svc.Update(context.Background(), cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if pricing.CodeOf(err) != pricing.CodeInvalidTaxRate {
		t.Fatalf("expected INVALID_TAX_RATE, got %v", pricing.CodeOf(err))
	}
}

func TestUpdateEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handler := NewHandler(NewService(NewInMemoryRepository()))
	r.PUT("/admin/settings", handler.Update)

	cfg := Defaults()
	cfg.DepositRate = -0.5
	body, _ := json.Marshal(cfg)

	req := httptest.NewRequest(http.MethodPut, "/admin/settings", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	var resp map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["code"] != "INVALID_DEPOSIT_PERCENTAGE" {
		t.Fatalf("expected INVALID_DEPOSIT_PERCENTAGE code, got %v", resp["code"])
	}
}
