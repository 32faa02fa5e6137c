package quote

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"troybbq/internal/distance"
	"troybbq/internal/pricing"
)

var ErrNotOwner = errors.New("quote belongs to another customer")

// CatalogSource supplies the immutable snapshot one calculation
// reads. The quote service never touches catalog storage directly.
type CatalogSource interface {
	Snapshot(ctx context.Context) (*pricing.Catalog, error)
}

// RuleSource supplies the tenant's current business rules.
type RuleSource interface {
	Current(ctx context.Context) (pricing.RuleConfig, error)
}

// Mailer queues the confirmation email after a quote is saved.
type Mailer interface {
	Enqueue(ctx context.Context, quoteID, recipient string) error
}

type Service struct {
	repo      Repository
	catalog   CatalogSource
	rules     RuleSource
	estimator distance.Estimator
	mailer    Mailer
}

func NewService(
	repo Repository,
	catalog CatalogSource,
	rules RuleSource,
	estimator distance.Estimator,
	mailer Mailer,
) *Service {
	return &Service{
		repo:      repo,
		catalog:   catalog,
		rules:     rules,
		estimator: estimator,
		mailer:    mailer,
	}
}

// --------------------------------------------------
// Estimate (no persistence)
// --------------------------------------------------
func (s *Service) Estimate(ctx context.Context, req *pricing.Request) (*pricing.Breakdown, error) {
	cfg, err := s.rules.Current(ctx)
	if err != nil {
		return nil, err
	}

	cat, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	breakdown, err := pricing.Calculate(req, cfg, cat, s.estimator)
	if err != nil {
		// a bad tenant config is an operator problem, not just a
		// form error
		if pricing.ConfigIssue(err) {
			log.Printf("[QUOTE] rule configuration rejected a quote: %v", err)
		}
		return nil, err
	}

	return breakdown, nil
}

// --------------------------------------------------
// Address eligibility (pre-form check)
// --------------------------------------------------
func (s *Service) CheckAddress(ctx context.Context, address string) (distance.Result, error) {
	cfg, err := s.rules.Current(ctx)
	if err != nil {
		return distance.Result{}, err
	}

	return pricing.EstimateDistance(address, cfg, s.estimator)
}

// --------------------------------------------------
// Create (persist + queue confirmation)
// --------------------------------------------------
func (s *Service) Create(
	ctx context.Context,
	customerID string,
	customerEmail string,
	eventDate *time.Time,
	req *pricing.Request,
) (*Quote, error) {

	breakdown, err := s.Estimate(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	q := &Quote{
		ID:            uuid.New().String(),
		CustomerID:    customerID,
		CustomerEmail: customerEmail,
		EventDate:     eventDate,
		Status:        "PENDING",
		Request:       *req,
		Breakdown:     *breakdown,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Save(ctx, q); err != nil {
		return nil, err
	}

	// queue best-effort: the quote exists either way
	if s.mailer != nil {
		if err := s.mailer.Enqueue(ctx, q.ID, q.CustomerEmail); err != nil {
			log.Printf("[QUOTE] failed to queue confirmation for %s: %v", q.ID, err)
		}
	}

	return q, nil
}

// --------------------------------------------------
// Reads
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id, customerID string, isAdmin bool) (*Quote, error) {
	q, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isAdmin && q.CustomerID != customerID {
		return nil, ErrNotOwner
	}
	return q, nil
}

func (s *Service) ListMine(ctx context.Context, customerID string) ([]Quote, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *Service) ListPending(ctx context.Context) ([]Quote, error) {
	return s.repo.ListByStatus(ctx, "PENDING")
}

// --------------------------------------------------
// Admin decisions
// --------------------------------------------------
func (s *Service) Approve(ctx context.Context, id string) error {
	return s.repo.UpdateStatus(ctx, id, "APPROVED")
}

func (s *Service) Reject(ctx context.Context, id string) error {
	return s.repo.UpdateStatus(ctx, id, "REJECTED")
}
