package app

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"security-funnel-service/internal/domain"
)

// LeadStore is the key-value persistence port. Lead records live under a
// `lead:{id}` namespace; List performs a prefix scan and hands back the
// store's native continuation cursor, empty once the scan is complete.
// The cursor is opaque: callers pass it back verbatim.
type LeadStore interface {
	Put(ctx context.Context, lead domain.Lead) error
	Get(ctx context.Context, id string) (domain.Lead, error)
	List(ctx context.Context, cursor string, limit int) ([]domain.Lead, string, error)
	Delete(ctx context.Context, id string) error
}

// Page size band for the admin listing.
const (
	DefaultListLimit = 10
	MaxListLimit     = 25
)

// LeadInput is the raw creation payload as submitted by the funnel form.
type LeadInput struct {
	Company          string               `json:"company"`
	Contact          string               `json:"contact"`
	EmployeesRange   string               `json:"employeesRange"`
	Email            string               `json:"email"`
	Phone            string               `json:"phone"`
	Role             string               `json:"role"`
	Notes            string               `json:"notes"`
	Consent          bool                 `json:"consent"`
	FirewallProvider string               `json:"firewallProvider"`
	VpnProvider      string               `json:"vpnProvider"`
	ScoreSummary     *domain.ScoreSummary `json:"scoreSummary"`
}

// LeadService validates, normalizes and persists lead records. Each
// operation is stateless; the store is the sole source of truth, so
// concurrent requests need no in-process coordination.
type LeadService struct {
	store LeadStore
	feed  *LeadFeed
	log   *zap.Logger
	now   func() time.Time
	newID func() string
}

func NewLeadService(store LeadStore, feed *LeadFeed, log *zap.Logger) *LeadService {
	if log == nil {
		log = zap.NewNop()
	}
	return &LeadService{
		store: store,
		feed:  feed,
		log:   log,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create validates the payload (fail fast, first violated rule wins),
// normalizes it, assigns identity and timestamp and persists the record.
// Random ids make concurrent creations collision-free.
func (s *LeadService) Create(ctx context.Context, in LeadInput) (domain.Lead, error) {
	if err := validate(in); err != nil {
		return domain.Lead{}, err
	}

	summary := domain.ScoreSummary{}
	if in.ScoreSummary != nil {
		summary = *in.ScoreSummary
	}

	lead := domain.Lead{
		ID:               s.newID(),
		CreatedAt:        s.now().UnixMilli(),
		Company:          strings.TrimSpace(in.Company),
		Contact:          strings.TrimSpace(in.Contact),
		EmployeesRange:   defaultIfBlank(in.EmployeesRange, "N/A"),
		Email:            strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:            strings.TrimSpace(in.Phone),
		Role:             strings.TrimSpace(in.Role),
		Notes:            strings.TrimSpace(in.Notes),
		Consent:          true,
		Processed:        false,
		FirewallProvider: strings.TrimSpace(in.FirewallProvider),
		VpnProvider:      strings.TrimSpace(in.VpnProvider),
		ScoreSummary:     summary,
	}

	if err := s.store.Put(ctx, lead); err != nil {
		return domain.Lead{}, fmt.Errorf("create lead: %w", err)
	}
	s.log.Info("lead created", zap.String("id", lead.ID), zap.String("company", lead.Company))
	if s.feed != nil {
		s.feed.Publish(lead)
	}
	return lead, nil
}

// List returns one page of leads sorted newest-first. The store's native
// ordering is lexicographic by key, not by time, so the explicit re-sort
// is a correctness step, not an optimization. Pages are
// eventually-consistent snapshots; writes during pagination may or may
// not appear on later pages.
func (s *LeadService) List(ctx context.Context, cursor string, limit int) (domain.LeadPage, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	items, next, err := s.store.List(ctx, cursor, limit)
	if err != nil {
		return domain.LeadPage{}, fmt.Errorf("list leads: %w", err)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt > items[j].CreatedAt
	})

	page := domain.LeadPage{Items: items}
	if next != "" {
		page.Next = &next
	}
	return page, nil
}

// SetProcessed merge-writes only the processed flag and returns the full
// updated record. Last write wins; there is deliberately no version check
// for this low-volume review workflow.
func (s *LeadService) SetProcessed(ctx context.Context, id string, processed bool) (domain.Lead, error) {
	lead, err := s.store.Get(ctx, id)
	if err != nil {
		if err == domain.ErrLeadNotFound {
			return domain.Lead{}, err
		}
		return domain.Lead{}, fmt.Errorf("fetch lead %s: %w", id, err)
	}

	lead.Processed = processed
	if err := s.store.Put(ctx, lead); err != nil {
		return domain.Lead{}, fmt.Errorf("update lead %s: %w", id, err)
	}
	s.log.Info("lead updated", zap.String("id", id), zap.Bool("processed", processed))
	return lead, nil
}

// Delete removes a lead. The store delete is unconditional, so deleting
// an unknown id still succeeds.
func (s *LeadService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete lead %s: %w", id, err)
	}
	s.log.Info("lead deleted", zap.String("id", id))
	return nil
}

// validate applies the creation rules in order and returns the first
// violation. Messages match the funnel's user-facing copy.
func validate(in LeadInput) error {
	if strings.TrimSpace(in.Company) == "" {
		return domain.NewValidationError("company", "Firmenname erforderlich.")
	}
	if strings.TrimSpace(in.Contact) == "" {
		return domain.NewValidationError("contact", "Ansprechpartner erforderlich.")
	}
	if !validEmail(in.Email) {
		return domain.NewValidationError("email", "Gültige E-Mail erforderlich.")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return domain.NewValidationError("phone", "Telefonnummer erforderlich.")
	}
	if !in.Consent {
		return domain.NewValidationError("consent", "Consent must be true.")
	}
	return nil
}

// validEmail requires both "@" and "." — the stricter of the two rules
// the product shipped with.
func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	return email != "" && strings.Contains(email, "@") && strings.Contains(email, ".")
}

func defaultIfBlank(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
