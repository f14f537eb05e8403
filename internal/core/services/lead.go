package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/quill-labs/tally-cli/internal/core/domain"
	"github.com/quill-labs/tally-cli/internal/core/ports/driven"
	"github.com/quill-labs/tally-cli/internal/core/ports/driving"
	"github.com/quill-labs/tally-cli/internal/logger"
)

// Ensure LeadService implements the interface.
var _ driving.LeadService = (*LeadService)(nil)

// LeadService captures, scores and commits sales leads.
type LeadService struct {
	sessions driven.SessionStore
	leads    driven.Journal[domain.LeadEntry]
	validate *validator.Validate
	now      func() time.Time
}

// NewLeadService creates a new lead service.
func NewLeadService(sessions driven.SessionStore, leads driven.Journal[domain.LeadEntry]) *LeadService {
	return &LeadService{
		sessions: sessions,
		leads:    leads,
		validate: validator.New(),
		now:      time.Now,
	}
}

// SetClock overrides the timestamp source. Only used by tests.
func (s *LeadService) SetClock(now func() time.Time) {
	s.now = now
}

// Save validates the draft, fills unspecified attributes with the
// sentinel value, computes the qualification score and appends the
// scored lead to the lead journal. Leads are strictly append-only.
func (s *LeadService) Save(ctx context.Context, sessionID string, draft domain.LeadDraft) (*domain.LeadEntry, error) {
	if draft.Company == "" {
		draft.Company = domain.NotSpecified
	}
	if draft.Role == "" {
		draft.Role = domain.NotSpecified
	}
	if draft.TeamSize == "" {
		draft.TeamSize = domain.NotSpecified
	}

	if err := s.validate.Struct(&draft); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrValidation, leadValidationMessage(err))
	}

	if draft.ID == "" {
		draft.ID = domain.NewRecordID()
	}

	// The draft passes through the session ledger so the session can
	// inspect or amend it before it is committed elsewhere; commit is
	// what makes it durable.
	ledger, err := s.sessions.Ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if _, err := ledger.Add(&draft); err != nil {
		return nil, err
	}

	entry := domain.LeadEntry{
		LeadID:      draft.ID,
		Timestamp:   domain.Timestamp(s.now()),
		Name:        draft.Name,
		Email:       draft.Email,
		Company:     draft.Company,
		Role:        draft.Role,
		UseCase:     draft.UseCase,
		TeamSize:    draft.TeamSize,
		Timeline:    draft.Timeline,
		CallSummary: draft.CallSummary,
		Score:       domain.ScoreLead(&draft),
	}

	written, err := s.leads.Append(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("committing lead: %w", err)
	}

	logger.Info("lead %s committed: score %d (%s)", written.LeadID, written.Score, domain.CategorizeUseCase(written.UseCase))
	return &written, nil
}

// Score computes the qualification score without committing.
func (s *LeadService) Score(_ context.Context, draft domain.LeadDraft) (int, error) {
	return domain.ScoreLead(&draft), nil
}

// Leads returns all committed leads in append order.
func (s *LeadService) Leads(ctx context.Context) ([]domain.LeadEntry, error) {
	return s.leads.LoadAll(ctx)
}

// LastLead returns the most recently committed lead.
func (s *LeadService) LastLead(ctx context.Context) (*domain.LeadEntry, error) {
	all, err := s.leads.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no leads yet: %w", domain.ErrNotFound)
	}
	return &all[len(all)-1], nil
}

// leadValidationMessage converts validator errors into a short message
// the front end can speak back to the user.
func leadValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "lead details are incomplete"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", strings.ToLower(fe.Field()))
	case "email":
		return "email address is not valid"
	default:
		return fmt.Sprintf("%s is not valid", strings.ToLower(fe.Field()))
	}
}
