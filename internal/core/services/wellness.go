package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quill-labs/tally-cli/internal/core/domain"
	"github.com/quill-labs/tally-cli/internal/core/ports/driven"
	"github.com/quill-labs/tally-cli/internal/core/ports/driving"
	"github.com/quill-labs/tally-cli/internal/logger"
)

// Ensure WellnessService implements the interface.
var _ driving.WellnessService = (*WellnessService)(nil)

// WellnessService accumulates daily health logs and commits check-ins.
type WellnessService struct {
	sessions driven.SessionStore
	catalog  *domain.Catalog
	checkins driven.Journal[domain.CheckInEntry]
	now      func() time.Time
}

// NewWellnessService creates a new wellness service.
func NewWellnessService(sessions driven.SessionStore, catalog *domain.Catalog, checkins driven.Journal[domain.CheckInEntry]) *WellnessService {
	return &WellnessService{
		sessions: sessions,
		catalog:  catalog,
		checkins: checkins,
		now:      time.Now,
	}
}

// SetClock overrides the timestamp source. Only used by tests.
func (s *WellnessService) SetClock(now func() time.Time) {
	s.now = now
}

// LogActivity validates the activity against the catalog and adds it
// to the session's ledger. Logging the same activity again accumulates
// quantity (20 minutes of running twice becomes one 40 minute record).
func (s *WellnessService) LogActivity(ctx context.Context, sessionID string, params driving.ActivityParams) (*domain.WellnessLog, error) {
	item, err := s.catalog.Find(params.ActivityID)
	if err != nil {
		return nil, fmt.Errorf("activity %q: %w", params.ActivityID, err)
	}
	if params.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidQuantity)
	}

	ledger, err := s.sessions.Ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	log := &domain.WellnessLog{
		ID:         domain.NewRecordID(),
		ActivityID: item.ID,
		Activity:   item.Name,
		Unit:       item.Unit,
		Notes:      params.Notes,
		Qty:        params.Quantity,
	}
	rec, err := ledger.Add(log)
	if err != nil {
		return nil, err
	}
	return rec.(*domain.WellnessLog), nil
}

// RemoveActivity removes a logged activity by record id.
func (s *WellnessService) RemoveActivity(ctx context.Context, sessionID, recordID string) error {
	ledger, err := s.sessions.Ledger(ctx, sessionID)
	if err != nil {
		return err
	}
	rec, err := ledger.Get(recordID)
	if err != nil {
		return err
	}
	if rec.Kind() != domain.KindWellnessLog {
		return fmt.Errorf("record %s is not a wellness log: %w", recordID, domain.ErrWrongKind)
	}
	_, err = ledger.Remove(recordID)
	return err
}

// Commit finalizes the check-in: validates at least one activity was
// logged, appends a check-in entry to the journal, then clears the
// session's wellness logs. Check-ins are strictly append-only.
func (s *WellnessService) Commit(ctx context.Context, sessionID, mood, summary string) (*domain.CheckInEntry, error) {
	ledger, err := s.sessions.Ledger(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	logs := ledger.ListKind(domain.KindWellnessLog)
	if len(logs) == 0 {
		return nil, fmt.Errorf("nothing logged today: %w", domain.ErrEmptyLedger)
	}

	entry := domain.CheckInEntry{
		CheckInID: uuid.NewString(),
		Timestamp: domain.Timestamp(s.now()),
		Mood:      mood,
		Summary:   summary,
	}
	for _, rec := range logs {
		log := rec.(*domain.WellnessLog)
		entry.Activities = append(entry.Activities, domain.WellnessLogInfo{
			ActivityID: log.ActivityID,
			Activity:   log.Activity,
			Quantity:   log.Qty,
			Unit:       log.Unit,
			Notes:      log.Notes,
		})
	}

	written, err := s.checkins.Append(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("committing check-in: %w", err)
	}

	for _, rec := range logs {
		ledger.Remove(rec.RecordID()) //nolint:errcheck
	}
	logger.Info("check-in %s committed: %d activities", written.CheckInID, len(written.Activities))
	return &written, nil
}

// CheckIns returns all committed check-ins in append order.
func (s *WellnessService) CheckIns(ctx context.Context) ([]domain.CheckInEntry, error) {
	return s.checkins.LoadAll(ctx)
}

// LastCheckIn returns the most recently committed check-in.
func (s *WellnessService) LastCheckIn(ctx context.Context) (*domain.CheckInEntry, error) {
	all, err := s.checkins.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("no check-ins yet: %w", domain.ErrNotFound)
	}
	return &all[len(all)-1], nil
}
