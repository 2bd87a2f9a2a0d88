package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/domain"
	"github.com/gm2tmg6jgb-cmd/turno-app-sub001/internal/repository"
)

type auditService struct {
	audits   repository.AuditStatusRepo
	observer UseCaseObserver
}

// NewAuditService creates the overlay service. Writes are single atomic key
// updates with last-write-wins semantics; setting the same status twice is a
// no-op in effect.
func NewAuditService(audits repository.AuditStatusRepo, observers ...UseCaseObserver) AuditService {
	return &auditService{
		audits:   audits,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *auditService) SetStatus(ctx context.Context, key domain.AuditKey, status domain.AuditStatus) error {
	start := time.Now()
	err := s.setStatus(ctx, key, status)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "audit.set_status",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"shift": key.Shift, "week": key.Week, "assignee": key.Assignee},
		StartedAt: start,
	})
	return err
}

func (s *auditService) setStatus(ctx context.Context, key domain.AuditKey, status domain.AuditStatus) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if !status.Valid() {
		return fmt.Errorf("status %q: %w", status, domain.ErrInvalidArgument)
	}
	entry := &domain.AuditEntry{AuditKey: key, Status: status}
	if err := s.audits.Upsert(ctx, entry); err != nil {
		return fmt.Errorf("recording status: %w", err)
	}
	return nil
}

func (s *auditService) GetStatus(ctx context.Context, key domain.AuditKey) (domain.AuditStatus, error) {
	if err := validateKey(key); err != nil {
		return domain.StatusUnset, err
	}
	return s.audits.Get(ctx, key)
}

func (s *auditService) ClearShift(ctx context.Context, shift domain.Shift) error {
	start := time.Now()
	err := s.clearShift(ctx, shift)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "audit.clear_shift",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"shift": shift},
		StartedAt: start,
	})
	return err
}

func (s *auditService) clearShift(ctx context.Context, shift domain.Shift) error {
	if !shift.Valid() {
		return fmt.Errorf("shift %q: %w", shift, domain.ErrInvalidArgument)
	}
	if err := s.audits.DeleteByShift(ctx, shift); err != nil {
		return fmt.Errorf("clearing shift %s: %w", shift, err)
	}
	return nil
}

func validateKey(key domain.AuditKey) error {
	if !key.Shift.Valid() {
		return fmt.Errorf("shift %q: %w", key.Shift, domain.ErrInvalidArgument)
	}
	if err := domain.ValidateWeek(key.Week); err != nil {
		return err
	}
	if err := domain.ValidateDay(key.Day); err != nil {
		return err
	}
	if key.Assignee == "" {
		return fmt.Errorf("empty assignee: %w", domain.ErrInvalidArgument)
	}
	if key.MachineID == "" {
		return fmt.Errorf("empty machine id: %w", domain.ErrInvalidArgument)
	}
	return nil
}
