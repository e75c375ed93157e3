package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/middleware"
	"github.com/google/uuid"
)

const journalWriteTimeout = 5 * time.Second

type consoleActionService struct {
	BaseService
	repo portsrepo.ConsoleActionRepositoryFacade
	now  func() time.Time
}

// ConsoleActionOption configures the journal service.
type ConsoleActionOption func(*consoleActionService)

// WithJournalClock overrides the clock used to stamp entries.
func WithJournalClock(now func() time.Time) ConsoleActionOption {
	return func(s *consoleActionService) {
		s.now = now
	}
}

// NewConsoleActionService creates the journal service. A nil repo disables the
// journal: Record becomes a no-op and List returns nothing.
func NewConsoleActionService(repo portsrepo.ConsoleActionRepositoryFacade, opts ...ConsoleActionOption) portssvc.ConsoleActionSvc {
	s := &consoleActionService{repo: repo, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ConsoleActionSvc = (*consoleActionService)(nil)

func (s *consoleActionService) Enabled() bool {
	return s.repo != nil
}

func (s *consoleActionService) Record(ctx context.Context, action, resource, resourceID string, payload any, err error) {
	if s.repo == nil {
		return
	}

	userID, ok := middleware.GetUserIDFromCtx(ctx)
	if !ok {
		userID = "anonymous"
	}

	raw, marshalErr := json.Marshal(payload)
	if marshalErr != nil || payload == nil {
		raw = []byte("{}")
	}

	entry := domain.ConsoleAction{
		ActionID:   uuid.NewString(),
		UserID:     userID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Payload:    raw,
		Outcome:    outcomeOf(err),
		CreatedAt:  s.now().UTC(),
	}
	if err != nil {
		entry.ErrorMessage = apperrors.Message(err)
	}

	// The journal write outlives a cancelled request.
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), journalWriteTimeout)
	defer cancel()
	if saveErr := s.repo.SaveConsoleAction(writeCtx, entry); saveErr != nil {
		s.LogError(ctx, saveErr, "Failed to journal console action",
			slog.String("action", action),
			slog.String("resource", resource))
		return
	}
	s.LogDebug(ctx, "Console action journaled",
		slog.String("action_id", entry.ActionID),
		slog.String("outcome", string(entry.Outcome)))
}

func (s *consoleActionService) ListConsoleActions(ctx context.Context, query domain.ConsoleActionQuery) ([]domain.ConsoleAction, *string, error) {
	if s.repo == nil {
		return []domain.ConsoleAction{}, nil, nil
	}
	actions, next, err := s.repo.ListConsoleActions(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	return nonNil(actions), next, nil
}

// outcomeOf classifies a mutation result. Local validation failures and upstream
// 4xx answers are rejections; anything else that failed is a failure.
func outcomeOf(err error) domain.ActionOutcome {
	if err == nil {
		return domain.OutcomeSucceeded
	}
	if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrUnavailableAction) {
		return domain.OutcomeRejected
	}
	var upErr *apperrors.UpstreamError
	if errors.As(err, &upErr) && upErr.Status >= 400 && upErr.Status < 500 {
		return domain.OutcomeRejected
	}
	return domain.OutcomeFailed
}
