package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	"github.com/SscSPs/resale_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/resale_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/resale_backoffice/internal/models"
	"github.com/SscSPs/resale_backoffice/internal/utils/mapping"
	"github.com/SscSPs/resale_backoffice/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
)

const (
	defaultConsoleActionLimit = 20
	maxConsoleActionLimit     = 100
)

type PgxConsoleActionRepository struct {
	BaseRepository
}

// newPgxConsoleActionRepository creates a new repository for the local action journal.
func newPgxConsoleActionRepository(db DBTX) portsrepo.ConsoleActionRepositoryFacade {
	return &PgxConsoleActionRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ConsoleActionRepositoryFacade = (*PgxConsoleActionRepository)(nil)

// SaveConsoleAction inserts one journal entry.
func (r *PgxConsoleActionRepository) SaveConsoleAction(ctx context.Context, action domain.ConsoleAction) error {
	m := mapping.ToModelConsoleAction(action)

	query := `
		INSERT INTO console_actions (action_id, user_id, action, resource, resource_id, payload, outcome, error_message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	ctx, cancel := r.statementContext(ctx)
	defer cancel()
	_, err := r.DB.Exec(ctx, query,
		m.ActionID,
		m.UserID,
		m.Action,
		m.Resource,
		m.ResourceID,
		m.Payload,
		m.Outcome,
		m.ErrorMessage,
		m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save console action %s: %w", m.ActionID, err)
	}
	return nil
}

// ListConsoleActions retrieves a page of a user's journal, newest first, using
// keyset pagination on (created_at, action_id).
func (r *PgxConsoleActionRepository) ListConsoleActions(ctx context.Context, q domain.ConsoleActionQuery) ([]domain.ConsoleAction, *string, error) {
	limit := pagination.ClampLimit(q.Limit, defaultConsoleActionLimit, maxConsoleActionLimit)
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := `
		SELECT action_id, user_id, action, resource, resource_id, payload, outcome, error_message, created_at
		FROM console_actions
		WHERE user_id = $1`
	args := []any{q.UserID}

	if q.Resource != "" {
		args = append(args, q.Resource)
		query += " AND resource = $" + strconv.Itoa(len(args))
	}

	if q.NextToken != "" {
		lastCreatedAt, lastID, err := pagination.DecodeToken(q.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid nextToken")
		}
		args = append(args, lastCreatedAt, lastID)
		query += " AND (created_at, action_id) < ($" + strconv.Itoa(len(args)-1) + ", $" + strconv.Itoa(len(args)) + "::uuid)"
	}

	args = append(args, fetchLimit)
	query += " ORDER BY created_at DESC, action_id DESC LIMIT $" + strconv.Itoa(len(args)) + ";"

	ctx, cancel := r.statementContext(ctx)
	defer cancel()
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query console actions for user %s: %w", q.UserID, err)
	}
	defer rows.Close()

	modelActions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ConsoleAction, error) {
		var m models.ConsoleAction
		err := row.Scan(
			&m.ActionID,
			&m.UserID,
			&m.Action,
			&m.Resource,
			&m.ResourceID,
			&m.Payload,
			&m.Outcome,
			&m.ErrorMessage,
			&m.CreatedAt,
		)
		return m, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan console actions for user %s: %w", q.UserID, err)
	}

	var nextToken *string
	if len(modelActions) > limit {
		last := modelActions[limit-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ActionID)
		nextToken = &token
		modelActions = modelActions[:limit]
	}

	return mapping.ToDomainConsoleActionSlice(modelActions), nextToken, nil
}
