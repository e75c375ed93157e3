package dto

import "github.com/SscSPs/resale_backoffice/internal/core/domain"

// ListConsoleActionsParams defines query parameters for the action journal.
type ListConsoleActionsParams struct {
	Resource  string `form:"resource"`
	Limit     int    `form:"limit,default=20" binding:"min=0,max=100"`
	NextToken string `form:"nextToken"`
}

// ToDomain scopes the query to the calling user.
func (p ListConsoleActionsParams) ToDomain(userID string) domain.ConsoleActionQuery {
	return domain.ConsoleActionQuery{
		UserID:    userID,
		Resource:  p.Resource,
		Limit:     p.Limit,
		NextToken: p.NextToken,
	}
}

// ListConsoleActionsResponse is one page of the journal, newest first.
type ListConsoleActionsResponse struct {
	Enabled   bool                   `json:"enabled"`
	Actions   []domain.ConsoleAction `json:"actions"`
	NextToken *string                `json:"nextToken,omitempty"`
}
