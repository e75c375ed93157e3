package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/resale_backoffice/internal/apperrors"
	portssvc "github.com/SscSPs/resale_backoffice/internal/core/ports/services"
	"github.com/SscSPs/resale_backoffice/internal/core/screens"
	"github.com/SscSPs/resale_backoffice/internal/dto"
	"github.com/SscSPs/resale_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// screenHandler is embedded by every screen handler. It resolves the caller's
// workspace and journals mutations.
type screenHandler struct {
	workspaces *screens.Workspaces
	journal    portssvc.ConsoleActionSvc
}

func newScreenHandler(workspaces *screens.Workspaces, journal portssvc.ConsoleActionSvc) screenHandler {
	return screenHandler{workspaces: workspaces, journal: journal}
}

// workspace returns the caller's workspace, answering 401 when there is no caller.
func (h screenHandler) workspace(c *gin.Context) (*screens.Workspace, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return h.workspaces.For(userID), true
}

// actionRecord names a mutation for the journal.
type actionRecord struct {
	Action     string
	Resource   string
	ResourceID string
	Payload    any
}

func idRecord(action, resource string, id int64, payload any) actionRecord {
	return actionRecord{Action: action, Resource: resource, ResourceID: strconv.FormatInt(id, 10), Payload: payload}
}

// serveScreen loads view with filter and answers with the snapshot.
func serveScreen[F, S any](c *gin.Context, view *screens.View[F, S], filter F, load screens.Loader[F, S]) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("screen", view.Name()))
	snap, err := view.RefreshWith(c.Request.Context(), filter, load)
	if err != nil {
		respondError(c, logger, err, "Failed to load "+view.Name())
		return
	}
	c.JSON(http.StatusOK, dto.NewScreenResponse(view.Name(), loadedAt(view), snap))
}

// finishMutation journals a mutation, refreshes the affected screen whether or
// not the mutation succeeded, and answers. A successful mutation always
// answers with status even when the refresh fails.
func finishMutation[F, S any](c *gin.Context, journal portssvc.ConsoleActionSvc, view *screens.View[F, S], load screens.Loader[F, S], rec actionRecord, err error, status int, result any) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.String("action", rec.Action),
		slog.String("resource", rec.Resource),
		slog.String("resource_id", rec.ResourceID),
	)

	journal.Record(ctx, rec.Action, rec.Resource, rec.ResourceID, rec.Payload, err)

	snap, refreshErr := view.Refresh(ctx, load)
	if err != nil {
		if refreshErr != nil {
			logger.Warn("Refresh after failed action also failed", slog.String("error", refreshErr.Error()))
		}
		respondError(c, logger, err, "Failed to "+humanize(rec.Action))
		return
	}

	logger.Info("Console action succeeded")
	resp := dto.MutationResponse[S]{Result: result}
	if msg, ok := result.(string); ok {
		resp.Message = msg
		resp.Result = nil
	}
	if refreshErr != nil {
		logger.Warn("Refresh after action failed", slog.String("error", refreshErr.Error()))
		resp.RefreshError = apperrors.Message(refreshErr)
	} else {
		screen := dto.NewScreenResponse(view.Name(), loadedAt(view), snap)
		resp.Screen = &screen
	}
	c.JSON(status, resp)
}

func loadedAt[F, S any](view *screens.View[F, S]) time.Time {
	_, at, ok := view.Snapshot()
	if !ok {
		return time.Now().UTC()
	}
	return at
}

// bindOptionalJSON binds a body that may be absent entirely.
func bindOptionalJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// pathID parses a positive numeric path parameter, answering 400 otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid path id", slog.String("param", name), slog.String("value", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": " + raw})
		return 0, false
	}
	return id, true
}

func humanize(action string) string {
	return strings.ReplaceAll(action, "_", " ")
}
