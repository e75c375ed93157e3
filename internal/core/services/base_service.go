package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/resale_backoffice/internal/middleware"
	"golang.org/x/sync/singleflight"
)

// sharedPassTimeout bounds a shared pass once it no longer follows the
// cancellation of the caller that started it.
const sharedPassTimeout = 15 * time.Second

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// sharedPass runs fn once for every concurrent caller of key. fn runs on a
// context detached from the starting caller's cancellation, so a caller that
// gives up never fails the callers still waiting; each caller stops waiting
// when its own context ends.
func sharedPass[T any](ctx context.Context, group *singleflight.Group, key string, fn func(context.Context) (T, error)) (T, error) {
	ch := group.DoChan(key, func() (any, error) {
		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedPassTimeout)
		defer cancel()
		return fn(runCtx)
	})

	var zero T
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}
