package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"minify/internal/dashboard"
	apperrors "minify/internal/errors"
	"minify/internal/finance"
	"minify/internal/logger"
	"minify/internal/middleware"
	"minify/internal/pagination"
	"minify/internal/uuid"
)

// Sessions hands out per-user dashboard stores. *dashboard.Registry implements it.
type Sessions interface {
	Session(ctx context.Context, userID string) (*dashboard.Store, error)
	Drop(userID string)
	Invalidate(userID string)
	Flush()
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// userSession returns the caller's id and dashboard store.
func userSession(c *gin.Context, sessions Sessions) (string, *dashboard.Store, error) {
	userID, err := getUserID(c)
	if err != nil {
		return "", nil, err
	}
	store, err := sessions.Session(c.Request.Context(), userID)
	if err != nil {
		return "", nil, err
	}
	return userID, store, nil
}

// parsePathID reads a UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
//
//nolint:unparam // param is intentionally generic for reuse across handlers with different path params
func parsePathID(c *gin.Context, param string) (string, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// bindPage parses page and page_size query parameters.
func bindPage(c *gin.Context) (pagination.PageRequest, error) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		return page, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
	}
	page.Defaults()
	return page, nil
}

// parseFlexibleTime accepts RFC3339 timestamps and plain YYYY-MM-DD dates.
// A plain date is midnight in loc, or UTC when loc is nil.
func parseFlexibleTime(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02", s, orUTC(loc)); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: use RFC3339 or YYYY-MM-DD", s)
}

// optionalTime parses the named query parameter when present.
func optionalTime(c *gin.Context, name string, loc *time.Location) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	t, err := parseFlexibleTime(raw, loc)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, name+": "+err.Error())
	}
	return &t, nil
}

func orUTC(loc *time.Location) *time.Location {
	if loc == nil {
		return time.UTC
	}
	return loc
}

// dateRange resolves from/to query parameters, or a month=YYYY-MM
// shortcut, defaulting to the current month in loc. Both ends are inclusive.
func dateRange(c *gin.Context, loc *time.Location) (time.Time, time.Time, error) {
	loc = orUTC(loc)
	month := finance.MonthOf(time.Now(), loc)
	if raw := c.Query("month"); raw != "" {
		m, err := finance.ParseMonth(raw)
		if err != nil {
			return time.Time{}, time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
		}
		month = m
	}
	from := month.Start(loc)
	to := month.End(loc).Add(-time.Nanosecond)

	f, err := optionalTime(c, "from", loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if f != nil {
		from = *f
	}
	t, err := optionalTime(c, "to", loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if t != nil {
		to = *t
	}
	return from, to, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// bindError turns a binding failure into ErrInvalidInput.
func bindError(err error) error {
	return middleware.BindError(err)
}
