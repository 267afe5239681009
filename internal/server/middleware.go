package server

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rightsledger/rights-parser/internal/common"
	"github.com/rightsledger/rights-parser/internal/repository"
)

const (
	apiKeyHeader = "X-API-Key"

	ctxKeyAPIKey = "auth.api_key"
	ctxKeyLogID  = "auth.usage_log_id"
	ctxKeyJobID  = "auth.job_id"
)

// errorBody is the uniform error envelope for rejected requests.
type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// requireAPIKey authenticates the caller, enforces the rolling-hour quota,
// and finalizes the request's audit row once the handler returns. Handlers
// run only for admitted requests.
func requireAPIKey(keys repository.ApiKeyRepository, logs repository.UsageLogRepository, log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			raw := c.Request().Header.Get(apiKeyHeader)
			meta := repository.AccessMeta{
				Endpoint:  c.Path(),
				Method:    c.Request().Method,
				ClientIP:  c.RealIP(),
				UserAgent: c.Request().UserAgent(),
				FileSize:  c.Request().ContentLength,
			}
			if raw == "" {
				return c.JSON(401, errorBody{Error: "missing " + apiKeyHeader + " header", Kind: "unauthorized"})
			}

			key, logID, err := keys.Authorize(c.Request().Context(), raw, meta)
			if err != nil {
				status, kind := common.ErrorKind(err)
				return c.JSON(status, errorBody{Error: err.Error(), Kind: kind})
			}

			c.Set(ctxKeyAPIKey, key)
			c.Set(ctxKeyLogID, logID)

			err = next(c)

			status := c.Response().Status
			if err != nil {
				status, _ = common.ErrorKind(err)
			}
			var jobID *uuid.UUID
			if v, ok := c.Get(ctxKeyJobID).(uuid.UUID); ok {
				jobID = &v
			}
			if ferr := logs.Finalize(c.Request().Context(), logID, status, time.Since(start), jobID); ferr != nil {
				log.Error("http.usage_finalize_failed", "log_id", logID.String(), "error", ferr)
			}
			return err
		}
	}
}

// handleError converts sentinel errors into the uniform error envelope.
func handleError(c echo.Context, err error) error {
	status, kind := common.ErrorKind(err)
	return c.JSON(status, errorBody{Error: err.Error(), Kind: kind})
}
