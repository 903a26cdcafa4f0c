package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/habitado/go-condo-billing/internal/common"
	commonHTTP "github.com/habitado/go-condo-billing/internal/common/http"
	xlog "github.com/habitado/go-condo-billing/internal/common/log"
	"github.com/habitado/go-condo-billing/internal/models"

	"github.com/labstack/echo/v4"
)

// CheckIdempotentRequest guards mutating endpoints against duplicate delivery.
// The first request with a given X-Idempotency-Key takes a cache lock, runs the
// handler and stores the response; replays with the same key and body get the
// stored response back without touching the handler again.
func (m *AppMiddleware) CheckIdempotentRequest() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodPost {
				return next(c)
			}

			idempotencyKey := c.Request().Header.Get("X-Idempotency-Key")
			if idempotencyKey == "" {
				return commonHTTP.RestErrorResponse(c, http.StatusBadRequest, common.ErrMissingIdempotencyKey)
			}

			ctx := c.Request().Context()
			requestBody := m.parseRequestBody(c)

			idm, err := m.getOrCreateIdempotency(ctx, idempotencyKey, requestBody)
			if err != nil {
				if errors.Is(err, common.ErrInvalidFingerprint) {
					return commonHTTP.RestErrorResponse(c, http.StatusUnprocessableEntity, err)
				} else if errors.Is(err, common.ErrRequestBeingProcessed) {
					return commonHTTP.RestErrorResponse(c, http.StatusConflict, err)
				}
				return commonHTTP.RestErrorResponse(c, http.StatusInternalServerError, err)
			}

			if idm.StatusProcess == models.IdempotencyStatusProcessFinished {
				for k, v := range idm.ResponseHeaders {
					c.Response().Header().Set(k, v)
				}
				return c.Blob(idm.HTTPStatusCode, echo.MIMEApplicationJSON, []byte(idm.ResponseBody))
			}

			resBodyBuff := m.getResponseBodyBuffer(c)

			err = next(c)
			if err != nil {
				c.Error(err)
			}

			statusCode := c.Response().Status
			if statusCode < http.StatusOK || statusCode >= http.StatusMultipleChoices {
				// release lock if request failed, so if the same request is made, it will
				// be processed again. this is useful for retry mechanism (ex: 5xx error /
				// timeout / race on the statement file / etc.)
				return m.releaseLock(ctx, idm)
			}

			headers := make(map[string]string)
			for k, v := range c.Response().Header() {
				if len(v) > 0 {
					headers[k] = v[len(v)-1] // use last value
				}
			}

			idm.SetResponse(statusCode, headers, resBodyBuff.String())

			// save idempotency data to cache if the request is successful
			// so the next request with same idempotency key & fingerprint will get the same response
			if err := m.saveResponseToCache(ctx, idm); err != nil {
				xlog.Warn(ctx, "failed to save idempotency data", xlog.Err(err))
			}

			return nil
		}
	}
}

// getOrCreateIdempotency will get idempotency data from cache, if not found, it will create new one.
// created idempotency will be using status pending since the request is still being processed
func (m *AppMiddleware) getOrCreateIdempotency(ctx context.Context, key string, requestBody []byte) (*models.Idempotency, error) {
	idm := models.NewIdempotency(key, models.IdempotencyStatusProcessPending, requestBody)

	strIdm, err := m.cacheRepo.Get(ctx, idm.CacheKey)
	if errors.Is(err, common.ErrDataNotFound) {
		err = m.createLock(ctx, idm)
		if err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to get idempotency data: %w", err)
	}

	if strIdm == "" {
		// no previous idempotency data found
		return idm, nil
	}

	var cachedIdm models.Idempotency
	err = json.Unmarshal([]byte(strIdm), &cachedIdm)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal idempotency data: %w", err)
	}

	if cachedIdm.Fingerprint != idm.Fingerprint {
		return nil, common.ErrInvalidFingerprint
	}

	if cachedIdm.StatusProcess == models.IdempotencyStatusProcessPending {
		return nil, common.ErrRequestBeingProcessed
	}

	return &cachedIdm, nil
}

func (m *AppMiddleware) saveResponseToCache(ctx context.Context, idm *models.Idempotency) error {
	bytIdm, err := json.Marshal(idm)
	if err != nil {
		return fmt.Errorf("failed to marshal idempotency data: %w", err)
	}

	err = m.cacheRepo.Set(ctx, idm.CacheKey, string(bytIdm), models.TTLIdempotency)
	if err != nil {
		return fmt.Errorf("failed to save idempotency data: %w", err)
	}

	return nil
}

func (m *AppMiddleware) createLock(ctx context.Context, idm *models.Idempotency) error {
	bytIdm, err := json.Marshal(idm)
	if err != nil {
		return fmt.Errorf("failed to marshal idempotency data: %w", err)
	}

	set, err := m.cacheRepo.SetIfNotExists(ctx, idm.CacheKey, string(bytIdm), models.TTLIdempotency)
	if err != nil {
		return fmt.Errorf("failed to save idempotency data: %w", err)
	}

	// there is possibility same request is being processed by another process simultaneously
	if !set {
		return common.ErrRequestBeingProcessed
	}

	return nil
}

func (m *AppMiddleware) releaseLock(ctx context.Context, idm *models.Idempotency) error {
	err := m.cacheRepo.Del(ctx, idm.CacheKey)
	if err != nil {
		return fmt.Errorf("failed to release idempotency data: %w", err)
	}

	return nil
}
