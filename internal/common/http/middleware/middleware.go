package middleware

import (
	"github.com/habitado/go-condo-billing/internal/config"
	"github.com/habitado/go-condo-billing/internal/repositories"
	"github.com/habitado/go-condo-billing/internal/services"
)

type AppMiddleware struct {
	conf         config.Config
	cacheRepo    repositories.CacheRepository
	dlqProcessor services.DLQProcessorService
}

func NewMiddleware(
	conf config.Config,
	cacheRepo repositories.CacheRepository,
	dlqProcessor services.DLQProcessorService) AppMiddleware {
	return AppMiddleware{
		conf:         conf,
		cacheRepo:    cacheRepo,
		dlqProcessor: dlqProcessor,
	}
}
