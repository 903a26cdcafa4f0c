package services

import (
	"github.com/habitado/go-condo-billing/internal/common/flag"
	"github.com/habitado/go-condo-billing/internal/common/idgenerator"
	"github.com/habitado/go-condo-billing/internal/common/metrics"
	"github.com/habitado/go-condo-billing/internal/common/notification"
	"github.com/habitado/go-condo-billing/internal/common/publisher"
	"github.com/habitado/go-condo-billing/internal/config"
	"github.com/habitado/go-condo-billing/internal/repositories"
	"github.com/habitado/go-condo-billing/internal/services/statement"
)

type service struct {
	srv *Services
}

type Services struct {
	conf config.Config

	sqlRepo      repositories.SQLRepository
	cacheRepo    repositories.CacheRepository
	cloudStorage repositories.CloudStorageRepository
	fileRepo     repositories.FileRepository

	reconciliationPub publisher.Publisher
	invoiceEventPub   publisher.Publisher

	notification notification.Client
	idgenerator  idgenerator.Generator
	flag         flag.Client
	metrics      metrics.Metrics

	parsers statement.MapParser

	common service

	Unit           *unit
	Invoice        *invoice
	Reconciliation *reconciliation
	Retorno        *retorno
	Risk           *risk
	Collection     *collection
	Storage        *storage
	DLQProcessor   *dlqProcessor
}

func New(
	conf config.Config,
	sqlRepo repositories.SQLRepository,
	cacheRepo repositories.CacheRepository,
	cloudStorage repositories.CloudStorageRepository,
	fileRepo repositories.FileRepository,
	idgenerator idgenerator.Generator,
	reconciliationPub publisher.Publisher,
	invoiceEventPub publisher.Publisher,
	notification notification.Client,
	flag flag.Client,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:              conf,
		sqlRepo:           sqlRepo,
		cacheRepo:         cacheRepo,
		cloudStorage:      cloudStorage,
		fileRepo:          fileRepo,
		idgenerator:       idgenerator,
		reconciliationPub: reconciliationPub,
		invoiceEventPub:   invoiceEventPub,
		notification:      notification,
		flag:              flag,
		metrics:           metrics,
		parsers:           statement.NewMapParser(),
	}
	srv.common.srv = srv
	srv.Unit = (*unit)(&srv.common)
	srv.Invoice = (*invoice)(&srv.common)
	srv.Reconciliation = (*reconciliation)(&srv.common)
	srv.Retorno = (*retorno)(&srv.common)
	srv.Risk = (*risk)(&srv.common)
	srv.Collection = (*collection)(&srv.common)
	srv.Storage = (*storage)(&srv.common)
	srv.DLQProcessor = (*dlqProcessor)(&srv.common)

	return srv
}
