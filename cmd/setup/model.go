package setup

import (
	"github.com/habitado/go-condo-billing/internal/common/publisher"
)

type PublisherClient struct {
	ReconciliationTask publisher.Publisher
	InvoiceEvent       publisher.Publisher
}
