package v1invoice

import (
	"context"
	"time"

	"github.com/habitado/go-condo-billing/internal/common/flag"
	"github.com/habitado/go-condo-billing/internal/services"

	xlog "github.com/habitado/go-condo-billing/internal/common/log"
)

type invoiceHandler struct {
	invoiceSrv services.InvoiceService
}

func Routes(is services.InvoiceService) map[string]func(ctx context.Context, date time.Time, flag flag.Job) error {
	handler := invoiceHandler{invoiceSrv: is}
	return map[string]func(ctx context.Context, date time.Time, flag flag.Job) error{
		"SweepOverdueInvoices": handler.SweepOverdueInvoices,
	}
}

func (ih *invoiceHandler) SweepOverdueInvoices(ctx context.Context, date time.Time, flag flag.Job) (err error) {
	flipped, err := ih.invoiceSrv.SweepOverdue(ctx)
	if err != nil {
		return err
	}

	xlog.Info(ctx, "SweepOverdueInvoices", xlog.Int("flipped", flipped))

	return nil
}
