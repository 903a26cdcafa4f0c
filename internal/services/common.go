package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"
)

func checkDatabaseError(err error, code ...string) error {
	if errors.Is(err, common.ErrNoRows) || errors.Is(err, common.ErrDataNotFound) {
		err = models.GetErrMap(models.ErrKeyDataNotFound)
		if len(code) > 0 {
			err = models.GetErrMap(code[0])
		}
	} else {
		err = models.GetErrMap(models.ErrKeyDatabaseError, err.Error())
	}

	return err
}

func getCacheKeyRiskScore(unitID string) string {
	return fmt.Sprintf("billing:risk-score:%s", unitID)
}

// isDivergentPayment reports whether a paid amount differs from the invoice
// amount by more than the configured tolerance. Manual registration, retorno
// liquidação and suggestion approval all share this check.
func isDivergentPayment(paid, invoiceAmount decimal.Decimal, tolerance float64) bool {
	diff := paid.Sub(invoiceAmount).Abs()
	return diff.GreaterThan(decimal.NewFromFloat(tolerance))
}
