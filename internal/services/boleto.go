package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/habitado/go-condo-billing/internal/models"
)

// FEBRABAN constants for the issuing bank. Titles are registered under
// carteira 109 of the condo operating account.
const (
	boletoBankCode     = "341"
	boletoCurrencyCode = "9"
	boletoCarteira     = "109"
	boletoAgency       = "0821"
	boletoAccount      = "33359"

	ourNumberPadWidth = 8
	amountPadWidth    = 10
)

// dueFactorBase is the epoch of the 4-digit due factor. Factors wrap back to
// 1000 after reaching 9999 on 2025-02-21.
var dueFactorBase = time.Date(1997, time.October, 7, 0, 0, 0, 0, time.UTC)

type boletoDigits struct {
	OurNumber string
	Barcode   string
	BankLine  string
}

// generateBoletoDigits derives the registration digits printed on an invoice:
// nosso número (carteira + zero-padded sequence), the 44-digit barcode and the
// 47-digit typeable line.
func generateBoletoDigits(sequence int64, amount decimal.Decimal, dueDate time.Time) (boletoDigits, error) {
	seq := leftZeroPad(sequence, ourNumberPadWidth)
	if len(seq) != ourNumberPadWidth {
		return boletoDigits{}, fmt.Errorf("boleto sequence %d exceeds padding width %d", sequence, ourNumberPadWidth)
	}

	cents := amount.Shift(2).Round(0).IntPart()
	amountField := leftZeroPad(cents, amountPadWidth)
	if cents < 0 || len(amountField) != amountPadWidth {
		return boletoDigits{}, fmt.Errorf("boleto amount %s out of range", amount.String())
	}

	freeField := buildFreeField(seq)
	factor := leftZeroPad(dueFactor(dueDate), 4)

	partial := boletoBankCode + boletoCurrencyCode + factor + amountField + freeField
	generalDV := mod11CheckDigit(partial)

	barcode := boletoBankCode + boletoCurrencyCode + fmt.Sprint(generalDV) + factor + amountField + freeField

	return boletoDigits{
		OurNumber: boletoCarteira + seq,
		Barcode:   barcode,
		BankLine:  buildBankLine(freeField, generalDV, factor, amountField),
	}, nil
}

// buildFreeField assembles the bank-specific 25 digits of the barcode:
// carteira, nosso número, its check digit, agency, account, its check digit
// and three zeros.
func buildFreeField(paddedSeq string) string {
	ourNumberDV := mod10CheckDigit(boletoAgency + boletoAccount + boletoCarteira + paddedSeq)
	accountDV := mod10CheckDigit(boletoAgency + boletoAccount)

	return boletoCarteira + paddedSeq + fmt.Sprint(ourNumberDV) +
		boletoAgency + boletoAccount + fmt.Sprint(accountDV) + "000"
}

// buildBankLine formats the typeable line: three 10-digit fields with their
// own mod-10 check digits, the general check digit, then factor and amount.
func buildBankLine(freeField string, generalDV int, factor, amountField string) string {
	field1 := boletoBankCode + boletoCurrencyCode + freeField[0:5]
	field2 := freeField[5:15]
	field3 := freeField[15:25]

	dv1 := mod10CheckDigit(field1)
	dv2 := mod10CheckDigit(field2)
	dv3 := mod10CheckDigit(field3)

	return fmt.Sprintf("%s.%s%d %s.%s%d %s.%s%d %d %s%s",
		field1[0:5], field1[5:9], dv1,
		field2[0:5], field2[5:10], dv2,
		field3[0:5], field3[5:10], dv3,
		generalDV, factor, amountField)
}

// dueFactor counts days since the FEBRABAN epoch, wrapping back to 1000 once
// the counter passes 9999.
func dueFactor(dueDate time.Time) int64 {
	due := time.Date(dueDate.Year(), dueDate.Month(), dueDate.Day(), 0, 0, 0, 0, time.UTC)
	factor := int64(due.Sub(dueFactorBase).Hours() / 24)
	if factor > 9999 {
		factor = ((factor - 1000) % 9000) + 1000
	}

	return factor
}

// mod10CheckDigit weighs digits 2,1,2,1... from the right, summing the digits
// of any two-digit product.
func mod10CheckDigit(digits string) int {
	total := 0
	weight := 2
	for i := len(digits) - 1; i >= 0; i-- {
		product := int(digits[i]-'0') * weight
		if product > 9 {
			product -= 9
		}
		total += product

		if weight == 2 {
			weight = 1
		} else {
			weight = 2
		}
	}

	return (10 - total%10) % 10
}

// mod11CheckDigit weighs digits 2..9 cycling from the right. Remainders that
// would produce 0, 10 or 11 collapse to 1.
func mod11CheckDigit(digits string) int {
	total := 0
	weight := 2
	for i := len(digits) - 1; i >= 0; i-- {
		total += int(digits[i]-'0') * weight
		weight++
		if weight > 9 {
			weight = 2
		}
	}

	dv := 11 - total%11
	if dv == 0 || dv == 10 || dv == 11 {
		dv = 1
	}

	return dv
}

func leftZeroPad(input, padWidth int64) string {
	return fmt.Sprintf(fmt.Sprintf("%%0%dd", padWidth), input)
}

// boletoSequenceFromID folds the random tail of a generated invoice number
// into the 8-digit nosso número sequence space.
func boletoSequenceFromID(id string) int64 {
	var sum int64
	for _, r := range strings.TrimPrefix(id, models.InvoiceNumberPrefix+"-") {
		sum = (sum*131 + int64(r)) % 100000000
	}
	if sum < 0 {
		sum = -sum
	}

	return sum
}
