package statement

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"
)

const (
	cnab400LineWidth      = 400
	cnab400RetornoLiteral = "RETORNO"
)

// record layout offsets of the CNAB400 cobrança retorno file
const (
	cnab400RetornoLiteralStart = 9
	cnab400RetornoLiteralEnd   = 16

	cnab400HeaderCompanyStart  = 46
	cnab400HeaderCompanyEnd    = 76
	cnab400HeaderBankCodeStart = 76
	cnab400HeaderBankCodeEnd   = 79
	cnab400HeaderDateStart     = 94
	cnab400HeaderDateEnd       = 100

	cnab400NossoNumeroStart    = 62
	cnab400NossoNumeroEnd      = 73
	cnab400OccurrenceStart     = 108
	cnab400OccurrenceEnd       = 110
	cnab400OccurrenceDateStart = 110
	cnab400OccurrenceDateEnd   = 116
	cnab400SeuNumeroStart      = 116
	cnab400SeuNumeroEnd        = 126
	cnab400DueDateStart        = 146
	cnab400DueDateEnd          = 152
	cnab400TitleAmountStart    = 152
	cnab400TitleAmountEnd      = 165
	cnab400BankFeeStart        = 175
	cnab400BankFeeEnd          = 188
	cnab400PaidAmountStart     = 253
	cnab400PaidAmountEnd       = 266
	cnab400InterestStart       = 266
	cnab400InterestEnd         = 279
	cnab400CreditDateStart     = 295
	cnab400CreditDateEnd       = 301
	cnab400RejectReasonStart   = 318
	cnab400RejectReasonEnd     = 328
)

// cnab400Parser reads bank return (retorno de cobrança) files. Every detail
// record becomes a RetornoEvent; settlement occurrences additionally yield a
// BankTransaction so a return file can feed the generic matching flow.
type cnab400Parser struct{}

var _ Parser = (*cnab400Parser)(nil)

func (p *cnab400Parser) Parse(ctx context.Context, r io.Reader) (*models.ParsedStatement, error) {
	result := &models.ParsedStatement{Format: models.FormatCNAB400}

	scanner := bufio.NewScanner(r)
	bufferSize := 1024 * 512
	buffer := make([]byte, bufferSize)
	scanner.Buffer(buffer, bufferSize)

	var (
		lineNo    int
		sawHeader bool
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if len(line) < cnab400LineWidth {
			result.Errors = append(result.Errors, models.ParseError{
				Line:    lineNo,
				Message: fmt.Sprintf("record shorter than %d characters", cnab400LineWidth),
			})
			continue
		}

		switch line[0] {
		case '0':
			if strings.ToUpper(line[cnab400RetornoLiteralStart:cnab400RetornoLiteralEnd]) != cnab400RetornoLiteral {
				result.Errors = append(result.Errors, models.ParseError{
					Line:    lineNo,
					Message: "header is not a retorno record",
				})
				continue
			}
			sawHeader = true
			p.parseHeader(line, result)
		case '1':
			event, parseErr := p.parseDetail(line, lineNo)
			if parseErr != nil {
				result.Errors = append(result.Errors, *parseErr)
				continue
			}
			result.Events = append(result.Events, *event)

			if event.Occurrence.IsSettlement() {
				result.Transactions = append(result.Transactions, settlementTransaction(*event))
			}
		case '9':
			// trailer carries only sequencing the matcher does not use
		default:
			result.Errors = append(result.Errors, models.ParseError{
				Line:    lineNo,
				Message: fmt.Sprintf("unknown record type %q", line[0]),
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if !sawHeader {
		return result, common.ErrRetornoHeaderMissing
	}

	if len(result.Events) == 0 {
		return result, common.ErrStatementEmpty
	}

	return result, nil
}

func (p *cnab400Parser) parseHeader(line string, result *models.ParsedStatement) {
	result.Meta.CompanyName = strings.TrimSpace(line[cnab400HeaderCompanyStart:cnab400HeaderCompanyEnd])
	result.Meta.BankCode = strings.TrimSpace(line[cnab400HeaderBankCodeStart:cnab400HeaderBankCodeEnd])

	if generatedAt, err := time.Parse("020106", line[cnab400HeaderDateStart:cnab400HeaderDateEnd]); err == nil {
		result.Meta.GeneratedAt = &generatedAt
	}
}

func (p *cnab400Parser) parseDetail(line string, lineNo int) (*models.RetornoEvent, *models.ParseError) {
	occurrence := models.OccurrenceCode(line[cnab400OccurrenceStart:cnab400OccurrenceEnd])

	occurrenceDate, err := time.Parse("020106", line[cnab400OccurrenceDateStart:cnab400OccurrenceDateEnd])
	if err != nil {
		return nil, &models.ParseError{Line: lineNo, Message: "invalid occurrence date"}
	}

	titleAmount, err := parseCentsAmount(line[cnab400TitleAmountStart:cnab400TitleAmountEnd])
	if err != nil {
		return nil, &models.ParseError{Line: lineNo, Message: "invalid title amount"}
	}

	event := &models.RetornoEvent{
		NossoNumero:    strings.TrimSpace(line[cnab400NossoNumeroStart:cnab400NossoNumeroEnd]),
		SeuNumero:      strings.TrimSpace(line[cnab400SeuNumeroStart:cnab400SeuNumeroEnd]),
		Occurrence:     occurrence,
		OccurrenceDate: occurrenceDate,
		TitleAmount:    titleAmount,
		Line:           lineNo,
	}

	if dueDate, err := time.Parse("020106", line[cnab400DueDateStart:cnab400DueDateEnd]); err == nil {
		event.DueDate = &dueDate
	}

	if bankFee, err := parseCentsAmount(line[cnab400BankFeeStart:cnab400BankFeeEnd]); err == nil {
		event.BankFee = bankFee
	}

	if paidAmount, err := parseCentsAmount(line[cnab400PaidAmountStart:cnab400PaidAmountEnd]); err == nil {
		event.PaidAmount = paidAmount
	}

	if interest, err := parseCentsAmount(line[cnab400InterestStart:cnab400InterestEnd]); err == nil {
		event.Interest = interest
	}

	if creditDate, err := time.Parse("020106", line[cnab400CreditDateStart:cnab400CreditDateEnd]); err == nil {
		event.CreditDate = &creditDate
	}

	// rejection motive codes, only meaningful on entrada rejeitada records
	if reason := strings.Trim(line[cnab400RejectReasonStart:cnab400RejectReasonEnd], " 0"); reason != "" {
		event.RejectReason = reason
	}

	return event, nil
}

// settlementTransaction renders a liquidação event as a statement credit so
// return files can run through the matching engine when needed.
func settlementTransaction(event models.RetornoEvent) models.BankTransaction {
	date := event.OccurrenceDate
	if event.CreditDate != nil {
		date = *event.CreditDate
	}

	return models.BankTransaction{
		Date:           date,
		Direction:      models.DirectionCredit,
		Amount:         event.PaidAmount,
		Description:    fmt.Sprintf("LIQUIDACAO TITULO %s", event.NossoNumero),
		ReferenceID:    event.NossoNumero,
		DocumentNumber: event.SeuNumero,
		Line:           event.Line,
	}
}
