package statement

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"
)

const cnab240LineWidth = 240

// record layout offsets, straight from the FEBRABAN CNAB240 extrato layout
const (
	cnab240RecordTypeIdx    = 7
	cnab240SegmentIdx       = 13
	cnab240AgencyStart      = 17
	cnab240AgencyEnd        = 22
	cnab240AccountStart     = 23
	cnab240AccountEnd       = 35
	cnab240DateStart        = 142
	cnab240DateEnd          = 150
	cnab240AmountStart      = 150
	cnab240AmountEnd        = 168
	cnab240DirectionIdx     = 168
	cnab240CategoryStart    = 169
	cnab240CategoryEnd      = 172
	cnab240HistoryCodeStart = 172
	cnab240HistoryCodeEnd   = 176
	cnab240HistoryTextStart = 176
	cnab240HistoryTextEnd   = 201
	cnab240DocNumberStart   = 201
	cnab240DocNumberEnd     = 240

	cnab240HeaderBankCodeStart = 0
	cnab240HeaderBankCodeEnd   = 3
	cnab240HeaderCompanyStart  = 72
	cnab240HeaderCompanyEnd    = 102
	cnab240HeaderDateStart     = 143
	cnab240HeaderDateEnd       = 151

	cnab240TrailerCountStart = 23
	cnab240TrailerCountEnd   = 29
)

// cnab240Parser reads FEBRABAN CNAB240 account statements. Only segment E
// (extrato) details become transactions; the other record types feed the
// meta block or are skipped.
type cnab240Parser struct{}

var _ Parser = (*cnab240Parser)(nil)

func (p *cnab240Parser) Parse(ctx context.Context, r io.Reader) (*models.ParsedStatement, error) {
	result := &models.ParsedStatement{Format: models.FormatCNAB240}

	scanner := bufio.NewScanner(r)
	bufferSize := 1024 * 512
	buffer := make([]byte, bufferSize)
	scanner.Buffer(buffer, bufferSize)

	var (
		lineNo       int
		recordCount  int
		trailerCount int
		trailerLine  int
	)

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		recordCount++

		if len(line) < cnab240LineWidth {
			result.Errors = append(result.Errors, models.ParseError{
				Line:    lineNo,
				Message: fmt.Sprintf("record shorter than %d characters", cnab240LineWidth),
			})
			continue
		}

		switch line[cnab240RecordTypeIdx] {
		case '0':
			p.parseFileHeader(line, result)
		case '1', '5':
			// batch header and trailer carry nothing the matcher needs
		case '3':
			if line[cnab240SegmentIdx] != 'E' {
				continue
			}
			txn, parseErr := p.parseSegmentE(line, lineNo, result)
			if parseErr != nil {
				result.Errors = append(result.Errors, *parseErr)
				continue
			}
			result.Transactions = append(result.Transactions, *txn)
		case '9':
			trailerLine = lineNo
			if count, err := strconv.Atoi(strings.TrimSpace(line[cnab240TrailerCountStart:cnab240TrailerCountEnd])); err == nil {
				trailerCount = count
			}
		default:
			result.Errors = append(result.Errors, models.ParseError{
				Line:    lineNo,
				Message: fmt.Sprintf("unknown record type %q", line[cnab240RecordTypeIdx]),
			})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// count mismatches are a warning: the details already parsed stay valid
	if trailerCount > 0 && trailerCount != recordCount {
		result.Errors = append(result.Errors, models.ParseError{
			Line:    trailerLine,
			Message: fmt.Sprintf("trailer announces %d records, file has %d", trailerCount, recordCount),
		})
	}

	if len(result.Transactions) == 0 {
		return result, common.ErrStatementEmpty
	}

	return result, nil
}

func (p *cnab240Parser) parseFileHeader(line string, result *models.ParsedStatement) {
	result.Meta.BankCode = strings.TrimSpace(line[cnab240HeaderBankCodeStart:cnab240HeaderBankCodeEnd])
	result.Meta.CompanyName = strings.TrimSpace(line[cnab240HeaderCompanyStart:cnab240HeaderCompanyEnd])

	if generatedAt, err := time.Parse("02012006", line[cnab240HeaderDateStart:cnab240HeaderDateEnd]); err == nil {
		result.Meta.GeneratedAt = &generatedAt
	}
}

func (p *cnab240Parser) parseSegmentE(line string, lineNo int, result *models.ParsedStatement) (*models.BankTransaction, *models.ParseError) {
	postedAt, err := time.Parse("02012006", line[cnab240DateStart:cnab240DateEnd])
	if err != nil {
		return nil, &models.ParseError{Line: lineNo, Message: "invalid posting date"}
	}

	amount, err := parseCentsAmount(line[cnab240AmountStart:cnab240AmountEnd])
	if err != nil {
		return nil, &models.ParseError{Line: lineNo, Message: "invalid amount"}
	}

	var direction models.Direction
	switch line[cnab240DirectionIdx] {
	case 'C':
		direction = models.DirectionCredit
	case 'D':
		direction = models.DirectionDebit
	default:
		return nil, &models.ParseError{Line: lineNo, Message: "invalid debit/credit indicator"}
	}

	if result.Meta.AccountID == "" {
		agency := strings.TrimSpace(line[cnab240AgencyStart:cnab240AgencyEnd])
		account := strings.TrimSpace(line[cnab240AccountStart:cnab240AccountEnd])
		result.Meta.AccountID = fmt.Sprintf("%s-%s", agency, account)
	}

	return &models.BankTransaction{
		Date:           postedAt,
		Direction:      direction,
		Amount:         amount,
		Category:       strings.TrimSpace(line[cnab240CategoryStart:cnab240CategoryEnd]),
		HistoryCode:    strings.TrimSpace(line[cnab240HistoryCodeStart:cnab240HistoryCodeEnd]),
		Description:    strings.TrimSpace(line[cnab240HistoryTextStart:cnab240HistoryTextEnd]),
		DocumentNumber: strings.TrimSpace(line[cnab240DocNumberStart:cnab240DocNumberEnd]),
		Line:           lineNo,
	}, nil
}

// parseCentsAmount reads a zero-padded integer amount in cents.
func parseCentsAmount(raw string) (decimal.Decimal, error) {
	cents, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return decimal.Decimal{}, err
	}

	return decimal.New(cents, -2), nil
}
