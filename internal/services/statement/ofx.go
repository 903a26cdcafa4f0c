package statement

import (
	"bufio"
	"context"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"
)

// ofxParser reads OFX 1.x (SGML) and 2.x (XML) statements. Leaf tags may be
// unclosed, so values are scanned up to the next tag or line end instead of
// going through an XML parser.
type ofxParser struct{}

var _ Parser = (*ofxParser)(nil)

// fallback direction for transactions whose TRNAMT carries no sign
var ofxDebitTypes = map[string]bool{
	"DEBIT":     true,
	"FEE":       true,
	"SRVCHG":    true,
	"PAYMENT":   true,
	"REPEATPMT": true,
	"ATM":       true,
	"CHECK":     true,
	"CASH":      true,
}

func (p *ofxParser) Parse(ctx context.Context, r io.Reader) (*models.ParsedStatement, error) {
	result := &models.ParsedStatement{Format: models.FormatOFX}

	scanner := bufio.NewScanner(r)
	bufferSize := 1024 * 512
	buffer := make([]byte, bufferSize)
	scanner.Buffer(buffer, bufferSize)

	var (
		lineNo  int
		inTrn   bool
		inAcct  bool
		trnLine int
		values  map[string]string
	)

	flush := func() {
		txn, parseErr := buildOFXTransaction(values, trnLine)
		if parseErr != nil {
			result.Errors = append(result.Errors, *parseErr)
			return
		}
		result.Transactions = append(result.Transactions, *txn)
	}

	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || !strings.Contains(text, "<") {
			// OFX 1.x header lines (OFXHEADER:100 and friends) and blanks
			continue
		}

		for tag, value, ok := nextOFXTag(&text); ok; tag, value, ok = nextOFXTag(&text) {
			switch tag {
			case "STMTTRN":
				inTrn = true
				trnLine = lineNo
				values = map[string]string{}
			case "/STMTTRN":
				if inTrn {
					flush()
				}
				inTrn = false
			case "BANKACCTFROM", "CCACCTFROM":
				inAcct = true
			case "/BANKACCTFROM", "/CCACCTFROM":
				inAcct = false
			default:
				if strings.HasPrefix(tag, "/") || value == "" {
					continue
				}

				if inTrn {
					if _, exists := values[tag]; !exists {
						values[tag] = value
					}
					continue
				}

				switch tag {
				case "ACCTID":
					if inAcct {
						result.Meta.AccountID = value
					}
				case "BANKID":
					if inAcct {
						result.Meta.BankCode = value
					}
				case "CURDEF":
					result.Meta.Currency = value
				case "ORG":
					result.Meta.CompanyName = value
				case "DTSTART":
					if t, err := parseOFXDate(value); err == nil {
						result.Meta.PeriodStart = &t
					}
				case "DTEND":
					if t, err := parseOFXDate(value); err == nil {
						result.Meta.PeriodEnd = &t
					}
				case "DTSERVER":
					if t, err := parseOFXDate(value); err == nil {
						result.Meta.GeneratedAt = &t
					}
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// tolerate a file whose last STMTTRN never closed
	if inTrn {
		flush()
	}

	if len(result.Transactions) == 0 {
		return result, common.ErrStatementEmpty
	}

	return result, nil
}

// nextOFXTag consumes the next <TAG>value pair from the remaining line. The
// value runs up to the following tag or the line end.
func nextOFXTag(text *string) (tag, value string, ok bool) {
	s := *text

	open := strings.Index(s, "<")
	if open < 0 {
		return "", "", false
	}

	closing := strings.Index(s[open:], ">")
	if closing < 0 {
		*text = ""
		return "", "", false
	}

	tag = strings.ToUpper(strings.TrimSpace(s[open+1 : open+closing]))

	rest := s[open+closing+1:]
	if next := strings.Index(rest, "<"); next >= 0 {
		value = rest[:next]
		*text = rest[next:]
	} else {
		value = rest
		*text = ""
	}

	return tag, strings.TrimSpace(value), tag != ""
}

func buildOFXTransaction(values map[string]string, line int) (*models.BankTransaction, *models.ParseError) {
	postedAt, err := parseOFXDate(values["DTPOSTED"])
	if err != nil {
		return nil, &models.ParseError{Line: line, Message: "missing or invalid DTPOSTED"}
	}

	rawAmount := values["TRNAMT"]
	amount, err := parseOFXAmount(rawAmount)
	if err != nil {
		return nil, &models.ParseError{Line: line, Message: "missing or invalid TRNAMT"}
	}

	direction := models.DirectionCredit
	if strings.HasPrefix(strings.TrimSpace(rawAmount), "-") {
		direction = models.DirectionDebit
	} else if !strings.HasPrefix(strings.TrimSpace(rawAmount), "+") && ofxDebitTypes[strings.ToUpper(values["TRNTYPE"])] {
		direction = models.DirectionDebit
	}

	description := strings.TrimSpace(strings.Join([]string{values["NAME"], values["MEMO"]}, " "))

	document := values["CHECKNUM"]
	if document == "" {
		document = values["REFNUM"]
	}

	return &models.BankTransaction{
		Date:           postedAt,
		Direction:      direction,
		Amount:         amount.Abs(),
		Description:    description,
		ReferenceID:    values["FITID"],
		DocumentNumber: document,
		Line:           line,
	}, nil
}

// parseOFXDate reads YYYYMMDD or YYYYMMDDHHMMSS, ignoring the optional
// [gmt offset:tz] suffix and any sub-second digits.
func parseOFXDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if bracket := strings.Index(raw, "["); bracket >= 0 {
		raw = raw[:bracket]
	}

	digits := raw
	for i, r := range raw {
		if r < '0' || r > '9' {
			digits = raw[:i]
			break
		}
	}

	if len(digits) >= 14 {
		return time.Parse("20060102150405", digits[:14])
	}
	if len(digits) >= 8 {
		return time.Parse("20060102", digits[:8])
	}

	return time.Time{}, common.ErrInvalidFormatDate
}

// parseOFXAmount accepts a dot or comma decimal separator.
func parseOFXAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)

	if strings.Contains(raw, ",") {
		if strings.Contains(raw, ".") {
			// 1.234,56 style: dot is the thousands separator
			raw = strings.ReplaceAll(raw, ".", "")
		}
		raw = strings.ReplaceAll(raw, ",", ".")
	}

	return decimal.NewFromString(raw)
}
