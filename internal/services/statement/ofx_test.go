package statement

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/models"
)

const sampleOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<DTSERVER>20231110120000[-3:BRT]
<FI><ORG>BANCO ITAU SA</FI>
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<STMTRS>
<CURDEF>BRL
<BANKACCTFROM>
<BANKID>341
<ACCTID>0001-123456
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20231101
<DTEND>20231110
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20231109
<TRNAMT>850.00
<FITID>FIT-001
<NAME>PIX RECEBIDO MARIA SOUZA
<MEMO>APTO 101
</STMTTRN>
<STMTTRN>
<TRNTYPE>PAYMENT
<DTPOSTED>20231110080000[-03:EST]
<TRNAMT>-120,50
<FITID>FIT-002
<CHECKNUM>000123
<NAME>TARIFA COBRANCA
</STMTTRN>
<STMTTRN>
<TRNTYPE>CREDIT
<TRNAMT>99.90
<FITID>FIT-003
</STMTTRN>
</BANKTRANLIST>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>
`

func TestOFXParser_Parse(t *testing.T) {
	t.Parallel()

	parser := &ofxParser{}

	t.Run("full statement", func(t *testing.T) {
		t.Parallel()

		out, err := parser.Parse(context.Background(), strings.NewReader(sampleOFX))
		require.NoError(t, err)
		require.NotNil(t, out)

		assert.Equal(t, models.FormatOFX, out.Format)
		assert.Equal(t, "341", out.Meta.BankCode)
		assert.Equal(t, "0001-123456", out.Meta.AccountID)
		assert.Equal(t, "BRL", out.Meta.Currency)
		assert.Equal(t, "BANCO ITAU SA", out.Meta.CompanyName)

		require.NotNil(t, out.Meta.PeriodStart)
		assert.Equal(t, time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC), *out.Meta.PeriodStart)
		require.NotNil(t, out.Meta.PeriodEnd)
		assert.Equal(t, time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC), *out.Meta.PeriodEnd)
		require.NotNil(t, out.Meta.GeneratedAt)
		assert.Equal(t, time.Date(2023, 11, 10, 12, 0, 0, 0, time.UTC), *out.Meta.GeneratedAt)

		require.Len(t, out.Transactions, 2)

		credit := out.Transactions[0]
		assert.Equal(t, time.Date(2023, 11, 9, 0, 0, 0, 0, time.UTC), credit.Date)
		assert.Equal(t, models.DirectionCredit, credit.Direction)
		assert.Equal(t, "850.00", credit.Amount.StringFixed(2))
		assert.Equal(t, "PIX RECEBIDO MARIA SOUZA APTO 101", credit.Description)
		assert.Equal(t, "FIT-001", credit.ReferenceID)

		debit := out.Transactions[1]
		assert.Equal(t, time.Date(2023, 11, 10, 8, 0, 0, 0, time.UTC), debit.Date)
		assert.Equal(t, models.DirectionDebit, debit.Direction)
		assert.Equal(t, "120.50", debit.Amount.StringFixed(2))
		assert.Equal(t, "TARIFA COBRANCA", debit.Description)
		assert.Equal(t, "000123", debit.DocumentNumber)

		// third STMTTRN has no DTPOSTED and must be reported, not fatal
		require.Len(t, out.Errors, 1)
		assert.Equal(t, "missing or invalid DTPOSTED", out.Errors[0].Message)
	})

	t.Run("unclosed trailing record is kept", func(t *testing.T) {
		t.Parallel()

		raw := "<OFX><BANKTRANLIST><STMTTRN><TRNTYPE>CREDIT<DTPOSTED>20231109<TRNAMT>10.00<FITID>A1"
		out, err := parser.Parse(context.Background(), strings.NewReader(raw))
		require.NoError(t, err)
		require.Len(t, out.Transactions, 1)
		assert.Equal(t, "A1", out.Transactions[0].ReferenceID)
	})

	t.Run("no transactions", func(t *testing.T) {
		t.Parallel()

		out, err := parser.Parse(context.Background(), strings.NewReader("OFXHEADER:100\n<OFX>\n</OFX>\n"))
		assert.ErrorIs(t, err, common.ErrStatementEmpty)
		require.NotNil(t, out)
		assert.Empty(t, out.Transactions)
	})
}

func Test_buildOFXTransaction(t *testing.T) {
	t.Parallel()

	type args struct {
		values map[string]string
	}
	tests := []struct {
		name          string
		args          args
		wantDirection models.Direction
		wantErr       string
	}{
		{
			name:          "unsigned amount with debit type",
			args:          args{values: map[string]string{"DTPOSTED": "20231109", "TRNAMT": "50.00", "TRNTYPE": "FEE"}},
			wantDirection: models.DirectionDebit,
		},
		{
			name:          "plus prefix overrides debit type",
			args:          args{values: map[string]string{"DTPOSTED": "20231109", "TRNAMT": "+50.00", "TRNTYPE": "DEBIT"}},
			wantDirection: models.DirectionCredit,
		},
		{
			name:          "unsigned amount with credit type",
			args:          args{values: map[string]string{"DTPOSTED": "20231109", "TRNAMT": "50.00", "TRNTYPE": "CREDIT"}},
			wantDirection: models.DirectionCredit,
		},
		{
			name:    "missing amount",
			args:    args{values: map[string]string{"DTPOSTED": "20231109"}},
			wantErr: "missing or invalid TRNAMT",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			txn, parseErr := buildOFXTransaction(tt.args.values, 1)
			if tt.wantErr != "" {
				require.NotNil(t, parseErr)
				assert.Equal(t, tt.wantErr, parseErr.Message)
				return
			}

			require.Nil(t, parseErr)
			assert.Equal(t, tt.wantDirection, txn.Direction)
		})
	}
}

func Test_parseOFXDate(t *testing.T) {
	t.Parallel()

	type args struct {
		raw string
	}
	tests := []struct {
		name    string
		args    args
		want    time.Time
		wantErr bool
	}{
		{
			name: "date only",
			args: args{raw: "20231109"},
			want: time.Date(2023, 11, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "date time with timezone suffix",
			args: args{raw: "20231109153000[-03:BRT]"},
			want: time.Date(2023, 11, 9, 15, 30, 0, 0, time.UTC),
		},
		{
			name: "date time with milliseconds",
			args: args{raw: "20231109153000.000"},
			want: time.Date(2023, 11, 9, 15, 30, 0, 0, time.UTC),
		},
		{
			name:    "empty",
			args:    args{raw: ""},
			wantErr: true,
		},
		{
			name:    "too short",
			args:    args{raw: "2023"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseOFXDate(tt.args.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_parseOFXAmount(t *testing.T) {
	t.Parallel()

	type args struct {
		raw string
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			name: "dot separator",
			args: args{raw: "850.00"},
			want: "850.00",
		},
		{
			name: "comma separator",
			args: args{raw: "-120,50"},
			want: "-120.50",
		},
		{
			name: "thousands dot with comma decimals",
			args: args{raw: "1.234,56"},
			want: "1234.56",
		},
		{
			name:    "not a number",
			args:    args{raw: "abc"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseOFXAmount(tt.args.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.StringFixed(2))
		})
	}
}
