package invoice

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/habitado/go-condo-billing/internal/common/constants"
	"github.com/habitado/go-condo-billing/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fixtureInvoice(t *testing.T, number string, status models.InvoiceStatus) models.Invoice {
	t.Helper()

	now, err := time.Parse(time.RFC3339, "2023-10-25T08:08:26Z")
	require.NoError(t, err)
	dueDate, err := time.Parse(time.RFC3339, "2023-11-10T00:00:00Z")
	require.NoError(t, err)
	amount, err := models.NewDecimal("850.00")
	require.NoError(t, err)

	return models.Invoice{
		Number:         number,
		UnitID:         "UNT-1",
		CondoID:        "CONDO-SOLARDASACACIAS",
		Amount:         amount,
		DueDate:        &dueDate,
		Status:         status,
		PayerName:      "Maria Souza",
		OurNumber:      "10900000123",
		ReferenceMonth: "2023-11",
		CreatedAt:      &now,
		UpdatedAt:      &now,
	}
}

func TestHandlerCreateInvoice(t *testing.T) {
	testHelper := invoiceTestHelper(t)

	tests := []struct {
		name     string
		req      models.CreateInvoiceRequest
		wantCode int
		wantBody string
		doMock   func(req models.CreateInvoiceRequest)
	}{
		{
			name: "happy path",
			req: models.CreateInvoiceRequest{
				UnitID:         "UNT-1",
				ReferenceMonth: "2023-11",
				Amount:         models.NewDecimalFromExternal(decimal.RequireFromString("850.00")),
				DueDate:        "2023-11-10",
			},
			wantCode: nethttp.StatusCreated,
			wantBody: `"number":"INV-1"`,
			doMock: func(req models.CreateInvoiceRequest) {
				testHelper.mockCacheRepository.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return("", nil)

				in, err := req.ToCreateInvoiceIn()
				require.NoError(t, err)
				created := fixtureInvoice(t, "INV-1", models.InvoiceStatusPending)
				testHelper.mockInvoiceService.EXPECT().
					Create(gomock.Any(), in).
					Return(&created, nil)

				testHelper.mockCacheRepository.EXPECT().
					Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "failed - validation error",
			req: models.CreateInvoiceRequest{
				UnitID:         "UNT-1",
				ReferenceMonth: "november",
				Amount:         models.NewDecimalFromExternal(decimal.RequireFromString("850.00")),
				DueDate:        "2023-11-10",
			},
			wantCode: nethttp.StatusUnprocessableEntity,
			wantBody: `"status":"error"`,
			doMock: func(req models.CreateInvoiceRequest) {
				testHelper.mockCacheRepository.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return("", nil)

				testHelper.mockCacheRepository.EXPECT().
					Del(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "failed - duplicate invoice",
			req: models.CreateInvoiceRequest{
				UnitID:         "UNT-1",
				ReferenceMonth: "2023-11",
				Amount:         models.NewDecimalFromExternal(decimal.RequireFromString("850.00")),
				DueDate:        "2023-11-10",
			},
			wantCode: nethttp.StatusConflict,
			wantBody: `{"status":"error","code":"CB-409","message":"invoice already exists for the reference month"}`,
			doMock: func(req models.CreateInvoiceRequest) {
				testHelper.mockCacheRepository.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return("", nil)

				in, err := req.ToCreateInvoiceIn()
				require.NoError(t, err)
				testHelper.mockInvoiceService.EXPECT().
					Create(gomock.Any(), in).
					Return(nil, models.GetErrMap(models.ErrKeyDuplicateInvoice))

				testHelper.mockCacheRepository.EXPECT().
					Del(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.req)
			}

			var b bytes.Buffer
			errEncode := json.NewEncoder(&b).Encode(tt.req)
			require.NoError(t, errEncode)

			req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/invoices", &b)
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			req.Header.Set("X-Idempotency-Key", uuid.New().String())

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.Contains(t, strings.TrimSuffix(string(body), "\n"), tt.wantBody)
		})
	}
}

func TestHandlerGetAllInvoices(t *testing.T) {
	testHelper := invoiceTestHelper(t)

	tests := []struct {
		name      string
		urlCalled string
		wantCode  int
		wantBody  string
		doMock    func()
	}{
		{
			name:      "happy path",
			urlCalled: "/api/v1/invoices?condoId=CONDO-SOLARDASACACIAS&status=pending",
			wantCode:  nethttp.StatusOK,
			wantBody:  `"kind":"collection"`,
			doMock: func() {
				invoices := []models.Invoice{
					fixtureInvoice(t, "INV-1", models.InvoiceStatusPending),
					fixtureInvoice(t, "INV-2", models.InvoiceStatusPending),
				}
				testHelper.mockInvoiceService.EXPECT().
					GetList(gomock.Any(), gomock.AssignableToTypeOf(models.InvoiceFilterOptions{})).
					Return(invoices, 2, nil)
			},
		},
		{
			name:      "failed - invalid status filter",
			urlCalled: "/api/v1/invoices?status=unknown",
			wantCode:  nethttp.StatusBadRequest,
			wantBody:  `"code":"CB-422"`,
		},
		{
			name:      "failed - error service",
			urlCalled: "/api/v1/invoices",
			wantCode:  nethttp.StatusInternalServerError,
			wantBody:  `"message":"assert.AnError general error for testing"`,
			doMock: func() {
				testHelper.mockInvoiceService.EXPECT().
					GetList(gomock.Any(), gomock.AssignableToTypeOf(models.InvoiceFilterOptions{})).
					Return(nil, 0, assert.AnError)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			req := httptest.NewRequest(nethttp.MethodGet, tt.urlCalled, nil)

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.Contains(t, string(body), tt.wantBody)
		})
	}
}

func TestHandlerGetOneInvoice(t *testing.T) {
	testHelper := invoiceTestHelper(t)

	tests := []struct {
		name     string
		number   string
		wantCode int
		wantBody string
		doMock   func(number string)
	}{
		{
			name:     "happy path",
			number:   "INV-1",
			wantCode: nethttp.StatusOK,
			wantBody: `"referenceMonth":"2023-11"`,
			doMock: func(number string) {
				found := fixtureInvoice(t, number, models.InvoiceStatusPending)
				testHelper.mockInvoiceService.EXPECT().
					GetByNumber(gomock.Any(), number).
					Return(&found, nil)
			},
		},
		{
			name:     "failed - invoice not found",
			number:   "INV-404",
			wantCode: nethttp.StatusNotFound,
			wantBody: `{"status":"error","code":"CB-404","message":"invoice not found"}`,
			doMock: func(number string) {
				testHelper.mockInvoiceService.EXPECT().
					GetByNumber(gomock.Any(), number).
					Return(nil, models.GetErrMap(models.ErrKeyInvoiceNotFound))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.number)
			}

			req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/invoices/"+tt.number, nil)

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.Contains(t, strings.TrimSuffix(string(body), "\n"), tt.wantBody)
		})
	}
}

func TestHandlerRegisterPayment(t *testing.T) {
	testHelper := invoiceTestHelper(t)

	tests := []struct {
		name     string
		number   string
		req      models.RegisterPaymentRequest
		wantCode int
		wantBody string
		doMock   func(number string)
	}{
		{
			name:   "happy path",
			number: "INV-1",
			req: models.RegisterPaymentRequest{
				PaidAt: "2023-11-09T14:02:11-03:00",
				PaidBy: "sindico@example.com",
			},
			wantCode: nethttp.StatusOK,
			wantBody: `"status":"paid"`,
			doMock: func(number string) {
				testHelper.mockCacheRepository.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return("", nil)

				paid := fixtureInvoice(t, number, models.InvoiceStatusPaid)
				testHelper.mockInvoiceService.EXPECT().
					RegisterPayment(gomock.Any(), gomock.AssignableToTypeOf(models.RegisterPaymentRequest{})).
					DoAndReturn(func(_ context.Context, req models.RegisterPaymentRequest) (*models.Invoice, error) {
						assert.Equal(t, number, req.Number)
						return &paid, nil
					})

				testHelper.mockCacheRepository.EXPECT().
					Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name:     "failed - invoice already paid",
			number:   "INV-2",
			req:      models.RegisterPaymentRequest{},
			wantCode: nethttp.StatusConflict,
			wantBody: `{"status":"error","code":"CB-409","message":"invoice already paid"}`,
			doMock: func(number string) {
				testHelper.mockCacheRepository.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return("", nil)

				testHelper.mockInvoiceService.EXPECT().
					RegisterPayment(gomock.Any(), gomock.AssignableToTypeOf(models.RegisterPaymentRequest{})).
					Return(nil, models.GetErrMap(models.ErrKeyInvoiceAlreadyPaid))

				testHelper.mockCacheRepository.EXPECT().
					Del(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.number)
			}

			var b bytes.Buffer
			errEncode := json.NewEncoder(&b).Encode(tt.req)
			require.NoError(t, errEncode)

			req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/invoices/"+tt.number+"/payments", &b)
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			req.Header.Set("X-Idempotency-Key", uuid.New().String())

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.Contains(t, strings.TrimSuffix(string(body), "\n"), tt.wantBody)
		})
	}
}

func TestHandlerCancelInvoice(t *testing.T) {
	testHelper := invoiceTestHelper(t)

	tests := []struct {
		name     string
		number   string
		req      models.CancelInvoiceRequest
		wantCode int
		wantBody string
		doMock   func(number string)
	}{
		{
			name:     "happy path",
			number:   "INV-1",
			req:      models.CancelInvoiceRequest{Reason: "unit vacated"},
			wantCode: nethttp.StatusOK,
			wantBody: `"status":"cancelled"`,
			doMock: func(number string) {
				cancelled := fixtureInvoice(t, number, models.InvoiceStatusCancelled)
				cancelled.CancelReason = "unit vacated"
				testHelper.mockInvoiceService.EXPECT().
					Cancel(gomock.Any(), models.CancelInvoiceRequest{Number: number, Reason: "unit vacated"}).
					Return(&cancelled, nil)
			},
		},
		{
			name:     "failed - paid invoice cannot be cancelled",
			number:   "INV-2",
			req:      models.CancelInvoiceRequest{},
			wantCode: nethttp.StatusConflict,
			wantBody: `{"status":"error","code":"CB-409","message":"invoice status transition not allowed"}`,
			doMock: func(number string) {
				testHelper.mockInvoiceService.EXPECT().
					Cancel(gomock.Any(), models.CancelInvoiceRequest{Number: number}).
					Return(nil, models.GetErrMap(models.ErrKeyInvalidStatusTransition))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.number)
			}

			var b bytes.Buffer
			errEncode := json.NewEncoder(&b).Encode(tt.req)
			require.NoError(t, errEncode)

			req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/invoices/"+tt.number+"/cancel", &b)
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.Contains(t, strings.TrimSuffix(string(body), "\n"), tt.wantBody)
		})
	}
}

func TestHandlerDownloadInvoices(t *testing.T) {
	testHelper := invoiceTestHelper(t)

	tests := []struct {
		name      string
		urlCalled string
		wantCode  int
		wantBody  string
		doMock    func()
	}{
		{
			name:      "happy path",
			urlCalled: "/api/v1/invoices/download?condoId=CONDO-SOLARDASACACIAS",
			wantCode:  nethttp.StatusOK,
			wantBody:  "INV-1",
			doMock: func() {
				testHelper.mockInvoiceService.EXPECT().
					DownloadInvoiceFileCSV(gomock.Any(), gomock.AssignableToTypeOf(models.DownloadInvoiceRequest{})).
					DoAndReturn(func(_ context.Context, req models.DownloadInvoiceRequest) error {
						w := csv.NewWriter(req.Writer)
						if err := w.Write(constants.InvoiceCSVHeaders); err != nil {
							return err
						}
						if err := w.Write(fixtureInvoice(t, "INV-1", models.InvoiceStatusPending).ToCSVRow()); err != nil {
							return err
						}
						w.Flush()
						return w.Error()
					})
			},
		},
		{
			name:      "failed - too many rows",
			urlCalled: "/api/v1/invoices/download",
			wantCode:  nethttp.StatusRequestEntityTooLarge,
			wantBody:  `"code":"CB-413"`,
			doMock: func() {
				testHelper.mockInvoiceService.EXPECT().
					DownloadInvoiceFileCSV(gomock.Any(), gomock.AssignableToTypeOf(models.DownloadInvoiceRequest{})).
					Return(models.GetErrMap(models.ErrKeyFileTooLarge))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			req := httptest.NewRequest(nethttp.MethodGet, tt.urlCalled, nil)

			rec := httptest.NewRecorder()
			testHelper.router.ServeHTTP(rec, req)

			resp := rec.Result()
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			require.Equal(t, tt.wantCode, resp.StatusCode)
			require.Contains(t, string(body), tt.wantBody)

			if tt.wantCode == nethttp.StatusOK {
				require.Equal(t, "text/csv", resp.Header.Get(echo.HeaderContentType))
			}
		})
	}
}
