package reconciliation

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/habitado/go-condo-billing/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func fixtureRun(t *testing.T, id string, status models.RunStatus) models.ReconciliationRun {
	t.Helper()

	now, err := time.Parse(time.RFC3339, "2023-11-09T23:41:02Z")
	require.NoError(t, err)
	applied, err := models.NewDecimal("80750.00")
	require.NoError(t, err)

	return models.ReconciliationRun{
		ID:               id,
		CondoID:          "CONDO-SOLARDASACACIAS",
		BankAccountID:    "0001-123456",
		Kind:             models.RunKindStatement,
		Format:           models.FormatOFX,
		FileName:         "extrato-2023-11.ofx",
		Status:           status,
		TransactionCount: 120,
		MatchedCount:     95,
		SuggestedCount:   12,
		UnmatchedCount:   13,
		AppliedAmount:    applied,
		CreatedAt:        &now,
		UpdatedAt:        &now,
	}
}

func buildUploadForm(t *testing.T, fields map[string]string, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	var b bytes.Buffer
	writer := multipart.NewWriter(&b)

	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if fileName != "" {
		part, err := writer.CreateFormFile("statementFile", fileName)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return &b, writer.FormDataContentType()
}

func TestHandlerUploadStatement(t *testing.T) {
	testHelper := reconciliationTestHelper(t)

	tests := []struct {
		name     string
		fields   map[string]string
		fileName string
		wantCode int
		wantBody string
		doMock   func()
	}{
		{
			name: "happy path",
			fields: map[string]string{
				"condoId":       "CONDO-SOLARDASACACIAS",
				"bankAccountId": "0001-123456",
				"requestedBy":   "sindico@example.com",
			},
			fileName: "extrato-2023-11.ofx",
			wantCode: nethttp.StatusAccepted,
			wantBody: `{"kind":"reconciliationRun","id":"RUN-1","message":"Processing"}`,
			doMock: func() {
				testHelper.mockReconciliationService.EXPECT().
					UploadStatement(gomock.Any(), gomock.AssignableToTypeOf(&models.UploadStatementRequest{})).
					DoAndReturn(func(_ context.Context, req *models.UploadStatementRequest) (*models.UploadStatementResponse, error) {
						assert.Equal(t, "CONDO-SOLARDASACACIAS", req.CondoID)
						assert.Equal(t, "extrato-2023-11.ofx", req.StatementFile.Filename)
						return models.NewUploadStatementResponse("RUN-1"), nil
					})
			},
		},
		{
			name: "failed - missing file",
			fields: map[string]string{
				"condoId":       "CONDO-SOLARDASACACIAS",
				"bankAccountId": "0001-123456",
			},
			wantCode: nethttp.StatusBadRequest,
			wantBody: `"status":"error"`,
		},
		{
			name: "failed - missing condo id",
			fields: map[string]string{
				"bankAccountId": "0001-123456",
			},
			fileName: "extrato-2023-11.ofx",
			wantCode: nethttp.StatusUnprocessableEntity,
			wantBody: `"status":"error"`,
		},
		{
			name: "failed - duplicate statement file",
			fields: map[string]string{
				"condoId":       "CONDO-SOLARDASACACIAS",
				"bankAccountId": "0001-123456",
			},
			fileName: "extrato-2023-11.ofx",
			wantCode: nethttp.StatusConflict,
			wantBody: `{"status":"error","code":"CB-409","message":"statement file already processed"}`,
			doMock: func() {
				testHelper.mockReconciliationService.EXPECT().
					UploadStatement(gomock.Any(), gomock.AssignableToTypeOf(&models.UploadStatementRequest{})).
					Return(nil, models.GetErrMap(models.ErrKeyDuplicateStatementFile))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			form, contentType := buildUploadForm(t, tt.fields, tt.fileName, []byte("OFXHEADER:100"))

			req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/reconciliations", form)
			req.Header.Set(echo.HeaderContentType, contentType)

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

func TestHandlerGetAllRuns(t *testing.T) {
	testHelper := reconciliationTestHelper(t)

	tests := []struct {
		name      string
		urlCalled string
		wantCode  int
		wantBody  string
		doMock    func()
	}{
		{
			name:      "happy path",
			urlCalled: "/api/v1/reconciliations?condoId=CONDO-SOLARDASACACIAS&status=SUCCESS",
			wantCode:  nethttp.StatusOK,
			wantBody:  `"kind":"collection"`,
			doMock: func() {
				runs := []models.ReconciliationRun{
					fixtureRun(t, "RUN-1", models.RunStatusSuccess),
					fixtureRun(t, "RUN-2", models.RunStatusSuccess),
				}
				testHelper.mockReconciliationService.EXPECT().
					GetListRuns(gomock.Any(), gomock.AssignableToTypeOf(models.RunFilterOptions{})).
					Return(runs, 2, nil)
			},
		},
		{
			name:      "failed - invalid status filter",
			urlCalled: "/api/v1/reconciliations?status=DONE",
			wantCode:  nethttp.StatusBadRequest,
			wantBody:  `"code":"CB-422"`,
		},
		{
			name:      "failed - error service",
			urlCalled: "/api/v1/reconciliations",
			wantCode:  nethttp.StatusInternalServerError,
			wantBody:  `"message":"assert.AnError general error for testing"`,
			doMock: func() {
				testHelper.mockReconciliationService.EXPECT().
					GetListRuns(gomock.Any(), gomock.AssignableToTypeOf(models.RunFilterOptions{})).
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

func TestHandlerGetOneRun(t *testing.T) {
	testHelper := reconciliationTestHelper(t)

	tests := []struct {
		name     string
		runID    string
		wantCode int
		wantBody string
		doMock   func(runID string)
	}{
		{
			name:     "happy path with report url",
			runID:    "RUN-1",
			wantCode: nethttp.StatusOK,
			wantBody: `"reportFileUrl":"https://storage.googleapis.com/signed/RUN-1.csv"`,
			doMock: func(runID string) {
				run := fixtureRun(t, runID, models.RunStatusPartialMatched)
				testHelper.mockReconciliationService.EXPECT().
					GetRun(gomock.Any(), runID).
					Return(&models.ReconciliationRunDetailOut{
						ReconciliationRunOut: run.ToModelResponse(),
						ReportFileURL:        "https://storage.googleapis.com/signed/RUN-1.csv",
					}, nil)
			},
		},
		{
			name:     "failed - run not found",
			runID:    "RUN-404",
			wantCode: nethttp.StatusNotFound,
			wantBody: `{"status":"error","code":"CB-404","message":"reconciliation run not found"}`,
			doMock: func(runID string) {
				testHelper.mockReconciliationService.EXPECT().
					GetRun(gomock.Any(), runID).
					Return(nil, models.GetErrMap(models.ErrKeyRunNotFound))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.runID)
			}

			req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/reconciliations/"+tt.runID, nil)

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

func TestHandlerGetSuggestions(t *testing.T) {
	testHelper := reconciliationTestHelper(t)

	createdAt, err := time.Parse(time.RFC3339, "2023-11-09T23:41:02Z")
	require.NoError(t, err)

	tests := []struct {
		name     string
		runID    string
		wantCode int
		wantBody string
		doMock   func(runID string)
	}{
		{
			name:     "happy path",
			runID:    "RUN-1",
			wantCode: nethttp.StatusOK,
			wantBody: `"total_rows":1`,
			doMock: func(runID string) {
				testHelper.mockReconciliationService.EXPECT().
					GetSuggestions(gomock.Any(), runID).
					Return([]models.MatchResult{
						{
							ID:            "MTC-1",
							RunID:         runID,
							TransactionAt: createdAt,
							Amount:        models.NewDecimalFromExternal(decimal.RequireFromString("850.00")),
							Description:   "PIX RECEBIDO MARIA SOUZA",
							InvoiceNumber: "INV-1",
							Method:        models.MatchMethodValueDescription,
							Confidence:    0.87,
							Outcome:       models.MatchOutcomeSuggested,
							CreatedAt:     &createdAt,
						},
					}, nil)
			},
		},
		{
			name:     "failed - run not found",
			runID:    "RUN-404",
			wantCode: nethttp.StatusNotFound,
			wantBody: `"code":"CB-404"`,
			doMock: func(runID string) {
				testHelper.mockReconciliationService.EXPECT().
					GetSuggestions(gomock.Any(), runID).
					Return(nil, models.GetErrMap(models.ErrKeyRunNotFound))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock(tt.runID)
			}

			req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/reconciliations/"+tt.runID+"/suggestions", nil)

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

func TestHandlerDecideSuggestion(t *testing.T) {
	testHelper := reconciliationTestHelper(t)

	tests := []struct {
		name      string
		urlCalled string
		req       models.DecideSuggestionRequest
		wantCode  int
		wantBody  string
		doMock    func()
	}{
		{
			name:      "happy path - approve",
			urlCalled: "/api/v1/suggestions/MTC-1/approve",
			req:       models.DecideSuggestionRequest{DecidedBy: "sindico@example.com"},
			wantCode:  nethttp.StatusOK,
			wantBody:  `{"kind":"matchSuggestion","id":"MTC-1","status":"approved"}`,
			doMock: func() {
				testHelper.mockReconciliationService.EXPECT().
					DecideSuggestion(gomock.Any(), models.DecideSuggestionRequest{
						ID:        "MTC-1",
						Action:    models.SuggestionActionApprove,
						DecidedBy: "sindico@example.com",
					}).
					Return(models.NewDecideSuggestionResponse("MTC-1", models.MatchOutcomeApproved), nil)
			},
		},
		{
			name:      "happy path - reject",
			urlCalled: "/api/v1/suggestions/MTC-2/reject",
			req:       models.DecideSuggestionRequest{},
			wantCode:  nethttp.StatusOK,
			wantBody:  `{"kind":"matchSuggestion","id":"MTC-2","status":"rejected"}`,
			doMock: func() {
				testHelper.mockReconciliationService.EXPECT().
					DecideSuggestion(gomock.Any(), models.DecideSuggestionRequest{
						ID:     "MTC-2",
						Action: models.SuggestionActionReject,
					}).
					Return(models.NewDecideSuggestionResponse("MTC-2", models.MatchOutcomeRejected), nil)
			},
		},
		{
			name:      "failed - already decided",
			urlCalled: "/api/v1/suggestions/MTC-3/approve",
			req:       models.DecideSuggestionRequest{},
			wantCode:  nethttp.StatusConflict,
			wantBody:  `{"status":"error","code":"CB-409","message":"match suggestion already decided"}`,
			doMock: func() {
				testHelper.mockReconciliationService.EXPECT().
					DecideSuggestion(gomock.Any(), models.DecideSuggestionRequest{
						ID:     "MTC-3",
						Action: models.SuggestionActionApprove,
					}).
					Return(nil, models.GetErrMap(models.ErrKeySuggestionAlreadyDecided))
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.doMock != nil {
				tt.doMock()
			}

			var b bytes.Buffer
			errEncode := json.NewEncoder(&b).Encode(tt.req)
			require.NoError(t, errEncode)

			req := httptest.NewRequest(nethttp.MethodPost, tt.urlCalled, &b)
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
