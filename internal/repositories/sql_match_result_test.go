package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/habitado/go-condo-billing/internal/common"
	"github.com/habitado/go-condo-billing/internal/config"
	"github.com/habitado/go-condo-billing/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestMatchResultRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(matchResultTestSuite))
}

type matchResultTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    MatchResultRepository
}

func (suite *matchResultTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB

	suite.t = suite.T()
	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetMatchResultRepository()
}

func (suite *matchResultTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
	defer suite.readDB.Close()
}

func matchResultRowColumns() []string {
	return []string{
		"id", "runId", "line", "transactionAt", "direction", "amount",
		"description", "reference", "invoiceNumber", "method", "confidence",
		"status", "alternates", "detail", "decidedBy", "decidedAt",
		"createdAt", "updatedAt",
	}
}

func addMatchResultRow(rows *sqlmock.Rows, id string) *sqlmock.Rows {
	return rows.AddRow(
		id, "RUN-1", 3, time.Now(), "credit", "850.00",
		"PIX RECEB MARIA SOUZA", "", "INV-0001", "exact_reference", 0.97,
		"suggested", []byte(`[]`), "", "", nil,
		time.Now(), time.Now(),
	)
}

func (suite *matchResultTestSuite) TestRepository_BulkCreate() {
	testCases := []struct {
		name    string
		results []models.MatchResult
		wantErr bool
		doMock  func()
	}{
		{
			name: "test success",
			results: []models.MatchResult{
				{ID: "MAT-1", RunID: "RUN-1", Line: 3},
				{ID: "MAT-2", RunID: "RUN-1", Line: 4},
			},
			doMock: func() {
				suite.mock.
					ExpectExec("INSERT INTO match_results").
					WillReturnResult(sqlmock.NewResult(0, 2))
			},
		},
		{
			name:    "empty input skips the insert",
			results: nil,
			doMock:  func() {},
		},
		{
			name:    "test error db",
			results: []models.MatchResult{{ID: "MAT-1", RunID: "RUN-1"}},
			doMock: func() {
				suite.mock.
					ExpectExec("INSERT INTO match_results").
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.doMock()

			err := suite.repo.BulkCreate(context.Background(), tt.results)
			assert.Equal(t, tt.wantErr, err != nil)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *matchResultTestSuite) TestRepository_DeleteByRun() {
	suite.t.Run("test success", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(queryMatchResultDeleteByRun)).
			WillReturnResult(sqlmock.NewResult(0, 5))

		err := suite.repo.DeleteByRun(context.Background(), "RUN-1")
		assert.NoError(t, err)

		if err = suite.mock.ExpectationsWereMet(); err != nil {
			t.Errorf("there were unfulfilled expectations: %s", err)
		}
	})

	suite.t.Run("test error db", func(t *testing.T) {
		suite.mock.
			ExpectExec(regexp.QuoteMeta(queryMatchResultDeleteByRun)).
			WillReturnError(assert.AnError)

		err := suite.repo.DeleteByRun(context.Background(), "RUN-1")
		assert.Error(t, err)

		if err = suite.mock.ExpectationsWereMet(); err != nil {
			t.Errorf("there were unfulfilled expectations: %s", err)
		}
	})
}

func (suite *matchResultTestSuite) TestRepository_GetByID() {
	testCases := []struct {
		name    string
		wantErr error
		doMock  func()
	}{
		{
			name: "test success",
			doMock: func() {
				rows := addMatchResultRow(sqlmock.NewRows(matchResultRowColumns()), "MAT-1")
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryMatchResultGetByID)).
					WillReturnRows(rows)
			},
		},
		{
			name: "test data not found",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryMatchResultGetByID)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: common.ErrDataNotFound,
		},
	}

	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.doMock()

			_, err := suite.repo.GetByID(context.Background(), "MAT-1")
			assert.ErrorIs(t, err, tt.wantErr)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *matchResultTestSuite) TestRepository_GetSuggestionsByRun() {
	testCases := []struct {
		name    string
		wantErr bool
		doMock  func()
	}{
		{
			name: "success get suggestions",
			doMock: func() {
				rows := sqlmock.NewRows(matchResultRowColumns())
				rows = addMatchResultRow(rows, "MAT-1")
				rows = addMatchResultRow(rows, "MAT-2")
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryMatchResultGetSuggestionsByRun)).
					WillReturnRows(rows)
			},
		},
		{
			name: "failed scan row",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryMatchResultGetSuggestionsByRun)).
					WillReturnRows(sqlmock.NewRows([]string{"InvalidColumn"}).AddRow(nil))
			},
			wantErr: true,
		},
		{
			name: "failed from db",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryMatchResultGetSuggestionsByRun)).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			_, err := suite.repo.GetSuggestionsByRun(context.Background(), "RUN-1")
			assert.Equal(t, tc.wantErr, err != nil)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *matchResultTestSuite) TestRepository_Decide() {
	testCases := []struct {
		name    string
		wantErr error
		doMock  func()
	}{
		{
			name: "test success",
			doMock: func() {
				rows := addMatchResultRow(sqlmock.NewRows(matchResultRowColumns()), "MAT-1")
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryMatchResultDecide)).
					WillReturnRows(rows)
			},
		},
		{
			name: "already decided row is not touched",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryMatchResultDecide)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: common.ErrDataNotFound,
		},
	}

	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.doMock()

			_, err := suite.repo.Decide(context.Background(), "MAT-1", models.MatchOutcomeApproved, "sindico@example.com")
			assert.ErrorIs(t, err, tt.wantErr)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}
