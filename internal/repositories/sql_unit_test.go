package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/habitado/go-condo-billing/internal/common/cache"
	"github.com/habitado/go-condo-billing/internal/config"
	"github.com/habitado/go-condo-billing/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestUnitRepositoryTestSuite(t *testing.T) {
	t.Helper()
	suite.Run(t, new(unitTestSuite))
}

type unitTestSuite struct {
	suite.Suite
	t       *testing.T
	writeDB *sql.DB
	readDB  *sql.DB
	mock    sqlmock.Sqlmock
	repo    UnitRepository
}

func (suite *unitTestSuite) SetupTest() {
	var err error
	var cfg config.Config

	suite.writeDB, suite.mock, err = sqlmock.New()
	require.NoError(suite.T(), err)

	suite.readDB = suite.writeDB

	suite.t = suite.T()
	suite.repo = NewSQLRepository(suite.writeDB, suite.readDB, cfg).GetUnitRepository()
}

func (suite *unitTestSuite) TearDownTest() {
	defer suite.writeDB.Close()
	defer suite.readDB.Close()
}

func unitRowColumns() []string {
	return []string{
		"id", "condoId", "block", "number", "label", "ownerName",
		"ownerDocument", "email", "fraction", "monthlyFee", "active",
		"createdAt", "updatedAt",
	}
}

func addUnitRow(rows *sqlmock.Rows, id string) *sqlmock.Rows {
	return rows.AddRow(
		id, "CND-001", "A", "101", "Bloco A Apto 101", "Maria Souza",
		"12345678901", "maria@example.com", "0.0125", "850.00", true,
		time.Now(), time.Now(),
	)
}

func (suite *unitTestSuite) TestRepository_Create() {
	type args struct {
		ctx context.Context
		req models.CreateUnitIn
	}

	testCases := []struct {
		name    string
		args    args
		wantErr bool
		doMock  func(args args)
	}{
		{
			name: "test success",
			args: args{
				ctx: context.TODO(),
				req: models.CreateUnitIn{
					ID:        "UNT-1",
					CondoID:   "CND-001",
					Block:     "A",
					Number:    "101",
					Label:     "Bloco A Apto 101",
					OwnerName: "Maria Souza",
				},
			},
			doMock: func(args args) {
				rows := sqlmock.
					NewRows([]string{"id", "active", "createdAt", "updatedAt"}).
					AddRow(args.req.ID, true, time.Now(), time.Now())

				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryUnitCreate)).
					WillReturnRows(rows)
			},
			wantErr: false,
		},
		{
			name: "error scan row",
			args: args{
				ctx: context.TODO(),
				req: models.CreateUnitIn{},
			},
			doMock: func(args args) {
				rows := sqlmock.NewRows([]string{"InvalidColumn"}).AddRow(nil)
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryUnitCreate)).
					WillReturnRows(rows)
			},
			wantErr: true,
		},
		{
			name: "test error db",
			args: args{
				ctx: context.TODO(),
				req: models.CreateUnitIn{},
			},
			doMock: func(args args) {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryUnitCreate)).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.doMock(tt.args)

			_, err := suite.repo.Create(tt.args.ctx, &tt.args.req)
			assert.Equal(t, tt.wantErr, err != nil)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *unitTestSuite) TestRepository_GetByID() {
	testCases := []struct {
		name    string
		wantErr bool
		doMock  func()
	}{
		{
			name: "test success",
			doMock: func() {
				rows := addUnitRow(sqlmock.NewRows(unitRowColumns()), "UNT-1")
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryUnitGetByID)).
					WillReturnRows(rows)
			},
			wantErr: false,
		},
		{
			name: "test data not found",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryUnitGetByID)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: true,
		},
		{
			name: "test error db",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryUnitGetByID)).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.doMock()

			_, err := suite.repo.GetByID(context.Background(), "UNT-1")
			assert.Equal(t, tt.wantErr, err != nil)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *unitTestSuite) TestRepository_GetByIDs() {
	testCases := []struct {
		name    string
		ids     []string
		wantLen int
		wantErr bool
		doMock  func()
	}{
		{
			name: "test success",
			ids:  []string{"UNT-1", "UNT-2"},
			doMock: func() {
				rows := sqlmock.NewRows(unitRowColumns())
				rows = addUnitRow(rows, "UNT-1")
				rows = addUnitRow(rows, "UNT-2")
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryUnitGetByIDs)).
					WillReturnRows(rows)
			},
			wantLen: 2,
		},
		{
			name:   "empty input skips the query",
			ids:    nil,
			doMock: func() {},
		},
		{
			name: "error scan row",
			ids:  []string{"UNT-1"},
			doMock: func() {
				rows := sqlmock.NewRows([]string{"InvalidColumn"}).AddRow(nil)
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryUnitGetByIDs)).
					WillReturnRows(rows)
			},
			wantErr: true,
		},
		{
			name: "test error db",
			ids:  []string{"UNT-1"},
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryUnitGetByIDs)).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tt := range testCases {
		tt := tt
		suite.t.Run(tt.name, func(t *testing.T) {
			tt.doMock()

			result, err := suite.repo.GetByIDs(context.Background(), tt.ids)
			assert.Equal(t, tt.wantErr, err != nil)
			if !tt.wantErr {
				assert.Len(t, result, tt.wantLen)
			}

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *unitTestSuite) TestRepository_GetList() {
	testCases := []struct {
		name    string
		wantErr bool
		doMock  func()
	}{
		{
			name: "success get list",
			doMock: func() {
				rows := addUnitRow(sqlmock.NewRows(unitRowColumns()), "UNT-1")
				suite.mock.
					ExpectQuery("SELECT (.+) FROM units").
					WillReturnRows(rows)
			},
			wantErr: false,
		},
		{
			name: "failed scan row",
			doMock: func() {
				suite.mock.
					ExpectQuery("SELECT (.+) FROM units").
					WillReturnRows(sqlmock.NewRows([]string{"InvalidColumn"}).AddRow(nil))
			},
			wantErr: true,
		},
		{
			name: "failed from db",
			doMock: func() {
				suite.mock.
					ExpectQuery("SELECT (.+) FROM units").
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			_, err := suite.repo.GetList(context.Background(), models.UnitFilterOptions{CondoID: "CND-001", Limit: 11})
			assert.Equal(t, tc.wantErr, err != nil)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *unitTestSuite) TestRepository_CountAll() {
	suite.t.Run("success count", func(t *testing.T) {
		suite.mock.
			ExpectQuery("SELECT count(.+) FROM units").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

		total, err := suite.repo.CountAll(context.Background(), models.UnitFilterOptions{CondoID: "CND-001"})
		assert.NoError(t, err)
		assert.Equal(t, 42, total)

		if err = suite.mock.ExpectationsWereMet(); err != nil {
			t.Errorf("there were unfulfilled expectations: %s", err)
		}
	})
}

func (suite *unitTestSuite) TestRepository_GetActiveUnitIDs() {
	testCases := []struct {
		name    string
		condoID string
		wantErr bool
		doMock  func()
	}{
		{
			name:    "success with condo filter",
			condoID: "CND-001",
			doMock: func() {
				suite.mock.
					ExpectQuery("SELECT (.+) FROM units").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("UNT-1").AddRow("UNT-2"))
			},
		},
		{
			name: "failed from db",
			doMock: func() {
				suite.mock.
					ExpectQuery("SELECT (.+) FROM units").
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			_, err := suite.repo.GetActiveUnitIDs(context.Background(), tc.condoID)
			assert.Equal(t, tc.wantErr, err != nil)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *unitTestSuite) TestRepository_GetActiveCondoIDs() {
	testCases := []struct {
		name    string
		wantErr bool
		doMock  func()
	}{
		{
			name: "success get condo ids",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryUnitGetActiveCondoIDs)).
					WillReturnRows(sqlmock.NewRows([]string{"condoId"}).AddRow("CND-001"))
			},
		},
		{
			name: "failed from db",
			doMock: func() {
				suite.mock.
					ExpectQuery(regexp.QuoteMeta(queryUnitGetActiveCondoIDs)).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		suite.t.Run(tc.name, func(t *testing.T) {
			tc.doMock()

			_, err := suite.repo.GetActiveCondoIDs(context.Background())
			assert.Equal(t, tc.wantErr, err != nil)

			if err = suite.mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func (suite *unitTestSuite) TestRepository_GetCachedUnit() {
	shared := cache.NewInMemoryClient[models.Unit]()
	repo := NewSQLRepository(suite.writeDB, suite.readDB, config.Config{}, WithUnitCache(shared)).GetUnitRepository()

	rows := sqlmock.NewRows(unitRowColumns())
	rows = addUnitRow(rows, "UNT-1")

	// only the first lookup reaches the database
	suite.mock.
		ExpectQuery(regexp.QuoteMeta(queryUnitGetByID)).
		WillReturnRows(rows)

	first, err := repo.GetCachedUnit(context.Background(), "UNT-1")
	assert.NoError(suite.t, err)
	assert.Equal(suite.t, "UNT-1", first.ID)

	second, err := repo.GetCachedUnit(context.Background(), "UNT-1")
	assert.NoError(suite.t, err)
	assert.Equal(suite.t, first, second)

	if err = suite.mock.ExpectationsWereMet(); err != nil {
		suite.t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
